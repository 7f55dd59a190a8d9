package config

import (
	"os"
	"strconv"
)

// FromEnv overlays DATA_EATER_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("DATA_EATER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATA_EATER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("DATA_EATER_GENERATE_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Generate.Count = n
		}
	}
	if v := os.Getenv("DATA_EATER_GENERATE_OUTPUT"); v != "" && ValidOutput(v) {
		cfg.Generate.Output = v
	}
}
