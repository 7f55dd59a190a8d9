package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config is the top-level CLI configuration loaded from file/env.
type Config struct {
	LogLevel  string           `json:"logLevel" yaml:"logLevel"`
	LogFormat string           `json:"logFormat" yaml:"logFormat"`
	Generate  GenerateDefaults `json:"generate" yaml:"generate"`
}

// GenerateDefaults captures baseline settings for the generate command.
type GenerateDefaults struct {
	Count  int    `json:"count" yaml:"count"`
	Output string `json:"output" yaml:"output"`
}

// Output encodings accepted by the CLI.
const (
	OutputHex     = "hex"
	OutputDecimal = "decimal"
	OutputFields  = "fields"
	OutputJSON    = "json"
)

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Generate: GenerateDefaults{
			Count:  1,
			Output: OutputDecimal,
		},
	}
}

// ValidOutput reports whether s names a known output encoding.
func ValidOutput(s string) bool {
	switch s {
	case OutputHex, OutputDecimal, OutputFields, OutputJSON:
		return true
	}
	return false
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if !ValidOutput(cfg.Generate.Output) {
		return Config{}, fmt.Errorf("config: unknown output encoding %q", cfg.Generate.Output)
	}
	return cfg, nil
}
