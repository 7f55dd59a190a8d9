// Package config provides loading and environment overlay for the
// data-eater CLI configuration. It exposes a Default() baseline, JSON and
// YAML file loading, and a DATA_EATER_* env overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load(config.DefaultConfigPath()); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
