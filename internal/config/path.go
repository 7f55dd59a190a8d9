package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the path of the first config file found in the
// standard locations, or "" when none exists. Lookup order: XDG config dir,
// ~/.config, a dotfile in the home directory.
func DefaultConfigPath() string {
	candidates := []string{}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates,
			filepath.Join(xdg, "data-eater", "config.yaml"),
			filepath.Join(xdg, "data-eater", "config.json"),
		)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		candidates = append(candidates,
			filepath.Join(home, ".config", "data-eater", "config.yaml"),
			filepath.Join(home, ".config", "data-eater", "config.json"),
			filepath.Join(home, ".data-eater.yaml"),
		)
	}
	for _, p := range candidates {
		if isFile(p) {
			return p
		}
	}
	return ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
