package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir is the directory name under the user config directory.
const ConfigDir = "tagsfn"

// getConfigDir returns the platform-appropriate config directory.
// - Windows: %APPDATA%\tagsfn
// - Unix: $XDG_CONFIG_HOME/tagsfn, falling back to ~/.config/tagsfn
func getConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, ConfigDir)
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", ConfigDir)
	}
	return ""
}

// GetDefaultConfigPath returns the default config file path.
func GetDefaultConfigPath() string {
	configDir := getConfigDir()
	if configDir == "" {
		return "config.yaml"
	}
	return filepath.Join(configDir, "config.yaml")
}

// EnsureConfigDir creates the directory holding path if it doesn't exist.
func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return nil
}
