package config

import (
	"os"
	"path/filepath"
)

const appName = "shade"

// GetConfigDir returns the directory holding settings, history and logs.
// SHADE_CONFIG_DIR wins, then $XDG_CONFIG_HOME/shade, then the platform's
// user config directory.
func GetConfigDir() string {
	if dir := os.Getenv("SHADE_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// GetLogsDir returns the directory for debug logs.
func GetLogsDir() string {
	return filepath.Join(GetConfigDir(), "logs")
}

// GetSettingsPath returns the path of the settings file.
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.yaml")
}

// GetHistoryPath returns the path of the copy history database.
func GetHistoryPath() string {
	return filepath.Join(GetConfigDir(), "history.db")
}

// EnsureDirs creates the config and logs directories.
func EnsureDirs() error {
	for _, dir := range []string{GetConfigDir(), GetLogsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
