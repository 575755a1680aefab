package config

import (
	"os"
	"path/filepath"
)

// DataDir is where settings, scores, logs and the SSH host key live.
const DataDir = "~/.painthit"

// Default file locations under DataDir.
var (
	DefaultSettingsPath = filepath.Join(DataDir, "config.yaml")
	DefaultDBPath       = filepath.Join(DataDir, "scores.db")
	DefaultLogPath      = filepath.Join(DataDir, "painthit.log")
	DefaultHostKeyPath  = filepath.Join(DataDir, "host_key")
	ScreenshotDir       = filepath.Join(DataDir, "screenshots")
)

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// userConfigPath returns the path to a file in the user data directory, or
// empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := ExpandHome(DataDir)
	if err != nil {
		return ""
	}
	return filepath.Join(dir, filename)
}
