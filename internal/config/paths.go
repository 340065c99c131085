// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global Frostbar directory.
const GlobalDirName = ".frostbar"

// File names
const (
	SettingsFileName  = "settings.yaml"
	BlacklistFileName = "blacklist.conf"
	DaemonFileName    = "daemon.yaml"
)

// GlobalDir returns the path to the global Frostbar directory (~/.frostbar/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalBlacklistFile returns the path to the blacklist.conf file.
func GlobalBlacklistFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BlacklistFileName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// EnsureGlobalDir creates the global Frostbar directory if missing.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
