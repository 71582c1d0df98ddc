package config

import (
	"os"
	"path/filepath"
)

// GetHome returns FRESHCART_HOME or the ~/.freshcart default
func GetHome() string {
	home := os.Getenv("FRESHCART_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".freshcart"
		}
		return filepath.Join(homeDir, ".freshcart")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FRESHCART_HOME/catalog.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "catalog.db")
}

// GetSettingsPath returns $FRESHCART_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHostKeyPath returns $FRESHCART_HOME/ssh/host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh", "host_ed25519")
}

// GetAuthorizedKeysPath returns $FRESHCART_HOME/ssh/authorized_keys
func GetAuthorizedKeysPath() string {
	return filepath.Join(GetHome(), "ssh", "authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
