package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the droidsound home directory
const EnvHome = "DROIDSOUND_HOME"

// GetHome returns $DROIDSOUND_HOME or ~/.droidsound
func GetHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".droidsound"
	}
	return filepath.Join(homeDir, ".droidsound")
}

// GetSettingsPath returns $DROIDSOUND_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetEnvPath returns $DROIDSOUND_HOME/.env
func GetEnvPath() string {
	return filepath.Join(GetHome(), ".env")
}

// GetLocksDir returns $DROIDSOUND_HOME/locks, where serial port lock files live
func GetLocksDir() string {
	return filepath.Join(GetHome(), "locks")
}

// GetSSHDir returns $DROIDSOUND_HOME/ssh, which holds the server host key
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	return filepath.Join(homeDir, path[1:])
}
