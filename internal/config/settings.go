package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/penumbra-droid/droidsound/internal/logging"
)

// Settings represents the structure of $DROIDSOUND_HOME/settings.json.
// Every field is optional; unset fields fall back to flag defaults.
type Settings struct {
	AuthorizedKeys string   `json:"authorized_keys,omitempty"`
	Backend        string   `json:"backend,omitempty"`
	Debug          *bool    `json:"debug,omitempty"`
	MaxLogFiles    *int     `json:"max_log_files,omitempty"`
	PollInterval   *int     `json:"poll_interval_ms,omitempty"`
	Port           string   `json:"port,omitempty"`
	Profile        string   `json:"profile,omitempty"`
	SSHHost        string   `json:"ssh_host,omitempty"`
	SSHPort        *int     `json:"ssh_port,omitempty"`
	StartupTrack   *int     `json:"startup_track,omitempty"`
	Volume         *float64 `json:"volume,omitempty"`
}

// LoadSettings loads settings from $DROIDSOUND_HOME/settings.json.
// A missing file yields empty Settings.
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	settings.Port = ExpandPath(settings.Port)
	return &settings, nil
}

// SaveSettings writes settings to $DROIDSOUND_HOME/settings.json
func SaveSettings(settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create home directory: %w", err)
	}
	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// LoadEnv reads .env from the working directory and then from the droidsound
// home. Variables already in the environment are never overwritten.
// It runs before flag parsing so DROIDSOUND_* variables reach kong's env tags.
func LoadEnv() {
	for _, path := range []string{".env", GetEnvPath()} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logging.Logger.Warn("Failed to load env file", "path", path, "error", err)
		}
	}
}
