package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/penumbra-droid/droidsound/internal/config"
	"github.com/penumbra-droid/droidsound/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file (or DROIDSOUND_DEBUG=1)" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	Run      RunCmd      `cmd:"run" help:"Drive a sound module with commands read from stdin" default:"withargs"`
	Send     SendCmd     `cmd:"send" help:"Send one or more commands and exit"`
	Console  ConsoleCmd  `cmd:"console" help:"Open the soundboard console"`
	Serve    ServeCmd    `cmd:"serve" help:"Accept commands over SSH"`
	Bench    BenchCmd    `cmd:"bench" help:"Drive a backend over a virtual serial port and print what it sends"`
	Encode   EncodeCmd   `cmd:"encode" help:"Print the bytes a backend would receive for each command"`
	Backends BackendsCmd `cmd:"backends" help:"List supported sound modules"`
	Ports    PortsCmd    `cmd:"ports" help:"List serial ports"`
	Prefs    PrefsCmd    `cmd:"prefs" help:"Manage stored preference profiles"`
	Setup    SetupCmd    `cmd:"setup" help:"Choose a sound module and tune playback interactively"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Settings only fill in a flag that kept its default and has no env var.
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if v, ok := os.LookupEnv(logging.EnvMaxLogFiles); ok {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxLogFiles = n
			}
		} else if c.settings != nil && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}
	if c.settings != nil {
		if !c.Debug && !hasEnv(logging.EnvDebug) && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// child processes (the integration harness, ssh-spawned sends) share the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}

	// after logging, so GORM's logger writes to the configured sink
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
