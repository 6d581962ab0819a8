package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ui"
)

// SetupCmd walks through backend, port and playback tuning and saves a profile
type SetupCmd struct {
	Profile string `arg:"" optional:"" help:"Profile to write" default:"default"`
}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.PreferencesService

	current, err := svc.Load(ctx, s.Profile)
	if err != nil {
		return err
	}

	ports, err := cli.Container.PortOpener.List()
	if err != nil {
		logging.Logger.Warn("Failed to list serial ports", "error", err)
	}
	ports = append(ports, LoopbackPort)

	form := ui.NewSetupForm(current, ports)
	if _, err := tea.NewProgram(form).Run(); err != nil {
		return fmt.Errorf("error running setup form: %w", err)
	}

	result := form.Result()
	if result.Cancelled || !form.Completed {
		fmt.Println("Cancelled")
		return nil
	}
	if result.Error != nil {
		return result.Error
	}

	if err := svc.Save(ctx, result.Preferences); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	saved, err := svc.Load(ctx, result.Preferences.Profile)
	if err != nil {
		return err
	}
	fmt.Println("Saved:")
	printPreferences(saved)
	return nil
}
