package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ui"
)

// ConsoleCmd opens the soundboard TUI on a serial port or the loopback
type ConsoleCmd struct {
	SessionFlags
}

// Run executes the console command
func (c *ConsoleCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting soundboard console", "backend", c.Backend, "port", c.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	sess, err := startSession(gctx, g, cli, c.SessionFlags, nil)
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	p := tea.NewProgram(
		ui.NewConsole(gctx, sess.runner, sess.subtitle()),
		tea.WithAltScreen(),
		tea.WithContext(gctx),
	)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && gctx.Err() == nil {
			logging.Logger.Error("Console program error", "error", err)
			return fmt.Errorf("error running console: %w", err)
		}
		return nil
	})

	err = g.Wait()
	logging.Logger.Info("Soundboard console exited")
	return err
}
