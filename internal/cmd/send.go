package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/server"
)

// SendCmd dispatches commands once and exits
type SendCmd struct {
	SessionFlags

	Commands []string      `arg:"" help:"Commands to send, e.g. '$25' '$VV10'"`
	Linger   time.Duration `help:"How long to keep the session open after the last command" default:"1s"`
}

// Run executes the send command
func (s *SendCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing send command", "commands", len(s.Commands))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	sess, err := startSession(gctx, g, cli, s.SessionFlags, nil)
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	var unhandled int
	for _, command := range s.Commands {
		handled, err := sess.runner.Dispatch(gctx, command)
		if err != nil {
			cancel()
			_ = g.Wait()
			return fmt.Errorf("failed to dispatch %q: %w", command, err)
		}
		reply := server.ReplyHandled
		if !handled {
			reply = server.ReplyUnhandled
			unhandled++
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", reply, command)
	}

	// let the module finish what it was told (and the startup track settle)
	select {
	case <-time.After(s.Linger):
	case <-gctx.Done():
	}
	cancel()

	if err := g.Wait(); err != nil {
		return err
	}
	if unhandled > 0 {
		return fmt.Errorf("%d of %d commands not recognized", unhandled, len(s.Commands))
	}
	return nil
}
