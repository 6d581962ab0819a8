package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/services"
)

// RunCmd drives a sound module with one command per stdin line
type RunCmd struct {
	SessionFlags

	Follow bool `help:"Keep the session (and random playback) running after stdin closes, until interrupted"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing run command", "backend", r.Backend, "port", r.Port)
	return runLines(cli, r.SessionFlags, os.Stdin, os.Stderr, nil, r.Follow)
}

// runLines starts a session and feeds it lines from in until EOF (or until
// interrupted when follow is set). Unhandled lines are reported on errOut.
func runLines(cli *CLI, flags SessionFlags, in io.Reader, errOut, monitorOut io.Writer, follow bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	sess, err := startSession(gctx, g, cli, flags, monitorOut)
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	lines := make(chan string)
	go readLines(in, lines)

	g.Go(func() error {
		defer cancel()
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					if follow {
						<-gctx.Done()
					}
					return nil
				}
				if err := dispatchLine(gctx, sess.runner, line, errOut); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

func readLines(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		logging.Logger.Warn("Failed to read commands", "error", err)
	}
}

func dispatchLine(ctx context.Context, runner *services.Runner, line string, errOut io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	handled, err := runner.Dispatch(ctx, line)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to dispatch %q: %w", line, err)
	}
	if !handled {
		fmt.Fprintf(errOut, "unknown command: %s\n", line)
	}
	return nil
}
