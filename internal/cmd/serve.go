package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/server"
)

// ServeCmd exposes a sound session over SSH
type ServeCmd struct {
	SessionFlags

	AuthorizedKeys string `help:"authorized_keys file (default ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost" env:"DROIDSOUND_SSH_HOST"`
	SSHPort        int    `help:"Port to listen on" name:"ssh-port" default:"23235" env:"DROIDSOUND_SSH_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.AuthorizedKeys == "" && cli.settings.AuthorizedKeys != "" {
			s.AuthorizedKeys = cli.settings.AuthorizedKeys
		}
		if s.Host == "localhost" && !hasEnv("DROIDSOUND_SSH_HOST") && cli.settings.SSHHost != "" {
			s.Host = cli.settings.SSHHost
		}
		if s.SSHPort == server.DefaultPort && !hasEnv("DROIDSOUND_SSH_PORT") && cli.settings.SSHPort != nil {
			s.SSHPort = *cli.settings.SSHPort
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	sess, err := startSession(gctx, g, cli, s.SessionFlags, nil)
	if err != nil {
		stop()
		_ = g.Wait()
		return err
	}

	srv, err := server.NewServer(sess.runner, server.Options{
		AuthorizedKeys: s.AuthorizedKeys,
		Host:           s.Host,
		Port:           s.SSHPort,
		Subtitle:       sess.subtitle(),
	})
	if err != nil {
		stop()
		_ = g.Wait()
		return err
	}

	fmt.Printf("SSH server listening on %s (%s)\n", srv.Address(), sess.subtitle())
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})

	err = g.Wait()
	logging.Logger.Info("Serve command finished", "error", err)
	return err
}
