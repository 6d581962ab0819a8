package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/penumbra-droid/droidsound/internal/config"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ui"
)

// DefaultPort is the ssh port used when none is configured
const DefaultPort = 23235

const shutdownTimeout = 10 * time.Second

// Options configures the ssh endpoint
type Options struct {
	// AuthorizedKeys defaults to ~/.ssh/authorized_keys
	AuthorizedKeys string
	Host           string
	// HostKeyDir defaults to $DROIDSOUND_HOME/ssh
	HostKeyDir string
	Port       int
	Subtitle   string
}

// Server is the remote controller endpoint. PTY sessions get the soundboard
// console, anything else speaks the line protocol.
type Server struct {
	address        string
	authorizedKeys string
	controller     ui.SoundController
	subtitle       string
	wishServer     *ssh.Server
}

// NewServer creates the ssh server. The host key is generated on first use.
func NewServer(controller ui.SoundController, opts Options) (*Server, error) {
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.HostKeyDir == "" {
		opts.HostKeyDir = config.GetSSHDir()
	}
	if opts.AuthorizedKeys == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.AuthorizedKeys = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(opts.HostKeyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:        net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		authorizedKeys: opts.AuthorizedKeys,
		controller:     controller,
		subtitle:       opts.Subtitle,
	}

	accessLog := slog.NewLogLogger(logging.Logger.Handler(), slog.LevelInfo)

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(filepath.Join(opts.HostKeyDir, "id_ed25519")),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.lineMiddleware(),
			wishlogging.MiddlewareWithLogger(accessLog),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.address
}

// ListenAndServe listens on the configured address until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	logging.Logger.Info("Starting SSH server", "address", l.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.Serve(l)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}
