package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/penumbra-droid/droidsound/internal/adapters/loopback"
	"github.com/penumbra-droid/droidsound/internal/config"
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
	"github.com/penumbra-droid/droidsound/internal/services"
)

// LoopbackPort names the virtual serial port instead of a device path
const LoopbackPort = "loopback"

// Environment overrides for the session flags
const (
	envProfile = "DROIDSOUND_PROFILE"
	envPoll    = "DROIDSOUND_POLL_INTERVAL"
)

// SessionFlags select the sound module, its port and the starting tuning.
// Unset flags fall back to env, settings.json and then the stored profile.
type SessionFlags struct {
	Backend      string        `help:"Sound module key (${backends}) or choice number" short:"b" env:"DROIDSOUND_BACKEND"`
	Port         string        `help:"Serial device, or \"loopback\" for a virtual port" short:"p" env:"DROIDSOUND_PORT"`
	Profile      string        `help:"Preferences profile to start from" default:"default" env:"DROIDSOUND_PROFILE"`
	Startup      *int          `help:"Startup track (-1 for none)"`
	Volume       *float64      `help:"Initial volume between 0.0 and 1.0"`
	PollInterval time.Duration `help:"How often the random scheduler is polled" default:"50ms" env:"DROIDSOUND_POLL_INTERVAL"`
}

// resolve merges flags, settings.json and the stored profile into preferences
func (f SessionFlags) resolve(ctx context.Context, cli *CLI) (domain.Preferences, time.Duration, error) {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	profile := f.Profile
	if profile == domain.DefaultProfile && !hasEnv(envProfile) && settings.Profile != "" {
		profile = settings.Profile
	}

	prefs, err := cli.Container.PreferencesService.Load(ctx, profile)
	if err != nil {
		return prefs, 0, err
	}

	backend := f.Backend
	if backend == "" {
		backend = settings.Backend
	}
	if backend != "" {
		b, err := domain.ParseBackend(backend)
		if err != nil {
			return prefs, 0, err
		}
		prefs.Backend = b
	}

	switch {
	case f.Port != "":
		prefs.Port = config.ExpandPath(f.Port)
	case settings.Port != "":
		prefs.Port = settings.Port
	}

	switch {
	case f.Startup != nil:
		prefs.StartupTrack = *f.Startup
	case settings.StartupTrack != nil:
		prefs.StartupTrack = *settings.StartupTrack
	}

	switch {
	case f.Volume != nil:
		prefs.Volume = domain.Volume(*f.Volume)
	case settings.Volume != nil:
		prefs.Volume = domain.Volume(*settings.Volume)
	}

	interval := f.PollInterval
	if interval == services.DefaultPollInterval && !hasEnv(envPoll) && settings.PollInterval != nil {
		interval = time.Duration(*settings.PollInterval) * time.Millisecond
	}

	return services.NormalizePreferences(prefs), interval, nil
}

// session is a running sound session owned by a Runner
type session struct {
	channel ports.PortChannel
	prefs   domain.Preferences
	runner  *services.Runner
}

// startSession opens the channel, begins the backend and starts the runner
// (and the loopback monitor, for virtual ports) on g. The channel is closed
// once the runner stops. monitorOut receives the loopback monitor's output.
func startSession(ctx context.Context, g *errgroup.Group, cli *CLI, flags SessionFlags, monitorOut io.Writer) (*session, error) {
	prefs, interval, err := flags.resolve(ctx, cli)
	if err != nil {
		return nil, err
	}

	var channel ports.PortChannel
	if prefs.Backend.Enabled() {
		channel, err = openChannel(ctx, g, cli.Container.PortOpener, prefs, monitorOut)
		if err != nil {
			return nil, err
		}
	}

	sound := services.NewSoundService(cli.Container.EncoderFactory, services.NewSystemClock(), services.SystemRandom{})

	var ch ports.Channel
	if channel != nil {
		ch = channel
	}
	if err := sound.Begin(ctx, prefs.Backend, ch, prefs.StartupTrack); err != nil {
		closeChannel(channel)
		return nil, err
	}
	services.ApplyPreferences(sound, prefs)

	router := services.NewCommandRouter(services.NewDispatcher(sound))
	runner := services.NewRunner(sound, router, interval)

	g.Go(func() error {
		defer closeChannel(channel)
		return runner.Run(ctx)
	})

	logging.Logger.Info("Sound session ready",
		"backend", prefs.Backend.String(),
		"port", prefs.Port,
		"profile", prefs.Profile)

	return &session{channel: channel, prefs: prefs, runner: runner}, nil
}

// subtitle names what the session drives, for headers
func (s *session) subtitle() string {
	if s.channel == nil {
		return s.prefs.Backend.Name()
	}
	return fmt.Sprintf("%s on %s", s.prefs.Backend.Name(), s.channel.Name())
}

func openChannel(ctx context.Context, g *errgroup.Group, opener ports.PortOpener, prefs domain.Preferences, monitorOut io.Writer) (ports.PortChannel, error) {
	switch prefs.Port {
	case "":
		return nil, fmt.Errorf("no serial port selected for %s (use --port or \"loopback\")", prefs.Backend.Name())
	case LoopbackPort:
		loop, err := loopback.Open()
		if err != nil {
			return nil, err
		}
		if monitorOut == nil {
			monitorOut = io.Discard
		}
		monitor := loopback.NewMonitor(prefs.Backend, monitorOut)
		g.Go(func() error {
			return monitor.Run(ctx, loop.Controller())
		})
		return loop, nil
	}
	return opener.Open(prefs.Port, prefs.Backend.BaudRate())
}

func closeChannel(channel ports.PortChannel) {
	if channel == nil {
		return
	}
	if err := channel.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		logging.Logger.Warn("Failed to close channel", "port", channel.Name(), "error", err)
	}
}
