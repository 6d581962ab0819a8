package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/penumbra-droid/droidsound/internal/adapters/dfplayer"
	"github.com/penumbra-droid/droidsound/internal/adapters/loopback"
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/services"
)

// EncodeCmd shows what a backend sends for each command without any hardware
type EncodeCmd struct {
	Backend  string   `help:"Sound module key (${backends}) or choice number" short:"b" required:""`
	Commands []string `arg:"" help:"Commands to encode, e.g. '$25' '$VV10'"`
	Init     bool     `help:"Also show the bytes written while starting the session"`
	Seed     uint64   `help:"Seed for random track picks" default:"1"`
}

// recorder is a channel that keeps everything written to it and plays back
// canned replies so handshaking backends start without a module
type recorder struct {
	bytes.Buffer
	replies []byte
}

func (r *recorder) Read(p []byte) (int, error) {
	if len(r.replies) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.replies)
	r.replies = r.replies[n:]
	return n, nil
}

// Run executes the encode command
func (e *EncodeCmd) Run(cli *CLI) error {
	backend, err := domain.ParseBackend(e.Backend)
	if err != nil {
		return err
	}
	if !backend.Enabled() {
		return fmt.Errorf("%s writes nothing", backend.Name())
	}

	logging.Logger.Info("Executing encode command", "backend", backend.String(), "commands", len(e.Commands))

	ch := &recorder{}
	if backend == domain.BackendDFPlayer {
		ch.replies = dfplayer.Frame{Cmd: dfplayer.RespAck}.Bytes()
	}

	sound := services.NewSoundService(cli.Container.EncoderFactory, services.NewSystemClock(), services.NewSeededRandom(e.Seed))
	if err := sound.Begin(context.Background(), backend, ch, domain.NoStartupTrack); err != nil {
		return err
	}
	defer sound.End()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if e.Init {
		fmt.Fprintf(w, "%s\t%s\n", "(init)", describe(backend, ch.Bytes()))
	}
	ch.Reset()

	dispatcher := services.NewDispatcher(sound)
	for _, command := range e.Commands {
		if !dispatcher.Dispatch(command) {
			fmt.Fprintf(w, "%s\t%s\n", command, "? not a sound command")
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", command, describe(backend, ch.Bytes()))
		ch.Reset()
	}
	return nil
}

func describe(backend domain.Backend, b []byte) string {
	if len(b) == 0 {
		return "(nothing)"
	}
	return loopback.Describe(backend, b)
}
