package loopback

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penumbra-droid/droidsound/internal/adapters/dfplayer"
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
)

// Monitor prints what a backend writes to the loopback and emulates the
// replies a real module would send
type Monitor struct {
	backend domain.Backend
	out     io.Writer
}

// NewMonitor creates a monitor printing to out
func NewMonitor(backend domain.Backend, out io.Writer) *Monitor {
	return &Monitor{backend: backend, out: out}
}

// Run copies frames from controller until ctx is done or the pty closes
func (m *Monitor) Run(ctx context.Context, controller io.ReadWriter) error {
	var pending []byte
	buf := make([]byte, 256)

	for ctx.Err() == nil {
		n, err := controller.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			fmt.Fprintf(m.out, "%s  %-16s %s\n", time.Now().Format("15:04:05.000"), m.backend.String(), Describe(m.backend, chunk))

			if m.backend == domain.BackendDFPlayer {
				pending = append(pending, chunk...)
				pending = m.answerDFPlayer(controller, pending)
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logging.Logger.Debug("Loopback monitor stopped", "error", err)
			return nil
		}
	}
	return nil
}

// answerDFPlayer acks every frame that asked for feedback and returns unconsumed bytes
func (m *Monitor) answerDFPlayer(w io.Writer, pending []byte) []byte {
	for {
		advance, token, _ := dfplayer.ScanFrames(pending, false)
		if advance == 0 && token == nil {
			return pending
		}
		pending = pending[advance:]
		if token == nil {
			continue
		}
		f, err := dfplayer.ParseFrame(token)
		if err != nil || !f.Feedback {
			continue
		}
		if _, err := w.Write(dfplayer.Frame{Cmd: dfplayer.RespAck}.Bytes()); err != nil {
			logging.Logger.Warn("Failed to answer DFPlayer frame", "error", err)
		}
	}
}

// Describe renders bytes for a human: ASCII for the vocalizer, hex otherwise
func Describe(backend domain.Backend, b []byte) string {
	if backend == domain.BackendHCR {
		return string(b)
	}
	return strings.ToUpper(hex.EncodeToString(b))
}
