package dfplayer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// DefaultHandshakeTimeout bounds Init when ctx carries no deadline
const DefaultHandshakeTimeout = 3 * time.Second

const readPoll = 100 * time.Millisecond

// Encoder implements ports.Encoder and ports.Initializer
type Encoder struct {
	ch ports.Channel
}

// Verify interface compliance at compile time
var (
	_ ports.Encoder     = (*Encoder)(nil)
	_ ports.Initializer = (*Encoder)(nil)
)

// NewEncoder creates a DFPlayer encoder writing to ch
func NewEncoder(ch ports.Channel) *Encoder {
	return &Encoder{ch: ch}
}

// Play starts a flat track (1..2999)
func (e *Encoder) Play(track uint16) error {
	track = min(max(track, 1), MaxTrack)
	return e.send(Frame{Cmd: CmdPlay, Param: track})
}

// Stop halts playback
func (e *Encoder) Stop() error {
	return e.send(Frame{Cmd: CmdStop})
}

// SetVolume writes a 0..30 level
func (e *Encoder) SetVolume(level int) error {
	level = min(max(level, 0), MaxVolume)
	return e.send(Frame{Cmd: CmdVolume, Param: uint16(level)})
}

// Mute sets volume 0
func (e *Encoder) Mute() error {
	return e.SetVolume(0)
}

// Init resets the module, waits for it to acknowledge and selects the flat EQ.
// The wait ends when ctx is done, or after DefaultHandshakeTimeout when ctx has no deadline.
func (e *Encoder) Init(ctx context.Context) error {
	if e.ch == nil {
		return domain.ErrNoChannel
	}
	r, ok := e.ch.(io.Reader)
	if !ok {
		return fmt.Errorf("%w: channel is write-only", domain.ErrHandshake)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultHandshakeTimeout)
		defer cancel()
	}

	if err := e.send(Frame{Cmd: CmdReset, Feedback: true}); err != nil {
		return fmt.Errorf("failed to send reset: %w", err)
	}

	if err := awaitReady(ctx, r); err != nil {
		return err
	}

	logging.Logger.Debug("DFPlayer ready, selecting EQ")
	return e.send(Frame{Cmd: CmdEQ, Param: EQNormal})
}

func (e *Encoder) send(f Frame) error {
	if e.ch == nil {
		return domain.ErrNoChannel
	}
	_, err := e.ch.Write(f.Bytes())
	return err
}

// awaitReady reads until an ack or online frame arrives. The read runs on its own
// goroutine so a channel without read timeouts cannot outlive ctx.
func awaitReady(ctx context.Context, r io.Reader) error {
	if t, ok := r.(ports.ReadTimeouter); ok {
		if err := t.SetReadTimeout(readPoll); err != nil {
			logging.Logger.Warn("Failed to set read timeout", "error", err)
		}
	}

	done := make(chan error, 1)
	go func() { done <- readUntilReady(ctx, r) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrHandshake, ctx.Err())
	}
}

func readUntilReady(ctx context.Context, r io.Reader) error {
	var pending []byte
	buf := make([]byte, 64)

	for ctx.Err() == nil {
		n, err := r.Read(buf)
		pending = append(pending, buf[:n]...)

		for {
			advance, token, _ := ScanFrames(pending, false)
			if advance == 0 && token == nil {
				break
			}
			pending = pending[advance:]
			if token == nil {
				continue
			}
			f, _ := ParseFrame(token)
			logging.Logger.Debug("DFPlayer frame received", "frame", f.String())
			switch f.Cmd {
			case RespAck, RespOnline:
				return nil
			case RespError:
				return fmt.Errorf("%w: module reported error %d", domain.ErrHandshake, f.Param)
			}
		}

		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrHandshake, err)
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrHandshake, ctx.Err())
}
