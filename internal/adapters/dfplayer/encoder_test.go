package dfplayer

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// duplex records writes and replays canned module output
type duplex struct {
	bytes.Buffer
	in io.Reader
}

func (d *duplex) Read(p []byte) (int, error) { return d.in.Read(p) }

func TestEncoder_Writes(t *testing.T) {
	tests := []struct {
		name     string
		run      func(e *Encoder) error
		expected Frame
	}{
		{"play clamps high", func(e *Encoder) error { return e.Play(5000) }, Frame{Cmd: CmdPlay, Param: MaxTrack}},
		{"play clamps zero", func(e *Encoder) error { return e.Play(0) }, Frame{Cmd: CmdPlay, Param: 1}},
		{"volume clamps", func(e *Encoder) error { return e.SetVolume(31) }, Frame{Cmd: CmdVolume, Param: 30}},
		{"mute", func(e *Encoder) error { return e.Mute() }, Frame{Cmd: CmdVolume, Param: 0}},
		{"stop", func(e *Encoder) error { return e.Stop() }, Frame{Cmd: CmdStop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.run(NewEncoder(&buf)))
			assert.Equal(t, tt.expected.Bytes(), buf.Bytes())
		})
	}
}

func TestEncoder_NoChannel(t *testing.T) {
	enc := NewEncoder(nil)
	assert.ErrorIs(t, enc.Play(1), domain.ErrNoChannel)
	assert.ErrorIs(t, enc.Init(context.Background()), domain.ErrNoChannel)
}

func TestEncoder_InitAcknowledged(t *testing.T) {
	for _, resp := range []Frame{{Cmd: RespAck}, {Cmd: RespOnline, Param: 2}} {
		t.Run(resp.String(), func(t *testing.T) {
			noisy := append([]byte{0x01, 0x02}, resp.Bytes()...)
			ch := &duplex{in: bytes.NewReader(noisy)}

			require.NoError(t, NewEncoder(ch).Init(context.Background()))

			written := ch.Bytes()
			require.Len(t, written, 2*FrameSize)
			assert.Equal(t, Frame{Cmd: CmdReset, Feedback: true}.Bytes(), written[:FrameSize])
			assert.Equal(t, Frame{Cmd: CmdEQ, Param: EQNormal}.Bytes(), written[FrameSize:])
		})
	}
}

func TestEncoder_InitFailures(t *testing.T) {
	t.Run("silent module", func(t *testing.T) {
		ch := &duplex{in: bytes.NewReader(nil)}
		err := NewEncoder(ch).Init(context.Background())
		assert.ErrorIs(t, err, domain.ErrHandshake)
	})

	t.Run("module error", func(t *testing.T) {
		ch := &duplex{in: bytes.NewReader(Frame{Cmd: RespError, Param: 1}.Bytes())}
		err := NewEncoder(ch).Init(context.Background())
		assert.ErrorIs(t, err, domain.ErrHandshake)
		assert.Len(t, ch.Bytes(), FrameSize, "EQ must not be sent after a failed handshake")
	})

	t.Run("write-only channel", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewEncoder(&buf).Init(context.Background())
		assert.ErrorIs(t, err, domain.ErrHandshake)
	})

	t.Run("blocked read bounded by context", func(t *testing.T) {
		pr, pw := io.Pipe()
		t.Cleanup(func() { _ = pw.Close() })
		ch := &duplex{in: pr}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := NewEncoder(ch).Init(ctx)
		assert.ErrorIs(t, err, domain.ErrHandshake)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
