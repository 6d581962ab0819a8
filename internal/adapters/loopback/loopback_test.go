//go:build linux || darwin

package loopback

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/adapters/dfplayer"
	"github.com/penumbra-droid/droidsound/internal/domain"
)

type lineCollector struct {
	lines chan string
}

func (c *lineCollector) Write(p []byte) (int, error) {
	c.lines <- string(p)
	return len(p), nil
}

func TestLoopback_DFPlayerHandshake(t *testing.T) {
	port, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = port.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	out := &lineCollector{lines: make(chan string, 16)}
	go func() { _ = NewMonitor(domain.BackendDFPlayer, out).Run(ctx, port.Controller()) }()

	require.NoError(t, dfplayer.NewEncoder(port).Init(ctx))

	select {
	case line := <-out.lines:
		assert.Contains(t, line, "dfplayer")
	case <-ctx.Done():
		t.Fatal("monitor printed nothing")
	}
}

func TestLoopback_BytesPassUnchanged(t *testing.T) {
	port, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = port.Close() })

	payload := []byte{0x7E, 0x0A, 0x0D, 0x03, 0xEF}
	_, err = port.Write(payload)
	require.NoError(t, err)

	got := make([]byte, len(payload))
	_, err = io.ReadFull(port.Controller(), got)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
