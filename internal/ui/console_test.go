package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/domain"
)

type fakeController struct {
	mu       sync.Mutex
	commands []string
	err      error
	status   domain.SoundStatus
}

func (f *fakeController) Dispatch(_ context.Context, command string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	f.commands = append(f.commands, command)
	return command != "$Z", nil
}

func (f *fakeController) Status(_ context.Context) (domain.SoundStatus, error) {
	return f.status, nil
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run feeds msg to the console and then feeds back whatever the returned command produces
func run(t *testing.T, c *Console, msg tea.Msg) tea.Cmd {
	t.Helper()
	_, cmd := c.Update(msg)
	if cmd == nil {
		return nil
	}
	out := cmd()
	if _, isBatch := out.(tea.BatchMsg); isBatch {
		return cmd
	}
	_, next := c.Update(out)
	return next
}

func TestConsoleShortcutDispatches(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"3", "$3"},
		{"r", "$R"},
		{"s", "$s"},
		{"+", "$+"},
		{"-", "$-"},
		{"e", "$E"},
		{"o", "$O"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ctrl := &fakeController{}
			c := NewConsole(context.Background(), ctrl, "test")

			run(t, c, keyRunes(tt.key))

			assert.Equal(t, []string{tt.want}, ctrl.commands)
			require.Len(t, c.history, 1)
			assert.True(t, c.history[0].handled)
		})
	}
}

func TestConsoleTypedCommand(t *testing.T) {
	ctrl := &fakeController{}
	c := NewConsole(context.Background(), ctrl, "test")

	c.Update(keyRunes(":"))
	require.True(t, c.typing)

	c.Update(keyRunes("VV10"))
	run(t, c, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, c.typing)
	assert.Equal(t, []string{"$VV10"}, ctrl.commands)
}

func TestConsoleRecordsUnhandled(t *testing.T) {
	ctrl := &fakeController{}
	c := NewConsole(context.Background(), ctrl, "test")

	c.Update(keyRunes(":"))
	c.Update(keyRunes("$Z"))
	run(t, c, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, c.history, 1)
	assert.False(t, c.history[0].handled)
	assert.Contains(t, c.View(), "$Z")
}

func TestConsoleEscapeCancelsTyping(t *testing.T) {
	ctrl := &fakeController{}
	c := NewConsole(context.Background(), ctrl, "test")

	c.Update(keyRunes(":"))
	c.Update(keyRunes("25"))
	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, c.typing)
	assert.Empty(t, ctrl.commands)
}

func TestConsoleHistoryIsBounded(t *testing.T) {
	c := NewConsole(context.Background(), &fakeController{}, "test")
	for i := 0; i < maxHistory+5; i++ {
		c.record("$s", true)
	}
	assert.Len(t, c.history, maxHistory)
}

func TestConsoleDispatchError(t *testing.T) {
	ctrl := &fakeController{err: errors.New("runner stopped")}
	c := NewConsole(context.Background(), ctrl, "test")

	run(t, c, keyRunes("s"))

	assert.Empty(t, c.history)
	assert.Contains(t, c.View(), "runner stopped")
}

func TestConsoleQuit(t *testing.T) {
	c := NewConsole(context.Background(), &fakeController{}, "test")
	_, cmd := c.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestConsoleRendersStatus(t *testing.T) {
	ctrl := &fakeController{status: domain.SoundStatus{
		Backend:     domain.BackendDFPlayer,
		LastTrack:   42,
		RandomArmed: true,
		RandomDueIn: 1500,
		RandomMode:  domain.RandomRange,
		Volume:      domain.VolumeMid,
	}}
	c := NewConsole(context.Background(), ctrl, "loopback")

	c.Update(c.fetchStatus()())
	view := c.View()

	assert.Contains(t, view, "DFPlayer Mini")
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "next in 1.5s")
}

func TestRenderMeter(t *testing.T) {
	assert.Equal(t, 0, countRune(renderMeter(domain.VolumeSilent), '█'))
	assert.Equal(t, meterWidth/2, countRune(renderMeter(domain.VolumeMid), '█'))
	assert.Equal(t, meterWidth, countRune(renderMeter(domain.VolumeMax), '█'))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
