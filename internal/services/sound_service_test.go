package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/penumbra-droid/droidsound/internal/adapters/backends"
	"github.com/penumbra-droid/droidsound/internal/adapters/dfplayer"
	"github.com/penumbra-droid/droidsound/internal/domain"
	portsmocks "github.com/penumbra-droid/droidsound/internal/ports/mocks"
)

type fakeClock struct {
	now domain.Millis
}

func (c *fakeClock) NowMillis() domain.Millis { return c.now }

// dfModule records writes and answers the DFPlayer reset with an ack
type dfModule struct {
	bytes.Buffer
	in io.Reader
}

func (d *dfModule) Read(p []byte) (int, error) { return d.in.Read(p) }

func newDFModule() *dfModule {
	return &dfModule{in: bytes.NewReader(dfplayer.Frame{Cmd: dfplayer.RespAck}.Bytes())}
}

func newTestSound(rng *seqRandom) (*SoundService, *fakeClock) {
	if rng == nil {
		rng = &seqRandom{}
	}
	clock := &fakeClock{}
	return NewSoundService(backends.NewFactory(), clock, rng), clock
}

func beginTrigger(t *testing.T, s *SoundService) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Begin(context.Background(), domain.BackendMP3Trigger, &buf, domain.NoStartupTrack))
	return &buf
}

func TestSoundService_DisabledIsNoop(t *testing.T) {
	factory := portsmocks.NewMockEncoderFactory(t)
	s := NewSoundService(factory, &fakeClock{}, &seqRandom{})

	require.NoError(t, s.Begin(context.Background(), domain.BackendDisabled, &bytes.Buffer{}, 3))

	s.PlayTrack(1)
	s.PlaySound(2, 5)
	s.PlayRandom()
	s.Stop()
	s.SetVolume(1)
	s.VolumeOff()
	s.StartRandom(0)
	s.Idle()

	status := s.Status()
	assert.Equal(t, domain.BackendDisabled, status.Backend)
	assert.False(t, status.RandomArmed)
	assert.Equal(t, domain.VolumeDefault, s.Volume())
}

func TestSoundService_PlayTrackClamps(t *testing.T) {
	tests := []struct {
		name     string
		flat     int
		expected []byte
	}{
		{"first", 1, []byte{'t', 0}},
		{"below range", -4, []byte{'t', 0}},
		{"above ceiling", 900, []byte{'t', 254}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSound(nil)
			buf := beginTrigger(t, s)

			s.PlayTrack(tt.flat)

			assert.Equal(t, tt.expected, buf.Bytes())
		})
	}
}

func TestSoundService_PlaySoundFlattens(t *testing.T) {
	s, _ := newTestSound(nil)
	buf := beginTrigger(t, s)

	s.PlaySound(2, 5)
	assert.Equal(t, []byte{'t', 23}, buf.Bytes())

	buf.Reset()
	s.PlaySound(2, 19)
	assert.Empty(t, buf.Bytes(), "track beyond bank capacity is dropped")

	buf.Reset()
	s.PlaySound(10, 1)
	assert.Empty(t, buf.Bytes(), "unknown bank is dropped")
}

func TestSoundService_DFPlayerCeiling(t *testing.T) {
	s, _ := newTestSound(nil)
	ch := newDFModule()
	require.NoError(t, s.Begin(context.Background(), domain.BackendDFPlayer, ch, domain.NoStartupTrack))
	ch.Reset()

	s.PlayTrack(2999)
	s.PlayTrack(3500)

	want := append(dfplayer.Frame{Cmd: dfplayer.CmdPlay, Param: 2999}.Bytes(),
		dfplayer.Frame{Cmd: dfplayer.CmdPlay, Param: 2999}.Bytes()...)
	assert.Equal(t, want, ch.Bytes())
}

func TestSoundService_BeginResetsCursors(t *testing.T) {
	s, _ := newTestSound(nil)
	beginTrigger(t, s)

	s.PlaySound(1, 0)
	s.PlaySound(1, 0)
	s.PlaySound(3, 6)
	s.StartRandom(5)
	assert.Equal(t, 2, s.Status().BankCursors[0])

	require.NoError(t, s.Begin(context.Background(), domain.BackendHCR, &bytes.Buffer{}, domain.NoStartupTrack))

	status := s.Status()
	assert.Equal(t, domain.BackendHCR, status.Backend)
	assert.Equal(t, make([]int, domain.MaxBanks), status.BankCursors)
	assert.False(t, status.RandomArmed)
}

func TestSoundService_BeginInitFailureStaysDisabled(t *testing.T) {
	s, _ := newTestSound(nil)
	beginTrigger(t, s)

	silent := &dfModule{in: bytes.NewReader(nil)}
	err := s.Begin(context.Background(), domain.BackendDFPlayer, silent, domain.NoStartupTrack)

	require.ErrorIs(t, err, domain.ErrHandshake)
	assert.Equal(t, domain.BackendDisabled, s.Backend())

	silent.Reset()
	s.PlayTrack(1)
	assert.Empty(t, silent.Bytes())
}

func TestSoundService_StartupTrack(t *testing.T) {
	t.Run("no settle time plays immediately", func(t *testing.T) {
		s, _ := newTestSound(nil)
		var buf bytes.Buffer

		require.NoError(t, s.Begin(context.Background(), domain.BackendMP3Trigger, &buf, 7))

		assert.Equal(t, []byte{'t', 6}, buf.Bytes())
	})

	t.Run("settle time defers to idle", func(t *testing.T) {
		s, clock := newTestSound(nil)
		clock.now = 500
		ch := newDFModule()

		require.NoError(t, s.Begin(context.Background(), domain.BackendDFPlayer, ch, 7))
		ch.Reset()

		clock.now = 1499
		s.Idle()
		assert.Empty(t, ch.Bytes())

		clock.now = 1500
		s.Idle()
		assert.Equal(t, dfplayer.Frame{Cmd: dfplayer.CmdPlay, Param: 7}.Bytes(), ch.Bytes())

		ch.Reset()
		clock.now = 5000
		s.Idle()
		assert.Empty(t, ch.Bytes(), "startup plays once")
	})

	t.Run("negative disables", func(t *testing.T) {
		s, _ := newTestSound(nil)
		var buf bytes.Buffer
		require.NoError(t, s.Begin(context.Background(), domain.BackendMP3Trigger, &buf, -3))

		s.PlayStartSound()

		assert.Empty(t, buf.Bytes())
		assert.Equal(t, domain.NoStartupTrack, s.Status().StartupTrack)
	})
}

func TestSoundService_IdleFiresOncePerWindow(t *testing.T) {
	s, clock := newTestSound(&seqRandom{draws: []int{0, 0, 0}})
	buf := beginTrigger(t, s)
	s.SetRandomTrackRange(5, 5)
	s.SetRandomDelayRange(2000, 2000)

	s.StartRandom(1)

	clock.now = 999
	s.Idle()
	assert.Empty(t, buf.Bytes())

	clock.now = 1000
	s.Idle()
	assert.Equal(t, []byte{'t', 4}, buf.Bytes())
	assert.Equal(t, int32(2000), s.Status().RandomDueIn)

	buf.Reset()
	clock.now = 1001
	s.Idle()
	assert.Empty(t, buf.Bytes())
}

func TestSoundService_LongRandomDelayDoesNotFireEarly(t *testing.T) {
	s, clock := newTestSound(&seqRandom{draws: []int{0, 0}})
	buf := beginTrigger(t, s)
	s.SetRandomDelayRange(3_000_000_000, 3_000_000_000)

	s.StartRandom(30 * 24 * 3600)
	s.Idle()
	assert.Empty(t, buf.Bytes())

	clock.now = domain.Millis(domain.MaxDelay)
	s.Idle()
	require.NotEmpty(t, buf.Bytes())

	buf.Reset()
	clock.now++
	s.Idle()
	assert.Empty(t, buf.Bytes(), "the next window is capped, not already past")
}

func TestSoundService_RandomBanksMode(t *testing.T) {
	// draw 19 selects the 20th pool entry: bank 2, track 1, flat 20
	s, _ := newTestSound(&seqRandom{draws: []int{19}})
	buf := beginTrigger(t, s)
	s.SetRandomMode(domain.RandomBanks)

	s.PlayRandom()

	assert.Equal(t, []byte{'t', 19}, buf.Bytes())
	assert.Equal(t, 1, s.Status().BankCursors[1])
}

func TestSoundService_DeviceRandom(t *testing.T) {
	s, _ := newTestSound(nil)
	var buf bytes.Buffer
	require.NoError(t, s.Begin(context.Background(), domain.BackendHCR, &buf, domain.NoStartupTrack))
	buf.Reset()

	s.PlayRandom()

	assert.Equal(t, "<MM>", buf.String())
}

func TestSoundService_Volume(t *testing.T) {
	s, _ := newTestSound(nil)
	buf := beginTrigger(t, s)

	s.VolumeMax()
	assert.Equal(t, []byte{'v', 0}, buf.Bytes())

	buf.Reset()
	s.VolumeOff()
	assert.Equal(t, []byte{'v', 254}, buf.Bytes())
	assert.Equal(t, domain.VolumeSilent, s.Volume())

	buf.Reset()
	s.VolumeUp()
	assert.Equal(t, []byte{'v', 228}, buf.Bytes())
	assert.InDelta(t, 0.05, float64(s.Volume()), 1e-9)

	buf.Reset()
	s.SetVolume(3)
	assert.Equal(t, []byte{'v', 0}, buf.Bytes())
	assert.Equal(t, domain.VolumeMax, s.Volume())

	buf.Reset()
	s.VolumeDown()
	assert.InDelta(t, 0.95, float64(s.Volume()), 1e-9)
}

func TestSoundService_WriteErrorsAreSwallowed(t *testing.T) {
	factory := portsmocks.NewMockEncoderFactory(t)
	encoder := portsmocks.NewMockEncoder(t)
	factory.EXPECT().NewEncoder(domain.BackendMP3Trigger, mock.Anything).Return(encoder, nil)

	writeErr := errors.New("uart gone")
	encoder.EXPECT().Play(uint16(1)).Return(writeErr)
	encoder.EXPECT().SetVolume(mock.Anything).Return(writeErr)
	encoder.EXPECT().Stop().Return(writeErr)

	s := NewSoundService(factory, &fakeClock{}, &seqRandom{})
	require.NoError(t, s.Begin(context.Background(), domain.BackendMP3Trigger, &bytes.Buffer{}, domain.NoStartupTrack))

	assert.NotPanics(t, func() {
		s.PlayTrack(1)
		s.SetVolume(0.5)
		s.End()
	})
	assert.Equal(t, domain.BackendDisabled, s.Backend())
}

func TestSoundService_NoChannel(t *testing.T) {
	s, _ := newTestSound(nil)

	require.NoError(t, s.Begin(context.Background(), domain.BackendDFPlayer, nil, domain.NoStartupTrack))

	assert.NotPanics(t, func() {
		s.PlayTrack(1)
		s.VolumeOff()
	})
	assert.Equal(t, domain.BackendDFPlayer, s.Backend())
}

func TestSoundService_SuspendResume(t *testing.T) {
	s, clock := newTestSound(nil)
	beginTrigger(t, s)

	s.StartRandom(1)
	s.SuspendRandom()
	assert.False(t, s.Status().RandomArmed)

	clock.now = 10_000
	s.ResumeRandom(0)

	status := s.Status()
	assert.True(t, status.RandomArmed)
	assert.Equal(t, int32(12_000), status.RandomDueIn)
}
