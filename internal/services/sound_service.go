package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// SoundService is the single owner of a sound session: the active backend,
// its encoder and channel, the volume, the bank cursors and the random scheduler.
// It is not safe for concurrent use; see Runner.
type SoundService struct {
	backend domain.Backend
	encoder ports.Encoder
	profile domain.Profile

	banks     *domain.BankTable
	lastTrack uint16
	scheduler *Scheduler
	volume    domain.Volume

	startupDue     domain.Millis
	startupPending bool
	startupTrack   int

	clock   ports.Clock
	factory ports.EncoderFactory
}

// NewSoundService creates a Disabled session
func NewSoundService(factory ports.EncoderFactory, clock ports.Clock, rng ports.RandomSource) *SoundService {
	return &SoundService{
		backend:      domain.BackendDisabled,
		banks:        domain.NewBankTable(),
		clock:        clock,
		factory:      factory,
		profile:      domain.BackendDisabled.Profile(),
		scheduler:    NewScheduler(rng),
		startupTrack: domain.NoStartupTrack,
		volume:       domain.VolumeDefault,
	}
}

// Begin activates backend on ch. Any previous session is ended first; if the
// module handshake fails the session stays Disabled and the error is returned.
// A startup track below 1 disables the startup sound.
func (s *SoundService) Begin(ctx context.Context, backend domain.Backend, ch ports.Channel, startupTrack int) error {
	s.End()

	if !backend.Enabled() {
		return nil
	}

	encoder, err := s.factory.NewEncoder(backend, ch)
	if err != nil {
		return fmt.Errorf("failed to create encoder: %w", err)
	}

	if init, ok := encoder.(ports.Initializer); ok && ch != nil {
		if err := init.Init(ctx); err != nil {
			logging.Logger.Error("Sound module init failed", "backend", backend.String(), "error", err)
			return fmt.Errorf("failed to initialize %s: %w", backend.Name(), err)
		}
	}

	s.banks.Reset()
	s.scheduler.Reset()
	s.backend = backend
	s.encoder = encoder
	s.lastTrack = 0
	s.profile = backend.Profile()
	s.startupTrack = max(startupTrack, domain.NoStartupTrack)
	if s.startupTrack < 1 {
		s.startupTrack = domain.NoStartupTrack
	}

	logging.Logger.Info("Sound session started",
		"backend", backend.String(),
		"startup_track", s.startupTrack,
		"settle_ms", s.profile.SettleTime)

	if s.startupTrack >= 1 {
		if s.profile.SettleTime == 0 {
			s.PlayStartSound()
		} else {
			s.startupPending = true
			s.startupDue = s.clock.NowMillis().Add(uint32(s.profile.SettleTime))
		}
	}
	return nil
}

// End stops playback, releases the encoder and returns to Disabled
func (s *SoundService) End() {
	if s.active() {
		s.report("stop", s.encoder.Stop())
		logging.Logger.Info("Sound session ended", "backend", s.backend.String())
	}
	s.backend = domain.BackendDisabled
	s.encoder = nil
	s.profile = domain.BackendDisabled.Profile()
	s.scheduler.Reset()
	s.startupPending = false
}

// Backend returns the active backend
func (s *SoundService) Backend() domain.Backend {
	return s.backend
}

// Volume returns the current unit volume
func (s *SoundService) Volume() domain.Volume {
	return s.volume
}

// PlayTrack plays a flat track, clamped to the backend's addressing range
func (s *SoundService) PlayTrack(flat int) {
	if !s.active() {
		return
	}
	track := s.profile.ClampTrack(flat)
	s.lastTrack = track
	logging.Logger.Debug("Playing track", "track", track)
	s.report("play", s.encoder.Play(track))
}

// PlaySound plays by legacy bank and in-bank track; track 0 means "next".
// Addresses outside the bank table are dropped.
func (s *SoundService) PlaySound(bank, track int) {
	if !s.active() {
		return
	}
	flat, ok := s.banks.Flatten(bank, track, s.profile.MaxTrack)
	if !ok {
		logging.Logger.Debug("Dropping invalid bank address", "bank", bank, "track", track)
		return
	}
	s.PlayTrack(int(flat))
}

// PlayRandom plays one random sound now. Devices with their own random
// selection pick it themselves.
func (s *SoundService) PlayRandom() {
	if !s.active() {
		return
	}
	if rp, ok := s.encoder.(ports.RandomPlayer); ok {
		logging.Logger.Debug("Playing device random")
		s.report("random", rp.PlayRandom())
		return
	}
	if s.scheduler.Mode() == domain.RandomBanks {
		bank, track := s.banks.FromPool(s.scheduler.PickPool(s.banks.PoolSize()))
		s.PlaySound(bank, track)
		return
	}
	s.PlayTrack(s.scheduler.PickTrack())
}

// PlayStartSound plays the configured startup track, if any
func (s *SoundService) PlayStartSound() {
	s.startupPending = false
	if s.startupTrack < 1 {
		return
	}
	s.PlayTrack(s.startupTrack)
}

// Stop halts playback
func (s *SoundService) Stop() {
	if !s.active() {
		return
	}
	s.report("stop", s.encoder.Stop())
}

// SetVolume clamps v into [0, 1] and writes the backend's native level
func (s *SoundService) SetVolume(v domain.Volume) {
	if !s.active() {
		return
	}
	s.volume = v.Clamp()
	level := s.profile.NativeVolume(s.volume)
	logging.Logger.Debug("Setting volume", "volume", float64(s.volume), "level", level)
	s.report("volume", s.encoder.SetVolume(level))
}

// SetVolumeSteps sets the volume to steps/20
func (s *SoundService) SetVolumeSteps(steps int) {
	s.SetVolume(domain.VolumeFromSteps(steps))
}

// VolumeUp raises the volume one step
func (s *SoundService) VolumeUp() {
	s.SetVolumeSteps(s.steps() + 1)
}

// VolumeDown lowers the volume one step
func (s *SoundService) VolumeDown() {
	s.SetVolumeSteps(s.steps() - 1)
}

func (s *SoundService) VolumeMin() {
	s.SetVolume(domain.VolumeMin)
}

func (s *SoundService) VolumeMid() {
	s.SetVolume(domain.VolumeMid)
}

func (s *SoundService) VolumeMax() {
	s.SetVolume(domain.VolumeMax)
}

// VolumeOff sends the backend's explicit mute and records silence
func (s *SoundService) VolumeOff() {
	if !s.active() {
		return
	}
	s.volume = domain.VolumeSilent
	s.report("mute", s.encoder.Mute())
}

// StartRandom arms random playback to begin after seconds
func (s *SoundService) StartRandom(seconds uint32) {
	if !s.active() {
		return
	}
	s.scheduler.Start(s.clock.NowMillis(), seconds)
}

// StopRandom disarms random playback
func (s *SoundService) StopRandom() {
	if !s.active() {
		return
	}
	s.scheduler.Stop()
}

// SuspendRandom pauses random playback, remembering whether it was on
func (s *SoundService) SuspendRandom() {
	if !s.active() {
		return
	}
	s.scheduler.Suspend()
}

// ResumeRandom re-arms random playback after seconds if it was on before SuspendRandom.
// Zero seconds uses the default resume delay.
func (s *SoundService) ResumeRandom(seconds uint32) {
	if !s.active() {
		return
	}
	s.scheduler.Resume(s.clock.NowMillis(), seconds)
}

// Idle is the periodic poll: it plays a pending startup track once the module
// has settled, and a random track when one is due.
func (s *SoundService) Idle() {
	if !s.active() {
		return
	}
	now := s.clock.NowMillis()

	if s.startupPending && now.Reached(s.startupDue) {
		s.PlayStartSound()
	}

	if s.scheduler.Due(now) {
		s.PlayRandom()
		s.scheduler.Rearm(now)
	}
}

// SetRandomTrackRange sets the flat range random tracks are drawn from.
// Scheduler tuning is kept while Disabled so it survives a later Begin.
func (s *SoundService) SetRandomTrackRange(lo, hi uint16) {
	s.scheduler.SetTrackRange(lo, hi)
}

// SetRandomDelayRange sets the bounds of the pause between random tracks
func (s *SoundService) SetRandomDelayRange(minMs, maxMs uint32) {
	s.scheduler.SetDelayRange(minMs, maxMs)
}

// SetRandomMode selects flat-range or legacy bank-pool random picking
func (s *SoundService) SetRandomMode(mode domain.RandomMode) {
	s.scheduler.SetMode(mode)
}

// Status returns a snapshot of the session
func (s *SoundService) Status() domain.SoundStatus {
	lo, hi := s.scheduler.TrackRange()
	minMs, maxMs := s.scheduler.DelayRange()
	return domain.SoundStatus{
		Backend:        s.backend,
		BankCursors:    s.banks.Cursors(),
		LastTrack:      s.lastTrack,
		RandomArmed:    s.scheduler.Armed(),
		RandomDueIn:    s.scheduler.DueIn(s.clock.NowMillis()),
		RandomHi:       hi,
		RandomLo:       lo,
		RandomMaxDelay: maxMs,
		RandomMinDelay: minMs,
		RandomMode:     s.scheduler.Mode(),
		StartupTrack:   s.startupTrack,
		Volume:         s.volume,
	}
}

func (s *SoundService) active() bool {
	return s.backend.Enabled() && s.encoder != nil
}

func (s *SoundService) steps() int {
	return int(math.Round(float64(s.volume) * domain.VolumeSteps))
}

// report logs a device write failure; playback is fire and forget
func (s *SoundService) report(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoChannel):
		logging.Logger.Debug("No channel bound, write skipped", "op", op)
	default:
		logging.Logger.Warn("Sound module write failed", "op", op, "backend", s.backend.String(), "error", err)
	}
}
