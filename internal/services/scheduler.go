package services

import (
	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// Scheduler decides when an ambient random track is due and which one.
// It is Idle or Armed; it never fires on its own and must be polled with Due.
type Scheduler struct {
	armed     bool
	due       domain.Millis
	suspended bool

	hi       uint16
	lo       uint16
	maxDelay uint32
	minDelay uint32
	mode     domain.RandomMode

	rng ports.RandomSource
}

// NewScheduler creates an idle scheduler with the default ranges
func NewScheduler(rng ports.RandomSource) *Scheduler {
	return &Scheduler{
		hi:       domain.DefaultRandomHi,
		lo:       domain.DefaultRandomLo,
		maxDelay: domain.DefaultRandomMaxDelay,
		minDelay: domain.DefaultRandomMinDelay,
		mode:     domain.RandomRange,
		rng:      rng,
	}
}

// Start arms the scheduler to fire seconds from now
func (s *Scheduler) Start(now domain.Millis, seconds uint32) {
	s.armed = true
	s.suspended = false
	s.due = now.Add(domain.SecondsToMillis(seconds))
}

// Stop returns to Idle and forgets any suspension
func (s *Scheduler) Stop() {
	s.armed = false
	s.suspended = false
	s.due = 0
}

// Suspend disarms but remembers whether random playback was on
func (s *Scheduler) Suspend() {
	s.suspended = s.suspended || s.armed
	s.armed = false
}

// Resume re-arms with a fresh window if random playback was on before Suspend.
// Zero seconds means the default resume delay.
func (s *Scheduler) Resume(now domain.Millis, seconds uint32) bool {
	if !s.suspended {
		return false
	}
	if seconds == 0 {
		seconds = domain.DefaultResumeSeconds
	}
	s.Start(now, seconds)
	return true
}

// Reset drops any schedule, used when the backend changes
func (s *Scheduler) Reset() {
	s.Stop()
}

// Armed reports whether a due time is pending
func (s *Scheduler) Armed() bool {
	return s.armed
}

// Due reports whether the pending due time has been reached
func (s *Scheduler) Due(now domain.Millis) bool {
	return s.armed && now.Reached(s.due)
}

// DueIn returns the signed milliseconds until the next trigger (0 when idle)
func (s *Scheduler) DueIn(now domain.Millis) int32 {
	if !s.armed {
		return 0
	}
	return s.due.Since(now)
}

// Rearm schedules the next trigger a random delay after now
func (s *Scheduler) Rearm(now domain.Millis) {
	s.armed = true
	s.due = now.Add(s.NextDelay())
}

// NextDelay draws uniformly from [minDelay, maxDelay]
func (s *Scheduler) NextDelay() uint32 {
	span := s.maxDelay - s.minDelay
	if span == 0 {
		return s.minDelay
	}
	return s.minDelay + uint32(s.rng.IntN(int(span)+1))
}

// PickTrack draws a flat track uniformly from [lo, hi]
func (s *Scheduler) PickTrack() int {
	return int(s.lo) + s.rng.IntN(int(s.hi-s.lo)+1)
}

// PickPool draws a 1-based index uniformly from a pool of size n
func (s *Scheduler) PickPool(n int) int {
	if n < 1 {
		return 1
	}
	return 1 + s.rng.IntN(n)
}

// SetTrackRange sets the flat track bounds, reordering them when reversed
func (s *Scheduler) SetTrackRange(lo, hi uint16) {
	lo, hi = max(lo, 1), max(hi, 1)
	if lo > hi {
		lo, hi = hi, lo
	}
	s.lo, s.hi = lo, hi
}

// SetDelayRange sets the delay bounds in milliseconds, within [1, domain.MaxDelay]
func (s *Scheduler) SetDelayRange(minMs, maxMs uint32) {
	minMs, maxMs = domain.ClampDelay(max(minMs, 1)), domain.ClampDelay(max(maxMs, 1))
	if minMs > maxMs {
		minMs, maxMs = maxMs, minMs
	}
	s.minDelay, s.maxDelay = minMs, maxMs
}

// SetMode selects flat-range or legacy bank-pool picking
func (s *Scheduler) SetMode(mode domain.RandomMode) {
	if mode == "" {
		mode = domain.RandomRange
	}
	s.mode = mode
}

// Mode returns the picking mode
func (s *Scheduler) Mode() domain.RandomMode {
	return s.mode
}

// TrackRange returns the flat track bounds
func (s *Scheduler) TrackRange() (lo, hi uint16) {
	return s.lo, s.hi
}

// DelayRange returns the delay bounds in milliseconds
func (s *Scheduler) DelayRange() (minMs, maxMs uint32) {
	return s.minDelay, s.maxDelay
}
