package services

import (
	"context"
	"errors"
	"time"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/logging"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// DefaultPollInterval is how often Runner polls the session
const DefaultPollInterval = 50 * time.Millisecond

// ErrRunnerStopped is returned for requests made after Run has returned
var ErrRunnerStopped = errors.New("sound runner stopped")

// Runner owns a SoundService on a single goroutine. Requests from any
// goroutine are queued and run in order between polls.
type Runner struct {
	handler  ports.CommandHandler
	interval time.Duration
	requests chan func()
	sound    *SoundService
	stopped  chan struct{}
}

// Verify interface compliance at compile time
var _ ports.CommandHandler = (*Runner)(nil)

// NewRunner creates a runner. handler receives Dispatch calls on the owning goroutine.
func NewRunner(sound *SoundService, handler ports.CommandHandler, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Runner{
		handler:  handler,
		interval: interval,
		requests: make(chan func()),
		sound:    sound,
		stopped:  make(chan struct{}),
	}
}

// Run polls the session until ctx is cancelled, then ends it
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logging.Logger.Info("Sound runner started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			r.sound.End()
			logging.Logger.Info("Sound runner stopped")
			return nil
		case <-ticker.C:
			r.sound.Idle()
		case fn := <-r.requests:
			fn()
		}
	}
}

// Do runs fn on the owning goroutine and waits for it to finish
func (r *Runner) Do(ctx context.Context, fn func(s *SoundService)) error {
	done := make(chan struct{})
	req := func() {
		defer close(done)
		fn(r.sound)
	}

	select {
	case r.requests <- req:
	case <-r.stopped:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	<-done
	return nil
}

// Dispatch routes a command on the owning goroutine
func (r *Runner) Dispatch(ctx context.Context, command string) (bool, error) {
	var handled bool
	err := r.Do(ctx, func(*SoundService) {
		handled = r.handler.Handle(command)
	})
	return handled, err
}

// Status snapshots the session on the owning goroutine
func (r *Runner) Status(ctx context.Context) (domain.SoundStatus, error) {
	var status domain.SoundStatus
	err := r.Do(ctx, func(s *SoundService) {
		status = s.Status()
	})
	return status, err
}

// Handle implements ports.CommandHandler for callers without a context
func (r *Runner) Handle(command string) bool {
	handled, err := r.Dispatch(context.Background(), command)
	if err != nil {
		logging.Logger.Warn("Command dropped", "command", command, "error", err)
	}
	return handled
}

// Done is closed once Run has returned
func (r *Runner) Done() <-chan struct{} {
	return r.stopped
}
