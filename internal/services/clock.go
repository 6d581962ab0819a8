package services

import (
	"math/rand/v2"
	"time"

	"github.com/penumbra-droid/droidsound/internal/domain"
	"github.com/penumbra-droid/droidsound/internal/ports"
)

// SystemClock counts milliseconds since it was created, wrapping at 32 bits
type SystemClock struct {
	start time.Time
}

// SystemRandom draws from the runtime's auto-seeded generator
type SystemRandom struct{}

// Verify interface compliance at compile time
var (
	_ ports.Clock        = (*SystemClock)(nil)
	_ ports.RandomSource = SystemRandom{}
)

// NewSystemClock starts a clock at zero
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns the monotonic elapsed milliseconds truncated to 32 bits
func (c *SystemClock) NowMillis() domain.Millis {
	return domain.Millis(uint32(time.Since(c.start).Milliseconds()))
}

// IntN returns a uniform int in [0, n)
func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}

// NewSeededRandom returns a reproducible source, for encode listings and tests
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
