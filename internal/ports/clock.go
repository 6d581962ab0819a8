package ports

import "github.com/penumbra-droid/droidsound/internal/domain"

// Clock provides the wrapping monotonic millisecond counter
type Clock interface {
	NowMillis() domain.Millis
}

// RandomSource draws uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}
