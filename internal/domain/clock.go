package domain

import "math"

// MaxDelay is the longest delay Reached can tell apart from a due time in the past
const MaxDelay uint32 = math.MaxInt32

// Millis is a wrapping 32-bit monotonic millisecond counter.
// Ordering must go through Since/Reached so that a counter rollover
// (every ~49.7 days) never leaves a due time stuck or always firing.
type Millis uint32

// Add returns m advanced by d milliseconds, wrapping on overflow.
// d is capped at MaxDelay.
func (m Millis) Add(d uint32) Millis {
	return m + Millis(ClampDelay(d))
}

// ClampDelay caps d at MaxDelay
func ClampDelay(d uint32) uint32 {
	return min(d, MaxDelay)
}

// Since returns the signed distance from earlier to m.
// The subtraction wraps in the unsigned domain and is then read as signed.
func (m Millis) Since(earlier Millis) int32 {
	return int32(uint32(m) - uint32(earlier))
}

// Reached reports whether m is at or past due
func (m Millis) Reached(due Millis) bool {
	return m.Since(due) >= 0
}

// SecondsToMillis converts whole seconds into a millisecond delay, capped at MaxDelay
func SecondsToMillis(seconds uint32) uint32 {
	if seconds > MaxDelay/1000 {
		return MaxDelay
	}
	return seconds * 1000
}
