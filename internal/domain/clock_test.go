package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillis_Reached(t *testing.T) {
	tests := []struct {
		name     string
		now      Millis
		due      Millis
		expected bool
	}{
		{"before due", 999, 1000, false},
		{"exactly due", 1000, 1000, true},
		{"after due", 1500, 1000, true},
		{"due after rollover, now before", math.MaxUint32 - 10, 5, false},
		{"due after rollover, now after", 6, 5, true},
		{"now wrapped past due set before rollover", 3, math.MaxUint32 - 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.now.Reached(tt.due))
		})
	}
}

func TestMillis_AddWraps(t *testing.T) {
	start := Millis(math.MaxUint32 - 499)

	due := start.Add(1000)

	assert.Equal(t, Millis(500), due)
	assert.Equal(t, int32(1000), due.Since(start))
	assert.False(t, start.Reached(due))
}

func TestSecondsToMillis(t *testing.T) {
	tests := []struct {
		name     string
		seconds  uint32
		expected uint32
	}{
		{"zero", 0, 0},
		{"resume default", 12, 12000},
		{"last whole second under the limit", MaxDelay / 1000, MaxDelay / 1000 * 1000},
		{"thirty days", 30 * 24 * 3600, MaxDelay},
		{"would overflow", math.MaxUint32, MaxDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SecondsToMillis(tt.seconds))
		})
	}
}

func TestMillis_AddCapsDelay(t *testing.T) {
	due := Millis(0).Add(math.MaxUint32)

	assert.Equal(t, Millis(MaxDelay), due)
	assert.False(t, Millis(1).Reached(due))
}
