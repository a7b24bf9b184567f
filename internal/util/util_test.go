package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value  float64
		places int
		want   float64
	}{
		{value: 50, places: 2, want: 50},
		{value: 100.0 / 3.0, places: 2, want: 33.33},
		{value: 200.0 / 3.0, places: 2, want: 66.67},
		{value: 1.005 * 1000, places: 0, want: 1005},
		{value: 12.345678, places: 1, want: 12.3},
		{value: 0, places: 2, want: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundTo(tt.value, tt.places), 1e-9)
	}
}

func TestNewULID(t *testing.T) {
	a := NewULID()
	b := NewULID()

	assert.Len(t, a, 26)
	assert.True(t, IsULID(a))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
	assert.False(t, IsULID("not-a-ulid"))
}
