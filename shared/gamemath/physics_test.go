package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
	assert.Equal(t, 0.0, Clamp(math.NaN(), 0, 10))
}

func TestDrainTimer(t *testing.T) {
	assert.Equal(t, 0.0, DrainTimer(0, 1.0/60, 0.02))
	assert.InDelta(t, 0.5-1.0/60, DrainTimer(0.5, 1.0/60, 0.02), 1e-12)
	// Within eps of zero snaps.
	assert.Equal(t, 0.0, DrainTimer(0.03, 0.015, 0.02))
	// Overshoot never leaves a negative residual.
	assert.Equal(t, 0.0, DrainTimer(0.01, 1.0/60, 0))

	// A full second drained at 60Hz ends at exactly zero.
	timer := 1.0
	for i := 0; i < 60; i++ {
		timer = DrainTimer(timer, 1.0/60, 0.02)
	}
	assert.Equal(t, 0.0, timer)
}

func TestSnapToZero(t *testing.T) {
	assert.Equal(t, 0.0, SnapToZero(0.01, 0.02))
	assert.Equal(t, 0.0, SnapToZero(-0.02, 0.02))
	assert.Equal(t, 0.3, SnapToZero(0.3, 0.02))
}

func TestSwapRemoveSorted(t *testing.T) {
	t.Run("removes 1 and 3 from five", func(t *testing.T) {
		got := SwapRemoveSorted([]string{"a", "b", "c", "d", "e"}, []int{3, 1})
		assert.ElementsMatch(t, []string{"a", "c", "e"}, got)
	})

	t.Run("collection order does not matter", func(t *testing.T) {
		a := SwapRemoveSorted([]int{0, 1, 2, 3, 4}, []int{1, 3})
		b := SwapRemoveSorted([]int{0, 1, 2, 3, 4}, []int{3, 1})
		assert.Equal(t, a, b)
		assert.ElementsMatch(t, []int{0, 2, 4}, a)
	})

	t.Run("duplicates and out of range", func(t *testing.T) {
		got := SwapRemoveSorted([]int{0, 1, 2}, []int{2, 2, -1, 7})
		assert.Equal(t, []int{0, 1}, got)
	})

	t.Run("remove everything", func(t *testing.T) {
		got := SwapRemoveSorted([]int{0, 1, 2}, []int{0, 1, 2})
		assert.Empty(t, got)
	})

	t.Run("no indices", func(t *testing.T) {
		in := []int{4, 5}
		assert.Equal(t, in, SwapRemoveSorted(in, nil))
	})
}
