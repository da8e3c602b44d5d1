// Package gamemath holds small numeric helpers shared by the simulation core
// and the presentation layer.
package gamemath

import (
	"cmp"
	"math"
	"slices"
)

// Clamp clamps v to [lo, hi]. A NaN v returns lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapToZero returns 0 when |v| <= eps, v otherwise.
func SnapToZero(v, eps float64) float64 {
	if math.Abs(v) <= eps {
		return 0
	}
	return v
}

// DrainTimer counts a timer down by dt. A timer that lands within eps of
// zero, or below it, ends at exactly zero so later "== 0" checks hold.
func DrainTimer(timer, dt, eps float64) float64 {
	if timer <= 0 {
		return 0
	}
	timer -= dt
	if timer <= eps {
		return 0
	}
	return timer
}

// SwapRemoveSorted removes the elements at the given indices by swapping
// each with the last element and truncating. Indices are sorted ascending
// and processed from the end backward, so an index collected earlier is
// never invalidated by a removal made before it. Duplicate and out of
// range indices are ignored. It returns the shortened slice.
func SwapRemoveSorted[T any](s []T, indices []int) []T {
	if len(indices) == 0 {
		return s
	}
	idx := slices.Clone(indices)
	slices.SortFunc(idx, cmp.Compare[int])
	idx = slices.Compact(idx)

	var zero T
	for i := len(idx) - 1; i >= 0; i-- {
		at := idx[i]
		if at < 0 || at >= len(s) {
			continue
		}
		last := len(s) - 1
		s[at] = s[last]
		s[last] = zero
		s = s[:last]
	}
	return s
}
