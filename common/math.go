package common

import "math"

// FixedStep is the simulation tick length in seconds.
const FixedStep = 1.0 / 60.0

// TileSize is the number of screen pixels per world unit.
const TileSize = 32

// MoveTowards moves current toward target by at most maxDelta and never
// overshoots.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
