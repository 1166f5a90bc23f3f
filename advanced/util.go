package advanced

import "math"

const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. Angle
// comparisons in the hull walk rely on this, since two collinear candidates
// rarely produce bit-identical bearings.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
