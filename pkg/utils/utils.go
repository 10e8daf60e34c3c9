package utils

import "math"

// Point returns a pointer of the given value.
func Point[T any](v T) *T {
	return &v
}

// RoundHalfAwayFromZero rounds a real-valued priority to the integral
// granularity the external system supports. Half values round away from
// zero so that two symmetric scores never collapse onto the same side.
func RoundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}
