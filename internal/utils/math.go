package utils

import "math"

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round converts to the nearest int, halves away from zero.
func Round(f float64) int {
	return int(math.Round(f))
}

// DarkenChannel subtracts d from an 8-bit colour channel, floored at 0.
func DarkenChannel(c, d uint8) uint8 {
	if c > d {
		return c - d
	}
	return 0
}
