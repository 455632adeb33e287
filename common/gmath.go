package common

import (
	"math"
	"math/rand/v2"
)

// PI2 is a full turn in radians.
const PI2 = math.Pi * 2.0

// Vec2 is a plain 2D vector used for ground-plane (x, y) math.
type Vec2 struct {
	X, Y float64
}

// Sign returns 1 for positive n, -1 for negative n and 0 otherwise.
//
// Parameters:
//   - n: the value to test
//
// Returns:
//   - float64: -1, 0 or 1
func Sign(n float64) float64 {
	if n > 0 {
		return 1
	}
	if n < 0 {
		return -1
	}
	return 0
}

// RoundFrac rounds n to the given number of decimal places.
//
// Parameters:
//   - n: the value to round
//   - places: number of decimal places to keep
//
// Returns:
//   - float64: the rounded value
func RoundFrac(n float64, places int) float64 {
	d := math.Pow(10, float64(places))
	return math.Round((n+0.000000001)*d) / d
}

// Clamp limits n to the closed range [min, max].
//
// Parameters:
//   - n: the value to clamp
//   - min: lower bound
//   - max: upper bound
//
// Returns:
//   - float64: n limited to [min, max]; NaN maps to min
func Clamp(n, min, max float64) float64 {
	switch {
	case !(n >= min):
		return min
	case n > max:
		return max
	}
	return n
}

// PMod is a modulus that is never negative, whatever the sign of n.
//
// Parameters:
//   - n: the dividend
//   - m: the (positive) divisor
//
// Returns:
//   - float64: a value in [0, m)
func PMod(n, m float64) float64 {
	r := math.Mod(math.Mod(n, m)+m, m)
	if r >= m {
		// math.Mod(-tiny + m, m) can round up to m
		return 0
	}
	return r
}

// NRand returns a uniform random number in [-1, 1).
//
// Parameters:
//   - rng: the random source to draw from
//
// Returns:
//   - float64: a value in [-1, 1)
func NRand(rng *rand.Rand) float64 {
	return rng.Float64()*2.0 - 1.0
}

// Angle returns the angle of the vector (x, y) in the range [0, 2π).
//
// Parameters:
//   - x, y: vector components
//
// Returns:
//   - float64: angle in radians in [0, 2π)
func Angle(x, y float64) float64 {
	return PMod(math.Atan2(y, x), PI2)
}

// DifAngle returns the signed shortest rotation from a0 to a1, in (-π, π].
// Both inputs may be any real angle; they are wrapped first.
//
// Parameters:
//   - a0: the starting angle in radians
//   - a1: the target angle in radians
//
// Returns:
//   - float64: the shortest signed difference a1 - a0
func DifAngle(a0, a1 float64) float64 {
	r := PMod(a1, PI2) - PMod(a0, PI2)
	switch {
	case r > math.Pi:
		r -= PI2
	case r < -math.Pi:
		r += PI2
	case r == -math.Pi:
		// keep the half-open interval so a and a+π differ by +π from both sides
		r = math.Pi
	}
	return r
}

// Length2D returns the length of v.
func Length2D(v Vec2) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// SetLength2D returns v scaled to length l. A zero-length v has no direction,
// so the result is (l, 0).
//
// Parameters:
//   - v: the vector to rescale
//   - l: the target length
//
// Returns:
//   - Vec2: the rescaled vector
func SetLength2D(v Vec2, l float64) Vec2 {
	s := Length2D(v)
	if s > 0.0 {
		s = l / s
		return Vec2{X: v.X * s, Y: v.Y * s}
	}
	return Vec2{X: l, Y: 0.0}
}

// Normalize2D returns v with unit length, or (1, 0) for the zero vector.
func Normalize2D(v Vec2) Vec2 {
	return SetLength2D(v, 1.0)
}
