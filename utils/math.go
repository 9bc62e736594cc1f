// Package utils contains shared scalar helpers used across the geometry
// packages.
package utils

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual reports whether two floats are within epsilon of each
// other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// Math.pow( x, 2 ) is slow, this is faster
func Square(n float64) float64 {
	return n * n
}

// Clamp restricts a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
