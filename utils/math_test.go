package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegToRad(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-9, 1e-8), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-8), test.ShouldBeFalse)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-2.5), test.ShouldEqual, 6.25)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(5, 0, 10), test.ShouldEqual, 5)
	test.That(t, Clamp(-5, 0, 10), test.ShouldEqual, 0)
	test.That(t, Clamp(15, 0, 10), test.ShouldEqual, 10)
	test.That(t, Clamp(0, 0, 10), test.ShouldEqual, 0)
}
