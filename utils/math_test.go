package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversions(t *testing.T) {
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, DegToRad(90), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi), test.ShouldAlmostEqual, 180)
	test.That(t, RadToDeg(DegToRad(36.5)), test.ShouldAlmostEqual, 36.5)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(2.5), test.ShouldEqual, 6.25)
	test.That(t, Square(-0.02), test.ShouldAlmostEqual, 0.0004)
	test.That(t, Square(0), test.ShouldEqual, 0)

	test.That(t, SquareInt(9), test.ShouldEqual, 81)
	test.That(t, SquareInt(-3), test.ShouldEqual, 9)
	test.That(t, SquareInt(0), test.ShouldEqual, 0)
}
