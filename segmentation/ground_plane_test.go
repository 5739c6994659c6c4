package segmentation

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	pc "go.viam.com/planeseg/pointcloud"
	"go.viam.com/planeseg/utils"
)

// groundNormalAt returns a unit normal tilted the given number of degrees off
// the default (0, -1, 0) ground axis.
func groundNormalAt(degs float64) r3.Vector {
	rad := utils.DegToRad(degs)
	return r3.Vector{X: 0, Y: -math.Cos(rad), Z: math.Sin(rad)}
}

func TestGroundPlaneDefaults(t *testing.T) {
	c := NewGroundPlaneComparator()
	test.That(t, c.AngularThreshold(), test.ShouldAlmostEqual, utils.DegToRad(2))
	test.That(t, c.GroundAngularThreshold(), test.ShouldAlmostEqual, utils.DegToRad(10))
	test.That(t, c.ExpectedGroundNormal(), test.ShouldResemble, r3.Vector{X: 0, Y: -1, Z: 0})
}

func TestGroundPlaneCompare(t *testing.T) {
	// Positions are never consulted by this comparator.
	points := make([]pc.Point, 4)
	normals := []r3.Vector{
		groundNormalAt(0),  // flat ground
		groundNormalAt(1),  // within both tolerances of cell 0
		groundNormalAt(15), // too tilted to be ground
		{X: 0, Y: 0, Z: 1}, // a wall
	}

	c := NewGroundPlaneComparator()
	c.SetInputCloud(points)
	c.SetInputNormals(normals)

	test.That(t, c.Compare(0, 1), test.ShouldBeTrue)
	test.That(t, c.Compare(1, 0), test.ShouldBeTrue)

	// Cell 2 tilts 15 degrees off the ground axis: past the 10 degree ground
	// tolerance whenever it is the first cell.
	test.That(t, c.Compare(2, 0), test.ShouldBeFalse)
	// And paired from cell 0, the 15 degree bend fails the pairwise check.
	test.That(t, c.Compare(0, 2), test.ShouldBeFalse)

	// A wall normal fails the ground check outright.
	test.That(t, c.Compare(3, 0), test.ShouldBeFalse)
}

func TestGroundPlaneRimAsymmetry(t *testing.T) {
	points := make([]pc.Point, 2)
	// 9.5 and 10.5 degrees off the ground axis, one degree apart: the pair
	// straddles the 10 degree ground tolerance.
	normals := []r3.Vector{groundNormalAt(9.5), groundNormalAt(10.5)}

	c := NewGroundPlaneComparator()
	c.SetInputCloud(points)
	c.SetInputNormals(normals)

	// Only the first cell is held against the ground axis, so the two orders
	// disagree at the rim of the ground region.
	test.That(t, c.Compare(0, 1), test.ShouldBeTrue)
	test.That(t, c.Compare(1, 0), test.ShouldBeFalse)
}

func TestGroundPlaneCustomAxis(t *testing.T) {
	points := make([]pc.Point, 2)
	normals := []r3.Vector{{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}}

	c := NewGroundPlaneComparator()
	c.SetInputCloud(points)
	c.SetInputNormals(normals)
	test.That(t, c.Compare(0, 1), test.ShouldBeFalse)

	// Reorienting the expected ground normal follows the sensor mount.
	c.SetExpectedGroundNormal(r3.Vector{X: 0, Y: 0, Z: 1})
	test.That(t, c.ExpectedGroundNormal(), test.ShouldResemble, r3.Vector{X: 0, Y: 0, Z: 1})
	test.That(t, c.Compare(0, 1), test.ShouldBeTrue)
}
