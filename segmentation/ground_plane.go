package segmentation

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/planeseg/utils"
)

// Defaults applied by NewGroundPlaneComparator.
const (
	defaultGroundPairwiseToleranceDegs = 2.0
	defaultGroundAxisToleranceDegs     = 10.0
)

// GroundPlaneComparator accepts two neighboring cells when both look like
// ground surface: cell i's normal must agree with the expected ground normal
// and with cell j's normal. Positions are not consulted; grid adjacency is
// proximity enough for organized frames.
type GroundPlaneComparator struct {
	planeInputs
	angularThreshold       float64
	groundAngularThreshold float64
	groundNormal           r3.Vector
}

// NewGroundPlaneComparator returns a comparator expecting ground normals
// along (0, -1, 0), with a 2 degree pairwise tolerance and a 10 degree
// ground tolerance.
func NewGroundPlaneComparator() *GroundPlaneComparator {
	c := &GroundPlaneComparator{
		groundNormal: r3.Vector{X: 0, Y: -1, Z: 0},
	}
	c.SetAngularThreshold(utils.DegToRad(defaultGroundPairwiseToleranceDegs))
	c.SetGroundAngularThreshold(utils.DegToRad(defaultGroundAxisToleranceDegs))
	return c
}

// SetAngularThreshold sets the pairwise tolerance in radians for difference
// in normal direction between neighboring cells. The cosine of the angle is
// stored; the angle must be in [0, π].
func (c *GroundPlaneComparator) SetAngularThreshold(angle float64) {
	c.angularThreshold = math.Cos(angle)
}

// AngularThreshold returns the pairwise angular tolerance in radians.
func (c *GroundPlaneComparator) AngularThreshold() float64 {
	return math.Acos(c.angularThreshold)
}

// SetGroundAngularThreshold sets the tolerance in radians between a cell's
// normal and the expected ground normal. The cosine of the angle is stored.
func (c *GroundPlaneComparator) SetGroundAngularThreshold(angle float64) {
	c.groundAngularThreshold = math.Cos(angle)
}

// GroundAngularThreshold returns the ground tolerance in radians.
func (c *GroundPlaneComparator) GroundAngularThreshold() float64 {
	return math.Acos(c.groundAngularThreshold)
}

// SetExpectedGroundNormal sets the ground plane normal expected with respect
// to the sensor, e.g. (0, -1, 0) for a forward-facing camera over level
// ground.
func (c *GroundPlaneComparator) SetExpectedGroundNormal(normal r3.Vector) {
	c.groundNormal = normal
}

// ExpectedGroundNormal returns the expected ground normal.
func (c *GroundPlaneComparator) ExpectedGroundNormal() r3.Vector {
	return c.groundNormal
}

// Compare reports whether cells i and j both lie on the ground surface: cell
// i's normal must be within the ground tolerance of the expected ground
// normal and within the pairwise tolerance of cell j's normal. Only cell i
// is checked against the ground normal, so the two orders can disagree at
// the rim of the ground region.
func (c *GroundPlaneComparator) Compare(i, j int) bool {
	return c.normals[i].Dot(c.groundNormal) > c.groundAngularThreshold &&
		c.normals[i].Dot(c.normals[j]) > c.angularThreshold
}
