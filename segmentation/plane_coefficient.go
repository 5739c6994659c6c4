package segmentation

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/planeseg/utils"
)

// Defaults applied by NewPlaneCoefficientComparator.
const (
	defaultPlaneAngularToleranceDegs = 2.0
	defaultPlaneDistanceThreshold    = 0.02
)

// PlaneCoefficientComparator accepts two neighboring cells when the d
// coefficients of their fitted planes agree and their normals point the same
// way. It is the plane-consistency member of the comparator family:
// positions are consulted only for the optional depth scaling, colors not at
// all.
type PlaneCoefficientComparator struct {
	planeInputs
	angularThreshold  float64
	distanceThreshold float64
	depthDependent    bool
	zAxis             r3.Vector
}

// NewPlaneCoefficientComparator returns a comparator with a 2 degree angular
// tolerance and a depth-scaled 0.02 distance threshold.
func NewPlaneCoefficientComparator() *PlaneCoefficientComparator {
	c := &PlaneCoefficientComparator{
		distanceThreshold: defaultPlaneDistanceThreshold,
		depthDependent:    true,
		zAxis:             r3.Vector{X: 0, Y: 0, Z: 1},
	}
	c.SetAngularThreshold(utils.DegToRad(defaultPlaneAngularToleranceDegs))
	return c
}

// SetAngularThreshold sets the tolerance in radians for difference in normal
// direction between neighboring cells. The cosine of the angle is stored;
// the angle must be in [0, π].
func (c *PlaneCoefficientComparator) SetAngularThreshold(angle float64) {
	c.angularThreshold = math.Cos(angle)
}

// AngularThreshold returns the angular tolerance in radians.
func (c *PlaneCoefficientComparator) AngularThreshold() float64 {
	return math.Acos(c.angularThreshold)
}

// SetDistanceThreshold sets the tolerance for difference in the d component
// of the plane equation between neighboring cells. With depthDependent set,
// Compare scales the tolerance by the squared viewing depth of its first
// cell, loosening the test for far away geometry.
func (c *PlaneCoefficientComparator) SetDistanceThreshold(threshold float64, depthDependent bool) {
	c.distanceThreshold = threshold
	c.depthDependent = depthDependent
}

// DistanceThreshold returns the unscaled distance tolerance.
func (c *PlaneCoefficientComparator) DistanceThreshold() float64 {
	return c.distanceThreshold
}

// Compare reports whether the fitted planes of cells i and j agree: the
// difference of their d coefficients must fall under the possibly
// depth-scaled distance tolerance, and their normals' dot product must
// exceed the stored angular cosine. Depth scaling reads only cell i, so a
// pair straddling a depth step can compare differently in the two orders.
func (c *PlaneCoefficientComparator) Compare(i, j int) bool {
	threshold := c.distanceThreshold
	if c.depthDependent {
		z := c.points[i].P.Dot(c.zAxis)
		threshold *= z * z
	}
	return math.Abs(c.planeCoeffD[i]-c.planeCoeffD[j]) < threshold &&
		c.normals[i].Dot(c.normals[j]) > c.angularThreshold
}
