package segmentation

import (
	"math"

	"go.viam.com/planeseg/utils"
)

// Defaults applied by NewEuclideanPlaneComparator.
const (
	defaultEuclideanAngularToleranceDegs = 2.0
	defaultEuclideanDistanceThreshold    = 0.02 // meters
)

// EuclideanPlaneComparator accepts two neighboring cells when they are
// within a euclidean distance of each other and their normals agree. Unlike
// RGBPlaneComparator it stores the distance threshold as given and compares
// the raw distance against it.
type EuclideanPlaneComparator struct {
	planeInputs
	angularThreshold  float64
	distanceThreshold float64
}

// NewEuclideanPlaneComparator returns a comparator with a 2 degree angular
// tolerance and a 0.02 meter distance threshold.
func NewEuclideanPlaneComparator() *EuclideanPlaneComparator {
	c := &EuclideanPlaneComparator{
		distanceThreshold: defaultEuclideanDistanceThreshold,
	}
	c.SetAngularThreshold(utils.DegToRad(defaultEuclideanAngularToleranceDegs))
	return c
}

// SetAngularThreshold sets the tolerance in radians for difference in normal
// direction between neighboring cells. The cosine of the angle is stored;
// the angle must be in [0, π].
func (c *EuclideanPlaneComparator) SetAngularThreshold(angle float64) {
	c.angularThreshold = math.Cos(angle)
}

// AngularThreshold returns the angular tolerance in radians.
func (c *EuclideanPlaneComparator) AngularThreshold() float64 {
	return math.Acos(c.angularThreshold)
}

// SetDistanceThreshold sets the euclidean distance in meters under which two
// cells may merge.
func (c *EuclideanPlaneComparator) SetDistanceThreshold(threshold float64) {
	c.distanceThreshold = threshold
}

// DistanceThreshold returns the distance threshold in meters.
func (c *EuclideanPlaneComparator) DistanceThreshold() float64 {
	return c.distanceThreshold
}

// Compare reports whether cells i and j are close and locally coplanar:
// their euclidean distance must fall under the distance threshold and their
// normals' dot product must exceed the stored angular cosine.
func (c *EuclideanPlaneComparator) Compare(i, j int) bool {
	return c.points[i].P.Distance(c.points[j].P) < c.distanceThreshold &&
		c.normals[i].Dot(c.normals[j]) > c.angularThreshold
}
