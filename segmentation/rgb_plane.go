package segmentation

import (
	"math"
)

// Defaults applied by NewRGBPlaneComparator, in configured (untransformed)
// units.
const (
	defaultRGBAngularThreshold  = 0.0  // radians
	defaultRGBDistanceThreshold = 0.02 // meters
	defaultRGBColorThreshold    = 50.0
)

// RGBPlaneComparator is the color-aware member of the comparator family: it
// accepts two neighboring cells when they are close, their normals agree and
// their colors match, so that differently colored coplanar regions segment
// apart.
//
// All three thresholds are stored in the representation the hot path
// compares against: the cosine of the angular threshold, the squares of the
// distance and color thresholds.
type RGBPlaneComparator struct {
	planeInputs
	angularThreshold  float64
	distanceThreshold float64
	colorThreshold    float64
}

// NewRGBPlaneComparator returns a comparator with the default thresholds:
// exactly parallel normals, 0.02 distance, 50 color distance.
func NewRGBPlaneComparator() *RGBPlaneComparator {
	c := &RGBPlaneComparator{}
	c.SetAngularThreshold(defaultRGBAngularThreshold)
	c.SetDistanceThreshold(defaultRGBDistanceThreshold)
	c.SetColorThreshold(defaultRGBColorThreshold)
	return c
}

// SetAngularThreshold sets the tolerance in radians for difference in normal
// direction between neighboring cells. The cosine of the angle is stored so
// the hot path compares dot products directly; the angle must be in [0, π]
// for larger angles to keep mapping to smaller stored cosines.
func (c *RGBPlaneComparator) SetAngularThreshold(angle float64) {
	c.angularThreshold = math.Cos(angle)
}

// AngularThreshold returns the angular tolerance in radians.
func (c *RGBPlaneComparator) AngularThreshold() float64 {
	return math.Acos(c.angularThreshold)
}

// SetDistanceThreshold sets the tolerance in meters for euclidean distance
// between neighboring cells. The square of the distance is stored, and
// Compare checks the raw distance against that stored square, so the
// effective cutoff is the square of the value given here. Downstream tuning
// depends on this pairing; do not change one side without the other.
func (c *RGBPlaneComparator) SetDistanceThreshold(distance float64) {
	c.distanceThreshold = distance * distance
}

// DistanceThreshold returns the stored distance value, i.e. the square of
// the distance last given to SetDistanceThreshold.
func (c *RGBPlaneComparator) DistanceThreshold() float64 {
	return c.distanceThreshold
}

// SetColorThreshold sets the tolerance in color space between neighboring
// cells. The square of the value is stored and compared against the summed
// squared difference of the RGB channels.
func (c *RGBPlaneComparator) SetColorThreshold(colorDistance float64) {
	c.colorThreshold = colorDistance * colorDistance
}

// ColorThreshold returns the stored color value, i.e. the square of the
// value last given to SetColorThreshold.
func (c *RGBPlaneComparator) ColorThreshold() float64 {
	return c.colorThreshold
}

// Compare reports whether cells i and j are consistent with lying on the
// same planar, similarly colored surface: their euclidean distance must fall
// under the stored distance value, their normals' dot product must exceed
// the stored angular cosine, and their squared color difference must fall
// under the stored color value.
//
// Compare mutates nothing and is safe for concurrent callers once
// configuration is frozen. Indices out of range for the installed sequences
// panic; bounds discipline belongs to the labeling engine driving the
// comparisons.
func (c *RGBPlaneComparator) Compare(i, j int) bool {
	dist := c.points[i].P.Distance(c.points[j].P)
	dr := int(c.points[i].C.R) - int(c.points[j].C.R)
	dg := int(c.points[i].C.G) - int(c.points[j].C.G)
	db := int(c.points[i].C.B) - int(c.points[j].C.B)
	// Squared RGB difference is a rough similarity metric, HSV space would
	// track perception better.
	colorDist := float64(dr*dr + dg*dg + db*db)
	return dist < c.distanceThreshold &&
		c.normals[i].Dot(c.normals[j]) > c.angularThreshold &&
		colorDist < c.colorThreshold
}
