package segmentation

import (
	"github.com/golang/geo/r3"
)

// Default applied by NewEuclideanClusterComparator.
const defaultClusterDistanceThreshold = 0.005 // meters

// EuclideanClusterComparator accepts two neighboring cells when they are
// within a euclidean distance of each other, skipping cells whose label from
// an earlier pass is excluded. It is the depth-discontinuity member of the
// family: normals and colors are not consulted, so it is typically run over
// the leftovers of a planar pass with the planar labels excluded.
type EuclideanClusterComparator struct {
	cloudInput
	labels            []int
	excludeLabels     map[int]bool
	distanceThreshold float64
	depthDependent    bool
	zAxis             r3.Vector
}

// NewEuclideanClusterComparator returns a comparator with a flat 0.005 meter
// distance threshold and no labels installed.
func NewEuclideanClusterComparator() *EuclideanClusterComparator {
	return &EuclideanClusterComparator{
		distanceThreshold: defaultClusterDistanceThreshold,
		zAxis:             r3.Vector{X: 0, Y: 0, Z: 1},
	}
}

// SetLabels installs the per-cell labels of an earlier pass, index-parallel
// to the point sequence. Labels are consumed, never produced; nil disables
// label exclusion entirely.
func (c *EuclideanClusterComparator) SetLabels(labels []int) {
	c.labels = labels
}

// Labels returns the installed label sequence.
func (c *EuclideanClusterComparator) Labels() []int {
	return c.labels
}

// SetExcludeLabels installs the set of labels whose cells never merge.
func (c *EuclideanClusterComparator) SetExcludeLabels(excluded map[int]bool) {
	c.excludeLabels = excluded
}

// ExcludeLabels returns the installed exclusion set.
func (c *EuclideanClusterComparator) ExcludeLabels() map[int]bool {
	return c.excludeLabels
}

// SetDistanceThreshold sets the euclidean distance in meters under which two
// cells may merge. With depthDependent set, Compare scales the threshold by
// the squared viewing depth of its first cell.
func (c *EuclideanClusterComparator) SetDistanceThreshold(threshold float64, depthDependent bool) {
	c.distanceThreshold = threshold
	c.depthDependent = depthDependent
}

// DistanceThreshold returns the unscaled distance threshold.
func (c *EuclideanClusterComparator) DistanceThreshold() float64 {
	return c.distanceThreshold
}

// Compare reports whether cells i and j may join the same cluster: neither
// cell's label may be excluded, and their euclidean distance must fall under
// the possibly depth-scaled threshold.
func (c *EuclideanClusterComparator) Compare(i, j int) bool {
	if c.labels != nil && (c.excludeLabels[c.labels[i]] || c.excludeLabels[c.labels[j]]) {
		return false
	}
	threshold := c.distanceThreshold
	if c.depthDependent {
		z := c.points[i].P.Dot(c.zAxis)
		threshold *= z * z
	}
	return c.points[i].P.Distance(c.points[j].P) < threshold
}
