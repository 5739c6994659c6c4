package segmentation

// Defaults applied by NewEdgeAwarePlaneComparator.
const (
	defaultDistanceMapThreshold = 5.0 // cells
	defaultCurvatureThreshold   = 0.04
)

// EdgeAwarePlaneComparator is PlaneCoefficientComparator gated by distance
// to the nearest depth edge: cells too close to an edge never merge, and
// cells whose surface curves too hard never seed a merge. The edge distance
// map and curvatures are computed upstream alongside the normals.
type EdgeAwarePlaneComparator struct {
	PlaneCoefficientComparator
	distanceMap          []float64
	distanceMapThreshold float64
	curvatures           []float64
	curvatureThreshold   float64
}

// NewEdgeAwarePlaneComparator returns a comparator with the plane defaults,
// a 5 cell edge distance threshold and a 0.04 curvature threshold.
func NewEdgeAwarePlaneComparator() *EdgeAwarePlaneComparator {
	return &EdgeAwarePlaneComparator{
		PlaneCoefficientComparator: *NewPlaneCoefficientComparator(),
		distanceMapThreshold:       defaultDistanceMapThreshold,
		curvatureThreshold:         defaultCurvatureThreshold,
	}
}

// SetDistanceMap installs the per-cell distance to the nearest depth edge,
// in cells, index-parallel to the point sequence.
func (c *EdgeAwarePlaneComparator) SetDistanceMap(distanceMap []float64) {
	c.distanceMap = distanceMap
}

// DistanceMap returns the installed edge distance map.
func (c *EdgeAwarePlaneComparator) DistanceMap() []float64 {
	return c.distanceMap
}

// SetDistanceMapThreshold sets the minimum distance to a depth edge, in
// cells, for a cell to take part in any merge.
func (c *EdgeAwarePlaneComparator) SetDistanceMapThreshold(threshold float64) {
	c.distanceMapThreshold = threshold
}

// DistanceMapThreshold returns the edge distance threshold in cells.
func (c *EdgeAwarePlaneComparator) DistanceMapThreshold() float64 {
	return c.distanceMapThreshold
}

// SetCurvatures installs per-cell surface curvature, index-parallel to the
// point sequence. Nil disables the curvature gate.
func (c *EdgeAwarePlaneComparator) SetCurvatures(curvatures []float64) {
	c.curvatures = curvatures
}

// Curvatures returns the installed curvature sequence.
func (c *EdgeAwarePlaneComparator) Curvatures() []float64 {
	return c.curvatures
}

// SetCurvatureThreshold sets the curvature over which a cell may not seed a
// merge.
func (c *EdgeAwarePlaneComparator) SetCurvatureThreshold(threshold float64) {
	c.curvatureThreshold = threshold
}

// CurvatureThreshold returns the curvature threshold.
func (c *EdgeAwarePlaneComparator) CurvatureThreshold() float64 {
	return c.curvatureThreshold
}

// Compare applies the edge gates and then the plane-coefficient test: false
// when either cell lies nearer to a depth edge than the map threshold, or
// when curvatures are installed and cell i curves over the curvature
// threshold; otherwise whatever the embedded plane-coefficient comparison
// answers. A distance map must be installed before the first comparison;
// curvatures are optional.
func (c *EdgeAwarePlaneComparator) Compare(i, j int) bool {
	if c.distanceMap[i] < c.distanceMapThreshold || c.distanceMap[j] < c.distanceMapThreshold {
		return false
	}
	if c.curvatures != nil && c.curvatures[i] > c.curvatureThreshold {
		return false
	}
	return c.PlaneCoefficientComparator.Compare(i, j)
}
