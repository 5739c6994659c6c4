// Package segmentation implements pairwise equivalence comparators for
// growing regions over organized point clouds.
//
// A connected-component labeling engine walks the grid of an organized cloud
// and asks a Comparator, for every pair of 4- or 8-connected cell indices,
// whether the two cells belong to the same surface region. Comparators hold
// borrowed views of the engine's per-cell sequences and answer with no
// allocation and no locking, since an engine may ask millions of times per
// frame.
package segmentation

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	pc "go.viam.com/planeseg/pointcloud"
)

// Comparator is a pairwise equivalence test over cell indices of an
// organized cloud. Compare reports whether cells i and j are consistent with
// belonging to the same surface region.
//
// Compare trusts its caller: indices must be in range for every sequence
// installed on the comparator, and the sequences must be index-parallel. It
// performs no bounds or length checking of its own, never mutates comparator
// state or inputs, and is safe for concurrent use once configuration is
// frozen.
type Comparator interface {
	Compare(i, j int) bool
}

// cloudInput is the borrowed point view every comparator holds.
type cloudInput struct {
	points []pc.Point
}

// SetInputCloud installs the cell sequence the comparator evaluates. The
// slice is borrowed for the duration of a segmentation pass and never
// mutated.
func (ci *cloudInput) SetInputCloud(points []pc.Point) {
	ci.points = points
}

// InputCloud returns the installed cell sequence.
func (ci *cloudInput) InputCloud() []pc.Point {
	return ci.points
}

// planeInputs extends cloudInput with the per-cell surface data planar
// comparators read: unit normals and the d coefficients of each cell's
// fitted plane in hessian normal form, both estimated upstream.
type planeInputs struct {
	cloudInput
	normals     []r3.Vector
	planeCoeffD []float64
}

// SetInputNormals installs the normal sequence. It must have the same length
// and indexing as the point sequence; that is not checked here, and
// violating it gives silently wrong comparisons (see ValidateFrame for a
// cold-path guard).
func (pi *planeInputs) SetInputNormals(normals []r3.Vector) {
	pi.normals = normals
}

// InputNormals returns the installed normal sequence.
func (pi *planeInputs) InputNormals() []r3.Vector {
	return pi.normals
}

// SetPlaneCoeffD installs the d coefficients of the cells' plane equations.
// The a, b and c coefficients are carried by the normals.
func (pi *planeInputs) SetPlaneCoeffD(planeCoeffD []float64) {
	pi.planeCoeffD = planeCoeffD
}

// PlaneCoeffD returns the installed plane d coefficients.
func (pi *planeInputs) PlaneCoeffD() []float64 {
	return pi.planeCoeffD
}

// ValidateFrame checks that the per-cell sequences of a frame agree in
// length, accumulating one error per mismatched sequence. Nil sequences are
// skipped. It exists for callers that want a cold-path guard before a pass;
// no Compare implementation calls it.
func ValidateFrame(points []pc.Point, normals []r3.Vector, planeCoeffD []float64) error {
	var err error
	if normals != nil && len(normals) != len(points) {
		err = multierr.Combine(err,
			errors.Errorf("have %d normals but %d points", len(normals), len(points)))
	}
	if planeCoeffD != nil && len(planeCoeffD) != len(points) {
		err = multierr.Combine(err,
			errors.Errorf("have %d plane coefficients but %d points", len(planeCoeffD), len(points)))
	}
	return err
}
