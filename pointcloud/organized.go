// Package pointcloud defines an organized point cloud and the views over it
// that segmentation consumes.
//
// An organized cloud keeps the 2D grid layout of the sensor frame it came
// from: cell (x, y) of a width by height grid lives at index y*width+x of the
// backing slice, and grid adjacency implies sensor adjacency. Invalid sensor
// returns keep their slot so indexing never shifts.
package pointcloud

import (
	"image/color"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// OrganizedCloud is a grid-structured point cloud stored in row-major order.
// The backing slice is reachable through Points so that per-cell consumers
// can index cells without copies.
type OrganizedCloud struct {
	width  int
	height int
	points []Point
}

// NewOrganizedCloud returns an organized cloud over the given points, which
// must hold exactly width*height cells in row-major order. The cloud keeps
// the slice, it does not copy.
func NewOrganizedCloud(width, height int, points []Point) (*OrganizedCloud, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("cloud dimensions must be positive, got %dx%d", width, height)
	}
	if len(points) != width*height {
		return nil, errors.Errorf("expected %d points for a %dx%d cloud, got %d",
			width*height, width, height, len(points))
	}
	return &OrganizedCloud{width: width, height: height, points: points}, nil
}

// NewOrganizedFromSlices assembles an organized cloud from parallel position
// and color slices, pairing positions[i] with colors[i].
func NewOrganizedFromSlices(
	width, height int,
	positions []r3.Vector,
	colors []color.NRGBA,
	logger golog.Logger,
) (*OrganizedCloud, error) {
	if len(positions) != len(colors) {
		return nil, errors.Errorf("have %d positions but %d colors", len(positions), len(colors))
	}
	points := make([]Point, len(positions))
	nInvalid := 0
	for i, p := range positions {
		points[i] = Point{P: p, C: colors[i]}
		if !points[i].IsValid() {
			nInvalid++
		}
	}
	cloud, err := NewOrganizedCloud(width, height, points)
	if err != nil {
		return nil, err
	}
	logger.Debugf("assembled %dx%d organized cloud with %d invalid cells", width, height, nInvalid)
	return cloud, nil
}

// Width returns the number of grid columns.
func (oc *OrganizedCloud) Width() int {
	return oc.width
}

// Height returns the number of grid rows.
func (oc *OrganizedCloud) Height() int {
	return oc.height
}

// Size returns the number of cells in the cloud, invalid cells included.
func (oc *OrganizedCloud) Size() int {
	return len(oc.points)
}

// Index returns the backing-slice index of grid cell (x, y).
func (oc *OrganizedCloud) Index(x, y int) int {
	return y*oc.width + x
}

// At returns the point at grid cell (x, y).
func (oc *OrganizedCloud) At(x, y int) Point {
	return oc.points[oc.Index(x, y)]
}

// Points returns the backing slice of the cloud. The slice is borrowed, not
// copied: it stays valid exactly as long as the cloud does. Callers hand it
// to comparators for the duration of one segmentation pass.
func (oc *OrganizedCloud) Points() []Point {
	return oc.points
}

// IsOrganized reports whether the cloud still carries 2D grid structure,
// i.e. has more than one row.
func (oc *OrganizedCloud) IsOrganized() bool {
	return oc.height > 1
}
