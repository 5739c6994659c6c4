package pointcloud

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Point is a single cell of an organized cloud: a sensed position paired with
// its color.
type Point struct {
	P r3.Vector
	C color.NRGBA
}

// NewPoint returns a point with the given position and color.
func NewPoint(p r3.Vector, c color.NRGBA) Point {
	return Point{P: p, C: c}
}

// RGB255 returns the RGB components of the point's color. There is no alpha
// channel right now and as such the data can be assumed to be premultiplied.
func (pt Point) RGB255() (uint8, uint8, uint8) {
	return pt.C.R, pt.C.G, pt.C.B
}

// IsValid reports whether the point holds a real sensor return, i.e. all of
// its coordinates are finite. Organized frames mark missing returns with NaN
// so that the grid never shifts.
func (pt Point) IsValid() bool {
	for _, v := range []float64{pt.P.X, pt.P.Y, pt.P.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
