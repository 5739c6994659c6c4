package pointcloud

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CloudMatrixCol is a type that represents the columns of a cloud matrix.
type CloudMatrixCol string

const (
	// CloudMatrixColX is the x column in the cloud matrix.
	CloudMatrixColX CloudMatrixCol = "X"
	// CloudMatrixColY is the y column in the cloud matrix.
	CloudMatrixColY CloudMatrixCol = "Y"
	// CloudMatrixColZ is the z column in the cloud matrix.
	CloudMatrixColZ CloudMatrixCol = "Z"
	// CloudMatrixColR is the red column in the cloud matrix.
	CloudMatrixColR CloudMatrixCol = "R"
	// CloudMatrixColG is the green column in the cloud matrix.
	CloudMatrixColG CloudMatrixCol = "G"
	// CloudMatrixColB is the blue column in the cloud matrix.
	CloudMatrixColB CloudMatrixCol = "B"
	// CloudMatrixColNX is the normal x column in the cloud matrix.
	CloudMatrixColNX CloudMatrixCol = "NX"
	// CloudMatrixColNY is the normal y column in the cloud matrix.
	CloudMatrixColNY CloudMatrixCol = "NY"
	// CloudMatrixColNZ is the normal z column in the cloud matrix.
	CloudMatrixColNZ CloudMatrixCol = "NZ"
)

// CloudMatrix returns a dense matrix view of the cloud along with a header
// list of the columns in the matrix. Rows are cells in row-major grid order,
// so row i of the matrix is cell i of the cloud. Returns nil for an empty
// cloud.
func CloudMatrix(cloud *OrganizedCloud) (*mat.Dense, []CloudMatrixCol) {
	if cloud == nil || cloud.Size() == 0 {
		return nil, nil
	}
	header := []CloudMatrixCol{
		CloudMatrixColX, CloudMatrixColY, CloudMatrixColZ,
		CloudMatrixColR, CloudMatrixColG, CloudMatrixColB,
	}
	data := make([]float64, 0, cloud.Size()*len(header))
	for _, pt := range cloud.Points() {
		data = append(data, pt.P.X, pt.P.Y, pt.P.Z,
			float64(pt.C.R), float64(pt.C.G), float64(pt.C.B))
	}
	return mat.NewDense(cloud.Size(), len(header), data), header
}

// CloudNormalMatrix is CloudMatrix with the cells' normals appended as NX,
// NY, NZ columns. The normal slice must be index-parallel to the cloud.
func CloudNormalMatrix(cloud *OrganizedCloud, normals []r3.Vector) (*mat.Dense, []CloudMatrixCol, error) {
	if cloud == nil || cloud.Size() == 0 {
		return nil, nil, nil
	}
	if len(normals) != cloud.Size() {
		return nil, nil, errors.Errorf("have %d normals for %d cells", len(normals), cloud.Size())
	}
	header := []CloudMatrixCol{
		CloudMatrixColX, CloudMatrixColY, CloudMatrixColZ,
		CloudMatrixColR, CloudMatrixColG, CloudMatrixColB,
		CloudMatrixColNX, CloudMatrixColNY, CloudMatrixColNZ,
	}
	data := make([]float64, 0, cloud.Size()*len(header))
	for i, pt := range cloud.Points() {
		data = append(data, pt.P.X, pt.P.Y, pt.P.Z,
			float64(pt.C.R), float64(pt.C.G), float64(pt.C.B),
			normals[i].X, normals[i].Y, normals[i].Z)
	}
	return mat.NewDense(cloud.Size(), len(header), data), header, nil
}
