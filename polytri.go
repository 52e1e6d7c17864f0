// A constrained Delaunay meshing package for Go.
//
// This package takes a simple polygon, given as an outer boundary and any
// number of hole boundaries, and produces a triangular mesh of its interior:
// a constrained Delaunay triangulation, optionally refined to an edge-length
// target and a minimum-angle bound, with hole and exterior triangles removed.
//
// The heavy lifting (point insertion, edge flipping, refinement) lives in the
// cdt subpackage; this package owns the orchestration around it: loop
// normalization, the constraint graph, parameter selection, hole exclusion
// and result extraction.
package polytri

import (
	"github.com/pkg/errors"

	"github.com/meshkit/polytri/cdt"
)

// Triangulate meshes the polygon described by outer and holes.
//
// The outer boundary is required; holes may be nil or empty. Loops may be
// given open or with an explicit closing point, and may wind in either
// direction. The zero Options value asks for a plain Delaunay triangulation
// of the input points, with no constraints and no refinement.
//
// A request either produces a complete mesh or fails with an error wrapping
// one of ErrInvalidInput, ErrDegenerateLoop or ErrGeometry; a partial mesh is
// never returned.
func Triangulate(outer []Point, holes [][]Point, opts Options) (mesh *Mesh, err error) {
	defer func() {
		recoveredErr := cdt.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			mesh = nil
			err = errors.Wrap(ErrGeometry, recoveredErr.Error())
		}
	}()

	holeLoops := make([]Loop, 0, len(holes))
	for _, hole := range holes {
		holeLoops = append(holeLoops, Loop(hole))
	}
	return triangulate(Loop(outer), holeLoops, opts)
}
