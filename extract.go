package polytri

import "github.com/meshkit/polytri/cdt"

// extractMesh walks the post-refinement engine state and re-indexes its
// opaque handles into a dense output numbering: vertices in engine
// enumeration order, triangles minus the excluded set, and every constraint
// edge regardless of exclusion state, since hole boundaries describe the
// geometry even when their interiors are removed.
func extractMesh(engine *cdt.Triangulation, excluded map[cdt.FaceHandle]struct{}) *Mesh {
	verts := engine.Vertices()
	outputIndex := make(map[cdt.VertexHandle]int, len(verts))

	mesh := &Mesh{
		Points:          make([][3]float64, 0, len(verts)),
		Triangles:       make([][3]int, 0),
		ConstraintEdges: make([][2]int, 0),
	}
	for i, v := range verts {
		outputIndex[v.Handle] = i
		mesh.Points = append(mesh.Points, [3]float64{v.Position.X, v.Position.Y, 0})
	}
	for _, f := range engine.InnerFaces() {
		if _, skip := excluded[f.Handle]; skip {
			continue
		}
		mesh.Triangles = append(mesh.Triangles, [3]int{
			outputIndex[f.Vertices[0]],
			outputIndex[f.Vertices[1]],
			outputIndex[f.Vertices[2]],
		})
	}
	for _, e := range engine.UndirectedEdges() {
		if !e.IsConstraint {
			continue
		}
		mesh.ConstraintEdges = append(mesh.ConstraintEdges, [2]int{
			outputIndex[e.Vertices[0]],
			outputIndex[e.Vertices[1]],
		})
	}
	return mesh
}
