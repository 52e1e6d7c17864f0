// Package cdt is the triangulation engine behind polytri: incremental
// constrained Delaunay triangulation with Ruppert-style quality refinement
// and classification of outer/hole faces.
//
// The structure is arena-based. Vertices and faces are addressed through
// opaque integer handles; vertex handles stay valid for the life of the
// triangulation, face handles only until the next mutation. Construction
// uses a bounding super-triangle whose three synthetic vertices are hidden
// from every public enumeration, and which is transparently rebuilt larger
// when a point arrives outside it.
package cdt

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/meshkit/polytri/dbg"
)

// VertexHandle identifies a vertex for the life of one Triangulation.
type VertexHandle int

// FaceHandle identifies a face until the next mutating call.
type FaceHandle int

// Vertex pairs a handle with its position.
type Vertex struct {
	Handle   VertexHandle
	Position Point
}

// Face is an inner triangle: one whose three corners are all finite.
type Face struct {
	Handle   FaceHandle
	Vertices [3]VertexHandle
}

// Edge is an undirected edge between two finite vertices.
type Edge struct {
	Vertices     [2]VertexHandle
	IsConstraint bool
}

// The synthetic super-triangle vertices occupy the first slots of the vertex
// arena and are never enumerated.
const superVertexCount = 3

// Triangles are stored counterclockwise. Slots are never reused; dead
// triangles keep their vertex list but drop out of the edge table.
type triangle struct {
	v     [3]int
	alive bool
}

type edgeKey struct{ lo, hi int }

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Triangulation is one engine instance. It is not safe for concurrent use
// and is meant to live for a single meshing run.
type Triangulation struct {
	verts []Point
	tris  []triangle
	// edgeTris maps each live edge to its one or two incident live
	// triangles; -1 marks an empty slot. This is the only adjacency
	// structure, kept consistent by newTriangle and killTriangle.
	edgeTris    map[edgeKey][2]int
	constrained map[edgeKey]bool
	bound       float64
}

// New returns an empty triangulation. The initial super-triangle covers
// coordinates up to about a thousand; farther points trigger a transparent
// rebuild, so the limit is not visible to callers.
func New() *Triangulation {
	t := &Triangulation{}
	t.reset(1024)
	return t
}

func (t *Triangulation) reset(bound float64) {
	t.bound = bound
	r := 8 * bound
	t.verts = []Point{{-r, -r}, {r, -r}, {0, r}}
	t.tris = t.tris[:0]
	t.edgeTris = make(map[edgeKey][2]int)
	t.constrained = make(map[edgeKey]bool)
	t.newTriangle(0, 1, 2)
}

func (t *Triangulation) newTriangle(a, b, c int) int {
	ti := len(t.tris)
	t.tris = append(t.tris, triangle{v: [3]int{a, b, c}, alive: true})
	tr := &t.tris[ti]
	for i := 0; i < 3; i++ {
		k := keyOf(tr.v[i], tr.v[(i+1)%3])
		pair, ok := t.edgeTris[k]
		switch {
		case !ok:
			t.edgeTris[k] = [2]int{ti, -1}
		case pair[1] == -1:
			pair[1] = ti
			t.edgeTris[k] = pair
		default:
			fatalf("edge %d-%d already has two incident faces", k.lo, k.hi)
		}
	}
	return ti
}

func (t *Triangulation) killTriangle(ti int) {
	tr := &t.tris[ti]
	if !tr.alive {
		fatalf("face %d killed twice", ti)
	}
	tr.alive = false
	for i := 0; i < 3; i++ {
		k := keyOf(tr.v[i], tr.v[(i+1)%3])
		pair, ok := t.edgeTris[k]
		if !ok {
			fatalf("edge %d-%d missing from edge table", k.lo, k.hi)
		}
		switch ti {
		case pair[0]:
			pair[0], pair[1] = pair[1], -1
		case pair[1]:
			pair[1] = -1
		default:
			fatalf("face %d not on its own edge %d-%d", ti, k.lo, k.hi)
		}
		if pair[0] == -1 {
			delete(t.edgeTris, k)
		} else {
			t.edgeTris[k] = pair
		}
	}
}

// neighborAcross returns the live triangle sharing edge (a, b) with ti, or
// -1 when the edge is on the boundary of the arena.
func (t *Triangulation) neighborAcross(ti, a, b int) int {
	pair, ok := t.edgeTris[keyOf(a, b)]
	if !ok {
		return -1
	}
	if pair[0] == ti {
		return pair[1]
	}
	if pair[1] == ti {
		return pair[0]
	}
	return -1
}

func (t *Triangulation) isSuper(vi int) bool { return vi < superVertexCount }

func (t *Triangulation) hasSuperVertex(ti int) bool {
	for _, vi := range t.tris[ti].v {
		if t.isSuper(vi) {
			return true
		}
	}
	return false
}

// Vertices enumerates the finite vertices in insertion order.
func (t *Triangulation) Vertices() []Vertex {
	out := make([]Vertex, 0, len(t.verts)-superVertexCount)
	for i := superVertexCount; i < len(t.verts); i++ {
		out = append(out, Vertex{Handle: VertexHandle(i), Position: t.verts[i]})
	}
	return out
}

// InnerFaces enumerates the live all-finite triangles in arena order.
func (t *Triangulation) InnerFaces() []Face {
	var out []Face
	for ti := range t.tris {
		tr := &t.tris[ti]
		if !tr.alive || t.hasSuperVertex(ti) {
			continue
		}
		out = append(out, Face{
			Handle:   FaceHandle(ti),
			Vertices: [3]VertexHandle{VertexHandle(tr.v[0]), VertexHandle(tr.v[1]), VertexHandle(tr.v[2])},
		})
	}
	return out
}

// UndirectedEdges enumerates each finite edge once, flagging constraints.
// Order is deterministic: first touch during a scan of the face arena.
func (t *Triangulation) UndirectedEdges() []Edge {
	seen := make(map[edgeKey]struct{})
	var out []Edge
	for ti := range t.tris {
		tr := &t.tris[ti]
		if !tr.alive {
			continue
		}
		for i := 0; i < 3; i++ {
			a, b := tr.v[i], tr.v[(i+1)%3]
			if t.isSuper(a) || t.isSuper(b) {
				continue
			}
			k := keyOf(a, b)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, Edge{
				Vertices:     [2]VertexHandle{VertexHandle(a), VertexHandle(b)},
				IsConstraint: t.constrained[k],
			})
		}
	}
	return out
}

// DebugString dumps the live inner faces and edges with readable handle
// names. Constraint edges come out red.
func (t *Triangulation) DebugString() string {
	var sb strings.Builder
	faces := t.InnerFaces()
	fmt.Fprintf(&sb, "%d vertices, %d inner faces, %d constraints\n",
		len(t.verts)-superVertexCount, len(faces), len(t.constrained))
	for _, f := range faces {
		fmt.Fprintf(&sb, "  %s: %s %s %s\n", dbg.Name(f.Handle),
			dbg.Name(f.Vertices[0]), dbg.Name(f.Vertices[1]), dbg.Name(f.Vertices[2]))
	}
	for _, e := range t.UndirectedEdges() {
		name := fmt.Sprintf("%s-%s", dbg.Name(e.Vertices[0]), dbg.Name(e.Vertices[1]))
		if e.IsConstraint {
			name = aurora.Red(name).String()
		}
		fmt.Fprintf(&sb, "  edge %s\n", name)
	}
	return sb.String()
}

func indexOfVert(tr *triangle, a int) int {
	for i, v := range tr.v {
		if v == a {
			return i
		}
	}
	return -1
}

func oppositeVert(tr triangle, a, b int) int {
	for _, v := range tr.v {
		if v != a && v != b {
			return v
		}
	}
	return -1
}

func hasDirectedEdge(tr triangle, u, w int) bool {
	for i := 0; i < 3; i++ {
		if tr.v[i] == u && tr.v[(i+1)%3] == w {
			return true
		}
	}
	return false
}
