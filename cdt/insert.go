package cdt

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Insert adds p to the triangulation and returns its handle. Inserting a
// point that coincides with an existing vertex returns that vertex's handle
// instead of creating a new one.
func (t *Triangulation) Insert(p Point) (handle VertexHandle, err error) {
	defer func() {
		if recoveredErr := HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			handle, err = 0, recoveredErr
		}
	}()
	if !finitePoint(p) {
		return 0, errors.Errorf("non-finite coordinate (%v, %v)", p.X, p.Y)
	}
	t.ensureBound(p)
	return VertexHandle(t.insert(p)), nil
}

// ensureBound grows the super-triangle when a point lands outside it, by
// rebuilding the triangulation around a larger bound. Re-inserting the same
// coordinates in the same order reproduces the same handles, so the rebuild
// is invisible to callers.
func (t *Triangulation) ensureBound(p Point) {
	m := math.Max(math.Abs(p.X), math.Abs(p.Y))
	if m <= t.bound {
		return
	}
	bound := t.bound
	for bound < m {
		bound *= 2
	}
	bound *= 2

	points := append([]Point(nil), t.verts[superVertexCount:]...)
	constraints := make([]edgeKey, 0, len(t.constrained))
	for k := range t.constrained {
		constraints = append(constraints, k)
	}
	sort.Slice(constraints, func(i, j int) bool {
		if constraints[i].lo != constraints[j].lo {
			return constraints[i].lo < constraints[j].lo
		}
		return constraints[i].hi < constraints[j].hi
	})

	t.reset(bound)
	for _, q := range points {
		t.insert(q)
	}
	for _, c := range constraints {
		t.addConstraint(c.lo, c.hi)
	}
}

// insert runs Bowyer-Watson cavity insertion. The cavity never grows across
// a constrained edge, which keeps the triangulation constrained-Delaunay
// while refinement adds points.
func (t *Triangulation) insert(p Point) int {
	t0 := t.locate(p)

	// Coincident points collapse onto the existing vertex.
	for _, vi := range t.tris[t0].v {
		if !t.isSuper(vi) && coincident(t.verts[vi], p) {
			return vi
		}
	}

	pi := len(t.verts)
	t.verts = append(t.verts, p)

	// Seed the cavity. A point sitting exactly on an edge conflicts with
	// both incident triangles; seeding only one side would fan a zero-area
	// triangle over that edge.
	cavity := []int{t0}
	inCavity := map[int]bool{t0: true}
	seed := t.tris[t0]
	for i := 0; i < 3; i++ {
		a, b := seed.v[i], seed.v[(i+1)%3]
		if t.constrained[keyOf(a, b)] || !t.onEdge(a, b, p) {
			continue
		}
		nb := t.neighborAcross(t0, a, b)
		if nb >= 0 && !inCavity[nb] {
			cavity = append(cavity, nb)
			inCavity[nb] = true
		}
	}

	// Grow by circumcircle conflict, never across a constraint.
	for qi := 0; qi < len(cavity); qi++ {
		ti := cavity[qi]
		tr := t.tris[ti]
		for i := 0; i < 3; i++ {
			a, b := tr.v[i], tr.v[(i+1)%3]
			if t.constrained[keyOf(a, b)] {
				continue
			}
			nb := t.neighborAcross(ti, a, b)
			if nb < 0 || inCavity[nb] {
				continue
			}
			nv := t.tris[nb].v
			if inCircumcircle(t.verts[nv[0]], t.verts[nv[1]], t.verts[nv[2]], p) > 0 {
				cavity = append(cavity, nb)
				inCavity[nb] = true
			}
		}
	}

	// Collect the cavity boundary, directed so the interior is to the left,
	// then replace the cavity with a fan around the new vertex.
	type boundaryEdge struct{ a, b int }
	var boundary []boundaryEdge
	for _, ti := range cavity {
		tr := t.tris[ti]
		for i := 0; i < 3; i++ {
			a, b := tr.v[i], tr.v[(i+1)%3]
			nb := t.neighborAcross(ti, a, b)
			if nb >= 0 && inCavity[nb] {
				continue
			}
			boundary = append(boundary, boundaryEdge{a, b})
		}
	}
	for _, ti := range cavity {
		t.killTriangle(ti)
	}
	for _, e := range boundary {
		t.newTriangle(e.a, e.b, pi)
	}
	return pi
}

// onEdge reports whether p lies on the open segment between vertices ai and
// bi, within a relative sliver tolerance.
func (t *Triangulation) onEdge(ai, bi int, p Point) bool {
	a, b := t.verts[ai], t.verts[bi]
	dx, dy := b.X-a.X, b.Y-a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return false
	}
	cross := dx*(p.Y-a.Y) - dy*(p.X-a.X)
	if cross*cross > 1e-18*len2*len2 {
		return false
	}
	dot := dx*(p.X-a.X) + dy*(p.Y-a.Y)
	return dot > 0 && dot < len2
}

// locate finds a live triangle containing p: a strict containment scan
// first, then a tolerance pass that accepts points on an edge.
func (t *Triangulation) locate(p Point) int {
	ti, ok := t.tryLocate(p)
	if !ok {
		fatalf("point (%v, %v) is outside the triangulation", p.X, p.Y)
	}
	return ti
}

func (t *Triangulation) tryLocate(p Point) (int, bool) {
	best, bestMin := -1, math.Inf(-1)
	for ti := range t.tris {
		tr := &t.tris[ti]
		if !tr.alive {
			continue
		}
		a, b, c := t.verts[tr.v[0]], t.verts[tr.v[1]], t.verts[tr.v[2]]
		m := math.Min(orient2d(a, b, p), math.Min(orient2d(b, c, p), orient2d(c, a, p)))
		if m > 0 {
			return ti, true
		}
		if m > bestMin {
			best, bestMin = ti, m
		}
	}
	if best >= 0 && bestMin >= -t.onEdgeTolerance(best, p) {
		return best, true
	}
	return -1, false
}

// onEdgeTolerance scales the containment tolerance to the triangle's longest
// edge, so a point a hair outside an edge still counts as on it.
func (t *Triangulation) onEdgeTolerance(ti int, p Point) float64 {
	tr := &t.tris[ti]
	longest := 0.0
	for i := 0; i < 3; i++ {
		longest = math.Max(longest, dist2(t.verts[tr.v[i]], t.verts[tr.v[(i+1)%3]]))
	}
	scale := math.Max(1, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	return math.Sqrt(longest) * 1e-9 * scale
}
