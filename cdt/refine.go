package cdt

import (
	"math"
	"sort"
)

// RefinementParameters mirror the knobs of one refinement call: an optional
// area cap, an optional minimum-angle bound, and whether faces outside the
// constrained boundary (or inside holes) should be reported for exclusion.
type RefinementParameters struct {
	// MaxArea caps triangle area; no cap when <= 0.
	MaxArea float64
	// MinAngleDegrees bounds the smallest interior angle; no bound when
	// <= 0. Bounds much above 30 degrees may not be satisfiable.
	MinAngleDegrees float64
	// ExcludeOuterFaces asks for classification of faces that lie outside
	// the outermost constraint loop or inside an odd-depth (hole) loop.
	ExcludeOuterFaces bool
}

// RefinementResult reports the faces classified as exterior or hole
// interior. Handles are valid against the post-refinement triangulation.
type RefinementResult struct {
	ExcludedFaces map[FaceHandle]struct{}
}

// Refinement never inserts more Steiner points than this, so a pathological
// angle bound terminates with an under-refined mesh instead of diverging.
const maxSteinerPoints = 10000

// Refine splits encroached constraint segments and inserts circumcenters of
// bad triangles, Ruppert style, until the area and angle bounds hold in the
// kept region, then classifies outer and hole faces.
func (t *Triangulation) Refine(params RefinementParameters) RefinementResult {
	ratioBound := 0.0
	if params.MinAngleDegrees > 0 {
		// Circumradius over shortest edge; the standard equivalent of a
		// minimum-angle bound.
		ratioBound = 1 / (2 * math.Sin(params.MinAngleDegrees*math.Pi/180))
	}
	if params.MaxArea > 0 || ratioBound > 0 {
		t.refineLoop(params, ratioBound)
	}

	result := RefinementResult{ExcludedFaces: make(map[FaceHandle]struct{})}
	if params.ExcludeOuterFaces {
		for ti, depth := range t.classifyDepths() {
			if depth%2 == 0 && !t.hasSuperVertex(ti) {
				result.ExcludedFaces[FaceHandle(ti)] = struct{}{}
			}
		}
	}
	return result
}

// classifyDepths labels every live face with the number of constraint edges
// a path from far outside must cross to reach it, breadth-first from the
// super-triangle faces. Even depth means exterior or hole interior, odd
// depth means kept region.
func (t *Triangulation) classifyDepths() map[int]int {
	depth := make(map[int]int)
	var queue []int
	for ti := range t.tris {
		if t.tris[ti].alive && t.hasSuperVertex(ti) {
			depth[ti] = 0
			queue = append(queue, ti)
		}
	}
	for len(queue) > 0 {
		ti := queue[0]
		queue = queue[1:]
		d := depth[ti]
		tr := t.tris[ti]
		for i := 0; i < 3; i++ {
			a, b := tr.v[i], tr.v[(i+1)%3]
			nb := t.neighborAcross(ti, a, b)
			if nb < 0 {
				continue
			}
			nd := d
			if t.constrained[keyOf(a, b)] {
				nd++
			}
			if cur, seen := depth[nb]; !seen || nd < cur {
				depth[nb] = nd
				queue = append(queue, nb)
			}
		}
	}
	return depth
}

func (t *Triangulation) refineLoop(params RefinementParameters, ratioBound float64) {
	inserted := 0
	t.splitEncroachedSegments(&inserted)

	// Faces whose fix-up point cannot be placed are remembered and left
	// alone. Arena slots are never reused, so stale entries are harmless.
	hopeless := make(map[int]bool)
	for inserted < maxSteinerPoints {
		var depths map[int]int
		if params.ExcludeOuterFaces {
			depths = t.classifyDepths()
		}
		bad := -1
		for ti := range t.tris {
			tr := &t.tris[ti]
			if !tr.alive || t.hasSuperVertex(ti) || hopeless[ti] {
				continue
			}
			if depths != nil {
				if d, ok := depths[ti]; ok && d%2 == 0 {
					continue
				}
			}
			if t.isBad(ti, params.MaxArea, ratioBound) {
				bad = ti
				break
			}
		}
		if bad < 0 {
			return
		}
		if !t.fixBadTriangle(bad, depths, &inserted) {
			hopeless[bad] = true
		}
	}
}

func (t *Triangulation) isBad(ti int, maxArea, ratioBound float64) bool {
	tr := &t.tris[ti]
	a, b, c := t.verts[tr.v[0]], t.verts[tr.v[1]], t.verts[tr.v[2]]
	shortest2 := math.Min(dist2(a, b), math.Min(dist2(b, c), dist2(c, a)))
	// Splitting floor: give up on triangles already tiny.
	if shortest2 < 1e-18 {
		return false
	}
	if maxArea > 0 && math.Abs(orient2d(a, b, c))/2 > maxArea*(1+1e-9) {
		return true
	}
	if ratioBound > 0 {
		if center, ok := circumcenter(a, b, c); ok {
			if dist2(center, a) > ratioBound*ratioBound*shortest2*(1+1e-9) {
				return true
			}
		}
	}
	return false
}

// fixBadTriangle tries the circumcenter first; a center that encroaches a
// constraint segment splits that segment instead, and a center that cannot
// be placed inside the kept region falls back to splitting the triangle's
// longest edge. Reports whether any point was inserted.
func (t *Triangulation) fixBadTriangle(ti int, depths map[int]int, inserted *int) bool {
	tr := t.tris[ti]
	a, b, c := t.verts[tr.v[0]], t.verts[tr.v[1]], t.verts[tr.v[2]]
	if center, ok := circumcenter(a, b, c); ok && finitePoint(center) {
		if seg, found := t.encroachedBy(center); found {
			return t.splitSegment(seg, inserted)
		}
		if t.canPlace(center, depths) {
			before := len(t.verts)
			t.insert(center)
			if len(t.verts) > before {
				*inserted++
				return true
			}
			// The center coincided with an existing vertex; fall through to
			// the edge split.
		}
	}

	u, w := t.longestEdge(ti)
	k := keyOf(u, w)
	if t.constrained[k] {
		return t.splitSegment(k, inserted)
	}
	mid := Point{X: (t.verts[u].X + t.verts[w].X) / 2, Y: (t.verts[u].Y + t.verts[w].Y) / 2}
	before := len(t.verts)
	t.insert(mid)
	if len(t.verts) > before {
		*inserted++
		return true
	}
	return false
}

func (t *Triangulation) longestEdge(ti int) (int, int) {
	tr := &t.tris[ti]
	u, w, longest := tr.v[0], tr.v[1], -1.0
	for i := 0; i < 3; i++ {
		a, b := tr.v[i], tr.v[(i+1)%3]
		if d := dist2(t.verts[a], t.verts[b]); d > longest {
			u, w, longest = a, b, d
		}
	}
	return u, w
}

// canPlace reports whether p falls in a live finite face that is not
// classified as excluded.
func (t *Triangulation) canPlace(p Point, depths map[int]int) bool {
	ti, ok := t.tryLocate(p)
	if !ok || t.hasSuperVertex(ti) {
		return false
	}
	if depths != nil {
		if d, seen := depths[ti]; seen && d%2 == 0 {
			return false
		}
	}
	return true
}

// splitEncroachedSegments splits every constraint segment whose diametral
// circle contains the apex of an adjacent face, repeating until none remain
// or the Steiner budget runs out.
func (t *Triangulation) splitEncroachedSegments(inserted *int) {
	for *inserted < maxSteinerPoints {
		split := false
		for _, k := range t.sortedConstraints() {
			if !t.segmentEncroached(k) {
				continue
			}
			if t.splitSegment(k, inserted) {
				split = true
			}
			if *inserted >= maxSteinerPoints {
				return
			}
		}
		if !split {
			return
		}
	}
}

func (t *Triangulation) segmentEncroached(k edgeKey) bool {
	pair, ok := t.edgeTris[k]
	if !ok {
		return false
	}
	a, b := t.verts[k.lo], t.verts[k.hi]
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	r2 := dist2(a, b) / 4
	for _, ti := range pair {
		if ti < 0 {
			continue
		}
		apex := oppositeVert(t.tris[ti], k.lo, k.hi)
		if apex < 0 || t.isSuper(apex) {
			continue
		}
		if dist2(t.verts[apex], mid) < r2*(1-1e-12) {
			return true
		}
	}
	return false
}

// encroachedBy returns a constraint segment whose diametral circle strictly
// contains p, if any.
func (t *Triangulation) encroachedBy(p Point) (edgeKey, bool) {
	for _, k := range t.sortedConstraints() {
		a, b := t.verts[k.lo], t.verts[k.hi]
		mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		r2 := dist2(a, b) / 4
		if dist2(p, mid) < r2*(1-1e-12) {
			return k, true
		}
	}
	return edgeKey{}, false
}

// splitSegment inserts the segment midpoint and re-marks the two halves as
// constraints. Reports whether a new vertex was actually created.
func (t *Triangulation) splitSegment(k edgeKey, inserted *int) bool {
	a, b := t.verts[k.lo], t.verts[k.hi]
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	delete(t.constrained, k)
	before := len(t.verts)
	mi := t.insert(mid)
	if mi == k.lo || mi == k.hi || len(t.verts) == before {
		// Too short to split further.
		t.constrained[k] = true
		return false
	}
	t.constrained[keyOf(k.lo, mi)] = true
	t.constrained[keyOf(mi, k.hi)] = true
	*inserted++
	return true
}

func (t *Triangulation) sortedConstraints() []edgeKey {
	keys := make([]edgeKey, 0, len(t.constrained))
	for k := range t.constrained {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].lo != keys[j].lo {
			return keys[i].lo < keys[j].lo
		}
		return keys[i].hi < keys[j].hi
	})
	return keys
}
