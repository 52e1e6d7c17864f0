package cdt

// AddConstraint forces the edge between two vertices into the triangulation
// and marks it as a constraint. Adding an edge between coincident handles is
// a no-op. A vertex lying exactly on the segment splits the constraint at
// that vertex; crossing a previously added constraint is an error.
func (t *Triangulation) AddConstraint(a, b VertexHandle) (err error) {
	defer func() {
		if recoveredErr := HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	if int(a) < superVertexCount || int(a) >= len(t.verts) ||
		int(b) < superVertexCount || int(b) >= len(t.verts) {
		fatalf("constraint vertex out of range")
	}
	t.addConstraint(int(a), int(b))
	return nil
}

func (t *Triangulation) addConstraint(ai, bi int) {
	if ai == bi {
		return
	}
	k := keyOf(ai, bi)
	if _, ok := t.edgeTris[k]; ok {
		t.constrained[k] = true
		return
	}

	crossing, splitAt := t.collectCrossings(ai, bi)
	if splitAt >= 0 {
		t.addConstraint(ai, splitAt)
		t.addConstraint(splitAt, bi)
		return
	}

	// Flip the crossing edges out of the corridor (Sloan). An edge whose
	// surrounding quad is not yet convex is requeued; it becomes flippable
	// as the corridor empties.
	A, B := t.verts[ai], t.verts[bi]
	var repaired []edgeKey
	guard := 0
	limit := 100*(len(crossing)+2)*(len(crossing)+2) + 1000
	for len(crossing) > 0 {
		if guard++; guard > limit {
			fatalf("corridor for constraint %d-%d failed to clear", ai, bi)
		}
		e := crossing[0]
		crossing = crossing[1:]
		pair, ok := t.edgeTris[e]
		if !ok || pair[1] < 0 {
			fatalf("corridor edge %d-%d lost before flipping", e.lo, e.hi)
		}
		p := oppositeVert(t.tris[pair[0]], e.lo, e.hi)
		q := oppositeVert(t.tris[pair[1]], e.lo, e.hi)
		P, Q := t.verts[p], t.verts[q]
		if orient2d(P, Q, t.verts[e.lo])*orient2d(P, Q, t.verts[e.hi]) >= 0 {
			crossing = append(crossing, e)
			continue
		}
		t.flip(e.lo, e.hi)
		nk := keyOf(p, q)
		if properlyCross(A, B, P, Q) {
			crossing = append(crossing, nk)
		} else {
			repaired = append(repaired, nk)
		}
	}

	if _, ok := t.edgeTris[k]; !ok {
		fatalf("constraint edge %d-%d missing after corridor clearing", ai, bi)
	}
	t.constrained[k] = true
	t.legalize(repaired)
}

// collectCrossings walks the corridor of triangles cut by the open segment
// ai->bi and returns the crossed edges in order. When a vertex lies exactly
// on the segment the walk stops and that vertex is returned for splitting.
// The walk is read-only; the triangulation is untouched on every path.
func (t *Triangulation) collectCrossings(ai, bi int) (crossing []edgeKey, splitAt int) {
	A, B := t.verts[ai], t.verts[bi]

	// Find the triangle at ai whose far edge the segment leaves through.
	cur, l, r := -1, -1, -1
	for ti := range t.tris {
		tr := &t.tris[ti]
		if !tr.alive {
			continue
		}
		i := indexOfVert(tr, ai)
		if i < 0 {
			continue
		}
		u, w := tr.v[(i+1)%3], tr.v[(i+2)%3]
		ou := orient2d(A, B, t.verts[u])
		ow := orient2d(A, B, t.verts[w])
		if ou == 0 && between(A, B, t.verts[u]) {
			return nil, u
		}
		if ow == 0 && between(A, B, t.verts[w]) {
			return nil, w
		}
		// In the counterclockwise triangle (ai, u, w) the successor u lies
		// clockwise of the segment and w counterclockwise, with the far edge
		// in front of ai rather than behind it.
		if ou < 0 && ow > 0 && orient2d(t.verts[u], t.verts[w], B) < 0 {
			cur, l, r = ti, w, u
			break
		}
	}
	if cur < 0 {
		fatalf("no corridor from vertex %d toward %d", ai, bi)
	}

	for steps := 0; ; steps++ {
		if steps > len(t.tris) {
			fatalf("corridor walk for constraint %d-%d cycled", ai, bi)
		}
		k := keyOf(l, r)
		if t.constrained[k] {
			fatalf("constraint %d-%d intersects existing constraint %d-%d", ai, bi, k.lo, k.hi)
		}
		crossing = append(crossing, k)
		next := t.neighborAcross(cur, l, r)
		if next < 0 {
			fatalf("corridor for constraint %d-%d left the triangulation", ai, bi)
		}
		x := oppositeVert(t.tris[next], l, r)
		if x == bi {
			return crossing, -1
		}
		ox := orient2d(A, B, t.verts[x])
		switch {
		case ox == 0:
			if between(A, B, t.verts[x]) {
				return nil, x
			}
			fatalf("degenerate corridor at vertex %d", x)
		case ox > 0:
			l = x
		default:
			r = x
		}
		cur = next
	}
}

func properlyCross(a, b, p, q Point) bool {
	return orient2d(a, b, p)*orient2d(a, b, q) < 0 &&
		orient2d(p, q, a)*orient2d(p, q, b) < 0
}

// flip replaces the shared edge (u, w) with the opposite diagonal. The quad
// around the edge must be strictly convex.
func (t *Triangulation) flip(u, w int) (p, q int) {
	pair, ok := t.edgeTris[keyOf(u, w)]
	if !ok || pair[1] < 0 {
		fatalf("cannot flip boundary edge %d-%d", u, w)
	}
	t1, t2 := pair[0], pair[1]
	// Orient so t1 holds the directed edge u->w; then both replacement
	// triangles below come out counterclockwise.
	if !hasDirectedEdge(t.tris[t1], u, w) {
		t1, t2 = t2, t1
	}
	p = oppositeVert(t.tris[t1], u, w)
	q = oppositeVert(t.tris[t2], u, w)
	t.killTriangle(t1)
	t.killTriangle(t2)
	t.newTriangle(p, u, q)
	t.newTriangle(p, q, w)
	return p, q
}

// legalize restores the empty-circumcircle property around the given edges
// by flipping, never touching constrained edges. Flips cascade to the four
// surrounding edges.
func (t *Triangulation) legalize(stack []edgeKey) {
	for guard := 0; len(stack) > 0; guard++ {
		if guard > 100000 {
			// Settle for a non-optimal triangulation rather than spin; the
			// structure is already valid.
			return
		}
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.constrained[e] {
			continue
		}
		pair, ok := t.edgeTris[e]
		if !ok || pair[1] < 0 {
			continue
		}
		t1 := t.tris[pair[0]]
		p := oppositeVert(t1, e.lo, e.hi)
		q := oppositeVert(t.tris[pair[1]], e.lo, e.hi)
		if inCircumcircle(t.verts[t1.v[0]], t.verts[t1.v[1]], t.verts[t1.v[2]], t.verts[q]) <= 0 {
			continue
		}
		P, Q := t.verts[p], t.verts[q]
		if orient2d(P, Q, t.verts[e.lo])*orient2d(P, Q, t.verts[e.hi]) >= 0 {
			continue
		}
		t.flip(e.lo, e.hi)
		stack = append(stack,
			keyOf(p, e.lo), keyOf(p, e.hi), keyOf(q, e.lo), keyOf(q, e.hi))
	}
}
