package polytri

// pslg is the planar straight-line graph handed to the engine: every loop
// vertex under one flat zero-based numbering (outer loop first, then holes in
// input order), plus each loop's cyclic edge list expressed in that
// numbering. The flat numbering is the only index space this package
// reasons in; engine handles stay opaque.
type pslg struct {
	points []Point
	edges  [][2]int
}

// buildPSLG flattens the normalized loops. Each loop of n vertices starting
// at flat index s contributes the edges (s+i, s+((i+1) mod n)). Loop ordering
// is preserved, so an edge can still be attributed to its source loop by
// index range when debugging.
func buildPSLG(outer Loop, holes []Loop) pslg {
	var g pslg
	g.appendLoop(outer)
	for _, hole := range holes {
		g.appendLoop(hole)
	}
	return g
}

func (g *pslg) appendLoop(loop Loop) {
	start := len(g.points)
	n := len(loop)
	for i, p := range loop {
		g.points = append(g.points, p)
		j := start + (i+1)%n
		if start+i == j {
			// A one-point loop has no real edge.
			continue
		}
		g.edges = append(g.edges, [2]int{start + i, j})
	}
}
