package cdt

import "math"

// Point is a 2D position in the triangulation.
type Point struct {
	X float64
	Y float64
}

// Two points this close on both axes are treated as one vertex and share a
// handle.
const coincidentTolerance = 1e-10

func coincident(a, b Point) bool {
	return math.Abs(a.X-b.X) <= coincidentTolerance &&
		math.Abs(a.Y-b.Y) <= coincidentTolerance
}

// orient2d returns twice the signed area of abc: positive when the triangle
// winds counterclockwise, negative clockwise, zero when collinear.
func orient2d(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle returns a positive value when d lies strictly inside the
// circumcircle of the counterclockwise triangle abc.
func inCircumcircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y
	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy
	return adx*(bdy*cd2-cdy*bd2) - ady*(bdx*cd2-cdx*bd2) + ad2*(bdx*cdy-cdx*bdy)
}

// circumcenter returns the center of the circle through a, b and c. ok is
// false for (near-)collinear triangles, which have no usable center.
func circumcenter(a, b, c Point) (center Point, ok bool) {
	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	d := 2 * (bx*cy - by*cx)
	scale := bx*bx + by*by + cx*cx + cy*cy
	if math.Abs(d) <= 1e-12*scale {
		return Point{}, false
	}
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	return Point{
		X: a.X + (cy*b2-by*c2)/d,
		Y: a.Y + (bx*c2-cx*b2)/d,
	}, true
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// between reports whether p lies strictly inside segment ab, assuming the
// three points are already collinear.
func between(a, b, p Point) bool {
	dot := (b.X-a.X)*(p.X-a.X) + (b.Y-a.Y)*(p.Y-a.Y)
	return dot > 0 && dot < dist2(a, b)
}

func finitePoint(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
