package polytri

// Point is a 2D input vertex.
type Point struct {
	X float64
	Y float64
}

// Loop is an ordered polygon boundary. A loop is semantically closed: the
// edge from the last point back to the first is implied, whether or not the
// input repeats the first point.
type Loop []Point

// Contains reports whether p is inside the loop under the even-odd rule. It
// is independent of winding direction and is provided primarily for checking
// hole-exclusion results.
func (l Loop) Contains(p Point) bool {
	inside := false
	for i, a := range l {
		b := l[(i+1)%len(l)]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		crossX := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if p.X < crossX {
			inside = !inside
		}
	}
	return inside
}

// Quality selects a refinement tier when no explicit minimum angle is given.
type Quality string

const (
	// QualityDefault applies no minimum-angle bound.
	QualityDefault Quality = "default"
	// QualityModerate bounds interior angles to at least 25 degrees.
	QualityModerate Quality = "moderate"
)

// Options control constraint enforcement and refinement for one request.
type Options struct {
	// MaxH is a target edge length. When positive it is converted to a
	// maximum triangle area of 0.433 * MaxH * MaxH, the area of an
	// equilateral triangle with that edge length. Zero or negative leaves
	// triangle size unbounded.
	MaxH float64

	// Quality selects the refinement tier. The empty string means
	// QualityDefault.
	Quality Quality

	// EnforceConstraints forces every loop edge into the triangulation as a
	// constraint edge. Without it loops contribute plain points: holes are
	// not cut out and the mesh covers the convex hull.
	EnforceConstraints bool

	// MinAngle, when non-nil, overrides the Quality tier with an explicit
	// minimum interior angle in degrees. A pointer to zero disables the
	// angle bound entirely.
	MinAngle *float64

	// KeepHoles retains hole interiors as ordinary mesh regions instead of
	// removing them. Only meaningful when constraints are enforced.
	KeepHoles bool
}

// Mesh is a triangulation result. Indices refer into Points, a fresh dense
// numbering of the vertices that survived triangulation; it is unrelated to
// input vertex order once refinement has inserted points.
type Mesh struct {
	// Points holds x, y, z per vertex. z is always zero and exists only for
	// compatibility with 3D mesh formats.
	Points [][3]float64
	// Triangles holds three point indices per triangle, in whatever
	// orientation the engine produced them.
	Triangles [][3]int
	// ConstraintEdges holds two point indices per enforced edge, including
	// edges that bound removed hole interiors.
	ConstraintEdges [][2]int
}
