package polytri

import (
	"github.com/pkg/errors"

	"github.com/meshkit/polytri/cdt"
)

// exclusionMode is the shape of the refinement invocation: whether the engine
// classifies and removes outer/hole faces, and whether refinement can be
// skipped altogether.
type exclusionMode int

const (
	modeNoConstraints exclusionMode = iota
	modeConstrainedExcludeHoles
	modeConstrainedKeepHoles
)

// selectExclusionMode picks the mode from whether constraint edges were
// actually added (not merely requested) and the caller's hole preference.
func selectExclusionMode(hasConstraints, excludeHoles bool) exclusionMode {
	switch {
	case !hasConstraints:
		return modeNoConstraints
	case excludeHoles:
		return modeConstrainedExcludeHoles
	default:
		return modeConstrainedKeepHoles
	}
}

// triangulate runs the full pipeline: normalize loops, build the constraint
// graph, drive the engine, refine, extract.
func triangulate(outer Loop, holes []Loop, opts Options) (*Mesh, error) {
	if len(outer) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "outer loop is empty")
	}
	if err := validateFinite(append([]Loop{outer}, holes...)...); err != nil {
		return nil, err
	}

	outer = normalizeLoop(outer)
	if len(outer) < 3 {
		return nil, errors.Wrapf(ErrDegenerateLoop, "outer loop has %d distinct vertices", len(outer))
	}
	normHoles := make([]Loop, 0, len(holes))
	for _, hole := range holes {
		hole = normalizeLoop(hole)
		// Holes are optional, so empty and degenerate ones are skipped
		// rather than rejected.
		if len(hole) < 3 {
			continue
		}
		normHoles = append(normHoles, hole)
	}

	graph := buildPSLG(outer, normHoles)

	engine := cdt.New()
	handles := make([]cdt.VertexHandle, len(graph.points))
	for i, p := range graph.points {
		h, err := engine.Insert(cdt.Point{X: p.X, Y: p.Y})
		if err != nil {
			return nil, errors.Wrapf(ErrGeometry, "inserting vertex %d: %s", i, err)
		}
		handles[i] = h
	}

	hasConstraints := false
	if opts.EnforceConstraints {
		for _, e := range graph.edges {
			if e[0] == e[1] {
				continue
			}
			// Coincident input points share one engine handle; such an edge
			// cannot represent a real incidence constraint.
			if handles[e[0]] == handles[e[1]] {
				continue
			}
			if err := engine.AddConstraint(handles[e[0]], handles[e[1]]); err != nil {
				return nil, errors.Wrapf(ErrGeometry, "constraining edge %d-%d: %s", e[0], e[1], err)
			}
			hasConstraints = true
		}
	}

	ref := selectRefinement(opts)
	var excluded map[cdt.FaceHandle]struct{}
	switch selectExclusionMode(hasConstraints, !opts.KeepHoles) {
	case modeNoConstraints:
		// Without constraints there is nothing meaningful to exclude, and
		// without an area target the raw Delaunay triangulation already is
		// the result, so the engine is only invoked for an actual size
		// bound.
		if ref.MaxArea > 0 {
			engine.Refine(cdt.RefinementParameters{
				MaxArea:         ref.MaxArea,
				MinAngleDegrees: ref.MinAngle,
			})
		}
	case modeConstrainedExcludeHoles:
		// Hole classification is a byproduct of constrained refinement, so
		// this always routes through Refine, even with no size or angle
		// bound to enforce.
		result := engine.Refine(cdt.RefinementParameters{
			MaxArea:           ref.MaxArea,
			MinAngleDegrees:   ref.MinAngle,
			ExcludeOuterFaces: true,
		})
		excluded = result.ExcludedFaces
	case modeConstrainedKeepHoles:
		engine.Refine(cdt.RefinementParameters{
			MaxArea:         ref.MaxArea,
			MinAngleDegrees: ref.MinAngle,
		})
	}

	return extractMesh(engine, excluded), nil
}
