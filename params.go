package polytri

// refinement holds the engine-facing refinement controls derived from the
// user-facing Options. A zero MaxArea means no area cap; a zero MinAngle
// means no angle bound.
type refinement struct {
	MaxArea  float64
	MinAngle float64
}

// The equilateral-triangle relation between a target edge length and a
// triangle area cap. The constant is inherited from the original adapters
// and kept verbatim for output compatibility, even though it under- or
// over-refines non-equilateral target shapes.
const areaPerH2 = 0.433

// selectRefinement maps user intent to engine parameters. The minimum angle
// resolves in priority order: an explicit MinAngle wins, then the moderate
// quality tier (25 degrees), then no bound at all. Pure, and shared by every
// exclusion mode.
func selectRefinement(opts Options) refinement {
	var r refinement
	if opts.MaxH > 0 {
		r.MaxArea = areaPerH2 * opts.MaxH * opts.MaxH
	}
	switch {
	case opts.MinAngle != nil:
		r.MinAngle = *opts.MinAngle
	case opts.Quality == QualityModerate:
		r.MinAngle = 25
	}
	return r
}
