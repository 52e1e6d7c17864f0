package polytri

import "github.com/pkg/errors"

// Failure taxonomy. Every error returned by Triangulate wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is or
// errors.Cause.
var (
	// ErrInvalidInput reports input rejected before any engine work: an
	// empty outer loop, or a non-finite coordinate anywhere in the request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateLoop reports an outer loop with fewer than three distinct
	// vertices after closure normalization. Degenerate holes are skipped
	// silently since holes are optional.
	ErrDegenerateLoop = errors.New("degenerate loop")

	// ErrGeometry reports a failure inside the triangulation engine, such as
	// a constraint edge crossing another constraint.
	ErrGeometry = errors.New("geometry error")
)
