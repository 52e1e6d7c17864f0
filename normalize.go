package polytri

import (
	"math"

	"github.com/pkg/errors"
)

// Tolerance for deciding that a loop's final point repeats its first, applied
// to each axis independently. The value is load-bearing: results must match
// the original adapters, which used the same closure test.
const closeTolerance = 1e-10

// normalizeLoop drops explicit closing points so every loop is stored open.
// The implied wraparound edge is added back by the constraint graph builder.
func normalizeLoop(loop Loop) Loop {
	for len(loop) > 1 && closes(loop[0], loop[len(loop)-1]) {
		loop = loop[:len(loop)-1]
	}
	return loop
}

func closes(first, last Point) bool {
	return math.Abs(first.X-last.X) <= closeTolerance &&
		math.Abs(first.Y-last.Y) <= closeTolerance
}

// validateFinite rejects NaN and infinite coordinates up front, before any
// engine work, so a malformed request can never leave a partial mesh behind.
func validateFinite(loops ...Loop) error {
	for _, loop := range loops {
		for _, p := range loop {
			if !finite(p.X) || !finite(p.Y) {
				return errors.Wrapf(ErrInvalidInput, "non-finite coordinate (%v, %v)", p.X, p.Y)
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
