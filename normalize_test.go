package polytri

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLoop(t *testing.T) {
	open := Loop{{0, 0}, {1, 0}, {1, 1}}
	assert.Equal(t, open, normalizeLoop(open))

	closed := Loop{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	assert.Equal(t, open, normalizeLoop(closed))

	// A closing point within tolerance on both axes still closes the loop.
	nearlyClosed := Loop{{0, 0}, {1, 0}, {1, 1}, {1e-11, -1e-11}}
	assert.Equal(t, open, normalizeLoop(nearlyClosed))

	// Off by more than the tolerance on one axis: a real vertex.
	notClosed := Loop{{0, 0}, {1, 0}, {1, 1}, {1e-9, 0}}
	assert.Equal(t, notClosed, normalizeLoop(notClosed))
}

func TestNormalizeLoopRepeatedClosure(t *testing.T) {
	loop := Loop{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {0, 0}}
	assert.Equal(t, Loop{{0, 0}, {1, 0}, {1, 1}}, normalizeLoop(loop))
}

func TestNormalizeLoopCollapses(t *testing.T) {
	// All points coincide with the first: everything is a closing point.
	assert.Len(t, normalizeLoop(Loop{{1, 1}, {1, 1}, {1, 1}}), 1)
	assert.Len(t, normalizeLoop(Loop{{1, 1}}), 1)
	assert.Empty(t, normalizeLoop(Loop{}))
}

func TestValidateFinite(t *testing.T) {
	require.NoError(t, validateFinite(Loop{{0, 0}, {1, 2}}))
	assert.Error(t, validateFinite(Loop{{0, 0}}, Loop{{math.NaN(), 0}}))
	assert.Error(t, validateFinite(Loop{{0, math.Inf(-1)}}))
}
