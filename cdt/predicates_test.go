package cdt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrient2d(t *testing.T) {
	a, b := Point{0, 0}, Point{1, 0}
	assert.Greater(t, orient2d(a, b, Point{0, 1}), 0.0)
	assert.Less(t, orient2d(a, b, Point{0, -1}), 0.0)
	assert.Equal(t, 0.0, orient2d(a, b, Point{2, 0}))
}

func TestInCircumcircle(t *testing.T) {
	// Counterclockwise triangle with circumcircle centered on (1, 1).
	a, b, c := Point{0, 0}, Point{2, 0}, Point{0, 2}
	assert.Greater(t, inCircumcircle(a, b, c, Point{1, 1}), 0.0)
	assert.Less(t, inCircumcircle(a, b, c, Point{3, 3}), 0.0)
	// The fourth corner of the square is exactly on the circle.
	assert.InDelta(t, 0.0, inCircumcircle(a, b, c, Point{2, 2}), 1e-12)
}

func TestCircumcenter(t *testing.T) {
	center, ok := circumcenter(Point{0, 0}, Point{2, 0}, Point{0, 2})
	require.True(t, ok)
	assert.InDelta(t, 1.0, center.X, 1e-12)
	assert.InDelta(t, 1.0, center.Y, 1e-12)

	_, ok = circumcenter(Point{0, 0}, Point{1, 1}, Point{2, 2})
	assert.False(t, ok)
}

func TestCoincident(t *testing.T) {
	assert.True(t, coincident(Point{1, 1}, Point{1 + 1e-11, 1 - 1e-11}))
	assert.False(t, coincident(Point{1, 1}, Point{1 + 1e-9, 1}))
}

func TestBetween(t *testing.T) {
	a, b := Point{0, 0}, Point{4, 4}
	assert.True(t, between(a, b, Point{2, 2}))
	assert.False(t, between(a, b, Point{0, 0}))
	assert.False(t, between(a, b, Point{4, 4}))
	assert.False(t, between(a, b, Point{5, 5}))
	assert.False(t, between(a, b, Point{-1, -1}))
}

func TestFinitePoint(t *testing.T) {
	assert.True(t, finitePoint(Point{0, 0}))
	assert.False(t, finitePoint(Point{math.NaN(), 0}))
	assert.False(t, finitePoint(Point{0, math.Inf(1)}))
}
