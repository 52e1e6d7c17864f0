package cdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgeOf(tri *Triangulation, a, b VertexHandle) (Edge, bool) {
	for _, e := range tri.UndirectedEdges() {
		if (e.Vertices[0] == a && e.Vertices[1] == b) ||
			(e.Vertices[0] == b && e.Vertices[1] == a) {
			return e, true
		}
	}
	return Edge{}, false
}

func TestAddConstraintExistingEdge(t *testing.T) {
	tri := New()
	handles := insertAll(t, tri, squarePoints())

	require.NoError(t, tri.AddConstraint(handles[0], handles[1]))
	e, found := edgeOf(tri, handles[0], handles[1])
	require.True(t, found)
	assert.True(t, e.IsConstraint)

	// The other edges are untouched.
	e, found = edgeOf(tri, handles[1], handles[2])
	require.True(t, found)
	assert.False(t, e.IsConstraint)
}

func TestAddConstraintSameVertexNoop(t *testing.T) {
	tri := New()
	handles := insertAll(t, tri, squarePoints())
	require.NoError(t, tri.AddConstraint(handles[0], handles[0]))
	for _, e := range tri.UndirectedEdges() {
		assert.False(t, e.IsConstraint)
	}
}

func TestAddConstraintFlipsCrossingEdge(t *testing.T) {
	// Delaunay picks the (0,0)-(1.5,1) diagonal of this trapezoid; the
	// constraint forces the other one.
	tri := New()
	handles := insertAll(t, tri, []Point{{0, 0}, {2, 0}, {1.5, 1}, {0, 1}})

	_, found := edgeOf(tri, handles[0], handles[2])
	require.True(t, found, "expected the natural diagonal before constraining")

	require.NoError(t, tri.AddConstraint(handles[1], handles[3]))

	e, found := edgeOf(tri, handles[1], handles[3])
	require.True(t, found)
	assert.True(t, e.IsConstraint)
	_, found = edgeOf(tri, handles[0], handles[2])
	assert.False(t, found, "the natural diagonal must be gone")
	assert.Len(t, tri.InnerFaces(), 2)
}

func TestAddConstraintCrossingConstraintFails(t *testing.T) {
	tri := New()
	handles := insertAll(t, tri, []Point{{0, 0}, {2, 0}, {1.5, 1}, {0, 1}})
	require.NoError(t, tri.AddConstraint(handles[1], handles[3]))

	err := tri.AddConstraint(handles[0], handles[2])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intersects")
}

func TestAddConstraintSplitsOnCollinearVertex(t *testing.T) {
	// (1, 1) sits exactly on the segment from (0, 0) to (2, 2), so the
	// constraint lands as two halves.
	tri := New()
	handles := insertAll(t, tri, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}})

	require.NoError(t, tri.AddConstraint(handles[0], handles[2]))

	lower, found := edgeOf(tri, handles[0], handles[4])
	require.True(t, found)
	assert.True(t, lower.IsConstraint)
	upper, found := edgeOf(tri, handles[4], handles[2])
	require.True(t, found)
	assert.True(t, upper.IsConstraint)

	constraintCount := 0
	for _, e := range tri.UndirectedEdges() {
		if e.IsConstraint {
			constraintCount++
		}
	}
	assert.Equal(t, 2, constraintCount)
}

func TestAddConstraintAcrossInteriorPoints(t *testing.T) {
	// Interior points off the segment force a corridor of several triangles.
	tri := New()
	handles := insertAll(t, tri, []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{3, 5.2}, {5, 4.6}, {7, 5.3},
	})

	require.NoError(t, tri.AddConstraint(handles[0], handles[2]))
	e, found := edgeOf(tri, handles[0], handles[2])
	require.True(t, found)
	assert.True(t, e.IsConstraint)
}

func TestAddConstraintRejectsBadHandles(t *testing.T) {
	tri := New()
	handles := insertAll(t, tri, squarePoints())
	assert.Error(t, tri.AddConstraint(VertexHandle(0), handles[1]))
	assert.Error(t, tri.AddConstraint(handles[0], VertexHandle(999)))
	assert.Error(t, tri.AddConstraint(VertexHandle(-1), handles[0]))
}
