package polytri

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	mesh, err := Triangulate(unitSquare(), [][]Point{centeredHole()}, Options{
		EnforceConstraints: true,
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mesh.png")
	require.NoError(t, mesh.RenderPNG(path, 50))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderPNGEmptyMesh(t *testing.T) {
	mesh := &Mesh{}
	path := filepath.Join(t.TempDir(), "empty.png")
	assert.NoError(t, mesh.RenderPNG(path, 50))
}
