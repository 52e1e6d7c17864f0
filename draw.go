package polytri

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// RenderPNG draws the mesh to a PNG file: filled triangles with stroked
// edges, constraint edges on top in a heavier stroke. Meant for eyeballing
// results and for the CLI preview; scale is pixels per input unit.
func (m *Mesh) RenderPNG(path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range m.Points {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	width, height := drawPadding*2, drawPadding*2
	if len(m.Points) > 0 {
		width += int(scale * (maxX - minX))
		height += int(scale * (maxY - minY))
	} else {
		minX, minY = 0, 0
	}

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range m.Triangles {
		a, b, d := m.Points[t[0]], m.Points[t[1]], m.Points[t[2]]
		c.MoveTo(a[0], a[1])
		c.LineTo(b[0], b[1])
		c.LineTo(d[0], d[1])
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetLineWidth(3)
	c.SetRGB(1, 0.5, 0)
	for _, e := range m.ConstraintEdges {
		a, b := m.Points[e[0]], m.Points[e[1]]
		c.MoveTo(a[0], a[1])
		c.LineTo(b[0], b[1])
	}
	c.Stroke()

	return c.SavePNG(path)
}

// Render and print in the terminal (iTerm only). Debugging helper.
func (m *Mesh) dbgDraw(scale float64) {
	if err := m.RenderPNG("/tmp/polytri_mesh.png", scale); err != nil {
		return
	}
	imgcat.CatFile("/tmp/polytri_mesh.png", os.Stdout)
}
