// Command polytri meshes a polygon with holes from a JSON description.
//
// The input document holds one outer loop, optional inner loops, and the
// meshing options:
//
//	{
//	  "outer": [[0, 0], [1, 0], [1, 1], [0, 1]],
//	  "inner_loops": [[[0.25, 0.25], [0.75, 0.25], [0.75, 0.75], [0.25, 0.75]]],
//	  "maxh": 0.1,
//	  "quality": "moderate",
//	  "enforce_constraints": true
//	}
//
// The output document holds the mesh as flat arrays: "points" (x, y, z
// triples, z always 0), "triangles" (index triples) and "constraint_edges"
// (index pairs).
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/meshkit/polytri"
)

var (
	inputPath    = kingpin.Flag("input", "Input JSON file (default stdin).").Short('i').String()
	outputPath   = kingpin.Flag("output", "Output JSON file (default stdout).").Short('o').String()
	preview      = kingpin.Flag("preview", "Render the mesh to the terminal (iTerm2).").Bool()
	previewScale = kingpin.Flag("preview-scale", "Pixels per input unit for the preview.").Default("100").Float64()
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type request struct {
	Outer              [][2]float64   `json:"outer"`
	InnerLoops         [][][2]float64 `json:"inner_loops"`
	MaxH               *float64       `json:"maxh"`
	Quality            string         `json:"quality"`
	EnforceConstraints bool           `json:"enforce_constraints"`
	MinAngle           *float64       `json:"min_angle"`
	ExcludeHoles       *bool          `json:"exclude_holes"`
}

type response struct {
	Points          [][3]float64 `json:"points"`
	Triangles       [][3]int     `json:"triangles"`
	ConstraintEdges [][2]int     `json:"constraint_edges"`
}

func main() {
	kingpin.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}
}

func run() error {
	raw, err := readInput()
	if err != nil {
		return err
	}
	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing input: %s", err)
	}

	mesh, err := polytri.Triangulate(toLoop(req.Outer), toLoops(req.InnerLoops), toOptions(req))
	if err != nil {
		return err
	}

	out, err := json.Marshal(response{
		Points:          mesh.Points,
		Triangles:       mesh.Triangles,
		ConstraintEdges: mesh.ConstraintEdges,
	})
	if err != nil {
		return err
	}
	if err := writeOutput(append(out, '\n')); err != nil {
		return err
	}

	if *preview {
		path := filepath.Join(os.TempDir(), "polytri_preview.png")
		if err := mesh.RenderPNG(path, *previewScale); err != nil {
			return err
		}
		imgcat.CatFile(path, os.Stderr)
	}
	return nil
}

func toLoop(coords [][2]float64) []polytri.Point {
	loop := make([]polytri.Point, 0, len(coords))
	for _, c := range coords {
		loop = append(loop, polytri.Point{X: c[0], Y: c[1]})
	}
	return loop
}

func toLoops(loops [][][2]float64) [][]polytri.Point {
	out := make([][]polytri.Point, 0, len(loops))
	for _, l := range loops {
		out = append(out, toLoop(l))
	}
	return out
}

func toOptions(req request) polytri.Options {
	opts := polytri.Options{
		Quality:            polytri.QualityDefault,
		EnforceConstraints: req.EnforceConstraints,
		MinAngle:           req.MinAngle,
	}
	if req.Quality != "" {
		opts.Quality = polytri.Quality(req.Quality)
	}
	if req.MaxH != nil {
		opts.MaxH = *req.MaxH
	}
	// Holes are carved out unless the input asks to keep them.
	if req.ExcludeHoles != nil && !*req.ExcludeHoles {
		opts.KeepHoles = true
	}
	return opts
}

func readInput() ([]byte, error) {
	if *inputPath == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(*inputPath)
}

func writeOutput(data []byte) error {
	if *outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return ioutil.WriteFile(*outputPath, data, 0644)
}
