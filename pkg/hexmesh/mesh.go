// Package hexmesh turns a hexgrid's axis sequences into an ordered vertex
// list laid out for wireframe rendering.
//
// Vertices are emitted strip by strip: each strip walks the full major axis
// while zigzagging between two adjacent minor gridlines. A contiguous run of
// MajorSize vertices is one line strip; vertices MajorSize apart share a
// major coordinate and form the minor-axis cross lines.
package hexmesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/wesen/hexlattice/pkg/hexgrid"
)

var (
	// ErrNilGrid is returned by FromGrid when no grid is given.
	ErrNilGrid = errors.New("hexmesh: nil grid")

	// ErrNotImplemented is returned by Tesselate.
	ErrNotImplemented = errors.New("hexmesh: not implemented")
)

// Orientation selects which screen axis carries the grid's major axis.
type Orientation int

const (
	// OrientationMinorX puts the minor axis on X and the major axis on Y.
	OrientationMinorX Orientation = iota
	// OrientationMajorX puts the major axis on X and the minor axis on Y.
	OrientationMajorX
)

func (o Orientation) String() string {
	switch o {
	case OrientationMinorX:
		return "minor-x"
	case OrientationMajorX:
		return "major-x"
	}
	return "unknown"
}

// ParseOrientation parses the names returned by Orientation.String.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "minor-x", "":
		return OrientationMinorX, true
	case "major-x":
		return OrientationMajorX, true
	}
	return OrientationMinorX, false
}

// Vec3 is a point in mesh space. Z is always 0 for generated meshes.
type Vec3 struct {
	X, Y, Z float64
}

// Array returns v as an indexable array.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Vec3FromArray is the inverse of Vec3.Array.
func Vec3FromArray(a [3]float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Face is a triangle of vertex indices.
type Face struct {
	V [3]int
}

// Mesh is the vertex layout of a grid.
type Mesh struct {
	Vertices []Vec3
	// Faces is reserved for triangulated output and is never populated.
	Faces []Face

	// MajorSize and MinorSize are the lengths of the axes the mesh was
	// built from. Renderers slice Vertices with them.
	MajorSize int
	MinorSize int

	Orientation Orientation
}

// Build walks the axes into a mesh. Pairs of minor gridlines (0,1), (2,3),
// ... each produce one strip; a trailing unpaired gridline is skipped.
func Build(major, minor []float64, o Orientation) *Mesh {
	m := &Mesh{
		MajorSize:   len(major),
		MinorSize:   len(minor),
		Orientation: o,
	}
	m.Vertices = make([]Vec3, 0, len(major)*(len(minor)/2))

	// zig carries over from strip to strip.
	zig := false
	for j := 0; j < len(minor)-1; j += 2 {
		for _, maj := range major {
			at := minor[j+1]
			if zig {
				at = minor[j]
			}
			m.Vertices = append(m.Vertices, place(maj, at, o))
			zig = !zig
		}
	}

	hexgrid.Logger().Debug("hexmesh: built",
		slog.Int("vertices", len(m.Vertices)),
		slog.Int("strips", m.Strips()),
		slog.String("orientation", o.String()))

	return m
}

// FromGrid builds the mesh of g.
func FromGrid(g *hexgrid.Grid, o Orientation) (*Mesh, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return Build(g.Major, g.Minor, o), nil
}

func place(major, minor float64, o Orientation) Vec3 {
	if o == OrientationMajorX {
		return Vec3{X: major, Y: minor}
	}
	return Vec3{X: minor, Y: major}
}

// ToGrid maps a mesh-space point to grid (major, minor) coordinates.
func (o Orientation) ToGrid(x, y float64) hexgrid.Pair {
	if o == OrientationMajorX {
		return hexgrid.Pair{Major: x, Minor: y}
	}
	return hexgrid.Pair{Major: y, Minor: x}
}

// ToMesh maps grid coordinates to a mesh-space point.
func (o Orientation) ToMesh(p hexgrid.Pair) Vec3 {
	return place(p.Major, p.Minor, o)
}

// Strips returns the number of line strips in the mesh.
func (m *Mesh) Strips() int {
	return m.MinorSize / 2
}

// Vertex returns the vertex at column col of strip strip.
func (m *Mesh) Vertex(strip, col int) Vec3 {
	return m.Vertices[strip*m.MajorSize+col]
}

// Flatten returns the vertices as interleaved x, y, z values.
func (m *Mesh) Flatten() []float32 {
	out := make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}

// WriteVertices writes Flatten's output to w as little-endian float32s,
// ready to upload as a vertex buffer with a 12-byte stride.
func (m *Mesh) WriteVertices(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, m.Flatten()); err != nil {
		return fmt.Errorf("hexmesh: write vertices: %w", err)
	}
	return nil
}

// Tesselate is meant to tesselate only the hexagons within r cells of the
// hexagon at (x, y); r = 0 covers the target alone. It always returns
// ErrNotImplemented.
//
// TODO: design this as a radius-bounded axis generator rather than a
// filter over the full-grid walk.
func (m *Mesh) Tesselate(x, y float64, r int) error {
	return ErrNotImplemented
}
