package wireframe

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

var (
	// ErrEmptyMesh is returned when plotting a mesh without vertices.
	ErrEmptyMesh = errors.New("wireframe: empty mesh")

	// ErrFormat is returned by Save for unsupported file extensions.
	ErrFormat = errors.New("wireframe: unsupported image format")
)

var (
	stripColor  = color.RGBA{R: 0x00, G: 0x9a, B: 0x74, A: 0xff}
	crossColor  = color.RGBA{R: 0x00, G: 0x6e, B: 0x9a, A: 0xff}
	vertexColor = color.RGBA{R: 0xdd, G: 0x99, B: 0x00, A: 0xff}
	frameColor  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// PlotOptions controls Plot.
type PlotOptions struct {
	Title    string
	Vertices bool
	Frame    *drawutil.Rect
}

// Plot builds a gonum plot of m's wireframe. Both axes cover the same span
// so hexagons keep their shape when saved with equal width and height.
func Plot(m *hexmesh.Mesh, opts PlotOptions) (*plot.Plot, error) {
	if m == nil || len(m.Vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	plan := m.Plan()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if f := opts.Frame; f != nil {
		l, err := plotter.NewLine(plotter.XYs{
			{X: f.MinX, Y: f.MinY}, {X: f.MinX, Y: f.MaxY}, {X: f.MaxX, Y: f.MaxY},
			{X: f.MaxX, Y: f.MinY}, {X: f.MinX, Y: f.MinY},
		})
		if err != nil {
			return nil, fmt.Errorf("frame: %w", err)
		}
		l.Color = frameColor
		l.Width = vg.Points(0.5)
		l.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(l)
	}

	for i, r := range plan.Strips {
		l, err := plotter.NewLine(xys(m.Strip(r)))
		if err != nil {
			return nil, fmt.Errorf("strip %d: %w", i, err)
		}
		l.Color = stripColor
		l.Width = vg.Points(1)
		p.Add(l)
	}

	for _, s := range plan.Crosses {
		a, b := m.Vertices[s.A], m.Vertices[s.B]
		l, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return nil, fmt.Errorf("cross %d-%d: %w", s.A, s.B, err)
		}
		l.Color = crossColor
		l.Width = vg.Points(1)
		p.Add(l)
	}

	if opts.Vertices {
		sc, err := plotter.NewScatter(xys(m.Vertices))
		if err != nil {
			return nil, fmt.Errorf("vertices: %w", err)
		}
		sc.GlyphStyle.Color = vertexColor
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}

	b := Bounds(m)
	half := max(b.Dx(), b.Dy())/2 + 0.05*max(b.Dx(), b.Dy(), 1)
	c := b.Center()
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half

	return p, nil
}

// Save writes m's wireframe to path. The format follows the extension:
// .png, .svg or .pdf.
func Save(m *hexmesh.Mesh, path string, size vg.Length, opts PlotOptions) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}

	p, err := Plot(m, opts)
	if err != nil {
		return err
	}
	if err := p.Save(size, size, path); err != nil {
		return fmt.Errorf("save wireframe plot: %w", err)
	}
	return nil
}

func xys(vs []hexmesh.Vec3) plotter.XYs {
	pts := make(plotter.XYs, len(vs))
	for i, v := range vs {
		pts[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return pts
}
