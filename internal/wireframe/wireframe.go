// Package wireframe draws a hexmesh as a hexagon wireframe, either into a
// terminal cell buffer or as a gonum plot.
//
// Both outputs follow the mesh's DrawPlan: each strip is a polyline along
// the major axis and each cross is a single segment joining two strips.
package wireframe

import (
	"gonum.org/v1/gonum/floats"

	"github.com/wesen/hexlattice/pkg/cellbuf"
	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

// Style keys written by Draw. Callers map them to lipgloss styles.
const (
	StyleBackground cellbuf.StyleKey = iota
	StyleStrip
	StyleCross
	StyleVertex
	StyleFrame
	StyleMarker
)

// VertexGlyph marks mesh vertices when Options.Vertices is set.
const VertexGlyph = '•'

// Options controls what Draw adds around the edges.
type Options struct {
	Vertices bool
	// Frame, when set, is outlined underneath the wireframe.
	Frame *drawutil.Rect
}

// Draw rasterises m into buf through vp.
func Draw(buf *cellbuf.Buffer, vp drawutil.Viewport, m *hexmesh.Mesh, opts Options) {
	if m == nil || len(m.Vertices) == 0 {
		return
	}
	plan := m.Plan()

	if opts.Frame != nil {
		drawutil.DrawRect(buf, vp, *opts.Frame, StyleFrame)
	}
	for _, r := range plan.Strips {
		drawutil.DrawPolyline(buf, vp, points(m.Strip(r)), StyleStrip)
	}
	for _, s := range plan.Crosses {
		drawutil.DrawSegment(buf, vp, point(m.Vertices[s.A]), point(m.Vertices[s.B]), StyleCross)
	}

	if opts.Vertices {
		for _, v := range m.Strip(plan.Points) {
			drawutil.DrawMarker(buf, vp, point(v), VertexGlyph, StyleVertex)
		}
	}
}

// Bounds returns the bounding box of m's vertices. An empty mesh has a
// zero box.
func Bounds(m *hexmesh.Mesh) drawutil.Rect {
	if m == nil || len(m.Vertices) == 0 {
		return drawutil.Rect{}
	}
	xs := make([]float64, len(m.Vertices))
	ys := make([]float64, len(m.Vertices))
	for i, v := range m.Vertices {
		xs[i], ys[i] = v.X, v.Y
	}
	return drawutil.Rect{
		MinX: floats.Min(xs), MinY: floats.Min(ys),
		MaxX: floats.Max(xs), MaxY: floats.Max(ys),
	}
}

// Frame returns g's reference square in mesh space: Size on a side,
// centered on the origin for centered grids and cornered there otherwise.
func Frame(g *hexgrid.Grid, o hexmesh.Orientation) drawutil.Rect {
	lo := g.Origin
	if g.Params.Centered {
		lo.Major -= g.Params.Size / 2
		lo.Minor -= g.Params.Size / 2
	}
	hi := hexgrid.Pair{Major: lo.Major + g.Params.Size, Minor: lo.Minor + g.Params.Size}
	a, b := o.ToMesh(lo), o.ToMesh(hi)
	return drawutil.Rect{
		MinX: min(a.X, b.X), MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X), MaxY: max(a.Y, b.Y),
	}
}

// FitViewport frames m in a w×h buffer with a one-cell margin.
func FitViewport(m *hexmesh.Mesh, w, h int) drawutil.Viewport {
	return drawutil.Fit(Bounds(m), w, h, 1)
}

func point(v hexmesh.Vec3) drawutil.Point {
	return drawutil.Point{X: v.X, Y: v.Y}
}

func points(vs []hexmesh.Vec3) []drawutil.Point {
	pts := make([]drawutil.Point, len(vs))
	for i, v := range vs {
		pts[i] = point(v)
	}
	return pts
}
