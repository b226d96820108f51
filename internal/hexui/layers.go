package hexui

import (
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexlattice/internal/wireframe"
	"github.com/wesen/hexlattice/pkg/cellbuf"
	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexgrid"
)

// renderCanvas draws the wireframe plus pinned and hover markers into a
// fresh buffer the size of the camera.
func (m Model) renderCanvas() *cellbuf.Buffer {
	buf := cellbuf.New(m.Camera.W, m.Camera.H, wireframe.StyleBackground)
	if m.Mesh == nil {
		return buf
	}

	opts := wireframe.Options{Vertices: m.ShowVertices}
	if m.ShowFrame && m.Grid != nil {
		frame := wireframe.Frame(m.Grid, m.Orientation)
		opts.Frame = &frame
	}
	wireframe.Draw(buf, m.Camera, m.Mesh, opts)

	for _, p := range m.Pinned {
		m.drawMarker(buf, p, pinnedGlyph, stylePinned)
	}
	if m.Hover != nil {
		m.drawMarker(buf, *m.Hover, hoverGlyph, wireframe.StyleMarker)
	}
	return buf
}

func (m Model) drawMarker(buf *cellbuf.Buffer, p hexgrid.Pair, ch rune, style cellbuf.StyleKey) {
	v := m.Orientation.ToMesh(p)
	drawutil.DrawMarker(buf, m.Camera, drawutil.Point{X: v.X, Y: v.Y}, ch, style)
}

// buildCanvasLayer renders the canvas buffer as a single Layer at Z=0.
func buildCanvasLayer(m Model, r image.Rectangle) *lipgloss.Layer {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(0).ID("canvas")
	}
	rendered := m.renderCanvas().Render(bufStyles)
	return lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(0).ID("canvas")
}
