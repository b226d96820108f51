package drawutil

import "github.com/wesen/hexlattice/pkg/cellbuf"

// DrawSegment draws the world-space segment a-b into buf. The whole
// segment uses one glyph chosen from its projected slope.
func DrawSegment(buf *cellbuf.Buffer, vp Viewport, a, b Point, style cellbuf.StyleKey) {
	p0 := vp.Project(a.X, a.Y)
	p1 := vp.Project(b.X, b.Y)
	ch := segmentChar(p1.X-p0.X, p1.Y-p0.Y)
	for _, p := range Bresenham(p0.X, p0.Y, p1.X, p1.Y) {
		buf.Set(p.X, p.Y, ch, style)
	}
}

// DrawPolyline draws consecutive segments through pts.
func DrawPolyline(buf *cellbuf.Buffer, vp Viewport, pts []Point, style cellbuf.StyleKey) {
	for i := 1; i < len(pts); i++ {
		DrawSegment(buf, vp, pts[i-1], pts[i], style)
	}
}

// DrawMarker writes ch at the cell under p.
func DrawMarker(buf *cellbuf.Buffer, vp Viewport, p Point, ch rune, style cellbuf.StyleKey) {
	c := vp.Project(p.X, p.Y)
	buf.Set(c.X, c.Y, ch, style)
}

// DrawRect draws the outline of r.
func DrawRect(buf *cellbuf.Buffer, vp Viewport, r Rect, style cellbuf.StyleKey) {
	DrawPolyline(buf, vp, []Point{
		{r.MinX, r.MinY}, {r.MinX, r.MaxY}, {r.MaxX, r.MaxY}, {r.MaxX, r.MinY}, {r.MinX, r.MinY},
	}, style)
}
