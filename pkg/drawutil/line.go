// Package drawutil rasterises world-space lines and points into a
// cellbuf.Buffer: Bresenham lines, slope glyphs, and a Viewport mapping
// world coordinates (y up) to terminal cells (rows down).
package drawutil

import "image"

// Bresenham returns the cells on the line from (x0,y0) to (x1,y1),
// endpoints included. The walk is capped at dx+dy+2 steps.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([]image.Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := x0, y0
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the glyph for a step of (dx, dy) in cell space, where
// dy grows downwards.
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '·'
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// segmentChar picks one glyph for a whole segment from its overall slope.
// Shallow segments read better as '─' and steep ones as '│'.
func segmentChar(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx == 0 && ady == 0:
		return '·'
	case ady*3 < adx:
		return '─'
	case adx*3 < ady:
		return '│'
	}
	return LineChar(dx, dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
