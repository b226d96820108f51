package drawutil

import (
	"image"
	"math"
)

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Point is a world-space position.
type Point struct {
	X, Y float64
}

// Rect is a world-space bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Dx returns the box width.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the box height.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Center returns the box center.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Viewport maps world coordinates onto a W×H cell buffer. Center is the
// world point drawn at the middle of the buffer; Scale is the number of
// columns per world unit (rows per unit are Scale/CellAspect).
type Viewport struct {
	Center Point
	Scale  float64
	W, H   int
}

// Fit returns a viewport showing r inside a w×h buffer with margin cells
// left free on every side.
func Fit(r Rect, w, h, margin int) Viewport {
	vp := Viewport{Center: r.Center(), Scale: 1, W: w, H: h}
	cols := float64(w - 1 - 2*margin)
	rows := float64(h - 1 - 2*margin)
	if cols <= 0 || rows <= 0 {
		return vp
	}

	sx := math.Inf(1)
	if r.Dx() > 0 {
		sx = cols / r.Dx()
	}
	sy := math.Inf(1)
	if r.Dy() > 0 {
		sy = rows * CellAspect / r.Dy()
	}
	if s := math.Min(sx, sy); !math.IsInf(s, 1) {
		vp.Scale = s
	}
	return vp
}

// Project returns the cell under world point (x, y).
func (v Viewport) Project(x, y float64) image.Point {
	col := float64(v.W)/2 + (x-v.Center.X)*v.Scale
	row := float64(v.H)/2 - (y-v.Center.Y)*v.Scale/CellAspect
	return image.Pt(int(math.Floor(col)), int(math.Floor(row)))
}

// Unproject returns the world point at the center of cell (col, row).
func (v Viewport) Unproject(col, row int) Point {
	return Point{
		X: v.Center.X + (float64(col)+0.5-float64(v.W)/2)/v.Scale,
		Y: v.Center.Y - (float64(row)+0.5-float64(v.H)/2)*CellAspect/v.Scale,
	}
}

// Zoom returns v scaled by factor around its center.
func (v Viewport) Zoom(factor float64) Viewport {
	if factor > 0 {
		v.Scale *= factor
	}
	return v
}

// Pan returns v moved by (cols, rows) cells; positive rows move down.
func (v Viewport) Pan(cols, rows int) Viewport {
	v.Center.X += float64(cols) / v.Scale
	v.Center.Y -= float64(rows) * CellAspect / v.Scale
	return v
}

// Resize returns v with a new buffer size, keeping center and scale.
func (v Viewport) Resize(w, h int) Viewport {
	v.W, v.H = w, h
	return v
}
