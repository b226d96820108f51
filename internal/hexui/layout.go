package hexui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	toolbarHeight = 1
	footerHeight  = 1
	panelWidth    = 34
)

// screenLayout holds the regions of the terminal for one frame.
type screenLayout struct {
	toolbar image.Rectangle
	footer  image.Rectangle
	panel   image.Rectangle
	canvas  image.Rectangle
}

// computeLayout splits a w×h terminal into toolbar, footer, right panel
// and canvas. The panel is dropped when the terminal is too narrow to
// leave a canvas beside it. Degenerate regions are empty rectangles.
func computeLayout(w, h int) screenLayout {
	w, h = max(w, 0), max(h, 0)
	top := min(toolbarHeight, h)
	bottom := max(min(h-footerHeight, h), top)

	var l screenLayout
	l.toolbar = image.Rect(0, 0, w, top)
	l.footer = image.Rect(0, bottom, w, h)

	right := w
	if w >= 2*panelWidth {
		right = w - panelWidth
		l.panel = image.Rect(right, top, w, bottom)
	}
	if right > 0 && bottom > top {
		l.canvas = image.Rect(0, top, right, bottom)
	}
	return l
}

// fillLayer creates a layer filled with style covering r.
func fillLayer(r image.Rectangle, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return lipgloss.NewLayer(style.Render(strings.Join(lines, "\n"))).
		X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
}

// barLayer renders a single-line bar spanning r.
func barLayer(content string, r image.Rectangle, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Width(r.Dx()).MaxWidth(r.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(1).ID(id)
}

// modalLayer renders content inside boxStyle, centered on a termW×termH
// screen above everything else.
func modalLayer(content string, termW, termH int, boxStyle lipgloss.Style, id string) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID(id)
}
