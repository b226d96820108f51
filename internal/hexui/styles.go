package hexui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexlattice/internal/wireframe"
	"github.com/wesen/hexlattice/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette, CRT green.
var (
	colorBG = c("#080e0b")

	stripColor  = c("#00d4a0")
	crossColor  = c("#0e7a5a")
	vertexColor = c("#ddaa44")
	frameColor  = c("#2f5f4a")
	hoverColor  = c("#00ffee")
	pinColor    = c("#ffcc00")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	errorColor   = c("#ff5555")
)

// stylePinned follows the wireframe keys; StyleMarker is the hover marker.
const stylePinned = wireframe.StyleMarker + 1

// Marker glyphs drawn over the wireframe.
const (
	hoverGlyph  = '◎'
	pinnedGlyph = '●'
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for the canvas.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	wireframe.StyleBackground: lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	wireframe.StyleStrip:      lipgloss.NewStyle().Foreground(stripColor).Background(colorBG),
	wireframe.StyleCross:      lipgloss.NewStyle().Foreground(crossColor).Background(colorBG),
	wireframe.StyleVertex:     lipgloss.NewStyle().Foreground(vertexColor).Background(colorBG),
	wireframe.StyleFrame:      lipgloss.NewStyle().Foreground(frameColor).Background(colorBG),
	wireframe.StyleMarker:     lipgloss.NewStyle().Foreground(hoverColor).Background(colorBG).Bold(true),
	stylePinned:               lipgloss.NewStyle().Foreground(pinColor).Background(colorBG).Bold(true),
}

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)
