package hexui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// panelBG is slightly lighter than the canvas background.
var panelBG = c("#1a2a20")

// Panel styles, all on panelBG.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelVarNameStyle = lipgloss.NewStyle().
				Foreground(c("#ddaa44")).
				Background(panelBG)

	panelVarValStyle = lipgloss.NewStyle().
				Foreground(c("#00ffc8")).
				Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width with the panel background.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// panelSection renders title, a rule, and body lines into a width×height
// block at (x, y).
func panelSection(id, title string, body []string, x, y, width, height int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	lines = append(lines, body...)

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}

	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID(id)
}

// paramLines lists the grid parameters and derived sizes.
func (m Model) paramLines() []string {
	kv := func(k string, v any) string {
		return panelVarNameStyle.Render(fmt.Sprintf("  %-11s", k)) +
			panelVarValStyle.Render(fmt.Sprintf("%v", v))
	}

	lines := []string{
		kv("n", m.Params.Divisions),
		kv("size", m.Params.Size),
		kv("placement", placement(m.Params.Centered)),
		kv("origin", fmt.Sprintf("(%g, %g)", m.Params.Origin.Major, m.Params.Origin.Minor)),
		kv("orientation", m.Orientation),
	}
	if m.Grid != nil && m.Mesh != nil {
		lines = append(lines,
			kv("axes", fmt.Sprintf("%d × %d", len(m.Grid.Major), len(m.Grid.Minor))),
			kv("hexagons", m.Grid.Hexagons()),
			kv("vertices", len(m.Mesh.Vertices)),
		)
	}
	return lines
}

// consoleLines returns the newest console entries that fit in n lines.
func consoleLines(console []string, n int) []string {
	if len(console) == 0 {
		return []string{panelDimStyle.Render("  (empty)")}
	}
	start := max(len(console)-n, 0)
	lines := make([]string, 0, len(console)-start)
	for _, line := range console[start:] {
		lines = append(lines, panelTextStyle.Render("  "+line))
	}
	return lines
}

var helpLines = []string{
	"  move=snap  click=pin",
	"  [ ] n-/+   [c]entered",
	"  [o]rient   [v]ertices",
	"  [s]quare",
	"  + - zoom   arrows pan",
	"  [f]it [x]unpin [r]eset",
	"  [e]script  [q]uit",
}

// buildPanelLayers renders the parameters, console and help sections.
func buildPanelLayers(m Model, x, y, width, height int) []*lipgloss.Layer {
	paramsH := 10
	helpH := len(helpLines) + 2
	consoleH := max(height-paramsH-helpH, 3)

	help := make([]string, len(helpLines))
	for i, l := range helpLines {
		help[i] = panelTextStyle.Render(l)
	}

	return []*lipgloss.Layer{
		panelSection("panel-params", "⬡ GRID", m.paramLines(), x, y, width, paramsH),
		panelSection("panel-console", "▤ CONSOLE", consoleLines(m.Console, consoleH-2), x, y+paramsH, width, consoleH),
		panelSection("panel-help", "? HELP", help, x, y+paramsH+consoleH, width, helpH),
	}
}

// buildSeparatorLayer creates a vertical separator line.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID("separator")
}
