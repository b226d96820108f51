package hexui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	l := computeLayout(m.Width, m.Height)

	layers := []*lipgloss.Layer{
		fillLayer(l.toolbar, tbStyle, "toolbar-bg", 0),
		fillLayer(l.footer, ftStyle, "footer-bg", 0),
		barLayer(m.toolbarText(), l.toolbar, tbStyle, "toolbar"),
		m.footerLayer(l),
		buildCanvasLayer(m, l.canvas),
	}

	if pr := l.panel; pr.Dx() > 1 && pr.Dy() > 0 {
		layers = append(layers,
			fillLayer(pr, bgStyle, "panel-bg", 0),
			buildSeparatorLayer(pr.Min.X, pr.Min.Y, pr.Dy()),
		)
		layers = append(layers, buildPanelLayers(m, pr.Min.X+1, pr.Min.Y, pr.Dx()-1, pr.Dy())...)
	}

	if m.ScriptOpen {
		layers = append(layers, buildScriptModalLayer(m, m.Width, m.Height))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarText() string {
	return fmt.Sprintf(
		" HEXLATTICE  │  n=%d  %s  %s  │  [e]script  [q]uit",
		m.Params.Divisions, placement(m.Params.Centered), m.Orientation,
	)
}

func (m Model) footerLayer(l screenLayout) *lipgloss.Layer {
	if m.Err != "" {
		return barLayer(" "+m.Err, l.footer, errStyle, "footer")
	}

	hover := "-"
	if m.Hover != nil {
		hover = fmt.Sprintf("(%.3f, %.3f)", m.Hover.Major, m.Hover.Minor)
	}
	text := fmt.Sprintf(
		" Mouse: (%d,%d)  Snap: %s  Pins: %d  Zoom: %.1f",
		m.MouseX, m.MouseY, hover, len(m.Pinned), m.Camera.Scale,
	)
	return barLayer(text, l.footer, ftStyle, "footer")
}
