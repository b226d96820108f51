package hexui

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/hexlattice/pkg/hexgrid"
)

// handleMouse processes mouse events and returns updated model + command.
func handleMouse(m Model, msg tea.MouseMsg, canvasRect image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	// Only process mouse events inside the canvas region
	if !image.Pt(mouse.X, mouse.Y).In(canvasRect) {
		m.Hover = nil
		return m, nil
	}
	col := mouse.X - canvasRect.Min.X
	row := mouse.Y - canvasRect.Min.Y

	switch msg.(type) {
	case tea.MouseMotionMsg:
		m.hoverAt(col, row)

	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft {
			m.hoverAt(col, row)
			m.pinHover()
		}
	}

	return m, nil
}

// gridAt returns the grid coordinates under canvas cell (col, row).
func (m *Model) gridAt(col, row int) hexgrid.Pair {
	p := m.Camera.Unproject(col, row)
	return m.Orientation.ToGrid(p.X, p.Y)
}

// hoverAt snaps the point under canvas cell (col, row) to the lattice.
func (m *Model) hoverAt(col, row int) {
	if m.Grid == nil {
		m.Hover = nil
		return
	}
	snapped := m.Grid.Round(m.gridAt(col, row))
	m.Hover = &snapped
}

// pinHover keeps the current hover point and logs it.
func (m *Model) pinHover() {
	if m.Hover == nil {
		return
	}
	p := *m.Hover
	m.Pinned = append(m.Pinned, p)
	m.logf("pin #%d: major=%.3f minor=%.3f", len(m.Pinned), p.Major, p.Minor)
}
