package hexui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

const (
	panStep    = 3
	zoomFactor = 1.25
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.refit()

	case tea.KeyMsg:
		if m.ScriptOpen {
			return m.handleScriptKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.ScriptOpen {
			return m, nil
		}
		return handleMouse(m, msg, computeLayout(m.Width, m.Height).canvas)
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e":
		return m.openScriptModal()
	}
	m.applyKey(key)
	return m, nil
}

// applyKey handles the keys that only change model state.
func (m *Model) applyKey(key string) {
	switch key {
	// Grid parameters
	case "]":
		if m.Params.Divisions < hexgrid.MaxDivisions {
			m.Params.Divisions++
			m.regenerate()
		}
	case "[":
		if m.Params.Divisions > 1 {
			m.Params.Divisions--
			m.regenerate()
		}
	case "c":
		m.Params.Centered = !m.Params.Centered
		m.regenerate()
	case "o":
		if m.Orientation == hexmesh.OrientationMinorX {
			m.Orientation = hexmesh.OrientationMajorX
		} else {
			m.Orientation = hexmesh.OrientationMinorX
		}
		m.regenerate()
	case "r":
		m.Params = m.initial
		m.Orientation = m.initialOrientation
		m.AutoFit = true
		m.regenerate()

	// Display
	case "v":
		m.ShowVertices = !m.ShowVertices
	case "s":
		m.ShowFrame = !m.ShowFrame
	case "x", "esc", "escape":
		m.Pinned = nil

	// Camera
	case "+", "=":
		m.Camera = m.Camera.Zoom(zoomFactor)
		m.AutoFit = false
	case "-", "_":
		m.Camera = m.Camera.Zoom(1 / zoomFactor)
		m.AutoFit = false
	case "up":
		m.Camera = m.Camera.Pan(0, -panStep)
		m.AutoFit = false
	case "down":
		m.Camera = m.Camera.Pan(0, panStep)
		m.AutoFit = false
	case "left":
		m.Camera = m.Camera.Pan(-panStep, 0)
		m.AutoFit = false
	case "right":
		m.Camera = m.Camera.Pan(panStep, 0)
		m.AutoFit = false
	case "f":
		m.AutoFit = true
		m.refit()
	}
}
