// Package hexui is the interactive hex grid viewer: a wireframe canvas with
// a parameter panel, mouse snapping to the hexagon lattice, and a script
// modal for editing grid parameters.
package hexui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/hexlattice/internal/config"
	"github.com/wesen/hexlattice/internal/wireframe"
	"github.com/wesen/hexlattice/pkg/drawutil"
	"github.com/wesen/hexlattice/pkg/hexgrid"
	"github.com/wesen/hexlattice/pkg/hexmesh"
)

const maxConsoleLines = 200

// Model is the viewer state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Params       hexgrid.Params
	Orientation  hexmesh.Orientation
	ShowVertices bool
	ShowFrame    bool

	// Grid and Mesh are rebuilt from scratch whenever Params or
	// Orientation change.
	Grid *hexgrid.Grid
	Mesh *hexmesh.Mesh
	Err  string

	// Camera maps canvas cells to mesh space. While AutoFit is set the
	// camera reframes the mesh on every regeneration and resize.
	Camera  drawutil.Viewport
	AutoFit bool

	Hover   *hexgrid.Pair // snapped lattice point under the mouse
	Pinned  []hexgrid.Pair
	Console []string

	// Script modal state
	ScriptOpen bool
	Script     textinput.Model

	initial            hexgrid.Params
	initialOrientation hexmesh.Orientation
}

// NewModel creates the viewer for cfg.
func NewModel(cfg *config.Config) Model {
	m := Model{
		Params:             cfg.Params(),
		Orientation:        cfg.GetOrientation(),
		ShowVertices:       cfg.GetShowVertices(),
		ShowFrame:          cfg.GetShowFrame(),
		AutoFit:            true,
		initial:            cfg.Params(),
		initialOrientation: cfg.GetOrientation(),
	}
	m.regenerate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// regenerate discards the current grid and mesh and builds new ones from
// Params and Orientation. Pins and hover refer to the old lattice and are
// cleared as well.
func (m *Model) regenerate() {
	m.Grid, m.Mesh, m.Err = nil, nil, ""
	m.Hover, m.Pinned = nil, nil

	g, err := hexgrid.Generate(m.Params)
	if err != nil {
		m.Err = err.Error()
		m.logf("error: %v", err)
		hexgrid.Logger().Warn("hexui: generate failed", slog.Any("err", err))
		return
	}
	mesh, err := hexmesh.FromGrid(g, m.Orientation)
	if err != nil {
		m.Err = err.Error()
		m.logf("error: %v", err)
		return
	}
	m.Grid, m.Mesh = g, mesh
	m.logf("n=%d size=%g %s: %d×%d axes, %d vertices",
		m.Params.Divisions, m.Params.Size, placement(m.Params.Centered),
		len(g.Major), len(g.Minor), len(mesh.Vertices))
	m.refit()
}

// refit updates the camera for the current canvas size.
func (m *Model) refit() {
	canvas := computeLayout(m.Width, m.Height).canvas
	w, h := canvas.Dx(), canvas.Dy()
	switch {
	case m.AutoFit && m.Mesh != nil:
		m.Camera = wireframe.FitViewport(m.Mesh, w, h)
	case m.Camera.Scale == 0:
		m.Camera = drawutil.Viewport{Scale: 1, W: w, H: h}
	default:
		m.Camera = m.Camera.Resize(w, h)
	}
}

// logf appends a line to the console panel.
func (m *Model) logf(format string, args ...any) {
	m.Console = append(m.Console, fmt.Sprintf(format, args...))
	if n := len(m.Console); n > maxConsoleLines {
		m.Console = m.Console[n-maxConsoleLines:]
	}
}

func placement(centered bool) string {
	if centered {
		return "centered"
	}
	return "corner"
}
