package hexui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/hexlattice/internal/gridscript"
)

const scriptHint = "n size centered originMajor originMinor"

// openScriptModal opens the parameter script modal.
func (m Model) openScriptModal() (tea.Model, tea.Cmd) {
	m.ScriptOpen = true
	m.Script = textinput.New()
	m.Script.Prompt = ""
	m.Script.CharLimit = 120
	m.Script.Placeholder = "n = 5; size = 2"
	cmd := m.Script.Focus()
	return m, cmd
}

// handleScriptKeys processes keys when the script modal is open.
func (m Model) handleScriptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.ScriptOpen = false
		m.Script.Blur()
		return m, nil

	case "enter":
		m.runScript(m.Script.Value())
		m.ScriptOpen = false
		m.Script.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.Script, cmd = m.Script.Update(msg)
		return m, cmd
	}
}

// runScript applies code to the current params and regenerates on
// success. A failing script leaves the grid untouched.
func (m *Model) runScript(code string) {
	code = strings.TrimSpace(code)
	if code == "" {
		return
	}
	m.logf("> %s", code)

	p, out, err := gridscript.Apply(code, m.Params)
	for _, line := range out {
		m.logf("%s", line)
	}
	if err != nil {
		m.logf("error: %v", err)
		return
	}
	m.Params = p
	m.regenerate()
}

// buildScriptModalLayer renders the script modal as a centered Z=100 Layer.
func buildScriptModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(c("#00ffc8")).
		Background(c("#0a1510")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c("#ddaa44")).
		Background(c("#0a1510"))

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#336655")).
		Background(c("#0a1510")).
		Italic(true)

	lines := []string{
		titleStyle.Render("  GRID SCRIPT"),
		"",
		labelStyle.Render("▸ Statements (separated by ;):"),
		"  " + m.Script.View(),
		"",
		hintStyle.Render("  vars: " + scriptHint),
		hintStyle.Render("  [enter] apply  [esc] cancel"),
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(c("#0a1510")).
		Width(56).
		Padding(1, 2)

	return modalLayer(strings.Join(lines, "\n"), screenW, screenH, boxStyle, "script-modal")
}
