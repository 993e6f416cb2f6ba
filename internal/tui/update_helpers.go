package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.lastErr = m.vis.Nudge(m.selected, -1, true)

	case key.Matches(msg, m.keys.Right):
		m.lastErr = m.vis.Nudge(m.selected, 1, true)

	case key.Matches(msg, m.keys.BigLeft):
		m.lastErr = m.vis.Nudge(m.selected, -bigStep, false)

	case key.Matches(msg, m.keys.BigRight):
		m.lastErr = m.vis.Nudge(m.selected, bigStep, false)

	case key.Matches(msg, m.keys.Presets):
		m.vis.HandleKey(msg.String())
		m.lastErr = nil

	case key.Matches(msg, m.keys.Solve):
		m.lastErr = m.vis.SolveHypotenuse()

	case key.Matches(msg, m.keys.SolveSel):
		m.lastErr = m.vis.Solve(m.selected)
	}

	return m, nil
}

// moveSelection cycles the selected slider by delta, wrapping around.
func (m *Model) moveSelection(delta int) {
	n := len(triangle.Sides)
	m.selected = triangle.Side((int(m.selected) + delta + n) % n)
}
