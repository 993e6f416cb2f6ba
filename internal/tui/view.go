package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("69")).
		Render(m.cells.String())

	right := renderMainContent(m)
	if m.width > 0 {
		available := m.width - lipgloss.Width(left) - 2
		if available > rightViewportMax {
			available = rightViewportMax
		}
		if available < 1 {
			// Fallback to vertical stacking if the window is too narrow.
			return lipgloss.JoinVertical(lipgloss.Left, left, right, renderFooter(m))
		}
		right = lipgloss.NewStyle().Width(available).Render(right)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().MarginLeft(2).Render(right))
	return lipgloss.JoinVertical(lipgloss.Left, body, renderFooter(m))
}

func renderMainContent(m Model) string {
	frame := m.vis.Frame()

	var b strings.Builder
	b.WriteString(renderHeader())
	b.WriteString("\n\n")
	b.WriteString(renderSliders(m))
	b.WriteString("\n")
	b.WriteString(renderSquares(frame.Report))
	b.WriteString("\n\n")
	b.WriteString(renderEquation(frame.Report))
	b.WriteString("\n")
	b.WriteString(renderResult(frame.Report))
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.lastErr.Error()))
	}
	return b.String()
}

func renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea")).Render("Pythagorean Theorem")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("a² + b² = c²")
	return title + "  " + subtitle
}

func renderFooter(m Model) string {
	return m.help.View(m.keys)
}
