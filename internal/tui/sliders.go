package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/pythagoras/internal/canvas"
	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/relation"
	"github.com/ensigniasec/pythagoras/internal/report"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// renderSliders draws one row per side: selector, label, bar and readout.
func renderSliders(m Model) string {
	var b strings.Builder
	for i, s := range m.vis.Sliders() {
		prefix := "  "
		lineStyle := lipgloss.NewStyle()
		if s.Side == m.selected {
			prefix = "> "
			lineStyle = lineStyle.Bold(true)
		}
		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(canvas.Hex(geometry.SideColors[i]))).
			Render(fmt.Sprintf("side %s", s.Side))
		line := fmt.Sprintf("%s%s %s %5s", prefix, label, m.bars[i].ViewAs(s.Fraction()), s.Readout)
		b.WriteString(lineStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSquares draws the three squared-value boxes side by side, each sized
// from its SquareSize.
func renderSquares(r report.Report) string {
	boxes := make([]string, 0, len(r.Sides))
	for i, sr := range r.Sides {
		cols, rows := squareCells(sr.SquareSize)
		box := lipgloss.NewStyle().
			Width(cols).
			Height(rows).
			Align(lipgloss.Center, lipgloss.Center).
			Background(lipgloss.Color(canvas.Hex(geometry.SideColors[i]))).
			Foreground(lipgloss.Color("#ffffff")).
			Render(sr.SquaredText)
		heading := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(sr.Formula)
		boxes = append(boxes, lipgloss.NewStyle().MarginRight(squareGap).Render(
			lipgloss.JoinVertical(lipgloss.Left, heading, box),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, boxes...)
}

// squareCells maps a square size in display units to terminal columns and rows.
func squareCells(size float64) (cols, rows int) {
	cols = int(size) / squareUnitsPerCol
	rows = cols / squareRowAspect
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func renderResult(r report.Report) string {
	color := lipgloss.Color("46")
	if r.Result.Status == relation.Error {
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(r.Message)
}

func renderEquation(r report.Report) string {
	res := r.Result
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf(
		"%s² + %s² = %s    %s² = %s",
		triangle.SideA, triangle.SideB, triangle.FormatTenths(res.LeftSide),
		triangle.SideC, triangle.FormatTenths(res.RightSide),
	))
}
