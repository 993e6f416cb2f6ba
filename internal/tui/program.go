package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/report"
)

// Run starts the Bubble Tea TUI program and returns the report of the last
// frame shown when the user quits.
func Run(ctx context.Context, cfg config.Config) (report.Report, error) {
	model := NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	final, err := p.Run()
	if err != nil {
		return report.Report{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.vis.Frame().Report, nil
	}
	return model.vis.Frame().Report, nil
}
