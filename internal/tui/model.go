package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/pythagoras/internal/canvas"
	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/triangle"
	"github.com/ensigniasec/pythagoras/internal/visualizer"
)

// Model is the root Bubble Tea model.
type Model struct {
	// vis is shared by every copy of the model; only Update touches it.
	vis   *visualizer.Visualizer
	cells *canvas.Cells

	bars     [3]progress.Model
	selected triangle.Side
	width    int
	height   int
	quitting bool
	lastErr  error

	// ui state
	help        help.Model
	helpVisible bool

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model with initial state.
func NewModel(cfg config.Config) Model {
	vp := cfg.Viewport()
	cells := canvas.NewCells(canvasCols, canvasRows, vp.Width, vp.Height)

	var bars [3]progress.Model
	for i := range bars {
		bars[i] = progress.New(
			progress.WithSolidFill(canvas.Hex(geometry.SideColors[i])),
			progress.WithoutPercentage(),
			progress.WithWidth(sliderBarWidth),
		)
	}
	return Model{
		vis:      visualizer.New(cfg, cells),
		cells:    cells,
		bars:     bars,
		selected: triangle.SideA,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Visualizer exposes the controller.
func (m Model) Visualizer() *visualizer.Visualizer { return m.vis }
