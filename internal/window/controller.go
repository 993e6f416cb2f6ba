// Package window holds the input and frame logic behind the desktop window.
// The ebiten game in cmd/pythagoras-window polls keys, maps them to Actions
// and uploads Frame whenever its generation changes.
package window

import (
	"image"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/render"
	"github.com/ensigniasec/pythagoras/internal/report"
	"github.com/ensigniasec/pythagoras/internal/triangle"
	"github.com/ensigniasec/pythagoras/internal/visualizer"
)

// Action is one window input.
type Action int

const (
	ActionNone Action = iota
	ActionPreset1
	ActionPreset2
	ActionPreset3
	ActionNextSide
	ActionPrevSide
	ActionIncrease
	ActionDecrease
	ActionIncreaseBig
	ActionDecreaseBig
	ActionSolve
	ActionSolveSelected
)

// presetKey maps preset actions to their keyboard key.
func (a Action) presetKey() (string, bool) {
	switch a {
	case ActionPreset1:
		return "1", true
	case ActionPreset2:
		return "2", true
	case ActionPreset3:
		return "3", true
	default:
		return "", false
	}
}

// Controller owns the visualizer and the cached snapshot of its latest frame.
type Controller struct {
	vis      *visualizer.Visualizer
	opts     render.Options
	selected triangle.Side

	img        *image.RGBA
	dirty      bool
	generation int
}

// New builds a controller from cfg. The first Frame call renders the initial state.
func New(cfg config.Config) *Controller {
	return &Controller{
		vis: visualizer.New(cfg, nil),
		opts: render.Options{
			Width:       cfg.Canvas.Width,
			Height:      cfg.Canvas.Height,
			Supersample: cfg.Export.Supersample,
		},
		selected: triangle.SideA,
		dirty:    true,
	}
}

// Apply handles one action and reports whether the visible state changed.
// Selection changes only affect the title; the snapshot stays cached.
func (c *Controller) Apply(a Action) bool {
	n := triangle.Side(len(triangle.Sides))
	var err error
	switch a {
	case ActionNone:
		return false
	case ActionNextSide:
		c.selected = (c.selected + 1) % n
		return true
	case ActionPrevSide:
		c.selected = (c.selected + n - 1) % n
		return true
	case ActionPreset1, ActionPreset2, ActionPreset3:
		k, _ := a.presetKey()
		c.vis.HandleKey(k)
	case ActionIncrease:
		err = c.vis.Nudge(c.selected, 1, true)
	case ActionDecrease:
		err = c.vis.Nudge(c.selected, -1, true)
	case ActionIncreaseBig:
		err = c.vis.Nudge(c.selected, 1, false)
	case ActionDecreaseBig:
		err = c.vis.Nudge(c.selected, -1, false)
	case ActionSolve:
		err = c.vis.SolveHypotenuse()
	case ActionSolveSelected:
		err = c.vis.Solve(c.selected)
	default:
		return false
	}
	if err != nil {
		logrus.Warnf("window: %v", err)
		return false
	}
	c.dirty = true
	return true
}

// Frame returns the snapshot for the current state, re-rendering only when an
// action changed something since the last call.
func (c *Controller) Frame() (*image.RGBA, error) {
	if !c.dirty && c.img != nil {
		return c.img, nil
	}
	img, err := render.Snapshot(c.vis.Frame().Layout, c.opts)
	if err != nil {
		return nil, err
	}
	c.img = img
	c.dirty = false
	c.generation++
	return img, nil
}

// Generation increments each time Frame renders a new snapshot.
func (c *Controller) Generation() int { return c.generation }

// Selected returns the side the arrow keys adjust.
func (c *Controller) Selected() triangle.Side { return c.selected }

// Size returns the logical window size.
func (c *Controller) Size() (int, int) { return c.opts.Width, c.opts.Height }

// Report returns the derived outputs of the current state.
func (c *Controller) Report() report.Report { return c.vis.Frame().Report }

// Title summarizes the current state for the window title bar.
func (c *Controller) Title() string {
	s := c.vis.Sliders()
	return "a=" + s[0].Readout + " b=" + s[1].Readout + " c=" + s[2].Readout +
		" [" + c.selected.String() + "]  " + c.Report().Message
}
