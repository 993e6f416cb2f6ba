// Package visualizer implements the triangle visualizer controller: it owns the
// side lengths and the slider widgets, turns input events into state updates
// and runs one full recompute-and-redraw pass per event.
//
// A Visualizer is driven by a single event loop and is not safe for concurrent use.
package visualizer

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/pythagoras/internal/canvas"
	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/render"
	"github.com/ensigniasec/pythagoras/internal/report"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

var (
	// ErrInvalidInput is returned when a side value does not parse as a float.
	ErrInvalidInput = errors.New("invalid side input")
	// ErrUnknownSide is returned for a side outside a, b and c.
	ErrUnknownSide = errors.New("unknown side")
	// ErrNotLeg is returned when a leg operation is asked to solve c.
	ErrNotLeg = errors.New("not a leg")
	// ErrNoSolution is returned when the other leg is longer than c.
	ErrNoSolution = errors.New("no right triangle with these sides")
)

// Frame is the result of one recompute pass.
type Frame struct {
	State  triangle.State
	Layout geometry.Layout
	Report report.Report
}

// Visualizer is the top-level controller.
type Visualizer struct {
	state    triangle.State
	sliders  [3]Slider
	viewport geometry.Viewport
	surface  canvas.Surface
	frame    Frame
	passes   int
}

// New builds a visualizer from cfg and runs the initial recompute pass. The
// surface may be nil when only the derived outputs are needed.
func New(cfg config.Config, surface canvas.Surface) *Visualizer {
	v := &Visualizer{
		state:    cfg.InitialState(),
		viewport: cfg.Viewport(),
		surface:  surface,
	}
	if surface != nil {
		w, h := surface.Size()
		v.viewport = geometry.Viewport{Width: w, Height: h}
	}
	for i, side := range triangle.Sides {
		v.sliders[i] = newSlider(side, cfg.Slider(side))
	}
	v.syncSliders()
	v.Recompute()
	return v
}

// HandleSlider applies a slider change. raw is the widget's string-encoded
// value. On a parse failure the state is left untouched.
func (v *Visualizer) HandleSlider(side triangle.Side, raw string) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSide, side)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: side %s: %q", ErrInvalidInput, side, raw)
	}
	v.state = v.state.With(side, value)
	v.sliders[side].setValue(raw, value)
	logrus.Debugf("slider %s set to %s", side, raw)
	v.Recompute()
	return nil
}

// Nudge moves a slider by delta steps (or by an absolute amount when steps is
// false), clamped to the slider's range, and applies it like a widget change.
func (v *Visualizer) Nudge(side triangle.Side, delta float64, steps bool) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSide, side)
	}
	s := v.sliders[side]
	if steps {
		delta *= s.Step
	}
	return v.HandleSlider(side, s.format(s.clamp(v.state.Get(side)+delta)))
}

// HandleKey applies the preset bound to key, if any, and reports whether the
// key was handled.
func (v *Visualizer) HandleKey(key string) bool {
	p, ok := triangle.PresetForKey(key)
	if !ok {
		return false
	}
	v.ApplyPreset(p)
	return true
}

// ApplyPreset writes all three sides and widget values, then recomputes once.
func (v *Visualizer) ApplyPreset(p triangle.Preset) {
	v.state = p.Apply()
	v.syncSliders()
	logrus.Debugf("preset %s (%s) applied", p.Key, p.Name)
	v.Recompute()
}

// SolveHypotenuse sets c to the hypotenuse of the current legs.
func (v *Visualizer) SolveHypotenuse() error {
	c := triangle.Hypotenuse(v.state.A, v.state.B)
	return v.HandleSlider(triangle.SideC, strconv.FormatFloat(c, 'f', -1, 64))
}

// SolveLeg sets leg a or b to sqrt(c² − other²). The state is left untouched
// when the other leg is longer than c.
func (v *Visualizer) SolveLeg(side triangle.Side) error {
	var other triangle.Side
	switch side {
	case triangle.SideA:
		other = triangle.SideB
	case triangle.SideB:
		other = triangle.SideA
	default:
		return fmt.Errorf("%w: %s", ErrNotLeg, side)
	}
	leg := triangle.Leg(v.state.C, v.state.Get(other))
	if math.IsNaN(leg) {
		return fmt.Errorf("%w: %s = %s exceeds c = %s", ErrNoSolution,
			other, triangle.FormatLength(v.state.Get(other)), triangle.FormatLength(v.state.C))
	}
	return v.HandleSlider(side, strconv.FormatFloat(leg, 'f', -1, 64))
}

// Solve recomputes side from the other two: c from the legs, or a leg from c
// and the other leg.
func (v *Visualizer) Solve(side triangle.Side) error {
	switch side {
	case triangle.SideC:
		return v.SolveHypotenuse()
	case triangle.SideA, triangle.SideB:
		return v.SolveLeg(side)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSide, side)
	}
}

// Recompute derives the layout and report from the current state and redraws
// the surface. It is a deterministic function of the state.
func (v *Visualizer) Recompute() Frame {
	layout := geometry.Compute(v.state, v.viewport)
	v.frame = Frame{
		State:  v.state,
		Layout: layout,
		Report: report.Build(v.state),
	}
	if v.surface != nil {
		render.Draw(v.surface, layout)
	}
	v.passes++
	return v.frame
}

// State returns the current side lengths.
func (v *Visualizer) State() triangle.State { return v.state }

// Frame returns the outputs of the latest recompute pass.
func (v *Visualizer) Frame() Frame { return v.frame }

// Slider returns the widget for side.
func (v *Visualizer) Slider(side triangle.Side) Slider {
	if !side.Valid() {
		return Slider{}
	}
	return v.sliders[side]
}

// Sliders returns all three widgets in side order.
func (v *Visualizer) Sliders() [3]Slider { return v.sliders }

// Surface returns the drawing surface, which may be nil.
func (v *Visualizer) Surface() canvas.Surface { return v.surface }

// Passes counts recompute passes, including the initial one.
func (v *Visualizer) Passes() int { return v.passes }

func (v *Visualizer) syncSliders() {
	for i, side := range triangle.Sides {
		value := v.state.Get(side)
		v.sliders[i].setValue(v.sliders[i].format(value), value)
	}
}
