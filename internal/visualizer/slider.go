package visualizer

import (
	"math"
	"strconv"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// Slider is the state of one range input: its range, the string-encoded value
// the widget exposes and the one-decimal readout label next to it.
type Slider struct {
	ID      string
	Side    triangle.Side
	Min     float64
	Max     float64
	Step    float64
	Value   string
	Readout string
}

func newSlider(side triangle.Side, cfg config.Slider) Slider {
	return Slider{
		ID:   "side" + string(rune('A'+int(side))),
		Side: side,
		Min:  cfg.Min,
		Max:  cfg.Max,
		Step: cfg.Step,
	}
}

func (s *Slider) setValue(raw string, value float64) {
	s.Value = raw
	s.Readout = triangle.FormatTenths(value)
}

// Fraction returns the parsed value's position within [Min, Max], clamped to [0, 1].
func (s Slider) Fraction() float64 {
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil || s.Max <= s.Min {
		return 0
	}
	return math.Min(1, math.Max(0, (v-s.Min)/(s.Max-s.Min)))
}

// clamp snaps v to the nearest step above Min and keeps it within [Min, Max].
func (s Slider) clamp(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Min(s.Max, math.Max(s.Min, v))
}

// format renders v the way a range input reports it, trimmed of float noise
// from step arithmetic.
func (s Slider) format(v float64) string {
	decimals := 0
	if s.Step > 0 && s.Step < 1 {
		decimals = int(math.Ceil(-math.Log10(s.Step)))
	}
	scale := math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}
