package canvas

import (
	"image/color"
)

// Op is one recorded drawing call.
type Op struct {
	Name  string
	X     float64
	Y     float64
	Width float64
	Angle float64
	Text  string
	Color color.Color
	Style TextStyle
}

// Recorder is a Surface that records every call. Text ops also capture the
// device-space anchor after the current transform.
type Recorder struct {
	pathState

	width  float64
	height float64
	Ops    []Op
}

// NewRecorder creates a recorder reporting the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{pathState: newPathState(identity), width: width, height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) Clear() {
	r.resetTransform()
	r.pathState.BeginPath()
	r.Ops = append(r.Ops, Op{Name: "clear"})
}

func (r *Recorder) BeginPath() {
	r.pathState.BeginPath()
	r.Ops = append(r.Ops, Op{Name: "beginPath"})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.pathState.MoveTo(x, y)
	r.Ops = append(r.Ops, Op{Name: "moveTo", X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.pathState.LineTo(x, y)
	r.Ops = append(r.Ops, Op{Name: "lineTo", X: x, Y: y})
}

func (r *Recorder) ClosePath() {
	r.pathState.ClosePath()
	r.Ops = append(r.Ops, Op{Name: "closePath"})
}

func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops, Op{Name: "fill", Color: c})
}

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Name: "stroke", Color: c, Width: width})
}

func (r *Recorder) FillText(text string, x, y float64, style TextStyle) {
	dx, dy := apply(r.matrix, x, y)
	r.Ops = append(r.Ops, Op{Name: "fillText", Text: text, X: dx, Y: dy, Angle: angleOf(r.matrix), Color: style.Color, Style: style})
}

func (r *Recorder) Save() {
	r.pathState.Save()
	r.Ops = append(r.Ops, Op{Name: "save"})
}

func (r *Recorder) Restore() {
	r.pathState.Restore()
	r.Ops = append(r.Ops, Op{Name: "restore"})
}

func (r *Recorder) Translate(x, y float64) {
	r.pathState.Translate(x, y)
	r.Ops = append(r.Ops, Op{Name: "translate", X: x, Y: y})
}

func (r *Recorder) Rotate(angle float64) {
	r.pathState.Rotate(angle)
	r.Ops = append(r.Ops, Op{Name: "rotate", Angle: angle})
}

// Names returns the recorded op names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		names[i] = op.Name
	}
	return names
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Raster)(nil)
	_ Surface = (*Cells)(nil)
)
