package geometry

import (
	"image/color"
	"math"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// Layout constants in canvas pixels.
const (
	// BoundA and BoundB are the fit bounds the scale is derived from; the drawn
	// legs never exceed BoundA horizontally or BoundB vertically.
	BoundA = 200.0
	BoundB = 150.0

	OriginX            = 100.0
	OriginBottomInset  = 100.0
	RightAngleSize     = 15.0
	LabelBelowOffset   = 25.0
	LabelBesideOffset  = 20.0
	HypotenuseLabelOff = 10.0

	DefaultWidth  = 400
	DefaultHeight = 300
)

// Colors used by the drawing adapter.
//
//nolint:gochecknoglobals // Palette is fixed.
var (
	FillColor       = color.NRGBA{R: 102, G: 126, B: 234, A: 51} // rgba(102,126,234,0.2)
	OutlineColor    = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	RightAngleColor = color.NRGBA{R: 0xff, G: 0x63, B: 0x84, A: 0xff}
	TextColor       = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

	// SideColors associates each edge with its squared-value display.
	SideColors = [3]color.NRGBA{
		{R: 0xff, G: 0x63, B: 0x84, A: 0xff}, // a
		{R: 0x36, G: 0xa2, B: 0xeb, A: 0xff}, // b
		{R: 0xff, G: 0xcd, B: 0x56, A: 0xff}, // c
	}
)

// Viewport is the drawing surface size in canvas pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport is the nominal 400x300 canvas.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight}
}

// Point is a position in canvas pixels, y growing downwards.
type Point struct {
	X float64
	Y float64
}

// Label is a text anchor. Text is centered horizontally on (X, Y) with Y on the
// baseline, after rotating the text by Angle radians around the anchor.
type Label struct {
	Side  triangle.Side
	Text  string
	X     float64
	Y     float64
	Angle float64
}

// Edge is one side of the drawn triangle in its association color.
type Edge struct {
	Side  triangle.Side
	From  Point
	To    Point
	Color color.NRGBA
}

// Transform is the uniform scale and origin placement applied to the state.
type Transform struct {
	Scale  float64
	Origin Point
}

// Layout is everything the drawing adapter needs for one frame.
type Layout struct {
	Viewport  Viewport
	Transform Transform
	MaxSide   float64

	ScaledA float64
	ScaledB float64
	ScaledC float64

	// Origin, Corner and Apex are the triangle vertices. Corner holds the right angle.
	Origin Point
	Corner Point
	Apex   Point

	RightAngle [3]Point
	Labels     [3]Label
	Edges      [3]Edge
}

// Compute lays out a right triangle with horizontal leg a and vertical leg b.
// c only sizes the scale and names the hypotenuse label; it never changes the
// drawn shape, so an inconsistent c still draws the a/b right triangle.
func Compute(s triangle.State, vp Viewport) Layout {
	maxSide := s.MaxSide()
	scale := math.Min(BoundA/maxSide, BoundB/maxSide)

	sa := s.A * scale
	sb := s.B * scale

	origin := Point{X: OriginX, Y: vp.Height - OriginBottomInset}
	corner := Point{X: origin.X + sa, Y: origin.Y}
	apex := Point{X: corner.X, Y: corner.Y - sb}

	l := Layout{
		Viewport:  vp,
		Transform: Transform{Scale: scale, Origin: origin},
		MaxSide:   maxSide,
		ScaledA:   sa,
		ScaledB:   sb,
		ScaledC:   s.C * scale,
		Origin:    origin,
		Corner:    corner,
		Apex:      apex,
		RightAngle: [3]Point{
			{X: corner.X - RightAngleSize, Y: corner.Y - RightAngleSize},
			{X: corner.X - RightAngleSize, Y: corner.Y},
			corner,
		},
		Labels: [3]Label{
			{
				Side: triangle.SideA,
				Text: labelText(triangle.SideA, s.A),
				X:    origin.X + sa/2,
				Y:    origin.Y + LabelBelowOffset,
			},
			{
				Side:  triangle.SideB,
				Text:  labelText(triangle.SideB, s.B),
				X:     origin.X + sa + LabelBesideOffset,
				Y:     origin.Y - sb/2,
				Angle: -math.Pi / 2,
			},
			{
				Side:  triangle.SideC,
				Text:  labelText(triangle.SideC, s.C),
				X:     origin.X + sa/2 + HypotenuseLabelOff,
				Y:     origin.Y - sb/2 - HypotenuseLabelOff,
				Angle: -math.Atan2(sb, sa),
			},
		},
	}
	l.Edges = [3]Edge{
		{Side: triangle.SideA, From: origin, To: corner, Color: SideColors[triangle.SideA]},
		{Side: triangle.SideB, From: corner, To: apex, Color: SideColors[triangle.SideB]},
		{Side: triangle.SideC, From: origin, To: apex, Color: SideColors[triangle.SideC]},
	}
	return l
}

// Triangle returns the three vertices in drawing order.
func (l Layout) Triangle() [3]Point { return [3]Point{l.Origin, l.Corner, l.Apex} }

// Drawable reports whether every vertex is finite. All-zero sides yield an
// infinite scale and NaN coordinates, which draw nothing.
func (l Layout) Drawable() bool {
	for _, p := range l.Triangle() {
		if !finite(p.X) || !finite(p.Y) {
			return false
		}
	}
	return finite(l.Transform.Scale)
}

func labelText(side triangle.Side, v float64) string {
	return side.String() + " = " + triangle.FormatLength(v)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
