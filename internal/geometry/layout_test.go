//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

func TestCompute_ThreeFourFive(t *testing.T) {
	l := Compute(triangle.State{A: 3, B: 4, C: 5}, DefaultViewport())

	assert.InDelta(t, 5.0, l.MaxSide, 1e-12)
	assert.InDelta(t, 30.0, l.Transform.Scale, 1e-12)
	assert.InDelta(t, 90.0, l.ScaledA, 1e-12)
	assert.InDelta(t, 120.0, l.ScaledB, 1e-12)
	assert.InDelta(t, 150.0, l.ScaledC, 1e-12)

	assert.Equal(t, Point{X: 100, Y: 200}, l.Origin)
	assert.Equal(t, Point{X: 190, Y: 200}, l.Corner)
	assert.Equal(t, Point{X: 190, Y: 80}, l.Apex)

	assert.LessOrEqual(t, l.ScaledA, BoundA)
	assert.LessOrEqual(t, l.ScaledB, BoundB)
	assert.True(t, l.Drawable())
}

func TestCompute_FitsBoundsForAnyInput(t *testing.T) {
	states := []triangle.State{
		{A: 0.1, B: 0.1, C: 0.1},
		{A: 20, B: 1, C: 1},
		{A: 1, B: 20, C: 1},
		{A: 1, B: 1, C: 20},
		{A: 1000, B: 750, C: 1250},
		{A: 5, B: 12, C: 13},
	}
	for _, s := range states {
		l := Compute(s, DefaultViewport())
		require.LessOrEqual(t, l.ScaledA, BoundA+1e-9, "state %+v", s)
		require.LessOrEqual(t, l.ScaledB, BoundB+1e-9, "state %+v", s)
	}
}

func TestCompute_RightAngleGlyphAtCorner(t *testing.T) {
	l := Compute(triangle.State{A: 3, B: 4, C: 5}, DefaultViewport())
	assert.Equal(t, [3]Point{{X: 175, Y: 185}, {X: 175, Y: 200}, {X: 190, Y: 200}}, l.RightAngle)
}

func TestCompute_Labels(t *testing.T) {
	l := Compute(triangle.State{A: 3, B: 4, C: 5}, DefaultViewport())

	a, b, c := l.Labels[0], l.Labels[1], l.Labels[2]
	assert.Equal(t, "a = 3", a.Text)
	assert.InDelta(t, 145.0, a.X, 1e-12)
	assert.InDelta(t, 225.0, a.Y, 1e-12)
	assert.Zero(t, a.Angle)

	assert.Equal(t, "b = 4", b.Text)
	assert.InDelta(t, 210.0, b.X, 1e-12)
	assert.InDelta(t, 140.0, b.Y, 1e-12)
	assert.InDelta(t, -math.Pi/2, b.Angle, 1e-12)

	assert.Equal(t, "c = 5", c.Text)
	assert.InDelta(t, 155.0, c.X, 1e-12)
	assert.InDelta(t, 130.0, c.Y, 1e-12)
	assert.InDelta(t, -math.Atan2(120, 90), c.Angle, 1e-12)
}

func TestCompute_LabelsUseUnscaledValues(t *testing.T) {
	l := Compute(triangle.State{A: 4.5, B: 12, C: 13.2}, DefaultViewport())
	assert.Equal(t, "a = 4.5", l.Labels[0].Text)
	assert.Equal(t, "b = 12", l.Labels[1].Text)
	assert.Equal(t, "c = 13.2", l.Labels[2].Text)
}

func TestCompute_EdgesUseSideColors(t *testing.T) {
	l := Compute(triangle.DefaultState(), DefaultViewport())
	for i, e := range l.Edges {
		assert.Equal(t, triangle.Sides[i], e.Side)
		assert.Equal(t, SideColors[i], e.Color)
	}
	assert.Equal(t, l.Origin, l.Edges[0].From)
	assert.Equal(t, l.Corner, l.Edges[0].To)
	assert.Equal(t, l.Corner, l.Edges[1].From)
	assert.Equal(t, l.Apex, l.Edges[1].To)
	assert.Equal(t, l.Origin, l.Edges[2].From)
	assert.Equal(t, l.Apex, l.Edges[2].To)
}

func TestCompute_InconsistentHypotenuseStillDrawsRightTriangle(t *testing.T) {
	// c shorter than both legs: the legs still come from a and b.
	l := Compute(triangle.State{A: 6, B: 8, C: 2}, DefaultViewport())
	assert.InDelta(t, 8.0, l.MaxSide, 1e-12)
	assert.InDelta(t, 18.75, l.Transform.Scale, 1e-12)
	assert.InDelta(t, l.Corner.X, l.Apex.X, 1e-12)
	assert.InDelta(t, l.Origin.Y, l.Corner.Y, 1e-12)
	assert.Equal(t, "c = 2", l.Labels[2].Text)
}

func TestCompute_OriginFollowsViewportHeight(t *testing.T) {
	l := Compute(triangle.DefaultState(), Viewport{Width: 800, Height: 600})
	assert.Equal(t, Point{X: 100, Y: 500}, l.Origin)
	assert.InDelta(t, 30.0, l.Transform.Scale, 1e-12)
}

func TestCompute_AllZeroIsNotDrawable(t *testing.T) {
	l := Compute(triangle.State{}, DefaultViewport())
	assert.False(t, l.Drawable())
	assert.True(t, math.IsInf(l.Transform.Scale, 1))
	assert.True(t, math.IsNaN(l.ScaledA))
}

func TestCompute_SingleZeroSideStillDrawable(t *testing.T) {
	l := Compute(triangle.State{A: 0, B: 4, C: 5}, DefaultViewport())
	assert.True(t, l.Drawable())
	assert.Zero(t, l.ScaledA)
}
