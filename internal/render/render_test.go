//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/pythagoras/internal/canvas"
	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

func TestDraw_OperationSequence(t *testing.T) {
	rec := canvas.NewRecorder(400, 300)
	Draw(rec, geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()))

	want := []string{
		"clear",
		// triangle fill + outline
		"beginPath", "moveTo", "lineTo", "lineTo", "closePath", "fill", "stroke",
		// right-angle glyph
		"beginPath", "moveTo", "lineTo", "lineTo", "stroke",
		// labels: a unrotated, b and c rotated
		"fillText",
		"save", "translate", "rotate", "fillText", "restore",
		"save", "translate", "rotate", "fillText", "restore",
		// colored edges
		"beginPath", "moveTo", "lineTo", "stroke",
		"beginPath", "moveTo", "lineTo", "stroke",
		"beginPath", "moveTo", "lineTo", "stroke",
	}
	assert.Equal(t, want, rec.Names())
}

func TestDraw_Coordinates(t *testing.T) {
	rec := canvas.NewRecorder(400, 300)
	Draw(rec, geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()))

	ops := rec.Ops
	assert.Equal(t, canvas.Op{Name: "moveTo", X: 100, Y: 200}, ops[2])
	assert.Equal(t, canvas.Op{Name: "lineTo", X: 190, Y: 200}, ops[3])
	assert.Equal(t, canvas.Op{Name: "lineTo", X: 190, Y: 80}, ops[4])
	assert.Equal(t, geometry.FillColor, ops[6].Color)
	assert.Equal(t, geometry.OutlineColor, ops[7].Color)
	assert.InDelta(t, 3.0, ops[7].Width, 1e-12)
	assert.InDelta(t, 2.0, ops[12].Width, 1e-12)
}

func TestDraw_Labels(t *testing.T) {
	rec := canvas.NewRecorder(400, 300)
	Draw(rec, geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()))

	var texts []canvas.Op
	for _, op := range rec.Ops {
		if op.Name == "fillText" {
			texts = append(texts, op)
		}
	}
	require.Len(t, texts, 3)

	assert.Equal(t, "a = 3", texts[0].Text)
	assert.InDelta(t, 145.0, texts[0].X, 1e-9)
	assert.InDelta(t, 225.0, texts[0].Y, 1e-9)

	assert.Equal(t, "b = 4", texts[1].Text)
	assert.InDelta(t, 210.0, texts[1].X, 1e-9)
	assert.InDelta(t, 140.0, texts[1].Y, 1e-9)
	assert.InDelta(t, -math.Pi/2, texts[1].Angle, 1e-9)

	assert.Equal(t, "c = 5", texts[2].Text)
	assert.InDelta(t, -math.Atan2(120, 90), texts[2].Angle, 1e-9)

	for _, op := range texts {
		assert.Equal(t, canvas.TextAlignCenter, op.Style.Align)
		assert.Equal(t, geometry.TextColor, op.Color)
	}
}

func TestDraw_EdgesInSideColors(t *testing.T) {
	rec := canvas.NewRecorder(400, 300)
	Draw(rec, geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()))

	var strokes []canvas.Op
	for _, op := range rec.Ops {
		if op.Name == "stroke" {
			strokes = append(strokes, op)
		}
	}
	require.Len(t, strokes, 5)
	for i, c := range geometry.SideColors {
		assert.Equal(t, c, strokes[2+i].Color)
		assert.InDelta(t, 4.0, strokes[2+i].Width, 1e-12)
	}
}

func TestDraw_DegenerateLayoutOnlyClears(t *testing.T) {
	rec := canvas.NewRecorder(400, 300)
	Draw(rec, geometry.Compute(triangle.State{}, geometry.DefaultViewport()))
	assert.Equal(t, []string{"clear"}, rec.Names())
}

func TestSnapshot(t *testing.T) {
	img, err := Snapshot(geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// Background corner stays white.
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(5, 5))
	// The middle of the horizontal leg carries the a-edge color.
	edge := img.RGBAAt(145, 200)
	assert.Greater(t, edge.R, edge.B)
	// Inside the triangle is tinted, not white.
	inside := img.RGBAAt(180, 180)
	assert.NotEqual(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, inside)
}

func TestSnapshot_NoSupersample(t *testing.T) {
	img, err := Snapshot(geometry.Compute(triangle.DefaultState(), geometry.DefaultViewport()), Options{Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestSnapshot_InvalidSize(t *testing.T) {
	_, err := Snapshot(geometry.Layout{}, Options{Width: 0, Height: 10})
	require.Error(t, err)
}
