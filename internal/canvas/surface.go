// Package canvas provides a small 2D drawing-surface abstraction modeled on an
// immediate-mode canvas context: a current path, fill and stroke, text, and a
// save/restore stack of affine transforms.
//
// Three surfaces implement it: Raster draws into an RGBA image, Cells draws
// into a grid of braille terminal cells, and Recorder records calls for tests.
package canvas

import (
	"image/color"
)

// Surface is the set of drawing operations the renderer issues.
//
// Coordinates are in logical canvas pixels with y growing downwards. MoveTo and
// LineTo are transformed by the current matrix when they are called, so a path
// survives Restore unchanged.
type Surface interface {
	// Size returns the logical canvas size.
	Size() (width, height float64)

	Clear()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Fill(c color.Color)
	Stroke(c color.Color, width float64)

	// FillText draws text with its baseline at y. Align controls how x is interpreted.
	FillText(text string, x, y float64, style TextStyle)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
type TextStyle struct {
	Color color.Color
	Size  float64 // font size in logical pixels; 0 means DefaultFontSize
	Align TextAlign
}

// DefaultFontSize is used when TextStyle.Size is zero.
const DefaultFontSize = 16

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return DefaultFontSize
	}
	return s.Size
}
