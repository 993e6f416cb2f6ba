package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	// braille canvas size in terminal cells; 2×4 dots per cell keeps the
	// 400×300 logical canvas close to its aspect ratio.
	canvasCols = 50
	canvasRows = 19

	sliderBarWidth = 32
	// bigStep is the shift+arrow adjustment in side-length units.
	bigStep = 1.0

	// squares are SquareSize logical units; one terminal column covers
	// squareUnitsPerCol units and a row is roughly two columns tall.
	squareUnitsPerCol = 8
	squareRowAspect   = 2
	squareGap         = 2

	rightViewportMax = 60
)
