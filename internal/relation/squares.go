package relation

import "math"

// Display sizes for the area squares, in display units.
const (
	SquareMinSize = 40.0
	SquareMaxSize = 80.0
	squareGrowth  = 2.0
)

// SquareSize maps a squared value to the edge length of its display square:
// 40 + 2v clamped to [40, 80].
func SquareSize(squared float64) float64 {
	return math.Min(SquareMaxSize, math.Max(SquareMinSize, SquareMinSize+squared*squareGrowth))
}
