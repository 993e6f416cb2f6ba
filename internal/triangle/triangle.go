package triangle

import (
	"math"
	"strconv"
)

// Side identifies one of the three sides of the triangle.
type Side int

const (
	SideA Side = iota
	SideB
	SideC
)

// Sides lists every side in display order.
//
//nolint:gochecknoglobals // Fixed ordering shared by every front end.
var Sides = [...]Side{SideA, SideB, SideC}

// String returns the lowercase letter used in labels and formulas.
func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	case SideC:
		return "c"
	default:
		return "?"
	}
}

// Valid reports whether s names one of the three sides.
func (s Side) Valid() bool { return s >= SideA && s <= SideC }

// State holds the three side lengths. The values are independent: nothing
// forces them to form a right triangle, so the relation check can fail.
type State struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// DefaultState is the 3-4-5 triple shown at startup.
func DefaultState() State { return State{A: 3, B: 4, C: 5} }

// Get returns the length of side.
func (s State) Get(side Side) float64 {
	switch side {
	case SideA:
		return s.A
	case SideB:
		return s.B
	case SideC:
		return s.C
	default:
		return math.NaN()
	}
}

// With returns a copy of s with side set to v. Unknown sides leave s unchanged.
func (s State) With(side Side, v float64) State {
	switch side {
	case SideA:
		s.A = v
	case SideB:
		s.B = v
	case SideC:
		s.C = v
	}
	return s
}

// MaxSide returns the largest of the three lengths.
func (s State) MaxSide() float64 {
	return math.Max(s.A, math.Max(s.B, s.C))
}

// Hypotenuse returns the hypotenuse of a right triangle with legs a and b.
func Hypotenuse(a, b float64) float64 {
	return math.Sqrt(a*a + b*b)
}

// Leg returns the missing leg of a right triangle given its hypotenuse and
// the other leg. The result is NaN when leg > hypotenuse.
func Leg(hypotenuse, leg float64) float64 {
	return math.Sqrt(hypotenuse*hypotenuse - leg*leg)
}

// FormatLength renders a length in its shortest exact decimal form
// ("3", "4.5", "13.2"), as used in labels and formula text.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTenths renders v with one decimal, rounding ties away from zero so
// 2.25 reads "2.3" and 7.25 reads "7.3".
func FormatTenths(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}
