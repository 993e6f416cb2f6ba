package relation

import (
	"fmt"
	"math"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// Tolerance is the absolute threshold below which a²+b² and c² are treated as
// equal. It is not relative, so large sides need proportionally closer values.
const Tolerance = 0.1

// Status is the outcome of a relation check.
type Status int

const (
	Success Status = iota
	Error
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "error"
}

// Class returns the style class used to present the result.
func (s Status) Class() string { return "result " + s.String() }

// MarshalText encodes the status by name for JSON output.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result holds the squared values and the outcome of comparing a²+b² to c².
type Result struct {
	ASquared   float64 `json:"a_squared"`
	BSquared   float64 `json:"b_squared"`
	CSquared   float64 `json:"c_squared"`
	LeftSide   float64 `json:"left_side"`
	RightSide  float64 `json:"right_side"`
	Difference float64 `json:"difference"`
	Status     Status  `json:"status"`
}

// Check compares a²+b² with c². A failed check is an ordinary result, not an error.
func Check(s triangle.State) Result {
	r := Result{
		ASquared: s.A * s.A,
		BSquared: s.B * s.B,
		CSquared: s.C * s.C,
	}
	r.LeftSide = r.ASquared + r.BSquared
	r.RightSide = r.CSquared
	r.Difference = math.Abs(r.LeftSide - r.RightSide)
	if r.Difference < Tolerance {
		r.Status = Success
	} else {
		r.Status = Error
	}
	return r
}

// Holds reports whether the relation was satisfied.
func (r Result) Holds() bool { return r.Status == Success }

// Squared returns the squared value for side.
func (r Result) Squared(side triangle.Side) float64 {
	switch side {
	case triangle.SideA:
		return r.ASquared
	case triangle.SideB:
		return r.BSquared
	case triangle.SideC:
		return r.CSquared
	default:
		return math.NaN()
	}
}

// Message is the status line shown to the user, with the difference to three decimals.
func (r Result) Message() string {
	if r.Holds() {
		return fmt.Sprintf("✓ The Pythagorean theorem holds! (difference: %.3f)", r.Difference)
	}
	return fmt.Sprintf("✗ The Pythagorean theorem does not hold. (difference: %.3f)", r.Difference)
}
