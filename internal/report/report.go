package report

import (
	"fmt"

	"github.com/ensigniasec/pythagoras/internal/relation"
	"github.com/ensigniasec/pythagoras/internal/triangle"
)

// SideReport is the per-side display output.
type SideReport struct {
	Side        string  `json:"side"`
	Length      float64 `json:"length"`
	Formula     string  `json:"formula"`
	Squared     float64 `json:"squared"`
	SquaredText string  `json:"squared_text"`
	SquareSize  float64 `json:"square_size"`
}

// Report is every derived text/visual output of one recompute pass.
type Report struct {
	State   triangle.State  `json:"state"`
	Sides   [3]SideReport   `json:"sides"`
	Result  relation.Result `json:"result"`
	Message string          `json:"message"`
	Class   string          `json:"class"`
}

// Build derives the display outputs for s.
func Build(s triangle.State) Report {
	res := relation.Check(s)
	r := Report{
		State:   s,
		Result:  res,
		Message: res.Message(),
		Class:   res.Status.Class(),
	}
	for i, side := range triangle.Sides {
		sq := res.Squared(side)
		r.Sides[i] = SideReport{
			Side:        side.String(),
			Length:      s.Get(side),
			Formula:     Formula(side, s.Get(side)),
			Squared:     sq,
			SquaredText: triangle.FormatTenths(sq),
			SquareSize:  relation.SquareSize(sq),
		}
	}
	return r
}

// Formula renders the formula heading for a side, e.g. "a² (3²)".
func Formula(side triangle.Side, v float64) string {
	return fmt.Sprintf("%s² (%s²)", side, triangle.FormatLength(v))
}

// Holds reports whether the relation check succeeded.
func (r Report) Holds() bool { return r.Result.Holds() }
