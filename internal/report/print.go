package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ensigniasec/pythagoras/internal/triangle"
)

const reportWidth = 48

// Print writes the report to w. With jsonOutput it writes indented JSON;
// otherwise a human-readable summary.
func Print(w io.Writer, r Report, jsonOutput bool) error {
	if jsonOutput {
		output, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}

	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintln(w, "PYTHAGOREAN THEOREM CHECK")
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	fmt.Fprintf(w, "Sides: a = %s, b = %s, c = %s\n",
		triangle.FormatLength(r.State.A), triangle.FormatLength(r.State.B), triangle.FormatLength(r.State.C))
	fmt.Fprintln(w)

	for _, s := range r.Sides {
		fmt.Fprintf(w, "   %-12s = %10s\n", s.Formula, s.SquaredText)
	}
	fmt.Fprintln(w, strings.Repeat("-", reportWidth))
	fmt.Fprintf(w, "   a² + b²      = %10s\n", triangle.FormatTenths(r.Result.LeftSide))
	fmt.Fprintf(w, "   c²           = %10s\n", triangle.FormatTenths(r.Result.RightSide))
	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, r.Message)
	return err
}

// PrintPresets lists the built-in presets, one per line.
func PrintPresets(w io.Writer, presets []triangle.Preset, jsonOutput bool) error {
	if jsonOutput {
		output, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	}
	for _, p := range presets {
		if _, err := fmt.Fprintf(w, "%s  %-8s a=%s b=%s c=%s\n", p.Key, p.Name,
			triangle.FormatLength(p.State.A), triangle.FormatLength(p.State.B), triangle.FormatLength(p.State.C)); err != nil {
			return err
		}
	}
	return nil
}
