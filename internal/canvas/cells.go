package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells are 2 dots wide and 4 dots tall.
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
	brailleBase  = 0x2800

	// Labels rotated within this many radians of vertical are written down a column.
	verticalTextSlack = 0.35
)

//nolint:gochecknoglobals // Braille dot bit layout.
var brailleBits = [dotsPerCellY][dotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	dots    rune
	fg      color.Color
	bg      color.Color
	text    rune
	textCol color.Color
}

// Cells draws onto a grid of terminal cells using braille dots for lines.
// Stroke widths are ignored; every stroke is one dot wide. Fills tint the cell
// background, and text occupies whole cells.
type Cells struct {
	pathState

	cols   int
	rows   int
	width  float64
	height float64
	grid   [][]cell
}

// NewCells creates a cols×rows grid mapped onto a logical canvas of width×height.
func NewCells(cols, rows int, width, height float64) *Cells {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Cells{
		// Logical pixels → dot space.
		pathState: newPathState(f64Scale(float64(cols*dotsPerCellX)/width, float64(rows*dotsPerCellY)/height)),
		cols:      cols,
		rows:      rows,
		width:     width,
		height:    height,
	}
	c.grid = make([][]cell, rows)
	for y := range c.grid {
		c.grid[y] = make([]cell, cols)
	}
	return c
}

func (c *Cells) Size() (float64, float64) { return c.width, c.height }

// Dimensions returns the grid size in cells.
func (c *Cells) Dimensions() (cols, rows int) { return c.cols, c.rows }

func (c *Cells) Clear() {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = cell{}
		}
	}
	c.resetTransform()
	c.BeginPath()
}

// Fill tints every cell whose center lies inside the current path.
func (c *Cells) Fill(col color.Color) {
	if !c.drawable() {
		return
	}
	for _, sp := range c.paths {
		if len(sp.points) < 3 {
			continue
		}
		for y := 0; y < c.rows; y++ {
			for x := 0; x < c.cols; x++ {
				cx := (float64(x) + 0.5) * dotsPerCellX
				cy := (float64(y) + 0.5) * dotsPerCellY
				if insidePolygon(sp.points, cx, cy) {
					c.grid[y][x].bg = col
				}
			}
		}
	}
}

// Stroke plots each segment of the current path one dot wide.
func (c *Cells) Stroke(col color.Color, _ float64) {
	if !c.drawable() {
		return
	}
	for _, seg := range c.segments() {
		c.plotLine(seg[0], seg[1], col)
	}
}

func (c *Cells) plotLine(a, b point, col color.Color) {
	steps := math.Ceil(math.Max(math.Abs(b.x-a.x), math.Abs(b.y-a.y)))
	if steps < 1 {
		steps = 1
	}
	for i := 0.0; i <= steps; i++ {
		t := i / steps
		c.setDot(a.x+(b.x-a.x)*t, a.y+(b.y-a.y)*t, col)
	}
}

func (c *Cells) setDot(x, y float64, col color.Color) {
	dx, dy := int(math.Floor(x)), int(math.Floor(y))
	if dx < 0 || dy < 0 || dx >= c.cols*dotsPerCellX || dy >= c.rows*dotsPerCellY {
		return
	}
	cl := &c.grid[dy/dotsPerCellY][dx/dotsPerCellX]
	cl.dots |= brailleBits[dy%dotsPerCellY][dx%dotsPerCellX]
	cl.fg = col
}

// FillText writes text into whole cells around the transformed anchor. Near
// vertical rotations are written top to bottom; anything else is horizontal.
func (c *Cells) FillText(text string, x, y float64, style TextStyle) {
	dx, dy := apply(c.matrix, x, y)
	if math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return
	}
	col, row := int(dx/dotsPerCellX), int(dy/dotsPerCellY)
	runes := []rune(text)
	n := len(runes)

	angle := angleOf(c.matrix)
	if math.Abs(math.Abs(angle)-math.Pi/2) < verticalTextSlack {
		start := row - alignStart(n, style.Align)
		for i, r := range runes {
			c.setText(col, start+i, r, style.Color)
		}
		return
	}
	start := col - alignStart(n, style.Align)
	for i, r := range runes {
		c.setText(start+i, row, r, style.Color)
	}
}

func alignStart(n int, align TextAlign) int {
	switch align {
	case TextAlignCenter:
		return n / 2
	case TextAlignRight:
		return n
	case TextAlignLeft:
	}
	return 0
}

func (c *Cells) setText(x, y int, r rune, col color.Color) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	c.grid[y][x].text = r
	c.grid[y][x].textCol = col
}

// Rune returns the character shown at a cell, for tests and plain output.
func (c *Cells) Rune(x, y int) rune {
	cl := c.grid[y][x]
	switch {
	case cl.text != 0:
		return cl.text
	case cl.dots != 0:
		return brailleBase + cl.dots
	default:
		return ' '
	}
}

// Plain returns the grid without styling.
func (c *Cells) Plain() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			b.WriteRune(c.Rune(x, y))
		}
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid with lipgloss colors, grouping runs of equal style.
func (c *Cells) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		var run strings.Builder
		var runStyle lipgloss.Style
		var runKey string
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.cols; x++ {
			cl := c.grid[y][x]
			fg := cl.fg
			if cl.text != 0 {
				fg = cl.textCol
			}
			key := Hex(fg) + "/" + Hex(cl.bg)
			if key != runKey {
				flush()
				runKey = key
				runStyle = lipgloss.NewStyle()
				if fg != nil {
					runStyle = runStyle.Foreground(lipgloss.Color(Hex(fg)))
				}
				if cl.bg != nil {
					runStyle = runStyle.Background(lipgloss.Color(Hex(cl.bg)))
				}
			}
			run.WriteRune(c.Rune(x, y))
		}
		flush()
		if y < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Hex formats c as #rrggbb for lipgloss, ignoring alpha. Translucent fills
// are blended against black so a 20% tint stays dark in the terminal.
func Hex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func insidePolygon(pts []point, x, y float64) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.y > y) != (pj.y > y) && x < (pj.x-pi.x)*(y-pi.y)/(pj.y-pi.y)+pi.x {
			inside = !inside
		}
		j = i
	}
	return inside
}
