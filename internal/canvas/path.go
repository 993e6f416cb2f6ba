package canvas

import (
	"math"

	"golang.org/x/image/math/f64"
)

// identity is the identity affine transform.
//
//nolint:gochecknoglobals // Constant matrix.
var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// mul returns m·n, the transform that applies n first and then m.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func translation(x, y float64) f64.Aff3 { return f64.Aff3{1, 0, x, 0, 1, y} }

func rotation(angle float64) f64.Aff3 {
	sin, cos := math.Sincos(angle)
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}

func scaling(k float64) f64.Aff3 { return f64Scale(k, k) }

func f64Scale(sx, sy float64) f64.Aff3 { return f64.Aff3{sx, 0, 0, 0, sy, 0} }

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// scaleOf returns the uniform scale factor of m.
func scaleOf(m f64.Aff3) float64 {
	return math.Sqrt(math.Abs(m[0]*m[4] - m[1]*m[3]))
}

// angleOf returns the rotation of m in radians.
func angleOf(m f64.Aff3) float64 { return math.Atan2(m[3], m[0]) }

type point struct{ x, y float64 }

type subpath struct {
	points []point
	closed bool
}

// pathState is the transform stack and current path shared by every surface.
// Points are stored in device space.
type pathState struct {
	base    f64.Aff3
	matrix  f64.Aff3
	stack   []f64.Aff3
	paths   []subpath
	invalid bool
}

func newPathState(base f64.Aff3) pathState {
	return pathState{base: base, matrix: base}
}

func (p *pathState) BeginPath() {
	p.paths = p.paths[:0]
	p.invalid = false
}

func (p *pathState) MoveTo(x, y float64) {
	dx, dy := apply(p.matrix, x, y)
	p.checkFinite(dx, dy)
	p.paths = append(p.paths, subpath{points: []point{{dx, dy}}})
}

func (p *pathState) LineTo(x, y float64) {
	if len(p.paths) == 0 {
		p.MoveTo(x, y)
		return
	}
	dx, dy := apply(p.matrix, x, y)
	p.checkFinite(dx, dy)
	last := &p.paths[len(p.paths)-1]
	last.points = append(last.points, point{dx, dy})
}

func (p *pathState) ClosePath() {
	if len(p.paths) == 0 {
		return
	}
	last := &p.paths[len(p.paths)-1]
	last.closed = true
	// A new subpath starts at the closing point, as in a canvas context.
	p.paths = append(p.paths, subpath{points: []point{last.points[0]}})
}

func (p *pathState) Save() { p.stack = append(p.stack, p.matrix) }

func (p *pathState) Restore() {
	if len(p.stack) == 0 {
		return
	}
	p.matrix = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *pathState) Translate(x, y float64) { p.matrix = mul(p.matrix, translation(x, y)) }

func (p *pathState) Rotate(angle float64) { p.matrix = mul(p.matrix, rotation(angle)) }

// resetTransform drops the save stack and restores the base transform.
func (p *pathState) resetTransform() {
	p.matrix = p.base
	p.stack = p.stack[:0]
}

// segments returns every drawable line segment of the current path, including
// the closing segment of closed subpaths.
func (p *pathState) segments() [][2]point {
	var segs [][2]point
	for _, sp := range p.paths {
		for i := 1; i < len(sp.points); i++ {
			segs = append(segs, [2]point{sp.points[i-1], sp.points[i]})
		}
		if sp.closed && len(sp.points) > 2 {
			segs = append(segs, [2]point{sp.points[len(sp.points)-1], sp.points[0]})
		}
	}
	return segs
}

// drawable reports whether the path holds only finite points.
func (p *pathState) drawable() bool { return !p.invalid && len(p.paths) > 0 }

func (p *pathState) checkFinite(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		p.invalid = true
	}
}
