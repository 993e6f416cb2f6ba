package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// textPadding is the margin around rasterized text so bilinear sampling does not clip glyph edges.
const textPadding = 2

// Raster draws into an offscreen RGBA image. A Raster created with a
// supersample factor k has k×k device pixels per logical pixel.
type Raster struct {
	pathState

	img        *image.RGBA
	width      float64
	height     float64
	background color.Color

	font  *opentype.Font
	faces map[float64]font.Face
}

// NewRaster creates a raster surface of the given logical size.
func NewRaster(width, height, supersample int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	if supersample < 1 {
		supersample = 1
	}
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: parse font: %w", err)
	}
	return &Raster{
		pathState:  newPathState(scaling(float64(supersample))),
		img:        image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample)),
		width:      float64(width),
		height:     float64(height),
		background: color.White,
		font:       fnt,
		faces:      make(map[float64]font.Face),
	}, nil
}

// Image returns the backing image at device resolution.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (float64, float64) { return r.width, r.height }

// Clear paints the background and resets the transform and path.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	r.resetTransform()
	r.BeginPath()
}

// Fill fills the current path using the non-zero winding rule.
func (r *Raster) Fill(c color.Color) {
	if !r.drawable() {
		return
	}
	z := r.rasterizer()
	for _, sp := range r.paths {
		if len(sp.points) < 3 {
			continue
		}
		z.MoveTo(float32(sp.points[0].x), float32(sp.points[0].y))
		for _, pt := range sp.points[1:] {
			z.LineTo(float32(pt.x), float32(pt.y))
		}
		z.ClosePath()
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// Stroke outlines the current path. Width is in user units and follows the
// current transform's scale.
func (r *Raster) Stroke(c color.Color, width float64) {
	if !r.drawable() || width <= 0 {
		return
	}
	hw := width * scaleOf(r.matrix) / 2
	z := r.rasterizer()
	for _, seg := range r.segments() {
		addSegmentQuad(z, seg[0], seg[1], hw)
	}
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// addSegmentQuad adds a rectangle of half-width hw around a→b, extended by hw at
// both ends so consecutive segments meet without notches. Every quad has the
// same winding, so overlaps saturate instead of cancelling.
func addSegmentQuad(z *vector.Rasterizer, a, b point, hw float64) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length*hw, dy/length*hw
	nx, ny := -uy, ux
	ax, ay := a.x-ux, a.y-uy
	bx, by := b.x+ux, b.y+uy
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// FillText draws text at (x, y) under the current transform. The glyphs are
// rasterized unrotated at device resolution and composited with an affine
// transform, so rotated labels keep their shape.
func (r *Raster) FillText(text string, x, y float64, style TextStyle) {
	if text == "" {
		return
	}
	ax, ay := apply(r.matrix, x, y)
	if math.IsNaN(ax) || math.IsNaN(ay) || math.IsInf(ax, 0) || math.IsInf(ay, 0) {
		return
	}
	k := scaleOf(r.matrix)
	face := r.face(style.size() * k)

	col := style.Color
	if col == nil {
		col = color.Black
	}
	d := &font.Drawer{Face: face, Src: image.NewUniform(col)}
	textWidth := d.MeasureString(text).Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	tmp := image.NewRGBA(image.Rect(0, 0, textWidth+2*textPadding, ascent+descent+2*textPadding))
	d.Dst = tmp
	d.Dot = fixed.P(textPadding, textPadding+ascent)
	d.DrawString(text)

	var alignOffset float64
	switch style.Align {
	case TextAlignCenter:
		alignOffset = float64(textWidth) / 2
	case TextAlignRight:
		alignOffset = float64(textWidth)
	case TextAlignLeft:
	}

	// Source pixels → user space at the anchor → device space.
	local := mul(translation(x, y), mul(scaling(1/k), translation(-alignOffset-textPadding, -float64(ascent)-textPadding)))
	s2d := mul(r.matrix, local)
	xdraw.BiLinear.Transform(r.img, s2d, tmp, tmp.Bounds(), xdraw.Over, nil)
}

func (r *Raster) face(size float64) font.Face {
	// Round so tiny float differences share a face.
	size = math.Round(size*4) / 4
	if f, ok := r.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		f = basicfont.Face7x13
	}
	r.faces[size] = f
	return f
}
