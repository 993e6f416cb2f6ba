package render

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/ensigniasec/pythagoras/internal/canvas"
	"github.com/ensigniasec/pythagoras/internal/geometry"
)

// Stroke widths and font size in logical pixels.
const (
	outlineWidth    = 3
	rightAngleWidth = 2
	edgeWidth       = 4
	labelSize       = 16
)

// Draw issues the drawing instructions for one frame. It clears the surface
// first; a layout with non-finite coordinates draws nothing else.
func Draw(s canvas.Surface, l geometry.Layout) {
	s.Clear()
	if !l.Drawable() {
		return
	}

	tri := l.Triangle()
	s.BeginPath()
	s.MoveTo(tri[0].X, tri[0].Y)
	s.LineTo(tri[1].X, tri[1].Y)
	s.LineTo(tri[2].X, tri[2].Y)
	s.ClosePath()
	s.Fill(geometry.FillColor)
	s.Stroke(geometry.OutlineColor, outlineWidth)

	s.BeginPath()
	s.MoveTo(l.RightAngle[0].X, l.RightAngle[0].Y)
	s.LineTo(l.RightAngle[1].X, l.RightAngle[1].Y)
	s.LineTo(l.RightAngle[2].X, l.RightAngle[2].Y)
	s.Stroke(geometry.RightAngleColor, rightAngleWidth)

	style := canvas.TextStyle{Color: geometry.TextColor, Size: labelSize, Align: canvas.TextAlignCenter}
	for _, lbl := range l.Labels {
		drawLabel(s, lbl, style)
	}

	for _, e := range l.Edges {
		s.BeginPath()
		s.MoveTo(e.From.X, e.From.Y)
		s.LineTo(e.To.X, e.To.Y)
		s.Stroke(e.Color, edgeWidth)
	}
}

func drawLabel(s canvas.Surface, lbl geometry.Label, style canvas.TextStyle) {
	if lbl.Angle == 0 {
		s.FillText(lbl.Text, lbl.X, lbl.Y, style)
		return
	}
	s.Save()
	s.Translate(lbl.X, lbl.Y)
	s.Rotate(lbl.Angle)
	s.FillText(lbl.Text, 0, 0, style)
	s.Restore()
}

// Options configures a raster snapshot.
type Options struct {
	Width       int
	Height      int
	Supersample int
}

// DefaultOptions renders the nominal 400x300 canvas at 2x supersampling.
func DefaultOptions() Options {
	return Options{Width: geometry.DefaultWidth, Height: geometry.DefaultHeight, Supersample: 2}
}

// Snapshot draws the layout on a raster surface and returns an image of
// Width×Height pixels. With Supersample > 1 the frame is drawn larger and
// downsampled with CatmullRom.
func Snapshot(l geometry.Layout, opts Options) (*image.RGBA, error) {
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	r, err := canvas.NewRaster(opts.Width, opts.Height, opts.Supersample)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	Draw(r, l)
	if opts.Supersample == 1 {
		return r.Image(), nil
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), r.Image(), r.Image().Bounds(), xdraw.Src, nil)
	return out, nil
}
