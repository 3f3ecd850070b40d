package contour

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Drawer renders a generated result to w.
type Drawer interface {
	Draw(w io.Writer, res *Result) error
}

// Image renders the splines to a PNG raster.
type Image struct {
	Processor
}

// SVG renders the splines as vector paths.
type SVG struct {
	Processor
}

// Drawer returns the drawer matching the extension of output.
func (p *Processor) Drawer(output string) (Drawer, error) {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return &Image{Processor: *p}, nil
	case ".svg":
		return &SVG{Processor: *p}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Draw strokes every spline in black on a white canvas and encodes it as PNG.
func (im *Image) Draw(w io.Writer, res *Result) error {
	ctx := gg.NewContext(res.Width, res.Height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.SetRGB(0, 0, 0)
	ctx.SetLineWidth(im.LineWidth)
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()
	for _, layer := range res.Splines {
		for _, s := range layer {
			if len(s.Segments) == 0 {
				continue
			}
			start := s.Start()
			ctx.MoveTo(start.X, start.Y)
			for _, seg := range s.Segments {
				ctx.CubicTo(seg.P1.X, seg.P1.Y, seg.P2.X, seg.P2.Y, seg.P3.X, seg.P3.Y)
			}
			if s.Closed {
				ctx.ClosePath()
			}
			ctx.Stroke()
		}
	}
	return ctx.EncodePNG(w)
}

// Draw writes every spline as a stroked SVG path.
func (sv *SVG) Draw(w io.Writer, res *Result) error {
	c := vgsvg.New(vg.Length(res.Width), vg.Length(res.Height))
	c.SetColor(color.Black)
	c.SetLineWidth(vg.Length(sv.LineWidth))

	// vg puts the origin in the bottom left corner.
	height := float64(res.Height)
	pt := func(p Point) vg.Point {
		return vg.Point{X: vg.Length(p.X), Y: vg.Length(height - p.Y)}
	}
	for _, layer := range res.Splines {
		for _, s := range layer {
			if len(s.Segments) == 0 {
				continue
			}
			var path vg.Path
			path.Move(pt(s.Start()))
			for _, seg := range s.Segments {
				path.CubeTo(pt(seg.P1), pt(seg.P2), pt(seg.P3))
			}
			if s.Closed {
				path.Close()
			}
			c.Stroke(path)
		}
	}
	_, err := c.WriteTo(w)
	return err
}
