// Package raster provides a PNG preview backend for the recording system.
// It is registered as "raster".
//
// Paths are rasterized with golang.org/x/image/vector after flattening arcs.
// Solid fills use a uniform source; gradient fills are evaluated per pixel
// with pad extension, the way an SVG renderer paints userSpaceOnUse
// gradients.
//
// # Example
//
//	import _ "github.com/fedorabots/emblem/recording/backends/raster"
//
//	b := raster.NewBackend()
//	b.SetScale(16)
//	_ = rec.Playback(b)
//	_ = b.SaveToFile("robot.png")
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/fedorabots/emblem"
	"github.com/fedorabots/emblem/recording"
)

// DefaultScale is the number of pixels per user unit.
const DefaultScale = 8

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an RGBA image.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	scale     float64
	img       *image.RGBA
	gradients map[string]*gradientPaint
	ended     bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend at DefaultScale.
func NewBackend() *Backend {
	return &Backend{scale: DefaultScale}
}

// SetScale sets the number of pixels per user unit. Call before Begin.
// Non-positive values are ignored.
func (b *Backend) SetScale(scale float64) {
	if scale > 0 {
		b.scale = scale
	}
}

// Scale returns the number of pixels per user unit.
func (b *Backend) Scale() float64 {
	return b.scale
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height float64) error {
	w := int(math.Ceil(width * b.scale))
	h := int(math.Ceil(height * b.scale))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: invalid image size %dx%d", w, h)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	b.gradients = make(map[string]*gradientPaint)
	b.ended = false
	return nil
}

// SetTitle implements recording.Backend. Images carry no title.
func (b *Backend) SetTitle(string) {}

// DefineGradient implements recording.Backend.
func (b *Backend) DefineGradient(g emblem.Gradient) error {
	if b.img == nil {
		return recording.ErrNotBegun
	}
	p, err := compileGradient(g)
	if err != nil {
		return err
	}
	b.gradients[g.GradientID()] = p
	return nil
}

// FillShape implements recording.Backend.
func (b *Backend) FillShape(s emblem.Shape) error {
	if b.img == nil {
		return recording.ErrNotBegun
	}
	src, err := b.source(s)
	if err != nil {
		return err
	}
	bounds := b.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	b.trace(z, s.Path)
	z.Draw(b.img, bounds, src, image.Point{})
	return nil
}

// source returns the image the shape's fill is painted from.
func (b *Backend) source(s emblem.Shape) (image.Image, error) {
	switch f := s.Fill.(type) {
	case emblem.SolidFill:
		c, err := emblem.ParseColor(f.Color)
		if err != nil {
			return nil, fmt.Errorf("raster: %w", err)
		}
		return image.NewUniform(c.WithAlpha(s.Opacity).Color()), nil
	case emblem.GradientFill:
		p, ok := b.gradients[f.ID]
		if !ok {
			return nil, fmt.Errorf("raster: %w %q", recording.ErrUnknownGradient, f.ID)
		}
		return &paintImage{paint: p, scale: b.scale, opacity: s.Opacity}, nil
	default:
		return nil, fmt.Errorf("raster: unsupported fill %T", s.Fill)
	}
}

// trace feeds the path to the rasterizer in pixel coordinates, closing every
// subpath.
func (b *Backend) trace(z *vector.Rasterizer, p *emblem.Path) {
	open := false
	pt := func(q emblem.Point) (float32, float32) {
		return float32(q.X * b.scale), float32(q.Y * b.scale)
	}
	p.Walk(func(s emblem.Segment, from, to emblem.Point) {
		switch s.Cmd {
		case emblem.CmdMove:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(to))
			open = true
		case emblem.CmdLine:
			z.LineTo(pt(to))
		case emblem.CmdArc:
			for _, q := range flattenArc(from, to, s) {
				z.LineTo(pt(q))
			}
		}
	})
	if open {
		z.ClosePath()
	}
}

// End implements recording.Backend.
func (b *Backend) End() error {
	if b.img == nil {
		return recording.ErrNotBegun
	}
	b.ended = true
	emblem.Logger().Debug("raster: image rendered",
		"width", b.img.Bounds().Dx(), "height", b.img.Bounds().Dy())
	return nil
}

// Image returns the rendered image. Only valid after End.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo implements recording.WriterBackend. It encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile implements recording.FileBackend.
func (b *Backend) SaveToFile(path string) (err error) {
	if !b.ended {
		return recording.ErrNotBegun
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = b.WriteTo(f)
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
