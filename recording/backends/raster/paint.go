package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/fedorabots/emblem"
)

// stop is a parsed colour stop with stop-opacity folded into alpha.
type stop struct {
	offset float64
	color  emblem.RGBA
}

func parseStops(stops []emblem.ColorStop) ([]stop, error) {
	out := make([]stop, len(stops))
	for i, s := range stops {
		c, err := emblem.ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		out[i] = stop{offset: s.Offset, color: c.WithAlpha(s.Opacity)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].offset < out[j].offset })
	return out, nil
}

// colorAtOffset returns the interpolated colour at t, padding beyond the
// first and last stops the way SVG spreadMethod="pad" does.
func colorAtOffset(stops []stop, t float64) emblem.RGBA {
	if len(stops) == 0 {
		return emblem.RGBA{}
	}
	t = math.Max(0, math.Min(1, t))
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].offset >= t
	})
	if idx == 0 {
		return stops[0].color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].color
	}
	s1, s2 := stops[idx-1], stops[idx]
	if s2.offset == s1.offset {
		return s1.color
	}
	return s1.color.Lerp(s2.color, (t-s1.offset)/(s2.offset-s1.offset))
}

// gradientPaint is a compiled gradient: the parameter t of a point in user
// space and the ramp it indexes.
type gradientPaint struct {
	t     func(p emblem.Point) float64
	stops []stop
}

func compileGradient(g emblem.Gradient) (*gradientPaint, error) {
	stops, err := parseStops(g.ColorStops())
	if err != nil {
		return nil, fmt.Errorf("raster: gradient %q: %w", g.GradientID(), err)
	}
	switch g := g.(type) {
	case emblem.LinearGradient:
		d := g.End.Sub(g.Start)
		lengthSq := d.X*d.X + d.Y*d.Y
		return &gradientPaint{stops: stops, t: func(p emblem.Point) float64 {
			if lengthSq == 0 {
				return 0
			}
			// Project the point onto the gradient line.
			q := p.Sub(g.Start)
			return (q.X*d.X + q.Y*d.Y) / lengthSq
		}}, nil
	case emblem.RadialGradient:
		return &gradientPaint{stops: stops, t: func(p emblem.Point) float64 {
			if g.Radius == 0 {
				return 1
			}
			return p.Distance(g.Center) / g.Radius
		}}, nil
	default:
		return nil, fmt.Errorf("raster: unsupported gradient %T", g)
	}
}

// paintImage adapts a paint to the image.Image source expected by the
// rasterizer. Pixel centres are mapped back to user space.
type paintImage struct {
	paint   *gradientPaint
	scale   float64
	opacity float64
}

func (p *paintImage) ColorModel() color.Model { return color.NRGBAModel }

func (p *paintImage) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (p *paintImage) At(x, y int) color.Color {
	u := emblem.Pt((float64(x)+0.5)/p.scale, (float64(y)+0.5)/p.scale)
	return colorAtOffset(p.paint.stops, p.paint.t(u)).WithAlpha(p.opacity).Color()
}
