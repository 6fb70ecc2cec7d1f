package emblem

import (
	"fmt"
	"math"
)

// Palette holds the colours of the emblem. Colours are SVG paint values:
// hex ("#333") or CSS colour names ("lightskyblue").
type Palette struct {
	Exhaust        string  `yaml:"exhaust"`         // gradient ramp colour
	Engine         string  `yaml:"engine"`          // engine silhouette fill
	EngineOpacity  float64 `yaml:"engine_opacity"`  // engine silhouette fill-opacity
	Body           string  `yaml:"body"`            // body fill
	BodyOpacity    float64 `yaml:"body_opacity"`    // body fill-opacity
	ExhaustOpacity float64 `yaml:"exhaust_opacity"` // thruster fill-opacity
}

// Config is the full set of design parameters. Angles are in degrees.
// Rotations and Widths are parallel: engine i is centred at Rotations[i]
// and spans Widths[i].
type Config struct {
	Title        string    `yaml:"title"`
	Radius       float64   `yaml:"radius"`        // body radius
	InnerRadius  float64   `yaml:"inner_radius"`  // engine bay depth
	OuterRadius  float64   `yaml:"outer_radius"`  // engine nacelle radius
	EngineHeight float64   `yaml:"engine_height"` // exhaust length
	Pad          float64   `yaml:"pad"`           // angle between engine and body
	ThrustPad    float64   `yaml:"thrust_pad"`    // exhaust inset from engine edges
	Rotations    []float64 `yaml:"rotations"`
	Widths       []float64 `yaml:"widths"`
	Palette      Palette   `yaml:"palette"`
}

// backEngineGap is the angle between the two rear engines of the reference
// layout.
const backEngineGap = 65

// DefaultConfig returns the reference layout: one front engine and two rear
// engines on a body of radius 32.
func DefaultConfig() Config {
	const scale = 3.2
	return Config{
		Title:        "Robot",
		Radius:       10 * scale,
		InnerRadius:  8 * scale,
		OuterRadius:  12 * scale,
		EngineHeight: 8 * scale,
		Pad:          4,
		ThrustPad:    4,
		Rotations:    []float64{90, 270 - backEngineGap/2.0, 270 + backEngineGap/2.0},
		Widths:       []float64{32, 42, 42},
		Palette:      DefaultPalette(),
	}
}

// DefaultPalette returns the reference colours.
func DefaultPalette() Palette {
	return Palette{
		Exhaust:        "lightskyblue",
		Engine:         "#333",
		EngineOpacity:  0.7,
		Body:           "#CCC",
		BodyOpacity:    1,
		ExhaustOpacity: 1,
	}
}

// Engines returns the number of engines.
func (c Config) Engines() int {
	return len(c.Rotations)
}

// Size returns the document width and height.
func (c Config) Size() (w, h float64) {
	return 2 * c.Radius, 2 * c.Radius
}

// Center returns the emblem centre in document coordinates.
func (c Config) Center() Point {
	w, h := c.Size()
	return Pt(w/2, h/2)
}

// Validate checks every invariant generation relies on.
func (c Config) Validate() error {
	if len(c.Rotations) == 0 || len(c.Rotations) != len(c.Widths) {
		return fmt.Errorf("%w: %d rotations, %d widths",
			ErrMismatchedEngines, len(c.Rotations), len(c.Widths))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"radius", c.Radius},
		{"inner_radius", c.InnerRadius},
		{"outer_radius", c.OuterRadius},
		{"engine_height", c.EngineHeight},
	} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.InnerRadius >= c.Radius {
		return fmt.Errorf("%w: inner_radius %v must be below radius %v",
			ErrInvalidConfig, c.InnerRadius, c.Radius)
	}
	if !(c.Pad >= 0) || !(c.ThrustPad >= 0) || math.IsInf(c.Pad, 0) || math.IsInf(c.ThrustPad, 0) {
		return fmt.Errorf("%w: padding must be finite and non-negative (pad %v, thrust_pad %v)",
			ErrInvalidConfig, c.Pad, c.ThrustPad)
	}
	for i, r := range c.Rotations {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: engine %d rotation %v is not finite", ErrInvalidConfig, i, r)
		}
	}
	for i, w := range c.Widths {
		if !(w > 0 && w < 180) {
			return fmt.Errorf("%w: engine %d width %v outside (0, 180)", ErrInvalidConfig, i, w)
		}
		if 2*c.ThrustPad >= w {
			return fmt.Errorf("%w: engine %d width %v leaves no room for thrust_pad %v",
				ErrDegenerateThruster, i, w, c.ThrustPad)
		}
		if a := thrustEngineAngle(w, c.ThrustPad); !(a > 0 && a < 180) {
			return fmt.Errorf("%w: engine %d thrust angle %v outside (0, 180)",
				ErrDegenerateThruster, i, a)
		}
	}
	if err := c.Palette.validate(); err != nil {
		return err
	}
	return c.validateLayout()
}

func (p Palette) validate() error {
	for _, col := range []string{p.Exhaust, p.Engine, p.Body} {
		if _, err := ParseColor(col); err != nil {
			return fmt.Errorf("%w: palette: %w", ErrInvalidConfig, err)
		}
	}
	for _, o := range []float64{p.EngineOpacity, p.BodyOpacity, p.ExhaustOpacity} {
		if !(o >= 0 && o <= 1) {
			return fmt.Errorf("%w: palette opacity %v outside [0, 1]", ErrInvalidConfig, o)
		}
	}
	return nil
}

// validateLayout checks that the padded engine bays, taken in order, are
// separated by positive gaps and wrap around the body exactly once.
func (c Config) validateLayout() error {
	n := c.Engines()
	if n == 1 {
		if bay := c.Widths[0] + 2*c.Pad; bay >= 360 {
			return fmt.Errorf("%w: engine bay covers %v degrees", ErrOverlappingEngines, bay)
		}
		return nil
	}
	total := 0.0
	for i := range n {
		prev := (i + n - 1) % n
		total += c.Widths[i] + 2*c.Pad
		gap := Span(c.bayEnd(prev), c.bayStart(i))
		if Round(gap) == 0 {
			return fmt.Errorf("%w: no gap between engine %d and engine %d",
				ErrOverlappingEngines, prev, i)
		}
		total += gap
	}
	if math.Abs(total-360) > 1e-6 {
		return fmt.Errorf("%w: engine bays cover %v degrees instead of one turn",
			ErrOverlappingEngines, total)
	}
	return nil
}

// bayStart and bayEnd bound engine i's notch in the body, padding included.
func (c Config) bayStart(i int) float64 { return c.Rotations[i] - c.Widths[i]/2 - c.Pad }
func (c Config) bayEnd(i int) float64   { return c.Rotations[i] + c.Widths[i]/2 + c.Pad }
