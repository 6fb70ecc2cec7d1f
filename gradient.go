package emblem

import "strconv"

// ColorStop represents a colour at a specific position in a gradient.
type ColorStop struct {
	Offset  float64 // Position in gradient, 0.0 to 1.0
	Color   string  // SVG colour value
	Opacity float64 // stop-opacity, 0.0 to 1.0
}

// Gradient is a gradient definition referenced by GradientFill. This is a
// sealed interface: only LinearGradient and RadialGradient implement it.
type Gradient interface {
	// GradientID returns the document-wide identifier.
	GradientID() string
	// ColorStops returns the ramp.
	ColorStops() []ColorStop

	gradientMarker()
}

// LinearGradient fades along the line from Start to End, in document
// coordinates.
type LinearGradient struct {
	ID    string
	Start Point
	End   Point
	Stops []ColorStop
}

func (LinearGradient) gradientMarker() {}

// GradientID implements Gradient.
func (g LinearGradient) GradientID() string { return g.ID }

// ColorStops implements Gradient.
func (g LinearGradient) ColorStops() []ColorStop { return g.Stops }

// RadialGradient fades from Center out to Radius, in document coordinates.
type RadialGradient struct {
	ID     string
	Center Point
	Radius float64
	Stops  []ColorStop
}

func (RadialGradient) gradientMarker() {}

// GradientID implements Gradient.
func (g RadialGradient) GradientID() string { return g.ID }

// ColorStops implements Gradient.
func (g RadialGradient) ColorStops() []ColorStop { return g.Stops }

// GradientSpec holds the two interchangeable glow gradients of one engine.
type GradientSpec struct {
	Engine int
	Linear LinearGradient
	Radial RadialGradient
}

// Gradients returns both gradients, linear first.
func (s GradientSpec) Gradients() []Gradient {
	return []Gradient{s.Linear, s.Radial}
}

// LinearGradientID and RadialGradientID name engine i's gradients.
func LinearGradientID(i int) string { return "grad" + strconv.Itoa(i) }
func RadialGradientID(i int) string { return "gradr" + strconv.Itoa(i) }

// fadeStops is the shared ramp: solid at the engine, transparent outward.
func fadeStops(color string) []ColorStop {
	return []ColorStop{
		{Offset: 0, Color: color, Opacity: 1},
		{Offset: 1, Color: color, Opacity: 0},
	}
}

// GradientAnchors computes engine i's glow gradients. Both start at the
// point OuterRadius·cos(width/2) out along the engine's centre line; the
// linear one runs a further EngineHeight/1.2 outward and the radial one has
// radius EngineHeight/1.5. All coordinates are rounded like path data.
//
// The near point is derived from the engine wedge rather than the exhaust
// quad, so it only approximately matches the quad's inner edge.
func GradientAnchors(cfg Config, i int) GradientSpec {
	rot, w := cfg.Rotations[i], cfg.Widths[i]
	near := cfg.Center().Add(Polar(cfg.OuterRadius*cosDeg(w/2), rot))
	far := near.Add(Polar(cfg.EngineHeight/1.2, rot))
	stops := fadeStops(cfg.Palette.Exhaust)

	return GradientSpec{
		Engine: i,
		Linear: LinearGradient{
			ID:    LinearGradientID(i),
			Start: near.Round(),
			End:   far.Round(),
			Stops: stops,
		},
		Radial: RadialGradient{
			ID:     RadialGradientID(i),
			Center: near.Round(),
			Radius: Round(cfg.EngineHeight / 1.5),
			Stops:  stops,
		},
	}
}
