package emblem

import "math"

// thrustEngineAngle returns the angle, in degrees, between an exhaust edge
// and the engine's outer radius in the triangle solved by thrustRadius.
func thrustEngineAngle(width, thrustPad float64) float64 {
	base := (180 - width) / 2
	return 180 - base - thrustPad
}

// thrustRadius returns the distance from the centre at which the inset
// exhaust edges meet the engine's outer circle, by the law of sines on the
// isosceles triangle spanned by the engine wedge.
func thrustRadius(out, width, thrustPad float64) float64 {
	base := (180 - width) / 2
	return out / math.Sin(degToRad(thrustEngineAngle(width, thrustPad))) * math.Sin(degToRad(base))
}

// ThrusterQuad returns the exhaust quad of engine i: two near vertices on the
// thrust radius at the inset angular bounds and two far vertices pushed out
// by EngineHeight along the engine's centre line. The path is made of
// absolute commands and closes on its first vertex.
func ThrusterQuad(cfg Config, i int) *Path {
	rot, w := cfg.Rotations[i], cfg.Widths[i]
	c := cfg.Center()
	r := thrustRadius(cfg.OuterRadius, w, cfg.ThrustPad)
	push := Polar(cfg.EngineHeight, rot)

	p1 := c.Add(Polar(r, rot+w/2-cfg.ThrustPad))
	p2 := c.Add(Polar(r, rot-w/2+cfg.ThrustPad))
	far2 := p2.Add(push)
	far1 := p1.Add(push)

	return NewPath().Append(
		Move(p1.X, p1.Y, true),
		Line(p2.X, p2.Y, true),
		Line(far2.X, far2.Y, true),
		Line(far1.X, far1.Y, true),
		Line(p1.X, p1.Y, true),
	)
}

// ThrusterQuads returns the exhaust quad of every engine, in engine order.
func ThrusterQuads(cfg Config) []*Path {
	quads := make([]*Path, cfg.Engines())
	for i := range quads {
		quads[i] = ThrusterQuad(cfg, i)
	}
	return quads
}
