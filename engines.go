package emblem

// EngineSilhouette returns the backing shadow of every engine nacelle: a
// single path starting at the centre with one wedge of radius OuterRadius
// per engine. Each wedge ends back at the centre, ready for the next.
func EngineSilhouette(cfg Config) *Path {
	c := cfg.Center()
	p := NewPath().Append(Move(c.X, c.Y, true))
	for i, rot := range cfg.Rotations {
		half := cfg.Widths[i] / 2
		p.Append(SectorPath(cfg.OuterRadius, rot-half, rot+half, false)...)
	}
	return p
}
