package emblem

// bodyStep is the accumulator threaded through the body outline fold: the
// angle at which the previous engine bay left the body rim.
type bodyStep struct {
	boundary float64
}

// BodyOutline returns the body: a disc of radius Radius with a notch down to
// InnerRadius at every padded engine bay.
//
// The path starts on the rim just past the last engine's bay, so walking the
// engines in order ends exactly where it started. It is not closed with a
// close command; the final cursor lands back on the start point.
func BodyOutline(cfg Config) *Path {
	start := cfg.bayEnd(cfg.Engines() - 1)
	from := cfg.Center().Add(Polar(cfg.Radius, start))

	_, segs := foldBody(cfg, bodyStep{boundary: start})
	return NewPath().Append(Move(from.X, from.Y, true)).Append(segs...)
}

// foldBody walks the engines in order from the initial accumulator and
// returns the final accumulator with every emitted segment.
func foldBody(cfg Config, acc bodyStep) (bodyStep, []Segment) {
	out := make([]Segment, 0, 4*cfg.Engines())
	for i := range cfg.Engines() {
		var segs []Segment
		acc, segs = acc.next(cfg, i)
		out = append(out, segs...)
	}
	return acc, out
}

// next emits engine i's stretch of the outline: the rim arc up to its bay,
// the step in, the notch floor and the step back out. It returns the
// accumulator advanced to the end of the bay.
func (s bodyStep) next(cfg Config, i int) (bodyStep, []Segment) {
	to := cfg.bayStart(i)
	end := cfg.bayEnd(i)

	in := Relative(Polar(cfg.Radius, to), Polar(cfg.InnerRadius, to))
	out := Relative(Polar(cfg.InnerRadius, end), Polar(cfg.Radius, end))

	segs := make([]Segment, 0, 4)
	segs = append(segs,
		CircularArc(cfg.Radius, s.boundary, to, LargeArc(s.boundary, to), false),
		Line(in.X, in.Y, false),
	)
	segs = append(segs, SectorPath(cfg.InnerRadius, to, end, true)...)
	segs = append(segs, Line(out.X, out.Y, false))
	return bodyStep{boundary: end}, segs
}
