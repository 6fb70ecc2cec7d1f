package emblem

// Move returns a move segment, relative to the cursor unless absolute.
func Move(x, y float64, absolute bool) Segment {
	return Segment{Cmd: CmdMove, Absolute: absolute, Point: Pt(x, y)}
}

// Line returns a line segment, relative to the cursor unless absolute.
func Line(x, y float64, absolute bool) Segment {
	return Segment{Cmd: CmdLine, Absolute: absolute, Point: Pt(x, y)}
}

// Arc returns an elliptical arc segment ending at (x, y). largeArc picks the
// arc longer than 180 degrees, sweep picks the positive-angle direction of
// the document (clockwise on screen).
func Arc(rx, ry, x, y, xRotation float64, largeArc, sweep, absolute bool) Segment {
	return Segment{
		Cmd:       CmdArc,
		Absolute:  absolute,
		Point:     Pt(x, y),
		RX:        rx,
		RY:        ry,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

// CircularArc returns a relative arc along a circle of radius r centred on
// the origin, from angle start to angle end (degrees). Equal angles give a
// zero displacement, which renders nothing.
func CircularArc(r, start, end float64, largeArc, sweep bool) Segment {
	d := Relative(Polar(r, start), Polar(r, end))
	return Arc(r, r, d.X, d.Y, 0, largeArc, sweep, false)
}

// LargeArc reports whether turning from one angle to another in the
// direction of increasing angle covers more than 180 degrees.
func LargeArc(from, to float64) bool {
	return Span(from, to) > 180
}

// SectorPath returns the straight edges of a circular sector of radius r
// between two angles.
//
// With originAtEnd false the cursor must be at the origin; the result is a
// wedge of three relative lines: out to start, across to end and back to the
// origin. With originAtEnd true the cursor must already be at the start
// point and only the line across to end is emitted, the legs to the origin
// being implied by the surrounding path.
func SectorPath(r, start, end float64, originAtEnd bool) []Segment {
	p1 := Polar(r, start)
	p2 := Polar(r, end)
	across := Relative(p1, p2)
	if originAtEnd {
		return []Segment{Line(across.X, across.Y, false)}
	}
	back := Relative(p2, Point{})
	return []Segment{
		Line(p1.X, p1.Y, false),
		Line(across.X, across.Y, false),
		Line(back.X, back.Y, false),
	}
}
