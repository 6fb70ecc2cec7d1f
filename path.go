package emblem

import "strings"

// Command identifies the kind of a path segment.
type Command uint8

const (
	CmdMove Command = iota // Move the cursor without drawing
	CmdLine                // Straight line
	CmdArc                 // Elliptical arc
)

var commandNames = [...]string{
	CmdMove: "Move",
	CmdLine: "Line",
	CmdArc:  "Arc",
}

// String returns the string representation of a Command.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "Unknown"
}

// letter returns the SVG path-data letter, upper case for absolute commands.
func (c Command) letter(absolute bool) byte {
	var l byte
	switch c {
	case CmdMove:
		l = 'm'
	case CmdLine:
		l = 'l'
	case CmdArc:
		l = 'a'
	default:
		l = '?'
	}
	if absolute {
		l -= 'a' - 'A'
	}
	return l
}

// Segment is a single path command. Point is the end point when Absolute is
// set and a displacement from the current point otherwise. The arc fields
// are only meaningful for CmdArc.
type Segment struct {
	Cmd      Command
	Absolute bool
	Point    Point

	RX, RY    float64
	XRotation float64 // degrees
	LargeArc  bool
	Sweep     bool
}

// End returns the absolute end point of the segment when drawn from current.
func (s Segment) End(current Point) Point {
	if s.Absolute {
		return s.Point
	}
	return current.Add(s.Point)
}

// Data renders the segment as SVG path data, e.g. "a 32 32 0 0 0 -1.5 2".
func (s Segment) Data() string {
	l := s.Cmd.letter(s.Absolute)
	if s.Cmd == CmdArc {
		return formatFields(l, s.RX, s.RY, s.XRotation,
			flagValue(s.LargeArc), flagValue(s.Sweep), s.Point.X, s.Point.Y)
	}
	return formatFields(l, s.Point.X, s.Point.Y)
}

// Path is an ordered sequence of segments. Order is load-bearing: a relative
// segment is measured from the point the previous one left the cursor at, so
// the path keeps that cursor explicitly.
type Path struct {
	segments []Segment
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 16),
	}
}

// Append adds segments in order, advancing the current point.
// Returns the path for chaining.
func (p *Path) Append(segs ...Segment) *Path {
	for _, s := range segs {
		p.current = s.End(p.current)
		if s.Cmd == CmdMove {
			p.start = p.current
		}
		p.segments = append(p.segments, s)
	}
	return p
}

// Segments returns the path segments.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Count returns the number of segments of the given kind.
func (p *Path) Count(cmd Command) int {
	n := 0
	for _, s := range p.segments {
		if s.Cmd == cmd {
			n++
		}
	}
	return n
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// StartPoint returns the starting point of the current subpath.
func (p *Path) StartPoint() Point {
	return p.start
}

// Walk calls fn for every segment with its absolute start and end points.
func (p *Path) Walk(fn func(s Segment, from, to Point)) {
	var cur Point
	for _, s := range p.segments {
		to := s.End(cur)
		fn(s, cur, to)
		cur = to
	}
}

// Data renders the whole path as SVG path data.
func (p *Path) Data() string {
	parts := make([]string, len(p.segments))
	for i, s := range p.segments {
		parts[i] = s.Data()
	}
	return strings.Join(parts, " ")
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.segments = make([]Segment, len(p.segments))
	copy(result.segments, p.segments)
	result.start = p.start
	result.current = p.current
	return result
}
