package emblem

import "math"

// Point represents a 2D point or displacement in document space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Round returns the point with both coordinates rounded to [Decimals] places.
func (p Point) Round() Point {
	return Point{X: Round(p.X), Y: Round(p.Y)}
}

// Angle returns the polar angle of p in degrees, in [0, 360), using the same
// inverted-y convention as Polar.
func (p Point) Angle() float64 {
	return Normalize(radToDeg(math.Atan2(-p.Y, p.X)))
}

// Polar converts a radius and an angle in degrees to a point.
// The y component is negated: positive angles turn towards the top of the
// document, whose y axis grows downward.
func Polar(r, theta float64) Point {
	rad := degToRad(theta)
	return Point{X: r * math.Cos(rad), Y: -r * math.Sin(rad)}
}

// Relative returns the displacement from p1 to p2.
func Relative(p1, p2 Point) Point {
	return p2.Sub(p1)
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// Normalize maps an angle in degrees to [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Span returns the angular distance travelled when turning from one angle to
// another in the direction of increasing angle. The result is in [0, 360).
func Span(from, to float64) float64 {
	return Normalize(to - from)
}

func cosDeg(deg float64) float64 { return math.Cos(degToRad(deg)) }
