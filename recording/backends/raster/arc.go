package raster

import (
	"math"

	"github.com/fedorabots/emblem"
)

// arcSteps is the number of line segments per full turn when flattening arcs.
const arcSteps = 256

// flattenArc approximates an SVG arc from one point to another with a
// polyline. The returned points exclude from and end exactly at to.
//
// The centre is recovered with the endpoint-to-centre conversion of the SVG
// 1.1 implementation notes (F.6.5), radii scaled up when too small to span
// the chord (F.6.6).
func flattenArc(from, to emblem.Point, s emblem.Segment) []emblem.Point {
	if from == to {
		return nil
	}
	rx, ry := math.Abs(s.RX), math.Abs(s.RY)
	if rx == 0 || ry == 0 {
		return []emblem.Point{to}
	}

	phi := s.XRotation * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		k := math.Sqrt(lambda)
		rx *= k
		ry *= k
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if s.LargeArc == s.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	ux, uy := (x1-cxp)/rx, (y1-cyp)/ry
	vx, vy := (-x1-cxp)/rx, (-y1-cyp)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := math.Mod(vectorAngle(ux, uy, vx, vy), 2*math.Pi)
	switch {
	case !s.Sweep && delta > 0:
		delta -= 2 * math.Pi
	case s.Sweep && delta < 0:
		delta += 2 * math.Pi
	}

	n := max(1, int(math.Ceil(math.Abs(delta)/(2*math.Pi)*arcSteps)))
	pts := make([]emblem.Point, 0, n)
	for i := 1; i < n; i++ {
		t := theta + delta*float64(i)/float64(n)
		ct, st := math.Cos(t), math.Sin(t)
		pts = append(pts, emblem.Pt(
			cx+rx*cosPhi*ct-ry*sinPhi*st,
			cy+rx*sinPhi*ct+ry*cosPhi*st,
		))
	}
	return append(pts, to)
}

// vectorAngle returns the signed angle in radians from u to v.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
