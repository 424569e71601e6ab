package euclid

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// UnitCircle is the boundary of the Poincaré disk.
func UnitCircle() Circle {
	return Circle{Radius: 1}
}

// Arc returns the full circle as an arc.
func (c Circle) Arc() CircleArc {
	return CircleArc{Circle: c, Angle0: 0, Angle1: 2 * math.Pi}
}

// PointAt returns the point of c at the given angle.
func (c Circle) PointAt(angle float64) Point {
	return c.Center.Add(Pt(math.Cos(angle), math.Sin(angle)).Scale(c.Radius))
}

// CircleArc is the counter-clockwise arc of Circle from Angle0 to Angle1.
// Arcs built from hyperbolic geodesics have Angle0 in [0, 2π) and
// Angle0 ≤ Angle1 ≤ Angle0 + π; Angle1 exceeds 2π when the arc crosses
// angle zero.
type CircleArc struct {
	Circle Circle
	Angle0 float64
	Angle1 float64
}

// Span returns the swept angle.
func (a CircleArc) Span() float64 {
	return a.Angle1 - a.Angle0
}

func (a CircleArc) Start() Point {
	return a.Circle.PointAt(a.Angle0)
}

func (a CircleArc) End() Point {
	return a.Circle.PointAt(a.Angle1)
}

func (a CircleArc) Length() float64 {
	return math.Abs(a.Span()) * a.Circle.Radius
}

type LineSegment struct {
	P0, P1 Point
}

func (s LineSegment) Length() float64 {
	return s.P0.DistanceFrom(s.P1)
}

func (s LineSegment) Midpoint() Point {
	return Midpoint(s.P0, s.P1)
}

// Crosses reports whether the two closed segments share a point.
func (s LineSegment) Crosses(other LineSegment) bool {
	p1, p2 := s.P0, s.P1
	p3, p4 := other.P0, other.P1

	o1 := orientation(p1, p2, p3)
	o2 := orientation(p1, p2, p4)
	o3 := orientation(p3, p4, p1)
	o4 := orientation(p3, p4, p2)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases.
	if o1 == colinear && onSegment(p1, p3, p2) {
		return true
	}
	if o2 == colinear && onSegment(p1, p4, p2) {
		return true
	}
	if o3 == colinear && onSegment(p3, p1, p4) {
		return true
	}
	if o4 == colinear && onSegment(p3, p2, p4) {
		return true
	}
	return false
}

type turn int

const (
	colinear turn = iota
	clockwise
	counterClockwise
)

func orientation(p, q, r Point) turn {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return colinear
	case val > 0:
		return clockwise
	}
	return counterClockwise
}

// onSegment reports whether q lies within the bounding box of p and r.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}
