package euclid

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/dyed-eye/posteuclid"
)

// Point is a point or vector in the Euclidean plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromCoord converts a geom.Coord.
func FromCoord(c geom.Coord) Point {
	return Point{X: c.X, Y: c.Y}
}

// Coord converts p to a geom.Coord.
func (p Point) Coord() geom.Coord {
	return geom.Coord{X: p.X, Y: p.Y}
}

func (p Point) Add(q Point) Point {
	return FromCoord(p.Coord().Plus(q.Coord()))
}

func (p Point) Sub(q Point) Point {
	return FromCoord(p.Coord().Minus(q.Coord()))
}

func (p Point) Scale(s float64) Point {
	return FromCoord(p.Coord().Times(s))
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Magnitude() float64 {
	return p.Coord().Magnitude()
}

// MagnitudeSq returns the squared length, avoiding the square root.
func (p Point) MagnitudeSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceFrom returns the Euclidean distance between p and q.
func (p Point) DistanceFrom(q Point) float64 {
	return p.Coord().DistanceFrom(q.Coord())
}

// Angle returns atan2(Y, X), in [-π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

func (p Point) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

// Normalize returns the unit vector along p. The zero vector has no
// direction and is rejected.
func (p Point) Normalize() (Point, error) {
	if p.IsOrigin() {
		return Point{}, fmt.Errorf("%w: cannot normalize the zero vector", posteuclid.ErrConstruction)
	}
	return FromCoord(p.Coord().Unit()), nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Midpoint returns the point halfway between p0 and p1.
func Midpoint(p0, p1 Point) Point {
	return p0.Add(p1.Sub(p0).Scale(0.5))
}

// Collinear reports whether p0, p1 and p2 lie on one line.
func Collinear(p0, p1, p2 Point) bool {
	return FloatAlmostEqual(p1.Sub(p0).Cross(p2.Sub(p1)), 0)
}
