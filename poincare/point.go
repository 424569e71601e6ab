package poincare

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// Point is a point of the closed unit disk.
type Point struct {
	X, Y float64
}

// NewPoint validates |(x, y)| ≤ 1.
func NewPoint(x, y float64) (Point, error) {
	if math.IsNaN(x) || math.IsNaN(y) || math.Hypot(x, y) > 1 {
		return Point{}, fmt.Errorf("%w: (%g, %g) outside the unit disk", posteuclid.ErrConstruction, x, y)
	}
	return Point{X: x, Y: y}, nil
}

func (p Point) Complex() complex128 {
	return complex(p.X, p.Y)
}

// Transform returns the image of p under t.
func (p Point) Transform(t Transform) (Point, error) {
	z := t.Map(p.Complex())
	return NewPoint(real(z), imag(z))
}

// Euclidean returns p itself as a point of the plane.
func (p Point) Euclidean() euclid.Point {
	return euclid.Pt(p.X, p.Y)
}

func (p Point) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}
