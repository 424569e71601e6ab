package euclid

import (
	"fmt"

	"github.com/dyed-eye/posteuclid"
)

// Line is an infinite line through Origin along the unit vector Direction.
type Line struct {
	Origin    Point
	Direction Point
}

// NewLine builds a line through origin along delta. delta is normalized and
// must not be the zero vector.
func NewLine(origin, delta Point) (Line, error) {
	dir, err := delta.Normalize()
	if err != nil {
		return Line{}, fmt.Errorf("%w: line needs a non-zero direction", posteuclid.ErrConstruction)
	}
	return Line{Origin: origin, Direction: dir}, nil
}

// LineThrough builds the line through two distinct points.
func LineThrough(p0, p1 Point) (Line, error) {
	return NewLine(p0, p1.Sub(p0))
}

// At returns Origin + t·Direction.
func (l Line) At(t float64) Point {
	return l.Origin.Add(l.Direction.Scale(t))
}

// ClosestPoint returns the orthogonal projection of p onto l.
func (l Line) ClosestPoint(p Point) Point {
	return l.At(p.Sub(l.Origin).Dot(l.Direction))
}

func (l Line) Reversed() Line {
	return Line{Origin: l.Origin, Direction: l.Direction.Neg()}
}

// Parallel reports whether the directions are equal or opposite.
func (l Line) Parallel(other Line) bool {
	return l.Direction == other.Direction || l.Direction == other.Direction.Neg()
}

// Intersect returns the intersection of two lines. Lines with equal
// directions, or directions so close that the determinant vanishes, have
// no intersection; this is a normal outcome, not an error.
func Intersect(l0, l1 Line) (Point, bool) {
	if l0.Direction == l1.Direction {
		return Point{}, false
	}
	d0, d1 := l0.Direction, l1.Direction
	denom := d1.X*d0.Y - d1.Y*d0.X
	if denom == 0 {
		return Point{}, false
	}
	o0, o1 := l0.Origin, l1.Origin
	b := (d0.X*(o1.Y-o0.Y) + d0.Y*(o0.X-o1.X)) / denom
	return l1.At(b), true
}
