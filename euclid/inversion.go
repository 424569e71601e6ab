package euclid

import (
	"fmt"

	"github.com/dyed-eye/posteuclid"
)

// Invert reflects p across a line-like entity or inverts it in a circle.
//
// For a Line or LineSegment the result is the mirror image of p. For a
// Circle or CircleArc it is center + (p − center)·r²/|p − center|². The
// center of the circle has no image.
func Invert(about Entity, p Point) (Point, error) {
	switch e := about.(type) {
	case LineSegment:
		l, err := LineThrough(e.P0, e.P1)
		if err != nil {
			return Point{}, err
		}
		return Invert(l, p)
	case Line:
		closest := e.ClosestPoint(p)
		return closest.Sub(p.Sub(closest)), nil
	case CircleArc:
		return Invert(e.Circle, p)
	case Circle:
		dr := p.Sub(e.Center)
		dir, err := dr.Normalize()
		if err != nil {
			return Point{}, fmt.Errorf("%w: cannot invert the center of a circle", posteuclid.ErrConstruction)
		}
		return e.Center.Add(dir.Scale(e.Radius * e.Radius / dr.Magnitude())), nil
	}
	return Point{}, fmt.Errorf("%w: cannot invert about %T", posteuclid.ErrConstruction, about)
}
