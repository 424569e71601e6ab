package weierstrass

import (
	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/poincare"
)

// Segment is the geodesic between two hyperboloid points.
type Segment struct {
	P0, P1 Point
}

func (s Segment) Transform(t Transform) (Segment, error) {
	p0, err := s.P0.Transform(t)
	if err != nil {
		return Segment{}, err
	}
	p1, err := s.P1.Transform(t)
	if err != nil {
		return Segment{}, err
	}
	return Segment{P0: p0, P1: p1}, nil
}

// Poincare projects both endpoints into the disk.
func (s Segment) Poincare() poincare.Segment {
	return poincare.Segment{P0: s.P0.Poincare(), P1: s.P1.Poincare()}
}

// Euclidean draws the projected disk geodesic.
func (s Segment) Euclidean() (euclid.Entity, error) {
	return s.Poincare().Euclidean()
}
