package poincare

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// CollinearTolerance bounds |2(px·qy − py·qx)| below which two endpoints
// are treated as lying on a diameter.
const CollinearTolerance = 1e-14

// Segment is the geodesic between two disk points.
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

// Length returns the hyperbolic length.
func (s Segment) Length() float64 {
	return Distance(s.P0, s.P1)
}

func (s Segment) straight() euclid.Entity {
	return euclid.LineSegment{P0: s.P0.Euclidean(), P1: s.P1.Euclidean()}
}

// Euclidean returns the geodesic as drawn in the disk: a straight segment
// when it lies on a diameter, otherwise the shorter arc of the circle
// through both endpoints that meets the unit circle at right angles.
func (s Segment) Euclidean() (euclid.Entity, error) {
	if s.P0.IsOrigin() || s.P1.IsOrigin() {
		return s.straight(), nil
	}

	px, py := s.P0.X, s.P0.Y
	qx, qy := s.P1.X, s.P1.Y

	denom := 2 * (px*qy - py*qx)
	if math.Abs(denom) < CollinearTolerance {
		return s.straight(), nil
	}

	// The center is equidistant from both points and orthogonal to the unit
	// circle: |o|² = r² + 1.
	u := px*px + py*py + 1
	v := qx*qx + qy*qy + 1
	center := euclid.Pt((qy*u-py*v)/denom, (-qx*u+px*v)/denom)
	radius := math.Sqrt(center.MagnitudeSq() - 1)
	if math.IsNaN(radius) {
		return nil, fmt.Errorf("%w: geodesic circle through %v and %v has no real radius", posteuclid.ErrConsistency, s.P0, s.P1)
	}

	a0, err := euclid.NormalizeAngle(s.P0.Euclidean().Sub(center).Angle())
	if err != nil {
		return nil, err
	}
	a1, err := euclid.NormalizeAngle(s.P1.Euclidean().Sub(center).Angle())
	if err != nil {
		return nil, err
	}

	lo, hi := math.Min(a0, a1), math.Max(a0, a1)
	if hi-lo > math.Pi {
		// The short way round crosses angle zero.
		lo, hi = hi, lo+2*math.Pi
	}
	if hi-lo > math.Pi {
		return nil, fmt.Errorf("%w: arc spans %g rad", posteuclid.ErrConsistency, hi-lo)
	}

	return euclid.CircleArc{
		Circle: euclid.Circle{Center: center, Radius: radius},
		Angle0: lo,
		Angle1: hi,
	}, nil
}
