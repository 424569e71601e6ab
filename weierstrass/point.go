package weierstrass

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/poincare"
)

// DriftTolerance is the largest accepted gap between the x coordinate
// carried by a matrix product and the one implied by the hyperboloid
// constraint. Larger gaps mean the transform was not an isometry.
const DriftTolerance = 1e-4

// Point lies on the upper sheet x² = y² + z² + 1.
type Point struct {
	X, Y, Z float64
}

// NewPoint lifts (y, z) onto the hyperboloid.
func NewPoint(y, z float64) Point {
	return Point{X: math.Sqrt(y*y + z*z + 1), Y: y, Z: z}
}

// Transform applies t, then recomputes x from (y, z) to cancel drift.
func (p Point) Transform(t Transform) (Point, error) {
	v := t.Apply([3]float64{p.X, p.Y, p.Z})
	q := NewPoint(v[1], v[2])
	if dev := math.Abs(v[0] - q.X); !(dev <= DriftTolerance) {
		return Point{}, fmt.Errorf("%w: hyperboloid deviation %g after transform", posteuclid.ErrConsistency, dev)
	}
	return q, nil
}

// Poincare projects p into the disk: (y, z)/(x + 1).
func (p Point) Poincare() poincare.Point {
	k := 1 / (p.X + 1)
	return poincare.Point{X: p.Y * k, Y: p.Z * k}
}

func (p Point) Euclidean() euclid.Point {
	return p.Poincare().Euclidean()
}

// FromPoincare lifts a disk point onto the hyperboloid. It fails unless
// |q| < 1.
func FromPoincare(q poincare.Point) (Point, error) {
	r2 := q.X*q.X + q.Y*q.Y
	if r2 >= 1 {
		return Point{}, fmt.Errorf("%w: %v is not an interior disk point", posteuclid.ErrConstruction, q)
	}
	k := 2 / (1 - r2)
	return NewPoint(q.X*k, q.Y*k), nil
}

// Distance returns the hyperbolic distance: acosh of the Minkowski product.
func Distance(p, q Point) float64 {
	return math.Acosh(math.Max(1, p.X*q.X-p.Y*q.Y-p.Z*q.Z))
}
