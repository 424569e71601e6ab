// Package coords converts between parameterisations of a single point of
// the hyperbolic plane: geodesic polar coordinates, axial (tanh-based
// orthogonal) coordinates, the Beltrami–Klein disk and the Poincaré disk.
//
// A typical use is laying out points on a regular axial grid and handing
// the resulting disk coordinates to a scene.
package coords

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/poincare"
)

// Polar is a point at hyperbolic distance R from the origin in direction
// Theta.
type Polar struct {
	R, Theta float64
}

// Distance returns the hyperbolic distance between p and q by the
// hyperbolic law of cosines.
func (p Polar) Distance(q Polar) float64 {
	c := math.Cosh(p.R)*math.Cosh(q.R) - math.Sinh(p.R)*math.Sinh(q.R)*math.Cos(q.Theta-p.Theta)
	return math.Acosh(math.Max(1, c))
}

// Add returns the point reached by applying to q the translation that
// carries the origin onto p (gyrovector addition p ⊕ q). The distance from
// the origin is given by the law of cosines with the supplementary angle.
func (p Polar) Add(q Polar) Polar {
	c := math.Cosh(p.R)*math.Cosh(q.R) + math.Sinh(p.R)*math.Sinh(q.R)*math.Cos(q.Theta-p.Theta)
	r := math.Acosh(math.Max(1, c))

	a, b := p.disk(), q.disk()
	sum := (a + b) / (1 + cmplx.Conj(a)*b)
	return Polar{R: r, Theta: cmplx.Phase(sum)}
}

func (p Polar) disk() complex128 {
	return cmplx.Rect(math.Tanh(p.R/2), p.Theta)
}

// Poincare returns the disk point at Euclidean radius tanh(R/2).
func (p Polar) Poincare() poincare.Point {
	z := p.disk()
	return poincare.Point{X: real(z), Y: imag(z)}
}

// Axial returns the axial coordinates of p.
func (p Polar) Axial() Axial {
	t := math.Tanh(p.R)
	return Axial{
		X: math.Atanh(t * math.Cos(p.Theta)),
		Y: math.Atanh(t * math.Sin(p.Theta)),
	}
}

// Axial coordinates: X is measured along a geodesic through the origin, Y
// along the perpendicular geodesic, each as the atanh of the matching
// Beltrami coordinate.
type Axial struct {
	X, Y float64
}

func (a Axial) Add(b Axial) Axial {
	return Axial{X: a.X + b.X, Y: a.Y + b.Y}
}

func (a Axial) Sub(b Axial) Axial {
	return Axial{X: a.X - b.X, Y: a.Y - b.Y}
}

// Valid reports whether the coordinates name a point of the plane rather
// than one past the ideal boundary.
func (a Axial) Valid() bool {
	tx, ty := math.Tanh(a.X), math.Tanh(a.Y)
	return tx*tx+ty*ty <= 1
}

// Polar converts to geodesic polar coordinates.
func (a Axial) Polar() Polar {
	tx, ty := math.Tanh(a.X), math.Tanh(a.Y)
	return Polar{
		R:     math.Atanh(math.Hypot(tx, ty)),
		Theta: math.Atan2(ty, tx),
	}
}

// Beltrami converts to the Klein disk. It fails for invalid coordinates.
func (a Axial) Beltrami() (Beltrami, error) {
	return NewBeltrami(math.Tanh(a.X), math.Tanh(a.Y))
}

// Beltrami is a point of the Beltrami–Klein disk, where geodesics are
// straight chords.
type Beltrami struct {
	X, Y float64
}

// NewBeltrami validates that (x, y) lies in the closed unit disk.
func NewBeltrami(x, y float64) (Beltrami, error) {
	if math.Hypot(x, y) > 1 {
		return Beltrami{}, fmt.Errorf("%w: Beltrami coordinates (%g, %g) outside the unit disk", posteuclid.ErrConstruction, x, y)
	}
	return Beltrami{X: x, Y: y}, nil
}

// Poincare maps p to p / (1 + sqrt(1 − |p|²)).
func (b Beltrami) Poincare() (poincare.Point, error) {
	k := 1 / (1 + math.Sqrt(1-b.X*b.X-b.Y*b.Y))
	return poincare.NewPoint(b.X*k, b.Y*k)
}

// BeltramiFromPoincare is the inverse map, q ↦ 2q / (1 + |q|²).
func BeltramiFromPoincare(q poincare.Point) (Beltrami, error) {
	k := 2 / (1 + q.X*q.X + q.Y*q.Y)
	return NewBeltrami(q.X*k, q.Y*k)
}
