// Package weierstrass implements the hyperboloid model: points (x, y, z)
// on the sheet x² = y² + z² + 1, x > 0, moved by 3×3 Lorentz matrices.
//
// Points project to the Poincaré disk as (y, z)/(x + 1), so rotations and
// translations agree in direction with package poincare.
package weierstrass

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// Transform is a 3×3 real matrix acting on (x, y, z) column vectors.
type Transform [3][3]float64

// Mul returns the matrix product t·u.
func (t Transform) Mul(u Transform) Transform {
	var r Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += t[i][k] * u[k][j]
			}
		}
	}
	return r
}

// Apply returns t·v.
func (t Transform) Apply(v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = t[i][0]*v[0] + t[i][1]*v[1] + t[i][2]*v[2]
	}
	return r
}

func (t Transform) Det() float64 {
	return t[0][0]*(t[1][1]*t[2][2]-t[1][2]*t[2][1]) -
		t[0][1]*(t[1][0]*t[2][2]-t[1][2]*t[2][0]) +
		t[0][2]*(t[1][0]*t[2][1]-t[1][1]*t[2][0])
}

// Tool is the hyperboloid transform algebra.
type Tool struct{}

func (Tool) Identity() Transform {
	return Transform{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationLike rotates the (y, z) plane about the x axis.
func (Tool) RotationLike(angle float64) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return Transform{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// boost moves the origin a hyperbolic distance d along +y.
func boost(d float64) Transform {
	ch, sh := math.Cosh(d), math.Sinh(d)
	return Transform{
		{ch, sh, 0},
		{sh, ch, 0},
		{0, 0, 1},
	}
}

// TranslationLike moves the origin a hyperbolic distance hypot(dx, dy)
// towards the disk direction (dx, dy). An arbitrary direction is the
// canonical boost conjugated by a rotation: R(φ)·B(d)·R(−φ).
func (t Tool) TranslationLike(dx, dy float64) Transform {
	angle := math.Atan2(dy, dx)
	d := math.Hypot(dx, dy)
	return t.RotationLike(angle).Mul(boost(d).Mul(t.RotationLike(-angle)))
}

// DiskTranslation converts the Euclidean radius |p| of the disk point into
// the hyperbolic distance 2·atanh|p| and translates along p.
func (t Tool) DiskTranslation(p euclid.Point) (Transform, error) {
	r := p.Magnitude()
	if r >= 1 {
		return Transform{}, fmt.Errorf("%w: disk translation target %v not inside the unit disk", posteuclid.ErrConstruction, p)
	}
	if r == 0 {
		return t.Identity(), nil
	}
	d := 2 * math.Atanh(r)
	return t.TranslationLike(p.X/r*d, p.Y/r*d), nil
}

func (Tool) Compose(left, right Transform) Transform {
	return left.Mul(right)
}

// Inverse uses the adjugate. A zero determinant is an ErrAlgebra.
func (Tool) Inverse(t Transform) (Transform, error) {
	det := t.Det()
	if det == 0 {
		return Transform{}, fmt.Errorf("%w: hyperboloid matrix has zero determinant", posteuclid.ErrAlgebra)
	}
	var inv Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// cofactor of (j, i), transposed into (i, j)
			r0, r1 := (j+1)%3, (j+2)%3
			c0, c1 := (i+1)%3, (i+2)%3
			inv[i][j] = (t[r0][c0]*t[r1][c1] - t[r0][c1]*t[r1][c0]) / det
		}
	}
	return inv, nil
}

// AlmostEqual compares two transforms entrywise.
func AlmostEqual(s, t Transform, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(s[i][j]-t[i][j]) > tol {
				return false
			}
		}
	}
	return true
}
