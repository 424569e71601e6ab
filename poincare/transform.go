// Package poincare implements the Poincaré disk model: points are complex
// numbers z with |z| ≤ 1 and isometries are Möbius maps
// z ↦ (az + b)/(cz + d).
package poincare

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// Transform is the 2×2 complex matrix [[A, B], [C, D]] of a Möbius map.
type Transform struct {
	A, B, C, D complex128
}

// Det returns AD − BC.
func (t Transform) Det() complex128 {
	return t.A*t.D - t.B*t.C
}

// Map applies the Möbius map to z.
func (t Transform) Map(z complex128) complex128 {
	return (t.A*z + t.B) / (t.C*z + t.D)
}

// normalized rescales t to unit determinant. The map is unchanged; this
// keeps long chains of compositions from drifting towards zero or overflow.
func (t Transform) normalized() Transform {
	det := t.Det()
	if det == 0 {
		return t
	}
	k := 1 / cmplx.Sqrt(det)
	return Transform{A: t.A * k, B: t.B * k, C: t.C * k, D: t.D * k}
}

// Tool is the Möbius transform algebra.
type Tool struct{}

func (Tool) Identity() Transform {
	return Transform{A: 1, D: 1}
}

// TranslationLike returns [[1, b], [conj(b), 1]] with b = dx + i·dy. It
// carries the origin onto b, so |b| must stay below 1 for a proper isometry.
func (Tool) TranslationLike(dx, dy float64) Transform {
	b := complex(dx, dy)
	return Transform{A: 1, B: b, C: cmplx.Conj(b), D: 1}
}

// RotationLike returns the unit-complex scaling z ↦ e^{iθ}z.
func (Tool) RotationLike(angle float64) Transform {
	return Transform{A: cmplx.Rect(1, angle), D: 1}
}

func (t Tool) DiskTranslation(p euclid.Point) (Transform, error) {
	if p.MagnitudeSq() >= 1 {
		return Transform{}, fmt.Errorf("%w: disk translation target %v not inside the unit disk", posteuclid.ErrConstruction, p)
	}
	return t.TranslationLike(p.X, p.Y), nil
}

// Compose returns left ∘ right, the matrix product left·right rescaled to
// unit determinant.
func (Tool) Compose(left, right Transform) Transform {
	a, b, c, d := left.A, left.B, left.C, left.D
	e, f, g, h := right.A, right.B, right.C, right.D
	return Transform{
		A: a*e + b*g, B: a*f + b*h,
		C: c*e + d*g, D: c*f + d*h,
	}.normalized()
}

// Inverse returns the matrix inverse. A zero determinant is an ErrAlgebra.
func (Tool) Inverse(t Transform) (Transform, error) {
	det := t.Det()
	if det == 0 {
		return Transform{}, fmt.Errorf("%w: Möbius matrix has zero determinant", posteuclid.ErrAlgebra)
	}
	inv := 1 / det
	return Transform{
		A: t.D * inv, B: -t.B * inv,
		C: -t.C * inv, D: t.A * inv,
	}, nil
}

// AlmostEqual compares two transforms entrywise.
func AlmostEqual(s, t Transform, tol float64) bool {
	return cmplx.Abs(s.A-t.A) <= tol && cmplx.Abs(s.B-t.B) <= tol &&
		cmplx.Abs(s.C-t.C) <= tol && cmplx.Abs(s.D-t.D) <= tol
}

// Distance returns the hyperbolic distance between two disk points.
func Distance(p, q Point) float64 {
	z, w := p.Complex(), q.Complex()
	return 2 * math.Atanh(cmplx.Abs(z-w)/cmplx.Abs(1-cmplx.Conj(z)*w))
}
