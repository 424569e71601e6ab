package coords

import (
	"errors"
	"math"
	"testing"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/poincare"
)

const tol = 1e-9

func TestPolarAxialRoundTrip(t *testing.T) {
	for _, p := range []Polar{{0.5, 0.3}, {1.7, -2.0}, {0.1, math.Pi / 2}, {2.2, 3}} {
		got := p.Axial().Polar()
		if math.Abs(got.R-p.R) > tol || math.Abs(got.Theta-p.Theta) > tol {
			t.Errorf("round trip of %+v = %+v", p, got)
		}
	}
}

func TestAxialBeltramiPoincareMatchesPolar(t *testing.T) {
	p := Polar{R: 1.3, Theta: 0.8}
	b, err := p.Axial().Beltrami()
	if err != nil {
		t.Fatal(err)
	}
	if got := math.Hypot(b.X, b.Y); math.Abs(got-math.Tanh(p.R)) > tol {
		t.Errorf("Klein radius %v, want tanh(R) = %v", got, math.Tanh(p.R))
	}
	q, err := b.Poincare()
	if err != nil {
		t.Fatal(err)
	}
	want := p.Poincare()
	if math.Abs(q.X-want.X) > tol || math.Abs(q.Y-want.Y) > tol {
		t.Errorf("Beltrami → Poincaré = %+v, direct = %+v", q, want)
	}
	back, err := BeltramiFromPoincare(q)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back.X-b.X) > tol || math.Abs(back.Y-b.Y) > tol {
		t.Errorf("Poincaré → Beltrami = %+v, want %+v", back, b)
	}
}

func TestBeltramiRejectsOutsideDisk(t *testing.T) {
	if _, err := NewBeltrami(0.9, 0.9); !errors.Is(err, posteuclid.ErrConstruction) {
		t.Errorf("NewBeltrami(0.9, 0.9) error = %v, want ErrConstruction", err)
	}
	a := Axial{X: 2, Y: 2}
	if a.Valid() {
		t.Errorf("%+v reported valid", a)
	}
	if _, err := a.Beltrami(); !errors.Is(err, posteuclid.ErrConstruction) {
		t.Errorf("Axial%+v.Beltrami() error = %v, want ErrConstruction", a, err)
	}
}

func TestPolarDistance(t *testing.T) {
	p := Polar{R: 1, Theta: 0}
	q := Polar{R: 1, Theta: math.Pi}
	if got := p.Distance(q); math.Abs(got-2) > tol {
		t.Errorf("opposite points distance %v, want 2", got)
	}
	if got := p.Distance(p); got > tol {
		t.Errorf("self distance %v, want 0", got)
	}
	a, b := p.Poincare(), Polar{R: 0.7, Theta: 1.2}.Poincare()
	if want := poincare.Distance(a, b); math.Abs(p.Distance(Polar{R: 0.7, Theta: 1.2})-want) > tol {
		t.Errorf("law of cosines disagrees with disk distance %v", want)
	}
}

func TestPolarAdd(t *testing.T) {
	tests := []struct {
		name string
		p, q Polar
		want Polar
	}{
		{"same direction adds radii", Polar{0.5, 1}, Polar{0.75, 1}, Polar{1.25, 1}},
		{"opposite direction subtracts", Polar{1.5, 0}, Polar{0.5, math.Pi}, Polar{1, 0}},
		{"zero is neutral", Polar{0, 0}, Polar{0.9, -0.4}, Polar{0.9, -0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Add(tt.q)
			if math.Abs(got.R-tt.want.R) > tol || math.Abs(got.Theta-tt.want.Theta) > tol {
				t.Errorf("%+v ⊕ %+v = %+v, want %+v", tt.p, tt.q, got, tt.want)
			}
		})
	}

	// Off-axis: the radius must match the disk image of q under the translation to p.
	p, q := Polar{R: 0.8, Theta: 0.3}, Polar{R: 1.1, Theta: 2.0}
	var tool poincare.Tool
	pp := p.Poincare()
	tr := tool.TranslationLike(pp.X, pp.Y)
	img, err := q.Poincare().Transform(tr)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Add(q)
	if want := poincare.Distance(poincare.Point{}, img); math.Abs(got.R-want) > tol {
		t.Errorf("R = %v, want %v", got.R, want)
	}
	if want := math.Atan2(img.Y, img.X); math.Abs(got.Theta-want) > tol {
		t.Errorf("Theta = %v, want %v", got.Theta, want)
	}
}

func TestAxialArithmetic(t *testing.T) {
	a, b := Axial{0.2, -0.1}, Axial{0.05, 0.3}
	if got := a.Add(b).Sub(b); math.Abs(got.X-a.X) > tol || math.Abs(got.Y-a.Y) > tol {
		t.Errorf("(a + b) − b = %+v, want %+v", got, a)
	}
}
