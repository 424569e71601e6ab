package weierstrass

import (
	"errors"
	"math"
	"testing"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/poincare"
)

const tol = 1e-9

func onHyperboloid(p Point) bool {
	return math.Abs(p.X*p.X-p.Y*p.Y-p.Z*p.Z-1) < 1e-9 && p.X > 0
}

func TestInverseComposesToIdentity(t *testing.T) {
	var tool Tool
	transforms := map[string]Transform{
		"identity":    tool.Identity(),
		"translation": tool.TranslationLike(0.7, -1.2),
		"rotation":    tool.RotationLike(2.5),
		"composite":   tool.Compose(tool.TranslationLike(-0.3, 0.4), tool.RotationLike(0.9)),
	}
	points := []Point{NewPoint(0, 0), NewPoint(1, -2), NewPoint(-0.5, 0.25)}
	for name, tr := range transforms {
		t.Run(name, func(t *testing.T) {
			inv, err := tool.Inverse(tr)
			if err != nil {
				t.Fatalf("Inverse: %v", err)
			}
			if got := tool.Compose(inv, tr); !AlmostEqual(got, tool.Identity(), tol) {
				t.Errorf("inverse ∘ T = %v, want identity", got)
			}
			for _, p := range points {
				moved, err := p.Transform(tr)
				if err != nil {
					t.Fatal(err)
				}
				if !onHyperboloid(moved) {
					t.Errorf("%v left the hyperboloid", moved)
				}
				back, err := moved.Transform(inv)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(back.Y-p.Y) > tol || math.Abs(back.Z-p.Z) > tol {
					t.Errorf("round trip of %v = %v", p, back)
				}
			}
		})
	}
}

func TestInverseRejectsSingular(t *testing.T) {
	var tool Tool
	if _, err := tool.Inverse(Transform{}); !errors.Is(err, posteuclid.ErrAlgebra) {
		t.Errorf("Inverse(zero) error = %v, want ErrAlgebra", err)
	}
}

func TestTransformRejectsNonIsometry(t *testing.T) {
	stretch := Transform{
		{2, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	_, err := Point{X: 1}.Transform(stretch)
	if !errors.Is(err, posteuclid.ErrConsistency) {
		t.Errorf("Transform(stretch) error = %v, want ErrConsistency", err)
	}
}

func TestTranslationDistance(t *testing.T) {
	var tool Tool
	origin := Factory{}.NewPoint()
	moved, err := origin.Transform(tool.TranslationLike(0.6, 0.8))
	if err != nil {
		t.Fatal(err)
	}
	if d := Distance(origin, moved); math.Abs(d-1) > tol {
		t.Errorf("translation by hypot 1 moved the origin %v", d)
	}
	dir := moved.Euclidean()
	if math.Abs(dir.Angle()-math.Atan2(0.8, 0.6)) > tol {
		t.Errorf("translation went towards angle %v, want %v", dir.Angle(), math.Atan2(0.8, 0.6))
	}
}

// The two models must agree once projected into the disk.
func TestAgreesWithPoincare(t *testing.T) {
	var wt Tool
	var pt poincare.Tool
	target := euclid.Pt(0.3, -0.45)

	wTr, err := wt.DiskTranslation(target)
	if err != nil {
		t.Fatal(err)
	}
	pTr, err := pt.DiskTranslation(target)
	if err != nil {
		t.Fatal(err)
	}
	wTr = wt.Compose(wt.RotationLike(0.7), wTr)
	pTr = pt.Compose(pt.RotationLike(0.7), pTr)

	for _, q := range []poincare.Point{{}, {X: 0.2, Y: 0.1}, {X: -0.6, Y: 0.5}} {
		w, err := FromPoincare(q)
		if err != nil {
			t.Fatal(err)
		}
		wMoved, err := w.Transform(wTr)
		if err != nil {
			t.Fatal(err)
		}
		pMoved, err := q.Transform(pTr)
		if err != nil {
			t.Fatal(err)
		}
		if !wMoved.Euclidean().AlmostEquals(pMoved.Euclidean()) {
			t.Errorf("image of %v: hyperboloid %v, disk %v", q, wMoved.Euclidean(), pMoved.Euclidean())
		}
	}
}

func TestFromPoincareRoundTrip(t *testing.T) {
	q := poincare.Point{X: -0.4, Y: 0.7}
	w, err := FromPoincare(q)
	if err != nil {
		t.Fatal(err)
	}
	if !onHyperboloid(w) {
		t.Errorf("%v not on the hyperboloid", w)
	}
	if back := w.Poincare(); math.Abs(back.X-q.X) > tol || math.Abs(back.Y-q.Y) > tol {
		t.Errorf("round trip = %v, want %v", back, q)
	}
	if _, err := FromPoincare(poincare.Point{X: 1}); !errors.Is(err, posteuclid.ErrConstruction) {
		t.Errorf("FromPoincare(boundary) error = %v, want ErrConstruction", err)
	}
	if d, want := Distance(NewPoint(0, 0), w), poincare.Distance(poincare.Point{}, q); math.Abs(d-want) > tol {
		t.Errorf("distance %v, disk distance %v", d, want)
	}
}

func TestSegmentProjectsThroughPoincare(t *testing.T) {
	a, _ := FromPoincare(poincare.Point{X: 0.5, Y: 0.1})
	b, _ := FromPoincare(poincare.Point{X: -0.2, Y: 0.6})
	got, err := Segment{a, b}.Euclidean()
	if err != nil {
		t.Fatal(err)
	}
	want, err := poincare.Segment{P0: a.Poincare(), P1: b.Poincare()}.Euclidean()
	if err != nil {
		t.Fatal(err)
	}
	ga, ok1 := got.(euclid.CircleArc)
	wa, ok2 := want.(euclid.CircleArc)
	if !ok1 || !ok2 {
		t.Fatalf("got %T and %T, want arcs", got, want)
	}
	if !ga.Circle.Center.AlmostEquals(wa.Circle.Center) || math.Abs(ga.Span()-wa.Span()) > 1e-8 {
		t.Errorf("arc %+v, want %+v", ga, wa)
	}
}
