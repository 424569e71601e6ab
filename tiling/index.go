package tiling

import (
	"math"

	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/hyperbolic"
	"github.com/dyed-eye/posteuclid/poincare"
)

// pointIndex merges points that lie within tol of each other in the
// hyperbolic metric. Points are bucketed by rounding their polar
// coordinates about the disk center: the distance to the origin in rings
// 2·tol wide, and the angle in sectors no narrower than the angle a
// tol-ball subtends at the inner edge of the ring. Any point within tol
// of a candidate then sits in the candidate's cell or a neighbouring one,
// however much Euclidean precision the disk has lost near its boundary.
type pointIndex struct {
	tol   float64
	width float64
	cells map[cell][]indexed
	n     int
}

type cell struct {
	ring, sector int
}

type indexed struct {
	key hyperbolic.PointKey
	p   poincare.Point
}

func newPointIndex(tol float64) *pointIndex {
	return &pointIndex{
		tol:   tol,
		width: 2 * tol,
		cells: make(map[cell][]indexed),
	}
}

func (ix *pointIndex) Len() int {
	return ix.n
}

// sectors returns how many sectors ring is split into.
func (ix *pointIndex) sectors(ring int) int {
	inner := float64(ring-1) * ix.width
	if inner <= ix.tol {
		return 1
	}
	half := math.Asin(math.Min(1, math.Sinh(ix.tol)/math.Sinh(inner)))
	n := math.Floor(2 * math.Pi / half)
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	return max(1, int(n))
}

func (ix *pointIndex) polar(p euclid.Point) (ring int, theta float64) {
	r := math.Min(p.Magnitude(), math.Nextafter(1, 0))
	ring = int(math.Floor(2 * math.Atanh(r) / ix.width))
	theta = math.Atan2(p.Y, p.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return ring, theta
}

func sector(theta float64, n int) int {
	s := int(math.Floor(theta / (2 * math.Pi) * float64(n)))
	return ((s % n) + n) % n
}

// Find returns the key of the stored point nearest to p, provided it lies
// within the tolerance.
func (ix *pointIndex) Find(p euclid.Point) (hyperbolic.PointKey, bool) {
	q := poincare.Point{X: p.X, Y: p.Y}
	ring, theta := ix.polar(p)
	var (
		best  hyperbolic.PointKey
		found bool
		dmin  = ix.tol
	)
	for r := max(0, ring-1); r <= ring+1; r++ {
		n := ix.sectors(r)
		s := sector(theta, n)
		seen := [3]int{-1, -1, -1}
		for i, ds := range [3]int{0, -1, 1} {
			c := ((s+ds)%n + n) % n
			if c == seen[0] || c == seen[1] {
				continue
			}
			seen[i] = c
			for _, e := range ix.cells[cell{r, c}] {
				if d := poincare.Distance(q, e.p); d <= dmin {
					best, dmin, found = e.key, d, true
				}
			}
		}
	}
	return best, found
}

// Insert stores p under key without checking for neighbours.
func (ix *pointIndex) Insert(key hyperbolic.PointKey, p euclid.Point) {
	ring, theta := ix.polar(p)
	c := cell{ring, sector(theta, ix.sectors(ring))}
	ix.cells[c] = append(ix.cells[c], indexed{key, poincare.Point{X: p.X, Y: p.Y}})
	ix.n++
}
