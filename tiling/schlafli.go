// Package tiling builds regular {n,k} tilings of the hyperbolic plane by
// reflecting a fundamental polygon across its edges, recursively, to a
// bounded depth. Generated points and edges are written into a
// hyperbolic.Scene; points whose canonical coordinates land within a
// hyperbolic tolerance of an earlier point are merged into it.
package tiling

import (
	"fmt"
	"math"

	"github.com/dyed-eye/posteuclid"
)

// Schlafli names a regular tiling: N-gons, K meeting at every vertex.
type Schlafli struct {
	N, K int
}

func (s Schlafli) String() string {
	return fmt.Sprintf("{%d,%d}", s.N, s.K)
}

// Hyperbolic reports whether {N,K} tiles the hyperbolic plane, that is
// (N−2)(K−2) > 4.
func (s Schlafli) Hyperbolic() bool {
	return s.N >= 3 && s.K >= 3 && (s.N-2)*(s.K-2) > 4
}

// Radius returns the Poincaré-disk Euclidean distance from the center of
// the fundamental polygon to its vertices:
//
//	sin(π/2 − π/K − π/N) / sqrt(1 − sin²(π/K) − sin²(π/N))
func (s Schlafli) Radius() (float64, error) {
	if !s.Hyperbolic() {
		return 0, fmt.Errorf("%w: %v is not a hyperbolic tiling", posteuclid.ErrConstruction, s)
	}
	a := math.Pi / float64(s.N)
	b := math.Pi / float64(s.K)
	sinA, sinB := math.Sin(a), math.Sin(b)
	return math.Sin(math.Pi/2-b-a) / math.Sqrt(1-sinB*sinB-sinA*sinA), nil
}

// VertexAngle returns the interior angle 2π/K of every polygon corner.
func (s Schlafli) VertexAngle() float64 {
	return 2 * math.Pi / float64(s.K)
}

// EdgeLength returns the hyperbolic length of every polygon side, from the
// circumradius R = 2·atanh(Radius) and sinh(len/2) = sinh(R)·sin(π/N).
func (s Schlafli) EdgeLength() (float64, error) {
	r, err := s.Radius()
	if err != nil {
		return 0, err
	}
	circum := 2 * math.Atanh(r)
	return 2 * math.Asinh(math.Sinh(circum)*math.Sin(math.Pi/float64(s.N))), nil
}
