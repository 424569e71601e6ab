package posteuclid

import "errors"

// Error categories. Geometry, scene and tiling failures wrap exactly one of
// these, so callers can classify them with errors.Is. I/O errors from the
// renderers carry context but no category.
var (
	// ErrConstruction reports degenerate geometric input: a zero-length
	// direction, an out-of-range angle, a coordinate outside a model's valid
	// region, or a malformed polygon.
	ErrConstruction = errors.New("posteuclid: invalid construction")

	// ErrAlgebra reports a transform that cannot be inverted.
	ErrAlgebra = errors.New("posteuclid: non-invertible transform")

	// ErrConsistency reports a numerical invariant that no longer holds,
	// such as hyperboloid drift or an arc wider than a half turn.
	ErrConsistency = errors.New("posteuclid: consistency check failed")

	// ErrReference reports a lookup of something that does not exist yet:
	// an unknown point key or an edge not attached to a polygon.
	ErrReference = errors.New("posteuclid: unknown reference")
)
