// Package hyperbolic defines the capability interface every hyperbolic
// model implements and the Scene that stores points in canonical form and
// applies an accumulated view transform on demand.
package hyperbolic

import "github.com/dyed-eye/posteuclid/euclid"

// TransformTool is the isometry algebra of a model. T is opaque to callers:
// it is only composed, inverted and handed back to the model's entities.
type TransformTool[T any] interface {
	// Identity returns the group identity.
	Identity() T

	// TranslationLike returns a translation generator. How (dx, dy) maps to
	// a displacement is model specific.
	TranslationLike(dx, dy float64) T

	// RotationLike returns a rotation about the model origin, counter-clockwise
	// as seen in the Poincaré disk.
	RotationLike(angle float64) T

	// DiskTranslation returns the translation carrying the origin onto the
	// Poincaré disk point p. It fails unless |p| < 1.
	DiskTranslation(p euclid.Point) (T, error)

	// Compose returns left ∘ right: right is applied first.
	Compose(left, right T) T

	// Inverse returns t⁻¹, or an error wrapping posteuclid.ErrAlgebra.
	Inverse(t T) (T, error)
}

// Point is a model-native point. Transform returns a new point; the
// receiver is never modified.
type Point[T, P any] interface {
	Transform(t T) (P, error)
	Euclidean() euclid.Point
}

// Segment is a model-native geodesic segment between two points.
type Segment[T, S any] interface {
	Transform(t T) (S, error)
	Euclidean() (euclid.Entity, error)
}

// EntityFactory creates model-native entities.
type EntityFactory[P, S any] interface {
	// NewPoint returns the model origin.
	NewPoint() P
	NewSegment(p0, p1 P) S
}

// Model bundles a transform algebra with an entity factory.
type Model[T any, P Point[T, P], S Segment[T, S]] interface {
	Transforms() TransformTool[T]
	Factory() EntityFactory[P, S]
}
