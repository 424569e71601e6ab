package hyperbolic

import (
	"fmt"
	"iter"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
)

// Scene holds points in canonical (untransformed) storage, the items that
// reference them, and one accumulated view transform.
//
// Points are read through the current transform; canonical storage is
// never rewritten. A Scene is not safe for concurrent mutation.
type Scene[T any, P Point[T, P], S Segment[T, S]] struct {
	model     Model[T, P, S]
	tool      TransformTool[T]
	points    []P
	items     []Item
	transform T
}

// NewScene returns an empty scene with an identity view transform.
func NewScene[T any, P Point[T, P], S Segment[T, S]](model Model[T, P, S]) *Scene[T, P, S] {
	tool := model.Transforms()
	return &Scene[T, P, S]{
		model:     model,
		tool:      tool,
		transform: tool.Identity(),
	}
}

func (s *Scene[T, P, S]) Model() Model[T, P, S] {
	return s.model
}

// Transform returns the accumulated view transform.
func (s *Scene[T, P, S]) Transform() T {
	return s.transform
}

// SetTransform replaces the accumulated view transform.
func (s *Scene[T, P, S]) SetTransform(t T) {
	s.transform = t
}

// Apply left-composes t onto the view: current ← t ∘ current.
func (s *Scene[T, P, S]) Apply(t T) {
	s.transform = s.tool.Compose(t, s.transform)
}

// Translate left-composes a translation generator onto the view.
func (s *Scene[T, P, S]) Translate(dx, dy float64) {
	s.Apply(s.tool.TranslationLike(dx, dy))
}

// TranslateDisk left-composes the translation carrying the origin onto the
// disk point p.
func (s *Scene[T, P, S]) TranslateDisk(p euclid.Point) error {
	t, err := s.tool.DiskTranslation(p)
	if err != nil {
		return err
	}
	s.Apply(t)
	return nil
}

// Rotate left-composes a rotation about the origin onto the view.
func (s *Scene[T, P, S]) Rotate(angle float64) {
	s.Apply(s.tool.RotationLike(angle))
}

// Checkpoint restores a saved view transform. Restore is idempotent, so it
// can be deferred and also called early.
type Checkpoint struct {
	restore func()
	done    bool
}

func (c *Checkpoint) Restore() {
	if c.done {
		return
	}
	c.done = true
	c.restore()
}

// Push saves the current view transform. The returned checkpoint puts it
// back:
//
//	defer scene.Push().Restore()
func (s *Scene[T, P, S]) Push() *Checkpoint {
	saved := s.transform
	return &Checkpoint{restore: func() { s.transform = saved }}
}

// OriginPreimage returns the canonical point that the current view maps
// onto the model origin.
func (s *Scene[T, P, S]) OriginPreimage() (P, error) {
	var zero P
	inv, err := s.tool.Inverse(s.transform)
	if err != nil {
		return zero, err
	}
	return s.model.Factory().NewPoint().Transform(inv)
}

// AddPoint stores p as given, in canonical form, and returns its key.
func (s *Scene[T, P, S]) AddPoint(p P) PointKey {
	s.points = append(s.points, p)
	return PointKey(len(s.points) - 1)
}

// CreatePointReference stores a point at the current view origin. Reading
// it back through the same view yields the origin; later view changes move
// it like every other point.
func (s *Scene[T, P, S]) CreatePointReference() (PointKey, error) {
	p, err := s.OriginPreimage()
	if err != nil {
		return 0, err
	}
	return s.AddPoint(p), nil
}

// CanonicalValue returns the stored point without the view transform.
func (s *Scene[T, P, S]) CanonicalValue(key PointKey) (P, error) {
	var zero P
	if !s.has(key) {
		return zero, fmt.Errorf("%w: point key %d", posteuclid.ErrReference, key)
	}
	return s.points[key], nil
}

// PointValue returns the point seen through the current view transform.
func (s *Scene[T, P, S]) PointValue(key PointKey) (P, error) {
	p, err := s.CanonicalValue(key)
	if err != nil {
		return p, err
	}
	return p.Transform(s.transform)
}

func (s *Scene[T, P, S]) has(key PointKey) bool {
	return key >= 0 && int(key) < len(s.points)
}

// AddItem appends item after checking that every key it references exists.
func (s *Scene[T, P, S]) AddItem(item Item) error {
	for _, k := range item.Keys() {
		if !s.has(k) {
			posteuclid.Logger().Debug("scene: rejected item", "key", int(k), "points", len(s.points))
			return fmt.Errorf("%w: item references point key %d outside the scene", posteuclid.ErrReference, k)
		}
	}
	s.items = append(s.items, item)
	return nil
}

// NumPoints returns the number of stored points.
func (s *Scene[T, P, S]) NumPoints() int {
	return len(s.points)
}

// Items returns a copy of the item list.
func (s *Scene[T, P, S]) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Renderables yields the Euclidean representation of every item, resolved
// through the current view. The sequence can be ranged over repeatedly;
// each pass reflects the view at that time.
func (s *Scene[T, P, S]) Renderables() iter.Seq2[euclid.Entity, error] {
	return func(yield func(euclid.Entity, error) bool) {
		for _, item := range s.items {
			if !yield(s.resolve(item)) {
				return
			}
		}
	}
}

func (s *Scene[T, P, S]) resolve(item Item) (euclid.Entity, error) {
	switch it := item.(type) {
	case PointItem:
		p, err := s.PointValue(it.Key)
		if err != nil {
			return nil, err
		}
		return p.Euclidean(), nil
	case SegmentItem:
		p0, err := s.PointValue(it.P0)
		if err != nil {
			return nil, err
		}
		p1, err := s.PointValue(it.P1)
		if err != nil {
			return nil, err
		}
		return s.model.Factory().NewSegment(p0, p1).Euclidean()
	}
	return nil, fmt.Errorf("%w: unknown item %T", posteuclid.ErrReference, item)
}
