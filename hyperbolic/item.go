package hyperbolic

// PointKey is a dense handle into a Scene's point arena. Keys are only
// meaningful for the scene that issued them.
type PointKey int

// Item is something drawn by the scene. It stores point keys, never
// coordinates. The set is closed: PointItem and SegmentItem.
type Item interface {
	// Keys lists the points the item depends on.
	Keys() []PointKey
	item()
}

// PointItem draws a single scene point.
type PointItem struct {
	Key PointKey
}

func (i PointItem) Keys() []PointKey { return []PointKey{i.Key} }
func (PointItem) item()              {}

// SegmentItem draws the geodesic segment between two scene points.
type SegmentItem struct {
	P0, P1 PointKey
}

func (i SegmentItem) Keys() []PointKey { return []PointKey{i.P0, i.P1} }
func (SegmentItem) item()              {}
