package euclid

// Entity is a renderable Euclidean primitive. The set is closed: Point,
// Line, Circle, CircleArc and LineSegment. Renderers dispatch with a type
// switch.
type Entity interface {
	entity()
}

func (Point) entity()       {}
func (Line) entity()        {}
func (Circle) entity()      {}
func (CircleArc) entity()   {}
func (LineSegment) entity() {}
