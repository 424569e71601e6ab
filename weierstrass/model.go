package weierstrass

import "github.com/dyed-eye/posteuclid/hyperbolic"

type Factory struct{}

// NewPoint returns the apex (1, 0, 0).
func (Factory) NewPoint() Point {
	return Point{X: 1}
}

func (Factory) NewSegment(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Model is the Weierstrass hyperboloid model.
type Model struct{}

func (Model) Transforms() hyperbolic.TransformTool[Transform] {
	return Tool{}
}

func (Model) Factory() hyperbolic.EntityFactory[Point, Segment] {
	return Factory{}
}

type Scene = hyperbolic.Scene[Transform, Point, Segment]

// NewScene returns an empty hyperboloid scene.
func NewScene() *Scene {
	return hyperbolic.NewScene[Transform, Point, Segment](Model{})
}
