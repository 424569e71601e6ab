package poincare

import "github.com/dyed-eye/posteuclid/hyperbolic"

// Factory creates disk entities.
type Factory struct{}

// NewPoint returns the disk center.
func (Factory) NewPoint() Point {
	return Point{}
}

func (Factory) NewSegment(p0, p1 Point) Segment {
	return Segment{P0: p0, P1: p1}
}

// Model is the Poincaré disk model.
type Model struct{}

func (Model) Transforms() hyperbolic.TransformTool[Transform] {
	return Tool{}
}

func (Model) Factory() hyperbolic.EntityFactory[Point, Segment] {
	return Factory{}
}

// Scene is a scene over the Poincaré disk.
type Scene = hyperbolic.Scene[Transform, Point, Segment]

// NewScene returns an empty Poincaré scene.
func NewScene() *Scene {
	return hyperbolic.NewScene[Transform, Point, Segment](Model{})
}
