package tiling

import (
	"fmt"
	"slices"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/hyperbolic"
)

// TransformKind selects how an EdgeTransform derives a neighbouring polygon.
type TransformKind int

const (
	// Mirror reflects the polygon across the edge. The edge endpoints are
	// reused, every other vertex is new.
	Mirror TransformKind = iota
	// Rotation turns the polygon about the edge's start vertex by a fixed
	// angle. Only the start vertex is reused.
	Rotation
)

func (k TransformKind) String() string {
	switch k {
	case Mirror:
		return "mirror"
	case Rotation:
		return "rotation"
	}
	return fmt.Sprintf("TransformKind(%d)", int(k))
}

// EdgeTransform derives a new polygon from a polygon and one of its edges.
type EdgeTransform struct {
	Kind  TransformKind
	Angle float64 // Rotation only
}

// MirrorTransform reflects across the edge.
func MirrorTransform() EdgeTransform {
	return EdgeTransform{Kind: Mirror}
}

// RotationTransform rotates about the edge start by angle.
func RotationTransform(angle float64) EdgeTransform {
	return EdgeTransform{Kind: Rotation, Angle: angle}
}

// PolygonEdge is a directed edge between two scene points. A redundant edge
// is already shared with a generated neighbour and is never expanded.
type PolygonEdge struct {
	P0, P1     hyperbolic.PointKey
	Redundant  bool
	Transforms []EdgeTransform

	polygon *Polygon
}

// NewPolygonEdge rejects edges whose endpoints coincide.
func NewPolygonEdge(p0, p1 hyperbolic.PointKey, redundant bool, transforms ...EdgeTransform) (*PolygonEdge, error) {
	if p0 == p1 {
		return nil, fmt.Errorf("%w: edge endpoints must be distinct (point %d)", posteuclid.ErrConstruction, p0)
	}
	return &PolygonEdge{
		P0:         p0,
		P1:         p1,
		Redundant:  redundant,
		Transforms: slices.Clone(transforms),
	}, nil
}

// Polygon returns the polygon the edge belongs to.
func (e *PolygonEdge) Polygon() (*Polygon, error) {
	if e.polygon == nil {
		return nil, fmt.Errorf("%w: edge %d→%d is not attached to a polygon", posteuclid.ErrReference, e.P0, e.P1)
	}
	return e.polygon, nil
}

// ConnectsTo reports whether next starts where e ends.
func (e *PolygonEdge) ConnectsTo(next *PolygonEdge) bool {
	return e.P1 == next.P0
}

// Polygon is a closed cycle of edges: edge i ends where edge i+1 starts.
type Polygon struct {
	edges []*PolygonEdge
}

// NewPolygon checks the cyclic invariant and attaches every edge to the
// new polygon. An edge can belong to one polygon only.
func NewPolygon(edges ...*PolygonEdge) (*Polygon, error) {
	if len(edges) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 edges, got %d", posteuclid.ErrConstruction, len(edges))
	}
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if !e.ConnectsTo(next) {
			return nil, fmt.Errorf("%w: edge %d ends at %d but edge %d starts at %d",
				posteuclid.ErrConstruction, i, e.P1, (i+1)%len(edges), next.P0)
		}
		if e.polygon != nil {
			return nil, fmt.Errorf("%w: edge %d→%d already belongs to a polygon", posteuclid.ErrConstruction, e.P0, e.P1)
		}
	}
	p := &Polygon{edges: slices.Clone(edges)}
	for _, e := range p.edges {
		e.polygon = p
	}
	return p, nil
}

// Edges returns the edges in cyclic order.
func (p *Polygon) Edges() []*PolygonEdge {
	return slices.Clone(p.edges)
}

// Vertices returns the start point of every edge.
func (p *Polygon) Vertices() []hyperbolic.PointKey {
	keys := make([]hyperbolic.PointKey, len(p.edges))
	for i, e := range p.edges {
		keys[i] = e.P0
	}
	return keys
}

// EdgesFrom returns the edges in cyclic order starting at e.
func (p *Polygon) EdgesFrom(e *PolygonEdge) ([]*PolygonEdge, error) {
	i := slices.Index(p.edges, e)
	if i < 0 {
		return nil, fmt.Errorf("%w: edge %d→%d is not part of this polygon", posteuclid.ErrReference, e.P0, e.P1)
	}
	return append(slices.Clone(p.edges[i:]), p.edges[:i]...), nil
}
