package tiling

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/hyperbolic"
)

// DefaultToleranceFraction is the share of the tiling's edge length under
// which two points are merged when no tolerance is configured. Distinct
// vertices of a regular tiling are never closer than one edge.
const DefaultToleranceFraction = 1.0 / 16

type options struct {
	tolerance   float64
	transforms  []EdgeTransform
	vertexItems bool
}

// Option configures a Generator.
type Option func(*options)

// WithTolerance sets the hyperbolic distance below which a new point is
// merged into an existing one. Zero derives it from the edge length of
// the tiling being generated.
func WithTolerance(d float64) Option {
	return func(o *options) {
		o.tolerance = d
	}
}

// WithEdgeTransforms sets the transforms attached to every generated edge.
// The default is a single MirrorTransform.
func WithEdgeTransforms(ts ...EdgeTransform) Option {
	return func(o *options) {
		o.transforms = ts
	}
}

// WithVertexItems adds a PointItem to the scene for every new point.
func WithVertexItems(on bool) Option {
	return func(o *options) {
		o.vertexItems = on
	}
}

type edgeKey struct {
	lo, hi hyperbolic.PointKey
}

func newEdgeKey(p0, p1 hyperbolic.PointKey) edgeKey {
	if p1 < p0 {
		p0, p1 = p1, p0
	}
	return edgeKey{p0, p1}
}

// Generator writes a tiling into a scene. Every geometric step runs on the
// scene's view transform inside a Push/Restore pair, so the view is
// unchanged once a call returns.
//
// A Generator is not safe for concurrent use.
type Generator[T any, P hyperbolic.Point[T, P], S hyperbolic.Segment[T, S]] struct {
	scene *hyperbolic.Scene[T, P, S]
	opts  options

	points   *pointIndex
	edges    map[edgeKey]struct{}
	expanded map[expansionKey]int
}

// expansionKey names one transform applied across one edge of one polygon.
// Polygons reached along different branches compare equal by vertex set.
type expansionKey struct {
	polygon   string
	p0, p1    hyperbolic.PointKey
	transform int
}

func NewGenerator[T any, P hyperbolic.Point[T, P], S hyperbolic.Segment[T, S]](
	scene *hyperbolic.Scene[T, P, S], opts ...Option,
) (*Generator[T, P, S], error) {
	o := options{
		transforms: []EdgeTransform{MirrorTransform()},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !(o.tolerance >= 0) || math.IsInf(o.tolerance, 0) {
		return nil, fmt.Errorf("%w: tolerance %g must be finite and non-negative", posteuclid.ErrConstruction, o.tolerance)
	}
	g := &Generator[T, P, S]{
		scene:    scene,
		opts:     o,
		edges:    make(map[edgeKey]struct{}),
		expanded: make(map[expansionKey]int),
	}
	if o.tolerance > 0 {
		g.points = newPointIndex(o.tolerance)
	}
	return g, nil
}

func (g *Generator[T, P, S]) Scene() *hyperbolic.Scene[T, P, S] {
	return g.scene
}

// NumPoints returns the number of distinct points created so far.
func (g *Generator[T, P, S]) NumPoints() int {
	if g.points == nil {
		return 0
	}
	return g.points.Len()
}

// Tolerance returns the merge distance in use, or zero before the first
// polygon fixed it.
func (g *Generator[T, P, S]) Tolerance() float64 {
	if g.points == nil {
		return 0
	}
	return g.points.tol
}

// Match returns the existing point within the merge tolerance of the disk
// point p, if there is one.
func (g *Generator[T, P, S]) Match(p euclid.Point) (hyperbolic.PointKey, bool) {
	if g.points == nil {
		return 0, false
	}
	return g.points.Find(p)
}

// NumEdges returns the number of distinct undirected edges created so far.
func (g *Generator[T, P, S]) NumEdges() int {
	return len(g.edges)
}

// Tiling is the result of Generate.
type Tiling struct {
	Schlafli    Schlafli
	Fundamental *Polygon
	Roots       []*SpanningTreeNode
}

// Walk visits every node of every root tree.
func (t *Tiling) Walk(fn func(*SpanningTreeNode)) {
	for _, r := range t.Roots {
		r.Walk(fn)
	}
}

// Generate builds the fundamental polygon of s and expands one spanning
// tree per fundamental edge to the given depth. Depth 0 yields only the
// fundamental polygon. A tiling of depth d covers every polygon of the
// tiling of depth d−1.
//
// On error the scene keeps the points and items created before the
// failing step; the view transform is restored.
func (g *Generator[T, P, S]) Generate(s Schlafli, depth int) (*Tiling, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: negative depth %d", posteuclid.ErrConstruction, depth)
	}
	fundamental, err := g.FundamentalPolygon(s)
	if err != nil {
		return nil, err
	}
	t := &Tiling{Schlafli: s, Fundamental: fundamental}
	for _, e := range fundamental.Edges() {
		root := newNode(nil, e)
		if err := g.Expand(root, depth); err != nil {
			return nil, err
		}
		t.Roots = append(t.Roots, root)
	}
	redundant := 0
	t.Walk(func(n *SpanningTreeNode) {
		if n.edge.Redundant {
			redundant++
		}
	})
	posteuclid.Logger().Info("tiling: generated",
		"schlafli", s.String(), "depth", depth,
		"points", g.NumPoints(), "edges", g.NumEdges(), "redundant_edges", redundant)
	return t, nil
}

// FundamentalPolygon creates the N vertices of the centered polygon
// at the Schläfli radius and connects them in order. The first call fixes
// the merge tolerance when none was configured.
func (g *Generator[T, P, S]) FundamentalPolygon(s Schlafli) (*Polygon, error) {
	radius, err := s.Radius()
	if err != nil {
		return nil, err
	}
	if g.points == nil {
		side, err := s.EdgeLength()
		if err != nil {
			return nil, err
		}
		g.points = newPointIndex(side * DefaultToleranceFraction)
	}
	keys := make([]hyperbolic.PointKey, s.N)
	for i := range s.N {
		keys[i], err = g.vertex(2*math.Pi*float64(i)/float64(s.N), radius)
		if err != nil {
			return nil, err
		}
	}
	edges := make([]*PolygonEdge, s.N)
	for i := range s.N {
		edges[i], err = g.newEdge(keys[i], keys[(i+1)%s.N], false)
		if err != nil {
			return nil, err
		}
	}
	return NewPolygon(edges...)
}

func (g *Generator[T, P, S]) vertex(angle, radius float64) (hyperbolic.PointKey, error) {
	defer g.scene.Push().Restore()
	g.scene.Rotate(angle)
	if err := g.scene.TranslateDisk(euclid.Pt(0, radius)); err != nil {
		return 0, err
	}
	return g.createPoint()
}

// Expand applies the transforms of n's edge, creates one child per edge of
// each resulting polygon, and recurses with depth−1. Redundant edges and
// exhausted depth end the recursion. A transform already applied across
// the same polygon edge, with at least as much depth left, is skipped;
// reaching it again with more depth expands it again.
func (g *Generator[T, P, S]) Expand(n *SpanningTreeNode, depth int) error {
	if depth <= 0 || n.edge.Redundant {
		n.state = Generated
		return nil
	}
	if n.state == Unexpanded {
		poly, err := n.edge.Polygon()
		if err != nil {
			return err
		}
		for i, t := range n.edge.Transforms {
			k := newExpansionKey(poly, n.edge, t, i)
			if d, ok := g.expanded[k]; ok && d >= depth {
				continue
			}
			g.expanded[k] = depth
			derived, err := g.Apply(t, n.edge)
			if err != nil {
				return err
			}
			for _, e := range derived.edges {
				n.children = append(n.children, newNode(n, e))
			}
		}
		n.state = Expanded
	}
	for _, c := range n.children {
		if err := g.Expand(c, depth-1); err != nil {
			return err
		}
	}
	n.state = Generated
	return nil
}

// Apply derives the polygon that t produces from edge and its polygon.
func (g *Generator[T, P, S]) Apply(t EdgeTransform, edge *PolygonEdge) (*Polygon, error) {
	if g.points == nil {
		return nil, fmt.Errorf("%w: no fundamental polygon to derive from", posteuclid.ErrConstruction)
	}
	var (
		poly *Polygon
		err  error
	)
	switch t.Kind {
	case Mirror:
		poly, err = g.mirror(edge)
	case Rotation:
		poly, err = g.rotate(edge, t.Angle)
	default:
		return nil, fmt.Errorf("%w: unknown edge transform %v", posteuclid.ErrConstruction, t.Kind)
	}
	if err != nil {
		return nil, err
	}
	posteuclid.Logger().Debug("tiling: polygon derived",
		"transform", t.Kind.String(), "edge_p0", int(edge.P0), "edge_p1", int(edge.P1))
	return poly, nil
}

// mirror keeps edge in place and reflects every other vertex of its
// polygon across the geodesic through edge.
func (g *Generator[T, P, S]) mirror(edge *PolygonEdge) (*Polygon, error) {
	src, err := g.edgesFrom(edge)
	if err != nil {
		return nil, err
	}
	n := len(src)
	out := make([]*PolygonEdge, 0, n)
	for i, e := range src {
		var p0, p1 hyperbolic.PointKey
		switch i {
		case 0:
			p0, p1 = edge.P0, edge.P1
		case n - 1:
			p0, p1 = out[i-1].P1, edge.P0
		default:
			p0 = out[i-1].P1
			if p1, err = g.mirrorPoint(e.P1, edge.P0, edge.P1); err != nil {
				return nil, err
			}
		}
		ne, err := g.newEdge(p0, p1, shares(src, p0, p1))
		if err != nil {
			return nil, err
		}
		out = append(out, ne)
	}
	return NewPolygon(out...)
}

// rotate turns edge's polygon about edge.P0 by angle.
func (g *Generator[T, P, S]) rotate(edge *PolygonEdge, angle float64) (*Polygon, error) {
	src, err := g.edgesFrom(edge)
	if err != nil {
		return nil, err
	}
	n := len(src)
	out := make([]*PolygonEdge, 0, n)
	for i, e := range src {
		p0 := edge.P0
		if i > 0 {
			p0 = out[i-1].P1
		}
		p1 := edge.P0
		if i < n-1 {
			if p1, err = g.rotatePoint(e.P1, edge.P0, angle); err != nil {
				return nil, err
			}
		}
		ne, err := g.newEdge(p0, p1, shares(src, p0, p1))
		if err != nil {
			return nil, err
		}
		out = append(out, ne)
	}
	return NewPolygon(out...)
}

// shares reports whether the undirected edge p0–p1 is one of edges.
func shares(edges []*PolygonEdge, p0, p1 hyperbolic.PointKey) bool {
	k := newEdgeKey(p0, p1)
	for _, e := range edges {
		if newEdgeKey(e.P0, e.P1) == k {
			return true
		}
	}
	return false
}

func newExpansionKey(poly *Polygon, edge *PolygonEdge, t EdgeTransform, i int) expansionKey {
	vs := poly.Vertices()
	slices.Sort(vs)
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(strconv.Itoa(int(v)))
		b.WriteByte(',')
	}
	k := expansionKey{polygon: b.String(), p0: edge.P0, p1: edge.P1, transform: i}
	if t.Kind == Mirror && k.p1 < k.p0 {
		k.p0, k.p1 = k.p1, k.p0
	}
	return k
}

func (g *Generator[T, P, S]) edgesFrom(edge *PolygonEdge) ([]*PolygonEdge, error) {
	poly, err := edge.Polygon()
	if err != nil {
		return nil, err
	}
	return poly.EdgesFrom(edge)
}

// mirrorPoint reflects p across the geodesic through p0 and p1. The view
// is moved so that p0 sits at the origin and p1 on the positive x axis;
// there the reflection is y ↦ −y.
func (g *Generator[T, P, S]) mirrorPoint(p, p0, p1 hyperbolic.PointKey) (hyperbolic.PointKey, error) {
	defer g.scene.Push().Restore()

	if err := g.center(p0, "mirror base"); err != nil {
		return 0, err
	}
	v1, err := g.view(p1)
	if err != nil {
		return 0, err
	}
	g.scene.Rotate(-v1.Angle())
	if v1, err = g.view(p1); err != nil {
		return 0, err
	}
	if math.Abs(v1.Y) > g.slack() {
		return 0, fmt.Errorf("%w: mirror direction %d left at %v instead of the x axis", posteuclid.ErrConsistency, p1, v1)
	}

	vp, err := g.view(p)
	if err != nil {
		return 0, err
	}
	if err := g.scene.TranslateDisk(euclid.Pt(-vp.X, vp.Y)); err != nil {
		return 0, err
	}
	return g.createPoint()
}

// rotatePoint turns p about center by angle.
func (g *Generator[T, P, S]) rotatePoint(p, center hyperbolic.PointKey, angle float64) (hyperbolic.PointKey, error) {
	defer g.scene.Push().Restore()

	if err := g.center(center, "rotation center"); err != nil {
		return 0, err
	}
	vp, err := g.view(p)
	if err != nil {
		return 0, err
	}
	g.scene.Rotate(-angle)
	if err := g.scene.TranslateDisk(vp.Neg()); err != nil {
		return 0, err
	}
	return g.createPoint()
}

// center moves the view so that key sits at the origin. Far from the
// origin a single translation leaves a rounding residual, so a second one
// removes it before the result is checked.
func (g *Generator[T, P, S]) center(key hyperbolic.PointKey, role string) error {
	for range 2 {
		v, err := g.view(key)
		if err != nil {
			return err
		}
		if v == (euclid.Point{}) {
			break
		}
		if err := g.scene.TranslateDisk(v.Neg()); err != nil {
			return err
		}
	}
	v, err := g.view(key)
	if err != nil {
		return err
	}
	if v.Magnitude() > g.slack() {
		return fmt.Errorf("%w: %s %d left at %v instead of the origin", posteuclid.ErrConsistency, role, key, v)
	}
	return nil
}

// slack is the Euclidean offset from the origin a re-centred point may
// keep. Near the origin that is about half its hyperbolic distance, so a
// quarter of the merge tolerance keeps any such error well inside it.
func (g *Generator[T, P, S]) slack() float64 {
	return g.points.tol / 4
}

func (g *Generator[T, P, S]) view(key hyperbolic.PointKey) (euclid.Point, error) {
	p, err := g.scene.PointValue(key)
	if err != nil {
		return euclid.Point{}, err
	}
	return p.Euclidean(), nil
}

// createPoint stores the point at the current view origin unless an
// existing point lies within the merge tolerance of it, in which case
// that key is returned.
func (g *Generator[T, P, S]) createPoint() (hyperbolic.PointKey, error) {
	candidate, err := g.scene.OriginPreimage()
	if err != nil {
		return 0, err
	}
	c := candidate.Euclidean()
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || c.Magnitude() >= 1 {
		return 0, fmt.Errorf("%w: point at view origin maps to %v, outside the open disk", posteuclid.ErrAlgebra, c)
	}
	if k, ok := g.points.Find(c); ok {
		return k, nil
	}
	k := g.scene.AddPoint(candidate)
	g.points.Insert(k, c)
	if g.opts.vertexItems {
		if err := g.scene.AddItem(hyperbolic.PointItem{Key: k}); err != nil {
			return 0, err
		}
	}
	return k, nil
}

// newEdge builds an edge carrying the configured transforms and adds its
// segment to the scene the first time the undirected edge is seen.
// redundant marks an edge shared with the polygon it was derived from.
func (g *Generator[T, P, S]) newEdge(p0, p1 hyperbolic.PointKey, redundant bool) (*PolygonEdge, error) {
	if err := g.addEdge(p0, p1); err != nil {
		return nil, err
	}
	return NewPolygonEdge(p0, p1, redundant, g.opts.transforms...)
}

func (g *Generator[T, P, S]) addEdge(p0, p1 hyperbolic.PointKey) error {
	if p0 == p1 {
		return fmt.Errorf("%w: degenerate edge at point %d", posteuclid.ErrConstruction, p0)
	}
	key := newEdgeKey(p0, p1)
	if _, ok := g.edges[key]; ok {
		return nil
	}
	if err := g.scene.AddItem(hyperbolic.SegmentItem{P0: p0, P1: p1}); err != nil {
		return err
	}
	g.edges[key] = struct{}{}
	return nil
}
