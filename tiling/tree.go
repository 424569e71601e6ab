package tiling

// NodeState tracks a spanning-tree node through generation.
type NodeState int

const (
	// Unexpanded nodes have no children yet.
	Unexpanded NodeState = iota
	// Expanded nodes have created their children.
	Expanded
	// Generated nodes are finished: depth ran out, the edge is redundant,
	// or every child has been generated.
	Generated
)

func (s NodeState) String() string {
	switch s {
	case Unexpanded:
		return "unexpanded"
	case Expanded:
		return "expanded"
	case Generated:
		return "generated"
	}
	return "unknown"
}

// SpanningTreeNode owns one polygon edge. Expanding it applies the edge's
// transforms and creates one child per edge of each resulting polygon.
// The tree only drives generation; overlap between branches is handled by
// point and edge de-duplication.
type SpanningTreeNode struct {
	parent   *SpanningTreeNode
	edge     *PolygonEdge
	children []*SpanningTreeNode
	state    NodeState
}

func newNode(parent *SpanningTreeNode, edge *PolygonEdge) *SpanningTreeNode {
	return &SpanningTreeNode{parent: parent, edge: edge}
}

func (n *SpanningTreeNode) Edge() *PolygonEdge            { return n.edge }
func (n *SpanningTreeNode) Parent() *SpanningTreeNode     { return n.parent }
func (n *SpanningTreeNode) Children() []*SpanningTreeNode { return n.children }
func (n *SpanningTreeNode) State() NodeState              { return n.state }

// Walk calls fn for n and then for every descendant, depth first.
func (n *SpanningTreeNode) Walk(fn func(*SpanningTreeNode)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
