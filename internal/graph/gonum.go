package graph

import (
	"sort"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/iterator"
)

// Graph satisfies gonum's undirected graph interface so gonum encoders can
// consume it directly.
var _ gograph.Undirected = (*Graph)(nil)

// DOTID returns the node name for DOT encoding.
func (n *Node) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer.
func (n *Node) Attributes() []encoding.Attribute { return attributesOf(n.Props) }

// From implements graph.Edge.
func (e *Edge) From() gograph.Node { return e.F }

// To implements graph.Edge.
func (e *Edge) To() gograph.Node { return e.T }

// ReversedEdge implements graph.Edge. The reversed edge shares attributes.
func (e *Edge) ReversedEdge() gograph.Edge { return &Edge{F: e.T, T: e.F, Props: e.Props} }

// Attributes implements encoding.Attributer.
func (e *Edge) Attributes() []encoding.Attribute { return attributesOf(e.Props) }

func attributesOf(props map[string]string) []encoding.Attribute {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]encoding.Attribute, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, encoding.Attribute{Key: k, Value: props[k]})
	}
	return attrs
}

// Node returns the node with the given handle, or nil.
func (g *Graph) Node(id int64) gograph.Node {
	if id < 0 || id >= int64(len(g.nodes)) {
		return nil
	}
	return g.nodes[id]
}

// Nodes returns all nodes.
func (g *Graph) Nodes() gograph.Nodes {
	if len(g.nodes) == 0 {
		return gograph.Empty
	}
	nodes := make([]gograph.Node, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = n
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the neighbours of id. A node with a self-loop is its own neighbour.
func (g *Graph) From(id int64) gograph.Nodes {
	neighbours := g.adj[id]
	if len(neighbours) == 0 {
		return gograph.Empty
	}
	nodes := make([]gograph.Node, 0, len(neighbours))
	for _, n := range neighbours {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether x and y are adjacent.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := g.edges[keyOf(xid, yid)]
	return ok
}

// Edge returns the edge from u to v, or nil.
func (g *Graph) Edge(uid, vid int64) gograph.Edge {
	return g.EdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between x and y oriented from x, or nil.
func (g *Graph) EdgeBetween(xid, yid int64) gograph.Edge {
	e, ok := g.edges[keyOf(xid, yid)]
	if !ok {
		return nil
	}
	if e.F.id != xid {
		return e.ReversedEdge()
	}
	return e
}
