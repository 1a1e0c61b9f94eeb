package graph

import (
	"sort"
	"strconv"

	"github.com/25smoking/genenet/internal/edgelist"
)

// Attribute names written to interchange formats.
const (
	AttrDegree          = "degree"
	AttrInteractionType = "interaction_type"
	AttrSource          = "source"
)

// Node is a named vertex. The int64 handle satisfies gonum's graph.Node.
type Node struct {
	id    int64
	Name  string
	Props map[string]string
}

// ID returns the numeric handle of the node.
func (n *Node) ID() int64 { return n.id }

// Degree returns the annotated degree, if any.
func (n *Node) Degree() (int, bool) {
	v, ok := n.Props[AttrDegree]
	if !ok {
		return 0, false
	}
	d, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Edge is an undirected edge. F holds the endpoint added first.
type Edge struct {
	F, T  *Node
	Props map[string]string
}

// IsSelfLoop reports whether both endpoints are the same node.
func (e *Edge) IsSelfLoop() bool { return e.F.id == e.T.id }

type edgeKey struct{ u, v int64 }

func keyOf(a, b int64) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{u: a, v: b}
}

// Graph is an undirected simple graph keyed by node name. Self-loops are
// allowed until RemoveSelfLoops is called; parallel edges are not.
type Graph struct {
	byName map[string]*Node
	nodes  []*Node
	edges  map[edgeKey]*Edge
	adj    map[int64]map[int64]*Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[string]*Node),
		nodes:  make([]*Node, 0),
		edges:  make(map[edgeKey]*Edge),
		adj:    make(map[int64]map[int64]*Node),
	}
}

// AddNode returns the node called name, creating it if needed.
func (g *Graph) AddNode(name string) *Node {
	if n, exists := g.byName[name]; exists {
		return n
	}
	n := &Node{
		id:    int64(len(g.nodes)),
		Name:  name,
		Props: make(map[string]string),
	}
	g.byName[name] = n
	g.nodes = append(g.nodes, n)
	g.adj[n.id] = make(map[int64]*Node)
	return n
}

// SetEdge inserts the edge {src, dst}, creating missing nodes, and returns
// it. An existing edge is returned unchanged so the caller can apply a
// merge policy to its attributes.
func (g *Graph) SetEdge(src, dst string) (e *Edge, created bool) {
	f := g.AddNode(src)
	t := g.AddNode(dst)

	k := keyOf(f.id, t.id)
	if e, ok := g.edges[k]; ok {
		return e, false
	}
	e = &Edge{F: f, T: t, Props: make(map[string]string)}
	g.edges[k] = e
	g.adj[f.id][t.id] = t
	g.adj[t.id][f.id] = f
	return e, true
}

func (g *Graph) removeEdge(k edgeKey) {
	delete(g.edges, k)
	delete(g.adj[k.u], k.v)
	delete(g.adj[k.v], k.u)
}

// NodeByName looks up a node by its identifier.
func (g *Graph) NodeByName(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// EdgeBetweenNames returns the edge joining two named nodes, in either order.
func (g *Graph) EdgeBetweenNames(a, b string) (*Edge, bool) {
	na, ok := g.byName[a]
	if !ok {
		return nil, false
	}
	nb, ok := g.byName[b]
	if !ok {
		return nil, false
	}
	e, ok := g.edges[keyOf(na.id, nb.id)]
	return e, ok
}

// HasEdgeBetweenNames reports whether a and b are adjacent.
func (g *Graph) HasEdgeBetweenNames(a, b string) bool {
	_, ok := g.EdgeBetweenNames(a, b)
	return ok
}

// NodeList returns nodes in insertion order.
func (g *Graph) NodeList() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// EdgeList returns edges ordered by endpoint handles.
func (g *Graph) EdgeList() []*Edge {
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}
		return keys[i].v < keys[j].v
	})

	out := make([]*Edge, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.edges[k])
	}
	return out
}

// Pairs lists every edge as a source/target pair.
func (g *Graph) Pairs() []edgelist.Pair {
	edges := g.EdgeList()
	out := make([]edgelist.Pair, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgelist.Pair{Source: e.F.Name, Target: e.T.Name})
	}
	return out
}

// NumNodes returns the number of nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges, self-loops included.
func (g *Graph) NumEdges() int { return len(g.edges) }
