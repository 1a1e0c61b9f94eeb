package graph

import "strconv"

// AnnotateDegree stores the number of incident edges of every node in its
// "degree" attribute. A self-loop counts twice.
func AnnotateDegree(g *Graph) {
	degree := make(map[int64]int, len(g.nodes))
	for k := range g.edges {
		degree[k.u]++
		degree[k.v]++
	}
	for _, n := range g.nodes {
		n.Props[AttrDegree] = strconv.Itoa(degree[n.id])
	}
}
