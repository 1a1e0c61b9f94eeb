package graph

import (
	"errors"
	"fmt"

	"github.com/25smoking/genenet/internal/edgelist"
)

// MergePolicy decides what happens to the attributes of a repeated edge.
type MergePolicy string

// MergeReplace overwrites the attributes of a repeated pair with the latest
// occurrence. Earlier values are discarded, not merged.
const MergeReplace MergePolicy = "replace"

var (
	// ErrRecordArity is returned for rows that are not exactly 4 fields long.
	ErrRecordArity = errors.New("edges must be (src, dst, interaction_type, source)")
	// ErrMergePolicy is returned for any policy other than MergeReplace.
	ErrMergePolicy = errors.New("unsupported merge policy")
)

// Build folds records into a graph. Every distinct endpoint becomes a node
// and every distinct unordered pair one edge. Self-loops are kept.
func Build(records []edgelist.Record, policy MergePolicy) (*Graph, error) {
	if policy != MergeReplace {
		return nil, fmt.Errorf("%w: %q", ErrMergePolicy, policy)
	}

	g := NewGraph()
	for _, r := range records {
		e, _ := g.SetEdge(r.Source, r.Target)
		e.Props[AttrInteractionType] = r.InteractionType
		e.Props[AttrSource] = r.Provenance
	}
	return g, nil
}

// BuildFromRows validates untyped rows and builds the graph from them.
func BuildFromRows(rows [][]string, policy MergePolicy) (*Graph, error) {
	records := make([]edgelist.Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != 4 {
			return nil, fmt.Errorf("row %d %q: %w", i, row, ErrRecordArity)
		}
		records = append(records, edgelist.Record{
			Source:          row[0],
			Target:          row[1],
			InteractionType: row[2],
			Provenance:      row[3],
		})
	}
	return Build(records, policy)
}

// RemoveSelfLoops deletes every self-loop and returns how many were removed.
// Nodes are left in place.
func (g *Graph) RemoveSelfLoops() int {
	removed := 0
	for k := range g.edges {
		if k.u == k.v {
			g.removeEdge(k)
			removed++
		}
	}
	return removed
}

// Summary holds node and edge counts.
type Summary struct {
	NumNodes int `json:"num_nodes" yaml:"num_nodes"`
	NumEdges int `json:"num_edges" yaml:"num_edges"`
}

// Summary reports the size of the graph.
func (g *Graph) Summary() Summary {
	return Summary{NumNodes: g.NumNodes(), NumEdges: g.NumEdges()}
}
