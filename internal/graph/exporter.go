package graph

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph/encoding/dot"
)

// ExportOptions controls interchange output.
type ExportOptions struct {
	GraphName string
	Indent    string
}

// DefaultExportOptions is used when no configuration is supplied.
var DefaultExportOptions = ExportOptions{GraphName: "gene_network", Indent: "  "}

// ExportDOT writes the graph in Graphviz DOT format to the writer.
func (g *Graph) ExportDOT(w io.Writer, opts ExportOptions) error {
	b, err := dot.Marshal(g, opts.GraphName, "", opts.Indent)
	if err != nil {
		return fmt.Errorf("marshal dot: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

const graphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

type graphMLDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphMLKey `xml:"key"`
	Graph   graphMLGraph `xml:"graph"`
}

type graphMLKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphMLGraph struct {
	ID          string        `xml:"id,attr,omitempty"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphMLNode `xml:"node"`
	Edges       []graphMLEdge `xml:"edge"`
}

type graphMLNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphMLData `xml:"data"`
}

type graphMLEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphMLData `xml:"data"`
}

type graphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// collectKeys declares one key per attribute name used in the domain. A key
// is typed int when every value parses as an integer.
func collectKeys(domain string, propSets []map[string]string, next int) ([]graphMLKey, map[string]string) {
	isInt := make(map[string]bool)
	for _, props := range propSets {
		for k, v := range props {
			_, err := strconv.Atoi(v)
			if prev, seen := isInt[k]; seen {
				isInt[k] = prev && err == nil
			} else {
				isInt[k] = err == nil
			}
		}
	}

	names := make([]string, 0, len(isInt))
	for k := range isInt {
		names = append(names, k)
	}
	sort.Strings(names)

	keys := make([]graphMLKey, 0, len(names))
	ids := make(map[string]string, len(names))
	for i, name := range names {
		typ := "string"
		if isInt[name] {
			typ = "int"
		}
		id := fmt.Sprintf("d%d", next+i)
		keys = append(keys, graphMLKey{ID: id, For: domain, AttrName: name, AttrType: typ})
		ids[name] = id
	}
	return keys, ids
}

func dataOf(props map[string]string, ids map[string]string) []graphMLData {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := make([]graphMLData, 0, len(keys))
	for _, k := range keys {
		data = append(data, graphMLData{Key: ids[k], Value: props[k]})
	}
	return data
}

// ExportGraphML writes the graph as an undirected GraphML document. Only
// attributes present on some node or edge get a key declaration.
func (g *Graph) ExportGraphML(w io.Writer, opts ExportOptions) error {
	nodes := g.NodeList()
	edges := g.EdgeList()

	nodeProps := make([]map[string]string, 0, len(nodes))
	for _, n := range nodes {
		nodeProps = append(nodeProps, n.Props)
	}
	edgeProps := make([]map[string]string, 0, len(edges))
	for _, e := range edges {
		edgeProps = append(edgeProps, e.Props)
	}

	nodeKeys, nodeIDs := collectKeys("node", nodeProps, 0)
	edgeKeys, edgeIDs := collectKeys("edge", edgeProps, len(nodeKeys))

	doc := graphMLDoc{
		XMLNS: graphMLNamespace,
		Keys:  append(nodeKeys, edgeKeys...),
		Graph: graphMLGraph{ID: opts.GraphName, EdgeDefault: "undirected"},
	}
	for _, n := range nodes {
		doc.Graph.Nodes = append(doc.Graph.Nodes, graphMLNode{ID: n.Name, Data: dataOf(n.Props, nodeIDs)})
	}
	for _, e := range edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphMLEdge{
			Source: e.F.Name,
			Target: e.T.Name,
			Data:   dataOf(e.Props, edgeIDs),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", opts.Indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode graphml: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
