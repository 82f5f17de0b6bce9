// SPDX-License-Identifier: MIT
package converters

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/joycebyun/route-finder/core"
)

// ErrEmptyDocument indicates that DecodeEdgeList found no YAML document.
var ErrEmptyDocument = errors.New("converters: empty edge-list document")

// EdgeList is the YAML form of a street network:
//
//	multi: true
//	nodes: [0, 1, 2]
//	edges:
//	  - {from: 0, to: 1, length: 120.5}
//	  - {from: 1, to: 2, length: 80}
//
// Nodes lists every node, isolated ones included; endpoints of edges need not
// be listed. Edges between the same pair receive keys in document order.
type EdgeList struct {
	Multi bool         `yaml:"multi,omitempty"`
	Loops bool         `yaml:"loops,omitempty"`
	Nodes []int64      `yaml:"nodes,flow,omitempty"`
	Edges []EdgeRecord `yaml:"edges"`
}

// EdgeRecord is one street of an EdgeList.
type EdgeRecord struct {
	From   int64   `yaml:"from"`
	To     int64   `yaml:"to"`
	Length float64 `yaml:"length"`
}

// DecodeEdgeList reads one YAML EdgeList from r and builds the graph it describes.
func DecodeEdgeList(r io.Reader) (*core.Graph, error) {
	var list EdgeList
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("converters: decode edge list: %w", err)
	}

	return list.Graph()
}

// Graph builds a core.Graph from the list.
func (l EdgeList) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if l.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if l.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range l.Nodes {
		g.AddNode(id)
	}
	for i, e := range l.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Length); err != nil {
			return nil, fmt.Errorf("converters: edge %d (%d—%d): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// NewEdgeList captures g as an EdgeList. Edges keep their stored orientation
// and appear in core.Graph.Edges order, so decoding restores the same keys.
func NewEdgeList(g *core.Graph) EdgeList {
	edges := g.Edges()
	list := EdgeList{
		Multi: g.Multigraph(),
		Loops: g.Looped(),
		Nodes: g.Nodes(),
		Edges: make([]EdgeRecord, len(edges)),
	}
	for i, e := range edges {
		list.Edges[i] = EdgeRecord{From: e.From, To: e.To, Length: e.Length}
	}

	return list
}

// EncodeEdgeList writes g to w as a YAML EdgeList.
func EncodeEdgeList(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewEdgeList(g)); err != nil {
		return fmt.Errorf("converters: encode edge list: %w", err)
	}

	return enc.Close()
}
