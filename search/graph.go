package search

import (
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/searchlab/game"
)

// Graph renders the recorded nodes as a directed Graphviz graph. MAX nodes are
// boxes, MIN nodes ellipses; pruned nodes are dashed and grey.
func (tr *Trace) Graph(name string) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(name); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, n := range tr.Nodes() {
		attrs := map[string]string{
			"label": strconv.Quote(n.label()),
			"shape": "ellipse",
		}
		if n.Player == game.Max {
			attrs["shape"] = "box"
		}
		if n.Status == Pruned {
			attrs["style"] = "dashed"
			attrs["color"] = "gray"
		}
		if err := g.AddNode(name, n.ID(), attrs); err != nil {
			return nil, errors.Wrapf(err, "node %v", n)
		}
	}

	for _, n := range tr.Nodes() {
		if n.Depth == 0 {
			continue
		}
		parent := Node{Depth: n.Depth - 1, Path: game.Parent(n.Path)}
		if err := g.AddEdge(parent.ID(), n.ID(), true, nil); err != nil {
			return nil, errors.Wrapf(err, "edge to %v", n)
		}
	}
	return g, nil
}
