package search

import "github.com/searchlab/game"

// Trace records the nodes touched by a search, in the order their values
// are settled. A nil *Trace records nothing.
type Trace struct {
	nodes []Node
}

// NewTrace returns an empty trace.
func NewTrace() *Trace { return &Trace{} }

// Nodes returns the recorded nodes.
func (tr *Trace) Nodes() []Node {
	if tr == nil {
		return nil
	}
	return tr.nodes
}

// Count returns the number of recorded nodes with the given status.
func (tr *Trace) Count(status Status) (n int) {
	for _, node := range tr.Nodes() {
		if node.Status == status {
			n++
		}
	}
	return
}

// Reset clears the trace for reuse.
func (tr *Trace) Reset() {
	if tr == nil {
		return
	}
	tr.nodes = tr.nodes[:0]
}

func (tr *Trace) visit(depth, path int, p game.Player, v int) {
	if tr == nil {
		return
	}
	tr.nodes = append(tr.nodes, Node{Depth: depth, Path: path, Player: p, Value: v, Status: Visited})
}

// prune records the whole subtree rooted at (depth, path) as skipped.
func (tr *Trace) prune(t *game.Tree, depth, path int, p game.Player) {
	if tr == nil {
		return
	}
	tr.nodes = append(tr.nodes, Node{Depth: depth, Path: path, Player: p, Status: Pruned})
	if t.IsLeaf(depth) {
		return
	}
	l, r := t.Children(path)
	tr.prune(t, depth+1, l, p.Opponent())
	tr.prune(t, depth+1, r, p.Opponent())
}
