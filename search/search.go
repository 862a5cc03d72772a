// Package search evaluates complete binary game trees with plain minimax and
// with alpha-beta pruning.
//
// Both searches walk the tree left to right. The root is a MAX node and the
// players alternate with each level. Instrumentation is carried by a *Stats
// and an optional *Trace passed to the search, both may be nil.
package search

import (
	"math"

	"github.com/searchlab/game"
)

// Func is the signature shared by the search strategies.
type Func func(t *game.Tree, s *Stats, tr *Trace) int

// Stats counts the work done by one search.
type Stats struct {
	Visited int // nodes evaluated, leaves included
	Leaves  int // leaves evaluated
	Cutoffs int // times alpha >= beta skipped a right child
	Pruned  int // nodes in the skipped subtrees
}

func (s *Stats) visit(t *game.Tree, depth int) {
	if s == nil {
		return
	}
	s.Visited++
	if t.IsLeaf(depth) {
		s.Leaves++
	}
}

func (s *Stats) cutoff(t *game.Tree, depth int) {
	if s == nil {
		return
	}
	s.Cutoffs++
	s.Pruned += game.SubtreeSize(t.Depth() - depth - 1)
}

// Minimax evaluates the whole tree from the root. It visits every node.
func Minimax(t *game.Tree, s *Stats, tr *Trace) int {
	return minimax(t, s, tr, 0, 0, game.Max)
}

func minimax(t *game.Tree, s *Stats, tr *Trace, depth, path int, p game.Player) int {
	s.visit(t, depth)
	if t.IsLeaf(depth) {
		v := t.Leaf(path)
		tr.visit(depth, path, p, v)
		return v
	}

	l, r := t.Children(path)
	left := minimax(t, s, tr, depth+1, l, p.Opponent())
	right := minimax(t, s, tr, depth+1, r, p.Opponent())

	v := min(left, right)
	if p == game.Max {
		v = max(left, right)
	}
	tr.visit(depth, path, p, v)
	return v
}

// AlphaBeta evaluates the tree from the root with alpha-beta pruning. The
// left child is always evaluated; the right child is skipped when the left
// child alone closes the (alpha, beta) window.
func AlphaBeta(t *game.Tree, s *Stats, tr *Trace) int {
	return alphabeta(t, s, tr, 0, 0, game.Max, math.MinInt, math.MaxInt)
}

func alphabeta(t *game.Tree, s *Stats, tr *Trace, depth, path int, p game.Player, alpha, beta int) int {
	s.visit(t, depth)
	if t.IsLeaf(depth) {
		v := t.Leaf(path)
		tr.visit(depth, path, p, v)
		return v
	}

	l, r := t.Children(path)
	best := alphabeta(t, s, tr, depth+1, l, p.Opponent(), alpha, beta)
	if p == game.Max {
		alpha = max(alpha, best)
	} else {
		beta = min(beta, best)
	}
	if alpha >= beta {
		s.cutoff(t, depth)
		tr.prune(t, depth+1, r, p.Opponent())
		tr.visit(depth, path, p, best)
		return best
	}

	right := alphabeta(t, s, tr, depth+1, r, p.Opponent(), alpha, beta)
	if p == game.Max {
		best = max(best, right)
	} else {
		best = min(best, right)
	}
	tr.visit(depth, path, p, best)
	return best
}

// Value is minimax from an arbitrary node without any instrumentation.
func Value(t *game.Tree, depth, path int, p game.Player) int {
	if t.IsLeaf(depth) {
		return t.Leaf(path)
	}
	l, r := t.Children(path)
	left := Value(t, depth+1, l, p.Opponent())
	right := Value(t, depth+1, r, p.Opponent())
	if p == game.Max {
		return max(left, right)
	}
	return min(left, right)
}

// Side is a branch out of the root.
type Side int8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "LEFT"
	}
	return "RIGHT"
}

// FirstMove reports which subtree of the root MAX moves into, with the MIN
// values of both subtrees. Ties go left.
func FirstMove(t *game.Tree) (side Side, left, right int) {
	left = Value(t, 1, 0, game.Min)
	right = Value(t, 1, 1, game.Min)
	if left >= right {
		return Left, left, right
	}
	return Right, left, right
}
