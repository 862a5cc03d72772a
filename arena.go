package searchlab

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/searchlab/game"
	"github.com/searchlab/search"
)

// Arena pits plain minimax against alpha-beta pruning on the same tree.
type Arena struct {
	name  string
	tree  *game.Tree
	plain *Agent
	ab    *Agent

	logger *log.Logger
}

// MakeArena makes an arena for a tree.
func MakeArena(t *game.Tree, name string, trace bool) Arena {
	if name == "" {
		name = "UNKNOWN TREE"
	}
	return Arena{
		name:   name,
		tree:   t,
		plain:  NewAgent("Plain minimax", search.Minimax, trace),
		ab:     NewAgent("Alpha-beta pruning", search.AlphaBeta, trace),
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger sets the logger the arena reports progress to.
func (a *Arena) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	a.logger = l
}

// Name of the arena
func (a *Arena) Name() string { return a.name }

// Tree searched by both agents
func (a *Arena) Tree() *game.Tree { return a.tree }

// Play runs plain minimax then alpha-beta and reports both. It returns an
// error if the two root values differ.
func (a *Arena) Play() (Report, error) {
	a.logger.Printf("%s: depth %d, %d leaves", a.name, a.tree.Depth(), len(a.tree.Leaves()))

	plain := a.play(a.plain)
	pruned := a.play(a.ab)
	if plain.Value != pruned.Value {
		return Report{}, errors.Errorf("%s returned %d, %s returned %d",
			plain.Strategy, plain.Value, pruned.Strategy, pruned.Value)
	}

	side, left, right := search.FirstMove(a.tree)
	a.logger.Printf("first move %v (left %d, right %d)", side, left, right)

	r := Report{
		Name:      a.name,
		Depth:     a.tree.Depth(),
		Leaves:    a.tree.Leaves(),
		Plain:     plain,
		Pruned:    pruned,
		FirstMove: side,
		Left:      left,
		Right:     right,
	}
	r.FirstMoveValue = left
	if side == search.Right {
		r.FirstMoveValue = right
	}
	return r, nil
}

func (a *Arena) play(agent *Agent) Result {
	a.logger.Printf("%s: searching", agent.Name)
	res := agent.Play(a.tree)
	a.logger.Printf("%s: value %d, visited %d, cutoffs %d, pruned %d in %v",
		agent.Name, res.Value, res.Stats.Visited, res.Stats.Cutoffs, res.Stats.Pruned, res.Elapsed)
	return res
}

// Log writes the report in human readable form into w.
func (r Report) Log(w io.Writer) {
	fmt.Fprintf(w, "Leaves (%d): %s\n", len(r.Leaves), game.FormatLeaves(r.Leaves))
	fmt.Fprintf(w, "Depth: %d, width: %d (complete binary tree)\n\n", r.Depth, game.Width)

	for _, res := range []Result{r.Plain, r.Pruned} {
		fmt.Fprintf(w, "=== %s ===\n", res.Strategy)
		fmt.Fprintf(w, "Root value:    %d\n", res.Value)
		fmt.Fprintf(w, "Nodes visited: %d\n", res.Stats.Visited)
		fmt.Fprintf(w, "Time: %.3f ms\n\n", res.Millis())
	}

	fmt.Fprintf(w, "First move (MAX): left=%d, right=%d -> %v subtree, value %d\n",
		r.Left, r.Right, r.FirstMove, r.FirstMoveValue)
}
