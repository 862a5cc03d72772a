package search

import (
	"fmt"

	"github.com/searchlab/game"
)

// Status tells whether a search evaluated a node or skipped it.
type Status uint8

const (
	Visited Status = iota
	Pruned
)

func (s Status) String() string {
	switch s {
	case Visited:
		return "Visited"
	case Pruned:
		return "Pruned"
	}
	return "UNKNOWN STATUS"
}

// Node is a record of one node of the tree as seen by a search.
// Value is only meaningful for visited nodes.
type Node struct {
	Depth  int
	Path   int
	Player game.Player
	Value  int
	Status Status
}

// ID returns a name for the node that is unique within a tree.
func (n Node) ID() string { return fmt.Sprintf("n%d_%d", n.Depth, n.Path) }

func (n Node) Format(s fmt.State, c rune) {
	fmt.Fprintf(s, "{Depth: %d, Path: %d, Player: %v, Value: %d, Status: %v}",
		n.Depth, n.Path, n.Player, n.Value, n.Status)
}

func (n Node) label() string {
	if n.Status == Pruned {
		return "pruned"
	}
	return fmt.Sprintf("%v %d", n.Player, n.Value)
}
