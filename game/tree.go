package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError is returned when a tree cannot be built from the given depth and leaves.
type ConfigError struct {
	Depth  int
	Leaves int
}

func (e *ConfigError) Error() string {
	if e.Depth < 1 || e.Depth > MaxDepth {
		return fmt.Sprintf("tree depth %d out of range [1, %d]", e.Depth, MaxDepth)
	}
	return fmt.Sprintf("tree of depth %d needs %d leaves, got %d", e.Depth, 1<<e.Depth, e.Leaves)
}

// Tree is a complete binary game tree. Nodes are not materialised: a node is
// identified by its depth and its path, the path being the bits of the
// branches taken from the root (0 left, 1 right). At the bottom depth the path
// indexes the leaves.
type Tree struct {
	depth  int
	leaves []int
}

// NewTree builds a tree of the given depth. It requires exactly 2^depth leaves.
func NewTree(depth int, leaves []int) (*Tree, error) {
	if depth < 1 || depth > MaxDepth || len(leaves) != 1<<depth {
		return nil, errors.WithStack(&ConfigError{Depth: depth, Leaves: len(leaves)})
	}
	l := make([]int, len(leaves))
	copy(l, leaves)
	return &Tree{depth: depth, leaves: l}, nil
}

// DefaultTree returns the demo tree built from DefaultDepth and DefaultLeaves.
func DefaultTree() *Tree {
	t, err := NewTree(DefaultDepth, DefaultLeaves)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return t
}

// Depth returns the depth of the leaves.
func (t *Tree) Depth() int { return t.depth }

// Leaves returns a copy of the leaf utilities.
func (t *Tree) Leaves() []int {
	l := make([]int, len(t.leaves))
	copy(l, t.leaves)
	return l
}

// Leaf returns the utility of the leaf at path.
func (t *Tree) Leaf(path int) int { return t.leaves[path] }

// IsLeaf reports whether nodes at depth are leaves.
func (t *Tree) IsLeaf(depth int) bool { return depth == t.depth }

// Children returns the paths of the two children of the node at path.
func (t *Tree) Children(path int) (left, right int) {
	return path << 1, path<<1 | 1
}

// Parent returns the path of the parent of the node at path.
func Parent(path int) int { return path >> 1 }

// Size returns the number of nodes in the whole tree.
func (t *Tree) Size() int { return SubtreeSize(t.depth) }

// SubtreeSize returns the number of nodes of a complete binary tree whose
// leaves lie height levels below its root.
func SubtreeSize(height int) int { return 1<<(height+1) - 1 }
