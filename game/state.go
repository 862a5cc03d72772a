package game

// Player is the side to move at a node of the tree.
type Player int8

const (
	Max Player = iota
	Min
)

const (
	DefaultDepth = 5
	MaxDepth     = 24 // 2^24 leaves is the most a tree may hold
	Width        = 2  // every inner node has two children
)

// DefaultLeaves are the utilities of the demo tree of depth DefaultDepth.
var DefaultLeaves = []int{
	3, 5, 2, 9, 12, 5, 23, 23, 1, 3, 2, 2, 0, 1, 9, 8,
	7, 4, 8, 5, 6, 3, 2, 4, 8, 9, 1, 5, 2, 0, 7, 6,
}

// PlayerAt returns the player to move at the given depth. The root is a MAX node.
func PlayerAt(depth int) Player {
	if depth%2 == 0 {
		return Max
	}
	return Min
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Max {
		return Min
	}
	return Max
}

func (p Player) String() string {
	switch p {
	case Max:
		return "MAX"
	case Min:
		return "MIN"
	}
	return "UNKNOWN PLAYER"
}
