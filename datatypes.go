package searchlab

import (
	"time"

	"github.com/searchlab/game"
	"github.com/searchlab/search"
)

// Config for the Arena. It describes the tree both strategies search.
type Config struct {
	Name   string `json:"name"`
	Depth  int    `json:"depth"`
	Leaves []int  `json:"leaves"`

	// record every node each strategy touches
	Trace bool `json:"trace"`
}

// DefaultConfig is the demo tree of depth 5 with 32 fixed leaves.
func DefaultConfig() Config {
	return Config{
		Name:   "minimax vs alpha-beta",
		Depth:  game.DefaultDepth,
		Leaves: game.DefaultLeaves,
	}
}

// Result is what one strategy produced.
type Result struct {
	Strategy string
	Value    int
	Stats    search.Stats
	Elapsed  time.Duration
	Trace    *search.Trace // nil unless Config.Trace is set
}

// Millis returns the elapsed time in milliseconds.
func (r Result) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Report is the outcome of an Arena play.
type Report struct {
	Name   string
	Depth  int
	Leaves []int

	Plain  Result
	Pruned Result

	FirstMove      search.Side
	Left, Right    int // MIN values of the root's subtrees
	FirstMoveValue int
}
