package searchlab

import (
	"time"

	"github.com/searchlab/game"
	"github.com/searchlab/search"
)

// An Agent evaluates a tree with one search strategy and keeps the statistics
// of its last search.
type Agent struct {
	Name   string
	Search search.Func

	stats   search.Stats
	elapsed time.Duration
	tracing bool
}

// NewAgent creates an agent. If trace is set the agent records every node it touches.
func NewAgent(name string, f search.Func, trace bool) *Agent {
	return &Agent{Name: name, Search: f, tracing: trace}
}

// Play evaluates t from the root and returns the root value. Each play
// records into its own trace.
func (a *Agent) Play(t *game.Tree) Result {
	a.resetStats()

	var trace *search.Trace
	if a.tracing {
		trace = search.NewTrace()
	}
	start := time.Now()
	v := a.Search(t, &a.stats, trace)
	a.elapsed = time.Since(start)

	return Result{
		Strategy: a.Name,
		Value:    v,
		Stats:    a.stats,
		Elapsed:  a.elapsed,
		Trace:    trace,
	}
}

func (a *Agent) resetStats() {
	a.stats = search.Stats{}
	a.elapsed = 0
}
