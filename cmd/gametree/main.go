// Command gametree evaluates a complete binary game tree with plain minimax
// and with alpha-beta pruning, and prints the value, the visited node count
// and the time of each search.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/searchlab"
	"github.com/searchlab/game"
)

var (
	depthFlag  = flag.Int("depth", game.DefaultDepth, "depth of the tree; anything but the default needs -leaves with 2^depth values")
	leavesFlag = flag.String("leaves", "", "comma separated leaf values, 2^depth of them (default: the demo tree)")
	dotFlag    = flag.String("dot", "", "write the alpha-beta search tree as a Graphviz file")
	verbose    = flag.Bool("v", false, "log search progress to stderr")
)

func main() {
	flag.Parse()

	conf := searchlab.DefaultConfig()
	conf.Depth = *depthFlag
	conf.Trace = *dotFlag != ""
	if *leavesFlag != "" {
		leaves, err := game.ParseLeaves(*leavesFlag)
		if err != nil {
			log.Fatalf("error parsing leaves: %s", err)
		}
		conf.Leaves = leaves
		conf.Name = "custom tree"
	}

	a, err := searchlab.New(conf)
	if err != nil {
		log.Fatalf("error creating arena: %s", err)
	}
	if *verbose {
		a.SetLogger(log.New(os.Stderr, "gametree: ", log.LstdFlags))
	}

	r, err := a.Play()
	if err != nil {
		log.Fatalf("error searching: %s", err)
	}
	r.Log(os.Stdout)

	if *dotFlag != "" {
		g, err := r.Pruned.Trace.Graph("alphabeta")
		if err != nil {
			log.Fatalf("error building graph: %s", err)
		}
		if err := os.WriteFile(*dotFlag, []byte(g.String()), 0644); err != nil {
			log.Fatalf("error writing %s: %s", *dotFlag, err)
		}
	}
}
