// Command dump expands a fresh game a fixed number of plies and writes
// the resulting state subtree as a Graphviz dot file, grounded on
// cmd/generatemoves/main.go's single-purpose dev-tool idiom.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/haziq21/monopoly-ai/viz"
)

var (
	players = flag.Int("players", 2, "number of players in the fresh game")
	depth   = flag.Int("depth", 2, "number of plies to expand from the root before dumping")
	out     = flag.String("out", "tree.dot", "output path for the dot file")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	tree, err := state.NewTree(*players)
	if err != nil {
		log.Fatalf("dump: %v", err)
	}

	if err := expandToDepth(tree, tree.Root(), *depth); err != nil {
		log.Fatalf("dump: %v", err)
	}

	dot, err := viz.Dot(tree, tree.Root(), *depth)
	if err != nil {
		log.Fatalf("dump: %v", err)
	}

	if err := os.WriteFile(*out, []byte(dot), 0644); err != nil {
		log.Fatalf("dump: writing %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d live nodes)", *out, tree.LiveCount())
}

// expandToDepth materializes every child down to depth levels below h via
// engine.Expand, so viz.Dot (which only walks already-materialized
// children) has something to draw.
func expandToDepth(t *state.Tree, h state.Handle, depth int) error {
	if depth <= 0 {
		return nil
	}
	children, err := engine.Expand(t, h)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := expandToDepth(t, c, depth-1); err != nil {
			return err
		}
	}
	return nil
}
