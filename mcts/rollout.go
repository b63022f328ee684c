package mcts

import (
	"math/rand"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/state"
)

// rollout plays uniformly at random at choice nodes and by chance
// weighting at chance nodes, entirely within the shared arena — no
// search-tree nodes are created for rollout steps, since their statistics
// are never revisited. Terminates at the first state.IsTerminal handle
// reached.
func rollout(t *state.Tree, start state.Handle, rng *rand.Rand) (state.Handle, error) {
	h := start
	for !t.IsTerminal(h) {
		children, err := engine.Expand(t, h)
		if err != nil {
			return state.NilHandle, err
		}
		if len(children) == 0 {
			break
		}
		if t.Branch(children[0]).Kind == state.Chance {
			h = sampleByProbability(t, children, rng)
		} else {
			h = children[rng.Intn(len(children))]
		}
	}
	return h, nil
}

func sampleByProbability(t *state.Tree, children []state.Handle, rng *rand.Rand) state.Handle {
	r := rng.Float64()
	var cumulative float64
	for _, c := range children {
		cumulative += t.Branch(c).Probability
		if r < cumulative {
			return c
		}
	}
	return children[len(children)-1]
}
