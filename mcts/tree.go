package mcts

import (
	"math/rand"
	"time"

	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// Config configures a single seat's search: a UCB1 exploration constant
// and a wall-clock search budget, since this search has no policy
// network to weight expansion against.
type Config struct {
	// ExplorationConstant is the UCB1 temperature C, typically 2.0.
	ExplorationConstant float64
	// Deadline bounds how long Search spends iterating before committing.
	Deadline time.Duration
	// Seat is the player index this agent evaluates terminal/leaf states
	// for (see evaluate in eval.go).
	Seat int
}

// DefaultConfig returns the configuration monopoly.AIAgent falls back to.
func DefaultConfig() Config {
	return Config{ExplorationConstant: 2.0, Deadline: 100 * time.Millisecond}
}

func (c Config) IsValid() bool {
	return c.ExplorationConstant > 0 && c.Deadline > 0 && c.Seat >= 0
}

// Agent owns a persistent pointer-based search tree mirroring the shared
// game-state arena for one seat. The game-state tree is tied to arena
// handles and freed via a free list (state.Tree); the search tree here is
// deliberately NOT — this is a tree of owned search-tree nodes, so
// re-rooting is just dropping pointers and letting the garbage collector
// do the work: promoting a child and abandoning its siblings needs no
// free-list bookkeeping on a plain pointer tree.
type Agent struct {
	Config
	tree *state.Tree
	root *Node
	rng  *rand.Rand
}

// NewAgent builds an agent rooted at tree's current root.
func NewAgent(config Config, tree *state.Tree, rng *rand.Rand) (*Agent, error) {
	if !config.IsValid() {
		return nil, errors.Errorf("invalid mcts config: %+v", config)
	}
	return &Agent{
		Config: config,
		tree:   tree,
		root:   newNode(tree.Root(), state.BranchType{}),
		rng:    rng,
	}, nil
}

// Observe re-roots the agent's own search tree to follow a move that's
// already been committed to the shared arena (via state.Tree.AdvanceRoot),
// whether or not this agent was the one that searched it. This is the
// persistence mechanism: a node already explored under the old root is
// reused with its accumulated statistics intact; a move this agent never
// expanded down to (an opponent's choice, an unsampled chance outcome)
// gets a fresh, unvisited node instead.
func (a *Agent) Observe(newRoot state.Handle) {
	a.root = a.findOrCreateChild(newRoot)
	a.root.branch = state.BranchType{}
}

func (a *Agent) findOrCreateChild(handle state.Handle) *Node {
	for _, c := range a.root.children {
		if c.handle == handle {
			return c
		}
	}
	return newNode(handle, a.tree.Branch(handle))
}

// RootHandle exposes the arena handle this agent's search tree currently
// considers the game to be at.
func (a *Agent) RootHandle() state.Handle { return a.root.handle }
