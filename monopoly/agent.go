package monopoly

import (
	"math/rand"
	"time"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/mcts"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// Agent chooses among the current root's children on its seat's turn.
// Choose returns an index into the slice engine.Expand(e.Tree(), root)
// would return for the current root. Three interchangeable
// implementations exist below: AIAgent, RandomAgent, and HumanAgent.
type Agent interface {
	Choose(e *Engine) (int, error)
}

// observer lets Engine.Play re-root an agent's own persistent search tree
// after every committed move, without widening the Agent interface itself
// (RandomAgent and HumanAgent have nothing to re-root).
type observer interface {
	Observe(h state.Handle)
}

// AIAgent searches with mcts before choosing, lazily building its
// *mcts.Agent against the Engine's tree the first time it's asked to
// choose (the seat's tree isn't available at construction time).
type AIAgent struct {
	TimeBudget  time.Duration
	Temperature float64
	Seat        int

	// Rand seeds the underlying mcts.Agent's rollout/chance sampling. Nil
	// (the zero value) seeds from the current time, as normal play wants;
	// set it (e.g. rand.New(rand.NewSource(42))) to fix the sequence of
	// random draws. Search still runs for a wall-clock budget, so the
	// number of iterations, and hence the chosen move, can differ between
	// runs even with a fixed Rand.
	Rand *rand.Rand

	agent *mcts.Agent
}

func (a *AIAgent) Choose(e *Engine) (int, error) {
	tree := e.Tree()
	if a.agent == nil {
		config := mcts.DefaultConfig()
		if a.TimeBudget > 0 {
			config.Deadline = a.TimeBudget
		}
		config.Seat = a.Seat
		rng := a.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		agent, err := mcts.NewAgent(config, tree, rng)
		if err != nil {
			return -1, err
		}
		a.agent = agent
	}

	chosen, err := a.agent.Search()
	if err != nil {
		return -1, err
	}

	children, err := engine.Expand(tree, tree.Root())
	if err != nil {
		return -1, err
	}
	for i, c := range children {
		if c == chosen {
			return i, nil
		}
	}
	return -1, errors.Errorf("mcts agent for seat %d chose handle %d, which isn't among the root's children", a.Seat, chosen)
}

func (a *AIAgent) Observe(h state.Handle) {
	if a.agent != nil {
		a.agent.Observe(h)
	}
}

// RandomAgent chooses uniformly among the root's children, a cheap
// baseline opponent.
// Rand seeds its choice; nil (the zero value) seeds from the current time
// on first use, set it for a reproducible choice sequence.
type RandomAgent struct {
	Rand *rand.Rand
}

func (a *RandomAgent) Choose(e *Engine) (int, error) {
	if a.Rand == nil {
		a.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	children, err := engine.Expand(e.Tree(), e.Tree().Root())
	if err != nil {
		return -1, err
	}
	if len(children) == 0 {
		return -1, errors.Errorf("no children to choose from")
	}
	return a.Rand.Intn(len(children)), nil
}

// HumanAgent is a stub: it always commits to the root's first child.
// A real interactive frontend (for cmd/play's -human-seat, say) would prompt
// for input here; out of scope for this driver.
type HumanAgent struct{}

func (HumanAgent) Choose(e *Engine) (int, error) { return 0, nil }
