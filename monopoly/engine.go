// Package monopoly drives a complete game: it owns the state arena, asks
// each seat's Agent to choose among the current root's children, commits
// the choice via state.Tree.AdvanceRoot, and repeats until the game ends.
package monopoly

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Engine owns the state arena for one game and drives it turn by turn.
// Grounded on arena.go's Arena: a buffered *log.Logger recording one line
// per committed move, and a persistent rand.Rand for resolving Chance
// branches (auctions, chance-card draws, dice rolls).
type Engine struct {
	tree        *state.Tree
	playerCount int
	moveHistory []state.Handle
	rng         *rand.Rand
	logger      *log.Logger
	logBuf      bytes.Buffer
}

// New creates an Engine for a fresh game with the given number of players,
// seeding its chance-branch sampler from the current time.
func New(playerCount int) (*Engine, error) {
	return NewSeeded(playerCount, time.Now().UnixNano())
}

// NewSeeded creates an Engine whose chance-branch sampler is seeded
// deterministically, so a fixed seed reproduces the same loser and
// move-history across runs when every seat is a HumanAgent or a
// RandomAgent with a fixed Rand. An AIAgent searches for a wall-clock
// budget, so games with one can differ between runs even with a fixed
// AIAgent.Rand.
func NewSeeded(playerCount int, seed int64) (*Engine, error) {
	tree, err := state.NewTree(playerCount)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e := &Engine{
		tree:        tree,
		playerCount: playerCount,
		rng:         rand.New(rand.NewSource(seed)),
	}
	e.logger = log.New(&e.logBuf, "", log.Ltime)
	return e, nil
}

// Tree exposes the underlying state arena so an Agent can inspect the
// current root and call engine.Expand itself when choosing.
func (e *Engine) Tree() *state.Tree { return e.tree }

// MoveHistory returns the handles committed to the root so far, in order.
func (e *Engine) MoveHistory() []state.Handle { return e.moveHistory }

// Play runs the game to completion, asking agents[seat] to choose among
// the root's children whenever it's a Choice node, and resolving Chance
// nodes itself by probability-weighted sampling. It returns the seat whose
// balance went negative (the loser), or -1 if the game ended some other
// way (no children left to expand).
func (e *Engine) Play(agents []Agent) (loserSeat int, err error) {
	if err := e.validateAgents(agents); err != nil {
		return -1, err
	}

	for {
		root := e.tree.Root()
		if e.tree.IsTerminal(root) {
			break
		}

		children, err := engine.Expand(e.tree, root)
		if err != nil {
			return -1, errors.WithStack(err)
		}
		if len(children) == 0 {
			break
		}

		var chosen state.Handle
		if e.tree.Branch(children[0]).Kind == state.Chance {
			chosen = e.sampleChance(children)
		} else {
			seat := e.tree.CurrentPlayer(root)
			idx, err := agents[seat].Choose(e)
			if err != nil {
				return -1, errors.WithStack(err)
			}
			if idx < 0 || idx >= len(children) {
				return -1, errors.Errorf("seat %d chose out-of-range child index %d (have %d)", seat, idx, len(children))
			}
			chosen = children[idx]
		}

		e.logger.Printf("seat %d: %v -> handle %d\n", e.tree.CurrentPlayer(root), e.tree.PendingMove(root), chosen)

		if err := e.tree.AdvanceRoot(chosen); err != nil {
			return -1, errors.WithStack(err)
		}
		e.moveHistory = append(e.moveHistory, chosen)

		for _, a := range agents {
			if o, ok := a.(observer); ok {
				o.Observe(chosen)
			}
		}
	}

	return e.loserSeat(), nil
}

// validateAgents reports every configuration problem at once rather than
// failing on the first, matching agent.go's Close() multierror pattern.
func (e *Engine) validateAgents(agents []Agent) error {
	var errs error
	if len(agents) != e.playerCount {
		errs = multierror.Append(errs, errors.Errorf("engine configured for %d players, got %d agents", e.playerCount, len(agents)))
		return errs
	}
	for i, a := range agents {
		if ai, ok := a.(*AIAgent); ok && ai.Seat != i {
			errs = multierror.Append(errs, errors.Errorf("agents[%d] is an AIAgent with Seat %d, want %d", i, ai.Seat, i))
		}
	}
	return errs
}

func (e *Engine) sampleChance(children []state.Handle) state.Handle {
	r := e.rng.Float64()
	var cumulative float64
	for _, c := range children {
		cumulative += e.tree.Branch(c).Probability
		if r < cumulative {
			return c
		}
	}
	return children[len(children)-1]
}

func (e *Engine) loserSeat() int {
	for i, p := range e.tree.Players(e.tree.Root()) {
		if p.Balance < 0 {
			return i
		}
	}
	return -1
}

// Log flushes the driver's buffered move log to w, mirroring arena.go's
// Arena.Log.
func (e *Engine) Log(w io.Writer) {
	fmt.Fprint(w, e.logBuf.String())
}
