package mcts

import (
	"time"

	"github.com/haziq21/monopoly-ai/engine"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// Search runs selection/expansion/rollout/backpropagation iterations until
// the configured deadline elapses and every child of the root has been
// visited at least once, then returns the handle of the root's
// most-visited child — the move this agent commits to.
func (a *Agent) Search() (state.Handle, error) {
	deadline := time.Now().Add(a.Deadline)
	rootHasUnvisitedChild := func() bool {
		if a.root.children == nil {
			return !a.tree.IsTerminal(a.root.handle)
		}
		for _, c := range a.root.children {
			if c.numVisits == 0 {
				return true
			}
		}
		return false
	}
	for time.Now().Before(deadline) || rootHasUnvisitedChild() {
		if err := a.iterate(); err != nil {
			return state.NilHandle, err
		}
	}
	return a.bestChild()
}

// iterate runs one SELECT-EXPAND-ROLLOUT-BACKPROPAGATE pass over the
// mixed chance/choice tree: a chance parent is never UCB1-selected, it's
// sampled by its branch probability, exactly as a rollout step would
// sample it.
func (a *Agent) iterate() error {
	path := []*Node{a.root}
	node := a.root

	for !a.tree.IsTerminal(node.handle) {
		if err := a.ensureExpanded(node); err != nil {
			return err
		}
		if len(node.children) == 0 {
			break
		}

		var next *Node
		if node.children[0].branch.Kind == state.Chance {
			next = node.selectChance(a.rng)
		} else {
			next = node.selectChoice(a.ExplorationConstant)
		}
		path = append(path, next)
		node = next

		if node.numVisits == 0 {
			break // freshly reached leaf: expand it lazily next visit, roll out from here now
		}
	}

	leaf, err := rollout(a.tree, node.handle, a.rng)
	if err != nil {
		return err
	}
	value := evaluate(a.tree, leaf, a.Seat)

	for _, n := range path {
		multiplier := 1.0
		if n.branch.Kind == state.Chance {
			multiplier = n.branch.Probability
		}
		n.totalValue += value * multiplier
		n.numVisits++
	}
	return nil
}

// ensureExpanded materialises search-tree children for node the first time
// it's visited, mirroring whatever the arena's own (possibly already
// cached) children are.
func (a *Agent) ensureExpanded(node *Node) error {
	if node.children != nil {
		return nil
	}
	handles, err := engine.Expand(a.tree, node.handle)
	if err != nil {
		return err
	}
	node.children = make([]*Node, len(handles))
	for i, h := range handles {
		node.children[i] = newNode(h, a.tree.Branch(h))
	}
	return nil
}

// bestChild picks the root's most-visited child, the standard MCTS
// move-selection rule (robust-child, as opposed to max-value).
func (a *Agent) bestChild() (state.Handle, error) {
	if len(a.root.children) == 0 {
		return state.NilHandle, errors.Errorf("mcts: root %d has no children to commit to", a.root.handle)
	}
	best := a.root.children[0]
	for _, c := range a.root.children[1:] {
		if c.numVisits > best.numVisits {
			best = c
		}
	}
	return best.handle, nil
}
