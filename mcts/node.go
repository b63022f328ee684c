package mcts

import (
	"math"
	"math/rand"

	"github.com/haziq21/monopoly-ai/state"
)

// Node is a pointer-owned search-tree node mirroring one handle of the
// shared game-state arena. Unlike the arena (tied to handles and freed via
// a free list), the search tree is an ordinary owned-pointer structure —
// re-rooting drops the reference to every abandoned branch and leaves
// reclamation to the garbage collector.
type Node struct {
	handle   state.Handle
	branch   state.BranchType
	children []*Node

	totalValue float64
	numVisits  int
}

func newNode(handle state.Handle, branch state.BranchType) *Node {
	return &Node{handle: handle, branch: branch}
}

func (n *Node) meanValue() float64 {
	if n.numVisits == 0 {
		return 0
	}
	return n.totalValue / float64(n.numVisits)
}

// selectChoice implements the UCB1 tree policy: an unvisited child is
// always preferred, otherwise the argmax of mean_value(parent) +
// C*sqrt(ln(N_parent)/n_i), where N_parent is the sum of the children's
// visit counts. The formula uses the parent's mean value, not the child's
// — every candidate shares that term, so it does not change which child
// scores highest.
func (n *Node) selectChoice(explorationConstant float64) *Node {
	var parentVisits int
	for _, c := range n.children {
		if c.numVisits == 0 {
			return c
		}
		parentVisits += c.numVisits
	}

	mean := n.meanValue()
	var best *Node
	bestValue := math.Inf(-1)
	for _, c := range n.children {
		value := mean + explorationConstant*math.Sqrt(math.Log(float64(parentVisits))/float64(c.numVisits))
		if value > bestValue {
			bestValue = value
			best = c
		}
	}
	return best
}

// selectChance samples a child weighted by its Chance(p) probability,
// exactly as a rollout step does — at a chance parent the tree policy and
// the rollout policy coincide.
func (n *Node) selectChance(rng *rand.Rand) *Node {
	r := rng.Float64()
	var cumulative float64
	for _, c := range n.children {
		cumulative += c.branch.Probability
		if r < cumulative {
			return c
		}
	}
	return n.children[len(n.children)-1]
}
