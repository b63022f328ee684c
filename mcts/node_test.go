package mcts

import (
	"math/rand"
	"testing"

	"github.com/haziq21/monopoly-ai/state"
	"github.com/stretchr/testify/assert"
)

// A child with zero visits is always selected before any child is
// revisited, regardless of the UCB1 formula's value for already-visited
// siblings.
func TestSelectChoicePrefersUnvisitedChild(t *testing.T) {
	parent := &Node{
		children: []*Node{
			{numVisits: 5, totalValue: 3},
			{numVisits: 0},
			{numVisits: 2, totalValue: 1},
		},
	}
	got := parent.selectChoice(2.0)
	assert.Same(t, parent.children[1], got)
}

func TestSelectChoiceFallsBackToUCB1WhenAllVisited(t *testing.T) {
	parent := &Node{
		totalValue: 10,
		numVisits:  10,
		children: []*Node{
			{numVisits: 1, totalValue: 0},
			{numVisits: 100, totalValue: 100},
		},
	}
	got := parent.selectChoice(2.0)
	assert.Same(t, parent.children[0], got, "fewer visits should win the exploration bonus when values are otherwise close")
}

func TestSelectChanceAlwaysPicksCertainty(t *testing.T) {
	parent := &Node{
		children: []*Node{
			{branch: state.BranchType{Kind: state.Chance, Probability: 1.0}},
			{branch: state.BranchType{Kind: state.Chance, Probability: 0.0}},
		},
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		got := parent.selectChance(rng)
		assert.Same(t, parent.children[0], got)
	}
}
