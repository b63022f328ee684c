package mcts

import (
	"testing"

	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateIsZeroMeanAcrossSeats(t *testing.T) {
	tree, err := state.NewTree(3)
	require.NoError(t, err)
	root := tree.Root()

	players := tree.Players(root)
	players[0].Balance = 1500
	players[1].Balance = 800
	players[2].Balance = 2200
	tree.SetPlayers(root, players)

	tree.SetOwnedProperties(root, map[uint8]board.PropertyOwnership{
		1:  {Owner: 0},
		3:  {Owner: 0},
		5:  {Owner: 1},
		33: {Owner: 2},
	})

	var sum float64
	for seat := 0; seat < 3; seat++ {
		sum += evaluate(tree, root, seat)
	}
	assert.InDelta(t, 0, sum, 1e-9)
}

func TestEvaluateFavoursWealthierSeat(t *testing.T) {
	tree, err := state.NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	players := tree.Players(root)
	players[0].Balance = 2000
	players[1].Balance = 500
	tree.SetPlayers(root, players)
	tree.SetOwnedProperties(root, map[uint8]board.PropertyOwnership{1: {Owner: 1}, 33: {Owner: 0}})

	assert.Greater(t, evaluate(tree, root, 0), evaluate(tree, root, 1))
}
