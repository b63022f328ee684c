package engine

import (
	"testing"

	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, playerCount int) (*state.Tree, state.Handle) {
	tree, err := state.NewTree(playerCount)
	require.NoError(t, err)
	return tree, tree.Root()
}

func sumProbabilities(tree *state.Tree, children []state.Handle) float64 {
	var sum float64
	for _, c := range children {
		sum += tree.Branch(c).Probability
	}
	return sum
}

// Player 0 at tile 0 rolling a (1,1) double lands on tile 2, a
// chance-card tile.
func TestRollDoubleOntoChanceCardTile(t *testing.T) {
	tree, root := newTestTree(t, 2)

	children, err := Expand(tree, root)
	require.NoError(t, err)

	var found bool
	for _, c := range children {
		players := tree.Players(c)
		if players[0].Position == 2 && players[0].DoublesRolled == 1 {
			found = true
			assert.InDelta(t, 1.0/36, tree.Branch(c).Probability, 1e-12)
			assert.Equal(t, state.MoveChanceCardDraw, tree.PendingMove(c))
			assert.Equal(t, 0, tree.CurrentPlayer(c))
		}
	}
	assert.True(t, found, "expected a child from rolling (1,1)")
	assert.InDelta(t, 1.0, sumProbabilities(tree, children), 1e-9)
}

// A full, ordered 21-card deck pointing at PropertyTax resolves
// deterministically and charges the current player per owned property.
func TestChanceCardDrawFullDeckPropertyTax(t *testing.T) {
	tree, root := newTestTree(t, 2)

	deck := make([]board.ChanceCard, board.TotalChanceCards)
	deck[0] = board.PropertyTax
	for i := 1; i < len(deck); i++ {
		deck[i] = board.ChanceCard(i % board.NumChanceCards)
	}
	tree.SetSeenCCs(root, deck)
	tree.SetTopCC(root, 0)
	tree.SetPendingMove(root, state.MoveChanceCardDraw)

	players := tree.Players(root)
	players[0].Balance = 1000
	tree.SetPlayers(root, players)

	props := map[uint8]board.PropertyOwnership{1: {Owner: 0}, 3: {Owner: 0}, 5: {Owner: 0}}
	tree.SetOwnedProperties(root, props)

	children, err := Expand(tree, root)
	require.NoError(t, err)
	require.Len(t, children, 1)

	child := children[0]
	assert.Equal(t, int32(850), tree.Players(child)[0].Balance)
	assert.Equal(t, 1, tree.TopCC(child))
	assert.Equal(t, state.MoveRoll, tree.PendingMove(child))
	assert.Equal(t, 1, tree.CurrentPlayer(child))
}

// RentSpike raises the owner's property by one level and lowers both
// owned neighbours by one level.
func TestRentSpikeRaisesAndLowersNeighbours(t *testing.T) {
	tree, root := newTestTree(t, 2)

	props := map[uint8]board.PropertyOwnership{
		13: {Owner: 0, RentLevel: 3},
		12: {Owner: 1, RentLevel: 3},
		14: {Owner: 1, RentLevel: 3},
	}
	tree.SetOwnedProperties(root, props)

	children := genCCRentSpike(tree, root)
	require.Len(t, children, 1)

	result := tree.OwnedProperties(children[0])
	assert.EqualValues(t, 4, result[13].RentLevel)
	assert.EqualValues(t, 2, result[12].RentLevel)
	assert.EqualValues(t, 2, result[14].RentLevel)
}

// With a minimum stake of 20 inclusive, a balance of exactly 20 is a
// valid auction candidate.
func TestAuctionMinimumStakeIsInclusive(t *testing.T) {
	tree, root := newTestTree(t, 2)

	players := tree.Players(root)
	players[0].Balance = 20
	players[1].Balance = 1000
	players[0].Position = 1
	tree.SetPlayers(root, players)

	tree.SetPendingMove(root, state.MoveAuction)
	children, err := Expand(tree, root)
	require.NoError(t, err)
	require.NotEmpty(t, children)
	assert.InDelta(t, 1.0, sumProbabilities(tree, children), 1e-9)

	var sawPlayerZero bool
	for _, c := range children {
		if tree.OwnedProperties(c)[players[0].Position].Owner == 0 {
			sawPlayerZero = true
		}
	}
	assert.True(t, sawPlayerZero, "a balance-20 player must be a candidate")
}

// Three consecutive doubles sends the roller to jail, resets the
// doubles counter, and sets jail_rounds_remaining to the full term.
func TestThreeDoublesSendsToJail(t *testing.T) {
	tree, root := newTestTree(t, 2)

	players := tree.Players(root)
	players[0].DoublesRolled = 2
	tree.SetPlayers(root, players)

	children, err := Expand(tree, root)
	require.NoError(t, err)

	var found bool
	for _, c := range children {
		p := tree.Players(c)[0]
		if tree.Branch(c).Probability > 0 && p.InJail && p.DoublesRolled == 0 {
			found = true
			assert.Equal(t, board.JailTerm, tree.JailRounds(c)[0])
			assert.Equal(t, uint8(board.JailPosition), p.Position)
		}
	}
	assert.True(t, found, "expected a double-three child sending player 0 to jail")
}

// SellProperty with zero owned properties produces a single terminal
// child.
func TestSellPropertyWithNoneOwnedIsTerminal(t *testing.T) {
	tree, root := newTestTree(t, 2)

	players := tree.Players(root)
	players[0].Balance = -50
	tree.SetPlayers(root, players)
	tree.SetPendingMove(root, state.MoveSellProperty)

	children, err := Expand(tree, root)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.True(t, tree.IsTerminal(children[0]))
}

// Bonus with two players produces exactly one child.
func TestBonusWithTwoPlayersProducesOneChild(t *testing.T) {
	tree, root := newTestTree(t, 2)
	children := genCCBonus(tree, root)
	require.Len(t, children, 1)

	players := tree.Players(children[0])
	assert.Equal(t, int32(1700), players[0].Balance)
	assert.Equal(t, int32(1700), players[1].Balance)
}

// RentTo5 on a property already at level 5 produces no child for it.
func TestRentTo5AtMaxProducesNoChild(t *testing.T) {
	tree, root := newTestTree(t, 2)
	tree.SetOwnedProperties(root, map[uint8]board.PropertyOwnership{1: {Owner: 0, RentLevel: 5}})

	children := genCCRentToX(tree, root, true)
	assert.Empty(t, children)
}

// Every chance-expanded node's children probabilities sum to 1.
func TestProbabilityClosureOnRoll(t *testing.T) {
	tree, root := newTestTree(t, 3)
	children, err := Expand(tree, root)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sumProbabilities(tree, children), 1e-9)
}

func TestUnownedPropertyOffersBuyAndAuction(t *testing.T) {
	tree, root := newTestTree(t, 2)
	players := tree.Players(root)
	players[0].Position = 1
	tree.SetPlayers(root, players)
	tree.SetPendingMove(root, state.MoveProperty)

	children, err := Expand(tree, root)
	require.NoError(t, err)
	require.Len(t, children, 2)

	var sawBuy, sawAuction bool
	for _, c := range children {
		switch tree.PendingMove(c) {
		case state.MoveRoll:
			sawBuy = true
			assert.Equal(t, 0, tree.OwnedProperties(c)[1].Owner)
		case state.MoveAuction:
			sawAuction = true
		}
	}
	assert.True(t, sawBuy)
	assert.True(t, sawAuction)
}

func TestOpponentPropertyChargesRentAndMayForceSale(t *testing.T) {
	tree, root := newTestTree(t, 2)
	players := tree.Players(root)
	players[0].Balance = 50
	players[0].Position = 1
	tree.SetPlayers(root, players)
	tree.SetOwnedProperties(root, map[uint8]board.PropertyOwnership{1: {Owner: 1, RentLevel: 5}})
	tree.SetPendingMove(root, state.MoveProperty)

	children, err := Expand(tree, root)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, state.MoveSellProperty, tree.PendingMove(children[0]))
	assert.Less(t, tree.Players(children[0])[0].Balance, int32(0))
}
