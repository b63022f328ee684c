package state

import (
	"testing"

	"github.com/haziq21/monopoly-ai/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTreeRootIsSelfContained(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, root, tree.Parent(root))
	assert.Len(t, tree.Players(root), 2)
	assert.Equal(t, 0, tree.CurrentPlayer(root))
	assert.NotNil(t, tree.OwnedProperties(root))
	assert.Equal(t, []int{0, 0}, tree.JailRounds(root))
}

func TestNewTreeRejectsBadPlayerCount(t *testing.T) {
	_, err := NewTree(1)
	assert.Error(t, err)
	_, err = NewTree(5)
	assert.Error(t, err)
}

// Get(h, f) resolves in finite steps by walking the parent chain.
func TestFieldLookupWalksParentChain(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	child := tree.NewChild(root, BranchType{Kind: Choice}, MoveRoll)
	// child overrides nothing; every field must resolve via the parent.
	assert.Equal(t, tree.Players(root), tree.Players(child))
	assert.Equal(t, tree.CurrentPlayer(root), tree.CurrentPlayer(child))

	grandchild := tree.NewChild(child, BranchType{Kind: Choice}, MoveRoll)
	tree.SetCurrentPlayer(grandchild, 1)
	assert.Equal(t, 1, tree.CurrentPlayer(grandchild))
	assert.Equal(t, 0, tree.CurrentPlayer(child))
}

// After advance_root, live handles == |subtree(new_root)|, and
// the new root overrides every field directly.
func TestAdvanceRootMaterializesAndFrees(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	keep := tree.NewChild(root, BranchType{Kind: Chance, Probability: 0.5}, MoveRoll)
	tree.SetCurrentPlayer(keep, 1)
	pruned := tree.NewChild(root, BranchType{Kind: Chance, Probability: 0.5}, MoveRoll)
	_ = tree.NewChild(pruned, BranchType{Kind: Choice}, MoveRoll)

	require.NoError(t, tree.AdvanceRoot(keep))

	assert.Equal(t, keep, tree.Root())
	assert.Equal(t, keep, tree.Parent(keep))
	for f := fieldID(0); f < numFields; f++ {
		assert.True(t, tree.nodes[keep].has(f), "field %d not materialised on new root", f)
	}
	assert.Equal(t, 1, tree.LiveCount())
}

func TestAdvanceRootRejectsCurrentRoot(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)
	assert.Error(t, tree.AdvanceRoot(tree.Root()))
}

func TestArenaReusesFreedHandles(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)
	root := tree.Root()

	a := tree.NewChild(root, BranchType{Kind: Choice}, MoveRoll)
	before := len(tree.nodes)
	tree.MarkDirty(a)
	b := tree.NewChild(root, BranchType{Kind: Choice}, MoveRoll)

	assert.Equal(t, before, len(tree.nodes), "reused handle should not grow the arena")
	assert.Equal(t, a, b)
}

func TestIsTerminal(t *testing.T) {
	tree, err := NewTree(2)
	require.NoError(t, err)
	root := tree.Root()
	assert.False(t, tree.IsTerminal(root))

	bankrupt := tree.NewChild(root, BranchType{Kind: Choice}, MoveRoll)
	players := append([]board.Player(nil), tree.Players(root)...)
	players[0].Balance = -10
	tree.SetPlayers(bankrupt, players)
	assert.True(t, tree.IsTerminal(bankrupt))

	selling := tree.NewChild(bankrupt, BranchType{Kind: Choice}, MoveSellProperty)
	assert.False(t, tree.IsTerminal(selling))
}
