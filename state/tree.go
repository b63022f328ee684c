package state

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/pkg/errors"
)

// Tree is the append-only-with-free-list arena of state nodes: a
// diff-chain game tree operated on single-threaded, with no mutex or
// atomics.
type Tree struct {
	nodes    []Node
	freelist []Handle
	root     Handle
}

// NewTree builds the arena with a single self-parented root representing
// the initial game state: default-initialised players, current player 0,
// pending move Roll.
func NewTree(playerCount int) (*Tree, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, errors.Errorf("invalid player count %d: must be 2..4", playerCount)
	}

	players := make([]board.Player, playerCount)
	for i := range players {
		players[i] = board.NewPlayer()
	}

	t := &Tree{nodes: make([]Node, 1, 64)}
	root := Handle(0)
	t.nodes[root].parent = root
	t.nodes[root].pendingMove = MoveRoll
	t.root = root

	t.SetPlayers(root, players)
	t.SetCurrentPlayer(root, 0)
	t.SetOwnedProperties(root, map[uint8]board.PropertyOwnership{})
	t.SetSeenCCs(root, nil)
	t.SetTopCC(root, 0)
	t.SetLevel1RentRounds(root, 0)
	t.SetJailRounds(root, make([]int, playerCount))

	return t, nil
}

// Root returns the current root handle.
func (t *Tree) Root() Handle { return t.root }

// Children returns the (possibly empty) list of already-expanded children
// of h.
func (t *Tree) Children(h Handle) []Handle { return t.nodes[h].children }

// Branch returns h's edge classification from its parent. Meaningless on
// the root.
func (t *Tree) Branch(h Handle) BranchType { return t.nodes[h].branch }

// PendingMove returns the move type h is waiting to be expanded by.
func (t *Tree) PendingMove(h Handle) MoveType { return t.nodes[h].pendingMove }

// PendingCard returns h's pending chance-card payload; only meaningful
// when PendingMove(h) == MoveChoicefulCC.
func (t *Tree) PendingCard(h Handle) board.ChanceCard { return t.nodes[h].pendingCard }

// Parent returns h's parent handle (self, for the root).
func (t *Tree) Parent(h Handle) Handle { return t.nodes[h].parent }

// LiveCount returns the number of handles not currently on the free list,
// used by tests to check P3 (arena reuse).
func (t *Tree) LiveCount() int { return len(t.nodes) - len(t.freelist) }

// NewChild appends an empty child of parent with the given branch and
// pending-move tag, reusing a free-listed handle when one is available.
// The caller is responsible for installing only the field overrides that
// actually changed relative to the parent, via the typed setters below —
// that's what keeps the tree a diff chain rather than a full clone per
// node.
func (t *Tree) NewChild(parent Handle, branch BranchType, move MoveType) Handle {
	var h Handle
	if n := len(t.freelist); n > 0 {
		h = t.freelist[n-1]
		t.freelist = t.freelist[:n-1]
		t.nodes[h].clear()
	} else {
		t.nodes = append(t.nodes, Node{})
		h = Handle(len(t.nodes) - 1)
	}

	node := &t.nodes[h]
	node.parent = parent
	node.branch = branch
	node.pendingMove = move

	if parent != NilHandle {
		t.nodes[parent].children = append(t.nodes[parent].children, h)
	}
	return h
}

// SetPendingMove overrides h's pending move after creation (used when an
// expansion function only knows the next move type after inspecting the
// landing tile).
func (t *Tree) SetPendingMove(h Handle, m MoveType) { t.nodes[h].pendingMove = m }

// SetPendingCard sets h's pending chance-card payload.
func (t *Tree) SetPendingCard(h Handle, c board.ChanceCard) { t.nodes[h].pendingCard = c }

// MarkDirty recursively returns h and its entire subtree to the free
// list. Callers must never pass a handle on the path to a node they
// intend to keep.
func (t *Tree) MarkDirty(h Handle) {
	if h == NilHandle {
		return
	}
	n := &t.nodes[h]
	children := n.children
	n.children = nil
	for _, c := range children {
		t.MarkDirty(c)
	}
	t.freelist = append(t.freelist, h)
}

// AdvanceRoot promotes newRoot (a child of the current root) to root:
// every field newRoot doesn't already override is materialised from the
// old parent chain, every sibling subtree of newRoot is freed along with
// the old root itself, and newRoot becomes self-parented.
func (t *Tree) AdvanceRoot(newRoot Handle) error {
	oldRoot := t.root
	if newRoot == oldRoot {
		return errors.Errorf("invariant violated: advance_root called with the current root (handle %d)", newRoot)
	}

	for f := fieldID(0); f < numFields; f++ {
		if !t.nodes[newRoot].has(f) {
			v := t.get(t.nodes[newRoot].parent, f)
			t.nodes[newRoot].override(f, v)
		}
	}

	for _, sibling := range t.nodes[oldRoot].children {
		if sibling != newRoot {
			t.MarkDirty(sibling)
		}
	}
	t.nodes[oldRoot].children = nil
	t.freelist = append(t.freelist, oldRoot)

	t.nodes[newRoot].parent = newRoot
	t.root = newRoot
	return nil
}

// IsTerminal reports whether h ends the game: some player's balance is
// negative and the node isn't mid-liquidation (pending move SellProperty
// is precisely the sell-loop that gives a bankrupt player a chance to
// recover).
func (t *Tree) IsTerminal(h Handle) bool {
	if t.nodes[h].pendingMove == MoveSellProperty {
		return false
	}
	for _, p := range t.Players(h) {
		if p.Balance < 0 {
			return true
		}
	}
	return false
}

// get resolves field f on h by walking the parent chain, returning as
// soon as a node overrides it. Terminates because the root always
// overrides every field. No allocation, no recursion — a tight loop.
func (t *Tree) get(h Handle, f fieldID) fieldValue {
	for {
		n := &t.nodes[h]
		if n.has(f) {
			return n.fields[f]
		}
		if n.parent == h {
			panic(errors.Errorf("field %d unresolved at self-parented handle %d (root node missing a required field)", f, h))
		}
		h = n.parent
	}
}

// set installs a local override for field f at h, replacing any prior
// local override.
func (t *Tree) set(h Handle, f fieldID, v fieldValue) {
	t.nodes[h].override(f, v)
}

// Players resolves the players slice visible at h.
func (t *Tree) Players(h Handle) []board.Player { return t.get(h, fieldPlayers).players }

// SetPlayers overrides the players slice at h.
func (t *Tree) SetPlayers(h Handle, v []board.Player) {
	t.set(h, fieldPlayers, fieldValue{players: v})
}

// CurrentPlayer resolves the current player index visible at h.
func (t *Tree) CurrentPlayer(h Handle) int { return t.get(h, fieldCurrentPlayer).currentPlayer }

// SetCurrentPlayer overrides the current player index at h.
func (t *Tree) SetCurrentPlayer(h Handle, v int) {
	t.set(h, fieldCurrentPlayer, fieldValue{currentPlayer: v})
}

// OwnedProperties resolves the ownership map visible at h.
func (t *Tree) OwnedProperties(h Handle) map[uint8]board.PropertyOwnership {
	return t.get(h, fieldOwnedProperties).ownedProperties
}

// SetOwnedProperties overrides the ownership map at h.
func (t *Tree) SetOwnedProperties(h Handle, v map[uint8]board.PropertyOwnership) {
	t.set(h, fieldOwnedProperties, fieldValue{ownedProperties: v})
}

// SeenCCs resolves the drawn-card history visible at h.
func (t *Tree) SeenCCs(h Handle) []board.ChanceCard { return t.get(h, fieldSeenCCs).seenCCs }

// SetSeenCCs overrides the drawn-card history at h.
func (t *Tree) SetSeenCCs(h Handle, v []board.ChanceCard) {
	t.set(h, fieldSeenCCs, fieldValue{seenCCs: v})
}

// TopCC resolves the rotating deck-top index visible at h.
func (t *Tree) TopCC(h Handle) int { return t.get(h, fieldTopCC).topCC }

// SetTopCC overrides the rotating deck-top index at h.
func (t *Tree) SetTopCC(h Handle, v int) { t.set(h, fieldTopCC, fieldValue{topCC: v}) }

// Level1RentRounds resolves the remaining Level1Rent-effect round count
// visible at h.
func (t *Tree) Level1RentRounds(h Handle) int {
	return t.get(h, fieldLevel1RentRounds).level1RentRounds
}

// SetLevel1RentRounds overrides the remaining Level1Rent-effect round
// count at h.
func (t *Tree) SetLevel1RentRounds(h Handle, v int) {
	t.set(h, fieldLevel1RentRounds, fieldValue{level1RentRounds: v})
}

// JailRounds resolves the per-player remaining jail-round counts visible
// at h.
func (t *Tree) JailRounds(h Handle) []int { return t.get(h, fieldJailRounds).jailRounds }

// SetJailRounds overrides the per-player remaining jail-round counts at
// h.
func (t *Tree) SetJailRounds(h Handle, v []int) {
	t.set(h, fieldJailRounds, fieldValue{jailRounds: v})
}
