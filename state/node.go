// Package state implements the append-only-with-free-list arena of game
// state nodes and the diff-chain field lookup that resolves a node's
// fields by walking its parent chain.
package state

import (
	"fmt"

	"github.com/haziq21/monopoly-ai/board"
)

// Handle is an arena index uniquely identifying a node during its
// lifetime. Re-roots and dynamic resizing invalidate nothing tied to a
// handle, unlike a pointer.
type Handle int32

// NilHandle marks the absence of a handle (e.g. a root's self-parent
// before it is first assigned).
const NilHandle Handle = -1

// BranchKind classifies a non-root node's edge from its parent.
type BranchKind uint8

const (
	Choice BranchKind = iota
	Chance
)

// BranchType tags a child edge: either a player Choice, or a Chance
// outcome carrying its probability.
type BranchType struct {
	Kind        BranchKind
	Probability float64 // meaningful only when Kind == Chance
}

// MoveType is the pending move a node is waiting to be expanded by.
type MoveType int

const (
	MoveRoll MoveType = iota
	MoveChanceCardDraw
	MoveChoicefulCC
	MoveProperty
	MoveAuction
	MoveLocation
	MoveSellProperty
)

var moveTypeNames = [...]string{
	MoveRoll:           "Roll",
	MoveChanceCardDraw: "ChanceCardDraw",
	MoveChoicefulCC:    "ChoicefulCC",
	MoveProperty:       "Property",
	MoveAuction:        "Auction",
	MoveLocation:       "Location",
	MoveSellProperty:   "SellProperty",
}

func (m MoveType) String() string {
	if int(m) < 0 || int(m) >= len(moveTypeNames) {
		return fmt.Sprintf("MoveType(%d)", int(m))
	}
	return moveTypeNames[m]
}

// fieldID indexes the canonical, fixed set of tracked diff fields.
type fieldID uint8

const (
	fieldPlayers fieldID = iota
	fieldCurrentPlayer
	fieldOwnedProperties
	fieldSeenCCs
	fieldTopCC
	fieldLevel1RentRounds
	fieldJailRounds
	numFields
)

// fieldValue is a fixed-shape union of every field's possible payload.
// Only the member matching the field actually being stored is populated;
// this avoids the boxing/allocation an interface{} would cost on every
// get/set, keeping the hot lookup path a tight loop as the diff-chain
// contract requires.
type fieldValue struct {
	players          []board.Player
	currentPlayer    int
	ownedProperties  map[uint8]board.PropertyOwnership
	seenCCs          []board.ChanceCard
	topCC            int
	level1RentRounds int
	jailRounds       []int
}

// Node is one arena slot: a parent pointer, child list, this node's own
// branch/pending-move tags (never inherited), and a sparse, bitmask-keyed
// set of field overrides.
type Node struct {
	parent      Handle
	children    []Handle
	branch      BranchType
	pendingMove MoveType
	pendingCard board.ChanceCard // valid iff pendingMove == MoveChoicefulCC

	present uint8 // bitmask: which fields are overridden on this node
	fields  [numFields]fieldValue
}

func (n *Node) has(f fieldID) bool {
	return n.present&(1<<f) != 0
}

func (n *Node) override(f fieldID, v fieldValue) {
	n.present |= 1 << f
	n.fields[f] = v
}

// clear resets a freshly-reused node to its zero state, ready for Append
// to overwrite in place.
func (n *Node) clear() {
	n.parent = NilHandle
	n.children = n.children[:0]
	n.branch = BranchType{}
	n.pendingMove = MoveRoll
	n.pendingCard = 0
	n.present = 0
	n.fields = [numFields]fieldValue{}
}
