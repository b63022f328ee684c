// Package engine implements the expansion engine: one function per
// pending move type, each producing the full list of legal children for
// a node, grounded function-for-function on
// original_source/src/game/mod.rs's gen_*_children family.
package engine

import (
	"math"

	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// whenLandedOn maps a landing position to the move type that resolves it,
// ported from original_source's MoveType::when_landed_on.
func whenLandedOn(pos uint8) state.MoveType {
	switch board.ClassOf(pos) {
	case board.TileChanceCard:
		return state.MoveChanceCardDraw
	case board.TileLocation:
		return state.MoveLocation
	case board.TileProperty:
		return state.MoveProperty
	default:
		return state.MoveRoll
	}
}

func nextPlayerIndex(current, playerCount int) int {
	return (current + 1) % playerCount
}

func copyPlayers(players []board.Player) []board.Player {
	out := make([]board.Player, len(players))
	copy(out, players)
	return out
}

func copyOwnedProperties(props map[uint8]board.PropertyOwnership) map[uint8]board.PropertyOwnership {
	out := make(map[uint8]board.PropertyOwnership, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// decayedLevel1Rent is the carried-forward baseline every child starts
// from: the parent's remaining Level1Rent-effect rounds, decremented by
// one (saturating at 0) if the child advances the turn. A child that
// freshly sets this field (only the Level1Rent chance card does) bypasses
// this baseline entirely rather than aging a value it just established.
func decayedLevel1Rent(parentVal int, advancedTurn bool) int {
	if advancedTurn && parentVal > 0 {
		return parentVal - 1
	}
	return parentVal
}

// decayedJailRounds is the carried-forward baseline for every player's
// remaining jail term, decremented by one (saturating at 0). A player
// whose jail term is freshly assigned this same transition (sent to or
// released from jail) has that assignment written over this baseline by
// the caller, since a just-established value hasn't aged yet.
func decayedJailRounds(parentVal []int) []int {
	out := make([]int, len(parentVal))
	for i, r := range parentVal {
		if r > 0 {
			out[i] = r - 1
		}
	}
	return out
}

// ageUnchanged applies decayedLevel1Rent and decayedJailRounds verbatim to
// child, for the common case where this move step neither sends anyone to
// nor releases anyone from jail, nor touches the Level1Rent counter.
func ageUnchanged(t *state.Tree, parent, child state.Handle, advancedTurn bool) {
	t.SetLevel1RentRounds(child, decayedLevel1Rent(t.Level1RentRounds(parent), advancedTurn))
	t.SetJailRounds(child, decayedJailRounds(t.JailRounds(parent)))
}

// finishTurn creates a child under the given pending move, advancing the
// turn to the next player only when nextMove is Roll (the point at which a
// move sequence actually hands off) and the current player's last roll
// wasn't a double. Intermediate moves within the same turn (Auction,
// SellProperty, a Location teleport) keep the current player as-is.
func finishTurn(t *state.Tree, parent state.Handle, branch state.BranchType, nextMove state.MoveType) (state.Handle, bool) {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)

	advanced := false
	current := i
	if nextMove == state.MoveRoll {
		advanced = players[i].DoublesRolled == 0
		if advanced {
			current = nextPlayerIndex(i, len(players))
		}
	}

	child := t.NewChild(parent, branch, nextMove)
	t.SetCurrentPlayer(child, current)
	return child, advanced
}

// checkProbabilitySum enforces that a chance-expanded node's children's
// probabilities sum to 1 within a small floating-point tolerance.
func checkProbabilitySum(handle state.Handle, probs []float64) error {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) >= 1e-9 {
		return errors.Errorf("chance probabilities at handle %d sum to %v, want 1", handle, sum)
	}
	return nil
}
