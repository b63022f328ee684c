package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// expandLocation offers a teleport to any property tile for a flat fee, or
// declining and keeping the current position. Each teleport hands off to
// MoveProperty so the destination's ownership resolves exactly as a
// regular landing would.
func expandLocation(t *state.Tree, parent state.Handle) ([]state.Handle, error) {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)

	var children []state.Handle

	for _, pos := range board.PropPositionList() {
		newPlayers := copyPlayers(players)
		newPlayers[i].Balance -= board.LocationFee
		newPlayers[i].Position = pos

		child, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, state.MoveProperty)
		t.SetPlayers(child, newPlayers)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}

	declineChild, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, state.MoveRoll)
	ageUnchanged(t, parent, declineChild, advanced)
	children = append(children, declineChild)

	return children, nil
}
