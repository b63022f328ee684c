package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// expandSellProperty resolves a forced sale: the indebted player must
// liquidate some subset of their properties to clear a negative balance.
// Subsets are tried smallest-first (via board.KSubsets) so a player never
// sees a choice to sell more than the minimum needed; if even selling
// everything can't clear the debt the player is left bankrupt, which
// state.IsTerminal picks up from the resulting negative balance.
func expandSellProperty(t *state.Tree, h state.Handle) ([]state.Handle, error) {
	i := t.CurrentPlayer(h)
	players := t.Players(h)
	props := t.OwnedProperties(h)
	deficit := -players[i].Balance

	var owned []uint8
	for _, pos := range board.PropPositionList() {
		if p, ok := props[pos]; ok && p.Owner == i {
			owned = append(owned, pos)
		}
	}

	for k := 1; k <= len(owned); k++ {
		var children []state.Handle
		for _, subset := range board.KSubsets(len(owned), k) {
			var proceeds int32
			for _, idx := range subset {
				proceeds += board.Properties[owned[idx]].Price
			}
			if proceeds < deficit {
				continue
			}

			newPlayers := copyPlayers(players)
			newPlayers[i].Balance += proceeds
			newProps := copyOwnedProperties(props)
			for _, idx := range subset {
				delete(newProps, owned[idx])
			}

			child, advanced := finishTurn(t, h, state.BranchType{Kind: state.Choice}, state.MoveRoll)
			t.SetPlayers(child, newPlayers)
			t.SetOwnedProperties(child, newProps)
			ageUnchanged(t, h, child, advanced)
			children = append(children, child)
		}
		if len(children) > 0 {
			return children, nil
		}
	}

	child, advanced := finishTurn(t, h, state.BranchType{Kind: state.Choice}, state.MoveRoll)
	ageUnchanged(t, h, child, advanced)
	return []state.Handle{child}, nil
}
