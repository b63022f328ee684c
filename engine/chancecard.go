package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// expandChanceCardDraw ports gen_cc_children: once the deck has cycled
// through all 21 cards the draw is deterministic (dispatch on
// seen_ccs[top_cc]); otherwise every distinct unseen card becomes a
// chance branch weighted by its remaining count.
func expandChanceCardDraw(t *state.Tree, h state.Handle) ([]state.Handle, error) {
	seen := t.SeenCCs(h)

	if len(seen) == board.TotalChanceCards {
		card := seen[t.TopCC(h)]
		if card.IsChoiceless() {
			child := expandChoicelessCC(t, h, card, 1.0)
			return []state.Handle{child}, nil
		}
		return expandChoicefulCC(t, h, card)
	}

	unseen := board.UnseenCounts(seen)
	remaining := board.TotalChanceCards - len(seen)

	var children []state.Handle
	var probs []float64

	for card := board.ChanceCard(0); int(card) < board.NumChanceCards; card++ {
		count := unseen[card]
		if count == 0 {
			continue
		}
		probability := float64(count) / float64(remaining)

		var child state.Handle
		if card.IsChoiceless() {
			child = expandChoicelessCC(t, h, card, probability)
		} else {
			child = t.NewChild(h, state.BranchType{Kind: state.Chance, Probability: probability}, state.MoveChoicefulCC)
			t.SetPendingCard(child, card)
		}

		children = append(children, child)
		probs = append(probs, probability)
	}

	if err := checkProbabilitySum(h, probs); err != nil {
		return nil, err
	}
	return children, nil
}

// newStateFromCC applies the boilerplate shared by every chance-card
// resolution, ported from new_state_from_cc: pending_move becomes Roll,
// the turn advances unless the current player's last roll was a double,
// and the drawn card is recorded (seen_ccs, or top_cc once the deck has
// cycled).
func newStateFromCC(t *state.Tree, parent state.Handle, card board.ChanceCard, branch state.BranchType) (state.Handle, bool) {
	child := t.NewChild(parent, branch, state.MoveRoll)

	i := t.CurrentPlayer(parent)
	players := t.Players(parent)
	advanced := players[i].DoublesRolled == 0
	current := i
	if advanced {
		current = nextPlayerIndex(i, len(players))
	}
	t.SetCurrentPlayer(child, current)

	seen := t.SeenCCs(parent)
	if len(seen) == board.TotalChanceCards {
		t.SetTopCC(child, (t.TopCC(parent)+1)%board.TotalChanceCards)
	} else {
		newSeen := append(append([]board.ChanceCard(nil), seen...), card)
		t.SetSeenCCs(child, newSeen)
	}

	return child, advanced
}

func expandChoicelessCC(t *state.Tree, parent state.Handle, card board.ChanceCard, probability float64) state.Handle {
	branch := state.BranchType{Kind: state.Chance, Probability: probability}
	switch card {
	case board.PropertyTax:
		return genCCPropertyTax(t, parent, branch)
	case board.Level1Rent:
		return genCCLevel1Rent(t, parent, branch)
	case board.AllToParking:
		return genCCAllToParking(t, parent, branch)
	default:
		panic("expandChoicelessCC: card is not choiceless")
	}
}

func genCCPropertyTax(t *state.Tree, parent state.Handle, branch state.BranchType) state.Handle {
	i := t.CurrentPlayer(parent)
	var tax int32
	for _, prop := range t.OwnedProperties(parent) {
		if prop.Owner == i {
			tax += board.PropertyTaxRate
		}
	}

	child, advanced := newStateFromCC(t, parent, board.PropertyTax, branch)
	players := copyPlayers(t.Players(parent))
	players[i].Balance -= tax
	t.SetPlayers(child, players)
	ageUnchanged(t, parent, child, advanced)
	return child
}

func genCCLevel1Rent(t *state.Tree, parent state.Handle, branch state.BranchType) state.Handle {
	child, advanced := newStateFromCC(t, parent, board.Level1Rent, branch)
	playerCount := len(t.Players(parent))
	t.SetLevel1RentRounds(child, playerCount*2)
	t.SetJailRounds(child, decayedJailRounds(t.JailRounds(parent)))
	_ = advanced
	return child
}

func genCCAllToParking(t *state.Tree, parent state.Handle, branch state.BranchType) state.Handle {
	child, advanced := newStateFromCC(t, parent, board.AllToParking, branch)
	players := copyPlayers(t.Players(parent))
	for idx := range players {
		if !players[idx].InJail {
			players[idx].Position = board.FreeParkingPosition
		}
	}
	t.SetPlayers(child, players)
	ageUnchanged(t, parent, child, advanced)
	return child
}
