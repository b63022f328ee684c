package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// expandChoicefulCC ports gen_choiceful_cc_children's dispatch table. Each
// card-specific generator enumerates every legal choice; if none exists
// (no owned property to act on, say) a single no-op child advances the
// move instead.
func expandChoicefulCC(t *state.Tree, h state.Handle, card board.ChanceCard) ([]state.Handle, error) {
	var children []state.Handle

	switch card {
	case board.RentTo5:
		children = genCCRentToX(t, h, true)
	case board.RentTo1:
		children = genCCRentToX(t, h, false)
	case board.SetRentInc:
		children = genCCSetRentChange(t, h, true)
	case board.SetRentDec:
		children = genCCSetRentChange(t, h, false)
	case board.SideRentInc:
		children = genCCSideRentChange(t, h, true)
	case board.SideRentDec:
		children = genCCSideRentChange(t, h, false)
	case board.RentSpike:
		children = genCCRentSpike(t, h)
	case board.Bonus:
		children = genCCBonus(t, h)
	case board.SwapProperty:
		children = genCCSwapProperty(t, h)
	case board.OpponentToJail:
		children = genCCOpponentToJail(t, h)
	case board.GoToAnyProperty:
		children = genCCGoToAnyProperty(t, h)
	default:
		return nil, errors.Errorf("invariant violated at handle %d: choiceless card %v reached expandChoicefulCC", h, card)
	}

	if len(children) == 0 {
		child, advanced := newStateFromCC(t, h, card, state.BranchType{Kind: state.Choice})
		ageUnchanged(t, h, child, advanced)
		children = []state.Handle{child}
	}
	return children, nil
}

// genCCRentToX implements both RentTo1 (any owned property above level 1)
// and RentTo5 (only the current player's properties below level 5).
func genCCRentToX(t *state.Tree, parent state.Handle, toFive bool) []state.Handle {
	i := t.CurrentPlayer(parent)
	props := t.OwnedProperties(parent)
	card, target := board.RentTo1, uint8(1)
	if toFive {
		card, target = board.RentTo5, 5
	}

	var children []state.Handle
	for _, pos := range board.PropPositionList() {
		prop, ok := props[pos]
		if !ok || prop.RentLevel == target {
			continue
		}
		if toFive && prop.Owner != i {
			continue
		}

		newProps := copyOwnedProperties(props)
		p := newProps[pos]
		p.RentLevel = target
		newProps[pos] = p

		child, advanced := newStateFromCC(t, parent, card, state.BranchType{Kind: state.Choice})
		t.SetOwnedProperties(child, newProps)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}
	return children
}

var allColors = []board.Color{
	board.Brown, board.LightBlue, board.Pink, board.Orange,
	board.Red, board.Yellow, board.Green, board.Blue,
}

func genCCSetRentChange(t *state.Tree, parent state.Handle, increase bool) []state.Handle {
	i := t.CurrentPlayer(parent)
	props := t.OwnedProperties(parent)
	card := board.SetRentDec
	if increase {
		card = board.SetRentInc
	}

	var children []state.Handle
	for _, color := range allColors {
		positions := board.PropsByColor[color]
		ownsAny := false
		for _, pos := range positions {
			if p, ok := props[pos]; ok && p.Owner == i {
				ownsAny = true
				break
			}
		}
		if !ownsAny {
			continue
		}

		newProps := copyOwnedProperties(props)
		changed := false
		for _, pos := range positions {
			if p, ok := newProps[pos]; ok {
				if p.ChangeRent(increase) {
					changed = true
				}
				newProps[pos] = p
			}
		}
		if !changed {
			continue
		}

		child, advanced := newStateFromCC(t, parent, card, state.BranchType{Kind: state.Choice})
		t.SetOwnedProperties(child, newProps)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}
	return children
}

func genCCSideRentChange(t *state.Tree, parent state.Handle, increase bool) []state.Handle {
	i := t.CurrentPlayer(parent)
	props := t.OwnedProperties(parent)
	card := board.SideRentDec
	if increase {
		card = board.SideRentInc
	}

	var children []state.Handle
	for _, positions := range board.PropsBySide {
		ownsAny := false
		for _, pos := range positions {
			if p, ok := props[pos]; ok && p.Owner == i {
				ownsAny = true
				break
			}
		}
		if !ownsAny {
			continue
		}

		newProps := copyOwnedProperties(props)
		changed := false
		for _, pos := range positions {
			if p, ok := newProps[pos]; ok {
				if p.ChangeRent(increase) {
					changed = true
				}
				newProps[pos] = p
			}
		}
		if !changed {
			continue
		}

		child, advanced := newStateFromCC(t, parent, card, state.BranchType{Kind: state.Choice})
		t.SetOwnedProperties(child, newProps)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}
	return children
}

func genCCRentSpike(t *state.Tree, parent state.Handle) []state.Handle {
	i := t.CurrentPlayer(parent)
	props := t.OwnedProperties(parent)

	var children []state.Handle
	for _, pos := range board.PropPositionList() {
		prop, ok := props[pos]
		if !ok || prop.Owner != i {
			continue
		}

		newProps := copyOwnedProperties(props)
		changed := false
		p := newProps[pos]
		if p.RaiseRent() {
			changed = true
		}
		newProps[pos] = p

		for _, npos := range board.PropertyNeighbours[pos] {
			if np, ok := newProps[npos]; ok {
				if np.LowerRent() {
					changed = true
				}
				newProps[npos] = np
			}
		}
		if !changed {
			continue
		}

		child, advanced := newStateFromCC(t, parent, board.RentSpike, state.BranchType{Kind: state.Choice})
		t.SetOwnedProperties(child, newProps)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}
	return children
}

func genCCBonus(t *state.Tree, parent state.Handle) []state.Handle {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)

	var children []state.Handle
	for idx := range players {
		if idx == i {
			continue
		}
		newPlayers := copyPlayers(players)
		newPlayers[i].Balance += 200
		newPlayers[idx].Balance += 200

		child, advanced := newStateFromCC(t, parent, board.Bonus, state.BranchType{Kind: state.Choice})
		t.SetPlayers(child, newPlayers)
		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}
	return children
}

func genCCSwapProperty(t *state.Tree, parent state.Handle) []state.Handle {
	i := t.CurrentPlayer(parent)
	props := t.OwnedProperties(parent)
	positions := board.PropPositionList()

	var children []state.Handle
	for _, myPos := range positions {
		myProp, ok := props[myPos]
		if !ok || myProp.Owner != i {
			continue
		}
		for _, oppPos := range positions {
			oppProp, ok := props[oppPos]
			if !ok || oppProp.Owner == i {
				continue
			}

			newProps := copyOwnedProperties(props)
			a := newProps[myPos]
			a.Owner = oppProp.Owner
			newProps[myPos] = a
			b := newProps[oppPos]
			b.Owner = myProp.Owner
			newProps[oppPos] = b

			child, advanced := newStateFromCC(t, parent, board.SwapProperty, state.BranchType{Kind: state.Choice})
			t.SetOwnedProperties(child, newProps)
			ageUnchanged(t, parent, child, advanced)
			children = append(children, child)
		}
	}
	return children
}

func genCCOpponentToJail(t *state.Tree, parent state.Handle) []state.Handle {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)
	jailRounds := t.JailRounds(parent)

	var children []state.Handle
	for idx := range players {
		if idx == i {
			continue
		}
		newPlayers := copyPlayers(players)
		newPlayers[idx] = newPlayers[idx].SendToJail()

		child, advanced := newStateFromCC(t, parent, board.OpponentToJail, state.BranchType{Kind: state.Choice})
		t.SetPlayers(child, newPlayers)

		jr := decayedJailRounds(jailRounds)
		jr[idx] = board.JailTerm
		t.SetJailRounds(child, jr)
		t.SetLevel1RentRounds(child, decayedLevel1Rent(t.Level1RentRounds(parent), advanced))
		children = append(children, child)
	}
	return children
}

func genCCGoToAnyProperty(t *state.Tree, parent state.Handle) []state.Handle {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)
	seen := t.SeenCCs(parent)

	var children []state.Handle
	for _, pos := range board.PropPositionList() {
		newPlayers := copyPlayers(players)
		newPlayers[i].Position = pos

		child := t.NewChild(parent, state.BranchType{Kind: state.Choice}, state.MoveProperty)
		t.SetPlayers(child, newPlayers)

		if len(seen) == board.TotalChanceCards {
			t.SetTopCC(child, (t.TopCC(parent)+1)%board.TotalChanceCards)
		} else {
			newSeen := append(append([]board.ChanceCard(nil), seen...), board.GoToAnyProperty)
			t.SetSeenCCs(child, newSeen)
		}
		// The turn hasn't advanced yet: pending_move is Property, so the
		// landing is resolved (and the turn boilerplate applied) the way
		// any other property landing is.
		ageUnchanged(t, parent, child, false)
		children = append(children, child)
	}
	return children
}
