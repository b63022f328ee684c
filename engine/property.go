package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// expandProperty resolves a landing on a property tile: buy-or-auction
// when unowned, a rent-level raise when it's already the current player's
// own, rent payment (possibly triggering a forced sale) followed by a
// rent-level raise when it's an opponent's.
func expandProperty(t *state.Tree, h state.Handle) ([]state.Handle, error) {
	i := t.CurrentPlayer(h)
	players := t.Players(h)
	props := t.OwnedProperties(h)
	pos := players[i].Position

	prop, owned := props[pos]
	switch {
	case !owned:
		return expandUnownedProperty(t, h, pos)
	case prop.Owner == i:
		return expandOwnProperty(t, h, pos)
	default:
		return expandOpponentProperty(t, h, pos, prop)
	}
}

func expandUnownedProperty(t *state.Tree, parent state.Handle, pos uint8) ([]state.Handle, error) {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)
	price := board.Properties[pos].Price

	var children []state.Handle

	if players[i].Balance >= price {
		child, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, state.MoveRoll)
		newPlayers := copyPlayers(players)
		newPlayers[i].Balance -= price
		t.SetPlayers(child, newPlayers)

		newProps := copyOwnedProperties(t.OwnedProperties(parent))
		newProps[pos] = board.PropertyOwnership{Owner: i, RentLevel: 1}
		t.SetOwnedProperties(child, newProps)

		ageUnchanged(t, parent, child, advanced)
		children = append(children, child)
	}

	auctionChild, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, state.MoveAuction)
	ageUnchanged(t, parent, auctionChild, advanced)
	children = append(children, auctionChild)

	return children, nil
}

func expandOwnProperty(t *state.Tree, parent state.Handle, pos uint8) ([]state.Handle, error) {
	child, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, state.MoveRoll)

	newProps := copyOwnedProperties(t.OwnedProperties(parent))
	o := newProps[pos]
	o.RaiseRent()
	newProps[pos] = o
	t.SetOwnedProperties(child, newProps)

	ageUnchanged(t, parent, child, advanced)
	return []state.Handle{child}, nil
}

func expandOpponentProperty(t *state.Tree, parent state.Handle, pos uint8, prop board.PropertyOwnership) ([]state.Handle, error) {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)

	level := prop.RentLevel
	if t.Level1RentRounds(parent) > 0 {
		level = 1
	}
	rent := board.Properties[pos].Rents[level-1]

	newPlayers := copyPlayers(players)
	newPlayers[i].Balance -= rent
	newPlayers[prop.Owner].Balance += rent

	nextMove := state.MoveRoll
	if newPlayers[i].Balance < 0 {
		nextMove = state.MoveSellProperty
	}

	child, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Choice}, nextMove)
	t.SetPlayers(child, newPlayers)

	newProps := copyOwnedProperties(t.OwnedProperties(parent))
	o := newProps[pos]
	o.RaiseRent()
	newProps[pos] = o
	t.SetOwnedProperties(child, newProps)

	ageUnchanged(t, parent, child, advanced)
	return []state.Handle{child}, nil
}
