package engine

import (
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// Expand returns the full list of children of h, generating them via the
// move-type-specific expansion rule if they don't already exist in the
// arena. Idempotent: a node that's already been expanded (e.g. by a prior
// MCTS iteration sharing the same arena) simply returns its cached
// children instead of re-expanding.
func Expand(t *state.Tree, h state.Handle) ([]state.Handle, error) {
	if children := t.Children(h); len(children) > 0 {
		return children, nil
	}

	switch move := t.PendingMove(h); move {
	case state.MoveRoll:
		return expandRoll(t, h)
	case state.MoveChanceCardDraw:
		return expandChanceCardDraw(t, h)
	case state.MoveChoicefulCC:
		return expandChoicefulCC(t, h, t.PendingCard(h))
	case state.MoveProperty:
		return expandProperty(t, h)
	case state.MoveAuction:
		return expandAuction(t, h)
	case state.MoveLocation:
		return expandLocation(t, h)
	case state.MoveSellProperty:
		return expandSellProperty(t, h)
	default:
		return nil, errors.Errorf("invariant violated at handle %d: unknown pending move %d", h, move)
	}
}
