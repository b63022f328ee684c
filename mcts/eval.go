package mcts

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// evaluate computes the zero-mean property-weighted wealth score for seat
// at handle h: score_i = balance_i * propertyWorth_i, where propertyWorth_i
// is the total purchase price of every property i owns.
// The agent's value is its own score minus the mean score across all
// seats, so a perfectly even game evaluates to zero regardless of how
// wealthy the table is overall.
func evaluate(t *state.Tree, h state.Handle, seat int) float64 {
	players := t.Players(h)
	props := t.OwnedProperties(h)

	worth := make([]int32, len(players))
	for pos, ownership := range props {
		worth[ownership.Owner] += board.Properties[pos].Price
	}

	scores := make([]float64, len(players))
	var sum float64
	for i, p := range players {
		scores[i] = float64(p.Balance) * float64(worth[i])
		sum += scores[i]
	}

	mean := sum / float64(len(players))
	return scores[seat] - mean
}
