package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
)

// expandRoll ports original_source/src/game/mod.rs's gen_roll_children,
// generalized for this spec's explicit jail_rounds_remaining tracking
// (the source predates that field and instead baked the "three tries"
// logic into roll_for_doubles directly).
func expandRoll(t *state.Tree, h state.Handle) ([]state.Handle, error) {
	i := t.CurrentPlayer(h)
	players := t.Players(h)
	playerCount := len(players)
	jailRounds := t.JailRounds(h)

	var children []state.Handle
	var probs []float64

	if players[i].InJail {
		for _, roll := range board.SignificantRolls {
			if !roll.IsDouble && jailRounds[i] != 0 {
				continue
			}

			newPlayers := copyPlayers(players)
			newPlayers[i] = newPlayers[i].MoveBy(roll.Sum)

			exitedWithFee := false
			if !roll.IsDouble && jailRounds[i] == 0 {
				newPlayers[i].Balance -= board.JailExitFee
				exitedWithFee = true
			}

			move := whenLandedOn(newPlayers[i].Position)
			advance := move == state.MoveRoll
			current := i
			if advance {
				current = nextPlayerIndex(i, playerCount)
			}

			child := t.NewChild(h, state.BranchType{Kind: state.Chance, Probability: roll.Probability}, move)
			t.SetPlayers(child, newPlayers)
			t.SetCurrentPlayer(child, current)

			jr := decayedJailRounds(jailRounds)
			if roll.IsDouble || exitedWithFee {
				jr[i] = 0
			}
			t.SetJailRounds(child, jr)
			t.SetLevel1RentRounds(child, decayedLevel1Rent(t.Level1RentRounds(h), advance))

			children = append(children, child)
			probs = append(probs, roll.Probability)
		}

		if jailRounds[i] > 0 {
			child := t.NewChild(h, state.BranchType{Kind: state.Chance, Probability: board.SingleProbability}, state.MoveRoll)
			t.SetPlayers(child, players)
			t.SetCurrentPlayer(child, nextPlayerIndex(i, playerCount))
			t.SetJailRounds(child, decayedJailRounds(jailRounds))
			t.SetLevel1RentRounds(child, decayedLevel1Rent(t.Level1RentRounds(h), true))
			children = append(children, child)
			probs = append(probs, board.SingleProbability)
		}
	} else {
		for _, roll := range board.SignificantRolls {
			newPlayers := copyPlayers(players)
			newPlayers[i] = newPlayers[i].MoveBy(roll.Sum)

			sentToJail := false
			advanceBlockedByDouble := false

			if newPlayers[i].Position == board.GoToJailPosition {
				newPlayers[i] = newPlayers[i].SendToJail()
				sentToJail = true
			} else if roll.IsDouble {
				newPlayers[i].DoublesRolled++
				if newPlayers[i].DoublesRolled == 3 {
					newPlayers[i] = newPlayers[i].SendToJail()
					sentToJail = true
				} else {
					advanceBlockedByDouble = true
				}
			} else {
				newPlayers[i].DoublesRolled = 0
			}

			move := whenLandedOn(newPlayers[i].Position)
			advance := move == state.MoveRoll && !advanceBlockedByDouble
			current := i
			if advance {
				current = nextPlayerIndex(i, playerCount)
			}

			child := t.NewChild(h, state.BranchType{Kind: state.Chance, Probability: roll.Probability}, move)
			t.SetPlayers(child, newPlayers)
			t.SetCurrentPlayer(child, current)

			jr := decayedJailRounds(jailRounds)
			if sentToJail {
				jr[i] = board.JailTerm
			}
			t.SetJailRounds(child, jr)
			t.SetLevel1RentRounds(child, decayedLevel1Rent(t.Level1RentRounds(h), advance))

			children = append(children, child)
			probs = append(probs, roll.Probability)
		}
	}

	if err := checkProbabilitySum(h, probs); err != nil {
		return nil, err
	}
	return children, nil
}
