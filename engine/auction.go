package engine

import (
	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"gonum.org/v1/gonum/stat/distuv"
)

// bidWeights are the probability masses assigned to the five bid amounts
// sampled at quantile positions 1/6..5/6 of a bidder's stake-scaled normal
// distribution, symmetric around the midpoint.
var bidWeights = [5]float64{0.0675, 0.2410, 0.3830, 0.2410, 0.0675}

// numBidQuantiles is len(bidWeights); the k-th bid amount (k = 1..numBidQuantiles)
// is drawn at the quantile position k/(numBidQuantiles+1).
const numBidQuantiles = 5

// expandAuction models a forced auction: each player who can afford the
// minimum stake becomes a winner candidate with probability proportional
// to their balance, and conditional on winning bids one of up to five
// quantised amounts drawn from a normal distribution centred on half their
// spendable balance above the minimum stake. Adjacent bids that quantise
// to the same amount collapse into a single child with combined
// probability.
func expandAuction(t *state.Tree, parent state.Handle) ([]state.Handle, error) {
	i := t.CurrentPlayer(parent)
	players := t.Players(parent)
	props := t.OwnedProperties(parent)
	pos := players[i].Position

	type candidate struct {
		idx   int
		stake int32
	}
	var candidates []candidate
	var totalStake int32
	for idx, p := range players {
		if p.Balance >= board.AuctionMinStake {
			candidates = append(candidates, candidate{idx, p.Balance})
			totalStake += p.Balance
		}
	}

	if len(candidates) == 0 {
		child, advanced := finishTurn(t, parent, state.BranchType{Kind: state.Chance, Probability: 1}, state.MoveRoll)
		ageUnchanged(t, parent, child, advanced)
		return []state.Handle{child}, nil
	}

	var children []state.Handle
	var probs []float64

	for _, c := range candidates {
		winnerProb := float64(c.stake) / float64(totalStake)
		spread := float64(c.stake - board.AuctionMinStake)
		sigma := spread / 4
		if sigma <= 0 {
			sigma = 1
		}
		dist := distuv.Normal{Mu: spread / 2, Sigma: sigma}

		// Accumulate into a slice, not a map, so that bids which quantise
		// to the same amount merge in a fixed, run-stable order instead of
		// Go's randomised map iteration order.
		type weightedBid struct {
			bid    int32
			weight float64
		}
		var bids []weightedBid
		for k := 1; k <= numBidQuantiles; k++ {
			q := float64(k) / float64(numBidQuantiles+1)
			bid := quantizeBid(dist.Quantile(q), board.AuctionMinStake, c.stake)
			weight := winnerProb * bidWeights[k-1]

			merged := false
			for bi := range bids {
				if bids[bi].bid == bid {
					bids[bi].weight += weight
					merged = true
					break
				}
			}
			if !merged {
				bids = append(bids, weightedBid{bid, weight})
			}
		}

		for _, wb := range bids {
			bid, weight := wb.bid, wb.weight
			newPlayers := copyPlayers(players)
			newPlayers[c.idx].Balance -= bid

			newProps := copyOwnedProperties(props)
			newProps[pos] = board.PropertyOwnership{Owner: c.idx, RentLevel: 1}

			child := t.NewChild(parent, state.BranchType{Kind: state.Chance, Probability: weight}, state.MoveRoll)
			t.SetPlayers(child, newPlayers)
			t.SetOwnedProperties(child, newProps)

			advanced := players[i].DoublesRolled == 0
			current := i
			if advanced {
				current = nextPlayerIndex(i, len(players))
			}
			t.SetCurrentPlayer(child, current)
			ageUnchanged(t, parent, child, advanced)

			children = append(children, child)
			probs = append(probs, weight)
		}
	}

	if err := checkProbabilitySum(parent, probs); err != nil {
		return nil, err
	}
	return children, nil
}

// quantizeBid rounds raw down to the nearest multiple of 20 above min,
// clamped to [min, stake].
func quantizeBid(raw float64, min, stake int32) int32 {
	bid := int32(raw/20)*20 + min
	if bid < min {
		bid = min
	}
	if bid > stake {
		bid = stake
	}
	return bid
}
