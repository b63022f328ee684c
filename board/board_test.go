package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanceCardCountsSumTo21(t *testing.T) {
	total := 0
	for _, n := range ChanceCardCounts {
		total += n
	}
	assert.Equal(t, TotalChanceCards, total)
}

func TestSignificantRollsSumToOne(t *testing.T) {
	total := 0.0
	for _, r := range SignificantRolls {
		total += r.Probability
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Len(t, SignificantRolls, 11)
}

func TestRollForDoublesSumsToOne(t *testing.T) {
	for _, tries := range []int{1, 2, 3} {
		total := 0.0
		for _, r := range RollForDoubles(tries) {
			total += r.Probability
		}
		assert.InDelta(t, 1.0, total, 1e-9)
	}
}

// Move_by(0) is an identity on position and does not clear in_jail.
func TestMoveByZeroIsIdentity(t *testing.T) {
	p := Player{InJail: true, Position: 20, Balance: 500}
	moved := p.MoveBy(0)
	assert.Equal(t, p.Position, moved.Position)
	assert.True(t, moved.InJail)
	assert.Equal(t, p.Balance, moved.Balance)
}

// A player on tile 34 moving by 5 lands on tile 3 and receives +200.
func TestMoveByWrapsAndCreditsGo(t *testing.T) {
	p := Player{Position: 34, Balance: 1000}
	moved := p.MoveBy(5)
	require.Equal(t, uint8(3), moved.Position)
	assert.Equal(t, int32(1200), moved.Balance)
}

func TestSendToJailResetsDoubles(t *testing.T) {
	p := Player{Position: 20, DoublesRolled: 2}
	jailed := p.SendToJail()
	assert.True(t, jailed.InJail)
	assert.Equal(t, uint8(JailPosition), jailed.Position)
	assert.Equal(t, uint8(0), jailed.DoublesRolled)
}

// Raise_rent then lower_rent restores rent_level for any level in 2..=4.
func TestRaiseThenLowerRentRestoresLevel(t *testing.T) {
	for level := uint8(2); level <= 4; level++ {
		o := PropertyOwnership{Owner: 0, RentLevel: level}
		changed := o.RaiseRent()
		assert.True(t, changed)
		changed = o.LowerRent()
		assert.True(t, changed)
		assert.Equal(t, level, o.RentLevel)
	}
}

// RaiseRent on a property already at rent-level 5 leaves it unchanged.
func TestRaiseRentClampsAtFive(t *testing.T) {
	o := PropertyOwnership{Owner: 0, RentLevel: 5}
	assert.False(t, o.RaiseRent())
	assert.Equal(t, uint8(5), o.RentLevel)
}

func TestLowerRentClampsAtOne(t *testing.T) {
	o := PropertyOwnership{Owner: 0, RentLevel: 1}
	assert.False(t, o.LowerRent())
	assert.Equal(t, uint8(1), o.RentLevel)
}

func TestKSubsetsLexicographic(t *testing.T) {
	subsets := KSubsets(4, 2)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, subsets)
}

func TestClassOfCoversEveryTile(t *testing.T) {
	for pos := uint8(0); pos < NumTiles; pos++ {
		class := ClassOf(pos)
		assert.GreaterOrEqual(t, int(class), 0)
	}
	assert.Equal(t, TileChanceCard, ClassOf(2))
	assert.Equal(t, TileLocation, ClassOf(7))
	assert.Equal(t, TileProperty, ClassOf(1))
	assert.Equal(t, TileJail, ClassOf(JailPosition))
	assert.Equal(t, TileGoToJail, ClassOf(GoToJailPosition))
	assert.Equal(t, TileFreeParking, ClassOf(FreeParkingPosition))
}
