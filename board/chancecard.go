package board

// ChanceCard is one of the 14 fixed chance-card variants, grounded on
// original_source/src/game/globals.rs's ChanceCard enum. A chance card
// that affects a property only does so for properties that are owned;
// if none are owned, resolving such a card is a no-op.
type ChanceCard int

const (
	RentTo1 ChanceCard = iota
	RentTo5
	SetRentInc
	SetRentDec
	SideRentInc
	SideRentDec
	RentSpike
	Bonus
	SwapProperty
	OpponentToJail
	GoToAnyProperty
	PropertyTax
	Level1Rent
	AllToParking

	NumChanceCards = int(AllToParking) + 1
)

// TotalChanceCards is the fixed deck size (sum of ChanceCardCounts).
const TotalChanceCards = 21

// ChanceCardCounts is the deck composition: how many of each card the
// closed 21-card deck contains.
var ChanceCardCounts = map[ChanceCard]int{
	RentTo1:         3,
	RentTo5:         1,
	SetRentInc:      3,
	SetRentDec:      1,
	SideRentInc:     1,
	SideRentDec:     1,
	RentSpike:       2,
	Bonus:           2,
	SwapProperty:    2,
	OpponentToJail:  1,
	GoToAnyProperty: 1,
	PropertyTax:     1,
	Level1Rent:      1,
	AllToParking:    1,
}

// IsChoiceless reports whether the card's effect is fully determined once
// drawn, with no player choice involved.
func (c ChanceCard) IsChoiceless() bool {
	switch c {
	case PropertyTax, Level1Rent, AllToParking:
		return true
	default:
		return false
	}
}

// UnseenCounts returns how many of each card remain in the deck given the
// cards already drawn this game.
func UnseenCounts(seen []ChanceCard) map[ChanceCard]int {
	counts := make(map[ChanceCard]int, len(ChanceCardCounts))
	for card, n := range ChanceCardCounts {
		counts[card] = n
	}
	for _, card := range seen {
		counts[card]--
	}
	return counts
}

func (c ChanceCard) String() string {
	switch c {
	case RentTo1:
		return "RentTo1"
	case RentTo5:
		return "RentTo5"
	case SetRentInc:
		return "SetRentInc"
	case SetRentDec:
		return "SetRentDec"
	case SideRentInc:
		return "SideRentInc"
	case SideRentDec:
		return "SideRentDec"
	case RentSpike:
		return "RentSpike"
	case Bonus:
		return "Bonus"
	case SwapProperty:
		return "SwapProperty"
	case OpponentToJail:
		return "OpponentToJail"
	case GoToAnyProperty:
		return "GoToAnyProperty"
	case PropertyTax:
		return "PropertyTax"
	case Level1Rent:
		return "Level1Rent"
	case AllToParking:
		return "AllToParking"
	default:
		return "Unknown"
	}
}
