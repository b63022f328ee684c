// Package board holds the immutable, process-lifetime reference data for
// the 36-tile board: tile classes, property prices and rent ladders,
// colour and side groupings, neighbour adjacency, and the dice and
// chance-card probability tables.
package board

// Color is the colour set a property belongs to.
type Color int

const (
	Brown Color = iota
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	Blue
)

// TileClass classifies a board position.
type TileClass int

const (
	TileGo TileClass = iota
	TileProperty
	TileChanceCard
	TileLocation
	TileJail
	TileGoToJail
	TileFreeParking
	TileBlank
)

const (
	NumTiles = 36

	JailPosition        = 9
	GoToJailPosition    = 27
	FreeParkingPosition = 18

	JailExitFee     = 100
	LocationFee     = 100
	PropertyTaxRate = 50
	AuctionMinStake = 20

	// JailTerm is the number of rounds a jailed player must wait before
	// the jail-exit fee option becomes available. Player.SendToJail does
	// not record it; the engine assigns it whenever it jails a player.
	JailTerm = 3
)

// Property describes a property tile: its colour set, purchase price, and
// the rent amounts for each of its 5 rent levels.
type Property struct {
	Color Color
	Price int32
	Rents [5]int32
}

// Properties holds every property tile keyed by board position, grounded
// on original_source/src/game/globals.rs's PROPERTIES table.
var Properties = map[uint8]Property{
	1:  {Brown, 60, [5]int32{70, 130, 220, 370, 750}},
	3:  {Brown, 60, [5]int32{70, 130, 220, 370, 750}},
	5:  {LightBlue, 100, [5]int32{80, 140, 240, 410, 800}},
	6:  {LightBlue, 100, [5]int32{80, 140, 240, 410, 800}},
	8:  {LightBlue, 120, [5]int32{100, 160, 260, 440, 860}},
	10: {Pink, 140, [5]int32{110, 180, 290, 460, 900}},
	12: {Pink, 140, [5]int32{110, 180, 290, 460, 900}},
	13: {Pink, 160, [5]int32{130, 200, 310, 490, 980}},
	14: {Orange, 180, [5]int32{140, 210, 330, 520, 1000}},
	15: {Orange, 180, [5]int32{140, 210, 330, 520, 1000}},
	17: {Orange, 200, [5]int32{160, 230, 350, 550, 1100}},
	19: {Red, 220, [5]int32{170, 250, 380, 580, 1160}},
	21: {Red, 220, [5]int32{170, 250, 380, 580, 1160}},
	22: {Red, 240, [5]int32{190, 270, 400, 610, 1200}},
	23: {Yellow, 260, [5]int32{200, 280, 420, 640, 1300}},
	24: {Yellow, 260, [5]int32{200, 280, 420, 640, 1300}},
	26: {Yellow, 280, [5]int32{220, 300, 440, 670, 1340}},
	28: {Green, 300, [5]int32{230, 320, 460, 700, 1400}},
	30: {Green, 300, [5]int32{230, 320, 460, 700, 1400}},
	31: {Green, 320, [5]int32{250, 340, 480, 730, 1440}},
	33: {Blue, 350, [5]int32{270, 360, 510, 740, 1500}},
	35: {Blue, 400, [5]int32{300, 400, 560, 810, 1600}},
}

// PropsByColor groups property positions by colour set.
var PropsByColor = map[Color][]uint8{
	Brown:     {1, 3},
	LightBlue: {5, 6, 8},
	Pink:      {10, 12, 13},
	Orange:    {14, 15, 17},
	Red:       {19, 21, 22},
	Yellow:    {23, 24, 26},
	Green:     {28, 30, 31},
	Blue:      {33, 35},
}

// PropsBySide groups property positions by the board side they sit on.
var PropsBySide = [4][]uint8{
	{1, 3, 5, 6, 8},
	{10, 12, 13, 14, 15, 17},
	{19, 21, 22, 23, 24, 26},
	{28, 30, 31, 33, 35},
}

// PropertyNeighbours maps each property position to its two nearest
// neighbouring property positions going anti-clockwise and clockwise,
// wrapping around the board.
var PropertyNeighbours = map[uint8][2]uint8{
	1:  {35, 3},
	3:  {1, 5},
	5:  {3, 6},
	6:  {5, 8},
	8:  {6, 10},
	10: {8, 12},
	12: {10, 13},
	13: {12, 14},
	14: {13, 15},
	15: {14, 17},
	17: {15, 19},
	19: {17, 21},
	21: {19, 22},
	22: {21, 23},
	23: {22, 24},
	24: {23, 26},
	26: {24, 28},
	28: {26, 30},
	30: {28, 31},
	31: {30, 33},
	33: {31, 35},
	35: {33, 1},
}

// CCPositions, LocPositions, PropPositions and CornerPositions classify
// every tile position on the board.
var (
	CCPositions     = map[uint8]bool{2: true, 4: true, 11: true, 20: true, 29: true, 32: true}
	LocPositions    = map[uint8]bool{7: true, 16: true, 25: true, 34: true}
	PropPositions   = buildPropPositions()
	CornerPositions = map[uint8]bool{0: true, 9: true, 18: true, 27: true}
)

func buildPropPositions() map[uint8]bool {
	m := make(map[uint8]bool, len(Properties))
	for pos := range Properties {
		m[pos] = true
	}
	return m
}

// ClassOf returns the tile class of a board position.
func ClassOf(pos uint8) TileClass {
	switch {
	case pos == 0:
		return TileGo
	case pos == JailPosition:
		return TileJail
	case pos == GoToJailPosition:
		return TileGoToJail
	case pos == FreeParkingPosition:
		return TileFreeParking
	case PropPositions[pos]:
		return TileProperty
	case CCPositions[pos]:
		return TileChanceCard
	case LocPositions[pos]:
		return TileLocation
	default:
		return TileBlank
	}
}

// PropPositionList returns every property position, in ascending order,
// for callers that need a stable iteration order instead of ranging
// directly over the Properties map.
func PropPositionList() []uint8 {
	positions := make([]uint8, 0, len(Properties))
	for pos := range Properties {
		positions = append(positions, pos)
	}
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && positions[j-1] > positions[j]; j-- {
			positions[j-1], positions[j] = positions[j], positions[j-1]
		}
	}
	return positions
}
