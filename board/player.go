package board

// Player is a single player's mutable entity state, diffed and stored by
// the state package the same way original_source/src/game/globals.rs's
// Player is threaded through state_diff.rs.
type Player struct {
	InJail        bool
	Position      uint8
	Balance       int32
	DoublesRolled uint8
}

// NewPlayer returns a player at Go with the starting balance.
func NewPlayer() Player {
	return Player{Position: 0, Balance: 1500}
}

// MoveBy advances the player's position by dist tiles (wrapping modulo
// NumTiles), clears InJail if dist != 0, and credits passing Go.
func (p Player) MoveBy(dist uint8) Player {
	newPos := (p.Position + dist) % NumTiles

	if p.InJail && dist != 0 {
		p.InJail = false
	}

	if newPos < p.Position {
		p.Balance += 200
	}

	p.Position = newPos
	return p
}

// SendToJail teleports the player to the jail tile, marks them in jail,
// and resets their doubles counter.
func (p Player) SendToJail() Player {
	p.Position = JailPosition
	p.InJail = true
	p.DoublesRolled = 0
	return p
}
