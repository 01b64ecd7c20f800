package core

import "github.com/1siamBot/stellar-armada/engine/grid"

func (e *Engine) Players() [2]Player {
	return e.players
}

// CurrentPlayer is the player whose turn it is
func (e *Engine) CurrentPlayer() Player {
	return e.players[e.current]
}

// Opponent returns the other configured player
func (e *Engine) Opponent(p Player) Player {
	if p == e.players[0] {
		return e.players[1]
	}
	return e.players[0]
}

// Turn starts at 1 and grows by one per AdvanceTurn
func (e *Engine) Turn() int {
	return e.turn
}

func (e *Engine) State() GameState {
	return e.state
}

func (e *Engine) IsGameOver() bool {
	return e.state == StateGameOver
}

// Winner returns the winning player once the game is over
func (e *Engine) Winner() (Player, bool) {
	if e.state != StateGameOver {
		return Player{}, false
	}
	return e.winner, true
}

// Bounds returns the half-open board rectangle [min, max)
func (e *Engine) Bounds() (min, max grid.Point) {
	return e.min, e.max
}

func (e *Engine) Zones() [2]Zone {
	return e.zones
}

// AllShips returns copies of every live ship in player order
func (e *Engine) AllShips() []Ship {
	var out []Ship
	for _, p := range e.players {
		out = append(out, e.ShipsOf(p)...)
	}
	return out
}

// ShipsOf returns copies of p's live ships
func (e *Engine) ShipsOf(p Player) []Ship {
	fleet := e.fleets[p]
	out := make([]Ship, 0, len(fleet))
	for _, s := range fleet {
		out = append(out, s.clone())
	}
	return out
}

// EnemyShipsOf returns copies of the ships of every player except p
func (e *Engine) EnemyShipsOf(p Player) []Ship {
	var out []Ship
	for _, other := range e.players {
		if other != p {
			out = append(out, e.ShipsOf(other)...)
		}
	}
	return out
}

// Ship looks up a live ship by id
func (e *Engine) Ship(id ShipID) (Ship, bool) {
	s, _, ok := e.find(id)
	if !ok {
		return Ship{}, false
	}
	return s.clone(), true
}

func (e *Engine) OwnerOf(id ShipID) (Player, bool) {
	_, owner, ok := e.find(id)
	return owner, ok
}

// ShipAt returns p's ship at pos, if any
func (e *Engine) ShipAt(p Player, pos grid.Point) (Ship, bool) {
	for _, s := range e.fleets[p] {
		if s.Position == pos {
			return s.clone(), true
		}
	}
	return Ship{}, false
}

// EnemyShipAt returns the ship at pos owned by anyone but the current player
func (e *Engine) EnemyShipAt(pos grid.Point) (Ship, Player, bool) {
	s, owner, ok := e.enemyAt(e.CurrentPlayer(), pos)
	if !ok {
		return Ship{}, Player{}, false
	}
	return s.clone(), owner, true
}

func (e *Engine) find(id ShipID) (*Ship, Player, bool) {
	for _, p := range e.players {
		for _, s := range e.fleets[p] {
			if s.ID == id {
				return s, p, true
			}
		}
	}
	return nil, Player{}, false
}

func (e *Engine) occupant(pos grid.Point) (*Ship, bool) {
	for _, p := range e.players {
		for _, s := range e.fleets[p] {
			if s.Position == pos {
				return s, true
			}
		}
	}
	return nil, false
}

func (e *Engine) enemyAt(of Player, pos grid.Point) (*Ship, Player, bool) {
	for _, p := range e.players {
		if p == of {
			continue
		}
		for _, s := range e.fleets[p] {
			if s.Position == pos {
				return s, p, true
			}
		}
	}
	return nil, Player{}, false
}
