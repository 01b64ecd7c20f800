package core

import (
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/pathfind"
)

func (e *Engine) moveField(s *Ship) *pathfind.Field {
	return pathfind.Search(s.Position, s.ActiveMoves, e.min, e.max, e.terrain)
}

// ReachableMoves lists the cells the ship could reach with its remaining
// moves, origin included. Cells holding any other ship are left out, but
// the search still passes through them. Nil for an unknown ship.
func (e *Engine) ReachableMoves(id ShipID) []grid.Point {
	s, _, ok := e.find(id)
	if !ok {
		return nil
	}
	field := e.moveField(s)
	out := make([]grid.Point, 0, len(field.Order))
	for _, c := range field.Order {
		if other, taken := e.occupant(c); taken && other != s {
			continue
		}
		out = append(out, c)
	}
	e.log.Debug().
		Uint64("ship", uint64(id)).
		Int("depth", s.ActiveMoves).
		Int("cells", len(out)).
		Msg("destinations computed")
	return out
}

// MovePath returns the route a move to dest would take, or nil if dest is
// not a legal destination for the ship
func (e *Engine) MovePath(id ShipID, dest grid.Point) []grid.Point {
	s, _, ok := e.find(id)
	if !ok || !e.legalMove(s, dest) {
		return nil
	}
	return e.moveField(s).PathTo(dest)
}

// IsMoveLegal reports whether Move(id, dest) would succeed
func (e *Engine) IsMoveLegal(id ShipID, dest grid.Point) bool {
	if e.state == StateGameOver {
		return false
	}
	s, owner, ok := e.find(id)
	if !ok || owner != e.CurrentPlayer() {
		return false
	}
	return e.legalMove(s, dest)
}

func (e *Engine) legalMove(s *Ship, dest grid.Point) bool {
	if s.Position.Distance(dest) > s.ActiveMoves {
		return false
	}
	if other, taken := e.occupant(dest); taken && other != s {
		return false
	}
	return e.moveField(s).Contains(dest)
}

// Move relocates a current-player ship, charges the Manhattan distance
// from its old cell and fires EvtShipMoved. Staying put is a legal move
// that costs nothing. Illegal moves change nothing and fire nothing.
func (e *Engine) Move(id ShipID, dest grid.Point) {
	if !e.accepting("move") {
		return
	}
	s, owner, ok := e.find(id)
	if !ok || owner != e.CurrentPlayer() || !e.legalMove(s, dest) {
		e.log.Debug().Uint64("ship", uint64(id)).Stringer("to", dest).Msg("move rejected")
		return
	}

	from := s.Position
	cost := from.Distance(dest)
	s.Position = dest
	s.ActiveMoves -= cost

	e.log.Debug().
		Uint64("ship", uint64(id)).
		Stringer("from", from).
		Stringer("to", dest).
		Int("movesLeft", s.ActiveMoves).
		Msg("ship moved")
	e.emit(Event{Type: EvtShipMoved, Ship: id, From: from, To: dest})
}
