package ui

import (
	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
)

// ClickResult says what a board click did
type ClickResult int

const (
	ClickNone ClickResult = iota
	ClickSelected
	ClickMoved
	ClickAttacked
)

func (r ClickResult) String() string {
	switch r {
	case ClickSelected:
		return "selected"
	case ClickMoved:
		return "moved"
	case ClickAttacked:
		return "attacked"
	}
	return "none"
}

// Selection tracks the highlighted cell and the current player's selected
// ship, with cached overlays for where it can move and what it can hit.
type Selection struct {
	eng *core.Engine

	cell    grid.Point
	hasCell bool
	ship    core.ShipID
	hasShip bool

	dests  []grid.Point
	attack []grid.Point
	fresh  bool
}

// NewSelection binds a selection to an engine's event stream
func NewSelection(e *core.Engine) *Selection {
	s := &Selection{eng: e}
	e.Subscribe(core.EvtShipMoved, func(core.Event) { s.invalidate() })
	e.Subscribe(core.EvtShipDamaged, func(core.Event) { s.invalidate() })
	e.Subscribe(core.EvtShipDestroyed, func(ev core.Event) {
		if s.hasShip && ev.Ship == s.ship {
			s.Clear()
			return
		}
		s.invalidate()
	})
	e.Subscribe(core.EvtNextTurn, func(core.Event) { s.Clear() })
	e.Subscribe(core.EvtGameOver, func(core.Event) { s.Clear() })
	return s
}

// Select highlights a cell and picks up the current player's ship on it.
// It reports whether a ship is now selected.
func (s *Selection) Select(cell grid.Point) bool {
	s.cell, s.hasCell = cell, true
	s.hasShip = false
	s.invalidate()
	if sh, ok := s.eng.ShipAt(s.eng.CurrentPlayer(), cell); ok {
		s.ship, s.hasShip = sh.ID, true
	}
	return s.hasShip
}

// Click applies a board click: move to a destination, attack an enemy in
// range, or otherwise select the clicked cell. Clicking the selected ship
// reselects it rather than moving it in place.
func (s *Selection) Click(cell grid.Point) ClickResult {
	if s.eng.IsGameOver() {
		return ClickNone
	}
	if sh, ok := s.Ship(); ok && cell != sh.Position {
		if s.eng.IsMoveLegal(sh.ID, cell) {
			s.eng.Move(sh.ID, cell)
			s.cell = cell
			return ClickMoved
		}
		if s.eng.CanAttack(sh.ID, cell) {
			s.eng.TryAttack(sh.ID, cell)
			return ClickAttacked
		}
	}
	if s.Select(cell) {
		return ClickSelected
	}
	return ClickNone
}

// SelectWeapon switches the selected ship's weapon
func (s *Selection) SelectWeapon(index int) {
	if sh, ok := s.Ship(); ok {
		s.eng.SelectWeapon(sh.ID, index)
		s.invalidate()
	}
}

// Clear drops the selection and cached overlays
func (s *Selection) Clear() {
	s.hasCell = false
	s.hasShip = false
	s.invalidate()
}

// Cell returns the highlighted cell
func (s *Selection) Cell() (grid.Point, bool) {
	return s.cell, s.hasCell
}

// Ship returns a copy of the selected ship. A ship that has left the board
// resets the selection.
func (s *Selection) Ship() (core.Ship, bool) {
	if !s.hasShip {
		return core.Ship{}, false
	}
	sh, ok := s.eng.Ship(s.ship)
	if !ok {
		s.Clear()
		return core.Ship{}, false
	}
	return sh, true
}

// Destinations lists cells the selected ship can move to, its own cell excluded
func (s *Selection) Destinations() []grid.Point {
	s.refresh()
	return s.dests
}

// AttackRange lists cells the selected ship can fire at, its own cell excluded
func (s *Selection) AttackRange() []grid.Point {
	s.refresh()
	return s.attack
}

// PathTo previews the route the selected ship would take to dest
func (s *Selection) PathTo(dest grid.Point) []grid.Point {
	sh, ok := s.Ship()
	if !ok {
		return nil
	}
	return s.eng.MovePath(sh.ID, dest)
}

func (s *Selection) invalidate() {
	s.fresh = false
	s.dests = nil
	s.attack = nil
}

func (s *Selection) refresh() {
	if s.fresh {
		return
	}
	sh, ok := s.Ship()
	if !ok {
		return
	}
	s.dests = without(s.eng.ReachableMoves(sh.ID), sh.Position)
	if sh.AttacksLeft() > 0 && sh.SelectedWeapon().CanFire() {
		s.attack = without(s.eng.AttackRange(sh.ID), sh.Position)
	}
	s.fresh = true
}

func without(cells []grid.Point, p grid.Point) []grid.Point {
	out := cells[:0:0]
	for _, c := range cells {
		if c != p {
			out = append(out, c)
		}
	}
	return out
}
