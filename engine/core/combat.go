package core

import (
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/pathfind"
)

// AttackRange lists the cells within the selected weapon's range of the
// ship, origin included. Terrain does not block fire. Nil for an unknown
// ship.
func (e *Engine) AttackRange(id ShipID) []grid.Point {
	s, _, ok := e.find(id)
	if !ok {
		return nil
	}
	w := s.SelectedWeapon()
	cells := pathfind.Reachable(s.Position, w.Range, e.min, e.max, nil)
	e.log.Debug().
		Uint64("ship", uint64(id)).
		Str("weapon", w.Name).
		Int("cells", len(cells)).
		Msg("attack range computed")
	return cells
}

// CanAttack reports whether TryAttack(id, target) would hit something
func (e *Engine) CanAttack(id ShipID, target grid.Point) bool {
	if e.state == StateGameOver {
		return false
	}
	attacker, owner, ok := e.find(id)
	if !ok || owner != e.CurrentPlayer() {
		return false
	}
	_, _, ok = e.attackTarget(attacker, owner, target)
	return ok
}

func (e *Engine) attackTarget(attacker *Ship, owner Player, target grid.Point) (*Ship, Player, bool) {
	victim, victimOwner, ok := e.enemyAt(owner, target)
	if !ok {
		return nil, Player{}, false
	}
	if attacker.AttacksLeft() <= 0 {
		return nil, Player{}, false
	}
	w := attacker.SelectedWeapon()
	if !w.CanFire() {
		return nil, Player{}, false
	}
	if attacker.Position.Distance(target) > w.Range {
		return nil, Player{}, false
	}
	return victim, victimOwner, true
}

// TryAttack fires the attacker's selected weapon at the enemy ship on
// target. A destroyed ship leaves its owner's fleet before any event
// announces it. The killing blow of the match fires EvtGameOver instead
// of EvtShipDestroyed.
func (e *Engine) TryAttack(id ShipID, target grid.Point) {
	if !e.accepting("attack") {
		return
	}
	attacker, owner, ok := e.find(id)
	if !ok || owner != e.CurrentPlayer() {
		e.log.Debug().Uint64("ship", uint64(id)).Msg("attack rejected: not a current-player ship")
		return
	}
	victim, victimOwner, ok := e.attackTarget(attacker, owner, target)
	if !ok {
		e.log.Debug().Uint64("ship", uint64(id)).Stringer("target", target).Msg("attack rejected")
		return
	}

	w := &attacker.Weapons[attacker.Selected]
	victim.Health.Current -= w.Damage
	w.fire()

	e.log.Debug().
		Uint64("attacker", uint64(id)).
		Uint64("target", uint64(victim.ID)).
		Str("weapon", w.Name).
		Int("damage", w.Damage).
		Int("hp", victim.Health.Current).
		Msg("attack resolved")
	destroyed := victim.Destroyed()
	if destroyed {
		e.removeShip(victimOwner, victim.ID)
		e.log.Debug().Uint64("ship", uint64(victim.ID)).Stringer("at", target).Msg("ship destroyed")
	}
	e.emit(Event{Type: EvtShipDamaged, Ship: victim.ID, From: attacker.Position, To: target, Damage: w.Damage})

	if !destroyed {
		return
	}
	if e.checkGameOver() {
		return
	}
	e.emit(Event{Type: EvtShipDestroyed, Ship: victim.ID, To: target})
}

// SelectWeapon picks which weapon a current-player ship fires. Out of
// range indexes and weapons with an empty magazine are ignored.
func (e *Engine) SelectWeapon(id ShipID, index int) {
	if !e.accepting("select_weapon") {
		return
	}
	s, owner, ok := e.find(id)
	if !ok || owner != e.CurrentPlayer() {
		return
	}
	if index < 0 || index >= len(s.Weapons) || s.Weapons[index].OutOfAmmo() {
		return
	}
	s.Selected = index
}

func (e *Engine) removeShip(owner Player, id ShipID) {
	fleet := e.fleets[owner]
	for i, s := range fleet {
		if s.ID == id {
			e.fleets[owner] = append(fleet[:i], fleet[i+1:]...)
			return
		}
	}
}

// checkGameOver ends the match when only the current player has ships left
func (e *Engine) checkGameOver() bool {
	cur := e.CurrentPlayer()
	if len(e.fleets[cur]) == 0 {
		return false
	}
	for _, p := range e.players {
		if p != cur && len(e.fleets[p]) > 0 {
			return false
		}
	}
	e.state = StateGameOver
	e.winner = cur
	e.log.Debug().Str("winner", cur.Name).Int("turn", e.turn).Msg("game over")
	e.emit(Event{Type: EvtGameOver, Winner: cur})
	return true
}
