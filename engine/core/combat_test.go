package core

import (
	"testing"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) subscribeAll(e *Engine) {
	for _, t := range []EventType{EvtShipMoved, EvtNextTurn, EvtShipDestroyed, EvtGameOver, EvtShipDamaged} {
		e.Subscribe(t, func(ev Event) { r.events = append(r.events, ev) })
	}
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func TestAttackRange(t *testing.T) {
	spawnOnly := func(p grid.Point) bool { return p == grid.Pt(10, 10) || p == grid.Pt(0, 0) }
	e, a, _ := newDuel(t, 20, 20, grid.Pt(10, 10), grid.Pt(0, 0), WithTerrain(spawnOnly))

	cells := e.AttackRange(a)

	// Manhattan radius 5: 2*5*6+1 cells, terrain ignored
	assert.Len(t, cells, 61)
	for _, c := range cells {
		assert.LessOrEqual(t, c.Distance(grid.Pt(10, 10)), LaserRange)
	}
}

func TestTryAttack_Damages(t *testing.T) {
	e, a, b := newDuel(t, 10, 10, grid.Pt(0, 0), grid.Pt(3, 2))
	var rec recorder
	rec.subscribeAll(e)

	require.True(t, e.CanAttack(a, grid.Pt(3, 2)))
	e.TryAttack(a, grid.Pt(3, 2))

	target, _ := e.Ship(b)
	assert.Equal(t, DefaultShipHP-LaserDamage, target.Health.Current)
	attacker, _ := e.Ship(a)
	assert.Equal(t, 0, attacker.AttacksLeft())
	assert.Equal(t, []EventType{EvtShipDamaged}, rec.types())
	assert.Equal(t, LaserDamage, rec.events[0].Damage)
	assert.Equal(t, b, rec.events[0].Ship)

	// no attacks left this turn
	assert.False(t, e.CanAttack(a, grid.Pt(3, 2)))
	e.TryAttack(a, grid.Pt(3, 2))
	target, _ = e.Ship(b)
	assert.Equal(t, DefaultShipHP-LaserDamage, target.Health.Current)
}

func TestTryAttack_NoOps(t *testing.T) {
	e, a, b := newDuel(t, 10, 10, grid.Pt(0, 0), grid.Pt(5, 1))
	addShip(e, e.Players()[0], grid.Pt(1, 0))
	var rec recorder
	rec.subscribeAll(e)
	before := e.AllShips()

	tests := []struct {
		name     string
		attacker ShipID
		target   grid.Point
	}{
		{"out of range", a, grid.Pt(5, 1)},
		{"empty cell", a, grid.Pt(2, 2)},
		{"own ship", a, grid.Pt(1, 0)},
		{"enemy attacker on my turn", b, grid.Pt(1, 0)},
		{"unknown attacker", 99, grid.Pt(5, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, e.CanAttack(tt.attacker, tt.target))
			e.TryAttack(tt.attacker, tt.target)
			assert.Equal(t, before, e.AllShips())
			assert.Empty(t, rec.events)
		})
	}
}

func TestTryAttack_DestroysShip(t *testing.T) {
	e, a, b := newDuel(t, 10, 10, grid.Pt(0, 0), grid.Pt(2, 0))
	p := e.Players()
	addShip(e, p[1], grid.Pt(9, 9))
	var rec recorder
	rec.subscribeAll(e)

	var rosterAtEvent int
	e.Subscribe(EvtShipDestroyed, func(Event) { rosterAtEvent = len(e.ShipsOf(p[1])) })

	// 100 hp, 10 per laser shot, one shot per turn pair
	for i := 0; i < 10; i++ {
		e.TryAttack(a, grid.Pt(2, 0))
		e.AdvanceTurn()
		e.AdvanceTurn()
	}

	_, alive := e.Ship(b)
	assert.False(t, alive)
	assert.Len(t, e.ShipsOf(p[1]), 1)
	assert.Equal(t, 1, rosterAtEvent, "removed before the event fired")
	assert.False(t, e.IsGameOver())

	var destroyed []Event
	for _, ev := range rec.events {
		if ev.Type == EvtShipDestroyed {
			destroyed = append(destroyed, ev)
		}
	}
	require.Len(t, destroyed, 1)
	assert.Equal(t, grid.Pt(2, 0), destroyed[0].To)
	assert.Equal(t, b, destroyed[0].Ship)

	// the killing blow is reported as a hit first
	types := rec.types()
	i := len(types) - 1
	for types[i] != EvtShipDestroyed {
		i--
	}
	require.Positive(t, i)
	assert.Equal(t, EvtShipDamaged, types[i-1])
	assert.Equal(t, b, rec.events[i-1].Ship)
	assert.Equal(t, LaserDamage, rec.events[i-1].Damage)
}

func TestTryAttack_GameOver(t *testing.T) {
	e, a, b := newDuel(t, 10, 10, grid.Pt(0, 0), grid.Pt(1, 0))
	p := e.Players()
	e.fleets[p[1]][0].Health.Current = LaserDamage
	var rec recorder
	rec.subscribeAll(e)

	e.TryAttack(a, grid.Pt(1, 0))

	_, alive := e.Ship(b)
	assert.False(t, alive)
	assert.True(t, e.IsGameOver())
	assert.Equal(t, StateGameOver, e.State())
	winner, ok := e.Winner()
	assert.True(t, ok)
	assert.Equal(t, p[0], winner)
	assert.Equal(t, []EventType{EvtShipDamaged, EvtGameOver}, rec.types())
	assert.Equal(t, p[0], rec.events[1].Winner)
}

func TestGameOver_RejectsCommands(t *testing.T) {
	e, a, _ := newDuel(t, 10, 10, grid.Pt(0, 0), grid.Pt(1, 0))
	e.fleets[e.Players()[1]][0].Health.Current = 1
	e.TryAttack(a, grid.Pt(1, 0))
	require.True(t, e.IsGameOver())

	var rec recorder
	rec.subscribeAll(e)
	turn := e.Turn()
	before := e.AllShips()

	assert.False(t, e.IsMoveLegal(a, grid.Pt(0, 1)))
	e.Move(a, grid.Pt(0, 1))
	e.AdvanceTurn()
	e.SelectWeapon(a, 0)
	e.TryAttack(a, grid.Pt(1, 0))

	assert.Equal(t, turn, e.Turn())
	assert.Equal(t, before, e.AllShips())
	assert.Empty(t, rec.events)
}

func TestTryAttack_AmmoConsumed(t *testing.T) {
	e, a, b := newDuel(t, 20, 20, grid.Pt(0, 0), grid.Pt(8, 0), WithLoadout(LoadoutOf("missile", "laser")))
	const hp = 1000
	e.fleets[e.Players()[1]][0].Health = Health{Current: hp, Max: hp}

	for i := 0; i < MissileAmmo; i++ {
		e.TryAttack(a, grid.Pt(8, 0))
		e.AdvanceTurn()
		e.AdvanceTurn()
	}
	s, _ := e.Ship(a)
	assert.Equal(t, 0, *s.Weapons[0].AmmoLeft)
	target, _ := e.Ship(b)
	assert.Equal(t, hp-MissileAmmo*MissileDamage, target.Health.Current)

	// magazine empty: the missile cannot fire even with attacks left
	assert.Equal(t, 2, s.AttacksLeft())
	assert.False(t, e.CanAttack(a, grid.Pt(8, 0)))
	e.TryAttack(a, grid.Pt(8, 0))
	target, _ = e.Ship(b)
	assert.Equal(t, hp-MissileAmmo*MissileDamage, target.Health.Current)

	// and it cannot be re-selected once switched away
	e.SelectWeapon(a, 1)
	e.SelectWeapon(a, 0)
	s, _ = e.Ship(a)
	assert.Equal(t, 1, s.Selected)
	assert.False(t, e.CanAttack(a, grid.Pt(8, 0)), "laser range is 5")
}

func TestSelectWeapon(t *testing.T) {
	e, a, _ := newDuel(t, 20, 20, grid.Pt(0, 0), grid.Pt(8, 0), WithLoadout(LoadoutOf("laser", "missile")))

	assert.False(t, e.CanAttack(a, grid.Pt(8, 0)))
	e.SelectWeapon(a, 1)
	assert.True(t, e.CanAttack(a, grid.Pt(8, 0)))
	assert.Len(t, e.AttackRange(a), 2*MissileRange*(MissileRange+1)+1-countOffBoard(grid.Pt(0, 0), MissileRange, 20))

	e.SelectWeapon(a, 5)
	e.SelectWeapon(a, -1)
	s, _ := e.Ship(a)
	assert.Equal(t, 1, s.Selected)
}

// countOffBoard counts diamond cells around c that fall outside [0, size)
func countOffBoard(c grid.Point, r, size int) int {
	n := 0
	for y := c.Y - r; y <= c.Y+r; y++ {
		for x := c.X - r; x <= c.X+r; x++ {
			p := grid.Pt(x, y)
			if p.Distance(c) <= r && !p.InRange(grid.Pt(0, 0), grid.Pt(size, size)) {
				n++
			}
		}
	}
	return n
}
