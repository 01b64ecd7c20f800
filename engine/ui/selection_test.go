package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
)

func at(p grid.Point) core.Zone {
	return core.Zone{TopLeft: p, BottomRight: p}
}

func duel(t *testing.T, a, b grid.Point, opts ...core.Option) (*core.Engine, core.ShipID, core.ShipID) {
	t.Helper()
	e, err := core.NewEngine(10, 10, [2]core.Zone{at(a), at(b)}, opts...)
	require.NoError(t, err)
	p := e.Players()
	return e, e.ShipsOf(p[0])[0].ID, e.ShipsOf(p[1])[0].ID
}

func TestSelect_OwnShipOnly(t *testing.T) {
	e, a, _ := duel(t, grid.Pt(0, 0), grid.Pt(5, 5))
	sel := NewSelection(e)

	assert.False(t, sel.Select(grid.Pt(5, 5)), "enemy ship is not selectable")
	cell, ok := sel.Cell()
	assert.True(t, ok)
	assert.Equal(t, grid.Pt(5, 5), cell)

	require.True(t, sel.Select(grid.Pt(0, 0)))
	sh, ok := sel.Ship()
	require.True(t, ok)
	assert.Equal(t, a, sh.ID)
}

func TestDestinations_ExcludeOwnCell(t *testing.T) {
	e, _, _ := duel(t, grid.Pt(4, 4), grid.Pt(9, 9))
	sel := NewSelection(e)
	require.True(t, sel.Select(grid.Pt(4, 4)))

	dests := sel.Destinations()
	// diamond of radius 3 minus the origin
	assert.Len(t, dests, 24)
	assert.NotContains(t, dests, grid.Pt(4, 4))

	attack := sel.AttackRange()
	assert.NotContains(t, attack, grid.Pt(4, 4))
	assert.Contains(t, attack, grid.Pt(4, 9))
}

func TestDestinations_EmptyWithoutShip(t *testing.T) {
	e, _, _ := duel(t, grid.Pt(0, 0), grid.Pt(5, 5))
	sel := NewSelection(e)
	sel.Select(grid.Pt(3, 3))

	assert.Empty(t, sel.Destinations())
	assert.Empty(t, sel.AttackRange())
	assert.Nil(t, sel.PathTo(grid.Pt(3, 4)))
}

func TestClick_MoveRefreshesCache(t *testing.T) {
	e, a, _ := duel(t, grid.Pt(0, 0), grid.Pt(9, 9))
	sel := NewSelection(e)
	require.Equal(t, ClickSelected, sel.Click(grid.Pt(0, 0)))
	before := len(sel.Destinations())

	assert.Len(t, sel.PathTo(grid.Pt(2, 0)), 3)
	assert.Equal(t, ClickMoved, sel.Click(grid.Pt(2, 0)))

	sh, _ := e.Ship(a)
	assert.Equal(t, grid.Pt(2, 0), sh.Position)
	assert.Equal(t, 1, sh.ActiveMoves)

	after := sel.Destinations()
	assert.Less(t, len(after), before)
	assert.Contains(t, after, grid.Pt(3, 0))
	assert.NotContains(t, after, grid.Pt(2, 0))
}

func TestClick_Attack(t *testing.T) {
	e, _, b := duel(t, grid.Pt(0, 0), grid.Pt(8, 0))
	sel := NewSelection(e)
	sel.Click(grid.Pt(0, 0))
	assert.NotEmpty(t, sel.AttackRange())

	// out of laser range: just re-selects the cell
	assert.Equal(t, ClickNone, sel.Click(grid.Pt(8, 0)))

	sel.Click(grid.Pt(0, 0))
	assert.Equal(t, ClickMoved, sel.Click(grid.Pt(3, 0)))
	assert.Equal(t, ClickAttacked, sel.Click(grid.Pt(8, 0)))

	target, _ := e.Ship(b)
	assert.Equal(t, core.DefaultShipHP-core.LaserDamage, target.Health.Current)
	assert.Empty(t, sel.AttackRange(), "laser spent for this turn")
}

func TestNextTurnClearsSelection(t *testing.T) {
	e, _, _ := duel(t, grid.Pt(0, 0), grid.Pt(9, 9))
	sel := NewSelection(e)
	require.True(t, sel.Select(grid.Pt(0, 0)))
	require.NotEmpty(t, sel.Destinations())

	e.AdvanceTurn()

	_, ok := sel.Ship()
	assert.False(t, ok)
	_, ok = sel.Cell()
	assert.False(t, ok)
	assert.Empty(t, sel.Destinations())
}

func TestGameOverClearsSelection(t *testing.T) {
	e, _, _ := duel(t, grid.Pt(0, 0), grid.Pt(1, 0), core.WithLoadout(func() []core.Weapon {
		w := core.NewLaser()
		w.Damage = 1000
		return []core.Weapon{w}
	}))
	sel := NewSelection(e)
	sel.Click(grid.Pt(0, 0))

	assert.Equal(t, ClickAttacked, sel.Click(grid.Pt(1, 0)))
	assert.True(t, e.IsGameOver())
	_, ok := sel.Ship()
	assert.False(t, ok)
	assert.Equal(t, ClickNone, sel.Click(grid.Pt(0, 0)))
}

func TestSelectWeapon(t *testing.T) {
	e, a, _ := duel(t, grid.Pt(0, 0), grid.Pt(9, 9), core.WithLoadout(core.LoadoutOf("laser", "missile")))
	sel := NewSelection(e)
	sel.Select(grid.Pt(0, 0))

	sel.SelectWeapon(1)
	sh, _ := e.Ship(a)
	assert.Equal(t, 1, sh.Selected)
	assert.Equal(t, "Missile Launcher", sh.SelectedWeapon().Name)
}

func TestClickResultString(t *testing.T) {
	assert.Equal(t, "moved", ClickMoved.String())
	assert.Equal(t, "none", ClickResult(42).String())
}

func TestClick_SelectedShipReselects(t *testing.T) {
	e, a, _ := duel(t, grid.Pt(0, 0), grid.Pt(9, 9))
	sel := NewSelection(e)
	moved := 0
	e.Subscribe(core.EvtShipMoved, func(core.Event) { moved++ })

	require.Equal(t, ClickSelected, sel.Click(grid.Pt(0, 0)))
	assert.Equal(t, ClickSelected, sel.Click(grid.Pt(0, 0)))
	assert.Zero(t, moved)

	sh, ok := sel.Ship()
	require.True(t, ok)
	assert.Equal(t, a, sh.ID)
	assert.NotContains(t, sel.Destinations(), grid.Pt(0, 0))
}
