package core

import (
	"testing"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/maplib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	l := NewLaser()
	assert.Equal(t, 10, l.Damage)
	assert.Equal(t, 5, l.Range)
	assert.True(t, l.Unlimited())
	assert.True(t, l.CanFire())

	m := NewMissileLauncher()
	assert.Equal(t, 20, m.Damage)
	assert.Equal(t, 10, m.Range)
	require.NotNil(t, m.AmmoLeft)
	assert.Equal(t, 5, *m.AmmoLeft)
	assert.False(t, m.Unlimited())
}

func TestWeapon_FireAndReload(t *testing.T) {
	m := NewMissileLauncher()
	m.fire()
	assert.Equal(t, 0, m.AttacksLeft)
	assert.Equal(t, 4, *m.AmmoLeft)
	assert.False(t, m.CanFire())

	m.reload()
	assert.True(t, m.CanFire())
	assert.Equal(t, 4, *m.AmmoLeft, "reload refills attacks, not ammo")
}

func TestWeapon_String(t *testing.T) {
	assert.Equal(t, "Damage: 10\nRange: 5\nAttacks: 1/1\nAmmo: Unlimited", NewLaser().String())
	assert.Contains(t, NewMissileLauncher().String(), "Ammo: 5/5")
}

func TestWeaponByName(t *testing.T) {
	w, ok := WeaponByName(" Laser ")
	assert.True(t, ok)
	assert.Equal(t, "Laser", w.Name)

	_, ok = WeaponByName("railgun")
	assert.False(t, ok)
	assert.Len(t, LoadoutOf("railgun")(), 1)
}

func TestHealthRatio(t *testing.T) {
	assert.Equal(t, 0.5, Health{Current: 50, Max: 100}.Ratio())
	assert.Equal(t, 0.0, Health{}.Ratio())
}

func TestNewEngineFromLevel(t *testing.T) {
	lv := maplib.NewLevel(5, 5, 10)
	lv.SetZone(0, cell(0, 0))
	lv.SetZone(1, cell(4, 4))
	lv.Set(grid.Pt(1, 0), maplib.TileAsteroid)

	e, err := NewEngineFromLevel(lv, WithSeed(3))
	require.NoError(t, err)
	_, max := e.Bounds()
	assert.Equal(t, grid.Pt(5, 5), max)

	a := e.ShipsOf(e.CurrentPlayer())[0]
	assert.NotContains(t, e.ReachableMoves(a.ID), grid.Pt(1, 0))
	assert.Contains(t, e.AttackRange(a.ID), grid.Pt(1, 0))

	lv.StartingZones = lv.StartingZones[:1]
	_, err = NewEngineFromLevel(lv)
	assert.ErrorIs(t, err, maplib.ErrInvalidLevel)
}
