package core

import (
	"math/rand"
	"testing"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zone(x1, y1, x2, y2 int) Zone {
	return Zone{TopLeft: grid.Pt(x1, y1), BottomRight: grid.Pt(x2, y2)}
}

func cell(x, y int) Zone {
	return zone(x, y, x, y)
}

// newDuel builds a board with one ship per player at fixed cells
func newDuel(t *testing.T, w, h int, a, b grid.Point, opts ...Option) (*Engine, ShipID, ShipID) {
	t.Helper()
	e, err := NewEngine(w, h, [2]Zone{cell(a.X, a.Y), cell(b.X, b.Y)}, opts...)
	require.NoError(t, err)
	p := e.Players()
	return e, e.ShipsOf(p[0])[0].ID, e.ShipsOf(p[1])[0].ID
}

// addShip puts an extra laser ship on the board for owner
func addShip(e *Engine, owner Player, pos grid.Point) ShipID {
	e.nextID++
	e.fleets[owner] = append(e.fleets[owner], newShip(e.nextID, pos, LaserLoadout()))
	return e.nextID
}

func TestNewEngine_ThreeByThree(t *testing.T) {
	e, err := NewEngine(3, 3, [2]Zone{zone(0, 0, 2, 0), zone(0, 2, 2, 2)}, WithSeed(7))
	require.NoError(t, err)

	min, max := e.Bounds()
	assert.Equal(t, grid.Pt(0, 0), min)
	assert.Equal(t, grid.Pt(3, 3), max)
	assert.Equal(t, 1, e.Turn())
	assert.Equal(t, StatePlaying, e.State())

	players := e.Players()
	assert.Len(t, players, 2)
	assert.Equal(t, "Player 1", players[0].Name)
	assert.Equal(t, ColorRed, players[0].Color)
	assert.Equal(t, "Player 2", players[1].Name)
	assert.Equal(t, ColorBlue, players[1].Color)
	assert.Equal(t, players[0], e.CurrentPlayer())

	zones := e.Zones()
	for i, p := range players {
		ships := e.ShipsOf(p)
		require.Len(t, ships, 1)
		assert.True(t, zones[i].Contains(ships[0].Position), "%s ship at %v", p, ships[0].Position)
		assert.Equal(t, DefaultShipHP, ships[0].Health.Current)
		assert.Equal(t, DefaultShipSpeed, ships[0].ActiveMoves)
		assert.Equal(t, "Laser", ships[0].SelectedWeapon().Name)
	}
	assert.Len(t, e.AllShips(), 2)
}

func TestNewEngine_SpawnsInsideZones(t *testing.T) {
	zones := [2]Zone{zone(0, 0, 29, 2), zone(0, 27, 29, 29)}
	for seed := int64(1); seed <= 25; seed++ {
		e, err := NewEngine(30, 30, zones, WithRand(rand.New(rand.NewSource(seed))), WithShipsPerPlayer(4))
		require.NoError(t, err)

		seen := map[grid.Point]bool{}
		for i, p := range e.Players() {
			ships := e.ShipsOf(p)
			require.Len(t, ships, 4)
			for _, s := range ships {
				assert.True(t, zones[i].Contains(s.Position))
				assert.False(t, seen[s.Position], "two ships share %v", s.Position)
				seen[s.Position] = true
			}
		}
	}
}

func TestNewEngine_Deterministic(t *testing.T) {
	zones := [2]Zone{zone(0, 0, 29, 2), zone(0, 27, 29, 29)}
	a, err := NewEngine(30, 30, zones, WithSeed(42))
	require.NoError(t, err)
	b, err := NewEngine(30, 30, zones, WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.AllShips(), b.AllShips())
}

func TestNewEngine_InvertedZone(t *testing.T) {
	tests := []struct {
		name  string
		zones [2]Zone
	}{
		{"first inverted on both axes", [2]Zone{zone(2, 2, 0, 0), zone(0, 2, 2, 2)}},
		{"second inverted on x", [2]Zone{zone(0, 0, 2, 0), zone(2, 2, 0, 2)}},
		{"inverted on y", [2]Zone{zone(0, 1, 2, 0), zone(0, 2, 2, 2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(3, 3, tt.zones)
			assert.Nil(t, e)
			require.Error(t, err)

			var ibe *InvalidBoundsError
			assert.ErrorAs(t, err, &ibe)
			assert.ErrorIs(t, err, ErrInvalidBounds)
		})
	}
}

func TestNewEngine_BadBoard(t *testing.T) {
	_, err := NewEngine(0, 3, [2]Zone{cell(0, 0), cell(0, 2)})
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewEngine(3, 3, [2]Zone{cell(0, 0), cell(0, 3)})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestNewEngine_ZoneFull(t *testing.T) {
	_, err := NewEngine(3, 3, [2]Zone{cell(1, 1), cell(1, 1)})
	assert.ErrorIs(t, err, ErrNoSpawnPoint)

	_, err = NewEngine(3, 3, [2]Zone{zone(0, 0, 1, 0), cell(2, 2)}, WithShipsPerPlayer(3))
	assert.ErrorIs(t, err, ErrNoSpawnPoint)
}

func TestNewEngine_TerrainAvoided(t *testing.T) {
	open := func(p grid.Point) bool { return p.X == 2 }
	for seed := int64(1); seed <= 10; seed++ {
		e, err := NewEngine(3, 3, [2]Zone{zone(0, 0, 2, 0), zone(0, 2, 2, 2)}, WithTerrain(open), WithSeed(seed))
		require.NoError(t, err)
		for _, s := range e.AllShips() {
			assert.Equal(t, 2, s.Position.X)
		}
	}
}

func TestNewEngine_DuplicatePlayers(t *testing.T) {
	p := Player{Name: "Twin"}
	_, err := NewEngine(3, 3, [2]Zone{cell(0, 0), cell(0, 2)}, WithPlayers([2]Player{p, p}))
	assert.ErrorIs(t, err, ErrDuplicatePlayers)
}

func TestNewEngine_Loadout(t *testing.T) {
	e, _, _ := newDuel(t, 3, 3, grid.Pt(0, 0), grid.Pt(2, 2), WithLoadout(LoadoutOf("missile", "laser", "railgun")))

	s := e.AllShips()[0]
	require.Len(t, s.Weapons, 2)
	assert.Equal(t, "Missile Launcher", s.SelectedWeapon().Name)
	assert.Equal(t, 2, s.Attacks())
	assert.Equal(t, 2, s.AttacksLeft())

	_, err := NewEngine(3, 3, [2]Zone{cell(0, 0), cell(2, 2)}, WithLoadout(func() []Weapon { return nil }))
	assert.ErrorIs(t, err, ErrEmptyLoadout)
}

func TestQueries_ReturnCopies(t *testing.T) {
	e, a, _ := newDuel(t, 5, 5, grid.Pt(0, 0), grid.Pt(4, 4), WithLoadout(LoadoutOf("missile")))

	s, ok := e.Ship(a)
	require.True(t, ok)
	s.Position = grid.Pt(3, 3)
	s.Health.Current = 1
	*s.Weapons[0].AmmoLeft = 0

	again, _ := e.Ship(a)
	assert.Equal(t, grid.Pt(0, 0), again.Position)
	assert.Equal(t, DefaultShipHP, again.Health.Current)
	assert.Equal(t, MissileAmmo, *again.Weapons[0].AmmoLeft)
}

func TestQueries_Lookup(t *testing.T) {
	e, a, b := newDuel(t, 5, 5, grid.Pt(0, 0), grid.Pt(4, 4))
	p := e.Players()

	s, ok := e.ShipAt(p[0], grid.Pt(0, 0))
	assert.True(t, ok)
	assert.Equal(t, a, s.ID)
	_, ok = e.ShipAt(p[0], grid.Pt(4, 4))
	assert.False(t, ok)

	enemy, owner, ok := e.EnemyShipAt(grid.Pt(4, 4))
	assert.True(t, ok)
	assert.Equal(t, b, enemy.ID)
	assert.Equal(t, p[1], owner)
	_, _, ok = e.EnemyShipAt(grid.Pt(0, 0))
	assert.False(t, ok, "own ship is not an enemy")

	assert.Len(t, e.EnemyShipsOf(p[0]), 1)
	assert.Equal(t, b, e.EnemyShipsOf(p[0])[0].ID)

	who, ok := e.OwnerOf(b)
	assert.True(t, ok)
	assert.Equal(t, p[1], who)
	assert.Equal(t, p[1], e.Opponent(p[0]))
	assert.Equal(t, p[0], e.Opponent(p[1]))

	_, ok = e.Ship(999)
	assert.False(t, ok)
	_, won := e.Winner()
	assert.False(t, won)
}

func TestGenerateRandomShips(t *testing.T) {
	z := zone(1, 1, 3, 2)
	ships, err := GenerateRandomShips(rand.New(rand.NewSource(3)), z, 6, LoadoutOf("laser", "missile"))
	require.NoError(t, err)
	require.Len(t, ships, 6)

	seen := map[grid.Point]bool{}
	for i, s := range ships {
		assert.Equal(t, ShipID(i+1), s.ID)
		assert.True(t, z.Contains(s.Position))
		assert.False(t, seen[s.Position], "two ships on %v", s.Position)
		seen[s.Position] = true
		assert.Len(t, s.Weapons, 2)
	}

	again, err := GenerateRandomShips(rand.New(rand.NewSource(3)), z, 6, LoadoutOf("laser", "missile"))
	require.NoError(t, err)
	assert.Equal(t, ships, again)

	_, err = GenerateRandomShips(rand.New(rand.NewSource(3)), z, 7, LaserLoadout)
	assert.ErrorIs(t, err, ErrNoSpawnPoint)

	_, err = GenerateRandomShips(rand.New(rand.NewSource(3)), zone(2, 2, 0, 0), 1, LaserLoadout)
	var ibe *InvalidBoundsError
	assert.ErrorAs(t, err, &ibe)
}
