package core

import "github.com/1siamBot/stellar-armada/engine/grid"

const (
	DefaultShipHP    = 100
	DefaultShipSpeed = 3
)

// ShipID identifies a ship for the lifetime of one engine
type ShipID uint64

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// Ship is a unit on the board. The engine owns live ships; callers only
// ever see copies returned by queries.
type Ship struct {
	ID          ShipID
	Position    grid.Point
	Health      Health
	Speed       int
	ActiveMoves int
	Weapons     []Weapon
	Selected    int
}

func newShip(id ShipID, pos grid.Point, weapons []Weapon) *Ship {
	return &Ship{
		ID:          id,
		Position:    pos,
		Health:      Health{Current: DefaultShipHP, Max: DefaultShipHP},
		Speed:       DefaultShipSpeed,
		ActiveMoves: DefaultShipSpeed,
		Weapons:     weapons,
	}
}

// SelectedWeapon returns the weapon used for attacks
func (s Ship) SelectedWeapon() Weapon {
	return s.Weapons[s.Selected]
}

// Attacks is the summed per-turn attack allowance of all weapons
func (s Ship) Attacks() int {
	n := 0
	for _, w := range s.Weapons {
		n += w.AttacksPerTurn
	}
	return n
}

// AttacksLeft is the summed remaining attacks of all weapons
func (s Ship) AttacksLeft() int {
	n := 0
	for _, w := range s.Weapons {
		n += w.AttacksLeft
	}
	return n
}

func (s Ship) Destroyed() bool {
	return s.Health.Current <= 0
}

func (s *Ship) reset() {
	s.ActiveMoves = s.Speed
	for i := range s.Weapons {
		s.Weapons[i].reload()
	}
}

func (s *Ship) clone() Ship {
	c := *s
	c.Weapons = make([]Weapon, len(s.Weapons))
	for i, w := range s.Weapons {
		c.Weapons[i] = w.clone()
	}
	return c
}
