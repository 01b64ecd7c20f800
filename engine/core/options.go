package core

import (
	"math/rand"

	"github.com/1siamBot/stellar-armada/engine/pathfind"
	"github.com/rs/zerolog"
)

// Option configures an Engine at construction
type Option func(*Engine)

// WithRand injects the random source used for ship placement
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a private random source; zero keeps the time-based default
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- placement only
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithShipsPerPlayer sets how many ships each fleet starts with
func WithShipsPerPlayer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.shipsPerPlayer = n
		}
	}
}

// WithLoadout sets the factory producing each new ship's weapons
func WithLoadout(f func() []Weapon) Option {
	return func(e *Engine) {
		if f != nil {
			e.loadout = f
		}
	}
}

// WithTerrain restricts movement to cells the passability func accepts.
// Attack range ignores terrain.
func WithTerrain(p pathfind.Passability) Option {
	return func(e *Engine) {
		e.terrain = p
	}
}

// WithPlayers replaces the default line-up; order is turn order
func WithPlayers(players [2]Player) Option {
	return func(e *Engine) {
		e.players = players
	}
}

// LaserLoadout is the default single-laser fit
func LaserLoadout() []Weapon {
	return []Weapon{NewLaser()}
}

// LoadoutOf builds a loadout factory from weapon names; unknown names are
// skipped and an empty result falls back to LaserLoadout
func LoadoutOf(names ...string) func() []Weapon {
	return func() []Weapon {
		var weapons []Weapon
		for _, n := range names {
			if w, ok := WeaponByName(n); ok {
				weapons = append(weapons, w)
			}
		}
		if len(weapons) == 0 {
			return LaserLoadout()
		}
		return weapons
	}
}
