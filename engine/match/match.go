// Package match turns configuration into ready-to-play engines.
package match

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/1siamBot/stellar-armada/engine/config"
	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/maplib"
)

// Levels lists the playable levels. An explicit file is the only choice;
// otherwise every level in the configured directory, or the built-in 30x30
// board when the directory is empty or missing.
func Levels(cfg config.GameConfig, file string) ([]*maplib.Level, error) {
	if file != "" {
		lv, err := maplib.LoadJSON(file)
		if err != nil {
			return nil, err
		}
		return []*maplib.Level{lv}, nil
	}
	levels, err := maplib.LoadLevels(cfg.LevelsDir)
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return []*maplib.Level{maplib.NewSimpleLevel()}, nil
	}
	return levels, nil
}

// LoadLevel resolves the level to play: the explicit file, or the
// configured index into Levels
func LoadLevel(cfg config.GameConfig, file string) (*maplib.Level, error) {
	levels, err := Levels(cfg, file)
	if err != nil {
		return nil, err
	}
	if file != "" {
		return levels[0], nil
	}
	if cfg.LevelIndex < 0 || cfg.LevelIndex >= len(levels) {
		return nil, fmt.Errorf("level index %d out of range [0,%d)", cfg.LevelIndex, len(levels))
	}
	return levels[cfg.LevelIndex], nil
}

// Options builds engine options from the game section
func Options(cfg config.GameConfig, log zerolog.Logger) []core.Option {
	return []core.Option{
		core.WithSeed(cfg.Seed),
		core.WithShipsPerPlayer(cfg.ShipsPerPlayer),
		core.WithLoadout(core.LoadoutOf(cfg.Loadout...)),
		core.WithLogger(log),
	}
}

// Factory returns a constructor for fresh matches on lv. A fixed seed
// replays the same spawn on every restart.
func Factory(cfg config.GameConfig, lv *maplib.Level, log zerolog.Logger) func() (*core.Engine, error) {
	return func() (*core.Engine, error) {
		return core.NewEngineFromLevel(lv, Options(cfg, log)...)
	}
}
