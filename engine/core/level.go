package core

import (
	"fmt"

	"github.com/1siamBot/stellar-armada/engine/maplib"
	"github.com/1siamBot/stellar-armada/engine/pathfind"
)

// NewEngineFromLevel validates a level and builds an engine on its board,
// zones and terrain. Later options override the level's terrain.
func NewEngineFromLevel(lv *maplib.Level, opts ...Option) (*Engine, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	zones := lv.Zones()
	nav := pathfind.NewNavGrid(lv)
	all := append([]Option{WithTerrain(nav.Passable)}, opts...)
	e, err := NewEngine(lv.Width, lv.Height, [2]Zone{zones[0], zones[1]}, all...)
	if err != nil {
		return nil, fmt.Errorf("building engine from level: %w", err)
	}
	return e, nil
}
