package pathfind

import (
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/maplib"
)

// NavGrid provides a movement grid derived from a level's terrain
type NavGrid struct {
	Width, Height int
	blocked       []bool
}

// NewNavGrid builds a navigation grid from a level
func NewNavGrid(lv *maplib.Level) *NavGrid {
	ng := &NavGrid{
		Width:   lv.Width,
		Height:  lv.Height,
		blocked: make([]bool, lv.Width*lv.Height),
	}
	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			ng.blocked[y*lv.Width+x] = !lv.IsPassable(grid.Pt(x, y))
		}
	}
	return ng
}

// Passable checks if a cell can be entered
func (ng *NavGrid) Passable(p grid.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= ng.Width || p.Y >= ng.Height {
		return false
	}
	return !ng.blocked[p.Y*ng.Width+p.X]
}

// SetBlocked marks or clears a cell at runtime
func (ng *NavGrid) SetBlocked(p grid.Point, blocked bool) {
	if p.X >= 0 && p.Y >= 0 && p.X < ng.Width && p.Y < ng.Height {
		ng.blocked[p.Y*ng.Width+p.X] = blocked
	}
}

// Refresh rebuilds the nav grid from a level
func (ng *NavGrid) Refresh(lv *maplib.Level) {
	*ng = *NewNavGrid(lv)
}
