package editor

import (
	"errors"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/maplib"
)

const (
	DefaultFile  = "level.json"
	MaxBrushSize = 5
)

// TileChange is one cell's before and after
type TileChange struct {
	Cell     grid.Point
	Old, New maplib.TileType
}

// ZoneChange records a starting zone replacement
type ZoneChange struct {
	Slot     int
	Old, New grid.Zone
	Existed  bool // slot was present before the change
}

// Action represents an undoable editor action
type Action struct {
	Tiles []TileChange
	Zone  *ZoneChange
}

// Tool represents the current editor tool
type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
	ToolZone
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolErase:
		return "erase"
	case ToolZone:
		return "zone"
	}
	return "unknown"
}

// Editor holds level editor state
type Editor struct {
	Level     *maplib.Level
	Brush     maplib.TileType
	BrushSize int
	Tool      Tool
	ZoneSlot  int
	UndoStack []Action
	RedoStack []Action
	FilePath  string
	Modified  bool
	ShowGrid  bool
}

// NewEditor starts on a blank level with the stock starting zones
func NewEditor(width, height, tileSize int) *Editor {
	e := &Editor{Brush: maplib.TileAsteroid, BrushSize: 1, ShowGrid: true}
	e.NewLevel(width, height, tileSize)
	return e
}

// NewLevel replaces the level with an empty one. Zones hug the top and
// bottom rows, three rows deep where the board allows.
func (e *Editor) NewLevel(w, h, tileSize int) {
	lv := maplib.NewLevel(w, h, tileSize)
	depth := 3
	if h < 2*depth {
		depth = max(h/2, 1)
	}
	lv.SetZone(0, grid.Zone{TopLeft: grid.Pt(0, 0), BottomRight: grid.Pt(w-1, depth-1)})
	lv.SetZone(1, grid.Zone{TopLeft: grid.Pt(0, h-depth), BottomRight: grid.Pt(w-1, h-1)})
	e.reset(lv, "")
}

func (e *Editor) reset(lv *maplib.Level, path string) {
	e.Level = lv
	e.FilePath = path
	e.Modified = false
	e.UndoStack = nil
	e.RedoStack = nil
}

// LoadLevel loads a level file
func (e *Editor) LoadLevel(path string) error {
	lv, err := maplib.LoadJSON(path)
	if err != nil {
		return err
	}
	e.reset(lv, path)
	return nil
}

// SaveLevel validates and writes the level. An empty path reuses the last one.
func (e *Editor) SaveLevel(path string) error {
	if path == "" {
		path = e.FilePath
	}
	if path == "" {
		path = DefaultFile
	}
	if err := e.Level.Validate(); err != nil {
		return err
	}
	if err := e.Level.SaveJSON(path); err != nil {
		return err
	}
	e.FilePath = path
	e.Modified = false
	return nil
}

// Paint applies the current tool in a square brush centred on c.
// Unchanged cells are not recorded.
func (e *Editor) Paint(c grid.Point) {
	tile := e.Brush
	switch e.Tool {
	case ToolErase:
		tile = maplib.TileSpace
	case ToolZone:
		return
	}

	var changes []TileChange
	r := e.BrushSize / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := c.Add(grid.Pt(dx, dy))
			old, ok := e.Level.At(p)
			if !ok || old == tile {
				continue
			}
			e.Level.Set(p, tile)
			changes = append(changes, TileChange{Cell: p, Old: old, New: tile})
		}
	}
	if len(changes) > 0 {
		e.push(Action{Tiles: changes})
	}
}

var ErrZoneOutside = errors.New("zone leaves the board")

// SetZone sets a player's starting zone from two opposite corners in
// any order
func (e *Editor) SetZone(slot int, a, b grid.Point) error {
	z := grid.Zone{
		TopLeft:     grid.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		BottomRight: grid.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	}
	if !z.Within(grid.Point{}, grid.Pt(e.Level.Width, e.Level.Height)) {
		return ErrZoneOutside
	}
	zones := e.Level.Zones()
	ch := &ZoneChange{Slot: slot, New: z}
	if slot < len(zones) {
		ch.Old, ch.Existed = zones[slot], true
	}
	e.Level.SetZone(slot, z)
	e.push(Action{Zone: ch})
	return nil
}

// CycleBrushSize steps through odd brush widths 1..MaxBrushSize
func (e *Editor) CycleBrushSize() {
	e.BrushSize += 2
	if e.BrushSize > MaxBrushSize {
		e.BrushSize = 1
	}
}

func (e *Editor) push(a Action) {
	e.UndoStack = append(e.UndoStack, a)
	e.RedoStack = nil
	e.Modified = true
}

// Undo reverts the last action
func (e *Editor) Undo() {
	if len(e.UndoStack) == 0 {
		return
	}
	a := e.UndoStack[len(e.UndoStack)-1]
	e.UndoStack = e.UndoStack[:len(e.UndoStack)-1]
	for i := len(a.Tiles) - 1; i >= 0; i-- {
		e.Level.Set(a.Tiles[i].Cell, a.Tiles[i].Old)
	}
	if z := a.Zone; z != nil {
		if z.Existed {
			e.Level.SetZone(z.Slot, z.Old)
		} else {
			e.Level.StartingZones = e.Level.StartingZones[:z.Slot]
		}
	}
	e.RedoStack = append(e.RedoStack, a)
	e.Modified = true
}

// Redo re-applies the last undone action
func (e *Editor) Redo() {
	if len(e.RedoStack) == 0 {
		return
	}
	a := e.RedoStack[len(e.RedoStack)-1]
	e.RedoStack = e.RedoStack[:len(e.RedoStack)-1]
	for _, t := range a.Tiles {
		e.Level.Set(t.Cell, t.New)
	}
	if z := a.Zone; z != nil {
		e.Level.SetZone(z.Slot, z.New)
	}
	e.UndoStack = append(e.UndoStack, a)
	e.Modified = true
}
