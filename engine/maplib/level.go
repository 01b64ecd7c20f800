package maplib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/1siamBot/stellar-armada/engine/grid"
)

// TileType is the terrain of one cell, stored as a one-letter code
type TileType string

const (
	TileSpace    TileType = "S"
	TileAsteroid TileType = "A"
)

// Passable reports whether ships may move through the tile
func (t TileType) Passable() bool {
	return t != TileAsteroid
}

func (t TileType) Name() string {
	switch t {
	case TileSpace:
		return "Space"
	case TileAsteroid:
		return "Asteroid"
	}
	return "Unknown"
}

var ErrInvalidLevel = errors.New("invalid level")

// Level describes a battlefield: its size, terrain rows and the two
// starting zones as inclusive [top-left, bottom-right] corner pairs
type Level struct {
	TileSize      int          `json:"tile_size"`
	Height        int          `json:"height"`
	Width         int          `json:"width"`
	StartingZones [][2][2]int  `json:"starting_zones"`
	Data          [][]TileType `json:"data"`
}

// NewLevel creates an all-space level with no starting zones
func NewLevel(width, height, tileSize int) *Level {
	lv := &Level{
		TileSize: tileSize,
		Width:    width,
		Height:   height,
		Data:     make([][]TileType, height),
	}
	for y := range lv.Data {
		row := make([]TileType, width)
		for x := range row {
			row[x] = TileSpace
		}
		lv.Data[y] = row
	}
	return lv
}

// NewSimpleLevel is the stock 30x30 battlefield with a zone along each edge
func NewSimpleLevel() *Level {
	lv := NewLevel(30, 30, 50)
	lv.StartingZones = [][2][2]int{
		{{0, 0}, {29, 2}},
		{{0, 27}, {29, 29}},
	}
	return lv
}

// At returns the tile at p, and false when p is off the level
func (lv *Level) At(p grid.Point) (TileType, bool) {
	if !lv.InBounds(p) {
		return "", false
	}
	return lv.Data[p.Y][p.X], true
}

// Set writes a tile; out-of-bounds writes are ignored
func (lv *Level) Set(p grid.Point, t TileType) {
	if lv.InBounds(p) {
		lv.Data[p.Y][p.X] = t
	}
}

func (lv *Level) InBounds(p grid.Point) bool {
	return p.InRange(grid.Point{}, grid.Pt(lv.Width, lv.Height))
}

// IsPassable checks if ships can enter the cell
func (lv *Level) IsPassable(p grid.Point) bool {
	t, ok := lv.At(p)
	return ok && t.Passable()
}

// Zones converts the stored corner pairs into zones
func (lv *Level) Zones() []grid.Zone {
	zones := make([]grid.Zone, len(lv.StartingZones))
	for i, z := range lv.StartingZones {
		zones[i] = grid.Zone{
			TopLeft:     grid.Pt(z[0][0], z[0][1]),
			BottomRight: grid.Pt(z[1][0], z[1][1]),
		}
	}
	return zones
}

// SetZone replaces (or appends) the starting zone for a player slot
func (lv *Level) SetZone(slot int, z grid.Zone) {
	for len(lv.StartingZones) <= slot {
		lv.StartingZones = append(lv.StartingZones, [2][2]int{})
	}
	lv.StartingZones[slot] = [2][2]int{
		{z.TopLeft.X, z.TopLeft.Y},
		{z.BottomRight.X, z.BottomRight.Y},
	}
}

// Validate checks dimensions, terrain rows and starting zones
func (lv *Level) Validate() error {
	if lv.Width <= 0 || lv.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, lv.Width, lv.Height)
	}
	if len(lv.Data) != lv.Height {
		return fmt.Errorf("%w: %d rows, want %d", ErrInvalidLevel, len(lv.Data), lv.Height)
	}
	for y, row := range lv.Data {
		if len(row) != lv.Width {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLevel, y, len(row), lv.Width)
		}
	}
	if len(lv.StartingZones) != 2 {
		return fmt.Errorf("%w: %d starting zones, want 2", ErrInvalidLevel, len(lv.StartingZones))
	}
	max := grid.Pt(lv.Width, lv.Height)
	for i, z := range lv.Zones() {
		if !z.Valid() || !z.Within(grid.Point{}, max) {
			return fmt.Errorf("%w: starting zone %d %v-%v", ErrInvalidLevel, i, z.TopLeft, z.BottomRight)
		}
	}
	return nil
}

// SaveJSON saves the level to a JSON file
func (lv *Level) SaveJSON(path string) error {
	data, err := json.MarshalIndent(lv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads and validates a level from a JSON file
func LoadJSON(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lv Level
	if err := json.Unmarshal(data, &lv); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := lv.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &lv, nil
}

// LoadLevels loads every *.json level in dir, ordered by file name
func LoadLevels(dir string) ([]*Level, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		lv, err := LoadJSON(p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lv)
	}
	return levels, nil
}
