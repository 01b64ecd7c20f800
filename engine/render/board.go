package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/maplib"
)

// TileColors maps tile types to flat colors
var TileColors = map[maplib.TileType]color.RGBA{
	maplib.TileSpace:    {8, 8, 20, 255},
	maplib.TileAsteroid: {110, 95, 80, 255},
}

var (
	GridColor        = color.RGBA{90, 90, 110, 255}
	SelectedColor    = color.RGBA{173, 216, 230, 255} // light blue
	DestinationColor = color.RGBA{144, 238, 144, 90}  // light green
	AttackColor      = color.RGBA{255, 100, 100, 60}
	PathColor        = color.RGBA{255, 255, 255, 160}
	HoverColor       = color.RGBA{255, 255, 0, 100}
)

// Board draws the level, overlays and ships through a converter
type Board struct {
	Conv  *PointConverter
	Level *maplib.Level
	Grid  bool // stroke cell borders
}

func NewBoard(conv *PointConverter, lv *maplib.Level) *Board {
	return &Board{Conv: conv, Level: lv, Grid: true}
}

func (r *Board) cellRect(p grid.Point) (x, y, size float32) {
	sx, sy := r.Conv.ToScreen(p, false)
	return float32(sx), float32(sy), float32(r.Conv.CellSize)
}

// DrawTiles fills visible cells by tile type and strokes the grid
func (r *Board) DrawTiles(screen *ebiten.Image) {
	min, max := r.Conv.VisibleRange()
	for y := min.Y; y < max.Y; y++ {
		for x := min.X; x < max.X; x++ {
			p := grid.Pt(x, y)
			tile, ok := r.Level.At(p)
			if !ok {
				continue
			}
			clr, ok := TileColors[tile]
			if !ok {
				clr = color.RGBA{128, 128, 128, 255}
			}
			cx, cy, s := r.cellRect(p)
			vector.DrawFilledRect(screen, cx, cy, s, s, clr, false)
			if r.Grid {
				vector.StrokeRect(screen, cx, cy, s, s, 1, GridColor, false)
			}
		}
	}
}

// DrawZones outlines each starting zone in its player's color
func (r *Board) DrawZones(screen *ebiten.Image, zones [2]grid.Zone, players [2]core.Player) {
	for i, z := range zones {
		x0, y0 := r.Conv.ToScreen(z.TopLeft, false)
		x1, y1 := r.Conv.ToScreen(z.BottomRight.Add(grid.Pt(1, 1)), false)
		clr := players[i].Color
		clr.A = 120
		vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 2, clr, false)
	}
}

// DrawCells tints a set of cells, inset by one pixel
func (r *Board) DrawCells(screen *ebiten.Image, cells []grid.Point, clr color.RGBA) {
	for _, p := range cells {
		x, y, s := r.cellRect(p)
		vector.DrawFilledRect(screen, x+1, y+1, s-1, s-1, clr, false)
	}
}

// DrawCell fills a single cell
func (r *Board) DrawCell(screen *ebiten.Image, p grid.Point, clr color.RGBA) {
	x, y, s := r.cellRect(p)
	vector.DrawFilledRect(screen, x, y, s, s, clr, false)
}

// DrawPath connects cell centres along a route
func (r *Board) DrawPath(screen *ebiten.Image, path []grid.Point) {
	for i := 1; i < len(path); i++ {
		x0, y0 := r.Conv.ToScreen(path[i-1], true)
		x1, y1 := r.Conv.ToScreen(path[i], true)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, PathColor, false)
	}
}

// DrawShip draws a hull in the owner's color with an hp bar above it
func (r *Board) DrawShip(screen *ebiten.Image, s core.Ship, owner core.Player, selected bool) {
	cx, cy := r.Conv.ToScreen(s.Position, true)
	radius := float32(r.Conv.CellSize) * 0.35

	if selected {
		vector.StrokeCircle(screen, float32(cx), float32(cy), radius+4, 2, color.RGBA{0, 255, 0, 200}, false)
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, owner.Color, false)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 1, color.RGBA{255, 255, 255, 180}, false)

	barW := float32(r.Conv.CellSize) * 0.8
	barX := float32(cx) - barW/2
	barY := float32(cy) - radius - 6
	vector.DrawFilledRect(screen, barX, barY, barW, 3, color.RGBA{40, 40, 40, 200}, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(s.Health.Ratio()), 3, HealthColor(s.Health.Ratio()), false)
}

// HealthColor shades from green through yellow to red
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio < 0.25:
		return color.RGBA{255, 0, 0, 255}
	case ratio < 0.5:
		return color.RGBA{255, 200, 0, 255}
	}
	return color.RGBA{0, 200, 0, 255}
}
