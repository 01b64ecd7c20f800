package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/stellar-armada/engine/grid"
	"github.com/1siamBot/stellar-armada/engine/maplib"
)

// Minimap is a scaled overview of the whole board
type Minimap struct {
	X, Y, Size int
	img        *ebiten.Image
}

func NewMinimap(x, y, size int) *Minimap {
	return &Minimap{X: x, Y: y, Size: size}
}

// Scale returns pixels per cell on each axis
func (m *Minimap) Scale(lv *maplib.Level) (float64, float64) {
	return float64(m.Size) / float64(lv.Width), float64(m.Size) / float64(lv.Height)
}

// Draw renders terrain, ally and enemy markers, and the camera viewport
func (m *Minimap) Draw(screen *ebiten.Image, lv *maplib.Level, conv *PointConverter, allies, enemies []grid.Point) {
	if m.img == nil {
		m.img = ebiten.NewImage(m.Size, m.Size)
	}
	m.img.Fill(color.RGBA{0, 0, 0, 180})
	scaleX, scaleY := m.Scale(lv)

	for y := 0; y < lv.Height; y++ {
		for x := 0; x < lv.Width; x++ {
			tile, _ := lv.At(grid.Pt(x, y))
			if tile == maplib.TileSpace {
				continue
			}
			clr, ok := TileColors[tile]
			if !ok {
				clr = color.RGBA{128, 128, 128, 255}
			}
			vector.DrawFilledRect(m.img, float32(float64(x)*scaleX), float32(float64(y)*scaleY),
				float32(scaleX)+1, float32(scaleY)+1, clr, false)
		}
	}

	dot := func(p grid.Point, clr color.RGBA) {
		cx := float32((float64(p.X) + 0.5) * scaleX)
		cy := float32((float64(p.Y) + 0.5) * scaleY)
		vector.DrawFilledCircle(m.img, cx, cy, 3, clr, false)
	}
	for _, p := range allies {
		dot(p, color.RGBA{0, 255, 0, 255})
	}
	for _, p := range enemies {
		dot(p, color.RGBA{255, 0, 0, 255})
	}

	// Camera viewport indicator
	min, max := conv.VisibleRange()
	vx0 := float32(float64(min.X) * scaleX)
	vy0 := float32(float64(min.Y) * scaleY)
	vw := float32(float64(max.X-min.X) * scaleX)
	vh := float32(float64(max.Y-min.Y) * scaleY)
	vector.StrokeRect(m.img, vx0, vy0, vw, vh, 2, color.RGBA{0, 0, 255, 255}, false)
	vector.StrokeRect(m.img, 0, 0, float32(m.Size), float32(m.Size), 2, color.RGBA{255, 255, 255, 255}, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(m.X), float64(m.Y))
	screen.DrawImage(m.img, op)
}

// Contains reports whether a screen pixel is on the minimap
func (m *Minimap) Contains(sx, sy int) bool {
	return sx >= m.X && sx < m.X+m.Size && sy >= m.Y && sy < m.Y+m.Size
}

// CellAt maps a minimap pixel back to a board cell
func (m *Minimap) CellAt(lv *maplib.Level, sx, sy int) (grid.Point, bool) {
	if !m.Contains(sx, sy) {
		return grid.Point{}, false
	}
	scaleX, scaleY := m.Scale(lv)
	p := grid.Pt(int(float64(sx-m.X)/scaleX), int(float64(sy-m.Y)/scaleY))
	return p, lv.InBounds(p)
}
