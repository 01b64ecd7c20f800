package render

import "github.com/1siamBot/stellar-armada/engine/grid"

// PointConverter maps board cells to screen pixels inside the game area.
// The camera offset scrolls boards larger than the area.
type PointConverter struct {
	CellSize     int
	AreaX, AreaY int // game area top-left in screen pixels
	AreaW, AreaH int
	OffsetX      int // camera scroll in pixels
	OffsetY      int

	BoardW, BoardH int // board size in cells
}

// NewPointConverter creates a converter for a board of boardW x boardH cells
func NewPointConverter(cellSize, areaX, areaY, areaW, areaH, boardW, boardH int) *PointConverter {
	return &PointConverter{
		CellSize: cellSize,
		AreaX:    areaX,
		AreaY:    areaY,
		AreaW:    areaW,
		AreaH:    areaH,
		BoardW:   boardW,
		BoardH:   boardH,
	}
}

// ToScreen returns the pixel of a cell's top-left corner, or its centre
func (c *PointConverter) ToScreen(p grid.Point, center bool) (int, int) {
	x := c.AreaX + p.X*c.CellSize - c.OffsetX
	y := c.AreaY + p.Y*c.CellSize - c.OffsetY
	if center {
		x += c.CellSize / 2
		y += c.CellSize / 2
	}
	return x, y
}

// ToGrid converts a screen pixel to a cell. It reports false outside the
// game area or off the board.
func (c *PointConverter) ToGrid(sx, sy int) (grid.Point, bool) {
	if !c.InArea(sx, sy) {
		return grid.Point{}, false
	}
	p := grid.Pt(
		(sx-c.AreaX+c.OffsetX)/c.CellSize,
		(sy-c.AreaY+c.OffsetY)/c.CellSize,
	)
	return p, p.InRange(grid.Point{}, grid.Pt(c.BoardW, c.BoardH))
}

// InArea reports whether a screen pixel lies in the game area
func (c *PointConverter) InArea(sx, sy int) bool {
	return sx >= c.AreaX && sx < c.AreaX+c.AreaW && sy >= c.AreaY && sy < c.AreaY+c.AreaH
}

// Pan scrolls the camera by a pixel delta
func (c *PointConverter) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
	c.clamp()
}

// CenterOn scrolls so the cell sits in the middle of the game area
func (c *PointConverter) CenterOn(p grid.Point) {
	c.OffsetX = p.X*c.CellSize + c.CellSize/2 - c.AreaW/2
	c.OffsetY = p.Y*c.CellSize + c.CellSize/2 - c.AreaH/2
	c.clamp()
}

// VisibleRange returns the half-open range of cells inside the game area
func (c *PointConverter) VisibleRange() (min, max grid.Point) {
	min = grid.Pt(c.OffsetX/c.CellSize, c.OffsetY/c.CellSize)
	max = grid.Pt(
		(c.OffsetX+c.AreaW+c.CellSize-1)/c.CellSize,
		(c.OffsetY+c.AreaH+c.CellSize-1)/c.CellSize,
	)
	if max.X > c.BoardW {
		max.X = c.BoardW
	}
	if max.Y > c.BoardH {
		max.Y = c.BoardH
	}
	return min, max
}

func (c *PointConverter) clamp() {
	maxX := c.BoardW*c.CellSize - c.AreaW
	maxY := c.BoardH*c.CellSize - c.AreaH
	c.OffsetX = clampInt(c.OffsetX, 0, maxX)
	c.OffsetY = clampInt(c.OffsetY, 0, maxY)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
