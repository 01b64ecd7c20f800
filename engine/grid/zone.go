package grid

// Zone is a rectangle of cells with both corners inclusive
type Zone struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// Valid reports whether TopLeft is component-wise <= BottomRight
func (z Zone) Valid() bool {
	return z.TopLeft.X <= z.BottomRight.X && z.TopLeft.Y <= z.BottomRight.Y
}

func (z Zone) Contains(p Point) bool {
	return z.TopLeft.X <= p.X && p.X <= z.BottomRight.X &&
		z.TopLeft.Y <= p.Y && p.Y <= z.BottomRight.Y
}

// Within reports whether the whole zone lies inside [min, max)
func (z Zone) Within(min, max Point) bool {
	return z.TopLeft.InRange(min, max) && z.BottomRight.InRange(min, max)
}

// Cells lists the zone's cells row by row
func (z Zone) Cells() []Point {
	if !z.Valid() {
		return nil
	}
	cells := make([]Point, 0, (z.BottomRight.X-z.TopLeft.X+1)*(z.BottomRight.Y-z.TopLeft.Y+1))
	for y := z.TopLeft.Y; y <= z.BottomRight.Y; y++ {
		for x := z.TopLeft.X; x <= z.BottomRight.X; x++ {
			cells = append(cells, Point{x, y})
		}
	}
	return cells
}
