package core

import "image/color"

// Player is an immutable participant. Players compare by value and key the
// engine's fleet map.
type Player struct {
	Name  string
	Color color.RGBA
	IsAI  bool // reserved, nothing reads it yet
}

var (
	ColorRed  = color.RGBA{255, 0, 0, 255}
	ColorBlue = color.RGBA{0, 0, 255, 255}
)

// DefaultPlayers is the fixed two-player line-up in turn order
func DefaultPlayers() [2]Player {
	return [2]Player{
		{Name: "Player 1", Color: ColorRed},
		{Name: "Player 2", Color: ColorBlue},
	}
}

func (p Player) String() string {
	return p.Name
}
