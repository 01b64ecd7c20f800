package core

// GameState represents the overall match state
type GameState uint8

const (
	StatePlaying GameState = iota
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}
