package network

import (
	"errors"
	"fmt"

	"github.com/1siamBot/stellar-armada/engine/core"
	"github.com/1siamBot/stellar-armada/engine/grid"
)

// Command kinds
const (
	CmdMove         = "move"
	CmdAttack       = "attack"
	CmdSelectWeapon = "select_weapon"
	CmdEndTurn      = "end_turn"
	CmdRestart      = "restart"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrUnknownCommand = errors.New("unknown command")
	ErrGameOver       = errors.New("game is over")
	ErrGameRunning    = errors.New("game still running")
)

// GameCommand is a player request sent over the wire
type GameCommand struct {
	Kind   string `msgpack:"kind"`
	Ship   uint64 `msgpack:"ship,omitempty"`
	X      int    `msgpack:"x,omitempty"`
	Y      int    `msgpack:"y,omitempty"`
	Weapon int    `msgpack:"weapon,omitempty"`
}

func (c GameCommand) Target() grid.Point {
	return grid.Pt(c.X, c.Y)
}

// Apply issues the command on behalf of seat. Only the seat whose turn it
// is may act; the engine itself still ignores illegal moves and attacks.
// Restart is handled by the room, not here.
func (c GameCommand) Apply(e *core.Engine, seat int) error {
	switch c.Kind {
	case CmdMove, CmdAttack, CmdSelectWeapon, CmdEndTurn:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Kind)
	}
	if e.IsGameOver() {
		return ErrGameOver
	}
	if seat < 0 || seat != CurrentSeat(e) {
		return ErrNotYourTurn
	}

	id := core.ShipID(c.Ship)
	switch c.Kind {
	case CmdMove:
		e.Move(id, c.Target())
	case CmdAttack:
		e.TryAttack(id, c.Target())
	case CmdSelectWeapon:
		e.SelectWeapon(id, c.Weapon)
	case CmdEndTurn:
		e.AdvanceTurn()
	}
	return nil
}
