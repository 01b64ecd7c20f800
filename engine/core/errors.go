package core

import (
	"errors"
	"fmt"

	"github.com/1siamBot/stellar-armada/engine/grid"
)

var (
	ErrInvalidBounds    = errors.New("invalid bounds")
	ErrNoSpawnPoint     = errors.New("no free cell in starting zone")
	ErrDuplicatePlayers = errors.New("players must be distinct")
	ErrEmptyLoadout     = errors.New("ship loadout has no weapons")
)

// InvalidBoundsError is returned when a board or zone rectangle is
// malformed. It matches ErrInvalidBounds under errors.Is.
type InvalidBoundsError struct {
	TopLeft     grid.Point
	BottomRight grid.Point
	Reason      string
}

func (e *InvalidBoundsError) Error() string {
	return fmt.Sprintf("invalid bounds %v-%v: %s", e.TopLeft, e.BottomRight, e.Reason)
}

func (e *InvalidBoundsError) Is(target error) bool {
	return target == ErrInvalidBounds
}
