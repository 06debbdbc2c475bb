package combat

import (
	"errors"
	"fmt"
)

var (
	ErrPlacementExhausted = errors.New("fleet placement attempts exhausted")
	ErrNoFleet            = errors.New("board has no ships")
	ErrPlayStarted        = errors.New("ships cannot be placed once play has begun")
	ErrMatchFinished      = errors.New("match already finished")
	ErrSharedBoard        = errors.New("both sides defend the same board")
)

// OutOfBoundsError: the shot lands outside the grid.
type OutOfBoundsError struct {
	At   Coord
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("shot at %v is outside the %dx%d board", e.At, e.Size, e.Size)
}

// AlreadyFiredError: the cell was targeted earlier on the same board.
type AlreadyFiredError struct {
	At Coord
}

func (e *AlreadyFiredError) Error() string {
	return fmt.Sprintf("cell %v was already fired upon", e.At)
}

// ShipPlacementError: a ship cell leaves the grid, overlaps or touches another ship.
type ShipPlacementError struct {
	Ship   Ship
	At     Coord
	Reason string
}

func (e *ShipPlacementError) Error() string {
	return fmt.Sprintf("cannot place %s ship of length %d at %v: cell %v %s",
		e.Ship.Orientation, e.Ship.Length, e.Ship.Bow, e.At, e.Reason)
}

// IsBoardError reports whether err is a shot error the same player may retry.
func IsBoardError(err error) bool {
	var oob *OutOfBoundsError
	var used *AlreadyFiredError
	return errors.As(err, &oob) || errors.As(err, &used)
}

func rejectReason(err error) string {
	var oob *OutOfBoundsError
	if errors.As(err, &oob) {
		return RejectOutOfBounds
	}
	return RejectAlreadyFired
}
