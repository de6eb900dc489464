package apperror

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid cell position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
)
