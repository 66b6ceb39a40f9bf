package board

import "errors"

var (
	ErrLevelOutOfRange  = errors.New("board: target level out of range")
	ErrPointOutOfBounds = errors.New("board: point outside block bounds")
	ErrInvalidShape     = errors.New("board: invalid block structure")
)
