package game

import "github.com/pkg/errors"

var (
	ErrInvalidDimensions  = errors.New("invalid board dimensions")
	ErrInvalidMineCount   = errors.New("invalid mine count")
	ErrInvalidTileState   = errors.New("invalid tile state")
	ErrGameEnded          = errors.New("game has ended")
	ErrMinesAlreadyPlaced = errors.New("mines already placed")
	ErrInvalidLayout      = errors.New("invalid layout")
)
