package model

import "errors"

// Common errors used across the application
var (
	// Player setup errors
	ErrInvalidPlayerName = errors.New("player name must not be empty")
	ErrInvalidToken      = errors.New("player token must not be blank")
	ErrDuplicateToken    = errors.New("players must have distinct tokens")

	// Board errors
	ErrInvalidBoardSize  = errors.New("invalid board size")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidPosition   = errors.New("invalid board position")
	ErrInvalidPlayerSlot = errors.New("invalid player slot")

	// Game errors
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrGameInProgress  = errors.New("game is in progress")
	ErrGameNotFound    = errors.New("game not found")
)
