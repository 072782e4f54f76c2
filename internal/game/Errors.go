package game

import "errors"

var (
	// ErrInvalidLayout wraps every maze construction failure.
	ErrInvalidLayout = errors.New("invalid maze layout")
	// ErrInvalidMove is returned when a player move targets a wall or leaves the grid.
	ErrInvalidMove = errors.New("invalid player move")
	// ErrGameOver is returned by mutators once the game is won or lost.
	ErrGameOver = errors.New("game is already over")
)
