package game

import "github.com/charmbracelet/log"

// Strategy picks the cat's next step. Implementations may return any direction;
// the PursuitEngine rejects illegal ones.
type Strategy interface {
	getNextBestDirection(cat, mouse CellLocation, grid *Grid) (MoveDirection, error)
}

// PursuitEngine moves the cat exactly one step per call.
type PursuitEngine struct {
	grid      *Grid
	validator MoveValidator
	strategy  Strategy
	fallback  Strategy
}

// NewPursuitEngine uses the shortest path strategy when strategy is nil.
func NewPursuitEngine(grid *Grid, strategy Strategy) *PursuitEngine {
	fallback := &DefaultStrategy{}
	if strategy == nil {
		strategy = fallback
	}

	return &PursuitEngine{
		grid:      grid,
		validator: NewMoveValidator(grid),
		strategy:  strategy,
		fallback:  fallback,
	}
}

// NextCatLocation never returns a wall or off-grid cell. If the configured
// strategy fails or proposes an illegal move the shortest path strategy decides instead.
func (e *PursuitEngine) NextCatLocation(cat, mouse CellLocation) CellLocation {
	dir, err := e.strategy.getNextBestDirection(cat, mouse, e.grid)
	if err != nil {
		log.Warn("Cat strategy failed, using shortest path", "error", err)
		dir, _ = e.fallback.getNextBestDirection(cat, mouse, e.grid)
	} else if dir != MoveNone && !e.validator.IsValidMove(cat, dir) {
		log.Warn("Cat strategy proposed an illegal move, using shortest path", "cat", cat, "direction", dir)
		dir, _ = e.fallback.getNextBestDirection(cat, mouse, e.grid)
	}

	if dir == MoveNone {
		return cat
	}
	return cat.Step(dir)
}
