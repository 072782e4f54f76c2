package game

// MoveValidator answers whether a one-cell move is legal on a grid.
type MoveValidator struct {
	grid *Grid
}

func NewMoveValidator(grid *Grid) MoveValidator {
	return MoveValidator{grid: grid}
}

// IsValidMove is false for MoveNone, for walls and for anything off the grid.
func (v MoveValidator) IsValidMove(from CellLocation, dir MoveDirection) bool {
	if dir == MoveNone {
		return false
	}
	if _, known := directionOffsets[dir]; !known {
		return false
	}
	return v.grid.IsOpen(from.Step(dir))
}

// ValidMoves lists the legal directions from a cell in tie-break order.
func (v MoveValidator) ValidMoves(from CellLocation) []MoveDirection {
	var moves []MoveDirection
	for _, dir := range Directions {
		if v.IsValidMove(from, dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}
