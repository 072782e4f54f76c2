package game

import "fmt"

// CellLocation is a column/row pair on the maze grid.
type CellLocation struct {
	X int
	Y int
}

func (l CellLocation) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Step returns the location one cell away in the given direction.
// MoveNone returns the location unchanged.
func (l CellLocation) Step(dir MoveDirection) CellLocation {
	offset := directionOffsets[dir]
	return CellLocation{X: l.X + offset.Dx, Y: l.Y + offset.Dy}
}

type MoveDirection int

const (
	MoveNone MoveDirection = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

func (d MoveDirection) String() string {
	switch d {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "none"
	}
}

type Direction struct {
	Dx, Dy int
}

var directionOffsets = map[MoveDirection]Direction{
	MoveNone:  {Dx: 0, Dy: 0},
	MoveUp:    {Dx: 0, Dy: -1},
	MoveDown:  {Dx: 0, Dy: 1},
	MoveLeft:  {Dx: -1, Dy: 0},
	MoveRight: {Dx: 1, Dy: 0},
}

// Directions lists the four real moves in the cat's tie-break order.
var Directions = []MoveDirection{MoveUp, MoveLeft, MoveDown, MoveRight}

// DirectionFromOffset maps a unit offset back to its MoveDirection.
func DirectionFromOffset(dx, dy int) (MoveDirection, bool) {
	for _, dir := range Directions {
		offset := directionOffsets[dir]
		if offset.Dx == dx && offset.Dy == dy {
			return dir, true
		}
	}
	return MoveNone, false
}

func GetManhattanDistance(l1, l2 CellLocation) int {
	return abs(l1.X-l2.X) + abs(l1.Y-l2.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
