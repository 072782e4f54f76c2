package game

import "fmt"

// CellState describes one maze cell as seen by a renderer.
type CellState struct {
	wall   bool
	hidden bool
}

func (s CellState) IsWall() bool   { return s.wall }
func (s CellState) IsOpen() bool   { return !s.wall }
func (s CellState) IsHidden() bool { return s.hidden }

// Grid is the immutable wall layout of a maze.
type Grid struct {
	width  int
	height int
	walls  [][]bool
}

// NewGrid copies the wall mask, indexed walls[row][col].
func NewGrid(walls [][]bool) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, fmt.Errorf("maze has zero area: %w", ErrInvalidLayout)
	}

	width := len(walls[0])
	grid := &Grid{
		width:  width,
		height: len(walls),
		walls:  make([][]bool, len(walls)),
	}

	openCells := 0
	for row := range walls {
		if len(walls[row]) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", row, len(walls[row]), width, ErrInvalidLayout)
		}
		grid.walls[row] = make([]bool, width)
		copy(grid.walls[row], walls[row])
		for _, wall := range walls[row] {
			if !wall {
				openCells++
			}
		}
	}

	if openCells == 0 {
		return nil, fmt.Errorf("maze has no open cells: %w", ErrInvalidLayout)
	}

	return grid, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) Contains(loc CellLocation) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

// IsWall panics when loc is outside the grid.
func (g *Grid) IsWall(loc CellLocation) bool {
	g.mustContain(loc)
	return g.walls[loc.Y][loc.X]
}

// CellState reports wall/open only; fog is layered on by GameModel.
func (g *Grid) CellState(loc CellLocation) CellState {
	return CellState{wall: g.IsWall(loc)}
}

// IsOpen is the bounds-safe check used by movement: off-grid counts as blocked.
func (g *Grid) IsOpen(loc CellLocation) bool {
	return g.Contains(loc) && !g.walls[loc.Y][loc.X]
}

// OpenNeighbours returns the open cells next to loc in tie-break order.
func (g *Grid) OpenNeighbours(loc CellLocation) []CellLocation {
	neighbours := make([]CellLocation, 0, len(Directions))
	for _, dir := range Directions {
		next := loc.Step(dir)
		if g.IsOpen(next) {
			neighbours = append(neighbours, next)
		}
	}
	return neighbours
}

// DistancesFrom runs a breadth-first search over open cells starting at start.
// Unreachable cells are absent from the result.
func (g *Grid) DistancesFrom(start CellLocation) map[CellLocation]int {
	distance := make(map[CellLocation]int)
	if !g.IsOpen(start) {
		return distance
	}

	q := []CellLocation{start}
	distance[start] = 0

	for len(q) > 0 {
		current := q[0]
		q = q[1:]

		for _, next := range g.OpenNeighbours(current) {
			if _, visited := distance[next]; visited {
				continue
			}
			distance[next] = distance[current] + 1
			q = append(q, next)
		}
	}

	return distance
}

func (g *Grid) mustContain(loc CellLocation) {
	if !g.Contains(loc) {
		panic(fmt.Sprintf("cell %v outside %dx%d maze", loc, g.width, g.height))
	}
}
