package game

// VisibilityMap tracks fog-of-war. Cells only ever go from hidden to revealed.
type VisibilityMap struct {
	grid     *Grid
	radius   int
	revealed [][]bool
	count    int
}

// NewVisibilityMap starts fully hidden. radius is the Chebyshev distance revealed by Reveal.
func NewVisibilityMap(grid *Grid, radius int) *VisibilityMap {
	revealed := make([][]bool, grid.Height())
	for row := range revealed {
		revealed[row] = make([]bool, grid.Width())
	}

	return &VisibilityMap{
		grid:     grid,
		radius:   max(0, radius),
		revealed: revealed,
	}
}

// Reveal uncovers loc and its neighbourhood, clipped to the grid.
func (v *VisibilityMap) Reveal(loc CellLocation) {
	v.grid.mustContain(loc)

	for row := max(0, loc.Y-v.radius); row <= min(v.grid.Height()-1, loc.Y+v.radius); row++ {
		for col := max(0, loc.X-v.radius); col <= min(v.grid.Width()-1, loc.X+v.radius); col++ {
			if !v.revealed[row][col] {
				v.revealed[row][col] = true
				v.count++
			}
		}
	}
}

func (v *VisibilityMap) IsHidden(loc CellLocation) bool {
	v.grid.mustContain(loc)
	return !v.revealed[loc.Y][loc.X]
}

func (v *VisibilityMap) RevealedCount() int {
	return v.count
}
