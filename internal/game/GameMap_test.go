package game

import "testing"

const ringMaze = `#####
#@..#
#...#
#..!#
#####`

func TestGridQueries(t *testing.T) {
	grid := mustNewGrid(t, ringMaze+"\n")

	if grid.Width() != 5 || grid.Height() != 5 {
		t.Fatalf("expected 5x5, got %dx%d", grid.Width(), grid.Height())
	}
	if !grid.IsWall(CellLocation{X: 0, Y: 2}) {
		t.Error("border should be a wall")
	}
	if grid.IsWall(CellLocation{X: 2, Y: 2}) {
		t.Error("interior should be open")
	}
	if state := grid.CellState(CellLocation{X: 2, Y: 2}); !state.IsOpen() || state.IsWall() || state.IsHidden() {
		t.Errorf("unexpected state %+v", state)
	}
	if grid.IsOpen(CellLocation{X: -1, Y: 2}) || grid.IsOpen(CellLocation{X: 2, Y: 5}) {
		t.Error("off-grid cells must not be open")
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	grid := mustNewGrid(t, ringMaze)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an off-grid location")
		}
	}()
	grid.IsWall(CellLocation{X: 5, Y: 0})
}

func TestGridDistancesFollowCorridors(t *testing.T) {
	grid := mustNewGrid(t, `#######
#@....#
#####.#
#!....#
#######`)

	distance := grid.DistancesFrom(CellLocation{X: 1, Y: 1})
	if got := distance[CellLocation{X: 1, Y: 3}]; got != 10 {
		t.Errorf("expected path length 10 around the wall, got %d", got)
	}
	if _, ok := distance[CellLocation{X: 0, Y: 0}]; ok {
		t.Error("walls must not get a distance")
	}
}
