package game

import "testing"

func TestDefaultStrategyTieBreak(t *testing.T) {
	grid := mustNewGrid(t, `#####
#@..#
#...#
#..!#
#####`)
	engine := NewPursuitEngine(grid, nil)
	center := CellLocation{X: 2, Y: 2}

	tests := []struct {
		mouse CellLocation
		want  CellLocation
	}{
		{CellLocation{X: 1, Y: 1}, CellLocation{X: 2, Y: 1}}, // up beats left
		{CellLocation{X: 3, Y: 3}, CellLocation{X: 2, Y: 3}}, // down beats right
		{CellLocation{X: 1, Y: 3}, CellLocation{X: 1, Y: 2}}, // left beats down
		{CellLocation{X: 3, Y: 1}, CellLocation{X: 2, Y: 1}}, // up beats right
		{CellLocation{X: 3, Y: 2}, CellLocation{X: 3, Y: 2}},
	}

	for _, tc := range tests {
		if got := engine.NextCatLocation(center, tc.mouse); got != tc.want {
			t.Errorf("mouse at %v: cat moved to %v, want %v", tc.mouse, got, tc.want)
		}
	}
}

func TestDefaultStrategyFollowsCorridor(t *testing.T) {
	grid := mustNewGrid(t, `#######
#@....#
#####.#
#!....#
#######`)
	engine := NewPursuitEngine(grid, nil)

	// Manhattan distance says go up, but the wall forces the long way round.
	got := engine.NextCatLocation(CellLocation{X: 1, Y: 3}, CellLocation{X: 1, Y: 1})
	if got != (CellLocation{X: 2, Y: 3}) {
		t.Fatalf("expected the cat to head right along the corridor, got %v", got)
	}
}

func TestDefaultStrategyStaysWhenMouseUnreachable(t *testing.T) {
	grid := mustNewGrid(t, `#####
#@#!#
#####`)
	engine := NewPursuitEngine(grid, nil)

	cat := CellLocation{X: 3, Y: 1}
	if got := engine.NextCatLocation(cat, CellLocation{X: 1, Y: 1}); got != cat {
		t.Fatalf("cat should stay put, moved to %v", got)
	}
}

func TestPursuitNeverEntersWallsAndAlwaysCloses(t *testing.T) {
	layout := DefaultLayout()
	grid, err := NewGrid(layout.Walls)
	if err != nil {
		t.Fatal(err)
	}
	engine := NewPursuitEngine(grid, nil)

	var open []CellLocation
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if loc := (CellLocation{X: x, Y: y}); grid.IsOpen(loc) {
				open = append(open, loc)
			}
		}
	}

	for _, mouse := range open {
		distance := grid.DistancesFrom(mouse)
		for _, cat := range open {
			next := engine.NextCatLocation(cat, mouse)

			if !grid.IsOpen(next) {
				t.Fatalf("cat at %v chasing %v stepped into %v", cat, mouse, next)
			}
			if GetManhattanDistance(cat, next) > 1 {
				t.Fatalf("cat at %v jumped to %v", cat, next)
			}
			if cat != mouse && distance[next] != distance[cat]-1 {
				t.Fatalf("cat at %v chasing %v did not close in: %d -> %d", cat, mouse, distance[cat], distance[next])
			}
		}
	}
}
