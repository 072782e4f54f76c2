package game

import (
	"errors"
	"testing"
)

func TestCollectingLastCheeseWins(t *testing.T) {
	gm := mustNewGame(t, `#####
#@.$#
#...#
#..!#
#####`)

	if gm.GetNumberCheeseToCollect() != 1 || gm.GetNumberCheeseCollected() != 0 {
		t.Fatalf("unexpected cheese counts %d/%d", gm.GetNumberCheeseCollected(), gm.GetNumberCheeseToCollect())
	}

	cheese := CellLocation{X: 3, Y: 1}
	before := GetManhattanDistance(gm.MousePosition(), cheese)
	if err := gm.RecordPlayerMove(MoveRight); err != nil {
		t.Fatal(err)
	}
	if after := GetManhattanDistance(gm.MousePosition(), cheese); after >= before {
		t.Fatalf("move did not approach the cheese: %d -> %d", before, after)
	}
	if err := gm.DoCatMoves(); err != nil {
		t.Fatal(err)
	}
	if gm.HasUserWon() || gm.HasUserLost() {
		t.Fatal("game should still be in progress")
	}

	if err := gm.RecordPlayerMove(MoveRight); err != nil {
		t.Fatal(err)
	}
	if !gm.HasUserWon() || gm.HasUserLost() || gm.Outcome() != Won {
		t.Fatalf("expected a win, outcome %s", gm.Outcome())
	}
	if gm.GetNumberCheeseCollected() != 1 || gm.IsCheeseAtLocation(cheese) {
		t.Error("cheese should have been eaten")
	}
	if gm.TurnCount() != 2 {
		t.Errorf("expected 2 turns, got %d", gm.TurnCount())
	}

	if err := gm.DoCatMoves(); !errors.Is(err, ErrGameOver) {
		t.Errorf("cat moved after the game ended: %v", err)
	}
	if err := gm.RecordPlayerMove(MoveLeft); !errors.Is(err, ErrGameOver) {
		t.Errorf("mouse moved after the game ended: %v", err)
	}
}

func TestCatCatchesAdjacentMouse(t *testing.T) {
	gm := mustNewGame(t, `#####
#@..#
#...#
#.$!#
#####`)

	steps := []MoveDirection{MoveRight, MoveDown}
	for _, step := range steps {
		if err := gm.RecordPlayerMove(step); err != nil {
			t.Fatal(err)
		}
		if gm.HasUserLost() {
			t.Fatal("mouse walked into the cat too early")
		}
		if err := gm.DoCatMoves(); err != nil {
			t.Fatal(err)
		}
	}

	mouse := CellLocation{X: 2, Y: 2}
	if !gm.IsMouseAtLocation(mouse) || !gm.IsCatAtLocation(mouse) {
		t.Fatalf("expected both on %v, mouse %v cat %v", mouse, gm.MousePosition(), gm.CatPosition())
	}
	if !gm.HasUserLost() || gm.HasUserWon() || gm.Outcome() != Lost {
		t.Fatalf("expected a loss, outcome %s", gm.Outcome())
	}
	if gm.SymbolForCell(mouse, false) != SymbolDead {
		t.Error("shared cell should render as dead")
	}
}

func TestMouseWalkingIntoCatLoses(t *testing.T) {
	gm := mustNewGame(t, `#####
#@!$#
#...#
#####`)

	if err := gm.RecordPlayerMove(MoveRight); err != nil {
		t.Fatal(err)
	}
	if !gm.HasUserLost() {
		t.Fatal("stepping onto the cat should lose")
	}
	if err := gm.DoCatMoves(); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestLossBeatsWinOnSameMove(t *testing.T) {
	layout := mustParseLayout(t, `####
#@.#
#.!#
####`)
	layout.CatStart = CellLocation{X: 2, Y: 1}
	layout.Cheese = []CellLocation{{X: 2, Y: 1}}
	layout.CheeseToCollect = 1

	gm, err := NewGameModel(layout, DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	if err := gm.RecordPlayerMove(MoveRight); err != nil {
		t.Fatal(err)
	}
	if gm.GetNumberCheeseCollected() != 1 {
		t.Fatal("the cheese should still be eaten")
	}
	if !gm.HasUserLost() || gm.HasUserWon() || gm.Outcome() != Lost {
		t.Fatalf("being eaten must override victory, outcome %s", gm.Outcome())
	}
}

func TestInvalidMoveChangesNothing(t *testing.T) {
	gm, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	hidden := map[CellLocation]bool{}
	for y := 0; y < gm.GetMazeHeight(); y++ {
		for x := 0; x < gm.GetMazeWidth(); x++ {
			loc := CellLocation{X: x, Y: y}
			hidden[loc] = gm.CellState(loc).IsHidden()
		}
	}
	mouse, cat := gm.MousePosition(), gm.CatPosition()

	for _, dir := range []MoveDirection{MoveUp, MoveLeft, MoveNone} {
		if gm.IsValidPlayerMove(dir) {
			t.Fatalf("%s from %v should be invalid", dir, mouse)
		}
		if err := gm.RecordPlayerMove(dir); !errors.Is(err, ErrInvalidMove) {
			t.Fatalf("expected ErrInvalidMove, got %v", err)
		}
	}

	if gm.MousePosition() != mouse || gm.CatPosition() != cat {
		t.Error("agents moved")
	}
	if gm.GetNumberCheeseCollected() != 0 || gm.GetNumberCheeseRemaining() != gm.GetNumberCheeseToCollect() {
		t.Error("cheese changed")
	}
	if gm.TurnCount() != 0 {
		t.Error("turn counted")
	}
	for loc, wasHidden := range hidden {
		if gm.CellState(loc).IsHidden() != wasHidden {
			t.Errorf("visibility of %v changed", loc)
		}
	}
}

func TestCheeseAccountingHoldsEveryTurn(t *testing.T) {
	gm, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	// Walk east to the first junction, then south towards the cheese at (7,5).
	path := []MoveDirection{MoveRight, MoveRight, MoveRight, MoveRight, MoveDown, MoveDown, MoveDown, MoveDown, MoveRight, MoveRight, MoveLeft}
	for _, move := range path {
		if gm.IsOver() {
			break
		}
		if !gm.IsValidPlayerMove(move) {
			t.Fatalf("move %s from %v unexpectedly invalid", move, gm.MousePosition())
		}
		if err := gm.RecordPlayerMove(move); err != nil {
			t.Fatal(err)
		}
		if gm.GetNumberCheeseCollected()+gm.GetNumberCheeseRemaining() != gm.GetNumberCheeseToCollect() {
			t.Fatal("collected + remaining != total")
		}
		if !gm.IsOver() {
			if err := gm.DoCatMoves(); err != nil {
				t.Fatal(err)
			}
		}
	}

	if gm.GetNumberCheeseCollected() != 1 {
		t.Errorf("expected the cheese at (7,5) to be eaten once, collected %d", gm.GetNumberCheeseCollected())
	}
}

func TestStartRevealsAroundMouse(t *testing.T) {
	gm, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	if gm.CellState(CellLocation{X: 2, Y: 2}).IsHidden() {
		t.Error("cells next to the mouse start should be revealed")
	}
	if !gm.CellState(CellLocation{X: 10, Y: 7}).IsHidden() {
		t.Error("far cells should start in the fog")
	}
	if !gm.CellState(CellLocation{X: 0, Y: 0}).IsWall() {
		t.Error("corner should be a wall")
	}
}

func TestSymbolForCell(t *testing.T) {
	gm, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		loc       CellLocation
		revealAll bool
		want      rune
	}{
		{CellLocation{X: 1, Y: 1}, false, SymbolMouse},
		{CellLocation{X: 18, Y: 13}, false, SymbolCat},
		{CellLocation{X: 7, Y: 5}, false, SymbolCheese},
		{CellLocation{X: 0, Y: 0}, false, SymbolWall},
		{CellLocation{X: 2, Y: 1}, false, SymbolSpace},
		{CellLocation{X: 10, Y: 0}, false, SymbolFog},
		{CellLocation{X: 10, Y: 0}, true, SymbolWall},
		{CellLocation{X: 10, Y: 7}, true, SymbolSpace},
	}

	for _, tc := range tests {
		if got := gm.SymbolForCell(tc.loc, tc.revealAll); got != tc.want {
			t.Errorf("SymbolForCell(%v, %v) = %q, want %q", tc.loc, tc.revealAll, got, tc.want)
		}
	}

	if !gm.CellState(CellLocation{X: 10, Y: 0}).IsHidden() {
		t.Error("reveal override must not lift the fog")
	}
}

func TestGamesAreIndependent(t *testing.T) {
	first, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewGameModel(DefaultLayout(), DefaultGameSettings())
	if err != nil {
		t.Fatal(err)
	}

	if first.ID() == second.ID() {
		t.Error("games share an ID")
	}
	if err := first.RecordPlayerMove(MoveRight); err != nil {
		t.Fatal(err)
	}
	if second.MousePosition() != (CellLocation{X: 1, Y: 1}) {
		t.Error("moving one mouse moved the other")
	}
}
