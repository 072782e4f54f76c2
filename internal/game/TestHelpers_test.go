package game

import "testing"

func mustParseLayout(t *testing.T, text string) Layout {
	t.Helper()
	layout, err := ParseLayout(text)
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	return layout
}

func mustNewGame(t *testing.T, text string) *GameModel {
	t.Helper()
	gm, err := NewGameModel(mustParseLayout(t, text), DefaultGameSettings())
	if err != nil {
		t.Fatalf("NewGameModel: %v", err)
	}
	return gm
}

func mustNewGrid(t *testing.T, text string) *Grid {
	t.Helper()
	grid, err := NewGrid(mustParseLayout(t, text).Walls)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return grid
}
