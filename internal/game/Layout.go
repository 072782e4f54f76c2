package game

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

const (
	SymbolWall   = '#'
	SymbolSpace  = ' '
	SymbolFog    = '.'
	SymbolMouse  = '@'
	SymbolCat    = '!'
	SymbolCheese = '$'
	SymbolDead   = 'X'
)

//go:embed default_maze.txt
var defaultMaze string

// Layout is everything a GameModel needs at construction.
type Layout struct {
	Walls           [][]bool
	MouseStart      CellLocation
	CatStart        CellLocation
	Cheese          []CellLocation
	CheeseToCollect int
}

// DefaultLayout returns the built-in 20x15 maze.
func DefaultLayout() Layout {
	layout, err := ParseLayout(defaultMaze)
	if err != nil {
		panic(fmt.Sprintf("embedded maze is broken: %v", err))
	}
	return layout
}

// LoadLayout reads a layout file, falling back to the built-in maze for an empty path.
func LoadLayout(path string) (Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	layout, err := ParseLayout(string(content))
	if err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout reads the text maze format. '.' and ' ' are both open floor so
// layouts can be written either way; blank trailing lines are ignored.
func ParseLayout(text string) (Layout, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var layout Layout
	mouseCount, catCount := 0, 0

	layout.Walls = make([][]bool, len(lines))
	for row, line := range lines {
		layout.Walls[row] = make([]bool, len(line))
		for col, symbol := range []byte(line) {
			loc := CellLocation{X: col, Y: row}
			switch symbol {
			case SymbolWall:
				layout.Walls[row][col] = true
			case SymbolFog, SymbolSpace:
			case SymbolMouse:
				layout.MouseStart = loc
				mouseCount++
			case SymbolCat:
				layout.CatStart = loc
				catCount++
			case SymbolCheese:
				layout.Cheese = append(layout.Cheese, loc)
			default:
				return Layout{}, fmt.Errorf("unknown symbol %q at %v: %w", symbol, loc, ErrInvalidLayout)
			}
		}
	}

	if mouseCount != 1 {
		return Layout{}, fmt.Errorf("expected one mouse, found %d: %w", mouseCount, ErrInvalidLayout)
	}
	if catCount != 1 {
		return Layout{}, fmt.Errorf("expected one cat, found %d: %w", catCount, ErrInvalidLayout)
	}

	layout.CheeseToCollect = len(layout.Cheese)
	return layout, nil
}

// validate checks the layout against an already built grid.
func (l Layout) validate(grid *Grid) error {
	if !grid.IsOpen(l.MouseStart) {
		return fmt.Errorf("mouse start %v is not an open cell: %w", l.MouseStart, ErrInvalidLayout)
	}
	if !grid.IsOpen(l.CatStart) {
		return fmt.Errorf("cat start %v is not an open cell: %w", l.CatStart, ErrInvalidLayout)
	}
	if l.MouseStart == l.CatStart {
		return fmt.Errorf("mouse and cat both start at %v: %w", l.MouseStart, ErrInvalidLayout)
	}
	if len(l.Cheese) == 0 {
		return fmt.Errorf("maze has no cheese: %w", ErrInvalidLayout)
	}
	if l.CheeseToCollect != len(l.Cheese) {
		return fmt.Errorf("cheese to collect is %d but %d placed: %w", l.CheeseToCollect, len(l.Cheese), ErrInvalidLayout)
	}

	reachable := grid.DistancesFrom(l.MouseStart)
	seen := make(map[CellLocation]bool, len(l.Cheese))
	for _, cheese := range l.Cheese {
		if seen[cheese] {
			return fmt.Errorf("duplicate cheese at %v: %w", cheese, ErrInvalidLayout)
		}
		seen[cheese] = true

		if !grid.IsOpen(cheese) {
			return fmt.Errorf("cheese at %v is not on an open cell: %w", cheese, ErrInvalidLayout)
		}
		if _, ok := reachable[cheese]; !ok {
			return fmt.Errorf("cheese at %v is unreachable from the mouse: %w", cheese, ErrInvalidLayout)
		}
		if cheese == l.MouseStart {
			return fmt.Errorf("cheese at mouse start %v: %w", cheese, ErrInvalidLayout)
		}
	}

	return nil
}
