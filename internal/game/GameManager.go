package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type GameOutcome int

const (
	InProgress GameOutcome = iota
	Won
	Lost
)

func (o GameOutcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// GameSettings tunes a game without changing its layout.
type GameSettings struct {
	RevealRadius int
	// CatStrategy overrides the shortest path pursuit when set.
	CatStrategy Strategy
}

func DefaultGameSettings() GameSettings {
	return GameSettings{RevealRadius: DefaultRevealRadius}
}

// GameModel is one play session. It owns every piece of mutable state and is
// driven by alternating RecordPlayerMove and DoCatMoves calls. It is not safe
// for concurrent use; each session gets its own model.
type GameModel struct {
	id         string
	grid       *Grid
	visibility *VisibilityMap
	positions  *AgentPositions
	cheese     *CheeseTracker
	validator  MoveValidator
	pursuit    *PursuitEngine
	turnCount  int
}

func NewGameModel(layout Layout, settings GameSettings) (*GameModel, error) {
	grid, err := NewGrid(layout.Walls)
	if err != nil {
		return nil, err
	}
	if err := layout.validate(grid); err != nil {
		return nil, err
	}

	gm := &GameModel{
		id:         uuid.New().String(),
		grid:       grid,
		visibility: NewVisibilityMap(grid, settings.RevealRadius),
		positions:  NewAgentPositions(layout.MouseStart, layout.CatStart),
		cheese:     NewCheeseTracker(layout.Cheese),
		validator:  NewMoveValidator(grid),
		pursuit:    NewPursuitEngine(grid, settings.CatStrategy),
	}
	gm.visibility.Reveal(layout.MouseStart)

	log.Debug("New game created", "game", gm.id, "width", grid.Width(), "height", grid.Height(), "cheese", gm.cheese.TotalCount())
	return gm, nil
}

func (gm *GameModel) ID() string { return gm.id }

func (gm *GameModel) GetMazeWidth() int  { return gm.grid.Width() }
func (gm *GameModel) GetMazeHeight() int { return gm.grid.Height() }

// CellState combines the wall layout with fog-of-war. Panics outside the maze.
func (gm *GameModel) CellState(loc CellLocation) CellState {
	state := gm.grid.CellState(loc)
	state.hidden = gm.visibility.IsHidden(loc)
	return state
}

func (gm *GameModel) IsMouseAtLocation(loc CellLocation) bool {
	return gm.positions.MousePosition() == loc
}

func (gm *GameModel) IsCatAtLocation(loc CellLocation) bool {
	return gm.positions.CatPosition() == loc
}

func (gm *GameModel) IsCheeseAtLocation(loc CellLocation) bool {
	return gm.cheese.HasCheeseAt(loc)
}

func (gm *GameModel) MousePosition() CellLocation { return gm.positions.MousePosition() }
func (gm *GameModel) CatPosition() CellLocation   { return gm.positions.CatPosition() }

func (gm *GameModel) IsValidPlayerMove(dir MoveDirection) bool {
	return gm.validator.IsValidMove(gm.positions.MousePosition(), dir)
}

// RecordPlayerMove moves the mouse, eats any cheese there and lifts the fog around it.
// Callers are expected to check IsValidPlayerMove first.
func (gm *GameModel) RecordPlayerMove(dir MoveDirection) error {
	if gm.IsOver() {
		return ErrGameOver
	}
	if !gm.IsValidPlayerMove(dir) {
		return fmt.Errorf("mouse at %v cannot move %s: %w", gm.positions.MousePosition(), dir, ErrInvalidMove)
	}

	next := gm.positions.MousePosition().Step(dir)
	gm.positions.SetMousePosition(next)
	gm.visibility.Reveal(next)
	gm.turnCount++

	if gm.cheese.CollectIfPresent(next) {
		log.Debug("Cheese collected", "game", gm.id, "at", next, "collected", gm.cheese.CollectedCount(), "total", gm.cheese.TotalCount())
	}

	log.Debug("Mouse moved", "game", gm.id, "turn", gm.turnCount, "direction", dir, "to", next)
	gm.logIfFinished()
	return nil
}

// DoCatMoves advances the cat by a single step.
func (gm *GameModel) DoCatMoves() error {
	if gm.IsOver() {
		return ErrGameOver
	}

	from := gm.positions.CatPosition()
	next := gm.pursuit.NextCatLocation(from, gm.positions.MousePosition())
	gm.positions.SetCatPosition(next)

	log.Debug("Cat moved", "game", gm.id, "turn", gm.turnCount, "from", from, "to", next)
	gm.logIfFinished()
	return nil
}

// HasUserLost is true once the mouse and the cat share a cell.
func (gm *GameModel) HasUserLost() bool {
	return gm.positions.Collided()
}

// HasUserWon is true once all cheese is eaten, unless the mouse was also eaten.
func (gm *GameModel) HasUserWon() bool {
	return gm.cheese.AllCollected() && !gm.HasUserLost()
}

func (gm *GameModel) Outcome() GameOutcome {
	switch {
	case gm.HasUserLost():
		return Lost
	case gm.HasUserWon():
		return Won
	default:
		return InProgress
	}
}

func (gm *GameModel) IsOver() bool {
	return gm.Outcome() != InProgress
}

func (gm *GameModel) GetNumberCheeseCollected() int { return gm.cheese.CollectedCount() }
func (gm *GameModel) GetNumberCheeseToCollect() int { return gm.cheese.TotalCount() }
func (gm *GameModel) GetNumberCheeseRemaining() int { return gm.cheese.RemainingCount() }

// TurnCount is the number of accepted player moves.
func (gm *GameModel) TurnCount() int { return gm.turnCount }

// SymbolForCell is the read-only render query. revealAll shows the board through
// the fog without touching the visibility state.
func (gm *GameModel) SymbolForCell(loc CellLocation, revealAll bool) rune {
	state := gm.CellState(loc)

	switch {
	case gm.IsMouseAtLocation(loc) && gm.IsCatAtLocation(loc):
		return SymbolDead
	case gm.IsMouseAtLocation(loc):
		return SymbolMouse
	case gm.IsCatAtLocation(loc):
		return SymbolCat
	case gm.IsCheeseAtLocation(loc):
		return SymbolCheese
	case state.IsHidden() && !revealAll:
		return SymbolFog
	case state.IsWall():
		return SymbolWall
	default:
		return SymbolSpace
	}
}

func (gm *GameModel) logIfFinished() {
	switch gm.Outcome() {
	case Lost:
		log.Info("Mouse was eaten", "game", gm.id, "turn", gm.turnCount, "at", gm.positions.MousePosition())
	case Won:
		log.Info("All cheese collected", "game", gm.id, "turn", gm.turnCount)
	}
}
