package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/cheesemaze/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
	StateResults
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	symbolStyles = map[rune]lipgloss.Style{
		game.SymbolWall:   colorStyle(game.WallColor),
		game.SymbolFog:    colorStyle(game.FogColor),
		game.SymbolMouse:  colorStyle(game.MouseColor).Bold(true),
		game.SymbolCat:    colorStyle(game.CatColor).Bold(true),
		game.SymbolCheese: colorStyle(game.CheeseColor).Bold(true),
		game.SymbolDead:   colorStyle(game.DeadColor).Bold(true).Blink(true),
	}
)

const (
	invalidMoveMessage = "Invalid move: you cannot move through walls!"
	statusPanelWidth   = 34
)

func colorStyle(color int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(color)))
}

// --- GameViewModel Definition ---

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int
	PlayerName   string

	game         *game.GameModel // nil when only showing results
	resultsBoard *game.ResultsBoard

	revealBoard bool
	showHelp    bool
	message     string

	gameState     GameState
	gameOverState GameOverState
}

func NewGameViewModel(gm *game.GameModel, board *game.ResultsBoard, playerName string, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		game:         gm,
		resultsBoard: board,
		PlayerName:   playerName,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		showHelp:     true,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

// NewResultsOnlyModel shows the results board without a game, as opened from the intro menu.
func NewResultsOnlyModel(board *game.ResultsBoard, screenWidth int, screenHeight int) GameViewModel {
	m := NewGameViewModel(nil, board, "", screenWidth, screenHeight)
	m.gameState = StateResults
	return m
}

func (m GameViewModel) Init() tea.Cmd {
	return nil
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.gameOverState.ScreenWidth, m.gameOverState.ScreenHeight = msg.Width, msg.Height
		return m, nil

	case ShowResultsMsg:
		m.gameState = StateResults
		m.loadResults()
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateGameOver || m.gameState == StateResults {
			return m.updateMenus(msg)
		}
		return m.updatePlaying(msg)
	}

	return m, nil
}

func (m GameViewModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir, action := ParseKey(msg.String())

	switch action {
	case KeyHelp:
		m.showHelp = !m.showHelp
		return m, nil
	case KeyReveal:
		m.revealBoard = !m.revealBoard
		return m, nil
	case KeyIgnored:
		m.message = "Invalid key. Use W (up), A (left), S (down) or D (right)."
		return m, nil
	}

	if !m.game.IsValidPlayerMove(dir) {
		m.message = invalidMoveMessage
		return m, nil
	}
	m.message = ""

	if err := m.game.RecordPlayerMove(dir); err != nil {
		log.Warn("Player move rejected", "game", m.game.ID(), "direction", dir, "error", err)
		return m, nil
	}

	// The mouse may have walked into the cat or eaten the last cheese.
	if !m.game.IsOver() {
		if err := m.game.DoCatMoves(); err != nil && !errors.Is(err, game.ErrGameOver) {
			log.Warn("Cat move failed", "game", m.game.ID(), "error", err)
		}
	}

	if m.game.IsOver() {
		m.finishGame()
	}
	return m, nil
}

func (m GameViewModel) updateMenus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.gameState == StateResults {
			return m.leaveResults()
		}
	case "left", "h":
		if m.gameState == StateGameOver {
			m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
		}
	case "right", "l":
		if m.gameState == StateGameOver {
			m.gameOverState.SelectedButton = min(2, m.gameOverState.SelectedButton+1)
		}
	case "enter":
		switch m.gameState {
		case StateGameOver:
			switch m.gameOverState.SelectedButton {
			case 0:
				return m, tea.Quit
			case 1:
				return m, func() tea.Msg { return QuitGameMsg{} }
			default:
				m.gameState = StateResults
				m.loadResults()
			}
		case StateResults:
			return m.leaveResults()
		}
	}
	return m, nil
}

func (m GameViewModel) leaveResults() (tea.Model, tea.Cmd) {
	if m.game != nil {
		m.gameState = StateGameOver
		return m, nil
	}
	return m, func() tea.Msg { return QuitGameMsg{} }
}

func (m *GameViewModel) finishGame() {
	m.gameState = StateGameOver
	m.gameOverState.Outcome = m.game.Outcome()
	m.gameOverState.CheeseCollected = m.game.GetNumberCheeseCollected()
	m.gameOverState.CheeseTotal = m.game.GetNumberCheeseToCollect()
	m.gameOverState.Turns = m.game.TurnCount()
	m.gameOverState.Board = m.renderMap(true)
	m.gameOverState.SelectedButton = 0

	log.Info("Game finished", "game", m.game.ID(), "player", m.PlayerName, "outcome", m.game.Outcome(), "turns", m.game.TurnCount())

	if m.resultsBoard == nil {
		return
	}
	if err := m.resultsBoard.Record(game.ResultFromGame(m.PlayerName, m.game)); err != nil {
		log.Error("Could not record game result", "game", m.game.ID(), "error", err)
	}
}

func (m *GameViewModel) loadResults() {
	m.gameOverState.Results = nil
	m.gameOverState.ResultsError = nil
	if m.resultsBoard == nil {
		return
	}

	results, err := m.resultsBoard.GetResults(game.ResultsPageSize, 0)
	if err != nil {
		log.Error("Could not load results", "error", err)
		m.gameOverState.ResultsError = err
		return
	}
	m.gameOverState.Results = results
}

func (m GameViewModel) View() string {
	switch m.gameState {
	case StateGameOver:
		return m.gameOverState.RenderGameOverScreen()
	case StateResults:
		return m.gameOverState.RenderResultsScreen()
	}

	if m.game == nil {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, "Waiting for game...")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderMap(m.revealBoard)),
		statusPanelStyle.Width(statusPanelWidth).Render(m.renderStatusPanel()),
	)
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

// renderMap draws the maze row by row. revealAll only affects this rendering.
func (m GameViewModel) renderMap(revealAll bool) string {
	var sb strings.Builder

	for y := 0; y < m.game.GetMazeHeight(); y++ {
		for x := 0; x < m.game.GetMazeWidth(); x++ {
			symbol := m.game.SymbolForCell(game.CellLocation{X: x, Y: y}, revealAll)
			if style, ok := symbolStyles[symbol]; ok {
				sb.WriteString(style.Render(string(symbol)))
			} else {
				sb.WriteRune(symbol)
			}
		}
		if y < m.game.GetMazeHeight()-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderStatusPanel draws cheese progress, the legend and the controls.
func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- "+m.PlayerName+" ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Cheese collected: %d of %d\n", m.game.GetNumberCheeseCollected(), m.game.GetNumberCheeseToCollect()))
	statusContent.WriteString(fmt.Sprintf("Turns: %d\n", m.game.TurnCount()))
	if m.revealBoard {
		statusContent.WriteString(warningStyle.Render("Debug: full board revealed") + "\n")
	}

	if m.showHelp {
		statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Directions ---") + "\n")
		statusContent.WriteString(fmt.Sprintf("Find %d cheese before a cat eats you!\n", m.game.GetNumberCheeseToCollect()))

		statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Legend ---") + "\n")
		legend := []struct {
			symbol rune
			label  string
		}{
			{game.SymbolWall, "Wall"},
			{game.SymbolMouse, "You (a mouse)"},
			{game.SymbolCat, "Cat"},
			{game.SymbolCheese, "Cheese"},
			{game.SymbolFog, "Unexplored space"},
		}
		for _, entry := range legend {
			statusContent.WriteString(fmt.Sprintf("%s: %s\n", symbolStyles[entry.symbol].Render(string(entry.symbol)), entry.label))
		}

		statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
		statusContent.WriteString("WASD / Arrows: Move\n")
		statusContent.WriteString("Dvorak: , A O E\n")
		statusContent.WriteString("?: Toggle help\n")
		statusContent.WriteString("Q / Ctrl+C: Quit Game\n")
	}

	if m.message != "" {
		statusContent.WriteString("\n" + warningStyle.Render(m.message))
	}

	return statusContent.String()
}
