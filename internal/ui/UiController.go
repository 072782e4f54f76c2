package ui

import (
	"github.com/Mshel/cheesemaze/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Play, 1 for Results
type SetupSubmitMsg struct {
	Name string
}

type ShowResultsMsg struct{}

// QuitGameMsg sends the controller back to the IntroScreen.
type QuitGameMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	GameFactory   *game.GameFactory
	ResultsBoard  *game.ResultsBoard

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	PlayerName   string
	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel wires the screens. resultsBoard may be nil.
func NewControllerModel(factory *game.GameFactory, resultsBoard *game.ResultsBoard, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		GameFactory:   factory,
		ResultsBoard:  resultsBoard,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// q is a valid character in a player name
		if msg.String() == "q" && m.CurrentScreen != SetupScreen {
			return m, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		} else if msg == 1 {
			m.CurrentScreen = GameScreen
			m.GameModel = NewResultsOnlyModel(m.ResultsBoard, m.ScreenWidth, m.ScreenHeight)
			return m, tea.Sequence(m.GameModel.Init(), func() tea.Msg { return ShowResultsMsg{} })
		}

	case SetupSubmitMsg:
		gameModel, err := m.GameFactory.NewGame()
		if err != nil {
			log.Error("Could not start a new game", "error", err)
			return m, tea.Quit
		}

		m.PlayerName = msg.Name
		m.CurrentScreen = GameScreen
		m.GameModel = NewGameViewModel(gameModel, m.ResultsBoard, msg.Name, m.ScreenWidth, m.ScreenHeight)
		log.Info("Game started", "game", gameModel.ID(), "player", msg.Name)
		return m, m.GameModel.Init()

	case QuitGameMsg:
		m.CurrentScreen = IntroScreen
		m.GameModel = nil
		return m, m.IntroModel.Init()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}
