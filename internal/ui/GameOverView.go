package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/cheesemaze/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the data and local state for rendering the game over screens.
type GameOverState struct {
	Outcome         game.GameOutcome
	CheeseCollected int
	CheeseTotal     int
	Turns           int
	Board           string
	SelectedButton  int // 0: Exit, 1: Play again, 2: Results
	Results         []game.GameResult
	ResultsError    error
	ScreenWidth     int
	ScreenHeight    int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	resultsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	resultsRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	resultsBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))

	gameOverButtons = []string{"EXIT", "PLAY AGAIN", "RESULTS"}
)

func (g *GameOverState) headline() (string, lipgloss.Color) {
	if g.Outcome == game.Won {
		return "Congratulations! You won!", lipgloss.Color("10")
	}
	return "I'm sorry, you have been eaten! GAME OVER", lipgloss.Color("9")
}

// RenderGameOverScreen draws the outcome, the fully revealed maze and the buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	text, color := g.headline()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Padding(1, 3).
		Render(text)

	stats := fmt.Sprintf("Cheese collected: %d of %d\nTurns: %d", g.CheeseCollected, g.CheeseTotal, g.Turns)

	buttons := make([]string, len(gameOverButtons))
	for i, label := range gameOverButtons {
		if i == g.SelectedButton {
			buttons[i] = selectedButtonStyle.Render(label)
		} else {
			buttons[i] = gameOverButtonStyle.Render(label)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		mapViewStyle.Render(g.Board),
		stats,
		lipgloss.JoinHorizontal(lipgloss.Center, buttons...),
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

// RenderResultsScreen draws the results of finished games.
func (g *GameOverState) RenderResultsScreen() string {
	var tableContent strings.Builder

	nameWidth := 20
	outcomeWidth := 8
	numberWidth := 8

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		resultsHeaderStyle.Width(4).Render("#"),
		resultsHeaderStyle.Width(nameWidth).Render("Player"),
		resultsHeaderStyle.Width(outcomeWidth).Render("Result"),
		resultsHeaderStyle.Width(numberWidth).Render("Cheese"),
		resultsHeaderStyle.Width(numberWidth).Render("Turns"),
	)
	tableContent.WriteString(header + "\n")

	for i, result := range g.Results {
		outcomeColor := lipgloss.Color("9")
		if result.Outcome == game.Won.String() {
			outcomeColor = lipgloss.Color("10")
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			resultsRowStyle.Width(4).Render(strconv.Itoa(i+1)),
			resultsRowStyle.Width(nameWidth).Render(result.PlayerName),
			resultsRowStyle.Foreground(outcomeColor).Width(outcomeWidth).Render(result.Outcome),
			resultsRowStyle.Width(numberWidth).Render(fmt.Sprintf("%d/%d", result.CheeseCollected, result.CheeseTotal)),
			resultsRowStyle.Width(numberWidth).Render(strconv.Itoa(result.Turns)),
		)
		tableContent.WriteString(resultsBorderStyle.Render(row) + "\n")
	}

	switch {
	case g.ResultsError != nil:
		tableContent.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("Results are unavailable right now.") + "\n")
	case len(g.Results) == 0:
		tableContent.WriteString(lipgloss.NewStyle().Faint(true).Render("No finished games yet.") + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("RESULTS")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to go back.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
