package main

import (
	"fmt"
	"os"

	"github.com/Mshel/cheesemaze/internal/game"
	"github.com/Mshel/cheesemaze/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so log to a file when asked to.
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("error %v", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}
	} else {
		log.SetLevel(log.FatalLevel)
	}

	factory, err := game.NewGameFactory(cfg)
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}

	resultsBoard, err := game.NewResultsBoard(cfg.ResultsDSN)
	if err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
	defer resultsBoard.Close()

	p := tea.NewProgram(ui.NewControllerModel(factory, resultsBoard, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
