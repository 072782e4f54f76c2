package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRevealRadius = 1
	FogColor            = 236
	WallColor           = 172
	MouseColor          = 255
	CatColor            = 203
	CheeseColor         = 220
	DeadColor           = 196
	ResultsPageSize     = 10
)

// Config is read from the environment once at startup.
type Config struct {
	Host                string `env:"MAZE_HOST" envDefault:"0.0.0.0"`
	Port                string `env:"MAZE_PORT" envDefault:"6996"`
	PrivateKeyPath      string `env:"MAZE_PRIVATE_KEY_PATH" envDefault:".ssh/maze_ed25519"`
	MaxConnectionsPerIP int    `env:"MAZE_MAX_CONNECTIONS_PER_IP" envDefault:"2"`
	LayoutPath          string `env:"MAZE_LAYOUT_PATH"`
	CatScriptPath       string `env:"MAZE_CAT_SCRIPT_PATH"`
	RevealRadius        int    `env:"MAZE_REVEAL_RADIUS" envDefault:"1"`
	ResultsDSN          string `env:"MAZE_RESULTS_DSN" envDefault:"file:results?mode=memory&cache=shared"`
	LogLevel            string `env:"MAZE_LOG_LEVEL" envDefault:"info"`
	LogFile             string `env:"MAZE_LOG_FILE"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RevealRadius < 0 {
		return Config{}, fmt.Errorf("MAZE_REVEAL_RADIUS must not be negative, got %d", cfg.RevealRadius)
	}
	return cfg, nil
}

// Address is the host:port the SSH server listens on.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

// GameFactory builds the layout and cat strategy once and hands out fresh games.
type GameFactory struct {
	layout   Layout
	settings GameSettings
}

func NewGameFactory(cfg Config) (*GameFactory, error) {
	layout, err := LoadLayout(cfg.LayoutPath)
	if err != nil {
		return nil, err
	}

	settings := GameSettings{RevealRadius: cfg.RevealRadius}
	if cfg.CatScriptPath != "" {
		strategy, err := LoadScriptedStrategy(cfg.CatScriptPath)
		if err != nil {
			return nil, err
		}
		settings.CatStrategy = strategy
	}

	// Fail at startup rather than on the first connection.
	if _, err := NewGameModel(layout, settings); err != nil {
		return nil, err
	}

	return &GameFactory{layout: layout, settings: settings}, nil
}

func (f *GameFactory) NewGame() (*GameModel, error) {
	return NewGameModel(f.layout, f.settings)
}
