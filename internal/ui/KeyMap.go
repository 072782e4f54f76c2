package ui

import (
	"strings"

	"github.com/Mshel/cheesemaze/internal/game"
)

type KeyAction int

const (
	KeyIgnored KeyAction = iota
	KeyMove
	KeyHelp
	KeyReveal
)

// moveKeys covers WASD, arrows and the Dvorak positions of WASD (',' 'a' 'o' 'e').
var moveKeys = map[string]game.MoveDirection{
	"w":     game.MoveUp,
	"up":    game.MoveUp,
	",":     game.MoveUp,
	"s":     game.MoveDown,
	"down":  game.MoveDown,
	"o":     game.MoveDown,
	"a":     game.MoveLeft,
	"left":  game.MoveLeft,
	"d":     game.MoveRight,
	"right": game.MoveRight,
	"e":     game.MoveRight,
}

// ParseKey maps a bubbletea key string to a game command.
func ParseKey(key string) (game.MoveDirection, KeyAction) {
	key = strings.ToLower(key)
	if dir, ok := moveKeys[key]; ok {
		return dir, KeyMove
	}

	switch key {
	case "?":
		return game.MoveNone, KeyHelp
	case "m":
		return game.MoveNone, KeyReveal
	}
	return game.MoveNone, KeyIgnored
}
