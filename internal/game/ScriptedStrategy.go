package game

import (
	"errors"
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const scriptEntryPoint = "getNextDirection"

// ScriptedStrategy lets a Lua script steer the cat. The script defines
//
//	function getNextDirection(cat, mouse, moves)
//	  return {Dx=0, Dy=-1}
//	end
//
// where cat and mouse are {X=, Y=} tables and moves lists the legal {Dx=, Dy=} steps.
type ScriptedStrategy struct {
	StrategyName       string
	StrategyDefinition string
}

// NewScriptedStrategy checks that the script parses and defines the entry point.
func NewScriptedStrategy(name, definition string) (*ScriptedStrategy, error) {
	luaState := lua.NewState()
	defer luaState.Close()

	if err := luaState.DoString(definition); err != nil {
		return nil, fmt.Errorf("could not parse lua strategy %s: %w", name, err)
	}
	if luaState.GetGlobal(scriptEntryPoint).Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua strategy %s does not define %s", name, scriptEntryPoint)
	}

	return &ScriptedStrategy{StrategyName: name, StrategyDefinition: definition}, nil
}

func LoadScriptedStrategy(path string) (*ScriptedStrategy, error) {
	definition, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lua strategy %s: %w", path, err)
	}
	return NewScriptedStrategy(path, string(definition))
}

func (s *ScriptedStrategy) getNextBestDirection(cat, mouse CellLocation, grid *Grid) (MoveDirection, error) {
	luaState := lua.NewState()
	defer luaState.Close()
	if err := luaState.DoString(s.StrategyDefinition); err != nil {
		return MoveNone, errors.New("could not parse lua strategy definition")
	}

	moves := luaState.NewTable()
	for _, dir := range NewMoveValidator(grid).ValidMoves(cat) {
		offset := directionOffsets[dir]
		moves.Append(directionToLuaTable(luaState, offset))
	}

	if err := luaState.CallByParam(lua.P{
		Fn:      luaState.GetGlobal(scriptEntryPoint),
		NRet:    1,
		Protect: true,
	}, locationToLuaTable(luaState, cat), locationToLuaTable(luaState, mouse), moves); err != nil {
		return MoveNone, fmt.Errorf("could not execute lua strategy %s: %w", s.StrategyName, err)
	}

	luaReturn := luaState.Get(-1)
	luaState.Pop(1)

	if luaReturn == lua.LNil {
		return MoveNone, nil
	}
	luaTable, ok := luaReturn.(*lua.LTable)
	if !ok {
		return MoveNone, fmt.Errorf("lua strategy %s returned %s, expected table", s.StrategyName, luaReturn.Type().String())
	}

	offset := convertLuaDirectionTableToGoStruct(luaTable)
	if offset.Dx == 0 && offset.Dy == 0 {
		return MoveNone, nil
	}
	dir, ok := DirectionFromOffset(offset.Dx, offset.Dy)
	if !ok {
		return MoveNone, fmt.Errorf("lua strategy %s returned non unit step {Dx=%d, Dy=%d}", s.StrategyName, offset.Dx, offset.Dy)
	}
	return dir, nil
}

func locationToLuaTable(luaState *lua.LState, loc CellLocation) *lua.LTable {
	tbl := luaState.NewTable()
	tbl.RawSetString("X", lua.LNumber(loc.X))
	tbl.RawSetString("Y", lua.LNumber(loc.Y))
	return tbl
}

func directionToLuaTable(luaState *lua.LState, dir Direction) *lua.LTable {
	tbl := luaState.NewTable()
	tbl.RawSetString("Dx", lua.LNumber(dir.Dx))
	tbl.RawSetString("Dy", lua.LNumber(dir.Dy))
	return tbl
}

func convertLuaDirectionTableToGoStruct(luaTbl *lua.LTable) Direction {
	result := Direction{}
	luaTbl.ForEach(func(key, value lua.LValue) {
		if key.Type() != lua.LTString {
			return
		}

		switch lua.LVAsString(key) {
		case "Dy":
			result.Dy = int(lua.LVAsNumber(value))
		case "Dx":
			result.Dx = int(lua.LVAsNumber(value))
		}
	})
	return result
}
