// Package loader loads Lua roster scenarios into Go values at startup.
// The Lua VM is discarded after loading; nothing runs Lua at runtime.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/unionroster/types"
	lua "github.com/yuin/gopher-lua"
)

// Scenario is a compiled roster scenario.
type Scenario struct {
	Title     string
	Roster    []*types.RosterEntry
	Inventory []types.Item
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	scenario   *lua.LTable
	characters []rawCharacter
	items      []rawItem
}

// Load reads all .lua files from dir, compiles them into a scenario,
// validates it, and returns it. Files run in order: roster.lua first,
// the rest alphabetical.
func Load(dir string) (*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	return compile(coll)
}

// LoadString compiles a single in-memory Lua chunk. Used by tests and
// for embedding small scenarios.
func LoadString(src string) (*Scenario, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("executing scenario: %w", err)
	}
	return compile(coll)
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Scenarios must not depend on randomness.
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("random", lua.LNil)
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
}

// sortedLuaFiles puts roster.lua first, then the rest alphabetically.
func sortedLuaFiles(files []string) []string {
	sort.Slice(files, func(i, j int) bool {
		if files[i] == "roster.lua" {
			return files[j] != "roster.lua"
		}
		if files[j] == "roster.lua" {
			return false
		}
		return files[i] < files[j]
	})
	return files
}
