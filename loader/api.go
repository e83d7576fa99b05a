package loader

import (
	"strings"

	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/types"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerEffectHelpers(L)
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Scenario { title = "..." }
	L.SetGlobal("Scenario", L.NewFunction(func(L *lua.LState) int {
		coll.scenario = L.CheckTable(1)
		return 0
	}))

	// Warrior { ... }, Mage { ... }, Archer { ... }, Rogue { ... }
	for _, class := range types.Classes {
		class := class
		L.SetGlobal(constructorName(string(class)), L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.characters = append(coll.characters, rawCharacter{
				class: class,
				table: tbl,
				line:  L.Where(1),
			})
			return 0
		}))
	}

	// Weapon { ... }, Armor { ... }, Potion { ... }, Scroll { ... }
	for _, kind := range types.ItemKinds {
		kind := kind
		L.SetGlobal(constructorName(string(kind)), L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.items = append(coll.items, rawItem{
				kind:  kind,
				table: tbl,
				line:  L.Where(1),
			})
			return 0
		}))
	}

	// Spell("fire") → "fire_spell"
	L.SetGlobal("Spell", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(classify.CreateSpellName(types.Element(L.CheckString(1)))))
		return 1
	}))
}

// registerEffectHelpers exposes status-effect constructors that return
// tagged tables, e.g. Poisoned(3, 2) → {type="poisoned", damage=3, duration=2}.
func registerEffectHelpers(L *lua.LState) {
	twoArg := func(kind types.EffectKind, field string) lua.LGFunction {
		return func(L *lua.LState) int {
			tbl := L.NewTable()
			tbl.RawSetString("type", lua.LString(kind))
			tbl.RawSetString(field, lua.LNumber(L.CheckNumber(1)))
			tbl.RawSetString("duration", lua.LNumber(L.CheckNumber(2)))
			L.Push(tbl)
			return 1
		}
	}

	L.SetGlobal("Poisoned", L.NewFunction(twoArg(types.EffectPoisoned, "damage")))
	L.SetGlobal("Burning", L.NewFunction(twoArg(types.EffectBurning, "damage")))
	L.SetGlobal("Blessed", L.NewFunction(twoArg(types.EffectBlessed, "heal_amount")))
	L.SetGlobal("Cursed", L.NewFunction(twoArg(types.EffectCursed, "damage_reduction")))

	L.SetGlobal("Frozen", L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString(types.EffectFrozen))
		tbl.RawSetString("duration", lua.LNumber(L.CheckNumber(1)))
		L.Push(tbl)
		return 1
	}))
}

// constructorName turns "warrior" into "Warrior".
func constructorName(tag string) string {
	return strings.ToUpper(tag[:1]) + tag[1:]
}
