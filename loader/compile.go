package loader

import (
	"fmt"

	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/types"
	lua "github.com/yuin/gopher-lua"
)

// rawCharacter holds a character table before compilation.
type rawCharacter struct {
	class types.Class
	table *lua.LTable
	line  string
}

// rawItem holds an item table before compilation.
type rawItem struct {
	kind  types.ItemKind
	table *lua.LTable
	line  string
}

// compile converts collected Lua tables into a Scenario. Problems are
// gathered into a single ValidationError rather than failing on the first.
func compile(coll *collector) (*Scenario, error) {
	ve := &ValidationError{}
	sc := &Scenario{Title: "Untitled scenario"}

	if coll.scenario != nil {
		if title := getString(coll.scenario, "title"); title != "" {
			sc.Title = title
		}
	}

	for i, rc := range coll.characters {
		entry, errs := compileCharacter(rc)
		for _, e := range errs {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s %s #%d: %s", rc.line, rc.class, i+1, e))
		}
		if entry != nil {
			sc.Roster = append(sc.Roster, entry)
		}
	}

	for _, ri := range coll.items {
		item, errs := compileItem(ri)
		for _, e := range errs {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s %s: %s", ri.line, ri.kind, e))
		}
		if item != nil {
			sc.Inventory = append(sc.Inventory, item)
		}
	}

	if len(coll.characters) == 0 {
		ve.Errors = append(ve.Errors, "scenario defines no characters")
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	if sc.Inventory == nil {
		sc.Inventory = []types.Item{}
	}
	return sc, nil
}

func compileCharacter(rc rawCharacter) (*types.RosterEntry, []string) {
	t := rc.table
	var errs []string

	var c types.Character
	switch rc.class {
	case types.ClassWarrior:
		c = types.Warrior{
			Strength:   getInt(t, "strength"),
			Armor:      getInt(t, "armor"),
			WeaponType: types.WeaponType(getString(t, "weapon")),
			BattleCry:  getString(t, "battle_cry"),
		}
	case types.ClassMage:
		m := types.Mage{
			Intelligence: getInt(t, "intelligence"),
			Mana:         getInt(t, "mana"),
			Element:      types.Element(getString(t, "element")),
			Spells:       []types.SpellName{},
		}
		for _, s := range getStrings(t, "spells") {
			m.Spells = append(m.Spells, types.SpellName(s))
		}
		c = m
	case types.ClassArcher:
		c = types.Archer{
			Dexterity:  getInt(t, "dexterity"),
			Accuracy:   getInt(t, "accuracy"),
			ArrowType:  types.ArrowType(getString(t, "arrow")),
			RangeBonus: getInt(t, "range_bonus"),
		}
	case types.ClassRogue:
		c = types.Rogue{
			Stealth:            getInt(t, "stealth"),
			CriticalChance:     getInt(t, "critical_chance"),
			PoisonDamage:       getInt(t, "poison_damage"),
			BackstabMultiplier: getNumber(t, "backstab_multiplier"),
		}
	default:
		panic(fmt.Sprintf("loader: unhandled class %q", rc.class))
	}

	stats := types.Stats{
		Health:     getInt(t, "health"),
		Level:      getInt(t, "level"),
		Experience: getInt(t, "experience"),
	}

	abilities := classify.AbilitiesFor(rc.class)
	if names := getTable(t, "abilities"); names != nil {
		abilities = nil
		for _, s := range getStrings(t, "abilities") {
			abilities = append(abilities, types.Ability(s))
		}
	}

	var fx []types.StatusEffect
	if list := getTable(t, "effects"); list != nil {
		for i := 1; i <= list.MaxN(); i++ {
			et, ok := list.RawGetInt(i).(*lua.LTable)
			if !ok {
				errs = append(errs, fmt.Sprintf("effect %d is not a table", i))
				continue
			}
			e, err := compileEffect(et)
			if err != nil {
				errs = append(errs, fmt.Sprintf("effect %d: %v", i, err))
				continue
			}
			fx = append(fx, e)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	entry, err := classify.NewEntry(c, stats, abilities, fx)
	if err != nil {
		return nil, []string{err.Error()}
	}
	return entry, nil
}

func compileEffect(t *lua.LTable) (types.StatusEffect, error) {
	d := getInt(t, "duration")
	switch kind := types.EffectKind(getString(t, "type")); kind {
	case types.EffectPoisoned:
		return types.Poisoned{Damage: getInt(t, "damage"), Duration: d}, nil
	case types.EffectBurning:
		return types.Burning{Damage: getInt(t, "damage"), Duration: d}, nil
	case types.EffectFrozen:
		return types.Frozen{Duration: d}, nil
	case types.EffectBlessed:
		return types.Blessed{HealAmount: getInt(t, "heal_amount"), Duration: d}, nil
	case types.EffectCursed:
		return types.Cursed{DamageReduction: getInt(t, "damage_reduction"), Duration: d}, nil
	default:
		return nil, fmt.Errorf("unknown status effect %q", kind)
	}
}

func compileItem(ri rawItem) (types.Item, []string) {
	t := ri.table
	name := getString(t, "name")

	var item types.Item
	switch ri.kind {
	case types.ItemWeapon:
		item = types.Weapon{Name: name, Damage: getInt(t, "damage"), Rarity: types.Rarity(getString(t, "rarity"))}
	case types.ItemArmor:
		item = types.Armor{Name: name, Defense: getInt(t, "defense"), Durability: getInt(t, "durability")}
	case types.ItemPotion:
		item = types.Potion{Name: name, Effect: types.PotionEffect(getString(t, "effect")), Amount: getInt(t, "amount")}
	case types.ItemScroll:
		item = types.Scroll{Name: name, Spell: types.SpellName(getString(t, "spell"))}
	default:
		panic(fmt.Sprintf("loader: unhandled item kind %q", ri.kind))
	}

	if err := classify.ValidateItem(item); err != nil {
		return nil, []string{err.Error()}
	}
	return item, nil
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getNumber returns a numeric field from a Lua table, or 0 if missing.
func getNumber(tbl *lua.LTable, key string) float64 {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return 0
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	return int(getNumber(tbl, key))
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns the string elements of an array field.
func getStrings(tbl *lua.LTable, key string) []string {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []string
	for i := 1; i <= arr.MaxN(); i++ {
		if s, ok := arr.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
