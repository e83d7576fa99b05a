// Package actions is the class-gated action catalog: which actions a
// character may take and how each one is described.
package actions

import (
	"fmt"

	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/types"
)

// Action is one entry of a class's action menu.
type Action struct {
	ID    string
	Label string
}

// Action IDs. The sets are disjoint per class.
const (
	Charge    = "charge"
	Defend    = "defend"
	Battlecry = "battlecry"

	CastSpell = "cast_spell"
	Meditate  = "meditate"
	Enchant   = "enchant"

	AimedShot = "aimed_shot"
	Multishot = "multishot"
	SetTrap   = "set_trap"

	Backstab   = "backstab"
	Stealth    = "stealth"
	PoisonDart = "poison_dart"
)

// UnknownAction is returned by Description for IDs outside the class's set.
const UnknownAction = "Unknown action"

// Available returns the ordered action menu for c.
func Available(c types.Character) []Action {
	switch c := c.(type) {
	case types.Warrior:
		return []Action{
			{ID: Charge, Label: "Charge Attack"},
			{ID: Defend, Label: "Defend"},
			{ID: Battlecry, Label: "Battle Cry"},
		}
	case types.Mage:
		return []Action{
			{ID: CastSpell, Label: fmt.Sprintf("Cast %s Spell", c.Element)},
			{ID: Meditate, Label: "Meditate"},
			{ID: Enchant, Label: "Enchant Weapon"},
		}
	case types.Archer:
		return []Action{
			{ID: AimedShot, Label: "Aimed Shot"},
			{ID: Multishot, Label: "Multishot"},
			{ID: SetTrap, Label: "Set Trap"},
		}
	case types.Rogue:
		return []Action{
			{ID: Backstab, Label: "Backstab"},
			{ID: Stealth, Label: "Stealth"},
			{ID: PoisonDart, Label: "Poison Dart"},
		}
	default:
		panic(fmt.Sprintf("actions: unhandled variant %T", c))
	}
}

// IsLegal reports whether id is in the action set of class.
func IsLegal(c types.Character, id string) bool {
	for _, a := range Available(c) {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Description explains what id does for c, using c's own fields. An id the
// class cannot perform yields UnknownAction rather than an error.
func Description(id string, c types.Character) string {
	var d map[string]string
	switch c := c.(type) {
	case types.Warrior:
		d = map[string]string{
			Charge:    fmt.Sprintf("Charges forward with %s, dealing %s damage!", c.WeaponType, classify.FormatNumber(float64(c.Strength)*1.5)),
			Defend:    fmt.Sprintf("Raises shield, reducing incoming damage by %d!", c.Armor),
			Battlecry: fmt.Sprintf(`"%s" - Boosts team morale!`, c.BattleCry),
		}
	case types.Mage:
		d = map[string]string{
			CastSpell: fmt.Sprintf("Casts %s spell dealing %d damage!", c.Element, c.Intelligence*2),
			Meditate:  fmt.Sprintf("Restores %d mana points through meditation!", c.Mana),
			Enchant:   fmt.Sprintf("Enchants weapon with %s element!", c.Element),
		}
	case types.Archer:
		d = map[string]string{
			AimedShot: fmt.Sprintf("Aims carefully, %d%% chance to hit for %d damage!", c.Accuracy, c.Dexterity*2),
			Multishot: fmt.Sprintf("Fires multiple %s arrows!", c.ArrowType),
			SetTrap:   fmt.Sprintf("Sets a trap with +%d effectiveness!", c.RangeBonus),
		}
	case types.Rogue:
		d = map[string]string{
			Backstab:   fmt.Sprintf("Strikes from shadows with x%s damage multiplier!", classify.FormatNumber(c.BackstabMultiplier)),
			Stealth:    fmt.Sprintf("Becomes invisible (%d stealth rating)!", c.Stealth),
			PoisonDart: fmt.Sprintf("Throws poison dart dealing %d poison damage!", c.PoisonDamage),
		}
	default:
		panic(fmt.Sprintf("actions: unhandled variant %T", c))
	}
	if s, ok := d[id]; ok {
		return s
	}
	return UnknownAction
}
