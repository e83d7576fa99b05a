// Package classify holds the predicates and derived-stat queries over the
// closed unions in package types. Every type switch on a union lives here
// (or in packages that call these helpers); each one panics on an unhandled
// variant so that adding a variant fails the dispatch tests until every
// site is updated.
package classify

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/nathoo/unionroster/types"
)

// IsWarrior reports whether c is a Warrior and returns it narrowed.
func IsWarrior(c types.Character) (types.Warrior, bool) {
	w, ok := c.(types.Warrior)
	return w, ok
}

// IsMage reports whether c is a Mage and returns it narrowed.
func IsMage(c types.Character) (types.Mage, bool) {
	m, ok := c.(types.Mage)
	return m, ok
}

// IsArcher reports whether c is an Archer and returns it narrowed.
func IsArcher(c types.Character) (types.Archer, bool) {
	a, ok := c.(types.Archer)
	return a, ok
}

// IsRogue reports whether c is a Rogue and returns it narrowed.
func IsRogue(c types.Character) (types.Rogue, bool) {
	r, ok := c.(types.Rogue)
	return r, ok
}

// PrimaryStat returns the class's headline attribute.
func PrimaryStat(c types.Character) int {
	switch c := c.(type) {
	case types.Warrior:
		return c.Strength
	case types.Mage:
		return c.Intelligence
	case types.Archer:
		return c.Dexterity
	case types.Rogue:
		return c.Stealth
	default:
		panic(unhandled(c))
	}
}

// PrimaryStatsSummary renders the two main attributes of a character.
func PrimaryStatsSummary(c types.Character) string {
	switch c := c.(type) {
	case types.Warrior:
		return fmt.Sprintf("Strength: %d | Armor: %d", c.Strength, c.Armor)
	case types.Mage:
		return fmt.Sprintf("Intelligence: %d | Mana: %d", c.Intelligence, c.Mana)
	case types.Archer:
		return fmt.Sprintf("Dexterity: %d | Accuracy: %d", c.Dexterity, c.Accuracy)
	case types.Rogue:
		return fmt.Sprintf("Stealth: %d | Critical: %d%%", c.Stealth, c.CriticalChance)
	default:
		panic(unhandled(c))
	}
}

// SpecialAttributeSummary renders the class-only flavour fields.
func SpecialAttributeSummary(c types.Character) string {
	switch c := c.(type) {
	case types.Warrior:
		return fmt.Sprintf(`Weapon: %s | Battle Cry: "%s"`, c.WeaponType, c.BattleCry)
	case types.Mage:
		spells := make([]string, len(c.Spells))
		for i, s := range c.Spells {
			spells[i] = string(s)
		}
		return fmt.Sprintf("Element: %s | Spells: %s", c.Element, strings.Join(spells, ", "))
	case types.Archer:
		return fmt.Sprintf("Arrow Type: %s | Range Bonus: +%d", c.ArrowType, c.RangeBonus)
	case types.Rogue:
		return fmt.Sprintf("Backstab: x%s | Poison: %d", FormatNumber(c.BackstabMultiplier), c.PoisonDamage)
	default:
		panic(unhandled(c))
	}
}

// TotalPower is round(primary + health*0.1 + level*5 + experience*0.05).
func TotalPower(e *types.RosterEntry) int {
	primary := float64(PrimaryStat(e.Character))
	healthBonus := float64(e.Health) * 0.1
	levelBonus := float64(e.Level) * 5
	experienceBonus := float64(e.Experience) * 0.05
	return int(math.Round(primary + healthBonus + levelBonus + experienceBonus))
}

// StatusEffectDamage returns the damage (or damage reduction) carried by an
// effect, 0 for effects that carry none.
func StatusEffectDamage(e types.StatusEffect) int {
	switch e := e.(type) {
	case types.Poisoned:
		return e.Damage
	case types.Burning:
		return e.Damage
	case types.Cursed:
		return e.DamageReduction
	case types.Frozen, types.Blessed:
		return 0
	default:
		panic(unhandled(e))
	}
}

// StatusEffectHealing returns the heal amount of a blessing, else 0.
func StatusEffectHealing(e types.StatusEffect) int {
	switch e := e.(type) {
	case types.Blessed:
		return e.HealAmount
	case types.Poisoned, types.Burning, types.Frozen, types.Cursed:
		return 0
	default:
		panic(unhandled(e))
	}
}

// CreateSpellName returns "<element>_spell".
func CreateSpellName(el types.Element) types.SpellName {
	return types.SpellName(string(el) + "_spell")
}

// GenerateSpellName is an alias of CreateSpellName.
var GenerateSpellName = CreateSpellName

// IsValidClass reports whether s names a character class.
func IsValidClass(s string) bool {
	return slices.Contains(types.Classes, types.Class(s))
}

// IsValidElement reports whether s names an element.
func IsValidElement(s string) bool {
	return slices.Contains(types.Elements, types.Element(s))
}

// IsValidSpell reports whether s is a well-formed spell name.
func IsValidSpell(s types.SpellName) bool {
	el, ok := strings.CutSuffix(string(s), "_spell")
	return ok && IsValidElement(el)
}

var classAbilities = map[types.Class][]types.Ability{
	types.ClassWarrior: {types.AbilityCharge, types.AbilityDefend, types.AbilityBerserk},
	types.ClassMage:    {types.AbilityFireball, types.AbilityHeal, types.AbilityTeleport},
	types.ClassArcher:  {types.AbilityMultishot, types.AbilityAimshot, types.AbilityTrap},
	types.ClassRogue:   {types.AbilityBackstab, types.AbilityVanish, types.AbilityPoisonDart},
}

// AbilitiesFor returns the legal ability tags of a class, in canonical order.
func AbilitiesFor(class types.Class) []types.Ability {
	return slices.Clone(classAbilities[class])
}

// IsLegalAbility reports whether a belongs to the class's ability set.
func IsLegalAbility(class types.Class, a types.Ability) bool {
	return slices.Contains(classAbilities[class], a)
}

// NewEntry builds a roster entry, checking the class-dependent invariants:
// every ability is legal for the class, experience lies in [0, 100], and
// the character passes ValidateCharacter.
func NewEntry(c types.Character, stats types.Stats, abilities []types.Ability, effects []types.StatusEffect) (*types.RosterEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("character is required")
	}
	for _, a := range abilities {
		if !IsLegalAbility(c.Class(), a) {
			return nil, fmt.Errorf("ability %q is not available to class %s", a, c.Class())
		}
	}
	if stats.Experience < 0 || stats.Experience > 100 {
		return nil, fmt.Errorf("experience %d out of range [0, 100]", stats.Experience)
	}
	if err := ValidateCharacter(c); err != nil {
		return nil, err
	}
	if effects == nil {
		effects = []types.StatusEffect{}
	}
	return &types.RosterEntry{
		Character:     c,
		Stats:         stats,
		Abilities:     slices.Clone(abilities),
		StatusEffects: slices.Clone(effects),
	}, nil
}

// FormatNumber prints a float the shortest way that round-trips, so 127.5
// stays "127.5" and 120.0 becomes "120".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func unhandled(v any) string {
	return fmt.Sprintf("classify: unhandled variant %T", v)
}
