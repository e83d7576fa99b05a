package classify

import (
	"fmt"
	"slices"

	"github.com/nathoo/unionroster/types"
)

var (
	weaponTypes   = []types.WeaponType{types.WeaponSword, types.WeaponAxe, types.WeaponHammer}
	arrowTypes    = []types.ArrowType{types.ArrowNormal, types.ArrowFire, types.ArrowIce, types.ArrowPoison}
	rarities      = []types.Rarity{types.RarityCommon, types.RarityRare, types.RarityEpic, types.RarityLegendary}
	potionEffects = []types.PotionEffect{types.PotionHeal, types.PotionMana, types.PotionStrength}
	phases        = []types.Phase{types.PhaseSetup, types.PhaseBattle, types.PhaseVictory, types.PhaseDefeat}
)

// IsValidPhase reports whether p is one of the four game phases.
func IsValidPhase(p types.Phase) bool {
	return slices.Contains(phases, p)
}

// ValidateCharacter checks the enum fields of a character: weapon, arrow
// type, element and spell names.
func ValidateCharacter(c types.Character) error {
	switch c := c.(type) {
	case types.Warrior:
		if !slices.Contains(weaponTypes, c.WeaponType) {
			return fmt.Errorf("unknown weapon %q", c.WeaponType)
		}
	case types.Mage:
		if !IsValidElement(string(c.Element)) {
			return fmt.Errorf("unknown element %q", c.Element)
		}
		for _, s := range c.Spells {
			if !IsValidSpell(s) {
				return fmt.Errorf("malformed spell name %q", s)
			}
		}
	case types.Archer:
		if !slices.Contains(arrowTypes, c.ArrowType) {
			return fmt.Errorf("unknown arrow type %q", c.ArrowType)
		}
	case types.Rogue:
	default:
		panic(unhandled(c))
	}
	return nil
}

// ValidateItem checks that an item is named and that its enum fields hold
// known values.
func ValidateItem(i types.Item) error {
	if i.Label() == "" {
		return fmt.Errorf("name is required")
	}
	switch i := i.(type) {
	case types.Weapon:
		if !slices.Contains(rarities, i.Rarity) {
			return fmt.Errorf("unknown rarity %q", i.Rarity)
		}
	case types.Potion:
		if !slices.Contains(potionEffects, i.Effect) {
			return fmt.Errorf("unknown potion effect %q", i.Effect)
		}
	case types.Scroll:
		if !IsValidSpell(i.Spell) {
			return fmt.Errorf("malformed spell name %q", i.Spell)
		}
	case types.Armor:
	default:
		panic(unhandled(i))
	}
	return nil
}
