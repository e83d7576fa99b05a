package classify

import (
	"fmt"

	"github.com/nathoo/unionroster/types"
)

func IsPoisoned(e types.StatusEffect) (types.Poisoned, bool) {
	v, ok := e.(types.Poisoned)
	return v, ok
}

func IsBurning(e types.StatusEffect) (types.Burning, bool) {
	v, ok := e.(types.Burning)
	return v, ok
}

func IsFrozen(e types.StatusEffect) (types.Frozen, bool) {
	v, ok := e.(types.Frozen)
	return v, ok
}

func IsBlessed(e types.StatusEffect) (types.Blessed, bool) {
	v, ok := e.(types.Blessed)
	return v, ok
}

func IsCursed(e types.StatusEffect) (types.Cursed, bool) {
	v, ok := e.(types.Cursed)
	return v, ok
}

func IsWeapon(i types.Item) (types.Weapon, bool) {
	v, ok := i.(types.Weapon)
	return v, ok
}

func IsArmor(i types.Item) (types.Armor, bool) {
	v, ok := i.(types.Armor)
	return v, ok
}

func IsPotion(i types.Item) (types.Potion, bool) {
	v, ok := i.(types.Potion)
	return v, ok
}

func IsScroll(i types.Item) (types.Scroll, bool) {
	v, ok := i.(types.Scroll)
	return v, ok
}

// ItemSummary renders an inventory line, e.g. "Flaming Sword (weapon) - 45 damage".
func ItemSummary(i types.Item) string {
	head := fmt.Sprintf("%s (%s)", i.Label(), i.Kind())
	switch i := i.(type) {
	case types.Weapon:
		return fmt.Sprintf("%s - %d damage, %s", head, i.Damage, i.Rarity)
	case types.Armor:
		return fmt.Sprintf("%s - %d defense, %d durability", head, i.Defense, i.Durability)
	case types.Potion:
		return fmt.Sprintf("%s - %d %s", head, i.Amount, i.Effect)
	case types.Scroll:
		return fmt.Sprintf("%s - %s", head, i.Spell)
	default:
		panic(unhandled(i))
	}
}
