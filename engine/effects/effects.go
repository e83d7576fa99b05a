// Package effects implements the status-effect list edits used by the
// transitions. Lists are treated as immutable: every edit returns a fresh
// slice and never writes into the backing array of its input.
package effects

import (
	"fmt"

	"github.com/nathoo/unionroster/types"
)

// RandomCatalog is the fixed set AddRandomStatusEffect draws from.
var RandomCatalog = []types.StatusEffect{
	types.Burning{Damage: 5, Duration: 3},
	types.Frozen{Duration: 2},
	types.Cursed{DamageReduction: 10, Duration: 4},
}

// Append returns list with e added at the end.
func Append(list []types.StatusEffect, e types.StatusEffect) []types.StatusEffect {
	out := make([]types.StatusEffect, len(list), len(list)+1)
	copy(out, list)
	return append(out, e)
}

// RemoveLast returns list without its most recently added effect.
// The second result is false (and list is returned as is) when list is empty.
func RemoveLast(list []types.StatusEffect) ([]types.StatusEffect, bool) {
	if len(list) == 0 {
		return list, false
	}
	out := make([]types.StatusEffect, len(list)-1)
	copy(out, list)
	return out, true
}

// Describe renders an effect for display, e.g. "Poisoned: 3 dmg for 2 turns".
func Describe(e types.StatusEffect) string {
	var head string
	switch e := e.(type) {
	case types.Poisoned:
		head = fmt.Sprintf("Poisoned: %d dmg", e.Damage)
	case types.Burning:
		head = fmt.Sprintf("Burning: %d dmg", e.Damage)
	case types.Frozen:
		head = "Frozen"
	case types.Blessed:
		head = fmt.Sprintf("Blessed: +%d healing", e.HealAmount)
	case types.Cursed:
		head = fmt.Sprintf("Cursed: -%d damage", e.DamageReduction)
	default:
		panic(fmt.Sprintf("effects: unhandled variant %T", e))
	}
	return fmt.Sprintf("%s for %d turns", head, e.Turns())
}
