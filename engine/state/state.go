// Package state owns the GameState transitions. Every transition is a pure
// function: it never modifies its input, replaces at most the active roster
// entry, and carries all other entries and the inventory over unchanged so
// that consumers can detect changes by pointer comparison.
package state

import (
	"errors"
	"fmt"

	"github.com/nathoo/unionroster/engine/actions"
	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/engine/effects"
	"github.com/nathoo/unionroster/types"
)

// ErrOutOfRange is returned when a roster index does not exist.
var ErrOutOfRange = errors.New("roster index out of range")

// Picker supplies the randomness for AddRandomStatusEffect.
// Pick returns an integer in [0, n).
type Picker interface {
	Pick(n int) int
}

// Active returns the entry under ActiveIndex.
func Active(s types.GameState) *types.RosterEntry {
	return s.Roster[s.ActiveIndex]
}

// SelectCharacter makes the entry at index active.
func SelectCharacter(s types.GameState, index int) (types.GameState, error) {
	if index < 0 || index >= len(s.Roster) {
		return s, fmt.Errorf("select %d of %d: %w", index, len(s.Roster), ErrOutOfRange)
	}
	s.ActiveIndex = index
	return s, nil
}

// PerformAction applies actionID for the active character. The routing is
// total: pairs without a dedicated transition grant 10 experience.
func PerformAction(s types.GameState, actionID string) types.GameState {
	cur := Active(s)
	next := *cur

	switch c := cur.Character.(type) {
	case types.Warrior:
		if actionID == actions.Battlecry {
			next.StatusEffects = effects.Append(cur.StatusEffects, types.Blessed{HealAmount: 10, Duration: 3})
			return replaceActive(s, &next)
		}
	case types.Mage:
		if actionID == actions.CastSpell {
			next.Experience = gainExperience(cur.Experience, 15)
			return replaceActive(s, &next)
		}
	case types.Rogue:
		if actionID == actions.PoisonDart {
			next.StatusEffects = effects.Append(cur.StatusEffects, types.Poisoned{Damage: c.PoisonDamage, Duration: 4})
			return replaceActive(s, &next)
		}
	case types.Archer:
	default:
		panic(fmt.Sprintf("state: unhandled variant %T", c))
	}

	next.Experience = gainExperience(cur.Experience, 10)
	return replaceActive(s, &next)
}

// AddRandomStatusEffect appends one effect drawn uniformly from
// effects.RandomCatalog to the active character.
func AddRandomStatusEffect(s types.GameState, p Picker) types.GameState {
	e := effects.RandomCatalog[p.Pick(len(effects.RandomCatalog))]
	cur := Active(s)
	next := *cur
	next.StatusEffects = effects.Append(cur.StatusEffects, e)
	return replaceActive(s, &next)
}

// RemoveLastStatusEffect drops the active character's most recent effect.
// With no effects it returns s unchanged.
func RemoveLastStatusEffect(s types.GameState) types.GameState {
	cur := Active(s)
	list, ok := effects.RemoveLast(cur.StatusEffects)
	if !ok {
		return s
	}
	next := *cur
	next.StatusEffects = list
	return replaceActive(s, &next)
}

// replaceActive returns s with a fresh roster slice whose active slot holds e.
func replaceActive(s types.GameState, e *types.RosterEntry) types.GameState {
	roster := make([]*types.RosterEntry, len(s.Roster))
	copy(roster, s.Roster)
	roster[s.ActiveIndex] = e
	s.Roster = roster
	return s
}

func gainExperience(cur, amount int) int {
	return min(cur+amount, 100)
}

// TotalPower is a convenience for the active character's power.
func TotalPower(s types.GameState) int {
	return classify.TotalPower(Active(s))
}
