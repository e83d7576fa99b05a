// Package typestest provides one value of every union variant for tests
// that must reach every dispatch site. Each accessor returns the values in
// the order of the matching list in package types, and fails the calling
// test when that list names a variant that has no value here yet.
package typestest

import (
	"testing"

	"github.com/nathoo/unionroster/types"
)

// Characters returns one character per class, in types.Classes order.
func Characters(t testing.TB) []types.Character {
	t.Helper()
	cs := []types.Character{
		types.Warrior{Strength: 85, Armor: 75, WeaponType: types.WeaponSword, BattleCry: "For honor!"},
		types.Mage{Intelligence: 90, Mana: 120, Element: types.ElementFire, Spells: []types.SpellName{"fire_spell", "ice_spell"}},
		types.Archer{Dexterity: 95, Accuracy: 88, ArrowType: types.ArrowFire, RangeBonus: 25},
		types.Rogue{Stealth: 92, CriticalChance: 35, PoisonDamage: 15, BackstabMultiplier: 2.5},
	}
	got := make([]string, len(cs))
	for i, c := range cs {
		got[i] = string(c.Class())
	}
	want := make([]string, len(types.Classes))
	for i, c := range types.Classes {
		want[i] = string(c)
	}
	requireCoverage(t, "character", got, want)
	return cs
}

// Effects returns one status effect per kind, in types.EffectKinds order.
func Effects(t testing.TB) []types.StatusEffect {
	t.Helper()
	es := []types.StatusEffect{
		types.Poisoned{Damage: 3, Duration: 2},
		types.Burning{Damage: 5, Duration: 3},
		types.Frozen{Duration: 2},
		types.Blessed{HealAmount: 10, Duration: 3},
		types.Cursed{DamageReduction: 10, Duration: 4},
	}
	got := make([]string, len(es))
	for i, e := range es {
		got[i] = string(e.Kind())
	}
	want := make([]string, len(types.EffectKinds))
	for i, k := range types.EffectKinds {
		want[i] = string(k)
	}
	requireCoverage(t, "status effect", got, want)
	return es
}

// Items returns one item per kind, in types.ItemKinds order.
func Items(t testing.TB) []types.Item {
	t.Helper()
	is := []types.Item{
		types.Weapon{Name: "Flaming Sword", Damage: 45, Rarity: types.RarityEpic},
		types.Armor{Name: "Chain Mail", Defense: 25, Durability: 80},
		types.Potion{Name: "Health Potion", Effect: types.PotionHeal, Amount: 50},
		types.Scroll{Name: "Lightning Scroll", Spell: "lightning_spell"},
	}
	got := make([]string, len(is))
	for i, item := range is {
		got[i] = string(item.Kind())
	}
	want := make([]string, len(types.ItemKinds))
	for i, k := range types.ItemKinds {
		want[i] = string(k)
	}
	requireCoverage(t, "item", got, want)
	return is
}

func requireCoverage(t testing.TB, union string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("typestest: %d %s fixtures for %d variants %v", len(got), union, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("typestest: %s fixture %d is %s, want %s", union, i, got[i], want[i])
		}
	}
}
