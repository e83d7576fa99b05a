package state

import (
	"fmt"

	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/types"
)

// NewState returns the reference session: one character of each class,
// four inventory items, phase setup, first character active.
func NewState() types.GameState {
	roster := []*types.RosterEntry{
		mustEntry(
			types.Warrior{Strength: 85, Armor: 75, WeaponType: types.WeaponSword, BattleCry: "For honor!"},
			types.Stats{Health: 100, Level: 3, Experience: 45},
			nil,
		),
		mustEntry(
			types.Mage{
				Intelligence: 90,
				Mana:         120,
				Element:      types.ElementFire,
				Spells:       []types.SpellName{classify.CreateSpellName(types.ElementFire), classify.CreateSpellName(types.ElementIce)},
			},
			types.Stats{Health: 70, Level: 4, Experience: 67},
			[]types.StatusEffect{types.Blessed{HealAmount: 5, Duration: 3}},
		),
		mustEntry(
			types.Archer{Dexterity: 95, Accuracy: 88, ArrowType: types.ArrowFire, RangeBonus: 25},
			types.Stats{Health: 85, Level: 3, Experience: 32},
			nil,
		),
		mustEntry(
			types.Rogue{Stealth: 92, CriticalChance: 35, PoisonDamage: 15, BackstabMultiplier: 2.5},
			types.Stats{Health: 75, Level: 5, Experience: 89},
			[]types.StatusEffect{types.Poisoned{Damage: 3, Duration: 2}},
		),
	}
	inventory := []types.Item{
		types.Weapon{Name: "Flaming Sword", Damage: 45, Rarity: types.RarityEpic},
		types.Armor{Name: "Chain Mail", Defense: 25, Durability: 80},
		types.Potion{Name: "Health Potion", Effect: types.PotionHeal, Amount: 50},
		types.Scroll{Name: "Lightning Scroll", Spell: classify.CreateSpellName(types.ElementLightning)},
	}
	s, err := FromScenario(roster, inventory)
	if err != nil {
		panic(err)
	}
	return s
}

// FromScenario builds a session from a prepared roster and inventory.
func FromScenario(roster []*types.RosterEntry, inventory []types.Item) (types.GameState, error) {
	if len(roster) == 0 {
		return types.GameState{}, fmt.Errorf("roster must not be empty")
	}
	for i, e := range roster {
		if e == nil || e.Character == nil {
			return types.GameState{}, fmt.Errorf("roster entry %d has no character", i)
		}
	}
	if inventory == nil {
		inventory = []types.Item{}
	}
	return types.GameState{
		Roster:      roster,
		ActiveIndex: 0,
		Inventory:   inventory,
		Phase:       types.PhaseSetup,
	}, nil
}

// mustEntry builds a reference entry with the class's full ability set.
func mustEntry(c types.Character, stats types.Stats, fx []types.StatusEffect) *types.RosterEntry {
	e, err := classify.NewEntry(c, stats, classify.AbilitiesFor(c.Class()), fx)
	if err != nil {
		panic(err)
	}
	return e
}
