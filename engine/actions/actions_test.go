package actions

import (
	"testing"

	"github.com/nathoo/unionroster/types"
	"github.com/nathoo/unionroster/types/typestest"
)

// party returns the reference character of each class.
func party(t *testing.T) (warrior, mage, archer, rogue types.Character) {
	t.Helper()
	cs := typestest.Characters(t)
	return cs[0], cs[1], cs[2], cs[3]
}

func TestEveryClass_HasDescribedActions(t *testing.T) {
	for _, c := range typestest.Characters(t) {
		available := Available(c)
		if len(available) != 3 {
			t.Errorf("%s has %d actions, want 3", c.Class(), len(available))
		}
		for _, a := range available {
			if a.Label == "" {
				t.Errorf("%s action %s has no label", c.Class(), a.ID)
			}
			if !IsLegal(c, a.ID) {
				t.Errorf("%s action %s is not legal", c.Class(), a.ID)
			}
			if d := Description(a.ID, c); d == UnknownAction {
				t.Errorf("%s action %s has no description", c.Class(), a.ID)
			}
		}
		if d := Description("nonexistent", c); d != UnknownAction {
			t.Errorf("%s nonexistent = %q, want %q", c.Class(), d, UnknownAction)
		}
	}
}

func TestAvailable_Labels(t *testing.T) {
	warrior, mage, archer, rogue := party(t)
	tests := []struct {
		c    types.Character
		want []string
	}{
		{warrior, []string{"Charge Attack", "Defend", "Battle Cry"}},
		{mage, []string{"Cast fire Spell", "Meditate", "Enchant Weapon"}},
		{archer, []string{"Aimed Shot", "Multishot", "Set Trap"}},
		{rogue, []string{"Backstab", "Stealth", "Poison Dart"}},
	}
	for _, tt := range tests {
		got := Available(tt.c)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: %d actions, want %d", tt.c.Class(), len(got), len(tt.want))
		}
		for i := range got {
			if got[i].Label != tt.want[i] {
				t.Errorf("%s action %d label = %q, want %q", tt.c.Class(), i, got[i].Label, tt.want[i])
			}
		}
	}
}

func TestAvailable_DisjointAcrossClasses(t *testing.T) {
	owner := map[string]types.Class{}
	for _, c := range typestest.Characters(t) {
		for _, a := range Available(c) {
			if prev, ok := owner[a.ID]; ok {
				t.Errorf("action %s offered to both %s and %s", a.ID, prev, c.Class())
			}
			owner[a.ID] = c.Class()
		}
	}
}

func TestIsLegal(t *testing.T) {
	_, _, archer, rogue := party(t)
	if !IsLegal(rogue, PoisonDart) {
		t.Error("rogue should be able to poison_dart")
	}
	if IsLegal(rogue, Charge) {
		t.Error("rogue must not be able to charge")
	}
	if IsLegal(archer, "nonexistent") {
		t.Error("unknown id must not be legal")
	}
}

func TestDescription(t *testing.T) {
	warrior, mage, archer, rogue := party(t)
	tests := []struct {
		id   string
		c    types.Character
		want string
	}{
		{Charge, warrior, "Charges forward with sword, dealing 127.5 damage!"},
		{Defend, warrior, "Raises shield, reducing incoming damage by 75!"},
		{Battlecry, warrior, `"For honor!" - Boosts team morale!`},
		{CastSpell, mage, "Casts fire spell dealing 180 damage!"},
		{Meditate, mage, "Restores 120 mana points through meditation!"},
		{Enchant, mage, "Enchants weapon with fire element!"},
		{AimedShot, archer, "Aims carefully, 88% chance to hit for 190 damage!"},
		{Multishot, archer, "Fires multiple fire arrows!"},
		{SetTrap, archer, "Sets a trap with +25 effectiveness!"},
		{Backstab, rogue, "Strikes from shadows with x2.5 damage multiplier!"},
		{Stealth, rogue, "Becomes invisible (92 stealth rating)!"},
		{PoisonDart, rogue, "Throws poison dart dealing 15 poison damage!"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Description(tt.id, tt.c); got != tt.want {
				t.Errorf("Description(%s) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestDescription_Unknown(t *testing.T) {
	_, mage, archer, _ := party(t)
	if got := Description(Charge, mage); got != UnknownAction {
		t.Errorf("mage charge = %q, want %q", got, UnknownAction)
	}
	if got := Description("nonexistent", archer); got != UnknownAction {
		t.Errorf("archer nonexistent = %q, want %q", got, UnknownAction)
	}
}

func TestDescription_WholeStrength(t *testing.T) {
	w := types.Warrior{Strength: 80, WeaponType: types.WeaponAxe}
	want := "Charges forward with axe, dealing 120 damage!"
	if got := Description(Charge, w); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescription_BattleCryVerbatim(t *testing.T) {
	w := types.Warrior{BattleCry: `Say "Ni!"`}
	want := `"Say "Ni!"" - Boosts team morale!`
	if got := Description(Battlecry, w); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
