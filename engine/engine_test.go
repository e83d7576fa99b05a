package engine

import (
	"strings"
	"testing"

	"github.com/nathoo/unionroster/engine/actions"
	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/engine/state"
	"github.com/nathoo/unionroster/types"
	"github.com/nathoo/unionroster/types/typestest"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(state.NewState(), 42)
}

func assertOutput(t *testing.T, result types.Result, want ...string) {
	t.Helper()
	joined := strings.Join(result.Output, "\n")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("output for %q missing %q:\n%s", result.Command, w, joined)
		}
	}
}

func TestStep_Empty(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("   ")
	if len(r.Output) != 1 || r.Output[0] != "What do you want to do?" {
		t.Errorf("output = %v", r.Output)
	}
	if r.Changed {
		t.Error("empty input should not change state")
	}
}

func TestStep_Look(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("look")
	want := []string{
		"Warrior, level 3. Health 100, experience 45/100, power 112.",
		"Strength: 85 | Armor: 75",
		`Weapon: sword | Battle Cry: "For honor!"`,
		"Abilities: charge, defend, berserk.",
		"Effects: none.",
	}
	if len(r.Output) != len(want) {
		t.Fatalf("output = %q", r.Output)
	}
	for i := range want {
		if r.Output[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, r.Output[i], want[i])
		}
	}
	if r.Changed || e.TurnCount != 0 {
		t.Error("look must not change state")
	}
}

func TestStep_Roster(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("r")
	assertOutput(t, r,
		"* 1. Warrior (level 3, health 100, exp 45)",
		"  4. Rogue (level 5, health 75, exp 89)",
		"Phase: setup.",
	)
}

func TestStep_Select(t *testing.T) {
	tests := []struct {
		input      string
		wantActive int
		wantLine   string
		changed    bool
	}{
		{"select 2", 1, "You select the Mage.", true},
		{"s rogue", 3, "You select the Rogue.", true},
		{"select 9", 0, "No character at position 9.", false},
		{"select 0", 0, "No character at position 0.", false},
		{"select paladin", 0, "There is no paladin in the roster.", false},
		{"select 1", 0, "You select the Warrior.", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := newTestEngine(t)
			r := e.Step(tt.input)
			if e.State.ActiveIndex != tt.wantActive {
				t.Errorf("ActiveIndex = %d, want %d", e.State.ActiveIndex, tt.wantActive)
			}
			if r.Output[0] != tt.wantLine {
				t.Errorf("first line = %q, want %q", r.Output[0], tt.wantLine)
			}
			if r.Changed != tt.changed {
				t.Errorf("Changed = %t, want %t", r.Changed, tt.changed)
			}
		})
	}
}

func TestStep_Battlecry(t *testing.T) {
	e := newTestEngine(t)
	before := e.State

	r := e.Step("act battlecry")
	assertOutput(t, r,
		`"For honor!" - Boosts team morale!`,
		"The Warrior is now affected: Blessed: +10 healing for 3 turns.",
	)
	if !r.Changed {
		t.Error("battlecry should change state")
	}
	if e.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", e.TurnCount)
	}
	for i := 1; i < len(before.Roster); i++ {
		if before.Roster[i] != e.State.Roster[i] {
			t.Errorf("entry %d replaced", i)
		}
	}
}

func TestStep_BareActionID(t *testing.T) {
	e := newTestEngine(t)
	e.Step("select mage")
	r := e.Step("cast_spell")
	assertOutput(t, r, "Casts fire spell dealing 180 damage!", "Experience 67 → 82.")
}

func TestStep_ForeignActionFallsBack(t *testing.T) {
	e := newTestEngine(t)
	e.Step("select archer")
	r := e.Step("act nonexistent")
	assertOutput(t, r, "Unknown action", "Experience 32 → 42.")
}

func TestStep_PoisonDart(t *testing.T) {
	e := newTestEngine(t)
	e.Step("select 4")
	r := e.Step("a poison_dart")
	assertOutput(t, r, "The Rogue is now affected: Poisoned: 15 dmg for 4 turns.")
}

func TestStep_NoOpAtCap(t *testing.T) {
	e := newTestEngine(t)
	e.Step("select rogue")
	e.Step("stealth") // 89 → 99
	e.Step("stealth") // 99 → 100
	r := e.Step("stealth")
	assertOutput(t, r, "Nothing changes.")
	if !r.Changed {
		t.Error("a transition always publishes a new entry")
	}
}

func TestStep_Effects(t *testing.T) {
	e := newTestEngine(t)

	r := e.Step("-")
	assertOutput(t, r, "The Warrior has no status effects.")
	if r.Changed {
		t.Error("removing from an empty list should not change state")
	}

	r = e.Step("+")
	if !r.Changed {
		t.Fatal("effect add should change state")
	}
	if n := len(state.Active(e.State).StatusEffects); n != 1 {
		t.Fatalf("warrior has %d effects, want 1", n)
	}
	assertOutput(t, r, "The Warrior is now affected:")
	if e.RNG.Position() == 0 {
		t.Error("effect add should draw from the RNG")
	}

	r = e.Step("effect remove")
	assertOutput(t, r, "Removed ")
	if n := len(state.Active(e.State).StatusEffects); n != 0 {
		t.Errorf("warrior has %d effects, want 0", n)
	}

	r = e.Step("effect sideways")
	assertOutput(t, r, "Usage: effect add | effect remove")
}

func TestStep_EffectAddDeterministic(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)
	for _i := 0; _i < 10; _i++ {
		a.Step("+")
		b.Step("+")
	}
	fa := state.Active(a.State).StatusEffects
	fb := state.Active(b.State).StatusEffects
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("effect %d differs: %#v vs %#v", i, fa[i], fb[i])
		}
	}
}

func TestStep_Inventory(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("inventory")
	want := []string{
		"Inventory:",
		"  Flaming Sword (weapon) - 45 damage, epic",
		"  Chain Mail (armor) - 25 defense, 80 durability",
		"  Health Potion (potion) - 50 heal",
		"  Lightning Scroll (scroll) - lightning_spell",
	}
	if strings.Join(r.Output, "\n") != strings.Join(want, "\n") {
		t.Errorf("inventory output:\n%s", strings.Join(r.Output, "\n"))
	}
}

func TestStep_Power(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("power")
	assertOutput(t, r, "1. Warrior: 112", "2. Mage: 120")
}

func TestStep_Actions(t *testing.T) {
	e := newTestEngine(t)
	e.Step("s 2")
	r := e.Step("actions")
	assertOutput(t, r, "The Mage can:", "Cast fire Spell (cast_spell)", "Enchant Weapon (enchant)")
}

func TestStep_Unknown(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("dance wildly")
	assertOutput(t, r, `I don't understand "dance".`)
	if r.Changed {
		t.Error("unknown command should not change state")
	}
}

func TestStep_ForeignBareActionIsUnknown(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("backstab")
	assertOutput(t, r, `I don't understand "backstab".`)
}

func TestStep_Help(t *testing.T) {
	e := newTestEngine(t)
	r := e.Step("help")
	assertOutput(t, r, "Game commands:", "effect add (+)")
}

func TestSnapshotRestore(t *testing.T) {
	e := newTestEngine(t)
	e.Step("select 3")
	e.Step("+")
	e.Step("+")
	snap := e.Snapshot()

	other := New(state.NewState(), 0)
	other.Restore(&snap)
	if other.TurnCount != e.TurnCount {
		t.Errorf("TurnCount = %d, want %d", other.TurnCount, e.TurnCount)
	}
	if other.State.ActiveIndex != 2 {
		t.Errorf("ActiveIndex = %d, want 2", other.State.ActiveIndex)
	}

	e.Step("+")
	other.Step("+")
	fa := state.Active(e.State).StatusEffects
	fb := state.Active(other.State).StatusEffects
	if fa[len(fa)-1] != fb[len(fb)-1] {
		t.Errorf("next draw differs after restore: %#v vs %#v", fa[len(fa)-1], fb[len(fb)-1])
	}
}

func TestStep_EveryClass(t *testing.T) {
	var roster []*types.RosterEntry
	for _, c := range typestest.Characters(t) {
		entry, err := classify.NewEntry(c, types.Stats{Health: 80, Level: 2, Experience: 40},
			classify.AbilitiesFor(c.Class()), typestest.Effects(t))
		if err != nil {
			t.Fatalf("NewEntry(%s): %v", c.Class(), err)
		}
		roster = append(roster, entry)
	}
	s, err := state.FromScenario(roster, typestest.Items(t))
	if err != nil {
		t.Fatalf("FromScenario: %v", err)
	}
	e := New(s, 1)

	for i, entry := range roster {
		class := string(entry.Class())
		r := e.Step("select " + class)
		if e.State.ActiveIndex != i {
			t.Fatalf("select %s: active = %d, want %d", class, e.State.ActiveIndex, i)
		}
		assertOutput(t, r, "Effects: Poisoned", "Cursed: -10 damage for 4 turns")

		r = e.Step("actions")
		if len(r.Output) != 1+len(actions.Available(entry.Character)) {
			t.Errorf("%s actions = %q", class, r.Output)
		}

		for _, a := range actions.Available(entry.Character) {
			turn := e.TurnCount
			r = e.Step("act " + a.ID)
			if r.Output[0] != actions.Description(a.ID, entry.Character) {
				t.Errorf("%s %s: first line = %q", class, a.ID, r.Output[0])
			}
			if !r.Changed || e.TurnCount != turn+1 {
				t.Errorf("%s %s: changed = %v, turn %d → %d", class, a.ID, r.Changed, turn, e.TurnCount)
			}
		}

		r = e.Step("effect remove")
		assertOutput(t, r, "Removed ")
	}

	r := e.Step("inventory")
	for _, item := range typestest.Items(t) {
		assertOutput(t, r, classify.ItemSummary(item))
	}
}
