package effects

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nathoo/unionroster/types"
	"github.com/nathoo/unionroster/types/typestest"
)

func TestAppend_DoesNotShareBacking(t *testing.T) {
	base := make([]types.StatusEffect, 1, 4)
	base[0] = types.Frozen{Duration: 1}

	a := Append(base, types.Burning{Damage: 1, Duration: 1})
	b := Append(base, types.Cursed{DamageReduction: 2, Duration: 2})

	if len(base) != 1 {
		t.Fatalf("input length changed to %d", len(base))
	}
	if _, ok := a[1].(types.Burning); !ok {
		t.Errorf("a[1] = %#v, want Burning (second Append overwrote it)", a[1])
	}
	if _, ok := b[1].(types.Cursed); !ok {
		t.Errorf("b[1] = %#v, want Cursed", b[1])
	}
}

func TestAppend_Nil(t *testing.T) {
	got := Append(nil, types.Frozen{Duration: 2})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestRemoveLast(t *testing.T) {
	a := types.Poisoned{Damage: 1, Duration: 1}
	b := types.Burning{Damage: 2, Duration: 2}
	c := types.Frozen{Duration: 3}
	list := []types.StatusEffect{a, b, c}

	got, ok := RemoveLast(list)
	if !ok {
		t.Fatal("expected removal")
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("RemoveLast = %#v, want [a b]", got)
	}
	if len(list) != 3 || list[2] != c {
		t.Error("input list was modified")
	}

	_ = append(got, types.Blessed{HealAmount: 1, Duration: 1})
	if list[2] != c {
		t.Error("appending to the result wrote into the input's backing array")
	}
}

func TestRemoveLast_Empty(t *testing.T) {
	list := []types.StatusEffect{}
	got, ok := RemoveLast(list)
	if ok {
		t.Error("expected no removal on empty list")
	}
	if len(got) != 0 {
		t.Errorf("got %d effects", len(got))
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		e    types.StatusEffect
		want string
	}{
		{types.Poisoned{Damage: 3, Duration: 2}, "Poisoned: 3 dmg for 2 turns"},
		{types.Burning{Damage: 5, Duration: 3}, "Burning: 5 dmg for 3 turns"},
		{types.Frozen{Duration: 2}, "Frozen for 2 turns"},
		{types.Blessed{HealAmount: 10, Duration: 3}, "Blessed: +10 healing for 3 turns"},
		{types.Cursed{DamageReduction: 10, Duration: 4}, "Cursed: -10 damage for 4 turns"},
	}
	if len(tests) != len(types.EffectKinds) {
		t.Fatalf("table covers %d kinds, want %d", len(tests), len(types.EffectKinds))
	}
	for _, tt := range tests {
		if got := Describe(tt.e); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.e.Kind(), got, tt.want)
		}
	}
}

func TestDescribe_EndsWithTurns(t *testing.T) {
	for _, e := range typestest.Effects(t) {
		want := fmt.Sprintf(" for %d turns", e.Turns())
		if got := Describe(e); !strings.HasSuffix(got, want) {
			t.Errorf("Describe(%s) = %q, want suffix %q", e.Kind(), got, want)
		}
	}
	if got := Describe(types.Frozen{Duration: 7}); got != "Frozen for 7 turns" {
		t.Errorf("Describe(frozen 7) = %q", got)
	}
}

func TestRandomCatalog(t *testing.T) {
	if len(RandomCatalog) != 3 {
		t.Fatalf("catalog has %d entries, want 3", len(RandomCatalog))
	}
	want := []types.EffectKind{types.EffectBurning, types.EffectFrozen, types.EffectCursed}
	for i, e := range RandomCatalog {
		if e.Kind() != want[i] {
			t.Errorf("catalog[%d] = %s, want %s", i, e.Kind(), want[i])
		}
	}
}
