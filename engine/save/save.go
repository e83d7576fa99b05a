// Package save implements JSON serialization and deserialization of game state.
// Union values are written as objects carrying a "type" discriminant next to
// their variant fields; decoding dispatches on that tag and rejects unknown tags.
package save

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/engine/state"
	"github.com/nathoo/unionroster/types"
)

// FormatVersion is bumped when the save layout changes incompatibly.
const FormatVersion = 1

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     int               `json:"version"`
	Turn        int               `json:"turn"`
	RNGSeed     int64             `json:"rng_seed"`
	RNGPosition int64             `json:"rng_position"`
	ActiveIndex int               `json:"active_index"`
	Phase       types.Phase       `json:"phase"`
	Roster      []entryData       `json:"roster"`
	Inventory   []json.RawMessage `json:"inventory"`
}

type entryData struct {
	Character     json.RawMessage   `json:"character"`
	Health        int               `json:"health"`
	Level         int               `json:"level"`
	Experience    int               `json:"experience"`
	Abilities     []types.Ability   `json:"abilities"`
	StatusEffects []json.RawMessage `json:"statusEffects"`
}

// Snapshot is a decoded save: the state plus the engine bookkeeping.
type Snapshot struct {
	State       types.GameState
	Turn        int
	RNGSeed     int64
	RNGPosition int64
}

// Save serializes a snapshot to JSON bytes.
func Save(snap Snapshot) ([]byte, error) {
	data := SaveData{
		Version:     FormatVersion,
		Turn:        snap.Turn,
		RNGSeed:     snap.RNGSeed,
		RNGPosition: snap.RNGPosition,
		ActiveIndex: snap.State.ActiveIndex,
		Phase:       snap.State.Phase,
		Roster:      make([]entryData, 0, len(snap.State.Roster)),
		Inventory:   make([]json.RawMessage, 0, len(snap.State.Inventory)),
	}

	for i, e := range snap.State.Roster {
		ed, err := encodeEntry(e)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		data.Roster = append(data.Roster, ed)
	}
	for i, item := range snap.State.Inventory {
		raw, err := tagged(string(item.Kind()), item)
		if err != nil {
			return nil, fmt.Errorf("inventory item %d: %w", i, err)
		}
		data.Inventory = append(data.Inventory, raw)
	}

	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into a snapshot, validating every entry.
func Load(raw []byte) (*Snapshot, error) {
	var data SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported save version %d", data.Version)
	}
	if !classify.IsValidPhase(data.Phase) {
		return nil, fmt.Errorf("unknown phase %q", data.Phase)
	}

	roster := make([]*types.RosterEntry, 0, len(data.Roster))
	for i, ed := range data.Roster {
		e, err := decodeEntry(ed)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		roster = append(roster, e)
	}

	inventory := make([]types.Item, 0, len(data.Inventory))
	for i, r := range data.Inventory {
		item, err := decodeItem(r)
		if err == nil {
			err = classify.ValidateItem(item)
		}
		if err != nil {
			return nil, fmt.Errorf("inventory item %d: %w", i, err)
		}
		inventory = append(inventory, item)
	}

	s, err := state.FromScenario(roster, inventory)
	if err != nil {
		return nil, err
	}
	if s, err = state.SelectCharacter(s, data.ActiveIndex); err != nil {
		return nil, err
	}
	s.Phase = data.Phase

	return &Snapshot{
		State:       s,
		Turn:        data.Turn,
		RNGSeed:     data.RNGSeed,
		RNGPosition: data.RNGPosition,
	}, nil
}

func encodeEntry(e *types.RosterEntry) (entryData, error) {
	ch, err := tagged(string(e.Class()), e.Character)
	if err != nil {
		return entryData{}, err
	}
	ed := entryData{
		Character:     ch,
		Health:        e.Health,
		Level:         e.Level,
		Experience:    e.Experience,
		Abilities:     e.Abilities,
		StatusEffects: make([]json.RawMessage, 0, len(e.StatusEffects)),
	}
	for _, fx := range e.StatusEffects {
		raw, err := tagged(string(fx.Kind()), fx)
		if err != nil {
			return entryData{}, err
		}
		ed.StatusEffects = append(ed.StatusEffects, raw)
	}
	return ed, nil
}

func decodeEntry(ed entryData) (*types.RosterEntry, error) {
	c, err := decodeCharacter(ed.Character)
	if err != nil {
		return nil, err
	}
	fx := make([]types.StatusEffect, 0, len(ed.StatusEffects))
	for _, r := range ed.StatusEffects {
		e, err := decodeEffect(r)
		if err != nil {
			return nil, err
		}
		fx = append(fx, e)
	}
	stats := types.Stats{Health: ed.Health, Level: ed.Level, Experience: ed.Experience}
	return classify.NewEntry(c, stats, ed.Abilities, fx)
}

// tagged marshals v and prepends the "type" discriminant to the object.
func tagged(tag string, v any) (json.RawMessage, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	tagJSON, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(`{"type":`)
	b.Write(tagJSON)
	if inner := bytes.TrimSpace(body[1 : len(body)-1]); len(inner) > 0 {
		b.WriteByte(',')
		b.Write(inner)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// discriminant reads the "type" field of a tagged object.
func discriminant(raw json.RawMessage) (string, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}
	if head.Type == "" {
		return "", fmt.Errorf("missing type discriminant")
	}
	return head.Type, nil
}

func decodeCharacter(raw json.RawMessage) (types.Character, error) {
	tag, err := discriminant(raw)
	if err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	switch types.Class(tag) {
	case types.ClassWarrior:
		return unmarshalAs[types.Warrior](raw)
	case types.ClassMage:
		return unmarshalAs[types.Mage](raw)
	case types.ClassArcher:
		return unmarshalAs[types.Archer](raw)
	case types.ClassRogue:
		return unmarshalAs[types.Rogue](raw)
	default:
		return nil, fmt.Errorf("unknown character type %q", tag)
	}
}

func decodeEffect(raw json.RawMessage) (types.StatusEffect, error) {
	tag, err := discriminant(raw)
	if err != nil {
		return nil, fmt.Errorf("status effect: %w", err)
	}
	switch types.EffectKind(tag) {
	case types.EffectPoisoned:
		return unmarshalAs[types.Poisoned](raw)
	case types.EffectBurning:
		return unmarshalAs[types.Burning](raw)
	case types.EffectFrozen:
		return unmarshalAs[types.Frozen](raw)
	case types.EffectBlessed:
		return unmarshalAs[types.Blessed](raw)
	case types.EffectCursed:
		return unmarshalAs[types.Cursed](raw)
	default:
		return nil, fmt.Errorf("unknown status effect type %q", tag)
	}
}

func decodeItem(raw json.RawMessage) (types.Item, error) {
	tag, err := discriminant(raw)
	if err != nil {
		return nil, fmt.Errorf("item: %w", err)
	}
	switch types.ItemKind(tag) {
	case types.ItemWeapon:
		return unmarshalAs[types.Weapon](raw)
	case types.ItemArmor:
		return unmarshalAs[types.Armor](raw)
	case types.ItemPotion:
		return unmarshalAs[types.Potion](raw)
	case types.ItemScroll:
		return unmarshalAs[types.Scroll](raw)
	default:
		return nil, fmt.Errorf("unknown item type %q", tag)
	}
}

func unmarshalAs[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}
