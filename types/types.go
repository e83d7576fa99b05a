// Package types defines the shared data structures for the roster engine.
// Unions are sealed interfaces: each variant implements an unexported marker
// method, so no package outside this one can add a variant. Apart from the
// discriminant accessors, this package contains no logic.
package types

// Class is the discriminant of a Character.
type Class string

const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassArcher  Class = "archer"
	ClassRogue   Class = "rogue"
)

// Classes lists every Character variant in display order.
var Classes = []Class{ClassWarrior, ClassMage, ClassArcher, ClassRogue}

// Element is a magic element.
type Element string

const (
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
	ElementDark      Element = "dark"
)

// Elements lists every element.
var Elements = []Element{ElementFire, ElementIce, ElementLightning, ElementDark}

// SpellName is always "<element>_spell".
type SpellName string

// WeaponType is the warrior's weapon.
type WeaponType string

const (
	WeaponSword  WeaponType = "sword"
	WeaponAxe    WeaponType = "axe"
	WeaponHammer WeaponType = "hammer"
)

// ArrowType is the archer's ammunition.
type ArrowType string

const (
	ArrowNormal ArrowType = "normal"
	ArrowFire   ArrowType = "fire"
	ArrowIce    ArrowType = "ice"
	ArrowPoison ArrowType = "poison"
)

// Character is one of Warrior, Mage, Archer or Rogue.
type Character interface {
	Class() Class
	isCharacter()
}

// Warrior is the strength-based melee class.
type Warrior struct {
	Strength   int        `json:"strength"`
	Armor      int        `json:"armor"`
	WeaponType WeaponType `json:"weaponType"`
	BattleCry  string     `json:"battleCry"`
}

// Mage is the intelligence-based caster class.
type Mage struct {
	Intelligence int         `json:"intelligence"`
	Mana         int         `json:"mana"`
	Element      Element     `json:"element"`
	Spells       []SpellName `json:"spells"`
}

// Archer is the dexterity-based ranged class.
type Archer struct {
	Dexterity  int       `json:"dexterity"`
	Accuracy   int       `json:"accuracy"`
	ArrowType  ArrowType `json:"arrowType"`
	RangeBonus int       `json:"rangeBonus"`
}

// Rogue is the stealth-based class.
type Rogue struct {
	Stealth            int     `json:"stealth"`
	CriticalChance     int     `json:"criticalChance"`
	PoisonDamage       int     `json:"poisonDamage"`
	BackstabMultiplier float64 `json:"backstabMultiplier"`
}

func (Warrior) Class() Class { return ClassWarrior }
func (Mage) Class() Class    { return ClassMage }
func (Archer) Class() Class  { return ClassArcher }
func (Rogue) Class() Class   { return ClassRogue }

func (Warrior) isCharacter() {}
func (Mage) isCharacter()    {}
func (Archer) isCharacter()  {}
func (Rogue) isCharacter()   {}

// Ability is a class-specific ability tag.
type Ability string

const (
	AbilityCharge  Ability = "charge"
	AbilityDefend  Ability = "defend"
	AbilityBerserk Ability = "berserk"

	AbilityFireball Ability = "fireball"
	AbilityHeal     Ability = "heal"
	AbilityTeleport Ability = "teleport"

	AbilityMultishot Ability = "multishot"
	AbilityAimshot   Ability = "aimshot"
	AbilityTrap      Ability = "trap"

	AbilityBackstab   Ability = "backstab"
	AbilityVanish     Ability = "vanish"
	AbilityPoisonDart Ability = "poison_dart"
)

// EffectKind is the discriminant of a StatusEffect.
type EffectKind string

const (
	EffectPoisoned EffectKind = "poisoned"
	EffectBurning  EffectKind = "burning"
	EffectFrozen   EffectKind = "frozen"
	EffectBlessed  EffectKind = "blessed"
	EffectCursed   EffectKind = "cursed"
)

// EffectKinds lists every StatusEffect variant.
var EffectKinds = []EffectKind{EffectPoisoned, EffectBurning, EffectFrozen, EffectBlessed, EffectCursed}

// StatusEffect is a modifier attached to a roster entry.
type StatusEffect interface {
	Kind() EffectKind
	Turns() int
	isStatusEffect()
}

type Poisoned struct {
	Damage   int `json:"damage"`
	Duration int `json:"duration"`
}

type Burning struct {
	Damage   int `json:"damage"`
	Duration int `json:"duration"`
}

type Frozen struct {
	Duration int `json:"duration"`
}

type Blessed struct {
	HealAmount int `json:"healAmount"`
	Duration   int `json:"duration"`
}

type Cursed struct {
	DamageReduction int `json:"damageReduction"`
	Duration        int `json:"duration"`
}

func (Poisoned) Kind() EffectKind { return EffectPoisoned }
func (Burning) Kind() EffectKind  { return EffectBurning }
func (Frozen) Kind() EffectKind   { return EffectFrozen }
func (Blessed) Kind() EffectKind  { return EffectBlessed }
func (Cursed) Kind() EffectKind   { return EffectCursed }

func (e Poisoned) Turns() int { return e.Duration }
func (e Burning) Turns() int  { return e.Duration }
func (e Frozen) Turns() int   { return e.Duration }
func (e Blessed) Turns() int  { return e.Duration }
func (e Cursed) Turns() int   { return e.Duration }

func (Poisoned) isStatusEffect() {}
func (Burning) isStatusEffect()  {}
func (Frozen) isStatusEffect()   {}
func (Blessed) isStatusEffect()  {}
func (Cursed) isStatusEffect()   {}

// ItemKind is the discriminant of an Item.
type ItemKind string

const (
	ItemWeapon ItemKind = "weapon"
	ItemArmor  ItemKind = "armor"
	ItemPotion ItemKind = "potion"
	ItemScroll ItemKind = "scroll"
)

// ItemKinds lists every Item variant.
var ItemKinds = []ItemKind{ItemWeapon, ItemArmor, ItemPotion, ItemScroll}

// Rarity grades a weapon.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// PotionEffect is what a potion restores or boosts.
type PotionEffect string

const (
	PotionHeal     PotionEffect = "heal"
	PotionMana     PotionEffect = "mana"
	PotionStrength PotionEffect = "strength"
)

// Item is an inventory entry. Items are not owned by any character.
type Item interface {
	Kind() ItemKind
	Label() string
	isItem()
}

type Weapon struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
	Rarity Rarity `json:"rarity"`
}

type Armor struct {
	Name       string `json:"name"`
	Defense    int    `json:"defense"`
	Durability int    `json:"durability"`
}

type Potion struct {
	Name   string       `json:"name"`
	Effect PotionEffect `json:"effect"`
	Amount int          `json:"amount"`
}

type Scroll struct {
	Name  string    `json:"name"`
	Spell SpellName `json:"spell"`
}

func (Weapon) Kind() ItemKind { return ItemWeapon }
func (Armor) Kind() ItemKind  { return ItemArmor }
func (Potion) Kind() ItemKind { return ItemPotion }
func (Scroll) Kind() ItemKind { return ItemScroll }

func (i Weapon) Label() string { return i.Name }
func (i Armor) Label() string  { return i.Name }
func (i Potion) Label() string { return i.Name }
func (i Scroll) Label() string { return i.Name }

func (Weapon) isItem() {}
func (Armor) isItem()  {}
func (Potion) isItem() {}
func (Scroll) isItem() {}

// Stats are the class-independent numbers of a roster entry.
type Stats struct {
	Health     int
	Level      int
	Experience int // 0..100
}

// RosterEntry is a character together with its stats, abilities and
// status effects. Entries are shared between successive game states and
// must never be modified after construction; transitions build a new entry.
type RosterEntry struct {
	Character
	Stats
	Abilities     []Ability
	StatusEffects []StatusEffect
}

// Phase is the coarse game phase.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhaseBattle  Phase = "battle"
	PhaseVictory Phase = "victory"
	PhaseDefeat  Phase = "defeat"
)

// GameState is one immutable snapshot of a session.
type GameState struct {
	Roster      []*RosterEntry
	ActiveIndex int
	Inventory   []Item
	Phase       Phase
}

// Result is the output of a single engine step.
type Result struct {
	Command string
	Output  []string
	Changed bool // true if the step published a new state
}

// Command is the parsed representation of a player command.
type Command struct {
	Verb string
	Arg  string // optional
}
