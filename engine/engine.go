// Package engine provides the Step() orchestrator that owns the single
// GameState slot and routes each parsed command to one pure transition.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nathoo/unionroster/engine/actions"
	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/engine/effects"
	"github.com/nathoo/unionroster/engine/parser"
	"github.com/nathoo/unionroster/engine/state"
	"github.com/nathoo/unionroster/types"
)

// Engine holds the current state snapshot and the randomness source.
// It is not safe for concurrent use; the presentation layer calls Step
// from its single event loop.
type Engine struct {
	State     types.GameState
	RNG       *RNG
	TurnCount int
	Log       *slog.Logger
}

// New creates an engine over an initial state.
func New(s types.GameState, seed int64) *Engine {
	return &Engine{
		State: s,
		RNG:   NewRNG(seed),
		Log:   slog.Default(),
	}
}

// RestoreRNG re-creates the RNG from seed and advances to the saved position.
func (e *Engine) RestoreRNG(seed int64, position int64) {
	e.RNG = RestoreRNG(seed, position)
}

// Step processes one command and returns the result. At most one
// transition runs; its output replaces State as a whole.
func (e *Engine) Step(input string) types.Result {
	cmd := parser.Parse(input)
	result := types.Result{Command: input}

	if cmd.Verb == "" {
		result.Output = append(result.Output, "What do you want to do?")
		return result
	}

	prev := e.State
	var out []string

	switch cmd.Verb {
	case "look":
		out = e.describeActive()
	case "roster":
		out = e.describeRoster()
	case "select":
		out = e.cmdSelect(cmd.Arg)
	case "actions":
		out = e.describeActions()
	case "act":
		out = e.cmdAct(cmd.Arg)
	case "effect":
		out = e.cmdEffect(cmd.Arg)
	case "inventory":
		out = e.describeInventory()
	case "power":
		out = e.describePower()
	case "help":
		out = HelpLines()
	default:
		// A bare action id of the active class is shorthand for "act <id>".
		if actions.IsLegal(state.Active(e.State).Character, cmd.Verb) && cmd.Arg == "" {
			out = e.cmdAct(cmd.Verb)
		} else {
			out = []string{fmt.Sprintf("I don't understand %q. Type help for commands.", cmd.Verb)}
		}
	}

	result.Output = out
	result.Changed = changed(prev, e.State)
	if result.Changed {
		e.TurnCount++
	}

	e.Log.Debug("step",
		slog.String("command", input),
		slog.Int("active", e.State.ActiveIndex),
		slog.Bool("changed", result.Changed),
		slog.Int("turn", e.TurnCount),
	)
	return result
}

// changed reports whether a transition published a different snapshot.
// Roster slices are compared by identity: transitions always allocate a
// new slice when they replace an entry.
func changed(prev, next types.GameState) bool {
	if prev.ActiveIndex != next.ActiveIndex || prev.Phase != next.Phase {
		return true
	}
	if len(prev.Roster) != len(next.Roster) {
		return true
	}
	for i := range prev.Roster {
		if prev.Roster[i] != next.Roster[i] {
			return true
		}
	}
	return false
}

func (e *Engine) cmdSelect(arg string) []string {
	if arg == "" {
		return []string{"Select whom? Give a position (1-" + strconv.Itoa(len(e.State.Roster)) + ") or a class."}
	}

	index, ok := e.resolveIndex(arg)
	if !ok {
		return []string{fmt.Sprintf("There is no %s in the roster.", arg)}
	}

	next, err := state.SelectCharacter(e.State, index)
	if err != nil {
		if errors.Is(err, state.ErrOutOfRange) {
			return []string{fmt.Sprintf("No character at position %s.", arg)}
		}
		return []string{err.Error()}
	}
	e.State = next
	return append([]string{fmt.Sprintf("You select the %s.", className(state.Active(next)))}, e.describeActive()...)
}

// resolveIndex maps a 1-based position or a class name to a roster index.
// Positions are not range-checked here; SelectCharacter does that.
func (e *Engine) resolveIndex(arg string) (int, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		return n - 1, true
	}
	for i, entry := range e.State.Roster {
		if string(entry.Class()) == arg {
			return i, true
		}
	}
	return 0, false
}

func (e *Engine) cmdAct(id string) []string {
	if id == "" {
		return append([]string{"Act how?"}, e.describeActions()...)
	}

	before := state.Active(e.State)
	desc := actions.Description(id, before.Character)
	e.State = state.PerformAction(e.State, id)
	after := state.Active(e.State)

	out := []string{desc}
	out = append(out, outcome(before, after)...)
	return out
}

func (e *Engine) cmdEffect(arg string) []string {
	switch arg {
	case "add":
		before := state.Active(e.State)
		e.State = state.AddRandomStatusEffect(e.State, e.RNG)
		return outcome(before, state.Active(e.State))
	case "remove":
		before := state.Active(e.State)
		e.State = state.RemoveLastStatusEffect(e.State)
		after := state.Active(e.State)
		if before == after {
			return []string{fmt.Sprintf("The %s has no status effects.", className(after))}
		}
		return outcome(before, after)
	default:
		return []string{"Usage: effect add | effect remove"}
	}
}

// outcome describes what changed between two versions of an entry.
func outcome(before, after *types.RosterEntry) []string {
	var out []string
	if after.Experience != before.Experience {
		out = append(out, fmt.Sprintf("Experience %d → %d.", before.Experience, after.Experience))
	}
	switch {
	case len(after.StatusEffects) > len(before.StatusEffects):
		added := after.StatusEffects[len(after.StatusEffects)-1]
		out = append(out, fmt.Sprintf("The %s is now affected: %s.", className(after), effects.Describe(added)))
	case len(after.StatusEffects) < len(before.StatusEffects):
		removed := before.StatusEffects[len(before.StatusEffects)-1]
		out = append(out, fmt.Sprintf("Removed %s.", effects.Describe(removed)))
	}
	if len(out) == 0 {
		out = append(out, "Nothing changes.")
	}
	return out
}

func (e *Engine) describeActive() []string {
	return DescribeEntry(state.Active(e.State))
}

// DescribeEntry renders a roster entry as a character sheet.
func DescribeEntry(entry *types.RosterEntry) []string {
	out := []string{
		fmt.Sprintf("%s, level %d. Health %d, experience %d/100, power %d.",
			className(entry), entry.Level, entry.Health, entry.Experience, classify.TotalPower(entry)),
		classify.PrimaryStatsSummary(entry.Character),
		classify.SpecialAttributeSummary(entry.Character),
	}
	if len(entry.Abilities) > 0 {
		names := make([]string, len(entry.Abilities))
		for i, a := range entry.Abilities {
			names[i] = string(a)
		}
		out = append(out, "Abilities: "+strings.Join(names, ", ")+".")
	}
	if len(entry.StatusEffects) == 0 {
		out = append(out, "Effects: none.")
	} else {
		descs := make([]string, len(entry.StatusEffects))
		for i, fx := range entry.StatusEffects {
			descs[i] = effects.Describe(fx)
		}
		out = append(out, "Effects: "+strings.Join(descs, "; ")+".")
	}
	return out
}

func (e *Engine) describeRoster() []string {
	var out []string
	for i, entry := range e.State.Roster {
		marker := "  "
		if i == e.State.ActiveIndex {
			marker = "* "
		}
		out = append(out, fmt.Sprintf("%s%d. %s (level %d, health %d, exp %d)",
			marker, i+1, className(entry), entry.Level, entry.Health, entry.Experience))
	}
	out = append(out, fmt.Sprintf("Phase: %s.", e.State.Phase))
	return out
}

func (e *Engine) describeActions() []string {
	c := state.Active(e.State).Character
	out := []string{fmt.Sprintf("The %s can:", className(state.Active(e.State)))}
	for _, a := range actions.Available(c) {
		out = append(out, fmt.Sprintf("  %s (%s): %s", a.Label, a.ID, actions.Description(a.ID, c)))
	}
	return out
}

func (e *Engine) describeInventory() []string {
	if len(e.State.Inventory) == 0 {
		return []string{"The inventory is empty."}
	}
	out := []string{"Inventory:"}
	for _, item := range e.State.Inventory {
		out = append(out, "  "+classify.ItemSummary(item))
	}
	return out
}

func (e *Engine) describePower() []string {
	var out []string
	for i, entry := range e.State.Roster {
		out = append(out, fmt.Sprintf("%d. %s: %d", i+1, className(entry), classify.TotalPower(entry)))
	}
	return out
}

// HelpLines lists the game commands.
func HelpLines() []string {
	return []string{
		"Game commands:",
		"  look (l)            — Show the active character",
		"  roster (r)          — List the party",
		"  select <n|class>    — Make a character active (s 2, s rogue)",
		"  actions             — List the active character's actions",
		"  act <id> (a)        — Perform an action (or just type its id)",
		"  effect add (+)      — Add a random status effect",
		"  effect remove (-)   — Remove the most recent status effect",
		"  inventory (i)       — List the party inventory",
		"  power (p)           — Total power of every character",
	}
}

// className returns the capitalized class of an entry.
func className(entry *types.RosterEntry) string {
	c := string(entry.Class())
	if c == "" {
		return c
	}
	return strings.ToUpper(c[:1]) + c[1:]
}
