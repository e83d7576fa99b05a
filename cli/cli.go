// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the roster engine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/unionroster/engine"
	"github.com/nathoo/unionroster/engine/save"
	"github.com/nathoo/unionroster/types"
)

// CLI handles line-oriented interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Store     save.Store
	Title     string
	In        io.Reader
	Out       io.Writer
	Trace     bool
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine and save store.
func New(eng *engine.Engine, store save.Store) *CLI {
	return &CLI{
		Engine: eng,
		Store:  store,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// Run starts the loop: show the active character, then
// prompt → input → dispatch → output until EOF or /quit.
func (c *CLI) Run() {
	if c.Title != "" {
		c.printLine(c.Title)
		c.printLine("")
	}
	c.printResult(c.Engine.Step("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return
			}
			continue
		}

		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Engine.Step(input)
		c.printResult(result)
		if c.Trace {
			c.printTrace(result)
		}
	}
}

// handleMeta runs a meta-command. Returns true if the session should end.
func (c *CLI) handleMeta(input string) bool {
	res := Meta(context.Background(), c.Engine, c.Store, input, &c.Trace)
	for _, line := range res.System {
		c.printSystem(line)
	}
	for _, line := range res.Text {
		c.printLine(line)
	}
	return res.Quit
}

// MetaResult is the outcome of one meta-command. System holds status
// messages; Text holds ordinary output such as help or a character sheet.
type MetaResult struct {
	System []string
	Text   []string
	Quit   bool
}

// Meta dispatches a meta-command ("/save slot", "/trace", ...) for any
// front end. trace is flipped by /trace.
func Meta(ctx context.Context, eng *engine.Engine, store save.Store, input string, trace *bool) MetaResult {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return MetaResult{System: []string{"Type /help for available commands."}}
	}
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		return MetaResult{System: []string{"Goodbye."}, Quit: true}
	case "/save":
		return MetaResult{System: []string{SaveSlot(ctx, eng, store, arg)}}
	case "/load":
		msg, ok := LoadSlot(ctx, eng, store, arg)
		res := MetaResult{System: []string{msg}}
		if ok {
			res.Text = eng.Step("look").Output
		}
		return res
	case "/help":
		return MetaResult{Text: HelpLines()}
	case "/state":
		return MetaResult{System: StateLines(eng)}
	case "/trace":
		*trace = !*trace
		if *trace {
			return MetaResult{System: []string{"Trace output enabled."}}
		}
		return MetaResult{System: []string{"Trace output disabled."}}
	default:
		return MetaResult{System: []string{fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd)}}
	}
}

// SaveSlot encodes the engine's session into the named slot and returns
// a status message.
func SaveSlot(ctx context.Context, eng *engine.Engine, store save.Store, name string) string {
	if name == "" {
		name = save.DefaultSlot
	}
	data, err := save.Save(eng.Snapshot())
	if err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	if err := store.Save(ctx, name, data); err != nil {
		return fmt.Sprintf("Save failed: %v", err)
	}
	return fmt.Sprintf("Game saved to %s.", name)
}

// LoadSlot restores the named slot into the engine. The bool reports
// whether the session was replaced.
func LoadSlot(ctx context.Context, eng *engine.Engine, store save.Store, name string) (string, bool) {
	if name == "" {
		name = save.DefaultSlot
	}
	data, err := store.Load(ctx, name)
	if err != nil {
		return fmt.Sprintf("Load failed: %v", err), false
	}
	snap, err := save.Load(data)
	if err != nil {
		return fmt.Sprintf("Load failed: %v", err), false
	}
	eng.Restore(snap)
	return fmt.Sprintf("Game loaded from %s (turn %d).", name, snap.Turn), true
}

// HelpLines lists meta-commands followed by game commands.
func HelpLines() []string {
	lines := []string{
		"System:",
		"  /save [name]  — Save game (default: quicksave)",
		"  /load [name]  — Load game (default: quicksave)",
		"  /quit         — Exit",
		"  /help         — Show this help",
		"  /state        — Debug: dump current state",
		"  /trace        — Toggle debug trace output",
		"",
	}
	lines = append(lines, engine.HelpLines()...)
	return append(lines, "  again (g)           — Repeat your last command")
}

// StateLines is the /state debug dump.
func StateLines(eng *engine.Engine) []string {
	s := eng.State
	return []string{
		fmt.Sprintf("Turn: %d", eng.TurnCount),
		fmt.Sprintf("Phase: %s", s.Phase),
		fmt.Sprintf("Active: %d of %d", s.ActiveIndex+1, len(s.Roster)),
		fmt.Sprintf("Inventory: %d item(s)", len(s.Inventory)),
		fmt.Sprintf("RNG: seed %d, position %d", eng.RNG.Seed(), eng.RNG.Position()),
	}
}

// TraceLines renders the debug trace for one step.
func TraceLines(result types.Result) []string {
	return []string{fmt.Sprintf("[trace] command=%q changed=%t", result.Command, result.Changed)}
}

func (c *CLI) printTrace(result types.Result) {
	for _, line := range TraceLines(result) {
		c.printSystem(line)
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Output {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
