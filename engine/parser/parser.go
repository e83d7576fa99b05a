// Package parser converts command strings into Command structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"

	"github.com/nathoo/unionroster/types"
)

var verbAliases = map[string]string{
	"l":      "look",
	"status": "look",
	"party":  "roster",
	"r":      "roster",
	"s":      "select",
	"pick":   "select",
	"choose": "select",
	"a":      "act",
	"do":     "act",
	"use":    "act",
	"i":      "inventory",
	"inv":    "inventory",
	"items":  "inventory",
	"p":      "power",
	"?":      "help",
	"h":      "help",
	"fx":     "effect",
}

// Shortcuts that expand to a full command.
var shortcuts = map[string]types.Command{
	"+": {Verb: "effect", Arg: "add"},
	"-": {Verb: "effect", Arg: "remove"},
}

// Parse converts raw input into a Command.
// Input is lowercased and trimmed; the first word is the verb (after alias
// expansion) and the remaining words, joined by a single space, are the
// argument.
func Parse(input string) types.Command {
	words := strings.Fields(strings.ToLower(input))
	if len(words) == 0 {
		return types.Command{}
	}

	if cmd, ok := shortcuts[words[0]]; ok && len(words) == 1 {
		return cmd
	}

	verb := words[0]
	if canonical, ok := verbAliases[verb]; ok {
		verb = canonical
	}

	return types.Command{
		Verb: verb,
		Arg:  strings.Join(words[1:], " "),
	}
}
