package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathoo/unionroster/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Bold(true)

	styleEffect = lipgloss.NewStyle().
			Foreground(lipgloss.Color("213"))

	styleProgress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// classColors tints the status bar by the active character's class.
var classColors = map[types.Class]lipgloss.Color{
	types.ClassWarrior: lipgloss.Color("124"),
	types.ClassMage:    lipgloss.Color("25"),
	types.ClassArcher:  lipgloss.Color("28"),
	types.ClassRogue:   lipgloss.Color("91"),
}

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindNarration lineKind = iota
	kindHeading
	kindEffect
	kindProgress
	kindSystem
	kindError
	kindTrace
	kindInput // echoed player command
	kindMeta  // meta-command output
)

var kindStyles = map[lineKind]lipgloss.Style{
	kindNarration: styleNarration,
	kindHeading:   styleHeading,
	kindEffect:    styleEffect,
	kindProgress:  styleProgress,
	kindSystem:    styleSystem,
	kindError:     styleError,
	kindTrace:     styleTrace,
	kindInput:     stylePlayerInput,
}

// renderLine styles one wrapped line. Meta-command output is bracketed.
func renderLine(line string, kind lineKind) string {
	if kind == kindMeta {
		return styleSystem.Render("[" + line + "]")
	}
	return kindStyles[kind].Render(line)
}

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "Effects:"),
		strings.Contains(line, "is now affected:"),
		strings.HasPrefix(line, "Removed "):
		return kindEffect
	case strings.HasPrefix(line, "Experience "):
		return kindProgress
	case strings.HasPrefix(line, "I don't understand"),
		strings.HasPrefix(line, "No character at"),
		strings.HasPrefix(line, "There is no"),
		strings.HasPrefix(line, "Unknown action"):
		return kindError
	case strings.HasSuffix(line, ":"):
		return kindHeading
	default:
		return kindNarration
	}
}
