package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathoo/unionroster/engine/classify"
	"github.com/nathoo/unionroster/engine/state"
)

// renderStatusBar produces a full-width status line showing the active
// character, its experience and effect count, the phase and turn count.
// The background follows the active class.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	active := state.Active(s)

	left := fmt.Sprintf(" %d/%d %s Lv%d | XP %d/100 | Power %d",
		s.ActiveIndex+1, len(s.Roster), titleCase(string(active.Class())),
		active.Level, active.Experience, classify.TotalPower(active))
	right := fmt.Sprintf("FX:%d | %s | T:%d ", len(active.StatusEffects), s.Phase, m.engine.TurnCount)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	style := styleStatusBar
	if c, ok := classColors[active.Class()]; ok {
		style = style.Background(c)
	}
	return style.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// titleCase turns "warrior" into "Warrior".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
