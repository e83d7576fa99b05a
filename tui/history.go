// Package tui provides a Bubble Tea terminal UI for the roster engine.
package tui

// History remembers submitted commands for Up/Down recall.
// The oldest command is dropped once limit is reached.
type History struct {
	cmds  []string
	limit int
	pos   int // len(cmds) means "editing a fresh line"
}

// NewHistory creates a history holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push records a command, ignoring an immediate repeat, and resets recall.
func (h *History) Push(cmd string) {
	if n := len(h.cmds); n == 0 || h.cmds[n-1] != cmd {
		h.cmds = append(h.cmds, cmd)
		if len(h.cmds) > h.limit {
			h.cmds = h.cmds[len(h.cmds)-h.limit:]
		}
	}
	h.pos = len(h.cmds)
}

// Prev steps back to an older command. It stops at the oldest one and
// returns false only when there is no history at all.
func (h *History) Prev() (string, bool) {
	if len(h.cmds) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.cmds[h.pos], true
}

// Next steps forward to a newer command. Stepping past the newest
// returns false, meaning the input line should be cleared.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.cmds) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.cmds) {
		return "", false
	}
	return h.cmds[h.pos], true
}
