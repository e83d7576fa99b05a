package tui

import "strings"

// entry is one unstyled transcript line. Lines are kept raw so the whole
// transcript can be re-wrapped when the terminal is resized.
type entry struct {
	text string
	kind lineKind
}

// transcript is the scrollback shown in the viewport.
type transcript []entry

// withInput records an echoed player command.
func (t transcript) withInput(input string) transcript {
	return append(t, entry{text: "> " + input, kind: kindInput})
}

// withOutput records engine output followed by a blank separator.
func (t transcript) withOutput(lines []string) transcript {
	for _, line := range lines {
		t = append(t, entry{text: line, kind: classifyLine(line)})
	}
	return append(t, entry{})
}

// withMeta records meta-command output, which is always shown bracketed.
func (t transcript) withMeta(lines []string) transcript {
	for _, line := range lines {
		t = append(t, entry{text: line, kind: kindMeta})
	}
	return append(t, entry{})
}

// render wraps and styles every entry for the given width.
func (t transcript) render(width int) string {
	width = max(width, 10)
	out := make([]string, len(t))
	for i, e := range t {
		if e.text != "" {
			out[i] = renderLine(wordWrap(e.text, width), e.kind)
		}
	}
	return strings.Join(out, "\n")
}

// wordWrap wraps text at word boundaries to fit width. Leading indentation
// of the first line is kept.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]
	var b strings.Builder
	b.WriteString(indent)
	lineLen := len(indent)

	for i, word := range strings.Fields(text) {
		switch {
		case i == 0:
		case lineLen+1+len(word) > width:
			b.WriteString("\n")
			lineLen = 0
		default:
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
