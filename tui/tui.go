package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/unionroster/cli"
	"github.com/nathoo/unionroster/engine"
	"github.com/nathoo/unionroster/engine/save"
)

const keyHint = "Tab cycles the active character. PgUp/PgDn scroll, Up/Down recall commands."

// Model is the Bubble Tea model for the roster TUI. The engine is only
// touched from Update, so every step runs on the program's event loop.
type Model struct {
	engine *engine.Engine
	store  save.Store

	viewport viewport.Model
	input    textinput.Model
	history  *History
	log      transcript

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	lastCmd  string
}

// New creates a TUI model wired to the given engine and save store. The
// transcript opens with the title, the roster and the active character.
func New(eng *engine.Engine, store save.Store, title string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 128
	ti.PromptStyle = styleInputPrompt

	var intro []string
	if title != "" {
		intro = append(intro, title, "")
	}
	intro = append(intro, eng.Step("roster").Output...)
	intro = append(intro, "")
	intro = append(intro, eng.Step("look").Output...)

	return Model{
		engine:  eng,
		store:   store,
		input:   ti,
		history: NewHistory(100),
		log:     transcript(nil).withOutput(intro),
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, store save.Store, title string) error {
	p := tea.NewProgram(New(eng, store, title), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize lays out the viewport above the status bar and input line.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(height-2, 1)
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.refresh()
}

// handleKey processes the keys the model owns. Anything else goes to the
// text input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit, true
	case "enter":
		next, cmd := m.submit()
		return next, cmd, true
	case "tab":
		next := (m.engine.State.ActiveIndex+1)%len(m.engine.State.Roster) + 1
		return m.run(fmt.Sprintf("select %d", next)), nil, true
	case "up":
		if prev, ok := m.history.Prev(); ok {
			m.input.SetValue(prev)
			m.input.CursorEnd()
		}
		return m, nil, true
	case "down":
		next, _ := m.history.Next()
		m.input.SetValue(next)
		m.input.CursorEnd()
		return m, nil, true
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

// submit processes the input line.
func (m Model) submit() (Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)

	if lower := strings.ToLower(input); lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m.log = m.log.withInput(input).withMeta([]string{"Nothing to repeat."})
			m.refresh()
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	if !strings.HasPrefix(input, "/") {
		return m.run(input), nil
	}

	out, quit := m.handleMeta(input)
	m.log = m.log.withInput(input).withMeta(out)
	m.refresh()
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// run sends one game command through the engine.
func (m Model) run(input string) Model {
	result := m.engine.Step(input)
	output := result.Output
	if m.trace {
		output = append(output, cli.TraceLines(result)...)
	}
	m.log = m.log.withInput(input).withOutput(output)
	m.refresh()
	return m
}

// handleMeta runs a meta-command through the shared dispatcher. Returns
// output lines and the quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	res := cli.Meta(context.Background(), m.engine, m.store, input, &m.trace)
	out := append(res.System, res.Text...)
	if strings.HasPrefix(input, "/help") {
		out = append(out, "", keyHint)
	}
	return out, res.Quit
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.log.render(m.width))
	m.viewport.GotoBottom()
}

// View renders the viewport, the status bar and the input line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap disables Up/Down on the viewport; they recall history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
