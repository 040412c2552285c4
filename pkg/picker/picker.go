// Package picker is the interactive front end: a minimal fuzzy picker over
// candidate lines, styled from the active highlight scheme. The editor
// plugin embeds its own picker UI; this one serves terminal use and doubles
// as a reference wiring of filter, icon, and theme.
package picker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/hl/pkg/filter"
	"github.com/dkoosis/hl/pkg/icon"
	"github.com/dkoosis/hl/pkg/theme"
)

// Options configures a picker run.
type Options struct {
	// Scheme styles the picker; nil means the default scheme.
	Scheme *theme.Scheme
	// Icons decorates candidates with filetype glyphs.
	Icons bool
	// Prompt replaces the default "> ".
	Prompt string
	// Input overrides the key-event source. Callers whose stdin carries the
	// candidate list pass the controlling terminal here.
	Input io.Reader
	// NoColor renders without color, keeping only bold/reverse emphasis.
	NoColor bool
}

// Run shows the picker over the candidates and returns the chosen line.
// An aborted pick (esc, ctrl-c) returns "", nil.
func Run(ctx context.Context, lines []string, opts Options) (string, error) {
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	program := tea.NewProgram(newModel(lines, opts), progOpts...)
	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}
	return finalModel.(model).choice, nil
}

type model struct {
	input    textinput.Model
	vp       viewport.Model
	session  *filter.Session
	matches  []filter.Match
	styles   styles
	icons    bool
	selected int
	choice   string
	ready    bool
}

func newModel(lines []string, opts Options) model {
	scheme := opts.Scheme
	if scheme == nil {
		scheme = theme.DefaultScheme()
	}
	if opts.Icons {
		decorated := make([]string, len(lines))
		for i, l := range lines {
			decorated[i] = icon.Prepend(l)
		}
		lines = decorated
	}

	input := textinput.New()
	input.Prompt = opts.Prompt
	if input.Prompt == "" {
		input.Prompt = "> "
	}
	input.Focus()

	return model{
		input:   input,
		vp:      viewport.New(0, 0),
		session: filter.NewSession(lines),
		styles:  newStyles(scheme, opts.NoColor),
		icons:   opts.Icons,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.choice = m.selectedLine()
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil
		case "down", "ctrl+n":
			if m.selected < m.visibleCount()-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		// One line each for the prompt and the counter.
		m.vp.Height = msg.Height - 2
		m.ready = true
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.requery()
	return m, cmd
}

// requery re-filters on the current query and clamps the selection.
func (m *model) requery() {
	m.matches = m.session.Query(m.input.Value())
	if last := m.visibleCount() - 1; m.selected > last {
		m.selected = 0
	}
	m.refresh()
}

// visibleCount is the number of candidate rows currently shown: all lines
// for an empty query, ranked matches otherwise.
func (m model) visibleCount() int {
	if m.input.Value() == "" {
		return m.session.Len()
	}
	return len(m.matches)
}

func (m model) selectedLine() string {
	if m.input.Value() == "" {
		lines := m.session.Lines()
		if m.selected < len(lines) {
			return m.stripIcon(lines[m.selected])
		}
		return ""
	}
	if m.selected < len(m.matches) {
		return m.stripIcon(m.matches[m.selected].Line)
	}
	return ""
}

// stripIcon undoes display decoration so the caller gets the raw candidate.
func (m model) stripIcon(line string) string {
	if !m.icons {
		return line
	}
	if _, rest, ok := strings.Cut(line, " "); ok {
		return rest
	}
	return line
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	var rows []string
	if m.input.Value() == "" {
		for i, l := range m.session.Lines() {
			rows = append(rows, m.styles.renderLine(l, nil, i == m.selected))
		}
	} else {
		for i, match := range m.matches {
			rows = append(rows, m.styles.renderLine(match.Line, match.Positions, i == m.selected))
		}
	}
	m.vp.SetContent(strings.Join(rows, "\n"))
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	prompt := m.styles.prompt.Render(m.input.View())
	counter := m.styles.counter.Render(fmt.Sprintf("%d/%d", m.visibleCount(), m.session.Len()))
	return prompt + "\n" + m.vp.View() + "\n" + counter
}
