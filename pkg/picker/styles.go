package picker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/hl/pkg/icon"
	"github.com/dkoosis/hl/pkg/theme"
)

// styles are the lipgloss styles the picker renders with, derived from the
// active scheme through the same binding the editor frontend applies.
type styles struct {
	prompt   lipgloss.Style
	line     lipgloss.Style
	matched  lipgloss.Style
	selected lipgloss.Style
	counter  lipgloss.Style
}

func newStyles(scheme *theme.Scheme, noColor bool) styles {
	if noColor {
		return styles{
			prompt:   lipgloss.NewStyle().Bold(true),
			line:     lipgloss.NewStyle(),
			matched:  lipgloss.NewStyle().Bold(true),
			selected: lipgloss.NewStyle().Reverse(true),
			counter:  lipgloss.NewStyle().Faint(true),
		}
	}

	ctx := theme.NewContext()
	scheme.Apply(ctx)
	b := theme.New(ctx)
	theme.BindFileListing(b, theme.ListingSpec{IconGroups: icon.Groups()})

	fileFg := b.EffectiveAttr(theme.DefaultFileGroup, theme.AttrFg, theme.SpaceGui, "#b2b2b2")
	accent := b.EffectiveAttr("Directory", theme.AttrFg, theme.SpaceGui, "#5fafd7")
	muted := b.EffectiveAttr("Comment", theme.AttrFg, theme.SpaceGui, "#6c6c6c")
	cursorBg := b.EffectiveAttr("CursorLine", theme.AttrBg, theme.SpaceGui, "#303030")

	return styles{
		prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		line:     lipgloss.NewStyle().Foreground(lipgloss.Color(fileFg)),
		matched:  lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color(fileFg)).Background(lipgloss.Color(cursorBg)),
		counter:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
	}
}

// renderLine styles one candidate, emphasising matched rune positions.
func (s styles) renderLine(line string, positions []int, selected bool) string {
	base := s.line
	if selected {
		base = s.selected
	}
	if len(positions) == 0 {
		return base.Render(line)
	}

	matched := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		matched[p] = struct{}{}
	}

	var out string
	var run []rune
	runIsMatch := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runIsMatch {
			out += s.matched.Render(string(run))
		} else {
			out += base.Render(string(run))
		}
		run = run[:0]
	}
	for i, r := range []rune(line) {
		_, isMatch := matched[i]
		if isMatch != runIsMatch {
			flush()
			runIsMatch = isMatch
		}
		run = append(run, r)
	}
	flush()
	return out
}
