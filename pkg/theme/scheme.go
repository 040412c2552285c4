package theme

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Scheme is a named set of highlight-group definitions seeded into a host
// before bindings run. Built-in schemes are constructed from a small gui
// palette; cterm values are the closest 256-color approximations.
type Scheme struct {
	Name   string     `yaml:"name"`
	Groups []GroupDef `yaml:"groups"`
}

// Palette holds the gui-space colors a built-in scheme derives its groups
// from. Colors use lipgloss format (hex or 256-color numbers).
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Apply seeds every group definition into the host. Later definitions for
// the same name overwrite earlier ones.
func (s *Scheme) Apply(h Host) {
	for _, def := range s.Groups {
		h.Highlight(def)
	}
}

// Group returns the scheme's definition for name, if present.
func (s *Scheme) Group(name string) (GroupDef, bool) {
	for _, def := range s.Groups {
		if def.Name == name {
			return def, true
		}
	}
	return GroupDef{}, false
}

// DefaultScheme is the scheme assumed when no name (or an unknown name) is
// configured. Normal carries the 249/#b2b2b2 foreground the file-listing
// binding falls back to.
func DefaultScheme() *Scheme {
	p := Palette{
		Text:    lipgloss.Color("#b2b2b2"),
		Muted:   lipgloss.Color("#6c6c6c"),
		Accent:  lipgloss.Color("#5fafd7"),
		Success: lipgloss.Color("#87d787"),
		Warning: lipgloss.Color("#ffaf5f"),
		Error:   lipgloss.Color("#ff5f5f"),
	}
	return &Scheme{
		Name: "default",
		Groups: []GroupDef{
			{Name: "Normal", CtermFg: "249", GuiFg: string(p.Text)},
			{Name: "Comment", CtermFg: "242", GuiFg: string(p.Muted)},
			{Name: "Directory", CtermFg: "74", GuiFg: string(p.Accent)},
			{Name: "String", CtermFg: "114", GuiFg: string(p.Success)},
			{Name: "Number", CtermFg: "215", GuiFg: string(p.Warning)},
			{Name: "ErrorMsg", CtermFg: "203", GuiFg: string(p.Error)},
			{Name: "CursorLine", CtermBg: "236", GuiBg: "#303030"},
		},
	}
}

// MidnightScheme is a darker built-in scheme.
func MidnightScheme() *Scheme {
	p := Palette{
		Text:    lipgloss.Color("#c6c6c6"),
		Muted:   lipgloss.Color("#585858"),
		Accent:  lipgloss.Color("#87afff"),
		Success: lipgloss.Color("#5fd75f"),
		Warning: lipgloss.Color("#d7af5f"),
		Error:   lipgloss.Color("#d75f5f"),
	}
	return &Scheme{
		Name: "midnight",
		Groups: []GroupDef{
			{Name: "Normal", CtermFg: "251", CtermBg: "233", GuiFg: string(p.Text), GuiBg: "#121212"},
			{Name: "Comment", CtermFg: "240", GuiFg: string(p.Muted)},
			{Name: "Directory", CtermFg: "111", GuiFg: string(p.Accent)},
			{Name: "String", CtermFg: "77", GuiFg: string(p.Success)},
			{Name: "Number", CtermFg: "179", GuiFg: string(p.Warning)},
			{Name: "ErrorMsg", CtermFg: "167", GuiFg: string(p.Error)},
			{Name: "CursorLine", CtermBg: "235", GuiBg: "#262626"},
		},
	}
}

// SchemeByName maps a configured scheme name to its constructor, falling
// back to the default scheme for unknown names.
func SchemeByName(name string) *Scheme {
	switch name {
	case "midnight":
		return MidnightScheme()
	default:
		return DefaultScheme()
	}
}

// LoadScheme reads a user scheme from YAML. Group entries without a name
// are rejected; everything else is taken as-is.
func LoadScheme(r io.Reader) (*Scheme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshalling scheme: %w", err)
	}
	for _, def := range s.Groups {
		if def.Name == "" {
			return nil, fmt.Errorf("scheme %q: group definition without a name", s.Name)
		}
	}
	return &s, nil
}
