// Package theme implements highlight-group binding for editor file listings.
//
// The editor frontend owns the actual color-scheme and syntax engines; this
// package models their state as an explicit Context (or a recording Script)
// and derives highlight groups, link directives, and syntax-match rules from
// an already-loaded scheme. Lookups never fail: a miss degrades to the
// caller's fallback value.
package theme

import "strings"

// Attribute selects which slot of a highlight group a query reads.
type Attribute string

const (
	AttrFg Attribute = "fg"
	AttrBg Attribute = "bg"
)

// ColorSpace distinguishes terminal-palette values from gui hex values.
type ColorSpace string

const (
	SpaceCterm ColorSpace = "cterm"
	SpaceGui   ColorSpace = "gui"
)

// Transparent is the explicit "no background" value understood by the host.
const Transparent = "NONE"

// AttrQuery describes a single highlight-attribute lookup.
// Fallback is returned verbatim when the group or attribute is undefined.
type AttrQuery struct {
	Group    string
	Attr     Attribute
	Space    ColorSpace
	Fallback string
}

// GroupDef is a full highlight-group definition. Empty fields are unset;
// Transparent is a set value meaning "no color".
type GroupDef struct {
	Name    string `yaml:"name" json:"name"`
	CtermFg string `yaml:"ctermfg,omitempty" json:"ctermfg,omitempty"`
	CtermBg string `yaml:"ctermbg,omitempty" json:"ctermbg,omitempty"`
	GuiFg   string `yaml:"guifg,omitempty" json:"guifg,omitempty"`
	GuiBg   string `yaml:"guibg,omitempty" json:"guibg,omitempty"`
}

// Attr returns the definition's value for the given attribute and space.
// The second return is false when the slot is unset.
func (d GroupDef) Attr(attr Attribute, space ColorSpace) (string, bool) {
	var v string
	switch {
	case attr == AttrFg && space == SpaceCterm:
		v = d.CtermFg
	case attr == AttrBg && space == SpaceCterm:
		v = d.CtermBg
	case attr == AttrFg && space == SpaceGui:
		v = d.GuiFg
	case attr == AttrBg && space == SpaceGui:
		v = d.GuiBg
	}
	return v, v != ""
}

// MatchRule binds a full-line pattern to a set of nested highlight groups.
// Contains keeps registration order; referencing a group the scheme never
// defines is tolerated by the host and simply renders nothing.
type MatchRule struct {
	Group    string
	Pattern  string
	Contains []string
}

// ContainsClause renders the contains list the way the host consumes it:
// comma-joined, order preserved, no trailing delimiter.
func (r MatchRule) ContainsClause() string {
	return strings.Join(r.Contains, ",")
}

// LinkDirective makes Alias inherit every attribute of Target that a later
// explicit definition does not override.
type LinkDirective struct {
	Alias  string
	Target string
}
