// Package icon decorates listing lines with filetype glyphs and exposes the
// highlight groups the theme layer nests inside listing lines.
package icon

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default is the glyph used when no class matches (nerd-font "file").
const Default = ""

// groupPrefix is prepended to a title-cased class name to form the
// highlight group, e.g. "go" -> "HlIconGo".
const groupPrefix = "HlIcon"

var titler = cases.Title(language.English)

type entry struct {
	glyph string
	class string
}

// byExt maps lowercase file extensions (without dot) to their icon.
var byExt = map[string]entry{
	"go":   {"", "go"},
	"rs":   {"", "rust"},
	"py":   {"", "python"},
	"rb":   {"", "ruby"},
	"js":   {"", "javascript"},
	"ts":   {"", "typescript"},
	"jsx":  {"", "javascript"},
	"tsx":  {"", "typescript"},
	"c":    {"", "c"},
	"h":    {"", "c"},
	"cpp":  {"", "cpp"},
	"hpp":  {"", "cpp"},
	"java": {"", "java"},
	"lua":  {"", "lua"},
	"vim":  {"", "vim"},
	"sh":   {"", "shell"},
	"bash": {"", "shell"},
	"zsh":  {"", "shell"},
	"md":   {"", "markdown"},
	"json": {"", "json"},
	"yaml": {"", "yaml"},
	"yml":  {"", "yaml"},
	"toml": {"", "toml"},
	"html": {"", "html"},
	"css":  {"", "css"},
	"lock": {"", "lock"},
	"txt":  {"", "text"},
}

// byName maps exact (lowercase) file names that matter more than their
// extension.
var byName = map[string]entry{
	"makefile":   {"", "make"},
	"dockerfile": {"", "docker"},
	"license":    {"", "license"},
	".gitignore": {"", "git"},
	"go.mod":     {"", "go"},
	"go.sum":     {"", "go"},
}

// For returns the glyph for a path, falling back to Default.
func For(path string) string {
	g, _ := lookup(path)
	return g
}

// GroupFor returns the highlight group owning the glyph for a path.
func GroupFor(path string) string {
	_, class := lookup(path)
	return Group(class)
}

// Group derives the highlight group name for an icon class.
func Group(class string) string {
	return groupPrefix + titler.String(strings.ToLower(class))
}

func lookup(path string) (glyph, class string) {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(path)))
	if e, ok := byName[base]; ok {
		return e.glyph, e.class
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if e, ok := byExt[ext]; ok {
		return e.glyph, e.class
	}
	return Default, "default"
}

// Groups returns every icon highlight group in stable (sorted) order,
// including the default group. This list feeds the theme contains-clause.
func Groups() []string {
	seen := map[string]struct{}{"default": {}}
	for _, e := range byExt {
		seen[e.class] = struct{}{}
	}
	for _, e := range byName {
		seen[e.class] = struct{}{}
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	groups := make([]string, len(classes))
	for i, c := range classes {
		groups[i] = Group(c)
	}
	return groups
}

// Prepend decorates a listing line with its filetype glyph.
func Prepend(line string) string {
	return For(line) + " " + line
}

// grepLocationRE matches the path:lnum:col: head of grep output lines.
var grepLocationRE = regexp.MustCompile(`^(.*?):(\d+):(\d+):`)

// PrependGrep decorates a grep line using the path portion of its
// path:lnum:col: head. Lines without that shape get the default glyph.
func PrependGrep(line string) string {
	m := grepLocationRE.FindStringSubmatch(line)
	if m == nil {
		return Default + " " + line
	}
	return For(m[1]) + " " + line
}

// TrimTrailing removes a trailing line that is empty or a bare iconized
// empty line, which decoration otherwise leaves behind.
func TrimTrailing(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	last := lines[len(lines)-1]
	if last == "" || strings.TrimSpace(last) == Default {
		return lines[:len(lines)-1]
	}
	return lines
}
