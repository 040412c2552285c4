package icon

import (
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireGlyph asserts s is a single nerd-font rune, not empty and not plain
// ASCII.
func requireGlyph(t *testing.T, s string) {
	t.Helper()
	require.Equal(t, 1, utf8.RuneCountInString(s), "glyph %q must be one rune", s)
	r, _ := utf8.DecodeRuneInString(s)
	require.GreaterOrEqual(t, r, rune(0x80), "glyph %q must not be ASCII", s)
}

func TestDefault_IsARealGlyph(t *testing.T) {
	t.Parallel()

	requireGlyph(t, Default)
}

func TestFor_When_KnownExtension(t *testing.T) {
	t.Parallel()

	goGlyph := For("pkg/theme/binder.go")
	rustGlyph := For("src/main.rs")

	requireGlyph(t, goGlyph)
	requireGlyph(t, rustGlyph)
	assert.NotEqual(t, Default, goGlyph)
	assert.NotEqual(t, goGlyph, rustGlyph)
}

func TestFor_When_ExactNameBeatsExtension(t *testing.T) {
	t.Parallel()

	// go.mod is matched by name, not treated as an unknown ".mod" file.
	assert.Equal(t, For("main.go"), For("go.mod"))
	assert.NotEqual(t, Default, For("sub/dir/Makefile"))
}

func TestFor_When_UnknownExtension_UsesDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Default, For("archive.xyz"))
	assert.Equal(t, Default, For("noextension"))
}

func TestEveryTableEntry_HasAGlyph(t *testing.T) {
	t.Parallel()

	for _, e := range byExt {
		requireGlyph(t, e.glyph)
	}
	for _, e := range byName {
		requireGlyph(t, e.glyph)
	}
}

func TestGroupFor_DerivesTitleCasedGroup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HlIconGo", GroupFor("main.go"))
	assert.Equal(t, "HlIconRust", GroupFor("lib.rs"))
	assert.Equal(t, "HlIconDefault", GroupFor("mystery.bin"))
}

func TestGroups_IsStableAndComplete(t *testing.T) {
	t.Parallel()

	groups := Groups()
	assert.True(t, sort.StringsAreSorted(groups))
	assert.Contains(t, groups, "HlIconGo")
	assert.Contains(t, groups, "HlIconDefault")
	assert.Equal(t, groups, Groups())
}

func TestPrepend_AddsGlyphAndSpace(t *testing.T) {
	t.Parallel()

	got := Prepend("cmd/hl/main.go")
	assert.True(t, strings.HasSuffix(got, " cmd/hl/main.go"))
	assert.Equal(t, For("cmd/hl/main.go"), strings.Fields(got)[0])
}

func TestPrependGrep_When_LocationHeadPresent(t *testing.T) {
	t.Parallel()

	got := PrependGrep("pkg/theme/binder.go:12:5:func New(host Host) *Binder {")
	assert.True(t, strings.HasPrefix(got, For("binder.go")+" "))
	assert.NotEqual(t, Default, For("binder.go"))
}

func TestPrependGrep_When_Malformed_UsesDefault(t *testing.T) {
	t.Parallel()

	got := PrependGrep("not a grep line")
	assert.True(t, strings.HasPrefix(got, Default+" "))
}

func TestTrimTrailing_When_LastLineEmpty(t *testing.T) {
	t.Parallel()

	lines := []string{"a.go", "b.go", ""}
	assert.Equal(t, []string{"a.go", "b.go"}, TrimTrailing(lines))
}

func TestTrimTrailing_When_LastLineIconizedEmpty(t *testing.T) {
	t.Parallel()

	lines := []string{Prepend("a.go"), Default + " "}
	assert.Equal(t, []string{Prepend("a.go")}, TrimTrailing(lines))
}

func TestTrimTrailing_When_LastLineWhitespaceOnly_Kept(t *testing.T) {
	t.Parallel()

	// A whitespace-only line is not an iconized empty line; only the default
	// glyph marks one.
	lines := []string{"a.go", "   "}
	assert.Equal(t, lines, TrimTrailing(lines))
}

func TestTrimTrailing_When_LastLineReal_Unchanged(t *testing.T) {
	t.Parallel()

	lines := []string{"a.go", "b.go"}
	assert.Equal(t, lines, TrimTrailing(lines))
}
