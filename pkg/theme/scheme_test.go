package theme

import (
	"strings"
	"testing"
)

func TestSchemeByName_When_Unknown_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := SchemeByName("no-such-scheme")
	if s.Name != "default" {
		t.Fatalf("expected default scheme, got %q", s.Name)
	}
}

func TestDefaultScheme_NormalMatchesListingFallbacks(t *testing.T) {
	t.Parallel()

	normal, ok := DefaultScheme().Group("Normal")
	if !ok {
		t.Fatalf("default scheme has no Normal group")
	}
	if normal.CtermFg != defaultCtermFallback || normal.GuiFg != defaultGuiFallback {
		t.Fatalf("Normal fg %s/%s does not match listing fallbacks", normal.CtermFg, normal.GuiFg)
	}
}

func TestSchemeApply_When_Reapplied_Overwrites(t *testing.T) {
	t.Parallel()

	ctx := NewContext()
	DefaultScheme().Apply(ctx)
	MidnightScheme().Apply(ctx)

	def, ok := ctx.Group("Normal")
	if !ok {
		t.Fatalf("Normal missing after reapply")
	}
	if def.CtermFg != "251" {
		t.Fatalf("expected midnight Normal fg 251, got %s", def.CtermFg)
	}
}

func TestLoadScheme_When_ValidYAML(t *testing.T) {
	t.Parallel()

	input := `
name: custom
groups:
  - name: Normal
    ctermfg: "250"
    guifg: "#bcbcbc"
  - name: CursorLine
    ctermbg: "237"
`
	s, err := LoadScheme(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "custom" || len(s.Groups) != 2 {
		t.Fatalf("unexpected scheme: %+v", s)
	}
	normal, ok := s.Group("Normal")
	if !ok || normal.CtermFg != "250" || normal.GuiFg != "#bcbcbc" {
		t.Fatalf("unexpected Normal group: %+v", normal)
	}
}

func TestLoadScheme_When_GroupMissingName(t *testing.T) {
	t.Parallel()

	input := `
name: broken
groups:
  - ctermfg: "250"
`
	if _, err := LoadScheme(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for unnamed group")
	}
}

func TestLoadScheme_When_MalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := LoadScheme(strings.NewReader("groups: [unclosed")); err == nil {
		t.Fatalf("expected YAML error")
	}
}
