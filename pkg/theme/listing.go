package theme

// Defaults for the file-listing binding. The fallbacks match the Normal
// foreground of the default scheme, so an unthemed host still renders
// listings legibly.
const (
	DefaultBaseGroup   = "Normal"
	DefaultFileGroup   = "HlFile"
	DefaultListingRule = "HlFileListing"

	defaultCtermFallback = "249"
	defaultGuiFallback   = "#b2b2b2"

	// fullLinePattern covers the whole listing line so icon groups can
	// nest inside it.
	fullLinePattern = "^.*"
)

// ListingSpec configures BindFileListing. Zero fields take the defaults
// above.
type ListingSpec struct {
	// BaseGroup is the scheme group the file group derives its foreground
	// from and links to for anything not set explicitly.
	BaseGroup string
	// FileGroup is the derived highlight group applied to listing text.
	FileGroup string
	// RuleGroup names the syntax-match rule registered for listing lines.
	RuleGroup string
	// IconGroups is the ordered icon highlight-group list supplied by the
	// icon module; it becomes the head of the contains-clause.
	IconGroups []string
	// CtermFallback/GuiFallback replace the stock fallbacks when set.
	CtermFallback string
	GuiFallback   string
}

func (s ListingSpec) withDefaults() ListingSpec {
	if s.BaseGroup == "" {
		s.BaseGroup = DefaultBaseGroup
	}
	if s.FileGroup == "" {
		s.FileGroup = DefaultFileGroup
	}
	if s.RuleGroup == "" {
		s.RuleGroup = DefaultListingRule
	}
	if s.CtermFallback == "" {
		s.CtermFallback = defaultCtermFallback
	}
	if s.GuiFallback == "" {
		s.GuiFallback = defaultGuiFallback
	}
	return s
}

// BindFileListing wires the file-listing highlighting: it reads the base
// group's foreground in both color spaces, defines the file group with that
// foreground and transparent backgrounds, links the file group to the base
// group for everything else, and registers the full-line match whose
// contains-clause layers the icon groups and the file group.
//
// Safe to re-run on a scheme change; identical input leaves the host state
// unchanged.
func BindFileListing(b *Binder, spec ListingSpec) {
	spec = spec.withDefaults()

	ctermFg := b.ResolveAttr(AttrQuery{
		Group:    spec.BaseGroup,
		Attr:     AttrFg,
		Space:    SpaceCterm,
		Fallback: spec.CtermFallback,
	})
	guiFg := b.ResolveAttr(AttrQuery{
		Group:    spec.BaseGroup,
		Attr:     AttrFg,
		Space:    SpaceGui,
		Fallback: spec.GuiFallback,
	})

	b.DefineGroup(GroupDef{
		Name:    spec.FileGroup,
		CtermFg: ctermFg,
		CtermBg: Transparent,
		GuiFg:   guiFg,
		GuiBg:   Transparent,
	})
	b.LinkGroup(spec.FileGroup, spec.BaseGroup)

	contains := make([]string, 0, len(spec.IconGroups)+1)
	contains = append(contains, spec.IconGroups...)
	contains = append(contains, spec.FileGroup)
	b.RegisterMatch(MatchRule{
		Group:    spec.RuleGroup,
		Pattern:  fullLinePattern,
		Contains: contains,
	})
}
