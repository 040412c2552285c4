package theme

// Host is the editor-side surface a Binder drives. Context implements it
// in memory; Script implements it while recording typed commands for the
// frontend to replay.
type Host interface {
	Highlight(def GroupDef)
	Link(dir LinkDirective)
	Match(rule MatchRule)

	AttrValue(group string, attr Attribute, space ColorSpace) (string, bool)
	LinkTarget(alias string) (string, bool)
}

// Context is the in-memory model of the host's highlight and syntax tables.
// All mutation happens on the editor's single command thread, so there is no
// locking; the tables are simply overwritten, last writer wins per name.
type Context struct {
	groups map[string]GroupDef
	links  map[string]string
	rules  map[string]MatchRule
}

// NewContext returns an empty host state.
func NewContext() *Context {
	return &Context{
		groups: make(map[string]GroupDef),
		links:  make(map[string]string),
		rules:  make(map[string]MatchRule),
	}
}

// Highlight creates or overwrites a highlight group.
func (c *Context) Highlight(def GroupDef) {
	if def.Name == "" {
		return
	}
	c.groups[def.Name] = def
}

// Link makes alias follow target for any attribute the alias does not
// define explicitly. A later Link for the same alias replaces the target.
func (c *Context) Link(dir LinkDirective) {
	if dir.Alias == "" || dir.Target == "" {
		return
	}
	c.links[dir.Alias] = dir.Target
}

// Match registers a syntax-match rule. The last registration for a group
// name wins.
func (c *Context) Match(rule MatchRule) {
	if rule.Group == "" {
		return
	}
	c.rules[rule.Group] = rule
}

// AttrValue reads an explicitly defined attribute. Links are not chased
// here; EffectiveAttr on the Binder does that.
func (c *Context) AttrValue(group string, attr Attribute, space ColorSpace) (string, bool) {
	def, ok := c.groups[group]
	if !ok {
		return "", false
	}
	return def.Attr(attr, space)
}

// LinkTarget reports the current link target for alias, if any.
func (c *Context) LinkTarget(alias string) (string, bool) {
	t, ok := c.links[alias]
	return t, ok
}

// Group returns the stored definition for name.
func (c *Context) Group(name string) (GroupDef, bool) {
	def, ok := c.groups[name]
	return def, ok
}

// Rule returns the stored syntax rule for a group name.
func (c *Context) Rule(group string) (MatchRule, bool) {
	r, ok := c.rules[group]
	return r, ok
}
