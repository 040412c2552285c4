package theme

// maxLinkDepth bounds link-chain resolution. A chain deeper than this (or a
// cycle) degrades to the query fallback, mirroring the host's own limit.
const maxLinkDepth = 20

// Binder applies theme bindings against a Host. It carries no state of its
// own; re-running a binding against the same host state is a no-op change.
type Binder struct {
	host Host
}

// New returns a Binder driving the given host.
func New(host Host) *Binder {
	return &Binder{host: host}
}

// ResolveAttr returns the exact stored value for the query's group and
// attribute, or the query's fallback when either is undefined. It never
// fails and never chases links.
func (b *Binder) ResolveAttr(q AttrQuery) string {
	if v, ok := b.host.AttrValue(q.Group, q.Attr, q.Space); ok {
		return v
	}
	return q.Fallback
}

// DefineGroup creates or overwrites a highlight group on the host.
// Re-issuing an identical definition leaves host state unchanged.
func (b *Binder) DefineGroup(def GroupDef) {
	b.host.Highlight(def)
}

// RegisterMatch declares a syntax-match rule on the host. The last
// registration for a given group name wins.
func (b *Binder) RegisterMatch(rule MatchRule) {
	b.host.Match(rule)
}

// LinkGroup makes alias a dynamic alias of target: attributes the alias
// does not define explicitly follow the target, including later changes
// to the target.
func (b *Binder) LinkGroup(alias, target string) {
	b.host.Link(LinkDirective{Alias: alias, Target: target})
}

// EffectiveAttr resolves an attribute the way the host renders it: an
// explicit definition wins for the slots it sets, otherwise the link chain
// is followed, otherwise the fallback is returned.
func (b *Binder) EffectiveAttr(group string, attr Attribute, space ColorSpace, fallback string) string {
	name := group
	for range maxLinkDepth {
		if v, ok := b.host.AttrValue(name, attr, space); ok {
			return v
		}
		next, ok := b.host.LinkTarget(name)
		if !ok {
			break
		}
		name = next
	}
	return fallback
}
