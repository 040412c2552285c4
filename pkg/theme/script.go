package theme

import (
	"encoding/json"
	"io"
)

// Command kinds emitted by a Script.
const (
	CmdHighlight = "highlight"
	CmdLink      = "link"
	CmdMatch     = "match"
)

// Command is one typed host mutation. Exactly one of the payload fields is
// set, selected by Kind. The frontend replays commands in order.
type Command struct {
	Kind      string        `json:"kind"`
	Highlight *GroupDef     `json:"highlight,omitempty"`
	Link      *linkPayload  `json:"link,omitempty"`
	Match     *matchPayload `json:"match,omitempty"`
}

type linkPayload struct {
	Alias  string `json:"alias"`
	Target string `json:"target"`
}

type matchPayload struct {
	Group    string `json:"group"`
	Pattern  string `json:"pattern"`
	Contains string `json:"contains"`
}

// Script records typed host commands while mirroring their effect in an
// in-memory Context, so attribute resolution during binding sees the same
// state the frontend will end up with.
type Script struct {
	state *Context
	cmds  []Command
}

// NewScript returns an empty recording host.
func NewScript() *Script {
	return &Script{state: NewContext()}
}

// Seed applies a scheme to the backing state without recording commands.
// The frontend already has the scheme loaded; only derived bindings are
// replayed.
func (s *Script) Seed(scheme *Scheme) {
	scheme.Apply(s.state)
}

func (s *Script) Highlight(def GroupDef) {
	s.state.Highlight(def)
	s.cmds = append(s.cmds, Command{Kind: CmdHighlight, Highlight: &def})
}

func (s *Script) Link(dir LinkDirective) {
	s.state.Link(dir)
	s.cmds = append(s.cmds, Command{Kind: CmdLink, Link: &linkPayload{Alias: dir.Alias, Target: dir.Target}})
}

func (s *Script) Match(rule MatchRule) {
	s.state.Match(rule)
	s.cmds = append(s.cmds, Command{Kind: CmdMatch, Match: &matchPayload{
		Group:    rule.Group,
		Pattern:  rule.Pattern,
		Contains: rule.ContainsClause(),
	}})
}

func (s *Script) AttrValue(group string, attr Attribute, space ColorSpace) (string, bool) {
	return s.state.AttrValue(group, attr, space)
}

func (s *Script) LinkTarget(alias string) (string, bool) {
	return s.state.LinkTarget(alias)
}

// Commands returns the recorded command list in emission order.
func (s *Script) Commands() []Command {
	return s.cmds
}

// WriteTo writes the command list as a single JSON array.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	cmds := s.cmds
	if cmds == nil {
		cmds = []Command{}
	}
	data, err := json.Marshal(cmds)
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
