// Package grep builds and runs grep-style searches through the provider and
// keeps long matched lines readable inside a fixed display width.
package grep

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkoosis/hl/pkg/provider"
)

// Query describes one grep invocation. Cmd is the base command string the
// plugin configures (e.g. "rg -H --no-heading --vimgrep --smart-case"),
// split on whitespace; the search term and glob are appended separately so
// shell quoting never leaks into the term.
type Query struct {
	Cmd      string
	Term     string
	Glob     string
	Winwidth int
}

// Args expands the query into the final argv.
func (q Query) Args() ([]string, error) {
	args := strings.Fields(q.Cmd)
	if len(args) == 0 {
		return nil, fmt.Errorf("empty grep command")
	}
	args = append(args, q.Term)
	if q.Glob != "" {
		args = append(args, "-g", q.Glob)
	}
	return args, nil
}

// Run executes the query and truncates matched lines to the query's window
// width. Grep icons are forced on the provider options.
func Run(ctx context.Context, q Query, opts provider.Options) (*provider.Result, error) {
	args, err := q.Args()
	if err != nil {
		return nil, err
	}
	opts.Icons = provider.IconGrep

	res, err := provider.Run(ctx, args, opts)
	if err != nil {
		return nil, err
	}
	if q.Winwidth > 0 {
		res.Lines = TruncateMatched(res.Lines, q.Winwidth)
	}
	return res, nil
}
