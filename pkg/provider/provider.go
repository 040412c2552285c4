// Package provider runs listing commands on behalf of the editor plugin and
// prepares their output for display: newline-accurate totals, top-N
// truncation, icon decoration, and a temp-file cache for oversized results.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dkoosis/hl/pkg/icon"
)

// IconMode selects how lines are decorated before display.
type IconMode int

const (
	IconNone IconMode = iota
	IconFile
	IconGrep
)

// DefaultOutputThreshold is the line count above which raw output is cached
// to a temp file instead of being shipped to the editor wholesale.
const DefaultOutputThreshold = 100000

// Options configures a provider run.
type Options struct {
	// Dir is the working directory for the child command. A file path is
	// tolerated; its parent directory is used.
	Dir string
	// Number, when positive, limits the returned lines to the first N while
	// keeping the true total.
	Number int
	// Icons selects line decoration.
	Icons IconMode
	// OutputThreshold overrides DefaultOutputThreshold when positive.
	OutputThreshold int
	// CacheRoot overrides the cache location (tests); defaults to the
	// system temp directory.
	CacheRoot string
}

func (o Options) threshold() int {
	if o.OutputThreshold > 0 {
		return o.OutputThreshold
	}
	return DefaultOutputThreshold
}

// Result is the editor-facing display payload.
type Result struct {
	Total     int      `json:"total"`
	Lines     []string `json:"lines,omitempty"`
	CachePath string   `json:"tempfile,omitempty"`
}

// WriteTo emits the payload as a single JSON line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

// Run executes the listing command and returns its display payload.
// A failing child's stderr becomes the error text; the editor frontend
// shows it in place of results.
func Run(ctx context.Context, args []string, opts Options) (*Result, error) {
	stdout, err := capture(ctx, args, opts)
	if err != nil {
		return nil, err
	}

	total := bytes.Count(stdout, []byte{'\n'})

	// Top-N short-circuit: only the visible slice is decorated.
	if opts.Number > 0 {
		lines := splitLines(stdout, opts.Number)
		return &Result{Total: total, Lines: decorate(lines, opts.Icons)}, nil
	}

	result := &Result{Total: total, Lines: decorate(splitLines(stdout, 0), opts.Icons)}
	if total > opts.threshold() {
		path, err := writeCache(opts.CacheRoot, args, opts.Dir, total, stdout)
		if err != nil {
			return nil, fmt.Errorf("caching output: %w", err)
		}
		result.CachePath = path
	}
	return result, nil
}

// RunCached reuses a previous run's cache for the same command and working
// directory when one exists, skipping the child process entirely.
func RunCached(ctx context.Context, args []string, opts Options) (*Result, error) {
	if path, total, ok := probeCache(opts.CacheRoot, args, opts.Dir); ok {
		return &Result{Total: total, CachePath: path}, nil
	}
	return Run(ctx, args, opts)
}

func capture(ctx context.Context, args []string, opts Options) ([]byte, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("empty provider command")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workDir(opts.Dir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s", args[0], msg)
		}
		return nil, fmt.Errorf("running %s: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

// workDir tolerates a file path by falling back to its parent directory.
func workDir(dir string) string {
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return filepath.Dir(dir)
}

func splitLines(stdout []byte, limit int) []string {
	lines := strings.Split(string(stdout), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	return lines
}

func decorate(lines []string, mode IconMode) []string {
	switch mode {
	case IconFile:
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = icon.Prepend(l)
		}
		return icon.TrimTrailing(out)
	case IconGrep:
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = icon.PrependGrep(l)
		}
		return icon.TrimTrailing(out)
	default:
		return icon.TrimTrailing(lines)
	}
}
