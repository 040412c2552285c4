package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

// isolate keeps the ambient .hl.yaml (if any) out of the test runs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back: %v", err)
		}
	})
}

// --- E2E: stdin/argv → subcommand → stdout JSON ---

func TestRun_Exec_EmitsResultLine(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"exec", "--no-icon", "--", "printf", "a\nb\nc\n"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}

	var res struct {
		Total int      `json:"total"`
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v; got: %s", err, stdout.String())
	}
	if res.Total != 3 {
		t.Errorf("total = %d, want 3", res.Total)
	}
	if len(res.Lines) != 3 || res.Lines[0] != "a" {
		t.Errorf("lines = %v, want [a b c]", res.Lines)
	}
}

func TestRun_Exec_When_NumberFlag_LimitsLines(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"exec", "--no-icon", "--number", "2", "--", "printf", "a\nb\nc\nd\n"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}

	var res struct {
		Total int      `json:"total"`
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if res.Total != 4 {
		t.Errorf("total = %d, want the true count 4", res.Total)
	}
	if len(res.Lines) != 2 {
		t.Errorf("lines = %v, want 2 entries", res.Lines)
	}
}

func TestRun_Exec_When_IconsOn_DecoratesLines(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"exec", "--", "printf", "main.go\n"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	var res struct {
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(res.Lines) != 1 || !strings.HasSuffix(res.Lines[0], " main.go") {
		t.Errorf("lines = %v, want glyph-decorated main.go", res.Lines)
	}
}

func TestRun_Exec_When_CommandFails_ExitOne(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"exec", "--", "sh", "-c", "echo boom >&2; exit 3"}, strings.NewReader(""), &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Errorf("stderr should carry the child's message, got: %s", stderr.String())
	}
}

func TestRun_Exec_When_NoCommand_ExitTwo(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"exec", "--no-icon"}, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_Grep_EmitsResultLine(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"grep", "--cmd", "printf %s\\n", "--winwidth", "0", "needle"},
		strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	var res struct {
		Total int      `json:"total"`
		Lines []string `json:"lines"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v; got: %s", err, stdout.String())
	}
	if res.Total != 1 || len(res.Lines) != 1 {
		t.Errorf("result = %+v, want one echoed line", res)
	}
	if !strings.Contains(res.Lines[0], "needle") {
		t.Errorf("line = %q, want the search term echoed back", res.Lines[0])
	}
}

func TestRun_Grep_When_NoTerm_ExitTwo(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"grep"}, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_Filter_RanksStdinLines(t *testing.T) {
	isolate(t)

	stdin := strings.NewReader("pkg/theme/binder.go\nREADME.md\ncmd/hl/main.go\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"filter", "theme"}, stdin, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	got := strings.TrimSpace(stdout.String())
	if got != "pkg/theme/binder.go" {
		t.Errorf("output = %q, want the single matching line", got)
	}
}

func TestRun_Filter_When_NumberFlag_LimitsMatches(t *testing.T) {
	isolate(t)

	stdin := strings.NewReader("abc\naxbxc\nnope\nabcd\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"filter", "--number", "1", "abc"}, stdin, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("got %d lines, want 1: %v", len(lines), lines)
	}
}

func TestRun_Theme_EmitsCommandArray(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"theme"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}

	var cmds []struct {
		Kind      string `json:"kind"`
		Highlight *struct {
			Name    string `json:"name"`
			CtermBg string `json:"ctermbg"`
			GuiBg   string `json:"guibg"`
		} `json:"highlight"`
		Match *struct {
			Group    string `json:"group"`
			Pattern  string `json:"pattern"`
			Contains string `json:"contains"`
		} `json:"match"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &cmds); err != nil {
		t.Fatalf("output is not a JSON array: %v; got: %s", err, stdout.String())
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want highlight+link+match", len(cmds))
	}
	if cmds[0].Kind != "highlight" || cmds[0].Highlight.Name != "HlFile" {
		t.Errorf("first command = %+v, want HlFile highlight", cmds[0])
	}
	if cmds[0].Highlight.CtermBg != "NONE" || cmds[0].Highlight.GuiBg != "NONE" {
		t.Errorf("file group backgrounds = %q/%q, want NONE", cmds[0].Highlight.CtermBg, cmds[0].Highlight.GuiBg)
	}
	if cmds[1].Kind != "link" {
		t.Errorf("second command kind = %q, want link", cmds[1].Kind)
	}
	m := cmds[2]
	if m.Kind != "match" || m.Match.Pattern != "^.*" {
		t.Errorf("third command = %+v, want full-line match", m)
	}
	if !strings.HasSuffix(m.Match.Contains, ",HlFile") {
		t.Errorf("contains = %q, want icon groups then HlFile", m.Match.Contains)
	}
}

func TestRun_Theme_When_NoIcon_ContainsOnlyFileGroup(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"theme", "--no-icon"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0; stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"contains":"HlFile"`) {
		t.Errorf("contains should be the bare file group, got: %s", stdout.String())
	}
}

func TestRun_UnknownCommand_ExitTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"bogus"}, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q, want unknown-command message", stderr.String())
	}
}

func TestRun_NoArgs_ExitTwo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)

	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_Help_ExitZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "hl exec") {
		t.Error("help output missing usage")
	}
}
