// hl is the external helper behind an editor file-listing plugin: it runs
// listing and grep commands, filters candidates, binds listing highlight
// groups, and offers a standalone fuzzy picker.
//
// Usage:
//
//	hl exec [flags] -- <cmd> [args...]     run a listing command
//	hl grep [flags] <term>                 run a grep search
//	hl filter [flags] <pattern>            rank stdin lines against a pattern
//	hl pick [flags]                        pick one line from stdin (TTY)
//	hl theme [flags]                       emit listing highlight commands
//
// exec and grep print a single JSON line {total, lines, tempfile} the editor
// plugin consumes; theme prints a JSON array of typed highlight commands.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/dkoosis/hl/internal/config"
	"github.com/dkoosis/hl/internal/version"
	"github.com/dkoosis/hl/pkg/filter"
	"github.com/dkoosis/hl/pkg/grep"
	"github.com/dkoosis/hl/pkg/icon"
	"github.com/dkoosis/hl/pkg/picker"
	"github.com/dkoosis/hl/pkg/provider"
	"github.com/dkoosis/hl/pkg/theme"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "exec":
		return runExec(rest, stdout, stderr)
	case "grep":
		return runGrep(rest, stdout, stderr)
	case "filter":
		return runFilter(rest, stdin, stdout, stderr)
	case "pick":
		return runPick(rest, stdin, stdout, stderr)
	case "theme":
		return runTheme(rest, stdout, stderr)
	case "version", "--version":
		fmt.Fprintf(stdout, "hl %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "hl: unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  hl exec [flags] -- <cmd> [args...]   run a listing command
  hl grep [flags] <term>               run a grep search
  hl filter [flags] <pattern>          rank stdin lines against a pattern
  hl pick [flags]                      pick one line from stdin
  hl theme [flags]                     emit listing highlight commands
`)
}

// newFlagSet builds a subcommand flag set wired to the shared settings.
// Flags left at their defaults do not override file or environment values.
func newFlagSet(name string, stderr io.Writer, flags *config.CliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("hl "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.Scheme, "scheme", "", "Highlight scheme name")
	fs.BoolVar(&flags.NoIcon, "no-icon", false, "Disable filetype icons")
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.Debug, "debug", false, "Verbose diagnostics on stderr")
	return fs
}

// resolve parses args through fs and resolves the final settings.
func resolve(fs *flag.FlagSet, args []string, flags *config.CliFlags, stderr io.Writer) (config.Settings, *config.AppConfig, []string, bool) {
	if err := fs.Parse(args); err != nil {
		return config.Settings{}, nil, nil, false
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scheme":
			flags.SchemeSet = true
		case "no-icon":
			flags.NoIconSet = true
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		case "number":
			flags.NumberSet = true
		case "winwidth":
			flags.WinwidthSet = true
		case "threshold":
			flags.OutputThresholdSet = true
		}
	})

	appCfg := config.LoadConfig()
	settings, err := config.ResolveConfig(appCfg, *flags)
	if err != nil {
		fmt.Fprintf(stderr, "hl: %v\n", err)
		return config.Settings{}, nil, nil, false
	}
	if settings.Debug {
		fmt.Fprintf(stderr, "hl: resolved settings: %+v\n", settings)
	}
	return settings, appCfg, fs.Args(), true
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runExec(args []string, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("exec", stderr, &flags)
	dir := fs.String("dir", "", "Working directory for the command")
	cached := fs.Bool("cached", false, "Reuse a previous run's cached output when present")
	fs.IntVar(&flags.Number, "number", 0, "Return only the first N lines (0 = all)")
	fs.IntVar(&flags.OutputThreshold, "threshold", 0, "Cache output above this line count")

	settings, _, argv, ok := resolve(fs, args, &flags, stderr)
	if !ok {
		return 2
	}
	if len(argv) == 0 {
		fmt.Fprintf(stderr, "hl exec: missing command after flags\n")
		return 2
	}

	opts := provider.Options{
		Dir:             *dir,
		Number:          settings.Number,
		OutputThreshold: settings.OutputThreshold,
	}
	if !settings.NoIcon {
		opts.Icons = provider.IconFile
	}

	ctx, stop := signalContext()
	defer stop()

	runFn := provider.Run
	if *cached {
		runFn = provider.RunCached
	}
	res, err := runFn(ctx, argv, opts)
	if err != nil {
		fmt.Fprintf(stderr, "hl exec: %v\n", err)
		return 1
	}
	if _, err := res.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "hl exec: writing output: %v\n", err)
		return 1
	}
	return 0
}

func runGrep(args []string, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("grep", stderr, &flags)
	dir := fs.String("dir", "", "Working directory for the search")
	glob := fs.String("glob", "", "Restrict the search to a glob")
	cmd := fs.String("cmd", "", "Override the configured grep command")
	fs.IntVar(&flags.Number, "number", 0, "Return only the first N matches (0 = all)")
	fs.IntVar(&flags.Winwidth, "winwidth", 0, "Truncate matched lines to this display width")

	settings, _, argv, ok := resolve(fs, args, &flags, stderr)
	if !ok {
		return 2
	}
	if len(argv) != 1 {
		fmt.Fprintf(stderr, "hl grep: expected exactly one search term\n")
		return 2
	}

	grepCmd := settings.GrepCmd
	if *cmd != "" {
		grepCmd = *cmd
	}
	winwidth := settings.Winwidth
	if !flags.WinwidthSet {
		if w, ok := termWidth(stdout); ok {
			winwidth = w
		}
	}
	q := grep.Query{
		Cmd:      grepCmd,
		Term:     argv[0],
		Glob:     *glob,
		Winwidth: winwidth,
	}
	opts := provider.Options{
		Dir:             *dir,
		Number:          settings.Number,
		OutputThreshold: settings.OutputThreshold,
	}

	ctx, stop := signalContext()
	defer stop()

	res, err := grep.Run(ctx, q, opts)
	if err != nil {
		fmt.Fprintf(stderr, "hl grep: %v\n", err)
		return 1
	}
	if _, err := res.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "hl grep: writing output: %v\n", err)
		return 1
	}
	return 0
}

func runFilter(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("filter", stderr, &flags)
	fs.IntVar(&flags.Number, "number", 0, "Keep only the best N matches (0 = all)")

	settings, _, argv, ok := resolve(fs, args, &flags, stderr)
	if !ok {
		return 2
	}
	if len(argv) != 1 {
		fmt.Fprintf(stderr, "hl filter: expected exactly one pattern\n")
		return 2
	}

	lines, err := readLines(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "hl filter: reading stdin: %v\n", err)
		return 1
	}

	matches := filter.Top(argv[0], lines, settings.Number)
	for _, m := range matches {
		fmt.Fprintln(stdout, m.Line)
	}
	return 0
}

func runPick(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("pick", stderr, &flags)
	prompt := fs.String("prompt", "", "Prompt text")

	settings, appCfg, argv, ok := resolve(fs, args, &flags, stderr)
	if !ok {
		return 2
	}
	if len(argv) != 0 {
		fmt.Fprintf(stderr, "hl pick: unexpected arguments\n")
		return 2
	}

	lines, err := readLines(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "hl pick: reading stdin: %v\n", err)
		return 1
	}
	if len(lines) == 0 {
		fmt.Fprintf(stderr, "hl pick: no candidates on stdin\n")
		return 2
	}

	opts := picker.Options{
		Scheme:  appCfg.SchemeByName(settings.Scheme),
		Icons:   !settings.NoIcon,
		Prompt:  *prompt,
		NoColor: settings.NoColor,
	}
	// Candidates arrive on stdin, so key events must come from the terminal.
	if !isTTYReader(stdin) {
		tty, ttyErr := os.Open("/dev/tty")
		if ttyErr != nil {
			fmt.Fprintf(stderr, "hl pick: stdin is not a terminal and /dev/tty is unavailable: %v\n", ttyErr)
			return 1
		}
		defer tty.Close()
		opts.Input = tty
	}

	ctx, stop := signalContext()
	defer stop()

	choice, err := picker.Run(ctx, lines, opts)
	if err != nil {
		fmt.Fprintf(stderr, "hl pick: %v\n", err)
		return 1
	}
	if choice == "" {
		return 1
	}
	fmt.Fprintln(stdout, choice)
	return 0
}

func runTheme(args []string, stdout, stderr io.Writer) int {
	var flags config.CliFlags
	fs := newFlagSet("theme", stderr, &flags)
	baseGroup := fs.String("base", "", "Base highlight group the listing derives from")

	settings, appCfg, argv, ok := resolve(fs, args, &flags, stderr)
	if !ok {
		return 2
	}
	if len(argv) != 0 {
		fmt.Fprintf(stderr, "hl theme: unexpected arguments\n")
		return 2
	}

	script := theme.NewScript()
	script.Seed(appCfg.SchemeByName(settings.Scheme))

	spec := theme.ListingSpec{BaseGroup: *baseGroup}
	if !settings.NoIcon {
		spec.IconGroups = icon.Groups()
	}
	theme.BindFileListing(theme.New(script), spec)

	if _, err := script.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "hl theme: writing output: %v\n", err)
		return 1
	}
	return 0
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// isTTYReader reports whether r is a terminal.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width of w when w is a terminal.
func termWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		return tw, true
	}
	return 0, false
}
