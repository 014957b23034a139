// ABOUTME: CLI entry point for iterm2: emits iTerm2 escape sequences to stdout
// ABOUTME: Parses global flags, loads config, and dispatches to a subcommand

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/iterm2-go/internal/config"
	ilog "github.com/mauromedda/iterm2-go/internal/log"
	"github.com/mauromedda/iterm2-go/pkg/iterm2"
	"github.com/mauromedda/iterm2-go/pkg/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// env carries everything a subcommand needs.
type env struct {
	out      terminal.Terminal
	stdin    io.Reader
	stderr   io.Writer
	settings *config.Settings
}

// usageError marks errors caused by bad invocation (exit status 2).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], terminal.NewProcessTerminal(), os.Stdin, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, out terminal.Terminal, stdin io.Reader, stderr io.Writer) int {
	g, err := parseGlobal(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if g.verbose {
		ilog.SetLevel(ilog.LevelDebug)
	}

	rest := g.remaining
	if len(rest) == 0 {
		printUsage(stderr)
		return 2
	}

	name := rest[0]
	if name == "version" {
		fmt.Fprintf(stderr, "iterm2 %s (%s) built %s\n", version, commit, date)
		return 0
	}
	if name == "help" {
		printUsage(stderr)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "iterm2: unknown command %q\n", name)
		if s := suggest(name); len(s) > 0 {
			fmt.Fprintf(stderr, "did you mean: %s?\n", joinOr(s))
		}
		return 2
	}

	settings, err := config.Load(g.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if settings.Verbose {
		ilog.SetLevel(ilog.LevelDebug)
	}

	if !out.IsTerminal() {
		ilog.Debug("stdout is not a terminal; writing escape sequences anyway")
	}

	e := &env{out: out, stdin: stdin, stderr: stderr, settings: settings}
	if err := cmd.run(e, rest[1:]); err != nil {
		var ue usageError
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.As(err, &ue), iterm2.IsContractViolation(err):
			fmt.Fprintf(stderr, "iterm2 %s: %v\n", name, err)
			fmt.Fprintf(stderr, "usage: iterm2 %s %s\n", name, cmd.usage)
			return 2
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	return 0
}
