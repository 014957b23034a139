// ABOUTME: Global and per-subcommand flag parsing using stdlib flag package
// ABOUTME: Supports --config and -v globally; optionalBool tracks whether a flag was given

package main

import (
	"flag"
	"io"
	"strconv"
)

type globalArgs struct {
	configPath string
	verbose    bool
	remaining  []string
}

func parseGlobal(args []string, stderr io.Writer) (globalArgs, error) {
	var g globalArgs

	fs := flag.NewFlagSet("iterm2", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.StringVar(&g.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/iterm2/config.yaml)")
	fs.BoolVar(&g.verbose, "v", false, "Verbose logging to stderr")

	if err := fs.Parse(args); err != nil {
		return g, err
	}
	g.remaining = fs.Args()
	return g, nil
}

// newFlagSet returns a subcommand flag set that reports errors instead
// of exiting.
func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parseFlags wraps flag errors (other than -h) as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return usageError{msg: err.Error()}
	}
	return nil
}

// optionalBool is a bool flag that remembers whether it was set.
type optionalBool struct {
	value bool
	set   bool
}

func (b *optionalBool) String() string {
	if b == nil || !b.set {
		return ""
	}
	return strconv.FormatBool(b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = v
	b.set = true
	return nil
}

func (b *optionalBool) IsBoolFlag() bool { return true }
