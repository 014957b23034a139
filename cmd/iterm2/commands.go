// ABOUTME: Subcommand registry and the single-shot escape subcommands
// ABOUTME: Each entry maps a name to its usage line and run function

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/iterm2-go/pkg/iterm2"
)

type command struct {
	usage   string
	summary string
	run     func(e *env, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"show":             {"[flags] [FILE|-]...", "Display images inline", runShow},
		"download":         {"[flags] [FILE|-]...", "Offer files as downloads", runDownload},
		"annotate":         {"[flags] MESSAGE...", "Add an annotation at the cursor", runAnnotate},
		"link":             {"URL [TEXT...]", "Print a clickable link", runLink},
		"cursor":           {"block|bar|underline", "Set the cursor shape", runCursor},
		"mark":             {"", "Set a mark at the current line", noArgs(iterm2.SetMark)},
		"focus":            {"", "Bring iTerm2 to the foreground", noArgs(iterm2.StealFocus)},
		"clear-scrollback": {"", "Erase the scrollback history", noArgs(iterm2.ClearScrollback)},
		"cwd":              {"[DIR]", "Report the current directory", runCwd},
		"notify":           {"MESSAGE...", "Post a notification", runNotify},
		"copy":             {"[TEXT...]", "Copy text (or stdin) to the clipboard", runCopy},
		"tab-color":        {"#RRGGBB | R G B", "Set the tab color", runTabColor},
		"tab-reset":        {"", "Restore the default tab color", noArgs(iterm2.RestoreTabColors)},
		"palette":          {"KEY=RRGGBB|preset=NAME...", "Change palette colors", runPalette},
		"guide":            {"on|off", "Show or hide the cursor guide", runGuide},
		"attention":        {"yes|no|fireworks", "Request attention", runAttention},
		"background":       {"[PATH]", "Set (or clear) the background image", runBackground},
		"keylabel":         {"KEY LABEL | push [NAME] | pop [NAME]", "Manage touch bar labels", runKeyLabel},
		"unicode":          {"VERSION", "Set the Unicode version", runUnicode},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: iterm2 [-config FILE] [-v] COMMAND [ARGS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-17s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "  %-17s %s\n", "version", "Print version information")
}

func noArgs(fn func(io.Writer) error) func(*env, []string) error {
	return func(e *env, args []string) error {
		if len(args) != 0 {
			return usagef("takes no arguments")
		}
		return fn(e.out)
	}
}

func runLink(e *env, args []string) error {
	if len(args) == 0 {
		return usagef("missing URL")
	}
	text := args[0]
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	}
	return iterm2.Anchor(e.out, args[0], text)
}

func runCursor(e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one shape")
	}
	var shape iterm2.CursorShape
	switch args[0] {
	case "block":
		shape = iterm2.CursorBlock
	case "bar":
		shape = iterm2.CursorVerticalBar
	case "underline":
		shape = iterm2.CursorUnderline
	default:
		return usagef("unknown cursor shape %q", args[0])
	}
	return iterm2.SetCursorShape(e.out, shape)
}

func runCwd(e *env, args []string) error {
	switch len(args) {
	case 0:
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		return iterm2.SetCurrentDir(e.out, dir)
	case 1:
		return iterm2.SetCurrentDir(e.out, args[0])
	default:
		return usagef("expected at most one directory")
	}
}

func runNotify(e *env, args []string) error {
	if len(args) == 0 {
		return usagef("missing message")
	}
	return iterm2.SendNotification(e.out, strings.Join(args, " "))
}

func runCopy(e *env, args []string) error {
	if len(args) > 0 {
		return iterm2.SetClipboard(e.out, strings.Join(args, " "))
	}
	data, err := io.ReadAll(e.stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return iterm2.SetClipboard(e.out, strings.TrimSuffix(string(data), "\n"))
}

func runTabColor(e *env, args []string) error {
	switch len(args) {
	case 1:
		hex := args[0]
		if !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return usagef("invalid color %q: %v", args[0], err)
		}
		return iterm2.SetTabColor(e.out, c)
	case 3:
		var rgb [3]uint8
		for i, a := range args {
			n, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return usagef("invalid color component %q", a)
			}
			rgb[i] = uint8(n)
		}
		return iterm2.SetTabColors(e.out, rgb[0], rgb[1], rgb[2])
	default:
		return usagef("expected #RRGGBB or R G B")
	}
}

func runPalette(e *env, args []string) error {
	if len(args) == 0 {
		return usagef("missing palette entries")
	}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" || value == "" {
			return usagef("invalid palette entry %q", arg)
		}
		if key == "preset" {
			if err := iterm2.SetColorPalette(e.out, arg); err != nil {
				return err
			}
			continue
		}
		c, err := colorful.Hex("#" + strings.TrimPrefix(value, "#"))
		if err != nil {
			return usagef("invalid color in %q: %v", arg, err)
		}
		if err := iterm2.SetColors(e.out, iterm2.ColorKey(key), c); err != nil {
			return err
		}
	}
	return nil
}

func runGuide(e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected on or off")
	}
	switch args[0] {
	case "on", "yes", "true":
		return iterm2.CursorGuide(e.out, true)
	case "off", "no", "false":
		return iterm2.CursorGuide(e.out, false)
	default:
		return usagef("expected on or off, got %q", args[0])
	}
}

func runAttention(e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected yes, no, or fireworks")
	}
	for _, kind := range []iterm2.AttentionType{iterm2.AttentionYes, iterm2.AttentionNo, iterm2.AttentionFireworks} {
		if args[0] == kind.String() {
			return iterm2.Attention(e.out, kind)
		}
	}
	return usagef("unknown attention type %q", args[0])
}

func runBackground(e *env, args []string) error {
	switch len(args) {
	case 0:
		return iterm2.SetBackgroundImage(e.out, "")
	case 1:
		return iterm2.SetBackgroundImage(e.out, args[0])
	default:
		return usagef("expected at most one path")
	}
}

func runKeyLabel(e *env, args []string) error {
	if len(args) == 0 {
		return usagef("missing arguments")
	}
	switch args[0] {
	case "push", "pop":
		if len(args) > 2 {
			return usagef("%s takes at most one name", args[0])
		}
		push := args[0] == "push"
		if len(args) == 1 {
			if push {
				return iterm2.PushCurrentTouchbarLabels(e.out)
			}
			return iterm2.PopCurrentTouchbarLabels(e.out)
		}
		if push {
			return iterm2.PushTouchbarLabel(e.out, args[1])
		}
		return iterm2.PopTouchbarLabel(e.out, args[1])
	default:
		if len(args) < 2 {
			return usagef("missing label for key %q", args[0])
		}
		return iterm2.SetTouchbarKeyLabel(e.out, args[0], strings.Join(args[1:], " "))
	}
}

func runUnicode(e *env, args []string) error {
	if len(args) != 1 {
		return usagef("expected one version number")
	}
	v, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return usagef("invalid unicode version %q", args[0])
	}
	return iterm2.SetUnicodeVersion(e.out, uint8(v))
}
