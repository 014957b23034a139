// ABOUTME: annotate subcommand: builds an Annotation from flags and writes it
// ABOUTME: -over TEXT sizes the annotation to TEXT's display width and prints TEXT after it

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/iterm2-go/internal/width"
	"github.com/mauromedda/iterm2-go/pkg/iterm2"
)

func runAnnotate(e *env, args []string) error {
	var (
		length int
		x, y   int
		hidden bool
		over   string
	)

	fs := newFlagSet(e, "annotate")
	fs.IntVar(&length, "length", -1, "Number of cells the annotation covers")
	fs.IntVar(&x, "x", -1, "Column of the annotated range (requires -length and -y)")
	fs.IntVar(&y, "y", -1, "Row of the annotated range (requires -length and -x)")
	fs.BoolVar(&hidden, "hidden", false, "Add the annotation hidden")
	fs.StringVar(&over, "over", "", "Print TEXT after the annotation and cover its width")

	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("missing message")
	}
	for _, f := range []struct {
		name  string
		value int
	}{{"-length", length}, {"-x", x}, {"-y", y}} {
		if f.value < -1 {
			return usagef("%s must not be negative, got %d", f.name, f.value)
		}
	}
	if (x < 0) != (y < 0) {
		return usagef("-x and -y must be given together")
	}
	if over != "" && length < 0 {
		length = width.VisibleWidth(over)
	}

	a := iterm2.NewAnnotation(strings.Join(fs.Args(), " ")).Hidden(hidden)
	if length >= 0 {
		a.Length(uint(length))
	}
	if x >= 0 {
		a.Coords(uint(x), uint(y))
	}

	if err := a.Show(e.out); err != nil {
		return err
	}
	if over != "" {
		if _, err := io.WriteString(e.out, over); err != nil {
			return fmt.Errorf("writing annotated text: %w", err)
		}
	}
	return nil
}
