// ABOUTME: Annotation builder for iTerm2 AddAnnotation / AddHiddenAnnotation
// ABOUTME: Picks one of three value layouts depending on which optional fields are set

package iterm2

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
)

// Annotation is a builder for terminal annotations.
type Annotation struct {
	message string
	length  *uint
	coords  *[2]uint
	hidden  bool
}

// NewAnnotation returns an annotation carrying message.
func NewAnnotation(message string) *Annotation {
	return &Annotation{message: message}
}

// Length sets how many cells the annotation covers.
func (a *Annotation) Length(n uint) *Annotation {
	a.length = &n
	return a
}

// Coords anchors the annotation at column x, row y. It requires Length.
func (a *Annotation) Coords(x, y uint) *Annotation {
	a.coords = &[2]uint{x, y}
	return a
}

// Hidden controls whether the annotation starts hidden.
func (a *Annotation) Hidden(hide bool) *Annotation {
	a.hidden = hide
	return a
}

// Encode returns the escape sequence for a. Coordinates without a length
// yield a *ContractError wrapping ErrCoordinatesWithoutLength.
func (a *Annotation) Encode() (string, error) {
	var value string
	switch {
	case a.length == nil && a.coords == nil:
		value = a.message
	case a.length != nil && a.coords == nil:
		value = strconv.FormatUint(uint64(*a.length), 10) + "|" + a.message
	case a.length != nil && a.coords != nil:
		value = fmt.Sprintf("%s|%d|%d|%d", a.message, *a.length, a.coords[0], a.coords[1])
	default:
		return "", &ContractError{
			Op:     "Annotation.Show",
			Reason: fmt.Sprintf("coords (%d,%d) set without length", a.coords[0], a.coords[1]),
			Err:    ErrCoordinatesWithoutLength,
		}
	}

	key := "AddAnnotation"
	if a.hidden {
		key = "AddHiddenAnnotation"
	}
	return ansi.ITerm2(key + "=" + value), nil
}

// Show writes the annotation. Nothing is written when the combination of
// fields is invalid.
func (a *Annotation) Show(w io.Writer) error {
	seq, err := a.Encode()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, seq); err != nil {
		return fmt.Errorf("writing annotation sequence: %w", err)
	}
	return nil
}
