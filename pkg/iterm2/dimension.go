// ABOUTME: Dimension value type for iTerm2 image width/height parameters
// ABOUTME: Serializes to auto, <n>px, <n> (cells), or <n>%; percent is bounded to 100

package iterm2

import (
	"fmt"
	"strconv"
	"strings"
)

type dimensionKind uint8

const (
	kindAuto dimensionKind = iota
	kindPixel
	kindCells
	kindPercent
)

// Dimension specifies how large an image should be rendered.
// The zero value is Auto.
type Dimension struct {
	kind  dimensionKind
	value uint32
}

// Auto lets the terminal choose the size.
var Auto = Dimension{}

// Pixel is an absolute number of pixels.
func Pixel(n uint32) Dimension {
	return Dimension{kind: kindPixel, value: n}
}

// Cells is a number of terminal character cells.
func Cells(n uint32) Dimension {
	return Dimension{kind: kindCells, value: n}
}

// Percent is a share of the session's width or height.
// It panics with a *ContractError if p is greater than 100.
func Percent(p uint8) Dimension {
	if p > 100 {
		panic(&ContractError{
			Op:     "Percent",
			Reason: fmt.Sprintf("%d is greater than 100", p),
			Err:    ErrPercentOutOfRange,
		})
	}
	return Dimension{kind: kindPercent, value: uint32(p)}
}

// String returns the protocol form of d.
func (d Dimension) String() string {
	switch d.kind {
	case kindPixel:
		return strconv.FormatUint(uint64(d.value), 10) + "px"
	case kindCells:
		return strconv.FormatUint(uint64(d.value), 10)
	case kindPercent:
		return strconv.FormatUint(uint64(d.value), 10) + "%"
	default:
		return "auto"
	}
}

// ParseDimension parses the textual forms produced by Dimension.String.
// Percentages above 100 are rejected, never clamped.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "auto"):
		return Auto, nil
	case strings.HasSuffix(s, "px"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "px"), 10, 32)
		if err != nil {
			return Auto, fmt.Errorf("parsing pixel dimension %q: %w", s, err)
		}
		return Pixel(uint32(n)), nil
	case strings.HasSuffix(s, "%"):
		n, err := strconv.ParseUint(strings.TrimSuffix(s, "%"), 10, 32)
		if err != nil {
			return Auto, fmt.Errorf("parsing percent dimension %q: %w", s, err)
		}
		if n > 100 {
			return Auto, fmt.Errorf("parsing percent dimension %q: %w", s, ErrPercentOutOfRange)
		}
		return Percent(uint8(n)), nil
	default:
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return Auto, fmt.Errorf("parsing cell dimension %q: %w", s, err)
		}
		return Cells(uint32(n)), nil
	}
}
