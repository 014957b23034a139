// ABOUTME: Single-shot iTerm2 escape codes: links, cursor, marks, clipboard, tabs, touchbar
// ABOUTME: Each function formats one sequence and writes it to the given io.Writer

package iterm2

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// CursorShape is the shape of the text cursor.
type CursorShape int

const (
	CursorBlock       CursorShape = iota // solid block
	CursorVerticalBar                    // thin vertical line
	CursorUnderline                      // thin horizontal line
)

// AttentionType selects a RequestAttention action.
type AttentionType int

const (
	AttentionYes       AttentionType = iota // start bouncing the dock icon
	AttentionNo                             // stop bouncing
	AttentionFireworks                      // show fireworks at the cursor
)

func (a AttentionType) String() string {
	switch a {
	case AttentionYes:
		return "yes"
	case AttentionNo:
		return "no"
	case AttentionFireworks:
		return "fireworks"
	default:
		return "AttentionType(" + strconv.Itoa(int(a)) + ")"
	}
}

// ColorKey names an entry of the session color palette.
type ColorKey string

const (
	ColorForeground ColorKey = "fg"
	ColorBackground ColorKey = "bg"
	ColorBold       ColorKey = "bold"
	ColorLink       ColorKey = "link"
	ColorSelection  ColorKey = "selbg"
	ColorSelectedFg ColorKey = "selfg"
	ColorCursor     ColorKey = "curbg"
	ColorCursorText ColorKey = "curfg"
	ColorUnderline  ColorKey = "underline"
	ColorTab        ColorKey = "tab"
	ColorBlack      ColorKey = "black"
	ColorRed        ColorKey = "red"
	ColorGreen      ColorKey = "green"
	ColorYellow     ColorKey = "yellow"
	ColorBlue       ColorKey = "blue"
	ColorMagenta    ColorKey = "magenta"
	ColorCyan       ColorKey = "cyan"
	ColorWhite      ColorKey = "white"
)

func write(w io.Writer, seq string) error {
	if _, err := io.WriteString(w, seq); err != nil {
		return fmt.Errorf("writing escape sequence: %w", err)
	}
	return nil
}

func osc1337(w io.Writer, body string) error {
	return write(w, ansi.ITerm2(body))
}

// Anchor writes a clickable link showing text.
func Anchor(w io.Writer, url, text string) error {
	return write(w, ansi.SetHyperlink(url)+text+ansi.ResetHyperlink())
}

// SetCursorShape sets the shape of the cursor.
func SetCursorShape(w io.Writer, shape CursorShape) error {
	return osc1337(w, "CursorShape="+strconv.Itoa(int(shape)))
}

// SetMark sets a mark at the current line.
func SetMark(w io.Writer) error {
	return osc1337(w, "SetMark")
}

// StealFocus asks iTerm2 to become the focused application.
func StealFocus(w io.Writer) error {
	return osc1337(w, "StealFocus")
}

// ClearScrollback erases the scrollback history.
func ClearScrollback(w io.Writer) error {
	return osc1337(w, "ClearScrollback")
}

// SetCurrentDir reports the session's current working directory.
func SetCurrentDir(w io.Writer, dir string) error {
	return osc1337(w, "CurrentDir="+dir)
}

// SendNotification posts a system notification.
func SendNotification(w io.Writer, message string) error {
	return write(w, ansi.Notify(message))
}

// SetClipboard copies text to the general pasteboard.
func SetClipboard(w io.Writer, text string) error {
	return write(w, ansi.ITerm2("CopyToClipboard=")+text+"\n"+ansi.ITerm2("EndCopy"))
}

// SetTabColors sets the tab color to the given RGB components.
func SetTabColors(w io.Writer, red, green, blue uint8) error {
	seq := fmt.Sprintf("\x1b]6;1;bg;red;brightness;%d\a"+
		"\x1b]6;1;bg;green;brightness;%d\a"+
		"\x1b]6;1;bg;blue;brightness;%d\a", red, green, blue)
	return write(w, seq)
}

// SetTabColor sets the tab color from c, clamped to the sRGB gamut.
func SetTabColor(w io.Writer, c colorful.Color) error {
	r, g, b := c.Clamped().RGB255()
	return SetTabColors(w, r, g, b)
}

// RestoreTabColors resets the tab color to the profile default.
func RestoreTabColors(w io.Writer) error {
	return write(w, "\x1b]6;1;bg;*;default\a")
}

// SetColorPalette sends a raw SetColors value such as "fg=ff0000".
// See "Change the color palette" in the iTerm2 escape code documentation.
func SetColorPalette(w io.Writer, colors string) error {
	return osc1337(w, "SetColors="+colors)
}

// SetColors changes one palette entry.
func SetColors(w io.Writer, key ColorKey, c colorful.Color) error {
	return SetColorPalette(w, string(key)+"="+c.Clamped().Hex()[1:])
}

// CursorGuide shows or hides the cursor guide.
func CursorGuide(w io.Writer, show bool) error {
	value := "no"
	if show {
		value = "yes"
	}
	return osc1337(w, "HighlightCursorLine="+value)
}

// Attention requests the user's attention.
func Attention(w io.Writer, kind AttentionType) error {
	return osc1337(w, "RequestAttention="+kind.String())
}

// SetBackgroundImage sets the session background to the image at path.
// An empty path removes the background image.
func SetBackgroundImage(w io.Writer, path string) error {
	return osc1337(w, "SetBackgroundImageFile="+base64.StdEncoding.EncodeToString([]byte(path)))
}

// SetTouchbarKeyLabel sets the label of a touch bar function key.
func SetTouchbarKeyLabel(w io.Writer, key, value string) error {
	return osc1337(w, "SetKeyLabel="+key+"="+value)
}

// PushCurrentTouchbarLabels saves the current touch bar labels.
func PushCurrentTouchbarLabels(w io.Writer) error {
	return osc1337(w, "PushKeyLabels")
}

// PopCurrentTouchbarLabels restores the last saved touch bar labels.
func PopCurrentTouchbarLabels(w io.Writer) error {
	return osc1337(w, "PopKeyLabels")
}

// PushTouchbarLabel saves the touch bar labels under label.
func PushTouchbarLabel(w io.Writer, label string) error {
	return osc1337(w, "PushKeyLabels="+label)
}

// PopTouchbarLabel restores the touch bar labels saved under label.
func PopTouchbarLabel(w io.Writer, label string) error {
	return osc1337(w, "PopKeyLabels="+label)
}

// SetUnicodeVersion sets the Unicode version used for character widths.
func SetUnicodeVersion(w io.Writer, version uint8) error {
	return osc1337(w, "UnicodeVersion="+strconv.Itoa(int(version)))
}
