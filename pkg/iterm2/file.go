// ABOUTME: File builder for the iTerm2 inline images / file transfer protocol
// ABOUTME: Emits OSC 1337 File=[key=value;]*inline=N;:<base64> BEL to an io.Writer

package iterm2

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	filePrefix    = "\x1b]1337;File="
	fileSeparator = ':'
	bel           = '\a'
)

// File is a builder for drawing images in the terminal or offering them
// as downloads. Zero-valued optional fields are left out of the sequence.
//
//	f, err := iterm2.ReadFile("divider.png")
//	if err != nil {
//		return err
//	}
//	return f.Width(iterm2.Percent(100)).
//		Height(iterm2.Pixel(1)).
//		PreserveAspectRatio(false).
//		Show(os.Stdout)
type File struct {
	name                *string
	size                *uint64
	width               *Dimension
	height              *Dimension
	preserveAspectRatio *bool
	contents            []byte
}

// NewFile returns a builder for contents. The slice is not copied and
// must not be modified until Show or Download returns.
func NewFile(contents []byte) *File {
	return &File{contents: contents}
}

// ReadFile reads the whole file at path into a new builder.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}
	return NewFile(data), nil
}

// NewFileFromReader reads r to EOF into a new builder.
func NewFileFromReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}
	return NewFile(data), nil
}

// Name sets the file name shown for downloads. The terminal defaults to
// "Unnamed file" when unset. The value is written verbatim; see EncodeName.
func (f *File) Name(name string) *File {
	f.name = &name
	return f
}

// Size sets the file size in bytes, used by the terminal for the
// download progress indicator.
func (f *File) Size(n uint64) *File {
	f.size = &n
	return f
}

// Width sets the rendered width.
func (f *File) Width(d Dimension) *File {
	f.width = &d
	return f
}

// Height sets the rendered height.
func (f *File) Height(d Dimension) *File {
	f.height = &d
	return f
}

// PreserveAspectRatio sets whether the image keeps its aspect ratio.
func (f *File) PreserveAspectRatio(preserve bool) *File {
	f.preserveAspectRatio = &preserve
	return f
}

// Len returns the payload length in bytes.
func (f *File) Len() int {
	return len(f.contents)
}

// Bytes returns the payload. It aliases the builder's contents.
func (f *File) Bytes() []byte {
	return f.contents
}

// Encode returns the complete escape sequence without writing it.
func (f *File) Encode(inline bool) []byte {
	var buf bytes.Buffer
	buf.Grow(len(filePrefix) + 96 + base64.StdEncoding.EncodedLen(len(f.contents)))

	buf.WriteString(filePrefix)
	if f.name != nil {
		writeParam(&buf, "name", *f.name)
	}
	if f.size != nil {
		writeParam(&buf, "size", strconv.FormatUint(*f.size, 10))
	}
	if f.width != nil {
		writeParam(&buf, "width", f.width.String())
	}
	if f.height != nil {
		writeParam(&buf, "height", f.height.String())
	}
	if f.preserveAspectRatio != nil {
		writeParam(&buf, "preserveAspectRatio", boolFlag(*f.preserveAspectRatio))
	}
	writeParam(&buf, "inline", boolFlag(inline))

	buf.WriteByte(fileSeparator)
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	_, _ = enc.Write(f.contents) // bytes.Buffer writes cannot fail
	_ = enc.Close()
	buf.WriteByte(bel)

	return buf.Bytes()
}

// Download offers the file to the user without displaying it.
func (f *File) Download(w io.Writer) error {
	if _, err := w.Write(f.Encode(false)); err != nil {
		return fmt.Errorf("writing file sequence: %w", err)
	}
	return nil
}

// Show displays the image inline, followed by a newline.
func (f *File) Show(w io.Writer) error {
	seq := f.Encode(true)
	seq = append(seq, '\n')
	if _, err := w.Write(seq); err != nil {
		return fmt.Errorf("writing image sequence: %w", err)
	}
	return nil
}

// EncodeName base64-encodes a file name the way iTerm2's imgcat does.
func EncodeName(name string) string {
	return base64.StdEncoding.EncodeToString([]byte(name))
}

func writeParam(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteByte('=')
	buf.WriteString(value)
	buf.WriteByte(';')
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
