// ABOUTME: Defines the Terminal sink that escape sequences are written to.
// ABOUTME: Implementations target the process stdout or an in-memory virtual terminal.

package terminal

import "io"

// Terminal is an output sink for escape sequences. Write must deliver
// each call's bytes contiguously so two sequences never interleave.
type Terminal interface {
	io.Writer
	IsTerminal() bool
}
