// ABOUTME: ProcessTerminal implements Terminal over an *os.File (stdout by default).
// ABOUTME: Serializes writes with a mutex and answers tty queries via golang.org/x/term.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an *os.File and x/term.
type ProcessTerminal struct {
	mu  sync.Mutex
	out *os.File
}

// NewProcessTerminal returns a ProcessTerminal writing to os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal writing to f.
func NewFileTerminal(f *os.File) *ProcessTerminal {
	return &ProcessTerminal{out: f}
}

// IsTerminal reports whether the output file is a terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Write sends p to the output file. Concurrent writers are serialized.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}
