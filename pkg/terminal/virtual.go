// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output in a buffer, counts writes, and can simulate write failures.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
type VirtualTerminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	tty      bool
	writes   int
	writeErr error
}

// NewVirtualTerminal returns a VirtualTerminal that reports itself as a
// terminal.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{tty: true}
}

// IsTerminal reports the configured tty flag.
func (v *VirtualTerminal) IsTerminal() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.tty
}

// Write appends data to the internal buffer, or fails with the error set
// by FailWrites.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writes++
	if v.writeErr != nil {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and write count.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = 0
}

// WriteCount returns how many times Write was called.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// SetTerminal changes what IsTerminal reports.
func (v *VirtualTerminal) SetTerminal(tty bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.tty = tty
}

// FailWrites makes every subsequent Write return err. A nil err restores
// normal behavior.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}
