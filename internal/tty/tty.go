//go:build unix

// Package tty wraps the terminal descriptor the daemon writes to.
package tty

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Fallback dimensions when the size cannot be queried.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Terminal is an output terminal with a raw-mode lifecycle.
type Terminal struct {
	file     *os.File
	fd       int
	rawState *term.State
}

// New wraps an open terminal file.
func New(f *os.File) *Terminal {
	return &Terminal{file: f, fd: int(f.Fd())}
}

// IsTerminal reports whether the descriptor refers to a terminal.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(t.fd)
}

// MakeRaw switches the terminal to raw mode. Calling it twice is a no-op.
func (t *Terminal) MakeRaw() error {
	if t.rawState != nil {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// Restore leaves raw mode.
func (t *Terminal) Restore() error {
	if t.rawState == nil {
		return nil
	}
	if err := term.Restore(t.fd, t.rawState); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	t.rawState = nil
	return nil
}

// Size returns the terminal dimensions in columns and rows.
func (t *Terminal) Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackWidth, fallbackHeight
	}
	return int(ws.Col), int(ws.Row)
}

// Write writes directly to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.file.Write(p)
}

// Close releases the descriptor.
func (t *Terminal) Close() error {
	return t.file.Close()
}
