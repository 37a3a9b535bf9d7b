// Package ui writes cursor-addressed frames to a terminal that the program
// does not own: it never clears the screen, only the cells it drew.
package ui

import (
	"bufio"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Screen buffers escape sequences and text for a terminal stream.
// Write errors are sticky and surface from End.
type Screen struct {
	out *bufio.Writer
}

// NewScreen creates a screen writing to w.
func NewScreen(w io.Writer) *Screen {
	return &Screen{out: bufio.NewWriter(w)}
}

// Begin saves the user's cursor and hides it for the duration of a frame.
func (s *Screen) Begin() {
	s.out.Write(escCursorSave)
	s.out.Write(csiCursorHide)
}

// End restores the cursor, shows it again and flushes the frame.
func (s *Screen) End() error {
	s.out.Write(escCursorRestore)
	s.out.Write(csiCursorShow)
	return s.out.Flush()
}

// MoveTo positions the cursor at a 1-based column and row.
func (s *Screen) MoveTo(x, y int) {
	writeCursorPos(s.out, x, y)
}

// Print writes text at the cursor.
func (s *Screen) Print(text string) {
	s.out.WriteString(text)
}

// PrintStyled writes text at the cursor in the given style, resetting
// attributes afterwards.
func (s *Screen) PrintStyled(text string, style tcell.Style) {
	if !writeStyle(s.out, style) {
		s.out.WriteString(text)
		return
	}
	s.out.WriteString(text)
	s.out.Write(csiSGR0)
}

// Blank overwrites n cells starting at the cursor with spaces.
func (s *Screen) Blank(n int) {
	if n > 0 {
		s.out.WriteString(strings.Repeat(" ", n))
	}
}
