package ui

import (
	"bufio"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// Pre-built escape sequences.
var (
	csi           = []byte("\x1b[")
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// DECSC/DECRC save and restore the cursor the user left behind.
	escCursorSave    = []byte("\x1b7")
	escCursorRestore = []byte("\x1b8")

	csiFgRGB    = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiAttrBold = []byte("\x1b[1m")
	csiAttrDim  = []byte("\x1b[2m")
)

// writeCursorPos writes CUP for a 1-based column and row.
func writeCursorPos(w *bufio.Writer, x, y int) {
	var buf [24]byte
	b := append(buf[:0], csi...)
	b = strconv.AppendInt(b, int64(max(y, 1)), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(max(x, 1)), 10)
	b = append(b, 'H')
	w.Write(b)
}

// writeStyle writes the SGR sequences for a style. It writes nothing for
// the default style and reports whether anything was written.
func writeStyle(w *bufio.Writer, style tcell.Style) bool {
	fg, _, attrs := style.Decompose()
	wrote := false

	if attrs&tcell.AttrBold != 0 {
		w.Write(csiAttrBold)
		wrote = true
	}
	if attrs&tcell.AttrDim != 0 {
		w.Write(csiAttrDim)
		wrote = true
	}
	if fg != tcell.ColorDefault && fg.Valid() {
		r, g, b := fg.RGB()
		var buf [32]byte
		seq := append(buf[:0], csiFgRGB...)
		seq = strconv.AppendInt(seq, int64(r), 10)
		seq = append(seq, ';')
		seq = strconv.AppendInt(seq, int64(g), 10)
		seq = append(seq, ';')
		seq = strconv.AppendInt(seq, int64(b), 10)
		seq = append(seq, 'm')
		w.Write(seq)
		wrote = true
	}
	return wrote
}
