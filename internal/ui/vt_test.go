package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samdwyer/termdog/internal/sprite"
)

// vt is a minimal terminal model for the sequences Screen emits.
type vt struct {
	width, height int
	cells         map[[2]int]rune
	x, y          int
	savedX        int
	savedY        int
	outOfBounds   int
	hidden        bool
}

func newVT(width, height int) *vt {
	return &vt{width: width, height: height, cells: make(map[[2]int]rune), x: 1, y: 1}
}

func (v *vt) feed(data string) {
	for i := 0; i < len(data); {
		if data[i] == 0x1b && i+1 < len(data) {
			switch data[i+1] {
			case '7':
				v.savedX, v.savedY = v.x, v.y
				i += 2
				continue
			case '8':
				v.x, v.y = v.savedX, v.savedY
				i += 2
				continue
			case '[':
				j := i + 2
				for j < len(data) && (data[j] < 0x40 || data[j] > 0x7e) {
					j++
				}
				v.csi(data[i+2:j], data[j])
				i = j + 1
				continue
			}
		}

		r, size := utf8.DecodeRuneInString(data[i:])
		if v.x < 1 || v.x > v.width || v.y < 1 || v.y > v.height {
			v.outOfBounds++
		}
		v.cells[[2]int{v.x, v.y}] = r
		v.x += sprite.Width(string(r))
		i += size
	}
}

func (v *vt) csi(params string, final byte) {
	switch {
	case final == 'H':
		parts := strings.SplitN(params, ";", 2)
		v.y, _ = strconv.Atoi(parts[0])
		v.x, _ = strconv.Atoi(parts[1])
	case params == "?25l":
		v.hidden = true
	case params == "?25h":
		v.hidden = false
	}
}

// row returns the cells of row y from column x, count cells long.
// Unwritten cells read as '.'.
func (v *vt) row(x, y, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		r, ok := v.cells[[2]int{x + i, y}]
		if !ok {
			r = '.'
		}
		b.WriteRune(r)
	}
	return b.String()
}
