package sprite

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cells measures runes in terminal cells. Ambiguous-width characters are
// narrow regardless of the locale the daemon inherits.
var cells = &runewidth.Condition{EastAsianWidth: false}

// Width returns the display width of a single line in terminal cells.
func Width(line string) int {
	return cells.StringWidth(line)
}

// TrimEnd keeps the first width cells of every line of s, dropping trailing
// characters. Lines that already fit are unchanged.
func TrimEnd(s string, width int) string {
	return mapLines(s, func(line string) string {
		return keepFirst(line, width)
	})
}

// TrimStart keeps the last width cells of every line of s, dropping leading
// characters. Lines that already fit are unchanged.
func TrimStart(s string, width int) string {
	return mapLines(s, func(line string) string {
		return keepLast(line, width)
	})
}

func mapLines(s string, fn func(string) string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = fn(line)
	}
	return strings.Join(lines, "\n")
}

// keepFirst never splits a wide rune; the result may be one cell short.
func keepFirst(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(line) <= width {
		return line
	}

	used := 0
	for i, r := range line {
		w := cells.RuneWidth(r)
		if used+w > width {
			return line[:i]
		}
		used += w
	}
	return line
}

func keepLast(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(line) <= width {
		return line
	}

	runes := []rune(line)
	used := 0
	start := len(runes)
	for start > 0 {
		w := cells.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}
	return string(runes[start:])
}
