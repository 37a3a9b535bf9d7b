package sprite

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Sprite is an immutable piece of multi-line art.
type Sprite struct {
	Name   string
	Lines  []string
	Width  int // Widest line, in terminal cells
	Height int // Number of lines
	Style  tcell.Style
}

var (
	// Walking holds the two alternating walking poses, facing right.
	Walking = [2]Sprite{MustLoad("walk_0"), MustLoad("walk_1")}
	// Sitting is drawn while the dog pauses halfway across.
	Sitting = MustLoad("sitting")
	// Droppings is left behind below the sitting dog.
	Droppings = MustLoadStyled("droppings",
		tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 69, 19)))
)

// Parse splits art into lines and measures it. A single trailing newline is
// ignored; carriage returns are stripped.
func Parse(art string) Sprite {
	art = strings.ReplaceAll(art, "\r\n", "\n")
	art = strings.TrimSuffix(art, "\n")
	if art == "" {
		return Sprite{Style: tcell.StyleDefault}
	}

	lines := strings.Split(art, "\n")
	width := 0
	for _, line := range lines {
		if w := Width(line); w > width {
			width = w
		}
	}
	return Sprite{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
		Style:  tcell.StyleDefault,
	}
}

// String joins the sprite lines back into multi-line art.
func (s Sprite) String() string {
	return strings.Join(s.Lines, "\n")
}

// Padded returns the lines right-padded with spaces to the sprite width,
// so every line covers the same columns.
func (s Sprite) Padded() []string {
	out := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		if pad := s.Width - Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}
