package ui

import (
	"strings"

	"github.com/samdwyer/termdog/internal/sprite"
	"github.com/samdwyer/termdog/internal/world"
)

// Placement is a sprite drawn with its top-left corner at X, Y.
type Placement struct {
	Sprite sprite.Sprite
	X, Y   int
}

// Rect returns the cells the placement covers.
func (p Placement) Rect() world.Rect {
	return world.Rect{X: p.X, Y: p.Y, Width: p.Sprite.Width, Height: p.Sprite.Height}
}

// Renderer draws sprites onto a Screen, clipped to the terminal bounds.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Frame draws one animation frame: it clears what prev left behind, except
// its bottom (ground) row which cur overdraws, then draws cur. prev may be
// nil for the first frame.
func (r *Renderer) Frame(b world.Bounds, prev *Placement, cur Placement) error {
	r.screen.Begin()
	if prev != nil {
		area := prev.Rect()
		area.Height--
		r.Clear(b, area)
	}
	r.Draw(b, cur)
	return r.screen.End()
}

// Clear blanks the on-screen part of area.
func (r *Renderer) Clear(b world.Bounds, area world.Rect) {
	area = b.Clip(area)
	if area.Empty() {
		return
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		r.screen.MoveTo(area.X, y)
		r.screen.Blank(area.Width)
	}
}

// Draw writes a sprite, trimming columns left of column 1 or reaching the
// right-most column. Rows off screen are skipped.
func (r *Renderer) Draw(b world.Bounds, p Placement) {
	lines, x := clipLines(b, p)
	for i, line := range lines {
		y := p.Y + i
		if line == "" || y < 1 || y > b.Height {
			continue
		}
		r.screen.MoveTo(x, y)
		r.screen.PrintStyled(line, p.Sprite.Style)
	}
}

// DrawGlyph writes a single-line sprite only if it fits on screen whole.
func (r *Renderer) DrawGlyph(b world.Bounds, p Placement) bool {
	if !b.Contains(p.X, p.Y) || !b.Contains(p.X+p.Sprite.Width-1, p.Y) {
		return false
	}
	r.screen.MoveTo(p.X, p.Y)
	r.screen.PrintStyled(p.Sprite.String(), p.Sprite.Style)
	return true
}

// clipLines returns the visible part of each sprite line and the column
// the lines start at. The last terminal column is left free so the
// terminal never auto-wraps.
func clipLines(b world.Bounds, p Placement) ([]string, int) {
	x := p.X
	text := p.Sprite.String()

	if x < 1 {
		hidden := 1 - x
		text = sprite.TrimStart(strings.Join(p.Sprite.Padded(), "\n"), p.Sprite.Width-hidden)
		x = 1
	}

	return strings.Split(sprite.TrimEnd(text, b.Width-x), "\n"), x
}
