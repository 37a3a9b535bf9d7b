// Package world provides terminal geometry: bounds and clipped rectangles.
package world

// Bounds holds the terminal dimensions for the duration of one walk.
// Coordinates inside the terminal are 1-based.
type Bounds struct {
	Width, Height int
}

// Rect returns the whole drawable area.
func (b Bounds) Rect() Rect {
	return Rect{X: 1, Y: 1, Width: b.Width, Height: b.Height}
}

// Contains returns true if the given cell is on screen.
func (b Bounds) Contains(x, y int) bool {
	return b.Rect().Contains(x, y)
}

// Clip returns the part of r that lies on screen.
func (b Bounds) Clip(r Rect) Rect {
	return r.Intersect(b.Rect())
}
