package world

// Rect represents a rectangular block of terminal cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the rectangle
}

// Empty returns true if the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Intersect returns the overlap of two rectangles, or a zero Rect if they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if r.Empty() || other.Empty() || !r.Intersects(other) {
		return Rect{}
	}

	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
