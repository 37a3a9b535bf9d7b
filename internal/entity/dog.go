// Package entity provides the walking dog.
package entity

// poseEvery is how many columns the dog moves before switching legs.
const poseEvery = 4

// Dog is the animated walker. It is owned by a single walk loop.
type Dog struct {
	X, Y   int  // Column and top row of the sprite, 1-based
	Pose   int  // Index of the current walking pose (0 or 1)
	Pooped bool // Whether the sit sequence already ran on this walk
}

// NewDog creates a dog at the given position in its first pose.
func NewDog(x, y int) *Dog {
	return &Dog{X: x, Y: y}
}

// Step moves the dog one column right. The pose alternates whenever the
// new column is a multiple of poseEvery.
func (d *Dog) Step() {
	d.X++
	if d.X%poseEvery == 0 {
		d.Pose = (d.Pose + 1) % 2
	}
}

// Position returns the current x, y coordinates.
func (d *Dog) Position() (int, int) {
	return d.X, d.Y
}
