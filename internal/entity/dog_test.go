package entity

import "testing"

func TestDogStep(t *testing.T) {
	d := NewDog(1, 5)

	for i := 0; i < 10; i++ {
		prevX, prevY := d.Position()
		d.Step()
		x, y := d.Position()
		if x != prevX+1 {
			t.Fatalf("Step moved from %d to %d, want exactly one column", prevX, x)
		}
		if y != prevY {
			t.Fatalf("Step changed row from %d to %d", prevY, y)
		}
	}
}

func TestDogPose(t *testing.T) {
	d := NewDog(1, 1)

	// Column reached after each step and the pose expected there.
	want := []struct {
		x, pose int
	}{
		{2, 0}, {3, 0}, {4, 1}, {5, 1}, {6, 1}, {7, 1}, {8, 0}, {9, 0},
	}

	for _, w := range want {
		d.Step()
		if d.X != w.x || d.Pose != w.pose {
			t.Errorf("after step: x=%d pose=%d, want x=%d pose=%d", d.X, d.Pose, w.x, w.pose)
		}
	}
}

func TestDogPoseNegativeStart(t *testing.T) {
	d := NewDog(-5, 1)
	d.Step() // -4 is a multiple of 4 as well
	if d.Pose != 1 {
		t.Errorf("pose at x=-4 is %d, want 1", d.Pose)
	}
}
