package walk

import "time"

// Config holds animation timing and placement.
type Config struct {
	// Seed for lane selection. A seed of 0 means a time-based seed.
	Seed int64

	// StartColumn is where each walk begins. Values below 1 start the dog
	// partially off the left edge.
	StartColumn int

	StepDelay    time.Duration // Between frames
	SitDelay     time.Duration // Before the dog sits
	PoopDelay    time.Duration // Sitting, before the droppings appear
	SettleDelay  time.Duration // After the droppings, before walking on
	WalkInterval time.Duration // Between walks
}

// DefaultConfig returns the shipped animation timings.
func DefaultConfig() Config {
	return Config{
		StartColumn:  1,
		StepDelay:    100 * time.Millisecond,
		SitDelay:     500 * time.Millisecond,
		PoopDelay:    2500 * time.Millisecond,
		SettleDelay:  500 * time.Millisecond,
		WalkInterval: time.Second,
	}
}
