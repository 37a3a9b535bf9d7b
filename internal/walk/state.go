// Package walk runs the dog's walk across the terminal.
package walk

// State represents what the dog is currently doing.
type State int

const (
	// StateIdle is between walks.
	StateIdle State = iota
	// StateWalking is the dog crossing the screen.
	StateWalking
	// StateSitting is the pause halfway across.
	StateSitting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateSitting:
		return "sitting"
	default:
		return "unknown"
	}
}
