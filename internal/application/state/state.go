package state

// GameState represents the current state of a playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Frozen reports whether the simulation is held in this state.
// Frozen states still draw.
func (s GameState) Frozen() bool {
	return s != StatePlaying
}

// TogglePause flips between Playing and Paused. A cleared stage stays clear.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
