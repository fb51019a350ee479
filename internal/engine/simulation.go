package engine

// SimulationContext carries the host's UI state into each tick so the
// simulation never reads process-wide flags.
type SimulationContext struct {
	// Paused short-circuits movement and physics.
	Paused bool
	// InputFocused is true while the game owns the pointer and keyboard.
	InputFocused bool
}

// Running is the context of an unpaused, focused game.
func Running() SimulationContext {
	return SimulationContext{InputFocused: true}
}
