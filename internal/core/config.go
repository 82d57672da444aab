package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation steps per second; 0 means use the demo's configured pause
	Seed     int64 // RNG seed for deterministic runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 0,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DemoState represents the current state of a running demo.
type DemoState struct {
	Tick   uint64 // Steps taken since the last reset
	Balls  int    // Number of bodies in the field
	Paused bool   // Whether stepping is suspended
}

// StepResult is returned by Demo.Step() after each frame.
type StepResult struct {
	State   DemoState
	Stepped bool // false when the frame was skipped (paused)
}
