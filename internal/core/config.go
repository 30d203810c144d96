package core

// RuntimeConfig contains the host-side parameters passed to the platform
// layer at startup: terminal dimensions, tick rate, and the RNG seed for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means derive from current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 120,
		Seed:     0,
	}
}
