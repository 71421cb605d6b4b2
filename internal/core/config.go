package core

// RuntimeConfig contains configuration passed to the frontends at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frontend redraws per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Outcome is the termination status of a level.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState is the externally visible state of a level after a tick.
type GameState struct {
	Score     int
	Lives     int
	Remaining int // Chickens left (level one) or boss health (level two)
	Outcome   Outcome
}

// Over reports whether the level has terminated.
func (s GameState) Over() bool {
	return s.Outcome != OutcomeRunning
}

// StepResult is returned by Level.Step after each tick.
type StepResult struct {
	State GameState
	Moved bool // The ship moved this tick; the runner applies the debounce delay
}
