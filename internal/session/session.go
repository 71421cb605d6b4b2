// Package session holds the state that lives across levels of one run:
// lives, score, the shared sweep direction and the top-level screen.
package session

import "github.com/google/uuid"

// State is a top-level screen of the game.
type State int

const (
	StateMenu State = iota
	StateTutorial
	StateLevelOne
	StateLevelTwo
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateTutorial:
		return "tutorial"
	case StateLevelOne:
		return "level-one"
	case StateLevelTwo:
		return "level-two"
	default:
		return "unknown"
	}
}

// IsLevel reports whether the state runs a level.
func (s State) IsLevel() bool {
	return s == StateLevelOne || s == StateLevelTwo
}

// Session is the run state aggregate.
// Lives never go below zero and Score never decreases within a run.
type Session struct {
	ID        uuid.UUID
	Lives     int
	Score     int
	Best      int // Highest score seen by this process
	Direction int // Sweep direction: +1 right, -1 left
	State     State

	initialLives int
}

// New creates a session in the menu with a fresh run.
func New(initialLives int) *Session {
	s := &Session{initialLives: initialLives, State: StateMenu}
	s.Reset()
	return s
}

// InitialLives returns the number of lives a run starts with.
func (s *Session) InitialLives() int {
	return s.initialLives
}

// Reset starts a new run: new ID, full lives, zero score, rightward sweep.
// Best is kept.
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.Lives = s.initialLives
	s.Score = 0
	s.Direction = 1
}

// Carry continues the run into the next level, keeping lives and score.
func (s *Session) Carry() {
	s.Direction = 1
}

// AddScore adds n points. Non-positive amounts are ignored.
func (s *Session) AddScore(n int) {
	if n <= 0 {
		return
	}
	s.Score += n
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// LoseLife takes one life and returns how many remain.
func (s *Session) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}

// FlipDirection reverses the sweep direction.
func (s *Session) FlipDirection() {
	s.Direction = -s.Direction
	if s.Direction == 0 {
		s.Direction = 1
	}
}
