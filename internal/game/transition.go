package game

import (
	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/session"
)

// Carry says what happens to the run state across a transition.
type Carry int

const (
	// CarryReset starts a new run: lives and score go back to their initial values.
	CarryReset Carry = iota
	// CarryKeep continues the run with the current lives and score.
	CarryKeep
)

// String returns the carry mode name.
func (c Carry) String() string {
	if c == CarryKeep {
		return "keep"
	}
	return "reset"
}

// Transition decides where an end-screen key press leads after a level
// finished with outcome. ok is false when the key means nothing on that
// screen and the prompt should keep waiting.
func Transition(state session.State, outcome core.Outcome, a core.Action) (next session.State, carry Carry, ok bool) {
	if !state.IsLevel() || outcome == core.OutcomeRunning {
		return state, CarryReset, false
	}

	switch a {
	case core.ActionNext:
		if state == session.StateLevelOne && outcome == core.OutcomeWon {
			return session.StateLevelTwo, CarryKeep, true
		}
	case core.ActionReplay:
		return session.StateLevelOne, CarryReset, true
	case core.ActionMenu:
		return session.StateMenu, CarryReset, true
	}
	return state, CarryReset, false
}

// Prompt lists the keys an end screen accepts.
func Prompt(state session.State, outcome core.Outcome) string {
	if state == session.StateLevelOne && outcome == core.OutcomeWon {
		return "N: NEXT LEVEL   R: REPLAY   M: MENU"
	}
	return "R: REPLAY   M: MENU"
}
