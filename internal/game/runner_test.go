package game

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/levels/leveltest"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// stubLevel moves on the ticks listed in moves and ends after ticks steps.
type stubLevel struct {
	ticks int
	moves map[int]bool
	steps int
	keys  []core.InputFrame
}

func (l *stubLevel) ID() string               { return "stub" }
func (l *stubLevel) Title() string            { return "Stub" }
func (l *stubLevel) Reset()                   {}
func (l *stubLevel) TickDelay() time.Duration { return 7 * time.Millisecond }
func (l *stubLevel) Teardown()                {}

func (l *stubLevel) State() core.GameState {
	if l.steps >= l.ticks {
		return core.GameState{Outcome: core.OutcomeWon}
	}
	return core.GameState{}
}

func (l *stubLevel) Step(in core.InputFrame) core.StepResult {
	l.keys = append(l.keys, in)
	moved := l.moves[l.steps]
	l.steps++
	return core.StepResult{State: l.State(), Moved: moved}
}

type fixedInput struct{ keys []rune }

func (f *fixedInput) PollChar() (rune, bool) {
	if len(f.keys) == 0 {
		return 0, false
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, true
}

func TestPlayPacesTicks(t *testing.T) {
	fx := leveltest.Default()
	in := &fixedInput{keys: []rune{'d', 'x'}}
	m := New(fx.Env, in)

	lvl := &stubLevel{ticks: 4, moves: map[int]bool{0: true}}
	final, err := m.play(context.Background(), lvl)
	if err != nil {
		t.Fatalf("play() failed: %v", err)
	}
	if final.Outcome != core.OutcomeWon {
		t.Errorf("Outcome = %v, expected won", final.Outcome)
	}
	if lvl.steps != 4 {
		t.Errorf("steps = %d, expected 4", lvl.steps)
	}
	if !lvl.keys[0].Has(core.ActionRight) {
		t.Error("first tick should carry the polled move")
	}
	if len(lvl.keys[1].Actions) != 0 {
		t.Errorf("unmapped key should give an empty frame, got %v", lvl.keys[1].Actions)
	}

	// No sleep after the final tick; the moving tick adds the debounce
	debounced := 7*time.Millisecond + fx.Env.Config.Timing.MoveDebounce
	sleeps := fx.Clock.Sleeps()
	expected := []time.Duration{debounced, 7 * time.Millisecond, 7 * time.Millisecond}
	if len(sleeps) != len(expected) {
		t.Fatalf("Sleeps() = %v, expected %v", sleeps, expected)
	}
	for i := range expected {
		if sleeps[i] != expected[i] {
			t.Errorf("sleep %d = %v, expected %v", i, sleeps[i], expected[i])
		}
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	fx := leveltest.Default()
	m := New(fx.Env, &fixedInput{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lvl := &stubLevel{ticks: 100}
	if _, err := m.play(ctx, lvl); err != context.Canceled {
		t.Errorf("play() = %v, expected context.Canceled", err)
	}
	if lvl.steps != 0 {
		t.Errorf("steps = %d, expected none after cancel", lvl.steps)
	}
}

func TestOutcomeCue(t *testing.T) {
	if outcomeCue(core.OutcomeWon) != sfx.CueWin {
		t.Error("won should play the win cue")
	}
	if outcomeCue(core.OutcomeLost) != sfx.CueLose {
		t.Error("lost should play the lose cue")
	}
}
