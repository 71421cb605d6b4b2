package game

import (
	"context"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// play ticks lvl until it ends: poll one key, step, then sleep the level's
// tick delay plus the debounce delay when the ship moved.
func (m *Machine) play(ctx context.Context, lvl registry.Level) (core.GameState, error) {
	debounce := m.env.Config.Timing.MoveDebounce

	for {
		if err := ctx.Err(); err != nil {
			return lvl.State(), err
		}

		res := lvl.Step(core.FrameForKey(m.input.PollChar()))
		if res.State.Over() {
			return res.State, nil
		}

		delay := lvl.TickDelay()
		if res.Moved {
			delay += debounce
		}
		m.env.Clock.Sleep(delay)
	}
}

func outcomeCue(o core.Outcome) sfx.Cue {
	if o == core.OutcomeWon {
		return sfx.CueWin
	}
	return sfx.CueLose
}
