// Package game runs the top-level state machine: the menu, the tutorial and
// the levels with their start gate and end screens.
package game

import (
	"context"
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/session"
	"github.com/vovakirdan/chicken-invaders/internal/storage"
)

// ResultRecorder stores finished level results.
type ResultRecorder interface {
	RecordResult(ctx context.Context, r storage.Result) (int64, error)
}

// DefaultLevels maps level states to registered level IDs.
var DefaultLevels = map[session.State]string{
	session.StateLevelOne: "formation",
	session.StateLevelTwo: "boss",
}

// Machine drives the game from screen to screen. All drawing and all
// session mutation happen on the goroutine calling Run.
type Machine struct {
	env     registry.Env
	r       core.Renderer
	input   core.InputSource
	results ResultRecorder
	levels  map[session.State]string

	menu       menuItem
	onState    func(session.State)
	onLevel    func(registry.Level)
	lastResult *storage.Result
	banner     [2]string // Title and prompt currently on screen
}

// Option configures a Machine.
type Option func(*Machine)

// WithResults records every finished level in rec.
func WithResults(rec ResultRecorder) Option {
	return func(m *Machine) { m.results = rec }
}

// WithLevels overrides the level played in each level state.
func WithLevels(levels map[session.State]string) Option {
	return func(m *Machine) { m.levels = levels }
}

// WithStateHook calls fn every time the machine enters a state.
func WithStateHook(fn func(session.State)) Option {
	return func(m *Machine) { m.onState = fn }
}

// WithLevelHook calls fn with every level after it is reset and before the
// start gate.
func WithLevelHook(fn func(registry.Level)) Option {
	return func(m *Machine) { m.onLevel = fn }
}

// New creates a machine drawing through env.Entities and reading keys from in.
func New(env registry.Env, in core.InputSource, opts ...Option) *Machine {
	env = env.Fill()
	m := &Machine{
		env:    env,
		r:      env.Entities.Renderer(),
		input:  in,
		levels: DefaultLevels,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session returns the run state the machine drives.
func (m *Machine) Session() *session.Session {
	return m.env.Session
}

// LastResult returns the most recently finished level, or nil.
func (m *Machine) LastResult() *storage.Result {
	return m.lastResult
}

// Run loops through the screens until ctx is cancelled, which is the only
// way out. The returned error is ctx.Err() or a failure to create a level.
func (m *Machine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state := m.env.Session.State
		m.env.Logger.Info("enter state", "state", state)
		if m.onState != nil {
			m.onState(state)
		}

		var err error
		switch state {
		case session.StateMenu:
			err = m.runMenu(ctx)
		case session.StateTutorial:
			err = m.runTutorial(ctx)
		default:
			err = m.runLevel(ctx, state)
		}
		if err != nil {
			return err
		}
	}
}

// runLevel plays one level from the start gate to the end-screen choice.
func (m *Machine) runLevel(ctx context.Context, state session.State) error {
	lvl, err := registry.Create(m.levels[state], m.env)
	if err != nil {
		return err
	}

	cfg := m.env.Config
	m.r.ClearScreen(cfg.Screen.Width, cfg.Screen.Height)
	lvl.Reset()
	if m.onLevel != nil {
		m.onLevel(lvl)
	}

	m.drawBanner(lvl.Title(), "PRESS ANY KEY TO START")
	if _, err := m.waitKey(ctx); err != nil {
		return err
	}
	m.clearBanner()

	final, err := m.play(ctx, lvl)
	if err != nil {
		return err
	}
	lvl.Teardown()
	m.finish(ctx, lvl, final)

	m.drawResult(state, final.Outcome)
	for {
		key, err := m.waitKey(ctx)
		if err != nil {
			return err
		}
		next, carry, ok := Transition(state, final.Outcome, core.ActionForKey(key))
		if !ok {
			continue
		}
		m.apply(next, carry)
		return nil
	}
}

// finish records the result and announces it.
func (m *Machine) finish(ctx context.Context, lvl registry.Level, final core.GameState) {
	s := m.env.Session
	res := storage.Result{
		RunID:     s.ID.String(),
		LevelID:   lvl.ID(),
		Outcome:   final.Outcome.String(),
		Score:     final.Score,
		Lives:     final.Lives,
		CreatedAt: time.Now(),
	}
	m.lastResult = &res

	m.env.Logger.Info("level finished", "level", lvl.ID(), "outcome", final.Outcome, "score", final.Score, "lives", final.Lives)
	m.env.Sound.Play(outcomeCue(final.Outcome))

	if m.results == nil {
		return
	}
	if _, err := m.results.RecordResult(ctx, res); err != nil {
		m.env.Logger.Warn("cannot record result", "err", err)
	}
}

// apply moves to next, carrying or resetting the run.
func (m *Machine) apply(next session.State, carry Carry) {
	s := m.env.Session
	if carry == CarryKeep {
		s.Carry()
	} else {
		s.Reset()
	}
	m.env.Logger.Debug("transition", "from", s.State, "to", next, "carry", carry)
	s.State = next
}

// waitKey blocks until a key arrives, polling at the configured interval.
func (m *Machine) waitKey(ctx context.Context) (rune, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if r, ok := m.input.PollChar(); ok {
			return r, nil
		}
		m.env.Clock.Sleep(m.env.Config.Timing.KeyPoll)
	}
}
