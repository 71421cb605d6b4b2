package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/levels/boss"
	"github.com/vovakirdan/chicken-invaders/internal/levels/formation"
	"github.com/vovakirdan/chicken-invaders/internal/levels/leveltest"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/session"
	"github.com/vovakirdan/chicken-invaders/internal/storage"
)

// noKey stands for a poll that returns nothing.
const noKey rune = 0

// script is an InputSource replaying fixed polls. Once exhausted it
// cancels the run.
type script struct {
	mu     sync.Mutex
	keys   []rune
	cancel context.CancelFunc
}

func (s *script) PollChar() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		s.cancel()
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, k != noKey
}

type harness struct {
	fx      *leveltest.Fixture
	machine *Machine
	store   *storage.Store
	ctx     context.Context
	cancel  context.CancelFunc
	states  []session.State
}

func newHarness(t *testing.T, keys []rune, onLevel func(h *harness, lvl registry.Level)) *harness {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	h := &harness{fx: leveltest.Default(), store: store, ctx: ctx, cancel: cancel}
	in := &script{keys: keys, cancel: cancel}

	opts := []Option{
		WithResults(store),
		WithStateHook(func(s session.State) { h.states = append(h.states, s) }),
	}
	if onLevel != nil {
		opts = append(opts, WithLevelHook(func(lvl registry.Level) { onLevel(h, lvl) }))
	}
	h.machine = New(h.fx.Env, in, opts...)
	return h
}

func (h *harness) run(t *testing.T) {
	t.Helper()
	if err := h.machine.Run(h.ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
}

// clearFormation kills every chicken so the next tick wins the level.
func clearFormation(h *harness, lvl registry.Level) {
	f := lvl.(*formation.Level).Formation()
	for _, s := range f.Slots {
		h.fx.Env.Entities.Remove(s.Enemy)
	}
}

func TestMenuToTutorialAndBack(t *testing.T) {
	h := newHarness(t, []rune{'s', '\r', 'x'}, nil)
	h.run(t)

	expected := []session.State{session.StateMenu, session.StateTutorial, session.StateMenu}
	if len(h.states) != len(expected) {
		t.Fatalf("visited %v, expected %v", h.states, expected)
	}
	for i := range expected {
		if h.states[i] != expected[i] {
			t.Errorf("state %d = %v, expected %v", i, h.states[i], expected[i])
		}
	}
}

func TestMenuToggleWraps(t *testing.T) {
	// Two toggles land back on START GAME
	h := newHarness(t, []rune{'w', 'w', '\r'}, nil)
	h.run(t)

	if len(h.states) < 2 || h.states[1] != session.StateLevelOne {
		t.Errorf("visited %v, expected the level after the menu", h.states)
	}
}

func TestMenuDrawsChoices(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.machine.drawMenu()

	text := h.fx.Canvas.Snapshot().String()
	for _, want := range []string{"CHICKEN INVADERS", "> START GAME <", "TUTORIAL"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu screen missing %q", want)
		}
	}
}

func TestReplayResetsRun(t *testing.T) {
	entries := 0
	h := newHarness(t, []rune{'\r', 'x', noKey, 'q', 'r'}, func(h *harness, lvl registry.Level) {
		entries++
		s := h.fx.Env.Session
		switch entries {
		case 1:
			s.AddScore(30)
			s.Lives = 2
			clearFormation(h, lvl)
		case 2:
			if s.Lives != 3 || s.Score != 0 {
				t.Errorf("after replay lives %d score %d, expected 3 0", s.Lives, s.Score)
			}
			if lvl.ID() != formation.ID {
				t.Errorf("replay entered %q, expected %q", lvl.ID(), formation.ID)
			}
			f := lvl.(*formation.Level).Formation()
			if len(f.Slots) != 6 || f.Alive() != 6 {
				t.Errorf("replay formation has %d/%d chickens, expected 6/6", f.Alive(), len(f.Slots))
			}
			h.cancel()
		}
	})
	h.run(t)

	if entries != 2 {
		t.Fatalf("level entered %d times, expected 2", entries)
	}
	results, err := h.store.Results(context.Background(), 10)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 1 || results[0].Outcome != "won" || results[0].LevelID != formation.ID || results[0].Score != 30 {
		t.Errorf("recorded %+v, expected one won formation result with score 30", results)
	}
}

func TestNextCarriesRun(t *testing.T) {
	var firstRun string
	entered := false
	h := newHarness(t, []rune{'\r', 'x', noKey, 'n'}, func(h *harness, lvl registry.Level) {
		s := h.fx.Env.Session
		if lvl.ID() == formation.ID {
			firstRun = s.ID.String()
			s.AddScore(30)
			s.Lives = 2
			s.FlipDirection()
			clearFormation(h, lvl)
			return
		}

		entered = true
		if lvl.ID() != boss.ID {
			t.Errorf("next entered %q, expected %q", lvl.ID(), boss.ID)
		}
		if s.Lives != 2 || s.Score != 30 {
			t.Errorf("after next lives %d score %d, expected 2 30", s.Lives, s.Score)
		}
		if s.Direction != 1 {
			t.Errorf("Direction = %d, expected a fresh sweep", s.Direction)
		}
		if s.ID.String() != firstRun {
			t.Error("next should keep the run ID")
		}
		h.cancel()
	})
	h.run(t)

	if !entered {
		t.Fatal("level two was never entered")
	}
}

func TestLostLevelIgnoresNext(t *testing.T) {
	h := newHarness(t, []rune{'\r', 'x', noKey, 'n', 'm'}, func(h *harness, lvl registry.Level) {
		h.fx.Env.Session.Lives = 0
	})
	h.run(t)

	expected := []session.State{session.StateMenu, session.StateLevelOne, session.StateMenu}
	if len(h.states) != len(expected) {
		t.Fatalf("visited %v, expected %v", h.states, expected)
	}
	if h.states[2] != session.StateMenu {
		t.Errorf("visited %v, expected to return to the menu", h.states)
	}
	if lr := h.machine.LastResult(); lr == nil || lr.Outcome != "lost" {
		t.Errorf("LastResult() = %+v, expected lost", lr)
	}
	// The menu starts a new run
	if h.fx.Env.Session.Lives != 3 {
		t.Errorf("Lives = %d after returning to the menu, expected 3", h.fx.Env.Session.Lives)
	}
}

func TestStartGateBlocks(t *testing.T) {
	h := newHarness(t, []rune{'\r', noKey, noKey, noKey}, nil)
	h.run(t)

	// Three empty polls plus the one that ran the script dry
	cfg := h.fx.Env.Config
	if n := h.fx.Clock.Count(cfg.Timing.KeyPoll); n != 4 {
		t.Errorf("Count(KeyPoll) = %d, expected 4", n)
	}
	if n := h.fx.Clock.Count(cfg.Timing.FormationTick); n != 0 {
		t.Errorf("level ticked %d times before the start key", n)
	}
	if !strings.Contains(h.fx.Canvas.Snapshot().String(), "PRESS ANY KEY TO START") {
		t.Error("the start gate should be on screen")
	}
}

func TestResultScreen(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.machine.drawResult(session.StateLevelOne, core.OutcomeWon)
	text := h.fx.Canvas.Snapshot().String()
	if !strings.Contains(text, "Well done!") || !strings.Contains(text, "N: NEXT LEVEL") {
		t.Errorf("win screen = %q", text)
	}

	h.machine.clearBanner()
	h.machine.drawResult(session.StateLevelTwo, core.OutcomeLost)
	text = h.fx.Canvas.Snapshot().String()
	if !strings.Contains(text, "Game over!") || strings.Contains(text, "NEXT LEVEL") {
		t.Errorf("lose screen = %q", text)
	}
}

func TestClearBannerKeepsRestOfRow(t *testing.T) {
	h := newHarness(t, nil, nil)
	cellH := h.fx.Env.Config.Render.CellHeight

	h.fx.Canvas.DrawString(0, rowBanner*cellH, "LEFT", core.ColorWhite, 1)
	h.fx.Canvas.DrawString(0, rowMessage*cellH, "EDGE", core.ColorWhite, 1)

	h.machine.drawBanner("LEVEL 1", "PRESS ANY KEY TO START")
	h.machine.clearBanner()

	text := h.fx.Canvas.Snapshot().String()
	if strings.Contains(text, "LEVEL 1") || strings.Contains(text, "PRESS ANY KEY") {
		t.Errorf("banner still on screen: %q", text)
	}
	if !strings.Contains(text, "LEFT") || !strings.Contains(text, "EDGE") {
		t.Errorf("text outside the banner was erased: %q", text)
	}
}
