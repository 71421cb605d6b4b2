// Package leveltest provides a wired level environment for tests: a real
// canvas, a fresh session and a clock that records instead of sleeping.
package leveltest

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-invaders/internal/config"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/hud"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/render"
	"github.com/vovakirdan/chicken-invaders/internal/session"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// Clock records requested sleeps and returns immediately.
type Clock struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// Sleep records d.
func (c *Clock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

// Sleeps returns a copy of the recorded durations.
func (c *Clock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// Count returns how many times d was slept.
func (c *Clock) Count(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, s := range c.sleeps {
		if s == d {
			n++
		}
	}
	return n
}

// Fixture is a level environment backed by test doubles.
type Fixture struct {
	Env    registry.Env
	Canvas *render.Canvas
	Clock  *Clock
	Sound  *sfx.Recorder
}

// New builds a fixture for cfg.
func New(cfg config.GameConfig) *Fixture {
	canvas := render.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cfg.Render.CellWidth, cfg.Render.CellHeight)
	clock := &Clock{}
	sound := &sfx.Recorder{}

	return &Fixture{
		Env: registry.Env{
			Config:   cfg,
			Entities: entity.NewManager(canvas),
			Session:  session.New(cfg.Scoring.Lives),
			HUD:      hud.New(canvas, cfg.Screen.Width, cfg.Screen.Margin),
			Clock:    clock,
			Sound:    sound,
			Logger:   log.New(io.Discard),
		},
		Canvas: canvas,
		Clock:  clock,
		Sound:  sound,
	}
}

// Default builds a fixture with the default configuration.
func Default() *Fixture {
	return New(config.DefaultGameConfig())
}
