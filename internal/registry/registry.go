// Package registry provides a global registry for level factories.
// Levels register themselves in init() functions, allowing the game state
// machine to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-invaders/internal/config"
	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/hud"
	"github.com/vovakirdan/chicken-invaders/internal/session"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// Level is the interface every level controller implements.
// A level owns its entities for one play-through; the runner drives it one
// tick at a time and paces it with TickDelay.
type Level interface {
	// ID returns a unique identifier for this level (e.g., "formation").
	// Used for CLI listing and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset spawns the level's entities and draws the HUD.
	Reset()

	// Step advances the level by one tick.
	Step(in core.InputFrame) core.StepResult

	// State returns the current level state.
	State() core.GameState

	// TickDelay is the pause the runner applies after every tick.
	TickDelay() time.Duration

	// Teardown erases every live entity.
	Teardown()
}

// Env is everything a level needs from the outside world.
type Env struct {
	Config   config.GameConfig
	Entities *entity.Manager
	Session  *session.Session
	HUD      *hud.HUD
	Clock    core.Clock
	Sound    sfx.Player
	Logger   *log.Logger
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
}

// Factory creates a new level bound to env.
type Factory func(env Env) Level

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level's init() function.
// Panics if a level with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LevelInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new level by its ID.
// Returns an error if the level ID is not registered.
func Create(id string, env Env) (Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	return f(env), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Fill replaces nil collaborators with no-op defaults.
func (e Env) Fill() Env {
	if e.Clock == nil {
		e.Clock = core.RealClock{}
	}
	if e.Sound == nil {
		e.Sound = sfx.Silent{}
	}
	if e.Logger == nil {
		e.Logger = log.New(io.Discard)
	}
	return e
}
