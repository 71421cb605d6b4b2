// Package entity holds the on-screen actors of the game, the collision
// detector that tests them against each other and the lifecycle manager that
// spawns, moves and removes them while keeping the display in sync.
package entity

import "github.com/vovakirdan/chicken-invaders/internal/core"

// Kind tags what an entity represents.
type Kind int

const (
	KindNone Kind = iota
	KindPlayerShip
	KindEnemy
	KindBullet
	KindBoss
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayerShip:
		return "ship"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Entity is any rectangular game object.
// Its size is fixed at creation; only the position and liveness change.
type Entity struct {
	Kind  Kind
	Owner Kind // For bullets: the kind that fired it
	X, Y  int  // Top-left corner in play-field pixels
	Alive bool

	w, h int
}

// New creates a dead entity without drawing it. Tests use it to build
// fixtures; game code goes through Manager.Spawn.
func New(kind Kind, x, y, w, h int) *Entity {
	return &Entity{Kind: kind, X: x, Y: y, w: w, h: h}
}

// W returns the entity width.
func (e *Entity) W() int { return e.w }

// H returns the entity height.
func (e *Entity) H() int { return e.h }

// Rect returns the current bounding box.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.w, e.h)
}

// IsAlive reports whether e exists and is alive. Nil entities are dead.
func (e *Entity) IsAlive() bool {
	return e != nil && e.Alive
}
