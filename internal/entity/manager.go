package entity

import "github.com/vovakirdan/chicken-invaders/internal/core"

// Manager spawns, moves and removes entities, emitting the matching draw
// calls so the display always reflects the logical state.
// None of its operations fail; callers keep positions inside the field.
type Manager struct {
	r core.Renderer
}

// NewManager creates a manager drawing to r.
func NewManager(r core.Renderer) *Manager {
	return &Manager{r: r}
}

// Renderer returns the renderer entities are drawn to.
func (m *Manager) Renderer() core.Renderer {
	return m.r
}

// Spawn creates an alive entity and draws it.
func (m *Manager) Spawn(kind Kind, x, y, w, h int) *Entity {
	e := &Entity{Kind: kind, Owner: kind, X: x, Y: y, w: w, h: h, Alive: true}
	drawSprite(m.r, e)
	return e
}

// SpawnBullet creates an alive round bullet of the given radius fired by owner.
func (m *Manager) SpawnBullet(owner Kind, x, y, radius int) *Entity {
	e := &Entity{Kind: KindBullet, Owner: owner, X: x, Y: y, w: radius * 2, h: radius * 2, Alive: true}
	drawSprite(m.r, e)
	return e
}

// Remove erases the entity and marks it dead.
// Removing a dead entity only repeats the erase; nil is ignored.
func (m *Manager) Remove(e *Entity) {
	if e == nil {
		return
	}
	erase(m.r, e)
	e.Alive = false
}

// Move erases the entity's old footprint, redraws it displaced by (dx, dy)
// and updates its position. Dead entities do not move.
// Call at most once per entity per tick.
func (m *Manager) Move(e *Entity, dx, dy int) {
	if !e.IsAlive() {
		return
	}
	erase(m.r, e)
	e.X += dx
	e.Y += dy
	drawSprite(m.r, e)
}

// Place moves an alive entity to an absolute position.
func (m *Manager) Place(e *Entity, x, y int) {
	if !e.IsAlive() {
		return
	}
	m.Move(e, x-e.X, y-e.Y)
}

// Erase paints a rectangle with the background colour.
func (m *Manager) Erase(r core.Rect) {
	m.r.DrawRect(r.X, r.Y, r.Right(), r.Bottom(), core.ColorBackground, true)
}
