package entity

// Overlaps reports whether a, displaced by (dx, dy), overlaps b.
// Testing the hypothetical position lets callers detect a hit before the
// move is committed, so fast entities cannot pass through each other.
//
// Intervals are closed: boxes that only share an edge collide. Dead
// entities and an entity tested against itself never collide.
func Overlaps(a *Entity, dx, dy int, b *Entity) bool {
	if !a.IsAlive() || !b.IsAlive() || a == b {
		return false
	}

	return a.Rect().Offset(dx, dy).Touches(b.Rect())
}

// FindFirstColliding scans pool in order and returns the first alive entity,
// other than candidate, that candidate would overlap after moving by (dx, dy).
// Returns nil when nothing collides.
func FindFirstColliding(candidate *Entity, dx, dy int, pool []*Entity) *Entity {
	for _, other := range pool {
		if Overlaps(candidate, dx, dy, other) {
			return other
		}
	}
	return nil
}
