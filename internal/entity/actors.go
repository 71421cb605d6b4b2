package entity

// Player is the ship together with its single bullet.
type Player struct {
	Ship   *Entity
	Bullet *Entity
}

// FormationSlot pairs a chicken with the bullet it owns.
// A nil or dead bullet means the slot is not armed.
type FormationSlot struct {
	Enemy  *Entity
	Bullet *Entity
}

// Armed reports whether the slot has a bullet in flight.
func (s FormationSlot) Armed() bool {
	return s.Bullet.IsAlive()
}

// Formation is the Level 1 wave, kept in creation order.
type Formation struct {
	Slots []FormationSlot
}

// Enemies returns every chicken in creation order, dead ones included.
func (f *Formation) Enemies() []*Entity {
	out := make([]*Entity, len(f.Slots))
	for i, s := range f.Slots {
		out[i] = s.Enemy
	}
	return out
}

// Bullets returns every slot bullet in slot order, nil for unarmed slots.
func (f *Formation) Bullets() []*Entity {
	out := make([]*Entity, len(f.Slots))
	for i, s := range f.Slots {
		out[i] = s.Bullet
	}
	return out
}

// Alive returns the number of chickens still alive.
func (f *Formation) Alive() int {
	n := 0
	for _, s := range f.Slots {
		if s.Enemy.IsAlive() {
			n++
		}
	}
	return n
}

// Leading returns the alive chicken furthest along dir: the rightmost when
// dir is positive, the leftmost otherwise. Returns nil if none are alive.
func (f *Formation) Leading(dir int) *Entity {
	var lead *Entity
	for _, s := range f.Slots {
		e := s.Enemy
		if !e.IsAlive() {
			continue
		}
		switch {
		case lead == nil:
			lead = e
		case dir > 0 && e.X > lead.X:
			lead = e
		case dir <= 0 && e.X < lead.X:
			lead = e
		}
	}
	return lead
}

// Boss is the Level 2 enemy with its health and bullet batch.
type Boss struct {
	Body    *Entity
	Health  int
	Bullets []*Entity
}

// Hit takes one point of health and reports whether the boss is now defeated.
func (b *Boss) Hit() bool {
	if b.Health > 0 {
		b.Health--
	}
	return b.Health == 0
}

// Defeated reports whether the boss has no health left.
func (b *Boss) Defeated() bool {
	return b.Health <= 0
}

// LiveBullets counts the batch bullets still in flight.
func (b *Boss) LiveBullets() int {
	n := 0
	for _, e := range b.Bullets {
		if e.IsAlive() {
			n++
		}
	}
	return n
}
