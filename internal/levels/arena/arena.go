// Package arena holds what both levels share: the player ship and its
// bullet, their movement bounds and the tick sub-steps that treat them the
// same way whatever the player is fighting.
package arena

import (
	"github.com/vovakirdan/chicken-invaders/internal/config"
	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/hud"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// Arena is embedded by the level controllers.
type Arena struct {
	Env    registry.Env
	Cfg    config.GameConfig
	Player entity.Player

	top int // Upper bound of the ship for this level
}

// New creates an arena for a level with the given ship bounds.
func New(env registry.Env, level config.LevelConfig) *Arena {
	env = env.Fill()
	return &Arena{
		Env: env,
		Cfg: env.Config,
		top: env.Config.ShipTop(level),
	}
}

// ShipTop returns the ship's upper movement bound.
func (a *Arena) ShipTop() int {
	return a.top
}

// ShipStart returns where the ship spawns: centred on the bottom margin.
func (a *Arena) ShipStart() (int, int) {
	scr, p := a.Cfg.Screen, a.Cfg.Player
	return (scr.Width - p.ShipWidth) / 2, scr.Height - scr.Margin - p.ShipHeight
}

// SpawnPlayer creates the ship at its start position and arms its bullet.
func (a *Arena) SpawnPlayer() {
	x, y := a.ShipStart()
	p := a.Cfg.Player
	a.Player.Ship = a.Env.Entities.Spawn(entity.KindPlayerShip, x, y, p.ShipWidth, p.ShipHeight)
	a.ArmBullet()
}

// ArmBullet creates a new player bullet just above the ship.
func (a *Arena) ArmBullet() {
	ship := a.Player.Ship
	r := a.Cfg.Player.BulletRadius
	x := ship.X + ship.W()/2 - r
	y := ship.Y - 3*r
	a.Player.Bullet = a.Env.Entities.SpawnBullet(entity.KindPlayerShip, x, y, r)
}

// RemovePlayer erases the ship and its bullet.
func (a *Arena) RemovePlayer() {
	a.Env.Entities.Remove(a.Player.Bullet)
	a.Env.Entities.Remove(a.Player.Ship)
}

// MoveShip applies the movement action of the frame, if any.
// A move that would take the ship past its bound is rejected outright.
// Reports whether the ship moved.
func (a *Arena) MoveShip(in core.InputFrame) bool {
	ship := a.Player.Ship
	if !ship.IsAlive() {
		return false
	}

	scr := a.Cfg.Screen
	stepX := ship.W() / 3
	stepY := ship.H() / 3

	switch {
	case in.Has(core.ActionLeft):
		if ship.X >= scr.Margin+stepX {
			a.Env.Entities.Move(ship, -stepX, 0)
			return true
		}
	case in.Has(core.ActionRight):
		if ship.X+ship.W()+stepX <= scr.Width-scr.Margin {
			a.Env.Entities.Move(ship, stepX, 0)
			return true
		}
	case in.Has(core.ActionUp):
		if ship.Y >= a.top+stepY {
			a.Env.Entities.Move(ship, 0, -stepY)
			return true
		}
	case in.Has(core.ActionDown):
		if ship.Y+ship.H()+stepY <= scr.Height-scr.Margin {
			a.Env.Entities.Move(ship, 0, stepY)
			return true
		}
	}
	return false
}

// BulletHit returns the first entity in pool the player bullet would strike
// on its next step.
func (a *Arena) BulletHit(pool []*entity.Entity) *entity.Entity {
	return entity.FindFirstColliding(a.Player.Bullet, 0, -a.Cfg.Player.BulletSpeed, pool)
}

// ReloadBullet consumes the current player bullet and arms a new one.
func (a *Arena) ReloadBullet() {
	a.Env.Entities.Remove(a.Player.Bullet)
	a.ArmBullet()
}

// AdvanceBullet moves the player bullet up one step. A step that would end
// at or above the top margin re-arms the bullet instead of moving it. A
// freshly re-armed bullet passed as fresh does not move this tick.
func (a *Arena) AdvanceBullet(fresh bool) {
	b := a.Player.Bullet
	if fresh || !b.IsAlive() {
		return
	}
	speed := a.Cfg.Player.BulletSpeed
	if b.Y-speed <= a.Cfg.Screen.Margin {
		a.ReloadBullet()
		return
	}
	a.Env.Entities.Move(b, 0, -speed)
}

// BulletResult is what happened to an enemy bullet in one step.
type BulletResult int

const (
	BulletFlying BulletResult = iota
	BulletHitShip
	BulletLanded // Reached the bottom margin
)

// AdvanceEnemyBullet tests an enemy bullet against the ship and, if it
// misses, moves it down by speed. A hit leaves the bullet in place.
func (a *Arena) AdvanceEnemyBullet(b *entity.Entity, speed int) BulletResult {
	if !b.IsAlive() {
		return BulletFlying
	}
	if entity.Overlaps(b, 0, speed, a.Player.Ship) {
		return BulletHitShip
	}
	a.Env.Entities.Move(b, 0, speed)
	if b.Y+b.H() >= a.Cfg.Screen.Height-a.Cfg.Screen.Margin {
		return BulletLanded
	}
	return BulletFlying
}

// ShipHit handles the ship being struck: one life is lost, ceaseFire removes
// every enemy bullet, and the ship and its bullet respawn at the start after
// the hit pause. The ship respawns even when no lives remain so the final
// screen still shows it until teardown.
func (a *Arena) ShipHit(ceaseFire func()) {
	lives := a.Env.Session.LoseLife()
	a.Env.Sound.Play(sfx.CueShipHit)
	a.Env.Logger.Debug("ship hit", "lives", lives)

	ceaseFire()
	a.RemovePlayer()
	a.Env.Clock.Sleep(a.Cfg.Timing.HitPause)
	a.SpawnPlayer()
}

// Sweep decides the sweep direction for this tick. The direction flips when
// the leading entity would cross its margin bound with the next step.
// Returns the displacement every swept entity moves by.
func (a *Arena) Sweep(lead *entity.Entity, step int) int {
	s := a.Env.Session
	if !lead.IsAlive() {
		return 0
	}

	scr := a.Cfg.Screen
	if s.Direction > 0 && lead.X+lead.W()+step > scr.Width-scr.Margin {
		s.FlipDirection()
	} else if s.Direction < 0 && lead.X-step < scr.Margin {
		s.FlipDirection()
	}
	return s.Direction * step
}

// Stats returns the HUD counters for the current session.
func (a *Arena) Stats() hud.Stats {
	s := a.Env.Session
	return hud.Stats{Score: s.Score, Lives: s.Lives, Best: s.Best}
}

// Teardown erases the player.
func (a *Arena) Teardown() {
	a.RemovePlayer()
}
