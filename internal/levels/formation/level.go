// Package formation implements level one: a row of chickens sweeping from
// side to side, each dropping one bullet at a time.
package formation

import (
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/levels/arena"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// ID is the registry identifier of level one.
const ID = "formation"

const title = "Level 1: Chicken Formation"

func init() {
	registry.Register(ID, title, func(env registry.Env) registry.Level {
		return New(env)
	})
}

// Level is the level one controller.
type Level struct {
	*arena.Arena

	formation entity.Formation
	state     core.GameState
}

// New creates level one. Call Reset before the first Step.
func New(env registry.Env) *Level {
	return &Level{Arena: arena.New(env, env.Config.Levels.One)}
}

// ID implements registry.Level.
func (l *Level) ID() string { return ID }

// Title implements registry.Level.
func (l *Level) Title() string { return title }

// TickDelay implements registry.Level.
func (l *Level) TickDelay() time.Duration { return l.Cfg.Timing.FormationTick }

// State implements registry.Level.
func (l *Level) State() core.GameState { return l.state }

// Formation returns the chicken row.
func (l *Level) Formation() *entity.Formation { return &l.formation }

// Reset spawns a full formation, arms every slot, spawns the player and
// draws the HUD.
func (l *Level) Reset() {
	f := l.Cfg.Formation
	scr := l.Cfg.Screen
	virtW := scr.Width - 2*scr.Margin
	col := virtW / f.Columns

	l.formation = entity.Formation{Slots: make([]entity.FormationSlot, f.Columns)}
	x := scr.Margin + col/2 - f.EnemyWidth/2
	y := scr.Margin + f.Top
	for i := range l.formation.Slots {
		l.formation.Slots[i].Enemy = l.Env.Entities.Spawn(entity.KindEnemy, x, y, f.EnemyWidth, f.EnemyHeight)
		x += col
	}
	for i := range l.formation.Slots {
		l.arm(i)
	}

	l.SpawnPlayer()
	l.updateState()
	l.refreshHUD()

	l.Env.Logger.Debug("level ready", "level", ID, "chickens", f.Columns)
}

// Step runs one tick.
func (l *Level) Step(in core.InputFrame) core.StepResult {
	if l.state.Over() {
		return core.StepResult{State: l.state}
	}

	moved := l.MoveShip(in)
	fresh := l.resolvePlayerHit()
	if l.advanceEnemyBullets() {
		fresh = true
	}
	l.AdvanceBullet(fresh)
	l.sweep() // Bounces before the leader would cross its margin
	l.updateState()

	return core.StepResult{State: l.state, Moved: moved}
}

// Teardown erases every live entity.
func (l *Level) Teardown() {
	for _, s := range l.formation.Slots {
		l.Env.Entities.Remove(s.Bullet)
		if s.Enemy.IsAlive() {
			l.Env.Entities.Remove(s.Enemy)
		}
	}
	l.Arena.Teardown()
}

// arm gives slot i a new bullet just below its chicken.
func (l *Level) arm(i int) {
	slot := &l.formation.Slots[i]
	if slot.Armed() || !slot.Enemy.IsAlive() {
		return
	}
	e := slot.Enemy
	r := l.Cfg.Formation.BulletRadius
	slot.Bullet = l.Env.Entities.SpawnBullet(entity.KindEnemy, e.X+e.W()/2-r, e.Y+e.H()+2*r, r)
}

// disarm removes the bullet of slot i.
func (l *Level) disarm(i int) {
	slot := &l.formation.Slots[i]
	if slot.Bullet == nil {
		return
	}
	l.Env.Entities.Remove(slot.Bullet)
	slot.Bullet = nil
}

// resolvePlayerHit removes the chicken the player bullet strikes, if any.
// Reports whether the player bullet was re-armed.
func (l *Level) resolvePlayerHit() bool {
	hit := l.BulletHit(l.formation.Enemies())
	if hit == nil {
		return false
	}

	l.Env.Entities.Remove(hit)
	l.Env.Session.AddScore(l.Cfg.Scoring.HitPoints)
	l.Env.Sound.Play(sfx.CueEnemyHit)
	l.Env.Logger.Debug("chicken down", "remaining", l.formation.Alive(), "score", l.Env.Session.Score)

	l.ReloadBullet()
	l.refreshHUD()
	return true
}

// advanceEnemyBullets moves every slot bullet in slot order. When one hits
// the ship the rest are not processed this tick.
// Reports whether the ship was hit.
func (l *Level) advanceEnemyBullets() bool {
	speed := l.Cfg.Formation.BulletSpeed
	for i := range l.formation.Slots {
		switch l.AdvanceEnemyBullet(l.formation.Slots[i].Bullet, speed) {
		case arena.BulletHitShip:
			l.ShipHit(l.ceaseFire)
			for j := range l.formation.Slots {
				l.arm(j)
			}
			l.Env.Logger.Debug("formation re-armed", "slots", l.formation.Alive())
			l.refreshHUD()
			return true
		case arena.BulletLanded:
			l.disarm(i)
			l.arm(i)
		}
	}
	return false
}

// ceaseFire removes every enemy bullet.
func (l *Level) ceaseFire() {
	for i := range l.formation.Slots {
		l.disarm(i)
	}
}

// sweep moves the live chickens one step, bouncing off the margins.
func (l *Level) sweep() {
	lead := l.formation.Leading(l.Env.Session.Direction)
	dx := l.Sweep(lead, l.Cfg.Formation.Step)
	if dx == 0 {
		return
	}
	for _, s := range l.formation.Slots {
		l.Env.Entities.Move(s.Enemy, dx, 0)
	}
}

func (l *Level) updateState() {
	s := l.Env.Session
	l.state.Score = s.Score
	l.state.Lives = s.Lives
	l.state.Remaining = l.formation.Alive()

	switch {
	case l.state.Remaining == 0:
		l.state.Outcome = core.OutcomeWon
	case s.Lives == 0:
		l.state.Outcome = core.OutcomeLost
	default:
		l.state.Outcome = core.OutcomeRunning
	}
}

func (l *Level) refreshHUD() {
	l.Env.HUD.Refresh(l.Stats())
}
