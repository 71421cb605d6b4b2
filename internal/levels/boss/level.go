// Package boss implements level two: a single boss with a health bar that
// fires a batch of bullets at once.
package boss

import (
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/levels/arena"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

// ID is the registry identifier of level two.
const ID = "boss"

const title = "Level 2: Boss Chicken"

func init() {
	registry.Register(ID, title, func(env registry.Env) registry.Level {
		return New(env)
	})
}

// Level is the level two controller.
type Level struct {
	*arena.Arena

	boss  entity.Boss
	state core.GameState
}

// New creates level two. Call Reset before the first Step.
func New(env registry.Env) *Level {
	return &Level{Arena: arena.New(env, env.Config.Levels.Two)}
}

// ID implements registry.Level.
func (l *Level) ID() string { return ID }

// Title implements registry.Level.
func (l *Level) Title() string { return title }

// TickDelay implements registry.Level.
func (l *Level) TickDelay() time.Duration { return l.Cfg.Timing.BossTick }

// State implements registry.Level.
func (l *Level) State() core.GameState { return l.state }

// Boss returns the boss.
func (l *Level) Boss() *entity.Boss { return &l.boss }

// Reset spawns the boss centred below the top margin with full health,
// arms its batch, spawns the player and draws the HUD.
func (l *Level) Reset() {
	b := l.Cfg.Boss
	scr := l.Cfg.Screen

	l.boss = entity.Boss{
		Body:   l.Env.Entities.Spawn(entity.KindBoss, (scr.Width-b.Width)/2, scr.Margin+b.Top, b.Width, b.Height),
		Health: b.Health,
	}
	l.armBatch()

	l.SpawnPlayer()
	l.updateState()
	l.refreshHUD()

	l.Env.Logger.Debug("level ready", "level", ID, "health", b.Health)
}

// Step runs one tick.
func (l *Level) Step(in core.InputFrame) core.StepResult {
	if l.state.Over() {
		return core.StepResult{State: l.state}
	}

	moved := l.MoveShip(in)
	fresh := l.resolvePlayerHit()
	if l.advanceBullets() {
		fresh = true
	}
	l.AdvanceBullet(fresh)
	l.sweep() // Bounces before the leader would cross its margin
	l.updateState()

	return core.StepResult{State: l.state, Moved: moved}
}

// Teardown erases every live entity.
func (l *Level) Teardown() {
	l.removeBatch()
	if l.boss.Body.IsAlive() {
		l.Env.Entities.Remove(l.boss.Body)
	}
	l.Arena.Teardown()
}

// armBatch fires a full batch spread evenly across the boss's width.
// Does nothing while the boss is dead or bullets are still in flight.
func (l *Level) armBatch() {
	body := l.boss.Body
	if !body.IsAlive() || l.boss.LiveBullets() > 0 {
		return
	}

	n := l.Cfg.Boss.Bullets
	r := l.Cfg.Boss.BulletRadius
	l.boss.Bullets = make([]*entity.Entity, n)
	for i := range l.boss.Bullets {
		x := body.X + (i+1)*body.W()/(n+1) - r
		y := body.Y + body.H() + 2*r
		l.boss.Bullets[i] = l.Env.Entities.SpawnBullet(entity.KindBoss, x, y, r)
	}
}

// removeBatch erases every boss bullet.
func (l *Level) removeBatch() {
	for _, b := range l.boss.Bullets {
		l.Env.Entities.Remove(b)
	}
	l.boss.Bullets = nil
}

// resolvePlayerHit takes one point of boss health if the player bullet
// strikes it. Reports whether the player bullet was re-armed.
func (l *Level) resolvePlayerHit() bool {
	if l.BulletHit([]*entity.Entity{l.boss.Body}) == nil {
		return false
	}

	if l.boss.Hit() {
		l.Env.Entities.Remove(l.boss.Body)
		l.Env.Logger.Debug("boss down")
	} else {
		l.Env.Sound.Play(sfx.CueBossHit)
	}
	l.Env.Session.AddScore(l.Cfg.Scoring.HitPoints)
	l.Env.Logger.Debug("boss hit", "health", l.boss.Health, "score", l.Env.Session.Score)

	l.ReloadBullet()
	l.refreshHUD()
	return true
}

// advanceBullets moves the batch. A ship hit or any bullet reaching the
// bottom ends the batch; it is re-armed whole while the boss lives.
// Reports whether the ship was hit.
func (l *Level) advanceBullets() bool {
	speed := l.Cfg.Boss.BulletSpeed
	for _, b := range l.boss.Bullets {
		switch l.AdvanceEnemyBullet(b, speed) {
		case arena.BulletHitShip:
			l.ShipHit(l.removeBatch)
			l.armBatch()
			l.Env.Logger.Debug("boss re-armed after hit")
			l.refreshHUD()
			return true
		case arena.BulletLanded:
			l.removeBatch()
			l.armBatch()
			return false
		}
	}
	return false
}

// sweep moves the boss one step, bouncing off the margins.
func (l *Level) sweep() {
	dx := l.Sweep(l.boss.Body, l.Cfg.Boss.Step)
	if dx != 0 {
		l.Env.Entities.Move(l.boss.Body, dx, 0)
	}
}

func (l *Level) updateState() {
	s := l.Env.Session
	l.state.Score = s.Score
	l.state.Lives = s.Lives
	l.state.Remaining = l.boss.Health

	switch {
	case l.boss.Defeated():
		l.state.Outcome = core.OutcomeWon
	case s.Lives == 0:
		l.state.Outcome = core.OutcomeLost
	default:
		l.state.Outcome = core.OutcomeRunning
	}
}

func (l *Level) refreshHUD() {
	stats := l.Stats()
	stats.ShowBoss = true
	stats.BossHealth = l.boss.Health
	l.Env.HUD.Refresh(stats)
}
