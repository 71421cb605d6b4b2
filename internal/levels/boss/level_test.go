package boss

import (
	"testing"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/entity"
	"github.com/vovakirdan/chicken-invaders/internal/levels/leveltest"
	"github.com/vovakirdan/chicken-invaders/internal/registry"
	"github.com/vovakirdan/chicken-invaders/internal/sfx"
)

var idle = core.NewInputFrame()

func newLevel(t *testing.T) (*Level, *leveltest.Fixture) {
	t.Helper()
	fx := leveltest.Default()
	l := New(fx.Env)
	l.Reset()
	return l, fx
}

func aimAtBoss(l *Level, fx *leveltest.Fixture) {
	body := l.Boss().Body
	fx.Env.Entities.Place(l.Player.Bullet, body.X+60, body.Y+body.H()+fx.Env.Config.Player.BulletSpeed)
}

func aimAtShip(l *Level, fx *leveltest.Fixture, b *entity.Entity) {
	ship := l.Player.Ship
	fx.Env.Entities.Place(b, ship.X, ship.Y-fx.Env.Config.Boss.BulletSpeed-b.H())
}

func TestRegistered(t *testing.T) {
	lvl, err := registry.Create(ID, leveltest.Default().Env)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if lvl.ID() != ID || lvl.Title() != title {
		t.Errorf("created level %q/%q", lvl.ID(), lvl.Title())
	}
}

func TestReset(t *testing.T) {
	l, fx := newLevel(t)
	b := l.Boss()

	if b.Body.X != 240 || b.Body.Y != 48 || b.Body.W() != 160 || b.Body.H() != 48 {
		t.Errorf("boss at (%d, %d) size %dx%d", b.Body.X, b.Body.Y, b.Body.W(), b.Body.H())
	}
	if b.Health != 20 {
		t.Errorf("Health = %d, expected 20", b.Health)
	}

	expectedX := []int{276, 316, 356}
	if len(b.Bullets) != len(expectedX) {
		t.Fatalf("batch has %d bullets, expected 3", len(b.Bullets))
	}
	for i, bullet := range b.Bullets {
		if !bullet.Alive || bullet.X != expectedX[i] || bullet.Y != 104 {
			t.Errorf("bullet %d = %+v, expected alive at (%d, 104)", i, bullet, expectedX[i])
		}
	}

	if fx.Env.HUD.Last() != "SCORE 0  LIVES 3  BEST 0  BOSS 20" {
		t.Errorf("HUD = %q", fx.Env.HUD.Last())
	}
	if l.ShipTop() != 112 {
		t.Errorf("ShipTop() = %d, expected 112", l.ShipTop())
	}
	if l.TickDelay() != fx.Env.Config.Timing.BossTick {
		t.Errorf("TickDelay() = %v", l.TickDelay())
	}
	if st := l.State(); st.Remaining != 20 || st.Outcome != core.OutcomeRunning {
		t.Errorf("State() = %+v", st)
	}
}

func TestPlayerBulletHitsBoss(t *testing.T) {
	l, fx := newLevel(t)
	old := l.Player.Bullet
	aimAtBoss(l, fx)

	res := l.Step(idle)

	if l.Boss().Health != 19 || res.State.Remaining != 19 {
		t.Errorf("Health = %d, expected 19", l.Boss().Health)
	}
	if !l.Boss().Body.Alive {
		t.Error("boss should survive a single hit")
	}
	if res.State.Score != 5 {
		t.Errorf("Score = %d, expected 5", res.State.Score)
	}
	if old.Alive || !l.Player.Bullet.Alive || l.Player.Bullet.Y != 324 {
		t.Error("player bullet should be consumed and re-armed above the ship")
	}
	if fx.Env.HUD.Last() != "SCORE 5  LIVES 3  BEST 5  BOSS 19" {
		t.Errorf("HUD = %q", fx.Env.HUD.Last())
	}
	if fx.Sound.Count(sfx.CueBossHit) != 1 {
		t.Error("a hit should play the boss-hit cue")
	}
}

func TestBossDefeated(t *testing.T) {
	l, fx := newLevel(t)
	fx.Env.Session.AddScore(30)
	l.Boss().Health = 1
	aimAtBoss(l, fx)

	res := l.Step(idle)

	if res.State.Outcome != core.OutcomeWon || res.State.Remaining != 0 {
		t.Fatalf("State() = %+v, expected won", res.State)
	}
	if l.Boss().Body.Alive {
		t.Error("boss should be removed at zero health")
	}
	if res.State.Score != 35 {
		t.Errorf("Score = %d, expected 35 carried plus one hit", res.State.Score)
	}
}

func TestEnemyBulletHitsShip(t *testing.T) {
	l, fx := newLevel(t)
	old := append([]*entity.Entity(nil), l.Boss().Bullets...)
	aimAtShip(l, fx, old[1])

	res := l.Step(idle)

	if res.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", res.State.Lives)
	}
	for i, b := range old {
		if b.Alive {
			t.Errorf("old bullet %d should be removed by the cease-fire", i)
		}
	}
	if n := l.Boss().LiveBullets(); n != 3 {
		t.Errorf("LiveBullets() = %d, expected a fresh batch of 3", n)
	}
	if fx.Clock.Count(fx.Env.Config.Timing.HitPause) != 1 {
		t.Errorf("Sleeps() = %v, expected one hit pause", fx.Clock.Sleeps())
	}
	if fx.Env.HUD.Last() != "SCORE 0  LIVES 2  BEST 0  BOSS 20" {
		t.Errorf("HUD = %q", fx.Env.HUD.Last())
	}
}

func TestBatchLanding(t *testing.T) {
	l, fx := newLevel(t)
	old := append([]*entity.Entity(nil), l.Boss().Bullets...)
	fx.Env.Entities.Place(old[0], old[0].X, 360)

	l.Step(idle)

	for i, b := range old {
		if b.Alive {
			t.Errorf("old bullet %d should be removed with the batch", i)
		}
	}
	batch := l.Boss().Bullets
	if len(batch) != 3 {
		t.Fatalf("batch has %d bullets, expected 3", len(batch))
	}
	for i, b := range batch {
		if !b.Alive || b.Y != 104 {
			t.Errorf("new bullet %d = %+v, expected alive below the boss", i, b)
		}
	}
}

func TestNoRearmAfterBossDies(t *testing.T) {
	l, fx := newLevel(t)
	l.Boss().Health = 1
	aimAtBoss(l, fx)
	first := l.Boss().Bullets[0]
	fx.Env.Entities.Place(first, first.X, 360)

	l.Step(idle)

	if l.Boss().LiveBullets() != 0 {
		t.Errorf("LiveBullets() = %d, expected no re-arm once the boss is dead", l.Boss().LiveBullets())
	}
}

func TestLostPath(t *testing.T) {
	l, fx := newLevel(t)
	fx.Env.Session.Lives = 1
	aimAtShip(l, fx, l.Boss().Bullets[0])

	res := l.Step(idle)

	if res.State.Outcome != core.OutcomeLost {
		t.Errorf("Outcome = %v, expected lost", res.State.Outcome)
	}
}

func TestBossSweeps(t *testing.T) {
	l, fx := newLevel(t)
	body := l.Boss().Body

	l.Step(idle)
	if body.X != 248 {
		t.Errorf("boss at x=%d, expected 248", body.X)
	}

	// The boss keeps moving while its right edge stays within 624
	for i := 0; i < 27; i++ {
		l.Step(idle)
	}
	if body.X != 464 || fx.Env.Session.Direction != 1 {
		t.Fatalf("boss at x=%d dir %d, expected 464 heading right", body.X, fx.Env.Session.Direction)
	}
	l.Step(idle)
	if body.X != 456 || fx.Env.Session.Direction != -1 {
		t.Errorf("boss at x=%d dir %d, expected 456 heading left", body.X, fx.Env.Session.Direction)
	}
}

func TestTeardown(t *testing.T) {
	l, _ := newLevel(t)
	bullets := append([]*entity.Entity(nil), l.Boss().Bullets...)

	l.Teardown()

	if l.Boss().Body.Alive || l.Player.Ship.Alive || l.Player.Bullet.Alive {
		t.Error("Teardown should remove the boss and the player")
	}
	for i, b := range bullets {
		if b.Alive {
			t.Errorf("bullet %d should be removed", i)
		}
	}
}
