package config

import (
	"errors"
	"fmt"
)

// Validate checks that the configuration describes a playable field.
// All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("screen.margin", c.Screen.Margin)
	positive("player.ship_width", c.Player.ShipWidth)
	positive("player.ship_height", c.Player.ShipHeight)
	positive("player.bullet_radius", c.Player.BulletRadius)
	positive("player.bullet_speed", c.Player.BulletSpeed)
	positive("formation.columns", c.Formation.Columns)
	positive("formation.enemy_width", c.Formation.EnemyWidth)
	positive("formation.enemy_height", c.Formation.EnemyHeight)
	positive("formation.bullet_radius", c.Formation.BulletRadius)
	positive("formation.bullet_speed", c.Formation.BulletSpeed)
	positive("boss.width", c.Boss.Width)
	positive("boss.height", c.Boss.Height)
	positive("boss.health", c.Boss.Health)
	positive("boss.bullets", c.Boss.Bullets)
	positive("boss.bullet_radius", c.Boss.BulletRadius)
	positive("boss.bullet_speed", c.Boss.BulletSpeed)
	positive("scoring.lives", c.Scoring.Lives)
	positive("scoring.hit_points", c.Scoring.HitPoints)
	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	// With an odd column count the middle chicken lines up with the ship's
	// spawn column and its bullet can hit the ship while it respawns.
	if c.Formation.Columns%2 != 0 {
		errs = append(errs, fmt.Errorf("formation.columns must be even, got %d", c.Formation.Columns))
	}

	if c.Formation.Step < 0 || c.Boss.Step < 0 {
		errs = append(errs, errors.New("sweep steps must not be negative"))
	}

	inner := c.Screen.Width - 2*c.Screen.Margin
	if c.Formation.Columns > 0 && c.Formation.EnemyWidth > inner/c.Formation.Columns {
		errs = append(errs, fmt.Errorf("formation of %d x %dpx does not fit %dpx between margins",
			c.Formation.Columns, c.Formation.EnemyWidth, inner))
	}
	if c.Boss.Width > inner {
		errs = append(errs, fmt.Errorf("boss width %d does not fit %dpx between margins", c.Boss.Width, inner))
	}
	if c.Player.ShipWidth > inner {
		errs = append(errs, fmt.Errorf("ship width %d does not fit %dpx between margins", c.Player.ShipWidth, inner))
	}
	for name, lvl := range map[string]LevelConfig{"levels.one": c.Levels.One, "levels.two": c.Levels.Two} {
		if lvl.ShipTopMarginFactor < 1 {
			errs = append(errs, fmt.Errorf("%s.ship_top_margin_factor must be at least 1", name))
			continue
		}
		if c.ShipTop(lvl)+c.Player.ShipHeight > c.Screen.Height-c.Screen.Margin {
			errs = append(errs, fmt.Errorf("%s leaves no vertical room for the ship", name))
		}
	}

	if c.Timing.FormationTick < 0 || c.Timing.BossTick < 0 || c.Timing.HitPause < 0 ||
		c.Timing.MoveDebounce < 0 || c.Timing.KeyPoll < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}
