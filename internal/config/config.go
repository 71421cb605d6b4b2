// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import "time"

// GameConfig contains all tunable parameters of the game.
// Geometry is in play-field pixels.
type GameConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Formation FormationConfig `yaml:"formation"`
	Boss      BossConfig      `yaml:"boss"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Levels    LevelsConfig    `yaml:"levels"`
	Timing    TimingConfig    `yaml:"timing"`
	Render    RenderConfig    `yaml:"render"`
}

// ScreenConfig defines the play field.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"` // Minimum distance entities keep from each edge
}

// PlayerConfig defines the ship and its bullet.
type PlayerConfig struct {
	ShipWidth    int `yaml:"ship_width"`
	ShipHeight   int `yaml:"ship_height"`
	BulletRadius int `yaml:"bullet_radius"`
	BulletSpeed  int `yaml:"bullet_speed"` // Pixels per tick, upwards
}

// FormationConfig defines the level one chicken row.
type FormationConfig struct {
	Columns      int `yaml:"columns"`
	EnemyWidth   int `yaml:"enemy_width"`
	EnemyHeight  int `yaml:"enemy_height"`
	Top          int `yaml:"top"`  // Distance of the row below the top margin
	Step         int `yaml:"step"` // Horizontal sweep per tick
	BulletRadius int `yaml:"bullet_radius"`
	BulletSpeed  int `yaml:"bullet_speed"` // Pixels per tick, downwards
}

// BossConfig defines the level two boss.
type BossConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Top          int `yaml:"top"` // Distance below the top margin
	Health       int `yaml:"health"`
	Bullets      int `yaml:"bullets"` // Simultaneously live bullets
	Step         int `yaml:"step"`
	BulletRadius int `yaml:"bullet_radius"`
	BulletSpeed  int `yaml:"bullet_speed"`
}

// ScoringConfig defines lives and points.
type ScoringConfig struct {
	Lives     int `yaml:"lives"`
	HitPoints int `yaml:"hit_points"` // Score added per enemy or boss hit
}

// LevelsConfig holds per-level movement bounds.
type LevelsConfig struct {
	One LevelConfig `yaml:"one"`
	Two LevelConfig `yaml:"two"`
}

// LevelConfig defines per-level ship bounds.
// The two levels are configured independently; level two keeps the ship
// further away from the top edge.
type LevelConfig struct {
	ShipTopMarginFactor int `yaml:"ship_top_margin_factor"` // Top bound = margin * factor
}

// TimingConfig holds the fixed delays that pace the game loop.
type TimingConfig struct {
	FormationTick time.Duration `yaml:"formation_tick"` // Delay after each level one tick
	BossTick      time.Duration `yaml:"boss_tick"`      // Delay after each level two tick
	HitPause      time.Duration `yaml:"hit_pause"`      // Pause between ship hit and respawn
	MoveDebounce  time.Duration `yaml:"move_debounce"`  // Extra delay after a ship move
	KeyPoll       time.Duration `yaml:"key_poll"`       // Poll interval while blocked on a key
}

// RenderConfig defines how play-field pixels map to terminal cells.
type RenderConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ShipTop returns the top movement bound of the ship for a level config.
func (c GameConfig) ShipTop(level LevelConfig) int {
	factor := level.ShipTopMarginFactor
	if factor < 1 {
		factor = 1
	}
	return c.Screen.Margin * factor
}

// Columns returns the play field width in terminal cells.
func (c GameConfig) Columns() int {
	return c.Screen.Width / c.Render.CellWidth
}

// Rows returns the play field height in terminal cells.
func (c GameConfig) Rows() int {
	return c.Screen.Height / c.Render.CellHeight
}
