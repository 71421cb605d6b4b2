package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/chickens.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/chickens.yaml and is used when the embedded file
// cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 384,
			Margin: 16,
		},
		Player: PlayerConfig{
			ShipWidth:    48,
			ShipHeight:   32,
			BulletRadius: 4,
			BulletSpeed:  8,
		},
		Formation: FormationConfig{
			Columns:      6,
			EnemyWidth:   56,
			EnemyHeight:  16,
			Top:          32,
			Step:         8,
			BulletRadius: 4,
			BulletSpeed:  8,
		},
		Boss: BossConfig{
			Width:        160,
			Height:       48,
			Top:          32,
			Health:       20,
			Bullets:      3,
			Step:         8,
			BulletRadius: 4,
			BulletSpeed:  8,
		},
		Scoring: ScoringConfig{
			Lives:     3,
			HitPoints: 5,
		},
		Levels: LevelsConfig{
			One: LevelConfig{ShipTopMarginFactor: 1},
			Two: LevelConfig{ShipTopMarginFactor: 7},
		},
		Timing: TimingConfig{
			FormationTick: 30 * time.Millisecond,
			BossTick:      20 * time.Millisecond,
			HitPause:      500 * time.Millisecond,
			MoveDebounce:  10 * time.Millisecond,
			KeyPoll:       15 * time.Millisecond,
		},
		Render: RenderConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
