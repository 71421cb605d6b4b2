package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.Lives = 5
		cfg.Boss.Health = cfg.Boss.Health * 3 / 5
		cfg.Formation.BulletSpeed = max(1, cfg.Formation.BulletSpeed/2)
		cfg.Boss.BulletSpeed = max(1, cfg.Boss.BulletSpeed/2)
	case DifficultyHard:
		cfg.Scoring.Lives = 2
		cfg.Boss.Health = cfg.Boss.Health * 3 / 2
		cfg.Formation.BulletSpeed += cfg.Formation.BulletSpeed / 2
		cfg.Boss.BulletSpeed += cfg.Boss.BulletSpeed / 2
	}
}
