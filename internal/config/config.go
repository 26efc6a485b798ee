// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"fmt"
	"strings"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board    Match3Board    `yaml:"board"`
	Scoring  Match3Scoring  `yaml:"scoring"`
	Windows  Match3Windows  `yaml:"windows"`
	Specials Match3Specials `yaml:"specials"`
	Levels   Match3Levels   `yaml:"levels"`
	Bonus    Match3Bonus    `yaml:"bonus"`
	Engine   Match3Engine   `yaml:"engine"`
}

// Match3Board defines the board shape.
type Match3Board struct {
	Size   int `yaml:"size"`
	Colors int `yaml:"colors"`
}

// Match3Scoring defines per-pass points.
type Match3Scoring struct {
	PointsPerCell      int `yaml:"points_per_cell"`
	FeverMultiplier    int `yaml:"fever_multiplier"`
	SizeBonusThreshold int `yaml:"size_bonus_threshold"` // Bonus applies above this many cells
	SizeBonusPerCell   int `yaml:"size_bonus_per_cell"`
	ComboBonus         int `yaml:"combo_bonus"` // Multiplied by the combo counter
}

// Match3Windows defines the fever and crazy windows.
type Match3Windows struct {
	FeverCombo   int     `yaml:"fever_combo"`
	FeverSeconds float64 `yaml:"fever_seconds"`
	CrazyCombo   int     `yaml:"crazy_combo"`
	CrazySeconds float64 `yaml:"crazy_seconds"`
}

// Match3Specials defines when specials spawn and what they pay.
type Match3Specials struct {
	BombThreshold     int `yaml:"bomb_threshold"`
	RainbowThreshold  int `yaml:"rainbow_threshold"`
	BombCellPoints    int `yaml:"bomb_cell_points"`
	RainbowCellPoints int `yaml:"rainbow_cell_points"`
}

// Match3Levels defines targets and move budgets.
type Match3Levels struct {
	InitialMoves   int `yaml:"initial_moves"`
	InitialTarget  int `yaml:"initial_target"`
	TargetPerLevel int `yaml:"target_per_level"`
	TargetCurve    int `yaml:"target_curve"`
	MovesPerLevel  int `yaml:"moves_per_level"`
	MaxMoves       int `yaml:"max_moves"`
}

// Match3Bonus defines the golden rain bonus.
type Match3Bonus struct {
	GoldenRainPercent int `yaml:"golden_rain_percent"` // 0 disables it
	GoldenRainPoints  int `yaml:"golden_rain_points"`
}

// Match3Engine defines resolver limits.
type Match3Engine struct {
	MaxCascadePasses int `yaml:"max_cascade_passes"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Describe returns a one-line summary of the preset.
func (p DifficultyPreset) Describe() string {
	switch p {
	case DifficultyEasy:
		return "5 colors, 10 extra moves"
	case DifficultyNormal:
		return "standard rules"
	case DifficultyHard:
		return "7 colors, 5 fewer moves"
	case DifficultyFixed:
		return "move budget never grows"
	default:
		return ""
	}
}

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", s)
}
