package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Size:   6,
			Colors: 6,
		},
		Scoring: Match3Scoring{
			PointsPerCell:      15,
			FeverMultiplier:    2,
			SizeBonusThreshold: 5,
			SizeBonusPerCell:   10,
			ComboBonus:         50,
		},
		Windows: Match3Windows{
			FeverCombo:   5,
			FeverSeconds: 10,
			CrazyCombo:   10,
			CrazySeconds: 3,
		},
		Specials: Match3Specials{
			BombThreshold:     4,
			RainbowThreshold:  5,
			BombCellPoints:    20,
			RainbowCellPoints: 30,
		},
		Levels: Match3Levels{
			InitialMoves:   30,
			InitialTarget:  1000,
			TargetPerLevel: 1000,
			TargetCurve:    250,
			MovesPerLevel:  2,
			MaxMoves:       50,
		},
		Bonus: Match3Bonus{
			GoldenRainPercent: 0,
			GoldenRainPoints:  500,
		},
		Engine: Match3Engine{
			MaxCascadePasses: 256,
		},
	}
}

// DefaultMatch3YAML returns the embedded default YAML.
func DefaultMatch3YAML() []byte {
	return defaultMatch3YAML
}
