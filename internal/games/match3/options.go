package match3

import (
	"time"

	"github.com/vovakirdan/match3-arcade/internal/config"
	engine "github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

// OptionsFromConfig converts a loaded configuration into engine options.
// Seed, Source, Clock, Logger and Board are left for the caller.
func OptionsFromConfig(cfg config.Match3Config) engine.Options {
	opts := engine.DefaultOptions()
	opts.Size = cfg.Board.Size
	opts.Colors = cfg.Board.Colors
	opts.MaxCascadePasses = cfg.Engine.MaxCascadePasses

	r := &opts.Rules
	r.PointsPerCell = cfg.Scoring.PointsPerCell
	r.FeverMultiplier = cfg.Scoring.FeverMultiplier
	r.SizeBonusThreshold = cfg.Scoring.SizeBonusThreshold
	r.SizeBonusPerCell = cfg.Scoring.SizeBonusPerCell
	r.ComboBonus = cfg.Scoring.ComboBonus

	r.FeverCombo = cfg.Windows.FeverCombo
	r.FeverDuration = seconds(cfg.Windows.FeverSeconds)
	r.CrazyCombo = cfg.Windows.CrazyCombo
	r.CrazyDuration = seconds(cfg.Windows.CrazySeconds)

	r.BombThreshold = cfg.Specials.BombThreshold
	r.RainbowThreshold = cfg.Specials.RainbowThreshold
	r.BombCellPoints = cfg.Specials.BombCellPoints
	r.RainbowCellPoints = cfg.Specials.RainbowCellPoints

	r.GoldenRainPercent = cfg.Bonus.GoldenRainPercent
	r.GoldenRainBonus = cfg.Bonus.GoldenRainPoints

	r.InitialMoves = cfg.Levels.InitialMoves
	r.InitialTarget = cfg.Levels.InitialTarget
	r.TargetPerLevel = cfg.Levels.TargetPerLevel
	r.TargetCurve = cfg.Levels.TargetCurve
	r.MovesPerLevel = cfg.Levels.MovesPerLevel
	r.MaxMoves = cfg.Levels.MaxMoves
	return opts
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
