package core

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Construction errors returned by Options.Validate and New.
var (
	ErrInvalidSize   = errors.New("core: invalid board size")
	ErrInvalidColors = errors.New("core: invalid color count")
	ErrInvalidBudget = errors.New("core: invalid move budget or target")
	ErrInvalidRules  = errors.New("core: invalid rules")
)

// DefaultMaxCascadePasses bounds a single resolution.
const DefaultMaxCascadePasses = 256

// Options configures an Engine.
type Options struct {
	Size             int   // Board rows and columns
	Colors           int   // Number of token colors
	Rules            Rules // Scoring, specials and levels
	MaxCascadePasses int   // Passes before the resolver regenerates the board

	Seed   int64       // Used when Source is nil
	Source Source      // Random source; defaults to NewSource(Seed)
	Clock  Clock       // Defaults to SystemClock()
	Logger *log.Logger // Defaults to a logger that discards everything

	// Board, when set, is used as the first game's layout instead of a
	// generated one. It must be Size x Size. It may contain runs and
	// specials; call Engine.Resolve to settle it.
	Board *Board
}

// DefaultOptions returns a 6x6 board with 6 colors and the standard rules.
func DefaultOptions() Options {
	return Options{
		Size:             6,
		Colors:           6,
		Rules:            DefaultRules(),
		MaxCascadePasses: DefaultMaxCascadePasses,
	}
}

// Validate checks that the options describe a playable game.
func (o Options) Validate() error {
	if o.Size < minRun {
		return fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, o.Size, minRun)
	}
	if o.Colors < 2 {
		return fmt.Errorf("%w: %d (minimum 2)", ErrInvalidColors, o.Colors)
	}
	if o.Colors > 10 {
		return fmt.Errorf("%w: %d (maximum 10)", ErrInvalidColors, o.Colors)
	}
	r := o.Rules
	if r.InitialMoves <= 0 || r.InitialTarget <= 0 {
		return fmt.Errorf("%w: moves %d, target %d", ErrInvalidBudget, r.InitialMoves, r.InitialTarget)
	}
	if r.MaxMoves > 0 && r.MaxMoves < r.InitialMoves {
		return fmt.Errorf("%w: max moves %d below initial moves %d", ErrInvalidBudget, r.MaxMoves, r.InitialMoves)
	}
	if r.TargetPerLevel < 0 || r.TargetCurve < 0 || r.MovesPerLevel < 0 {
		return fmt.Errorf("%w: level growth target %d, curve %d, moves %d", ErrInvalidBudget, r.TargetPerLevel, r.TargetCurve, r.MovesPerLevel)
	}
	if r.FeverCombo <= 0 || r.CrazyCombo <= 0 {
		return fmt.Errorf("%w: fever combo %d, crazy combo %d", ErrInvalidRules, r.FeverCombo, r.CrazyCombo)
	}
	if r.FeverDuration < 0 || r.CrazyDuration < 0 {
		return fmt.Errorf("%w: fever %v, crazy %v", ErrInvalidRules, r.FeverDuration, r.CrazyDuration)
	}
	if r.FeverMultiplier < 1 {
		return fmt.Errorf("%w: fever multiplier %d (minimum 1)", ErrInvalidRules, r.FeverMultiplier)
	}
	if r.PointsPerCell < 0 || r.SizeBonusThreshold < 0 || r.SizeBonusPerCell < 0 || r.ComboBonus < 0 {
		return fmt.Errorf("%w: negative scoring value", ErrInvalidRules)
	}
	if r.BombCellPoints < 0 || r.RainbowCellPoints < 0 || r.GoldenRainBonus < 0 {
		return fmt.Errorf("%w: negative bonus points", ErrInvalidRules)
	}
	if r.BombThreshold < minRun || r.RainbowThreshold < r.BombThreshold {
		return fmt.Errorf("%w: bomb threshold %d, rainbow threshold %d", ErrInvalidRules, r.BombThreshold, r.RainbowThreshold)
	}
	if r.GoldenRainPercent < 0 || r.GoldenRainPercent > 100 {
		return fmt.Errorf("%w: golden rain percent %d", ErrInvalidRules, r.GoldenRainPercent)
	}
	if o.MaxCascadePasses < 0 {
		return fmt.Errorf("%w: max cascade passes %d", ErrInvalidRules, o.MaxCascadePasses)
	}
	if o.Board != nil && o.Board.Size() != o.Size {
		return fmt.Errorf("%w: layout is %dx%d, options say %d", ErrInvalidSize, o.Board.Size(), o.Board.Size(), o.Size)
	}
	return nil
}
