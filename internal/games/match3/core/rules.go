package core

import "time"

// Rules holds the scoring, special and level constants.
type Rules struct {
	// Per-pass scoring
	PointsPerCell      int // Base points per matched cell
	FeverMultiplier    int // Applied to base points while fever is active
	SizeBonusThreshold int // Size bonus applies when more cells than this match
	SizeBonusPerCell   int // Size bonus points per matched cell
	ComboBonus         int // Combo bonus is combo * ComboBonus

	// Timed windows
	FeverCombo    int
	FeverDuration time.Duration
	CrazyCombo    int
	CrazyDuration time.Duration

	// Specials
	BombThreshold     int // Matched cells in one pass that spawn a bomb
	RainbowThreshold  int // Matched cells in one pass that spawn a rainbow
	BombCellPoints    int
	RainbowCellPoints int

	// Golden rain: a per-pass chance (in percent) of a flat bonus
	GoldenRainPercent int
	GoldenRainBonus   int

	// Levels
	InitialMoves   int // Move budget of level 1, and base of later budgets
	InitialTarget  int // Target of level 1
	TargetPerLevel int // Linear term of the target for level >= 2
	TargetCurve    int // Quadratic term of the target for level >= 2
	MovesPerLevel  int // Extra moves granted per level
	MaxMoves       int // Upper bound of any level's move budget
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		PointsPerCell:      15,
		FeverMultiplier:    2,
		SizeBonusThreshold: 5,
		SizeBonusPerCell:   10,
		ComboBonus:         50,

		FeverCombo:    5,
		FeverDuration: 10 * time.Second,
		CrazyCombo:    10,
		CrazyDuration: 3 * time.Second,

		BombThreshold:     4,
		RainbowThreshold:  5,
		BombCellPoints:    20,
		RainbowCellPoints: 30,

		GoldenRainPercent: 0,
		GoldenRainBonus:   500,

		InitialMoves:   30,
		InitialTarget:  1000,
		TargetPerLevel: 1000,
		TargetCurve:    250,
		MovesPerLevel:  2,
		MaxMoves:       50,
	}
}

// TargetForLevel returns the score needed to clear a level.
// Level 1 uses InitialTarget; later levels use
// TargetPerLevel*level + TargetCurve*(level-1)^2.
func (r Rules) TargetForLevel(level int) int {
	if level <= 1 {
		return r.InitialTarget
	}
	k := level - 1
	return r.TargetPerLevel*level + r.TargetCurve*k*k
}

// MovesForLevel returns the move budget granted on entering a level,
// InitialMoves + MovesPerLevel*(level-1) capped at MaxMoves.
func (r Rules) MovesForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	moves := r.InitialMoves + r.MovesPerLevel*(level-1)
	if r.MaxMoves > 0 && moves > r.MaxMoves {
		moves = r.MaxMoves
	}
	return moves
}
