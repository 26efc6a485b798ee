package core

import "time"

// Session is the progress of one game. Values returned by Engine.Session
// are copies.
type Session struct {
	Score          int
	Level          int
	Target         int
	MovesRemaining int
	Combo          int
	MaxCombo       int
	FeverActive    bool
	FeverUntil     time.Time
	CrazyActive    bool
	CrazyUntil     time.Time
	GameOver       bool
}

// PassScore is the breakdown of points awarded by one cascade pass.
type PassScore struct {
	Matched    int  // Cells matched in the pass
	Fever      bool // Fever was active when the pass started
	Base       int  // Matched * PointsPerCell, times FeverMultiplier under fever
	SizeBonus  int
	ComboBonus int
	CrazyBonus int // Points added by the crazy doubling, if it started this pass
}

// Points returns the pass score proper, base plus size bonus.
func (p PassScore) Points() int {
	return p.Base + p.SizeBonus
}

// Total returns every point the pass added to the score.
func (p PassScore) Total() int {
	return p.Base + p.SizeBonus + p.ComboBonus + p.CrazyBonus
}

// LevelOutcome is the result of evaluating a settled session.
type LevelOutcome int

const (
	LevelContinue LevelOutcome = iota
	LevelClear
	LevelFailed
)

// Scorekeeper applies the scoring rules to a Session.
type Scorekeeper struct {
	Rules   Rules
	Session Session
}

// NewScorekeeper returns a scorekeeper holding a fresh level-1 session.
func NewScorekeeper(rules Rules) *Scorekeeper {
	k := &Scorekeeper{Rules: rules}
	k.Reset()
	return k
}

// Reset starts a new session at level 1.
func (k *Scorekeeper) Reset() {
	k.Session = Session{
		Level:          1,
		Target:         k.Rules.TargetForLevel(1),
		MovesRemaining: k.Rules.MovesForLevel(1),
	}
}

// Expire closes fever and crazy windows whose end time has passed and
// returns the corresponding events.
func (k *Scorekeeper) Expire(now time.Time) []Event {
	var events []Event
	s := &k.Session
	if s.FeverActive && !now.Before(s.FeverUntil) {
		s.FeverActive = false
		s.FeverUntil = time.Time{}
		events = append(events, FeverExited{})
	}
	if s.CrazyActive && !now.Before(s.CrazyUntil) {
		s.CrazyActive = false
		s.CrazyUntil = time.Time{}
		events = append(events, CrazyExited{})
	}
	return events
}

// ScorePass awards the points of one cascade pass that matched n cells.
// fever is whether fever was active when the pass started.
// Returned events are ComboChanged and, when thresholds are crossed,
// FeverEntered and CrazyEntered.
func (k *Scorekeeper) ScorePass(n int, fever bool, now time.Time) (PassScore, []Event) {
	r := k.Rules
	s := &k.Session
	ps := PassScore{Matched: n, Fever: fever}

	ps.Base = n * r.PointsPerCell
	if fever {
		ps.Base *= r.FeverMultiplier
	}
	if n > r.SizeBonusThreshold {
		ps.SizeBonus = n * r.SizeBonusPerCell
	}

	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	ps.ComboBonus = s.Combo * r.ComboBonus
	events := []Event{ComboChanged{Combo: s.Combo, Bonus: ps.ComboBonus}}

	s.Score += ps.Base + ps.SizeBonus + ps.ComboBonus

	if s.Combo >= r.FeverCombo && !s.FeverActive {
		s.FeverActive = true
		s.FeverUntil = now.Add(r.FeverDuration)
		events = append(events, FeverEntered{Until: s.FeverUntil})
	}
	if s.Combo >= r.CrazyCombo && !s.CrazyActive {
		s.CrazyActive = true
		s.CrazyUntil = now.Add(r.CrazyDuration)
		ps.CrazyBonus = s.Score
		s.Score *= 2
		events = append(events, CrazyEntered{Until: s.CrazyUntil, Bonus: ps.CrazyBonus})
	}
	return ps, events
}

// ResetCombo sets the combo counter to zero. It reports whether the combo
// was non-zero before.
func (k *Scorekeeper) ResetCombo() bool {
	if k.Session.Combo == 0 {
		return false
	}
	k.Session.Combo = 0
	return true
}

// AddScore adds flat points, e.g. from special activations or golden rain.
func (k *Scorekeeper) AddScore(points int) {
	k.Session.Score += points
}

// SpendMove consumes one move from the budget.
func (k *Scorekeeper) SpendMove() {
	k.Session.MovesRemaining--
}

// Evaluate checks a settled session against its target and move budget.
func (k *Scorekeeper) Evaluate() LevelOutcome {
	s := k.Session
	switch {
	case s.Score >= s.Target:
		return LevelClear
	case s.MovesRemaining <= 0:
		return LevelFailed
	}
	return LevelContinue
}

// AdvanceLevel moves to the next level, recomputing target and budget.
// Score, combo and timed windows carry over.
func (k *Scorekeeper) AdvanceLevel() {
	s := &k.Session
	s.Level++
	s.Target = k.Rules.TargetForLevel(s.Level)
	s.MovesRemaining = k.Rules.MovesForLevel(s.Level)
}
