package core

// swap spends a move and tries a to b. The board is left unchanged unless the
// swap creates a match, in which case the cascade is resolved.
func (e *Engine) swap(a, b Coord) Outcome {
	e.spendMove()
	e.board.Swap(a, b)
	if !HasMatches(e.board) {
		e.board.Swap(a, b)
		e.emit(SwapRejected{A: a, B: b})
		e.endCombo()
		e.evaluateLevel()
		return OutcomeSwapRejected
	}
	e.emit(SwapAccepted{A: a, B: b})
	e.resolve()
	e.evaluateLevel()
	return OutcomeSwapAccepted
}

// activate spends a move and fires the special at c.
func (e *Engine) activate(c Coord) {
	e.spendMove()
	cell := e.board.Get(c)
	ev := SpecialActivated{At: c, Kind: cell.Kind, Color: -1}
	switch cell.Kind {
	case KindBomb:
		ev.Affected = BombArea(e.board, c)
		ev.Points = len(ev.Affected) * e.opts.Rules.BombCellPoints
	case KindRainbow:
		ev.Color = e.rng.Intn(e.opts.Colors)
		ev.Affected = RainbowTargets(e.board, c, ev.Color)
		ev.Points = len(ev.Affected) * e.opts.Rules.RainbowCellPoints
	}
	for _, at := range ev.Affected {
		e.board.Set(at, Empty())
	}
	e.emit(ev)
	e.keeper.AddScore(ev.Points)
	e.emit(ScoreChanged{Score: e.keeper.Session.Score, Delta: ev.Points})
	e.logger.Debug("special activated", "kind", cell.Kind, "at", c, "cells", len(ev.Affected), "points", ev.Points)

	e.collapse()
	e.resolve()
	e.evaluateLevel()
}

// resolve runs cascade passes until the board has no runs. Each pass clears
// the current matches, possibly leaves a special, collapses, refills and
// scores. Past MaxCascadePasses the board is regenerated instead. The combo
// streak ends when the board settles.
func (e *Engine) resolve() {
	for pass := 1; ; pass++ {
		if e.restart {
			return
		}
		e.expireWindows()
		matches := FindMatches(e.board)
		if len(matches) == 0 {
			e.endCombo()
			if pass > 1 {
				e.logger.Debug("cascade settled", "passes", pass-1, "score", e.keeper.Session.Score)
			}
			return
		}
		if pass > e.opts.MaxCascadePasses {
			e.logger.Warn("cascade pass limit reached, regenerating board", "limit", e.opts.MaxCascadePasses)
			e.regenerate(ReasonCascadeLimit)
			e.endCombo()
			return
		}
		e.runPass(pass, matches)
	}
}

func (e *Engine) runPass(pass int, matches MatchSet) {
	s := &e.keeper.Session
	fever := s.FeverActive
	before := s.Score

	cleared := matches.Coords()
	kind, spawn := e.opts.Rules.SpecialFor(len(matches))
	var anchor Coord
	if spawn {
		anchor = matches.Center()
		cleared = removeCoord(cleared, anchor)
	}
	for _, c := range cleared {
		e.board.Set(c, Empty())
	}

	ps, scoreEvents := e.keeper.ScorePass(len(matches), fever, e.clock.Now())
	e.emit(MatchesCleared{Pass: pass, Matched: len(matches), Cells: cleared, Points: ps.Points()})
	if spawn {
		e.board.Set(anchor, Cell{Kind: kind})
		e.emit(SpecialSpawned{At: anchor, Kind: kind})
	}
	e.collapse()
	for _, ev := range scoreEvents {
		e.emit(ev)
	}

	r := e.opts.Rules
	if r.GoldenRainPercent > 0 && e.rng.Intn(100) < r.GoldenRainPercent {
		e.keeper.AddScore(r.GoldenRainBonus)
		e.emit(GoldenRain{Bonus: r.GoldenRainBonus})
	}
	e.emit(ScoreChanged{Score: s.Score, Delta: s.Score - before})
}

// endCombo resets the combo streak, emitting ComboChanged if it was running.
func (e *Engine) endCombo() {
	if e.keeper.ResetCombo() {
		e.emit(ComboChanged{})
	}
}

// collapse applies gravity and refills the board.
func (e *Engine) collapse() {
	moves := ApplyGravity(e.board)
	e.emit(GravityApplied{Moves: moves})
	placed := Refill(e.board, e.opts.Colors, e.rng)
	e.emit(BoardRefilled{Cells: placed})
	e.board.mustBeFull()
}

func removeCoord(coords []Coord, c Coord) []Coord {
	out := coords[:0]
	for _, x := range coords {
		if x != c {
			out = append(out, x)
		}
	}
	return out
}
