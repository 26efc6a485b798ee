package core_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/core"
)

// scenarioARows has a single run at row 2, cols 1-3. Clearing it and
// collapsing does not create another run.
var scenarioARows = []string{
	"012301",
	"230123",
	"055501",
	"230123",
	"012301",
	"230123",
}

// swapRows has no runs. Swapping (0,2) and (1,2) makes a run of three in
// row 0; swapping (0,0) and (0,1) exchanges equal tokens.
var swapRows = []string{
	"001301",
	"230123",
	"012301",
	"230123",
	"012301",
	"230123",
}

var (
	matchA = core.At(0, 2)
	matchB = core.At(1, 2)
)

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.Options)
		err    error
	}{
		{"tiny board", func(o *core.Options) { o.Size = 2 }, core.ErrInvalidSize},
		{"one color", func(o *core.Options) { o.Colors = 1 }, core.ErrInvalidColors},
		{"too many colors", func(o *core.Options) { o.Colors = 11 }, core.ErrInvalidColors},
		{"no moves", func(o *core.Options) { o.Rules.InitialMoves = 0 }, core.ErrInvalidBudget},
		{"no target", func(o *core.Options) { o.Rules.InitialTarget = 0 }, core.ErrInvalidBudget},
		{"layout size", func(o *core.Options) { o.Board = core.NewBoard(4) }, core.ErrInvalidSize},
		{"golden rain", func(o *core.Options) { o.Rules.GoldenRainPercent = 101 }, core.ErrInvalidRules},
		{"shrinking target", func(o *core.Options) { o.Rules.TargetPerLevel = -1 }, core.ErrInvalidBudget},
		{"negative moves per level", func(o *core.Options) { o.Rules.MovesPerLevel = -2 }, core.ErrInvalidBudget},
		{"zero fever combo", func(o *core.Options) { o.Rules.FeverCombo = 0 }, core.ErrInvalidRules},
		{"zero crazy combo", func(o *core.Options) { o.Rules.CrazyCombo = 0 }, core.ErrInvalidRules},
		{"negative fever duration", func(o *core.Options) { o.Rules.FeverDuration = -time.Second }, core.ErrInvalidRules},
		{"zero fever multiplier", func(o *core.Options) { o.Rules.FeverMultiplier = 0 }, core.ErrInvalidRules},
		{"negative points", func(o *core.Options) { o.Rules.PointsPerCell = -15 }, core.ErrInvalidRules},
		{"negative combo bonus", func(o *core.Options) { o.Rules.ComboBonus = -1 }, core.ErrInvalidRules},
		{"negative bomb points", func(o *core.Options) { o.Rules.BombCellPoints = -20 }, core.ErrInvalidRules},
		{"negative golden rain bonus", func(o *core.Options) { o.Rules.GoldenRainBonus = -500 }, core.ErrInvalidRules},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := core.DefaultOptions()
			tt.mutate(&opts)
			_, err := core.New(opts)
			if !errors.Is(err, tt.err) {
				t.Errorf("New() error = %v, expected %v", err, tt.err)
			}
		})
	}
}

func TestNewDealsSettledBoard(t *testing.T) {
	e, _ := newEngine(t, nil, nil)
	assertSettled(t, e.Board())

	s := e.Session()
	if s.Level != 1 || s.Target != 1000 || s.MovesRemaining != 30 || s.Score != 0 {
		t.Errorf("unexpected initial session %+v", s)
	}
}

func TestResolveSingleRun(t *testing.T) {
	e, _ := newEngine(t, scenarioARows, nil)

	res := e.Resolve()

	if res.Outcome != core.OutcomeResolved {
		t.Errorf("Outcome = %v, expected resolved", res.Outcome)
	}
	cleared := eventsOf[core.MatchesCleared](res.Events)
	if len(cleared) == 0 {
		t.Fatal("expected MatchesCleared")
	}
	first := cleared[0]
	if first.Pass != 1 || first.Matched != 3 || first.Points != 45 {
		t.Errorf("first pass = %+v, expected pass 1, 3 cells, 45 points", first)
	}
	if len(first.Cells) != 3 {
		t.Errorf("expected 3 cleared cells, got %v", first.Cells)
	}
	if len(eventsOf[core.SpecialSpawned](res.Events)) != 0 && len(cleared) == 1 {
		t.Error("a 3-cell pass must not spawn a special")
	}
	if e.Session().MovesRemaining != 30 {
		t.Errorf("Resolve must not spend moves, got %d", e.Session().MovesRemaining)
	}
	assertSettled(t, e.Board())
}

func TestPassEventOrder(t *testing.T) {
	e, _ := newEngine(t, scenarioARows, func(o *core.Options) {
		o.Source = newScriptedSource(4, 5, 4) // refill row 0 cols 1-3 without a run
	})

	res := e.Resolve()

	var names []string
	for _, ev := range res.Events {
		switch ev.(type) {
		case core.MatchesCleared:
			names = append(names, "cleared")
		case core.GravityApplied:
			names = append(names, "gravity")
		case core.BoardRefilled:
			names = append(names, "refill")
		case core.ComboChanged:
			names = append(names, "combo")
		case core.ScoreChanged:
			names = append(names, "score")
		}
	}
	expected := []string{"cleared", "gravity", "refill", "combo", "score", "combo"}
	if len(names) != len(expected) {
		t.Fatalf("events = %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("event %d = %s, expected %s", i, names[i], expected[i])
		}
	}
	if s := e.Session(); s.Score != 95 || s.Combo != 0 || s.MaxCombo != 1 {
		t.Errorf("Score = %d, Combo = %d, MaxCombo = %d, expected 95, 0 and 1", s.Score, s.Combo, s.MaxCombo)
	}
}

func TestCascadeSecondPass(t *testing.T) {
	// Refilling row 0 cols 1-3 with color 4 creates a second run.
	e, _ := newEngine(t, scenarioARows, func(o *core.Options) {
		o.Source = newScriptedSource(4, 4, 4)
	})

	res := e.Resolve()

	cleared := eventsOf[core.MatchesCleared](res.Events)
	if len(cleared) < 2 {
		t.Fatalf("expected at least 2 passes, got %d", len(cleared))
	}
	if cleared[1].Pass != 2 {
		t.Errorf("second pass index = %d, expected 2", cleared[1].Pass)
	}
	for _, c := range cleared[1].Cells {
		if c.Row != 0 {
			t.Errorf("second pass should clear row 0, got %v", c)
		}
	}
	if e.Session().MaxCombo < 2 {
		t.Errorf("combo should count passes, got %+v", e.Session())
	}
	if e.Session().Combo != 0 {
		t.Errorf("combo should end when the board settles, got %d", e.Session().Combo)
	}
	assertSettled(t, e.Board())
}

func TestCascadePassLimit(t *testing.T) {
	e, _ := newEngine(t, scenarioARows, func(o *core.Options) {
		o.Source = newScriptedSource(4, 4, 4)
		o.MaxCascadePasses = 1
	})

	res := e.Resolve()

	if n := len(eventsOf[core.MatchesCleared](res.Events)); n != 1 {
		t.Errorf("expected exactly 1 pass before the limit, got %d", n)
	}
	regen := eventsOf[core.BoardRegenerated](res.Events)
	if len(regen) != 1 || regen[0].Reason != core.ReasonCascadeLimit {
		t.Errorf("expected BoardRegenerated{cascade-limit}, got %v", regen)
	}
	assertSettled(t, e.Board())
}

func TestRainbowSpawnOnSixMatch(t *testing.T) {
	e, _ := newEngine(t, []string{
		"012301",
		"230123",
		"444444",
		"230123",
		"012301",
		"230123",
	}, nil)

	res := e.Resolve()

	first := eventsOf[core.MatchesCleared](res.Events)[0]
	if first.Matched != 6 || first.Points != 150 {
		t.Errorf("first pass = %+v, expected 6 cells and 150 points", first)
	}
	if len(first.Cells) != 5 {
		t.Errorf("the rainbow cell must not be cleared, got %d cells", len(first.Cells))
	}
	spawned := eventsOf[core.SpecialSpawned](res.Events)
	if len(spawned) == 0 || spawned[0].Kind != core.KindRainbow || spawned[0].At != core.At(2, 3) {
		t.Fatalf("expected rainbow at (2,3), got %v", spawned)
	}
	b := e.Board()
	if n := b.Count(func(c core.Cell) bool { return c.Kind == core.KindRainbow }); n < 1 {
		t.Errorf("expected a rainbow on the settled board\n%s", b)
	}
}

func TestBombSpawnOnFourMatch(t *testing.T) {
	e, _ := newEngine(t, []string{
		"012301",
		"230123",
		"044441",
		"230123",
		"012301",
		"230123",
	}, nil)

	res := e.Resolve()

	spawned := eventsOf[core.SpecialSpawned](res.Events)
	if len(spawned) == 0 || spawned[0].Kind != core.KindBomb || spawned[0].At != core.At(2, 3) {
		t.Fatalf("expected bomb at (2,3), got %v", spawned)
	}
}

func TestActivateBomb(t *testing.T) {
	e, _ := newEngine(t, []string{
		"012301",
		"230123",
		"01B301",
		"230123",
		"012301",
		"230123",
	}, nil)

	res := e.Activate(core.At(2, 2))

	if res.Outcome != core.OutcomeActivated {
		t.Fatalf("Outcome = %v, expected activated", res.Outcome)
	}
	act := eventsOf[core.SpecialActivated](res.Events)
	if len(act) != 1 {
		t.Fatalf("expected SpecialActivated, got %v", res.Events)
	}
	if len(act[0].Affected) != 9 || act[0].Points != 180 {
		t.Errorf("bomb cleared %d cells for %d points, expected 9 and 180", len(act[0].Affected), act[0].Points)
	}
	scores := eventsOf[core.ScoreChanged](res.Events)
	if len(scores) == 0 || scores[0].Delta != 180 {
		t.Errorf("first ScoreChanged should carry the bomb points, got %v", scores)
	}
	if e.Session().MovesRemaining != 29 {
		t.Errorf("activation should spend a move, got %d", e.Session().MovesRemaining)
	}
	assertSettled(t, e.Board())
}

func TestActivateRainbow(t *testing.T) {
	e, _ := newEngine(t, []string{
		"012301",
		"230123",
		"01R301",
		"230123",
		"012301",
		"230123",
	}, func(o *core.Options) {
		o.Source = newScriptedSource(1) // rainbow draws color 1
	})

	res := e.Select(core.At(2, 2))

	if res.Outcome != core.OutcomeActivated {
		t.Fatalf("Outcome = %v, expected activated", res.Outcome)
	}
	act := eventsOf[core.SpecialActivated](res.Events)[0]
	if act.Color != 1 {
		t.Errorf("Color = %d, expected 1", act.Color)
	}
	// Nine 1-tokens plus the rainbow itself.
	if len(act.Affected) != 10 || act.Points != 10*30 {
		t.Errorf("rainbow cleared %d cells for %d points, expected 10 and 300", len(act.Affected), act.Points)
	}
	if _, selected := e.Selection(); selected {
		t.Error("activating a special must not leave a selection")
	}
}

func TestActivateOrdinaryCell(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	if res := e.Activate(core.At(0, 0)); res.Outcome != core.OutcomeNotSpecial {
		t.Errorf("Outcome = %v, expected not-special", res.Outcome)
	}
	if e.Session().MovesRemaining != 30 {
		t.Error("a refused activation must not spend a move")
	}
}

func TestSelectFlow(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	if res := e.Select(core.At(0, 0)); res.Outcome != core.OutcomeSelected {
		t.Errorf("first tap: %v, expected selected", res.Outcome)
	}
	if res := e.Select(core.At(0, 0)); res.Outcome != core.OutcomeDeselected {
		t.Errorf("same tap: %v, expected deselected", res.Outcome)
	}
	if _, ok := e.Selection(); ok {
		t.Error("selection should be cleared")
	}

	e.Select(core.At(0, 0))
	if res := e.Select(core.At(3, 3)); res.Outcome != core.OutcomeSelected {
		t.Errorf("far tap: %v, expected selected", res.Outcome)
	}
	if at, ok := e.Selection(); !ok || at != core.At(3, 3) {
		t.Errorf("selection = %v %v, expected (3,3)", at, ok)
	}
	if e.Session().MovesRemaining != 30 {
		t.Error("selection changes must not spend moves")
	}
}

func TestSwapRejected(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	before := e.Board()

	e.Select(core.At(0, 0))
	res := e.Select(core.At(0, 1))

	if res.Outcome != core.OutcomeSwapRejected {
		t.Fatalf("Outcome = %v, expected swap-rejected", res.Outcome)
	}
	if !e.Board().Equal(before) {
		t.Error("a rejected swap must leave the board unchanged")
	}
	if e.Session().MovesRemaining != 29 {
		t.Errorf("a rejected swap still costs a move, got %d", e.Session().MovesRemaining)
	}
	if len(eventsOf[core.SwapRejected](res.Events)) != 1 {
		t.Errorf("expected SwapRejected, got %v", res.Events)
	}
}

func TestSwapAccepted(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	res := e.Swap(matchA, matchB)

	if res.Outcome != core.OutcomeSwapAccepted {
		t.Fatalf("Outcome = %v, expected swap-accepted", res.Outcome)
	}
	if len(eventsOf[core.SwapAccepted](res.Events)) != 1 {
		t.Error("expected SwapAccepted")
	}
	first := eventsOf[core.MatchesCleared](res.Events)[0]
	if first.Matched != 3 {
		t.Errorf("expected 3 matched cells, got %d", first.Matched)
	}
	s := e.Session()
	if s.MovesRemaining != 29 || s.Score <= 0 || s.MaxCombo < 1 {
		t.Errorf("unexpected session after swap %+v", s)
	}
	assertSettled(t, e.Board())
}

// lastCombo returns the value of the last ComboChanged event.
func lastCombo(t *testing.T, events []core.Event) int {
	t.Helper()
	cc := eventsOf[core.ComboChanged](events)
	if len(cc) == 0 {
		t.Fatalf("expected ComboChanged, got %v", events)
	}
	return cc[len(cc)-1].Combo
}

func TestComboResetsWhenSwapSettles(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	res := e.Swap(matchA, matchB)

	if res.Outcome != core.OutcomeSwapAccepted {
		t.Fatalf("Outcome = %v, expected swap-accepted", res.Outcome)
	}
	s := e.Session()
	if s.Combo != 0 {
		t.Errorf("Combo = %d, expected 0 after the board settled", s.Combo)
	}
	if s.MaxCombo < 1 {
		t.Errorf("MaxCombo = %d, expected the streak to be kept", s.MaxCombo)
	}
	if c := lastCombo(t, res.Events); c != 0 {
		t.Errorf("last ComboChanged = %d, expected 0", c)
	}
}

func TestComboResetsWhenActivationSettles(t *testing.T) {
	// The bomb refill puts color 4 across row 0 cols 1-3, so the
	// activation cascades at least once.
	e, _ := newEngine(t, []string{
		"012301",
		"230123",
		"01B301",
		"230123",
		"012301",
		"230123",
	}, func(o *core.Options) {
		o.Source = newScriptedSource(4, 2, 3, 4, 3, 2, 4, 2, 3)
	})

	res := e.Activate(core.At(2, 2))

	if res.Outcome != core.OutcomeActivated {
		t.Fatalf("Outcome = %v, expected activated", res.Outcome)
	}
	if len(eventsOf[core.MatchesCleared](res.Events)) == 0 {
		t.Fatalf("expected the refill to cascade, got %v", res.Events)
	}
	if e.Session().Combo != 0 {
		t.Errorf("Combo = %d, expected 0 after the board settled", e.Session().Combo)
	}
	if c := lastCombo(t, res.Events); c != 0 {
		t.Errorf("last ComboChanged = %d, expected 0", c)
	}
	assertSettled(t, e.Board())
}

func TestRejectedSwapKeepsComboAtZero(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	res := e.Swap(core.At(0, 0), core.At(0, 1))

	if res.Outcome != core.OutcomeSwapRejected {
		t.Fatalf("Outcome = %v, expected swap-rejected", res.Outcome)
	}
	if e.Session().Combo != 0 {
		t.Errorf("Combo = %d, expected 0", e.Session().Combo)
	}
	if cc := eventsOf[core.ComboChanged](res.Events); len(cc) != 0 {
		t.Errorf("no streak was running, expected no ComboChanged, got %v", cc)
	}
}

func TestCrazyNeedsOneLongCascade(t *testing.T) {
	e, clock := newEngine(t, nil, func(o *core.Options) {
		o.Seed = 7
		o.Rules.InitialTarget = 1_000_000_000
		o.Rules.InitialMoves = 200
		o.Rules.MaxMoves = 0
	})

	prev := 0
	for move := 0; move < 190 && !e.Session().GameOver; move++ {
		clock.Advance(4 * time.Second)
		a, b, ok := e.Hint()
		if !ok {
			e.Shuffle()
			continue
		}
		res := e.Swap(a, b)

		passes := len(eventsOf[core.MatchesCleared](res.Events))
		if n := len(eventsOf[core.CrazyEntered](res.Events)); n > 0 && passes < 10 {
			t.Fatalf("move %d: crazy entered after %d passes in one swap", move, passes)
		}
		s := e.Session()
		if s.Combo != 0 {
			t.Fatalf("move %d: Combo = %d after settling", move, s.Combo)
		}
		if s.Score < prev {
			t.Fatalf("move %d: score went down from %d to %d", move, prev, s.Score)
		}
		prev = s.Score
	}
	if prev <= 0 {
		t.Error("expected the hinted swaps to score")
	}
}

func TestSwapNotAdjacent(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	if res := e.Swap(core.At(0, 0), core.At(1, 1)); res.Outcome != core.OutcomeNotAdjacent {
		t.Errorf("Outcome = %v, expected not-adjacent", res.Outcome)
	}
	if e.Session().MovesRemaining != 30 {
		t.Error("an ignored drag must not spend a move")
	}
}

func TestInvalidCoordinate(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	before := e.Board()

	for _, c := range []core.Coord{core.At(-1, 0), core.At(0, 6), core.At(6, 6)} {
		if res := e.Select(c); res.Outcome != core.OutcomeInvalidCoordinate {
			t.Errorf("Select(%v) = %v, expected invalid-coordinate", c, res.Outcome)
		}
	}
	if res := e.Swap(core.At(0, 5), core.At(0, 6)); res.Outcome != core.OutcomeInvalidCoordinate {
		t.Errorf("Swap off board = %v, expected invalid-coordinate", res.Outcome)
	}
	if !e.Board().Equal(before) || e.Session().MovesRemaining != 30 {
		t.Error("invalid coordinates must not change state")
	}
}

func TestGameOver(t *testing.T) {
	e, _ := newEngine(t, swapRows, func(o *core.Options) {
		o.Rules.InitialMoves = 1
		o.Rules.MaxMoves = 1
	})

	res := e.Swap(core.At(0, 0), core.At(0, 1)) // equal tokens: rejected

	over := eventsOf[core.GameOver](res.Events)
	if len(over) != 1 {
		t.Fatalf("expected GameOver, got %v", res.Events)
	}
	if over[0].Score != 0 || over[0].Target != 1000 || over[0].Level != 1 {
		t.Errorf("GameOver = %+v", over[0])
	}
	if !e.Session().GameOver {
		t.Error("session should be over")
	}

	before := e.Board()
	for name, res := range map[string]core.Result{
		"select":   e.Select(core.At(1, 1)),
		"swap":     e.Swap(matchA, matchB),
		"activate": e.Activate(core.At(0, 0)),
		"shuffle":  e.Shuffle(),
	} {
		if res.Outcome != core.OutcomeGameOver {
			t.Errorf("%s after game over = %v, expected game-over", name, res.Outcome)
		}
	}
	if !e.Board().Equal(before) {
		t.Error("board changed after game over")
	}
}

func TestLevelClear(t *testing.T) {
	e, _ := newEngine(t, swapRows, func(o *core.Options) {
		o.Rules.InitialTarget = 10
	})

	res := e.Swap(matchA, matchB)

	cleared := eventsOf[core.LevelCleared](res.Events)
	if len(cleared) != 1 {
		t.Fatalf("expected LevelCleared, got %v", res.Events)
	}
	if cleared[0].Level != 2 || cleared[0].Target != 2250 || cleared[0].Moves != 32 {
		t.Errorf("LevelCleared = %+v, expected level 2, target 2250, moves 32", cleared[0])
	}
	regen := eventsOf[core.BoardRegenerated](res.Events)
	if len(regen) != 1 || regen[0].Reason != core.ReasonLevel {
		t.Errorf("expected BoardRegenerated{level}, got %v", regen)
	}
	s := e.Session()
	if s.Level != 2 || s.MovesRemaining != 32 || s.Score <= 0 {
		t.Errorf("unexpected session %+v", s)
	}
	assertSettled(t, e.Board())
}

func TestShuffle(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	before := e.Board()

	res := e.Shuffle()

	if res.Outcome != core.OutcomeShuffled {
		t.Fatalf("Outcome = %v, expected shuffled", res.Outcome)
	}
	if e.Session().MovesRemaining != 29 {
		t.Errorf("shuffle should cost a move, got %d", e.Session().MovesRemaining)
	}
	if e.Board().Equal(before) {
		t.Error("shuffle should deal a new board")
	}
	assertSettled(t, e.Board())
}

func TestNewGameResets(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)
	e.Swap(matchA, matchB)

	res := e.NewGame()

	if res.Outcome != core.OutcomeNewGame {
		t.Errorf("Outcome = %v, expected new-game", res.Outcome)
	}
	s := e.Session()
	if s.Score != 0 || s.Level != 1 || s.MovesRemaining != 30 || s.Combo != 0 || s.MaxCombo != 0 {
		t.Errorf("session not reset: %+v", s)
	}
	assertSettled(t, e.Board())
}

func TestListenerReentryIsIgnored(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	var outcomes []core.Outcome
	e.Subscribe(func(ev core.Event) {
		if _, ok := ev.(core.SwapAccepted); ok {
			outcomes = append(outcomes, e.Select(core.At(0, 0)).Outcome)
			outcomes = append(outcomes, e.Shuffle().Outcome)
		}
	})

	res := e.Swap(matchA, matchB)

	if res.Outcome != core.OutcomeSwapAccepted {
		t.Fatalf("Outcome = %v, expected swap-accepted", res.Outcome)
	}
	if len(outcomes) != 2 {
		t.Fatalf("listener ran %d times", len(outcomes))
	}
	for _, o := range outcomes {
		if o != core.OutcomeIgnored {
			t.Errorf("re-entrant action = %v, expected ignored", o)
		}
	}
	if e.Processing() {
		t.Error("engine should be idle after the action")
	}
}

func TestListenerReceivesEventsInOrder(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	var seen []core.Event
	e.Subscribe(func(ev core.Event) { seen = append(seen, ev) })

	res := e.Swap(matchA, matchB)

	if len(seen) != len(res.Events) {
		t.Fatalf("listener saw %d events, result has %d", len(seen), len(res.Events))
	}
	if !reflect.DeepEqual(seen, res.Events) {
		t.Error("listener events differ from the result events")
	}
}

func TestNewGameDuringActionIsDeferred(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	var pending core.Outcome
	e.Subscribe(func(ev core.Event) {
		if _, ok := ev.(core.SwapAccepted); ok {
			pending = e.NewGame().Outcome
		}
	})

	res := e.Swap(matchA, matchB)

	if pending != core.OutcomeRestartPending {
		t.Errorf("NewGame during action = %v, expected restart-pending", pending)
	}
	if n := len(eventsOf[core.MatchesCleared](res.Events)); n != 0 {
		t.Errorf("in-flight resolution should be discarded, got %d passes", n)
	}
	regen := eventsOf[core.BoardRegenerated](res.Events)
	if len(regen) != 1 || regen[0].Reason != core.ReasonNewGame {
		t.Errorf("expected BoardRegenerated{new-game}, got %v", regen)
	}
	s := e.Session()
	if s.Score != 0 || s.MovesRemaining != 30 {
		t.Errorf("session not reset: %+v", s)
	}
	assertSettled(t, e.Board())
}

func TestTickExpiresFever(t *testing.T) {
	// Five passes in one action: the first run, four refills of row 0
	// cols 1-3 with color 4, then a refill without a run.
	e, clock := newEngine(t, scenarioARows, func(o *core.Options) {
		o.Source = newScriptedSource(4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 5, 2, 5)
	})

	res := e.Resolve()

	if n := len(eventsOf[core.MatchesCleared](res.Events)); n != 5 {
		t.Fatalf("expected 5 passes, got %d", n)
	}
	if n := len(eventsOf[core.FeverEntered](res.Events)); n != 1 {
		t.Fatalf("expected FeverEntered once, got %d", n)
	}
	s := e.Session()
	if !s.FeverActive || s.Combo != 0 || s.MaxCombo != 5 {
		t.Errorf("expected fever with a settled combo, got %+v", s)
	}

	clock.Advance(9 * time.Second)
	if res := e.Tick(); len(eventsOf[core.FeverExited](res.Events)) != 0 {
		t.Error("fever expired early")
	}
	clock.Advance(time.Second)
	res = e.Tick()
	if len(eventsOf[core.FeverExited](res.Events)) != 1 {
		t.Errorf("expected FeverExited, got %v", res.Events)
	}
	if e.Session().FeverActive {
		t.Error("fever should be inactive")
	}
}

func TestGoldenRain(t *testing.T) {
	e, _ := newEngine(t, scenarioARows, func(o *core.Options) {
		o.Rules.GoldenRainPercent = 100
	})

	res := e.Resolve()

	rains := eventsOf[core.GoldenRain](res.Events)
	passes := eventsOf[core.MatchesCleared](res.Events)
	if len(rains) != len(passes) {
		t.Errorf("expected one golden rain per pass, got %d for %d passes", len(rains), len(passes))
	}
	if rains[0].Bonus != 500 {
		t.Errorf("Bonus = %d, expected 500", rains[0].Bonus)
	}
	if delta := eventsOf[core.ScoreChanged](res.Events)[0].Delta; delta != 45+50+500 {
		t.Errorf("first pass delta = %d, expected 595", delta)
	}
}

func TestHint(t *testing.T) {
	e, _ := newEngine(t, swapRows, nil)

	a, b, ok := e.Hint()
	if !ok {
		t.Fatal("expected a hint on the pattern board")
	}
	probe := e.Board()
	probe.Swap(a, b)
	if !core.HasMatches(probe) {
		t.Errorf("hint %v-%v does not create a match", a, b)
	}
	if !e.HasMoves() {
		t.Error("HasMoves should agree with Hint")
	}
}

func TestHintNoMoves(t *testing.T) {
	b := core.MustParseBoard(
		"012",
		"120",
		"201",
	)
	if a, c, ok := core.FindHint(b); ok {
		t.Errorf("expected no moves, got %v-%v", a, c)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() (*core.Board, core.Session) {
		clock := core.NewManualClock(epoch)
		opts := core.DefaultOptions()
		opts.Seed = 2024
		opts.Clock = clock
		e, err := core.New(opts)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for i := 0; i < 60 && !e.Session().GameOver; i++ {
			clock.Advance(time.Second)
			if a, b, ok := e.Hint(); ok {
				e.Swap(a, b)
			} else {
				e.Shuffle()
			}
		}
		return e.Board(), e.Session()
	}

	b1, s1 := play()
	b2, s2 := play()
	if !b1.Equal(b2) {
		t.Error("same seed produced different boards")
	}
	if s1 != s2 {
		t.Errorf("same seed produced different sessions:\n%+v\n%+v", s1, s2)
	}
}

func TestPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		clock := core.NewManualClock(epoch)
		opts := core.DefaultOptions()
		opts.Seed = seed
		opts.Clock = clock
		e, err := core.New(opts)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		lastScore := 0
		for i := 0; i < 100 && !e.Session().GameOver; i++ {
			clock.Advance(500 * time.Millisecond)
			before := e.Session()
			var res core.Result
			if a, b, ok := e.Hint(); ok {
				res = e.Swap(a, b)
			} else {
				res = e.Shuffle()
			}
			assertSettled(t, e.Board())

			after := e.Session()
			if after.Score < lastScore {
				t.Fatalf("seed %d: score went down %d -> %d", seed, lastScore, after.Score)
			}
			lastScore = after.Score
			if len(eventsOf[core.LevelCleared](res.Events)) == 0 && after.MovesRemaining != before.MovesRemaining-1 {
				t.Fatalf("seed %d: each action should cost exactly one move", seed)
			}
		}
	}
}
