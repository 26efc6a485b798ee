package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// Outcome classifies what an action did.
type Outcome int

const (
	OutcomeNone              Outcome = iota // Nothing happened (e.g. a Tick with no expiry)
	OutcomeSelected                         // A cell became the pending selection
	OutcomeDeselected                       // The pending selection was cleared
	OutcomeSwapAccepted                     // A swap matched and was resolved
	OutcomeSwapRejected                     // A swap did not match and was reverted
	OutcomeActivated                        // A special fired
	OutcomeShuffled                         // The board was regenerated for one move
	OutcomeResolved                         // Resolve settled the board
	OutcomeNewGame                          // A new game started
	OutcomeRestartPending                   // NewGame was requested mid-action; it runs when the action ends
	OutcomeNotAdjacent                      // A direct swap named non-adjacent cells
	OutcomeNotSpecial                       // Activate was called on an ordinary cell
	OutcomeInvalidCoordinate                // The coordinate is off the board
	OutcomeIgnored                          // An action was already running
	OutcomeGameOver                         // The game has ended; call NewGame
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeSwapAccepted:
		return "swap-accepted"
	case OutcomeSwapRejected:
		return "swap-rejected"
	case OutcomeActivated:
		return "activated"
	case OutcomeShuffled:
		return "shuffled"
	case OutcomeResolved:
		return "resolved"
	case OutcomeNewGame:
		return "new-game"
	case OutcomeRestartPending:
		return "restart-pending"
	case OutcomeNotAdjacent:
		return "not-adjacent"
	case OutcomeNotSpecial:
		return "not-special"
	case OutcomeInvalidCoordinate:
		return "invalid-coordinate"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Result is returned by every action: what it did and the events it
// emitted, in order.
type Result struct {
	Outcome Outcome
	Events  []Event
}

// Engine owns one board and one session and applies player actions to them.
// All actions run synchronously to a settled board before returning.
// An Engine is not safe for concurrent use; give each player their own.
type Engine struct {
	opts   Options
	rng    Source
	clock  Clock
	logger *log.Logger

	board  *Board
	keeper *Scorekeeper

	selection    Coord
	hasSelection bool

	processing bool
	restart    bool
	events     []Event
	listeners  []func(Event)
}

// New creates an engine and deals the first board.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxCascadePasses == 0 {
		opts.MaxCascadePasses = DefaultMaxCascadePasses
	}
	e := &Engine{
		opts:   opts,
		rng:    opts.Source,
		clock:  opts.Clock,
		logger: opts.Logger,
		keeper: NewScorekeeper(opts.Rules),
	}
	if e.rng == nil {
		e.rng = NewSource(opts.Seed)
	}
	if e.clock == nil {
		e.clock = SystemClock()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if opts.Board != nil {
		e.board = opts.Board.Clone()
	} else {
		e.board = Generate(opts.Size, opts.Colors, e.rng)
	}
	e.logger.Debug("engine created", "size", opts.Size, "colors", opts.Colors)
	return e, nil
}

// Subscribe registers a listener that receives every event as it is
// emitted. Listeners run synchronously; actions they invoke on the engine
// while it is processing are ignored.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Board returns a copy of the current board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Cell returns the content of one cell.
func (e *Engine) Cell(row, col int) Cell {
	return e.board.Get(At(row, col))
}

// Session returns a copy of the current session.
func (e *Engine) Session() Session {
	return e.keeper.Session
}

// Selection returns the pending selection, if any.
func (e *Engine) Selection() (Coord, bool) {
	return e.selection, e.hasSelection
}

// Processing reports whether an action is running.
func (e *Engine) Processing() bool {
	return e.processing
}

// Select handles a tap on a cell. A special fires immediately. Otherwise the
// first tap selects, tapping the same cell deselects, tapping a non-adjacent
// cell moves the selection and tapping an adjacent cell attempts a swap.
func (e *Engine) Select(c Coord) Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	if e.keeper.Session.GameOver {
		return e.finish(OutcomeGameOver)
	}
	if !e.board.InBounds(c) {
		return e.finish(OutcomeInvalidCoordinate)
	}

	if e.board.Get(c).IsSpecial() {
		e.clearSelection()
		e.activate(c)
		return e.finish(OutcomeActivated)
	}

	if !e.hasSelection {
		e.setSelection(c)
		return e.finish(OutcomeSelected)
	}

	first := e.selection
	switch {
	case first == c:
		e.clearSelection()
		return e.finish(OutcomeDeselected)
	case !first.Adjacent(c):
		e.setSelection(c)
		return e.finish(OutcomeSelected)
	}
	e.clearSelection()
	return e.finish(e.swap(first, c))
}

// Swap attempts to swap two adjacent cells directly, as a drag gesture does.
// Any pending selection is cleared.
func (e *Engine) Swap(a, b Coord) Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	if e.keeper.Session.GameOver {
		return e.finish(OutcomeGameOver)
	}
	if !e.board.InBounds(a) || !e.board.InBounds(b) {
		return e.finish(OutcomeInvalidCoordinate)
	}
	if !a.Adjacent(b) {
		return e.finish(OutcomeNotAdjacent)
	}
	e.clearSelection()
	return e.finish(e.swap(a, b))
}

// Activate fires the special at c.
func (e *Engine) Activate(c Coord) Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	if e.keeper.Session.GameOver {
		return e.finish(OutcomeGameOver)
	}
	if !e.board.InBounds(c) {
		return e.finish(OutcomeInvalidCoordinate)
	}
	if !e.board.Get(c).IsSpecial() {
		return e.finish(OutcomeNotSpecial)
	}
	e.clearSelection()
	e.activate(c)
	return e.finish(OutcomeActivated)
}

// Shuffle spends one move to replace the board with a fresh match-free one.
func (e *Engine) Shuffle() Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	if e.keeper.Session.GameOver || e.keeper.Session.MovesRemaining <= 0 {
		return e.finish(OutcomeGameOver)
	}
	e.clearSelection()
	e.spendMove()
	e.regenerate(ReasonShuffle)
	e.evaluateLevel()
	return e.finish(OutcomeShuffled)
}

// Resolve settles the current board without spending a move. It is only
// needed after constructing an engine from a layout that contains runs.
func (e *Engine) Resolve() Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	if e.keeper.Session.GameOver {
		return e.finish(OutcomeGameOver)
	}
	e.resolve()
	e.evaluateLevel()
	return e.finish(OutcomeResolved)
}

// NewGame resets the session and deals a new board. Called while an action
// is running, the reset happens as soon as that action stops, and the rest
// of its resolution is discarded.
func (e *Engine) NewGame() Result {
	if e.processing {
		e.restart = true
		return Result{Outcome: OutcomeRestartPending}
	}
	e.begin()
	e.reset()
	return e.finish(OutcomeNewGame)
}

// Tick closes fever and crazy windows that have expired. Front ends call it
// periodically so windows close without player input.
func (e *Engine) Tick() Result {
	if !e.begin() {
		return Result{Outcome: OutcomeIgnored}
	}
	return e.finish(OutcomeNone)
}

// Hint returns the first swap, scanning row-major and trying right then
// down, that would produce a match. The board is not modified.
func (e *Engine) Hint() (Coord, Coord, bool) {
	return FindHint(e.board)
}

// HasMoves reports whether any adjacent swap would produce a match.
func (e *Engine) HasMoves() bool {
	_, _, ok := FindHint(e.board)
	return ok
}

// FindHint is the board-level form of Engine.Hint.
func FindHint(b *Board) (Coord, Coord, bool) {
	probe := b.Clone()
	n := probe.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			from := At(r, c)
			for _, to := range []Coord{from.Add(0, 1), from.Add(1, 0)} {
				if !probe.InBounds(to) || probe.Get(from) == probe.Get(to) {
					continue
				}
				probe.Swap(from, to)
				ok := HasMatches(probe)
				probe.Swap(from, to)
				if ok {
					return from, to, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}

// begin marks the start of an action. It returns false if one is running.
// Timed windows are checked on every input.
func (e *Engine) begin() bool {
	if e.processing {
		return false
	}
	e.processing = true
	e.events = nil
	e.expireWindows()
	return true
}

// finish ends an action, applying a pending restart, and returns its result.
func (e *Engine) finish(outcome Outcome) Result {
	if e.restart {
		e.restart = false
		e.reset()
	}
	e.processing = false
	events := e.events
	e.events = nil
	return Result{Outcome: outcome, Events: events}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
	for _, fn := range e.listeners {
		fn(ev)
	}
}

func (e *Engine) setSelection(c Coord) {
	e.selection = c
	e.hasSelection = true
	e.emit(SelectionChanged{At: c, Selected: true})
}

func (e *Engine) clearSelection() {
	if !e.hasSelection {
		return
	}
	at := e.selection
	e.selection = Coord{}
	e.hasSelection = false
	e.emit(SelectionChanged{At: at, Selected: false})
}

func (e *Engine) spendMove() {
	e.keeper.SpendMove()
	e.emit(MovesChanged{Remaining: e.keeper.Session.MovesRemaining})
}

func (e *Engine) expireWindows() {
	for _, ev := range e.keeper.Expire(e.clock.Now()) {
		e.emit(ev)
	}
}

func (e *Engine) reset() {
	e.keeper.Reset()
	e.selection = Coord{}
	e.hasSelection = false
	e.regenerate(ReasonNewGame)
	e.logger.Debug("new game", "target", e.keeper.Session.Target, "moves", e.keeper.Session.MovesRemaining)
}

func (e *Engine) regenerate(reason RegenReason) {
	e.board = Generate(e.opts.Size, e.opts.Colors, e.rng)
	e.emit(BoardRegenerated{Reason: reason})
}

// evaluateLevel runs once an action that may have changed score or budget
// has settled.
func (e *Engine) evaluateLevel() {
	if e.restart {
		return
	}
	s := &e.keeper.Session
	switch e.keeper.Evaluate() {
	case LevelClear:
		e.keeper.AdvanceLevel()
		e.clearSelection()
		e.emit(LevelCleared{Level: s.Level, Target: s.Target, Moves: s.MovesRemaining})
		e.logger.Debug("level cleared", "level", s.Level, "score", s.Score, "target", s.Target)
		e.regenerate(ReasonLevel)
	case LevelFailed:
		s.GameOver = true
		e.clearSelection()
		e.emit(GameOver{Score: s.Score, Target: s.Target, Level: s.Level})
		e.logger.Debug("game over", "level", s.Level, "score", s.Score, "target", s.Target)
	}
}
