package core

import "time"

// Event is something that happened on the board or in the session.
// Events are emitted in order while an action runs. The set is closed:
// only types in this package implement it.
type Event interface {
	isEvent()
}

// SwapAccepted is emitted when a swap produced at least one match.
type SwapAccepted struct {
	A, B Coord
}

// SwapRejected is emitted when a swap produced no match and was reverted.
type SwapRejected struct {
	A, B Coord
}

// SelectionChanged is emitted when the pending selection is set or cleared.
type SelectionChanged struct {
	At       Coord
	Selected bool
}

// MatchesCleared is emitted once per cascade pass. Cells are the cells that
// were vacated; a cell that became a special is not among them.
// Points is the pass score proper (base plus size bonus).
type MatchesCleared struct {
	Pass    int
	Matched int
	Cells   []Coord
	Points  int
}

// SpecialSpawned is emitted when a pass leaves a special behind.
type SpecialSpawned struct {
	At   Coord
	Kind Kind
}

// SpecialActivated is emitted when a bomb or rainbow fires.
// Color is the color drawn by a rainbow, -1 for a bomb.
type SpecialActivated struct {
	At       Coord
	Kind     Kind
	Color    int
	Affected []Coord
	Points   int
}

// GravityApplied lists every cell that fell.
type GravityApplied struct {
	Moves []Move
}

// BoardRefilled lists the tokens written into vacated cells.
type BoardRefilled struct {
	Cells []Placed
}

// ComboChanged is emitted when the combo counter changes.
// Bonus is the points the new value awarded, zero on reset.
type ComboChanged struct {
	Combo int
	Bonus int
}

// FeverEntered is emitted when the fever window opens.
type FeverEntered struct {
	Until time.Time
}

// FeverExited is emitted when the fever window closes.
type FeverExited struct{}

// CrazyEntered is emitted when the crazy window opens. Bonus is the amount
// the one-time doubling added to the score.
type CrazyEntered struct {
	Until time.Time
	Bonus int
}

// CrazyExited is emitted when the crazy window closes.
type CrazyExited struct{}

// GoldenRain is emitted when a pass hits the golden rain bonus.
type GoldenRain struct {
	Bonus int
}

// ScoreChanged carries the new total and how much was added.
type ScoreChanged struct {
	Score int
	Delta int
}

// MovesChanged carries the remaining move budget after a move is spent.
type MovesChanged struct {
	Remaining int
}

// LevelCleared is emitted when the target is reached. Fields describe the
// level just entered.
type LevelCleared struct {
	Level  int
	Target int
	Moves  int
}

// GameOver is emitted once when the move budget runs out short of target.
type GameOver struct {
	Score  int
	Target int
	Level  int
}

// RegenReason says why the whole board was replaced.
type RegenReason string

const (
	ReasonNewGame      RegenReason = "new-game"
	ReasonShuffle      RegenReason = "shuffle"
	ReasonLevel        RegenReason = "level"
	ReasonCascadeLimit RegenReason = "cascade-limit"
)

// BoardRegenerated is emitted when the board is replaced wholesale.
type BoardRegenerated struct {
	Reason RegenReason
}

func (SwapAccepted) isEvent()     {}
func (SwapRejected) isEvent()     {}
func (SelectionChanged) isEvent() {}
func (MatchesCleared) isEvent()   {}
func (SpecialSpawned) isEvent()   {}
func (SpecialActivated) isEvent() {}
func (GravityApplied) isEvent()   {}
func (BoardRefilled) isEvent()    {}
func (ComboChanged) isEvent()     {}
func (FeverEntered) isEvent()     {}
func (FeverExited) isEvent()      {}
func (CrazyEntered) isEvent()     {}
func (CrazyExited) isEvent()      {}
func (GoldenRain) isEvent()       {}
func (ScoreChanged) isEvent()     {}
func (MovesChanged) isEvent()     {}
func (LevelCleared) isEvent()     {}
func (GameOver) isEvent()         {}
func (BoardRegenerated) isEvent() {}
