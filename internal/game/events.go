package game

import "github.com/vovakirdan/candy-maze/internal/maze"

// Event is something that can happen to a Session. The set of events is
// closed: only types in this package implement it.
type Event interface {
	gameEvent()
	// Kind returns a stable name used in logs and the journal.
	Kind() string
}

// StartGameEvent begins a new game on the given maze. Seed initializes
// prize placement.
type StartGameEvent struct {
	Maze *maze.Maze
	Seed uint64
}

// MoveEvent moves the token one cell.
type MoveEvent struct {
	Dir maze.Dir
}

// DecrementTimeEvent removes one second from the countdown.
type DecrementTimeEvent struct{}

// SpawnPrizeEvent places a prize on a random free cell.
type SpawnPrizeEvent struct {
	Prize PrizeKind
}

// PrizeHitEvent collects a prize.
type PrizeHitEvent struct {
	Prize PrizeKind
}

// ClearPrizeTextEvent hides a prize's bonus text.
type ClearPrizeTextEvent struct {
	Prize PrizeKind
}

// GoalReachedEvent ends the round and banks the score.
type GoalReachedEvent struct{}

// PrepareNextLevelEvent starts the next round on a fresh maze.
type PrepareNextLevelEvent struct {
	Maze *maze.Maze
}

func (StartGameEvent) gameEvent()        {}
func (MoveEvent) gameEvent()             {}
func (DecrementTimeEvent) gameEvent()    {}
func (SpawnPrizeEvent) gameEvent()       {}
func (PrizeHitEvent) gameEvent()         {}
func (ClearPrizeTextEvent) gameEvent()   {}
func (GoalReachedEvent) gameEvent()      {}
func (PrepareNextLevelEvent) gameEvent() {}

func (StartGameEvent) Kind() string        { return "start-game" }
func (MoveEvent) Kind() string             { return "move" }
func (DecrementTimeEvent) Kind() string    { return "decrement-time" }
func (SpawnPrizeEvent) Kind() string       { return "spawn-prize" }
func (PrizeHitEvent) Kind() string         { return "prize-hit" }
func (ClearPrizeTextEvent) Kind() string   { return "clear-prize-text" }
func (GoalReachedEvent) Kind() string      { return "goal-reached" }
func (PrepareNextLevelEvent) Kind() string { return "prepare-next-level" }

// Convenience constructors matching the classic event names.
var (
	SpawnLollipop          Event = SpawnPrizeEvent{Prize: Lollipop}
	SpawnIceCream          Event = SpawnPrizeEvent{Prize: IceCream}
	LollipopHit            Event = PrizeHitEvent{Prize: Lollipop}
	IceCreamHit            Event = PrizeHitEvent{Prize: IceCream}
	ClearLollipopPrizeText Event = ClearPrizeTextEvent{Prize: Lollipop}
	ClearIceCreamPrizeText Event = ClearPrizeTextEvent{Prize: IceCream}
)
