// Package game implements the maze game core: the immutable Session, the
// pure reducer that advances it, and the orchestration around it (input
// gating, collision evaluation, timer scheduling and the engine loop that
// serializes them).
package game

import (
	"fmt"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// PrizeKind identifies one of the two collectible prizes.
type PrizeKind uint8

const (
	Lollipop PrizeKind = iota
	IceCream

	// PrizeKinds is the number of prize kinds.
	PrizeKinds
)

// Kinds lists all prize kinds.
var Kinds = [PrizeKinds]PrizeKind{Lollipop, IceCream}

// Valid reports whether k names a prize.
func (k PrizeKind) Valid() bool {
	return k < PrizeKinds
}

// Other returns the other prize kind.
func (k PrizeKind) Other() PrizeKind {
	if k == Lollipop {
		return IceCream
	}
	return Lollipop
}

func (k PrizeKind) String() string {
	switch k {
	case Lollipop:
		return "lollipop"
	case IceCream:
		return "ice-cream"
	}
	return fmt.Sprintf("PrizeKind(%d)", uint8(k))
}

// Prize is the per-round state of one prize. Cell is meaningful only
// while Placed is true.
type Prize struct {
	Cell     maze.Coord
	Placed   bool
	WasHit   bool
	ShowText bool
}

// Session is the complete game state. It is a value: every transition
// returns a new Session and never modifies the one it was given. The Maze
// pointer is shared between versions and must be treated as read-only.
type Session struct {
	Maze    *maze.Maze
	Current maze.Coord
	Round   int

	// Time is the countdown in seconds. It is meaningful only once
	// Started is set; before the first game it is "undefined".
	Time    int
	Started bool

	Points  int
	HiScore int

	IsGoalReached bool
	NextRoundTime int // carry-over seconds, 0 when absent

	Prizes [PrizeKinds]Prize

	// Seed is the RNG state used for prize placement. Carrying it in the
	// value keeps Apply a pure function.
	Seed uint64
}

// Running reports whether the countdown is live (time is truthy).
func (s Session) Running() bool {
	return s.Started && s.Time > 0
}

// GameOver reports whether a started game ran out of time.
func (s Session) GameOver() bool {
	return s.Started && s.Time == 0
}

// Prize returns the state of prize k.
func (s Session) Prize(k PrizeKind) Prize {
	if !k.Valid() {
		return Prize{}
	}
	return s.Prizes[k]
}

// withPrize returns a copy of s with prize k replaced.
func (s Session) withPrize(k PrizeKind, p Prize) Session {
	s.Prizes[k] = p
	return s
}

func (s Session) String() string {
	if !s.Started {
		return "session{pre-game}"
	}
	return fmt.Sprintf("session{round=%d time=%d points=%d hi=%d at=%s goal=%v}",
		s.Round, s.Time, s.Points, s.HiScore, s.Current, s.IsGoalReached)
}
