package game

import (
	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/maze"
)

// Key is a platform-neutral key press.
type Key uint8

const (
	KeyNone Key = iota
	KeyStart
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
)

func (k Key) String() string {
	switch k {
	case KeyStart:
		return "start"
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	}
	return "none"
}

// Dir returns the move direction of an arrow key.
func (k Key) Dir() (maze.Dir, bool) {
	switch k {
	case KeyUp:
		return maze.Up, true
	case KeyRight:
		return maze.Right, true
	case KeyDown:
		return maze.Down, true
	case KeyLeft:
		return maze.Left, true
	}
	return 0, false
}

// CanStart reports whether the start key is accepted: only while the
// countdown is not running (pre-game or game over).
func CanStart(s Session) bool {
	return !s.Running()
}

// CanMove reports whether arrow keys are accepted: only during a live
// round that has not reached its goal yet.
func CanMove(s Session) bool {
	return s.Running() && !s.IsGoalReached
}

// InputHandler turns key presses into gated events. Starting a game needs
// a maze and a seed, so the handler owns the maze generator and a seed
// source. Not safe for concurrent use; the engine calls it from its loop.
type InputHandler struct {
	rules Rules
	mazes maze.Generator
	seeds *core.RNG
}

// NewInputHandler creates a handler drawing mazes from mazes and prize
// seeds from an RNG seeded with seed.
func NewInputHandler(rules Rules, mazes maze.Generator, seed uint64) *InputHandler {
	return &InputHandler{
		rules: rules,
		mazes: mazes,
		seeds: core.NewRNG(seed),
	}
}

// Handle returns the event for key k in state s, or false when the key is
// gated off.
func (h *InputHandler) Handle(s Session, k Key) (Event, bool) {
	if k == KeyStart {
		if !CanStart(s) {
			return nil, false
		}
		return StartGameEvent{
			Maze: h.mazes.Generate(h.rules.Rows, h.rules.Cols),
			Seed: h.seeds.Next(),
		}, true
	}

	d, ok := k.Dir()
	if !ok || !CanMove(s) {
		return nil, false
	}
	return MoveEvent{Dir: d}, true
}
