// Package audio plays the game's soundtrack: a looping ambient tune while
// a round is live and a short cue when the goal is reached. Sounds are
// synthesized, so the binary ships no audio assets.
package audio

import "github.com/vovakirdan/candy-maze/internal/game"

// Track is what should be audible for a given state.
type Track uint8

const (
	Silence Track = iota
	Ambient
	LevelEnd
)

func (t Track) String() string {
	switch t {
	case Ambient:
		return "ambient"
	case LevelEnd:
		return "level-end"
	}
	return "silence"
}

// TrackFor selects the track for s. The level-end cue wins while the
// round waits for its successor; otherwise the ambient loop plays as long
// as the clock runs.
func TrackFor(s game.Session) Track {
	switch {
	case s.IsGoalReached:
		return LevelEnd
	case s.Running():
		return Ambient
	}
	return Silence
}
