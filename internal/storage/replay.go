package storage

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/candy-maze/internal/game"
)

// ErrDiverged is returned by Replay when a re-applied event does not
// reproduce the recorded state.
var ErrDiverged = errors.New("storage: replay diverged")

// Replay re-applies a run's events to a fresh session and checks each
// resulting state against the recorded summary. It returns the final
// session, or ErrDiverged naming the first mismatching event.
func Replay(rules game.Rules, entries []Entry) (game.Session, error) {
	var s game.Session
	for _, e := range entries {
		ev, err := e.Event()
		if err != nil {
			return s, fmt.Errorf("storage: event %d: %w", e.Seq, err)
		}
		s = rules.Apply(s, ev)
		if diff := compare(e, s); diff != "" {
			return s, fmt.Errorf("%w at event %d (%s): %s", ErrDiverged, e.Seq, e.Kind, diff)
		}
	}
	return s, nil
}

func compare(e Entry, s game.Session) string {
	switch {
	case e.Round != s.Round:
		return fmt.Sprintf("round %d, recorded %d", s.Round, e.Round)
	case e.Time != s.Time:
		return fmt.Sprintf("time %d, recorded %d", s.Time, e.Time)
	case e.Points != s.Points:
		return fmt.Sprintf("points %d, recorded %d", s.Points, e.Points)
	case e.HiScore != s.HiScore:
		return fmt.Sprintf("hi-score %d, recorded %d", s.HiScore, e.HiScore)
	case e.X != s.Current.X || e.Y != s.Current.Y:
		return fmt.Sprintf("position %s, recorded (%d,%d)", s.Current, e.X, e.Y)
	}
	return ""
}
