package game

// Collisions returns the follow-up events implied by s: GoalReached when
// the token stands on the end cell, and a hit for every placed, uncollected
// prize under the token. It only reads s, so evaluating the same state
// twice is harmless; the reducer ignores repeated goal and hit events.
func Collisions(s Session) []Event {
	if s.Maze == nil || !s.Started {
		return nil
	}

	var out []Event
	if s.Current == s.Maze.End && !s.IsGoalReached {
		out = append(out, GoalReachedEvent{})
	}
	for _, k := range Kinds {
		p := s.Prize(k)
		if p.Placed && !p.WasHit && p.Cell == s.Current {
			out = append(out, PrizeHitEvent{Prize: k})
		}
	}
	return out
}

// collisionRelevant reports whether the transition prev -> next may have
// created a new collision: the token moved, or a prize was placed.
func collisionRelevant(prev, next Session) bool {
	if prev.Current != next.Current || prev.Maze != next.Maze {
		return true
	}
	for _, k := range Kinds {
		a, b := prev.Prize(k), next.Prize(k)
		if a.Placed != b.Placed || a.Cell != b.Cell {
			return true
		}
	}
	return false
}
