package game

import "github.com/vovakirdan/candy-maze/internal/maze"

var defaultRules = DefaultRules()

// Apply advances s by e using the default rules. See Rules.Apply.
func Apply(s Session, e Event) Session {
	return defaultRules.Apply(s, e)
}

// Apply returns the state that follows s when e happens. It is total and
// pure: every event is defined for every state, invalid or unknown events
// return s unchanged, and s itself is never modified.
func (r Rules) Apply(s Session, e Event) Session {
	switch e := e.(type) {
	case StartGameEvent:
		return r.startGame(s, e)
	case MoveEvent:
		return r.move(s, e.Dir)
	case DecrementTimeEvent:
		return decrementTime(s)
	case SpawnPrizeEvent:
		return spawnPrize(s, e.Prize)
	case PrizeHitEvent:
		return r.prizeHit(s, e.Prize)
	case ClearPrizeTextEvent:
		return clearPrizeText(s, e.Prize)
	case GoalReachedEvent:
		return r.goalReached(s)
	case PrepareNextLevelEvent:
		return r.prepareNextLevel(s, e.Maze)
	}
	return s
}

// Replay folds events over the pre-game state. Because Apply is pure,
// replaying a journal reproduces the recorded states exactly.
func (r Rules) Replay(events []Event) Session {
	var s Session
	for _, e := range events {
		s = r.Apply(s, e)
	}
	return s
}

func (r Rules) startGame(s Session, e StartGameEvent) Session {
	if s.Running() || !usable(e.Maze) {
		return s
	}
	return Session{
		Maze:    e.Maze,
		Current: e.Maze.Start,
		Round:   1,
		Time:    r.RoundTime,
		Started: true,
		Seed:    e.Seed,
	}
}

func (r Rules) move(s Session, d maze.Dir) Session {
	if s.Maze == nil || !s.Maze.CanMove(s.Current, d) {
		return s
	}
	s.Current = s.Current.Step(d)
	s.Points += r.StepPoints
	return s
}

func decrementTime(s Session) Session {
	if !s.Running() {
		return s
	}
	s.Time--
	return s
}

func spawnPrize(s Session, k PrizeKind) Session {
	if !k.Valid() || s.Maze == nil {
		return s
	}
	if s.IsGoalReached {
		return s.withPrize(k, Prize{})
	}

	exclude := []maze.Coord{s.Current, s.Maze.End}
	if other := s.Prize(k.Other()); other.Placed {
		exclude = append(exclude, other.Cell)
	}

	cell, seed, ok := pickCell(s.Maze, s.Seed, exclude)
	s.Seed = seed
	if !ok {
		return s.withPrize(k, Prize{})
	}
	return s.withPrize(k, Prize{Cell: cell, Placed: true})
}

func (r Rules) prizeHit(s Session, k PrizeKind) Session {
	if !k.Valid() {
		return s
	}
	p := s.Prize(k)
	if !p.Placed || p.WasHit {
		return s
	}
	bonus := r.Prize(k)
	s.Points += bonus.BonusPoints
	s.Time += bonus.BonusTime
	p.WasHit = true
	p.ShowText = true
	return s.withPrize(k, p)
}

func clearPrizeText(s Session, k PrizeKind) Session {
	if !k.Valid() {
		return s
	}
	p := s.Prize(k)
	p.ShowText = false
	return s.withPrize(k, p)
}

func (r Rules) goalReached(s Session) Session {
	if !s.Started || s.IsGoalReached {
		return s
	}
	s.IsGoalReached = true
	if s.Time > r.RoundTime {
		s.NextRoundTime = s.Time
	} else {
		s.NextRoundTime = 0
	}
	s.HiScore += s.Points + s.Round*s.Time*100
	return s
}

func (r Rules) prepareNextLevel(s Session, m *maze.Maze) Session {
	if !s.Started || !usable(m) {
		return s
	}
	t := r.RoundTime
	if s.NextRoundTime > 0 {
		t = s.NextRoundTime
	}
	return Session{
		Maze:    m,
		Current: m.Start,
		Round:   s.Round + 1,
		Time:    t,
		Started: true,
		HiScore: s.HiScore,
		Seed:    s.Seed,
	}
}

// usable reports whether m can host a session: it must exist and its
// start cell must be on the grid.
func usable(m *maze.Maze) bool {
	return m != nil && m.InBounds(m.Start) && len(m.Cells) == m.Len()
}
