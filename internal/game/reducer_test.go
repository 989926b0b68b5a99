package game

import (
	"testing"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// openSquare returns a 2x2 maze with no inner walls, start (0,0) and
// end (1,1).
func openSquare() *maze.Maze {
	m := maze.New(2, 2)
	m.Carve(maze.C(0, 0), maze.Right)
	m.Carve(maze.C(0, 0), maze.Down)
	m.Carve(maze.C(1, 0), maze.Down)
	m.Carve(maze.C(0, 1), maze.Right)
	return m
}

// corridor returns a 1-row maze of n cells with every inner wall open.
func corridor(n int) *maze.Maze {
	m := maze.New(n, 1)
	for x := 0; x < n-1; x++ {
		m.Carve(maze.C(x, 0), maze.Right)
	}
	return m
}

func started(m *maze.Maze) Session {
	return Apply(Session{}, StartGameEvent{Maze: m, Seed: 7})
}

// applyAll applies events and then any collision events, the way the
// engine does.
func applyAll(s Session, events ...Event) Session {
	for _, e := range events {
		s = Apply(s, e)
		for _, c := range Collisions(s) {
			s = Apply(s, c)
		}
	}
	return s
}

func TestStartGame(t *testing.T) {
	m := openSquare()
	s := started(m)

	if !s.Running() || s.GameOver() {
		t.Fatal("expected a running game")
	}
	if s.Round != 1 || s.Time != DefaultRoundTime || s.Points != 0 {
		t.Errorf("unexpected start state: %s", s)
	}
	if s.Current != m.Start {
		t.Errorf("token at %s, expected %s", s.Current, m.Start)
	}
	if s.Seed != 7 {
		t.Errorf("seed = %d, expected 7", s.Seed)
	}
}

func TestStartGameIgnoredWhileRunning(t *testing.T) {
	s := started(openSquare())
	s = Apply(s, MoveEvent{Dir: maze.Right})

	got := Apply(s, StartGameEvent{Maze: corridor(3), Seed: 1})
	if got != s {
		t.Errorf("start during a running game changed state: %s", got)
	}
}

func TestStartGameAfterGameOverKeepsNothing(t *testing.T) {
	s := started(openSquare())
	s = Apply(s, MoveEvent{Dir: maze.Right})
	s.HiScore = 1234
	s.Time = 0

	if !s.GameOver() {
		t.Fatal("expected game over")
	}
	s = Apply(s, StartGameEvent{Maze: openSquare(), Seed: 3})
	if s.HiScore != 0 || s.Points != 0 || s.Round != 1 {
		t.Errorf("new game should reset scores: %s", s)
	}
}

func TestStartGameRejectsUnusableMaze(t *testing.T) {
	var s Session
	if got := Apply(s, StartGameEvent{}); got.Started {
		t.Error("nil maze should not start a game")
	}
	bad := maze.New(2, 2)
	bad.Start = maze.C(5, 5)
	if got := Apply(s, StartGameEvent{Maze: bad}); got.Started {
		t.Error("off-grid start should not start a game")
	}
}

func TestMove(t *testing.T) {
	m := maze.New(2, 2)
	m.Carve(maze.C(0, 0), maze.Right)

	tests := []struct {
		name   string
		dir    maze.Dir
		want   maze.Coord
		points int
	}{
		{"open passage", maze.Right, maze.C(1, 0), DefaultStepPoints},
		{"inner wall", maze.Down, maze.C(0, 0), 0},
		{"outer border up", maze.Up, maze.C(0, 0), 0},
		{"outer border left", maze.Left, maze.C(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Apply(started(m), MoveEvent{Dir: tt.dir})
			if s.Current != tt.want {
				t.Errorf("token at %s, expected %s", s.Current, tt.want)
			}
			if s.Points != tt.points {
				t.Errorf("points = %d, expected %d", s.Points, tt.points)
			}
		})
	}
}

func TestMoveStaysInsideWalls(t *testing.T) {
	m := corridor(4)
	s := started(m)
	moves := []maze.Dir{maze.Left, maze.Up, maze.Right, maze.Right, maze.Down, maze.Right, maze.Right, maze.Right, maze.Up}
	for _, d := range moves {
		s = Apply(s, MoveEvent{Dir: d})
		if !m.InBounds(s.Current) {
			t.Fatalf("token left the grid at %s", s.Current)
		}
	}
	if s.Current != maze.C(3, 0) {
		t.Errorf("token at %s, expected (3,0)", s.Current)
	}
	if s.Points != 3*DefaultStepPoints {
		t.Errorf("points = %d, expected %d", s.Points, 3*DefaultStepPoints)
	}
}

func TestDecrementTime(t *testing.T) {
	s := started(openSquare())
	s = Apply(s, DecrementTimeEvent{})
	if s.Time != DefaultRoundTime-1 {
		t.Errorf("time = %d, expected %d", s.Time, DefaultRoundTime-1)
	}

	s.Time = 1
	s = Apply(s, DecrementTimeEvent{})
	if !s.GameOver() {
		t.Fatalf("expected game over, got %s", s)
	}
	if got := Apply(s, DecrementTimeEvent{}); got.Time != 0 {
		t.Errorf("time went below zero: %d", got.Time)
	}

	var pre Session
	if got := Apply(pre, DecrementTimeEvent{}); got != pre {
		t.Error("tick before the first game changed state")
	}
}

func TestGoalReachedScenario(t *testing.T) {
	tests := []struct {
		name    string
		ticks   int
		hiScore int
	}{
		{"one tick elapsed", 1, 20 + 1*59*100},
		{"no tick elapsed", 0, 20 + 1*60*100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := started(openSquare())
			for i := 0; i < tt.ticks; i++ {
				s = Apply(s, DecrementTimeEvent{})
			}
			s = applyAll(s, MoveEvent{Dir: maze.Right}, MoveEvent{Dir: maze.Down})

			if !s.IsGoalReached {
				t.Fatal("expected goal reached after reaching the end cell")
			}
			if s.HiScore != tt.hiScore {
				t.Errorf("hiScore = %d, expected %d", s.HiScore, tt.hiScore)
			}
			if s.NextRoundTime != 0 {
				t.Errorf("nextRoundTime = %d, expected none", s.NextRoundTime)
			}
		})
	}
}

func TestGoalReachedTwiceBanksOnce(t *testing.T) {
	s := started(openSquare())
	s = applyAll(s, MoveEvent{Dir: maze.Right}, MoveEvent{Dir: maze.Down})
	again := Apply(s, GoalReachedEvent{})
	if again.HiScore != s.HiScore {
		t.Errorf("second goal changed hiScore %d -> %d", s.HiScore, again.HiScore)
	}
}

func TestCarryOverTime(t *testing.T) {
	s := started(openSquare())
	s.Time = 70
	s.Points = 100

	s = Apply(s, GoalReachedEvent{})
	if s.NextRoundTime != 70 {
		t.Fatalf("nextRoundTime = %d, expected 70", s.NextRoundTime)
	}
	if s.HiScore != 100+1*70*100 {
		t.Errorf("hiScore = %d, expected %d", s.HiScore, 100+70*100)
	}

	next := Apply(s, PrepareNextLevelEvent{Maze: corridor(3)})
	if next.Time != 70 {
		t.Errorf("next round time = %d, expected 70", next.Time)
	}
	if next.Round != 2 || next.Points != 0 || next.IsGoalReached || next.NextRoundTime != 0 {
		t.Errorf("unexpected next round state: %s", next)
	}
	if next.HiScore != s.HiScore {
		t.Errorf("hiScore not carried: %d vs %d", next.HiScore, s.HiScore)
	}
	if next.Current != maze.C(0, 0) {
		t.Errorf("token at %s, expected new start", next.Current)
	}
}

func TestPrepareNextLevelUsesBaseTime(t *testing.T) {
	s := started(openSquare())
	s.Time = 12
	s = Apply(s, GoalReachedEvent{})
	next := Apply(s, PrepareNextLevelEvent{Maze: openSquare()})
	if next.Time != DefaultRoundTime {
		t.Errorf("time = %d, expected %d", next.Time, DefaultRoundTime)
	}
	for _, k := range Kinds {
		if next.Prize(k) != (Prize{}) {
			t.Errorf("%s not reset: %+v", k, next.Prize(k))
		}
	}
}

func TestLollipopHitScenario(t *testing.T) {
	s := started(openSquare())
	s.Time = 40
	s = s.withPrize(Lollipop, Prize{Cell: maze.C(1, 0), Placed: true})

	s = Apply(s, LollipopHit)
	if s.Time != 55 {
		t.Errorf("time = %d, expected 55", s.Time)
	}
	if s.Points != 5000 {
		t.Errorf("points = %d, expected 5000", s.Points)
	}
	p := s.Prize(Lollipop)
	if !p.WasHit || !p.ShowText {
		t.Errorf("lollipop = %+v, expected hit with text", p)
	}

	again := Apply(s, LollipopHit)
	if again != s {
		t.Error("second hit should be ignored")
	}
}

func TestIceCreamHit(t *testing.T) {
	s := started(openSquare())
	s.Time = 10
	s = s.withPrize(IceCream, Prize{Cell: maze.C(0, 1), Placed: true})
	s = applyAll(s, MoveEvent{Dir: maze.Down})

	if s.Time != 40 || s.Points != 10000+DefaultStepPoints {
		t.Errorf("after ice cream: time=%d points=%d", s.Time, s.Points)
	}
	if !s.Prize(IceCream).ShowText {
		t.Error("expected bonus text")
	}
}

func TestHitWithoutPlacedPrizeIgnored(t *testing.T) {
	s := started(openSquare())
	if got := Apply(s, IceCreamHit); got != s {
		t.Error("hit on an absent prize changed state")
	}
}

func TestClearPrizeTextIdempotent(t *testing.T) {
	s := started(openSquare())
	s = s.withPrize(Lollipop, Prize{Cell: maze.C(1, 0), Placed: true, WasHit: true, ShowText: true})

	once := Apply(s, ClearLollipopPrizeText)
	twice := Apply(once, ClearLollipopPrizeText)
	if once.Prize(Lollipop).ShowText {
		t.Error("text still shown")
	}
	if once != twice {
		t.Error("clearing twice differs from clearing once")
	}
	if !once.Prize(Lollipop).WasHit || !once.Prize(Lollipop).Placed {
		t.Error("clearing text should not touch hit state")
	}
}

func TestSpawnPrizeAvoidsOccupiedCells(t *testing.T) {
	m := corridor(4)
	for seed := uint64(1); seed <= 200; seed++ {
		s := Apply(Session{}, StartGameEvent{Maze: m, Seed: seed})
		s = Apply(s, SpawnLollipop)
		s = Apply(s, SpawnIceCream)

		lp, ic := s.Prize(Lollipop), s.Prize(IceCream)
		if !lp.Placed || !ic.Placed {
			t.Fatalf("seed %d: prizes not placed", seed)
		}
		for _, p := range []Prize{lp, ic} {
			if p.Cell == s.Current || p.Cell == m.End {
				t.Fatalf("seed %d: prize on reserved cell %s", seed, p.Cell)
			}
			if !m.InBounds(p.Cell) {
				t.Fatalf("seed %d: prize off grid at %s", seed, p.Cell)
			}
		}
		if lp.Cell == ic.Cell {
			t.Fatalf("seed %d: prizes share cell %s", seed, lp.Cell)
		}
	}
}

func TestSpawnPrizeWithNoFreeCell(t *testing.T) {
	// Start and end are the only two cells.
	s := started(corridor(2))
	s = Apply(s, SpawnLollipop)
	if s.Prize(Lollipop).Placed {
		t.Errorf("prize placed with no free cell at %s", s.Prize(Lollipop).Cell)
	}
}

func TestSpawnPrizeAfterGoalIsAbsent(t *testing.T) {
	s := started(openSquare())
	s = applyAll(s, MoveEvent{Dir: maze.Right}, MoveEvent{Dir: maze.Down})
	s = Apply(s, SpawnIceCream)
	if s.Prize(IceCream).Placed {
		t.Error("prize spawned during the level-end wait")
	}
}

func TestApplyIsPure(t *testing.T) {
	s := started(corridor(5))
	s = Apply(s, SpawnLollipop)
	snapshot := s

	events := []Event{
		MoveEvent{Dir: maze.Right}, DecrementTimeEvent{}, SpawnIceCream,
		LollipopHit, ClearLollipopPrizeText, GoalReachedEvent{},
		PrepareNextLevelEvent{Maze: openSquare()},
	}
	for _, e := range events {
		a := Apply(s, e)
		b := Apply(s, e)
		if a != b {
			t.Errorf("%s: same input gave different results", e.Kind())
		}
		if s != snapshot {
			t.Fatalf("%s: input state was modified", e.Kind())
		}
	}
}

func TestHiScoreNeverDecreases(t *testing.T) {
	s := started(openSquare())
	events := []Event{
		MoveEvent{Dir: maze.Right}, DecrementTimeEvent{}, MoveEvent{Dir: maze.Down},
		GoalReachedEvent{}, PrepareNextLevelEvent{Maze: openSquare()},
		SpawnLollipop, MoveEvent{Dir: maze.Down}, MoveEvent{Dir: maze.Right},
		PrepareNextLevelEvent{Maze: corridor(2)}, DecrementTimeEvent{},
	}
	hi := s.HiScore
	for _, e := range events {
		s = applyAll(s, e)
		if s.HiScore < hi {
			t.Fatalf("%s: hiScore dropped %d -> %d", e.Kind(), hi, s.HiScore)
		}
		hi = s.HiScore
	}
}

func TestReplay(t *testing.T) {
	events := []Event{
		StartGameEvent{Maze: corridor(6), Seed: 99},
		SpawnLollipop,
		MoveEvent{Dir: maze.Right},
		DecrementTimeEvent{},
		SpawnIceCream,
	}
	var want Session
	for _, e := range events {
		want = Apply(want, e)
	}
	if got := DefaultRules().Replay(events); got != want {
		t.Errorf("replay = %s, expected %s", got, want)
	}
}

func TestUnknownEventLeavesStateAlone(t *testing.T) {
	s := started(openSquare())
	if got := Apply(s, SpawnPrizeEvent{Prize: PrizeKind(9)}); got != s {
		t.Error("invalid prize kind changed state")
	}
	if got := Apply(s, nil); got != s {
		t.Error("nil event changed state")
	}
}
