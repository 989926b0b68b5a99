package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/game"
	"github.com/vovakirdan/candy-maze/internal/maze"
)

// smallMaze is a 3×2 maze with a single open passage along the top row
// and down the right column.
func smallMaze() *maze.Maze {
	m := maze.New(3, 2)
	m.Carve(maze.C(0, 0), maze.Right)
	m.Carve(maze.C(1, 0), maze.Right)
	m.Carve(maze.C(2, 0), maze.Down)
	return m
}

func startedSession() game.Session {
	return game.Apply(game.Session{}, game.StartGameEvent{Maze: smallMaze(), Seed: 1})
}

// board origin for smallMaze on a 40-column screen
const testOX = (40 - 7) / 2

func draw(s game.Session, blink bool) *core.Screen {
	dst := core.NewScreen(40, 12)
	DrawSession(dst, s, View{Rules: game.DefaultRules(), BlinkOn: blink})
	return dst
}

func TestBoardSize(t *testing.T) {
	w, h := BoardSize(17, 33)
	if w != 67 || h != 20 {
		t.Errorf("BoardSize(17, 33) = %dx%d, want 67x20", w, h)
	}
}

func TestDrawSessionTitle(t *testing.T) {
	dst := core.NewScreen(80, 24)
	DrawSession(dst, game.Session{}, View{Rules: game.DefaultRules(), BlinkOn: true})
	out := dst.String()

	for _, want := range []string{"TIME: --", "ROUND: 1", "CANDY MAZE", "PRESS ENTER TO START"} {
		if !strings.Contains(out, want) {
			t.Errorf("pre-game screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ROUND: 0") {
		t.Errorf("pre-game HUD shows round 0: %q", dst.Row(0))
	}
	if c := dst.GetCell(0, 1); c.Rune != '─' || c.Color != core.ColorGray {
		t.Errorf("separator cell = %+v", c)
	}
}

func TestDrawSessionPlaying(t *testing.T) {
	s := startedSession()
	dst := draw(s, true)

	if hud := dst.Row(0); !strings.Contains(hud, "TIME: 60") || !strings.Contains(hud, "ROUND: 1") {
		t.Errorf("HUD = %q", hud)
	}
	if strings.Contains(dst.String(), "PRESS ENTER") {
		t.Error("running game should not show an overlay")
	}

	x, y := cellPos(s.Current, testOX, boardTop)
	if got := dst.Get(x, y); got != glyphToken {
		t.Errorf("token cell = %q, want %q", got, glyphToken)
	}

	gx, gy := cellPos(s.Maze.End, testOX, boardTop)
	if got := dst.Get(gx, gy); got != glyphGoal {
		t.Errorf("goal cell = %q, want %q", got, glyphGoal)
	}
	if got := draw(s, false).Get(gx, gy); got == glyphGoal {
		t.Error("goal should be hidden in the off blink phase")
	}
}

func TestDrawSessionGoalStaysVisible(t *testing.T) {
	s := startedSession()
	s.IsGoalReached = true
	dst := draw(s, false)

	gx, gy := cellPos(s.Maze.End, testOX, boardTop)
	if got := dst.Get(gx, gy); got != glyphGoal {
		t.Errorf("goal cell = %q, want %q while the goal is reached", got, glyphGoal)
	}
	if row := dst.Row(1); !strings.Contains(row, "ROUND 1 CLEAR") {
		t.Errorf("separator = %q, want round clear banner", row)
	}
}

func TestDrawSessionGameOver(t *testing.T) {
	s := startedSession()
	s.Time = 0
	out := draw(s, true).String()

	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "PRESS ENTER TO START") {
		t.Errorf("game over screen:\n%s", out)
	}
}

func TestDrawSessionPrizes(t *testing.T) {
	s := startedSession()
	s.Prizes[game.IceCream] = game.Prize{Cell: maze.C(1, 1), Placed: true}
	s.Prizes[game.Lollipop] = game.Prize{Cell: maze.C(1, 0), Placed: true, WasHit: true, ShowText: true}
	dst := draw(s, true)

	ix, iy := cellPos(maze.C(1, 1), testOX, boardTop)
	if got := dst.Get(ix, iy); got != glyphIceCream {
		t.Errorf("ice cream cell = %q, want %q", got, glyphIceCream)
	}

	lx, ly := cellPos(maze.C(1, 0), testOX, boardTop)
	if got := dst.Get(lx, ly); got == glyphLollipop {
		t.Error("a collected lollipop should not be drawn")
	}
	if row := dst.Row(ly - 1); !strings.Contains(row, "+5000") {
		t.Errorf("row above the lollipop = %q, want its bonus label", row)
	}
}

func TestDrawSessionLabelStaysOnScreen(t *testing.T) {
	s := startedSession()
	s.Prizes[game.IceCream] = game.Prize{Cell: maze.C(2, 0), Placed: true, WasHit: true, ShowText: true}

	// The board fills the screen exactly, so the rightmost label would run
	// past the edge.
	w, h := BoardSize(s.Maze.Rows, s.Maze.Cols)
	dst := core.NewScreen(w, h)
	DrawSession(dst, s, View{Rules: game.DefaultRules(), BlinkOn: true})

	_, y := cellPos(maze.C(2, 0), 0, boardTop)
	if row := dst.Row(y - 1); !strings.Contains(row, "+10000") {
		t.Errorf("row above the ice cream = %q, want the whole label", row)
	}
}

func TestDrawSessionWindowTooSmall(t *testing.T) {
	dst := core.NewScreen(30, 10)
	DrawSession(dst, game.Session{}, View{Rules: game.DefaultRules()})
	out := dst.String()

	if !strings.Contains(out, "Window too small") {
		t.Errorf("small screen:\n%s", out)
	}
	if strings.Contains(out, "CANDY MAZE") {
		t.Error("title overlay should give way to the resize notice")
	}
}

func TestGameKey(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want game.Key
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, game.KeyStart},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, game.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, game.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, game.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, game.KeyRight},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, game.KeyUp},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, game.KeyDown},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, game.KeyLeft},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, game.KeyRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, game.KeyNone},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, game.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.GameKey(tt.msg); got != tt.want {
				t.Errorf("GameKey(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
