package tui

import (
	"fmt"

	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/game"
	"github.com/vovakirdan/candy-maze/internal/maze"
)

// Board glyphs.
const (
	glyphToken    = '@'
	glyphGoal     = 'G'
	glyphLollipop = '%'
	glyphIceCream = '&'
)

const (
	hudRows    = 2 // status line + separator
	boardTop   = hudRows
	overlayPad = 4
)

var prizeGlyphs = [game.PrizeKinds]rune{game.Lollipop: glyphLollipop, game.IceCream: glyphIceCream}

var prizeColors = [game.PrizeKinds]core.Color{game.Lollipop: core.ColorMagenta, game.IceCream: core.ColorCyan}

// BoardSize returns the screen area a rows×cols maze occupies, HUD
// included. Each cell is two characters wide: the cell itself and the
// wall (or gap) to its right.
func BoardSize(rows, cols int) (w, h int) {
	return 2*cols + 1, rows + 1 + hudRows
}

// View holds what the renderer needs besides the session.
type View struct {
	Rules   game.Rules
	BlinkOn bool // goal marker visible in this blink phase
}

// DrawSession draws the HUD, the maze, the token, the prizes and any
// overlay for s.
func DrawSession(dst *core.Screen, s game.Session, v View) {
	dst.Clear()
	drawHUD(dst, s)

	rows, cols := v.Rules.Rows, v.Rules.Cols
	if s.Maze != nil {
		rows, cols = s.Maze.Rows, s.Maze.Cols
	}
	w, h := BoardSize(rows, cols)
	if dst.Width() < w || dst.Height() < h {
		drawOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if s.Maze != nil {
		ox := (dst.Width() - w) / 2
		drawMaze(dst, s.Maze, ox, boardTop)
		drawPieces(dst, s, v, ox, boardTop)
	}

	switch {
	case s.GameOver():
		drawOverlay(dst, "GAME OVER", "PRESS ENTER TO START")
	case !s.Running():
		drawOverlay(dst, "CANDY MAZE", "PRESS ENTER TO START")
	}
}

// drawHUD draws the status line and the separator below it.
func drawHUD(dst *core.Screen, s game.Session) {
	// Before the first game there is no clock yet, and round 1 is next.
	timeText, round := "--", 1
	if s.Started {
		timeText, round = fmt.Sprintf("%d", s.Time), s.Round
	}
	hud := fmt.Sprintf(" HI-SCORE: %d  POINTS: %d  TIME: %s  ROUND: %d", s.HiScore, s.Points, timeText, round)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
	if s.IsGoalReached {
		dst.DrawTextCentered(1, fmt.Sprintf(" ROUND %d CLEAR ", s.Round), core.ColorGreen)
	}
}

// cellPos returns the screen position of the character for maze cell c.
func cellPos(c maze.Coord, ox, oy int) (int, int) {
	return ox + 1 + 2*c.X, oy + 1 + c.Y
}

// drawMaze draws walls in the classic compact style: '_' for a wall below
// a cell, '|' for a wall to its right.
func drawMaze(dst *core.Screen, m *maze.Maze, ox, oy int) {
	dst.DrawHLine(ox+1, oy, 2*m.Cols-1, '_', core.ColorBlue)

	for y := 0; y < m.Rows; y++ {
		sy := oy + 1 + y
		dst.SetColored(ox, sy, '|', core.ColorBlue)
		for x := 0; x < m.Cols; x++ {
			c := maze.C(x, y)
			walls := m.At(c)
			sx, _ := cellPos(c, ox, oy)

			if walls.Has(maze.Down) {
				dst.SetColored(sx, sy, '_', core.ColorBlue)
			}

			switch {
			case walls.Has(maze.Right):
				dst.SetColored(sx+1, sy, '|', core.ColorBlue)
			case walls.Has(maze.Down) && m.At(c.Step(maze.Right)).Has(maze.Down):
				dst.SetColored(sx+1, sy, '_', core.ColorBlue)
			}
		}
	}
}

// drawPiece puts r at cell c, keeping the cell's bottom wall visible as
// an underline.
func drawPiece(dst *core.Screen, m *maze.Maze, c maze.Coord, ox, oy int, r rune, color core.Color) {
	x, y := cellPos(c, ox, oy)
	dst.SetCell(x, y, core.Cell{Rune: r, Color: color, Underline: m.At(c).Has(maze.Down)})
}

func drawPieces(dst *core.Screen, s game.Session, v View, ox, oy int) {
	m := s.Maze

	if v.BlinkOn || s.IsGoalReached {
		drawPiece(dst, m, m.End, ox, oy, glyphGoal, core.ColorBrightRed)
	}

	for _, k := range game.Kinds {
		p := s.Prize(k)
		if p.Placed && !p.WasHit {
			drawPiece(dst, m, p.Cell, ox, oy, prizeGlyphs[k], prizeColors[k])
		}
	}

	drawPiece(dst, m, s.Current, ox, oy, glyphToken, core.ColorYellow)

	// Bonus texts go last so they stay readable over the walls. A label
	// near the right edge is shifted left to stay on screen.
	for _, k := range game.Kinds {
		p := s.Prize(k)
		if p.ShowText {
			label := v.Rules.Prize(k).Label
			x, y := cellPos(p.Cell, ox, oy)
			x = core.Clamp(x, 0, max(dst.Width()-len([]rune(label)), 0))
			dst.DrawTextColored(x, y-1, label, core.ColorBrightMagenta)
		}
	}
}

// drawOverlay draws a centered box with two lines of text.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + overlayPad
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
