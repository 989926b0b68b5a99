// Package maze defines the rectangular wall-per-side maze the game is
// played on, along with validation, a text file format and the Generator
// contract used to produce a fresh maze for every round.
package maze

import "fmt"

// Coord is a cell position: X is the column, Y the row, (0,0) top-left.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir is a direction of travel. Its value is also the wall index of the
// side of a cell facing that direction.
type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// Dirs lists all directions in wall-index order.
var Dirs = [4]Dir{Up, Right, Down, Left}

// Delta returns the (dx, dy) offset for this direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// Valid reports whether d is one of the four directions.
func (d Dir) Valid() bool {
	return d <= Left
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Dir(%d)", uint8(d))
}

// Walls is a bit set of the closed sides of one cell, bit i = Dir(i).
type Walls uint8

// AllWalls is a fully closed cell.
const AllWalls Walls = 1<<Up | 1<<Right | 1<<Down | 1<<Left

// Has reports whether the side facing d is closed.
func (w Walls) Has(d Dir) bool {
	return w&(1<<d) != 0
}

// With returns w with the side facing d closed.
func (w Walls) With(d Dir) Walls {
	return w | 1<<d
}

// Without returns w with the side facing d open.
func (w Walls) Without(d Dir) Walls {
	return w &^ (1 << d)
}

// Maze is a Cols×Rows grid of cells. Each cell records its own four
// walls; a passage between neighbours is open only when both of their
// facing walls are open. Mazes are treated as read-only once built.
type Maze struct {
	Cols  int     `json:"cols"`
	Rows  int     `json:"rows"`
	Cells []Walls `json:"cells"`
	Start Coord   `json:"start"`
	End   Coord   `json:"end"`
}

// New returns a cols×rows maze with every wall closed, starting in the
// top-left corner and ending in the bottom-right one.
func New(cols, rows int) *Maze {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([]Walls, cols*rows)
	for i := range cells {
		cells[i] = AllWalls
	}
	return &Maze{
		Cols:  cols,
		Rows:  rows,
		Cells: cells,
		Start: C(0, 0),
		End:   C(cols-1, rows-1),
	}
}

// Len returns the number of cells.
func (m *Maze) Len() int {
	return m.Cols * m.Rows
}

// InBounds reports whether c lies on the grid.
func (m *Maze) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.Cols && c.Y >= 0 && c.Y < m.Rows
}

// Index returns the position of c in Cells.
func (m *Maze) Index(c Coord) int {
	return c.X + c.Y*m.Cols
}

// CoordAt is the inverse of Index.
func (m *Maze) CoordAt(i int) Coord {
	return Coord{X: i % m.Cols, Y: i / m.Cols}
}

// At returns the walls of c. Cells off the grid are fully closed.
func (m *Maze) At(c Coord) Walls {
	if !m.InBounds(c) {
		return AllWalls
	}
	i := m.Index(c)
	if i >= len(m.Cells) {
		return AllWalls
	}
	return m.Cells[i]
}

// CanMove reports whether a token at from may step once in direction d:
// the destination must be on the grid and from must have no wall on that
// side. Only the origin cell's wall is consulted.
func (m *Maze) CanMove(from Coord, d Dir) bool {
	if !d.Valid() || !m.InBounds(from) {
		return false
	}
	if !m.InBounds(from.Step(d)) {
		return false
	}
	return !m.At(from).Has(d)
}

// Carve opens the passage between c and its neighbour in direction d,
// clearing the facing wall on both sides. It is a no-op at the border.
func (m *Maze) Carve(c Coord, d Dir) {
	n := c.Step(d)
	if !m.InBounds(c) || !m.InBounds(n) {
		return
	}
	m.Cells[m.Index(c)] = m.Cells[m.Index(c)].Without(d)
	m.Cells[m.Index(n)] = m.Cells[m.Index(n)].Without(d.Opposite())
}

// Reachable returns the number of cells reachable from Start moving only
// through open passages.
func (m *Maze) Reachable() int {
	return len(m.distances(m.Start))
}

// PathLen returns the number of steps of the shortest route from Start to
// End, or -1 when End cannot be reached.
func (m *Maze) PathLen() int {
	d, ok := m.distances(m.Start)[m.End]
	if !ok {
		return -1
	}
	return d
}

func (m *Maze) distances(from Coord) map[Coord]int {
	dist := make(map[Coord]int)
	if !m.InBounds(from) {
		return dist
	}
	dist[from] = 0
	queue := []Coord{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			if !m.CanMove(c, d) {
				continue
			}
			n := c.Step(d)
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[c] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
