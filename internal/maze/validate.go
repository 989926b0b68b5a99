package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidMaze is wrapped by every error Validate returns.
var ErrInvalidMaze = errors.New("maze: invalid maze")

// Validate checks the structural guarantees generators and maze files must
// provide: consistent dimensions, Start and End on the grid, a closed outer
// border, matching walls between neighbours, and every cell (End
// included) reachable from Start.
func (m *Maze) Validate() error {
	if m.Cols < 1 || m.Rows < 1 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMaze, m.Cols, m.Rows)
	}
	if len(m.Cells) != m.Len() {
		return fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidMaze, len(m.Cells), m.Cols, m.Rows)
	}
	if !m.InBounds(m.Start) {
		return fmt.Errorf("%w: start %s outside grid", ErrInvalidMaze, m.Start)
	}
	if !m.InBounds(m.End) {
		return fmt.Errorf("%w: end %s outside grid", ErrInvalidMaze, m.End)
	}

	for i, w := range m.Cells {
		c := m.CoordAt(i)
		for _, d := range Dirs {
			n := c.Step(d)
			if !m.InBounds(n) {
				if !w.Has(d) {
					return fmt.Errorf("%w: border open at %s facing %s", ErrInvalidMaze, c, d)
				}
				continue
			}
			if w.Has(d) != m.At(n).Has(d.Opposite()) {
				return fmt.Errorf("%w: wall mismatch between %s and %s", ErrInvalidMaze, c, n)
			}
		}
	}

	if m.PathLen() < 0 {
		return fmt.Errorf("%w: end %s unreachable from %s", ErrInvalidMaze, m.End, m.Start)
	}
	// Prizes spawn on any cell, so every cell must be reachable.
	if n := m.Reachable(); n != m.Len() {
		return fmt.Errorf("%w: %d of %d cells unreachable from %s", ErrInvalidMaze, m.Len()-n, m.Len(), m.Start)
	}
	return nil
}
