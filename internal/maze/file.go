package maze

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a hand-made maze.
//
//	name: tiny
//	start: {x: 0, y: 0}
//	end: {x: 2, y: 1}
//	layout: |
//	  +--+--+--+
//	  |        |
//	  +  +--+  +
//	  |     |  |
//	  +--+--+--+
//
// Every cell is three characters wide: "--" between two '+' marks a
// horizontal wall, '|' a vertical one. Start and End default to the
// top-left and bottom-right corners.
type File struct {
	Name   string `yaml:"name,omitempty"`
	Start  *Coord `yaml:"start,omitempty"`
	End    *Coord `yaml:"end,omitempty"`
	Layout string `yaml:"layout"`
}

// LoadFile reads and validates a YAML maze file.
func LoadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: failed to read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("maze: %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML maze document.
func Parse(data []byte) (*Maze, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	m, err := ParseLayout(f.Layout)
	if err != nil {
		return nil, err
	}
	if f.Start != nil {
		m.Start = *f.Start
	}
	if f.End != nil {
		m.End = *f.End
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseLayout converts the ASCII layout into a maze without validating it.
func ParseLayout(layout string) (*Maze, error) {
	lines := strings.Split(strings.Trim(layout, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \r")
	}
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: layout needs an odd number of lines (>= 3), got %d", ErrInvalidMaze, len(lines))
	}
	width := len(lines[0])
	if width < 4 || (width-1)%3 != 0 {
		return nil, fmt.Errorf("%w: layout width %d is not 3*cols+1", ErrInvalidMaze, width)
	}

	cols := (width - 1) / 3
	rows := (len(lines) - 1) / 2
	for i, l := range lines {
		if len(l) > width {
			return nil, fmt.Errorf("%w: layout line %d is wider than the first line", ErrInvalidMaze, i+1)
		}
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	m := New(cols, rows)
	for y := 0; y < rows; y++ {
		above, middle, below := lines[2*y], lines[2*y+1], lines[2*y+2]
		for x := 0; x < cols; x++ {
			var w Walls
			if above[3*x+1] != ' ' {
				w = w.With(Up)
			}
			if below[3*x+1] != ' ' {
				w = w.With(Down)
			}
			if middle[3*x] != ' ' {
				w = w.With(Left)
			}
			if middle[3*x+3] != ' ' {
				w = w.With(Right)
			}
			m.Cells[m.Index(C(x, y))] = w
		}
	}
	return m, nil
}

// Format renders m in the layout syntax ParseLayout accepts.
func Format(m *Maze) string {
	var sb strings.Builder
	for y := 0; y <= m.Rows; y++ {
		// Horizontal wall line between row y-1 and row y.
		for x := 0; x < m.Cols; x++ {
			sb.WriteByte('+')
			if m.hasHorizontalWall(x, y) {
				sb.WriteString("--")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("+\n")
		if y == m.Rows {
			break
		}
		for x := 0; x < m.Cols; x++ {
			if m.At(C(x, y)).Has(Left) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteString("  ")
		}
		if m.At(C(m.Cols-1, y)).Has(Right) {
			sb.WriteString("|\n")
		} else {
			sb.WriteString(" \n")
		}
	}
	return sb.String()
}

func (m *Maze) hasHorizontalWall(x, y int) bool {
	if y < m.Rows {
		return m.At(C(x, y)).Has(Up)
	}
	return m.At(C(x, y-1)).Has(Down)
}

// Marshal encodes m as a YAML maze document.
func Marshal(name string, m *Maze) ([]byte, error) {
	start, end := m.Start, m.End
	data, err := yaml.Marshal(File{
		Name:   name,
		Start:  &start,
		End:    &end,
		Layout: Format(m),
	})
	if err != nil {
		return nil, fmt.Errorf("maze: failed to encode: %w", err)
	}
	return data, nil
}
