// Package prim generates perfect mazes with randomized Prim's algorithm.
// Compared with the backtracker its mazes branch more and have many short
// dead ends.
package prim

import (
	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/maze"
	"github.com/vovakirdan/candy-maze/internal/registry"
)

// ID is the registry name of this generator.
const ID = "prim"

func init() {
	registry.Register(ID, "Randomized Prim", func(seed uint64) maze.Generator {
		return New(seed)
	})
}

// Generator grows a spanning tree from a random cell. Not safe for
// concurrent use.
type Generator struct {
	rng *core.RNG
}

// New creates a generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{rng: core.NewRNG(seed)}
}

// edge is a wall between an in-tree cell and a cell outside the tree.
type edge struct {
	from maze.Coord
	dir  maze.Dir
}

// Generate returns a rows×cols perfect maze from the top-left to the
// bottom-right corner.
func (g *Generator) Generate(rows, cols int) *maze.Maze {
	m := maze.New(cols, rows)
	if m.Len() == 0 {
		return m
	}

	inTree := make([]bool, m.Len())
	var frontier []edge

	add := func(c maze.Coord) {
		inTree[m.Index(c)] = true
		for _, d := range maze.Dirs {
			n := c.Step(d)
			if m.InBounds(n) && !inTree[m.Index(n)] {
				frontier = append(frontier, edge{from: c, dir: d})
			}
		}
	}

	add(maze.C(g.rng.Intn(cols), g.rng.Intn(rows)))
	for len(frontier) > 0 {
		i := g.rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		n := e.from.Step(e.dir)
		if inTree[m.Index(n)] {
			continue
		}
		m.Carve(e.from, e.dir)
		add(n)
	}
	return m
}
