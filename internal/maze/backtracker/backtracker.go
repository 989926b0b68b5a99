// Package backtracker generates perfect mazes with the iterative
// recursive-backtracker (randomized depth-first search) algorithm. The
// result has long winding corridors and few short dead ends.
package backtracker

import (
	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/maze"
	"github.com/vovakirdan/candy-maze/internal/registry"
)

// ID is the registry name of this generator.
const ID = "backtracker"

func init() {
	registry.Register(ID, "Recursive backtracker", func(seed uint64) maze.Generator {
		return New(seed)
	})
}

// Generator carves mazes from a private RNG. Successive calls produce
// different mazes; two generators with the same seed produce the same
// sequence. Not safe for concurrent use.
type Generator struct {
	rng *core.RNG
}

// New creates a generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{rng: core.NewRNG(seed)}
}

// Generate returns a rows×cols perfect maze from the top-left to the
// bottom-right corner.
func (g *Generator) Generate(rows, cols int) *maze.Maze {
	m := maze.New(cols, rows)
	if m.Len() == 0 {
		return m
	}

	visited := make([]bool, m.Len())
	start := maze.C(g.rng.Intn(cols), g.rng.Intn(rows))
	visited[m.Index(start)] = true
	stack := []maze.Coord{start}

	var candidates []maze.Dir
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range maze.Dirs {
			n := cur.Step(d)
			if m.InBounds(n) && !visited[m.Index(n)] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[g.rng.Intn(len(candidates))]
		next := cur.Step(d)
		m.Carve(cur, d)
		visited[m.Index(next)] = true
		stack = append(stack, next)
	}
	return m
}
