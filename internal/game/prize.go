package game

import (
	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/maze"
)

// maxSpawnDraws bounds rejection sampling. With at most three excluded
// cells on the default 33x17 board a draw is rejected with probability
// under 1%, so the fallback scan practically never runs.
const maxSpawnDraws = 64

// pickCell chooses a uniformly random cell of m not in exclude, starting
// from RNG state seed. It returns the chosen cell, the advanced RNG state,
// and false when every cell is excluded.
func pickCell(m *maze.Maze, seed uint64, exclude []maze.Coord) (maze.Coord, uint64, bool) {
	n := m.Len()
	if n == 0 {
		return maze.Coord{}, seed, false
	}

	rng := core.NewRNG(seed)
	for i := 0; i < maxSpawnDraws; i++ {
		c := m.CoordAt(rng.Intn(n))
		if !excluded(c, exclude) {
			return c, rng.State(), true
		}
	}

	// Deterministic scan from a random offset. Only reached on boards
	// where the exclusion set covers most of the grid.
	offset := rng.Intn(n)
	for i := 0; i < n; i++ {
		c := m.CoordAt((offset + i) % n)
		if !excluded(c, exclude) {
			return c, rng.State(), true
		}
	}
	return maze.Coord{}, rng.State(), false
}

func excluded(c maze.Coord, set []maze.Coord) bool {
	for _, x := range set {
		if c == x {
			return true
		}
	}
	return false
}
