package maze

// Generator produces a new maze for a round. Implementations must return
// a maze that passes Validate with exactly the requested dimensions.
type Generator interface {
	Generate(rows, cols int) *Maze
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(rows, cols int) *Maze

// Generate calls f(rows, cols).
func (f GeneratorFunc) Generate(rows, cols int) *Maze {
	return f(rows, cols)
}

// Fixed is a Generator that hands out the same maze every round,
// regardless of the requested dimensions. Used for mazes loaded from file.
type Fixed struct {
	Maze *Maze
}

// Generate returns the fixed maze.
func (f Fixed) Generate(_, _ int) *Maze {
	return f.Maze
}
