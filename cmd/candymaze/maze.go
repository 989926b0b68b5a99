package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/maze"
	"github.com/vovakirdan/candy-maze/internal/registry"
)

var (
	flagMazeRows int
	flagMazeCols int
	flagMazeOut  string
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Generate a maze and print it as YAML",
	Long: `Generate a maze with one of the registered generators and write it in
the YAML format that 'candymaze play --maze' reads.

Examples:
  candymaze maze --seed 7 > mazes/seven.yaml
  candymaze maze --generator prim --rows 9 --cols 21 --out small.yaml`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().StringVar(&flagGenerator, "generator", "", "Maze generator ID (see 'candymaze list')")
	mazeCmd.Flags().IntVar(&flagMazeRows, "rows", 0, "Maze rows (default from config)")
	mazeCmd.Flags().IntVar(&flagMazeCols, "cols", 0, "Maze columns (default from config)")
	mazeCmd.Flags().StringVar(&flagMazeOut, "out", "", "Write to this file instead of stdout")
}

func runMaze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagGenerator != "" {
		cfg.Generator = flagGenerator
	}
	rows, cols := cfg.Game.Rows, cfg.Game.Cols
	if flagMazeRows > 0 {
		rows = flagMazeRows
	}
	if flagMazeCols > 0 {
		cols = flagMazeCols
	}

	seed := core.RuntimeConfig{Seed: cfg.Seed}.ResolveSeed()
	gen, err := registry.Create(cfg.Generator, seed)
	if err != nil {
		return err
	}

	m := gen.Generate(rows, cols)
	if err := m.Validate(); err != nil {
		return err
	}

	data, err := maze.Marshal(fmt.Sprintf("%s-%d", cfg.Generator, seed), m)
	if err != nil {
		return err
	}

	if flagMazeOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(flagMazeOut, data, 0o644)
}
