package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-maze/internal/audio"
	"github.com/vovakirdan/candy-maze/internal/config"
	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/game"
	"github.com/vovakirdan/candy-maze/internal/maze"
	"github.com/vovakirdan/candy-maze/internal/platform/tui"
	"github.com/vovakirdan/candy-maze/internal/registry"
	"github.com/vovakirdan/candy-maze/internal/storage"
)

var (
	flagMazeFile  string
	flagGenerator string
	flagMute      bool
	flagJournal   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter             - Start (again after game over)
  Arrows/WASD/hjkl  - Move
  ?                 - More keys
  Q/Ctrl+C          - Quit

Each round starts with 60 seconds. The lollipop (+5000, +15s) shows up
after 30 seconds, the ice cream (+10000, +30s) after 45. Reaching the goal
adds points + round * time * 100 to the hi-score, and seconds above the
round time carry into the next round.

Examples:
  candymaze play
  candymaze play --generator prim
  candymaze play --seed 42 --journal ./runs.db
  candymaze play --maze ./mazes/spiral.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMazeFile, "maze", "", "Play every round on the maze in this YAML file")
	playCmd.Flags().StringVar(&flagGenerator, "generator", "", "Maze generator ID (see 'candymaze list')")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	playCmd.Flags().StringVar(&flagJournal, "journal", "", "Record the run to this journal database")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagGenerator != "" {
		cfg.Generator = flagGenerator
	}

	logger, closeLog, err := newLogger(io.Discard, "candymaze")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := core.DefaultConfig()
	rt.Seed = cfg.Seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	seed := rt.ResolveSeed()

	mazes, source, err := mazeSource(cfg.Generator, seed)
	if err != nil {
		return err
	}

	rules := cfg.Rules()
	engCfg := game.EngineConfig{
		Rules:  rules,
		Mazes:  mazes,
		Seed:   seed,
		Logger: logger,
	}

	if cfg.Audio.Enabled && !flagMute {
		player := audio.Open(audio.Options{Volume: cfg.Audio.Volume}, logger)
		defer player.Close()
		engCfg.Observers = append(engCfg.Observers, player)
	}

	if path := journalPath(cfg, flagJournal); path != "" {
		store, storeErr := storage.Open(path)
		if storeErr != nil {
			return storeErr
		}
		defer store.Close()

		rec, recErr := store.StartRun(source, seed, rules)
		if recErr != nil {
			return recErr
		}
		engCfg.Journal = rec
		logger.Info("journaling run", "run", rec.RunID(), "path", path)
	}

	logger.Info("starting game", "source", source, "seed", seed)
	eng := game.NewEngine(engCfg)
	return tui.Run(cmd.Context(), eng, rules, rt.ScreenW, rt.ScreenH)
}

// mazeSource returns the maze generator for a game and the name recorded
// for it in the journal.
func mazeSource(generator string, seed uint64) (maze.Generator, string, error) {
	if flagMazeFile != "" {
		m, err := maze.LoadFile(flagMazeFile)
		if err != nil {
			return nil, "", err
		}
		return maze.Fixed{Maze: m}, "file:" + filepath.Base(flagMazeFile), nil
	}

	if !registry.Exists(generator) {
		return nil, "", fmt.Errorf("unknown maze generator %q, run 'candymaze list' to see available generators", generator)
	}
	gen, err := registry.Create(generator, seed)
	if err != nil {
		return nil, "", err
	}
	return gen, generator, nil
}

// journalPath picks the journal database: an explicit flag wins, then the
// config when journaling is enabled there.
func journalPath(cfg config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.Journal.Enabled {
		return cfg.Journal.Path
	}
	return ""
}

// openJournal opens the journal database for the read-only commands.
func openJournal(cmd *cobra.Command, logger *log.Logger) (*storage.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	path := flagJournal
	if path == "" {
		path = cfg.Journal.Path
	}
	logger.Debug("opening journal", "path", path)
	return storage.Open(path)
}
