package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/game"
	"github.com/vovakirdan/candy-maze/internal/platform/tui"
	"github.com/vovakirdan/candy-maze/internal/storage"
)

// hudWidth fits the status line of a long game.
const hudWidth = 64

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-apply a journaled run and check it",
	Long: `Replay feeds every journaled event of a run through the game rules
again, starting from a fresh session, and compares each resulting state
with what was recorded while playing. It reports the first event whose
outcome differs, or prints the final board when the run replays cleanly.

Examples:
  candymaze replay 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagJournal, "journal", "", "Journal database (default from config)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "candymaze")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openJournal(cmd, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Run(args[0])
	if err != nil {
		return err
	}
	entries, err := store.Entries(run.ID)
	if err != nil {
		return err
	}

	final, err := storage.Replay(run.Rules, entries)
	if errors.Is(err, storage.ErrDiverged) {
		fmt.Printf("Run %s does not replay to its recorded states.\n", run.ID)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Run %s replayed cleanly (%d events).\n", run.ID, len(entries))
	fmt.Printf("  round:    %d\n", final.Round)
	fmt.Printf("  points:   %d\n", final.Points)
	fmt.Printf("  hi-score: %d\n", final.HiScore)

	if final.Maze != nil {
		fmt.Println()
		fmt.Println(finalBoard(final, run.Rules))
	}
	return nil
}

// finalBoard draws the last recorded state as plain text, the way the
// player last saw it.
func finalBoard(s game.Session, rules game.Rules) string {
	w, h := tui.BoardSize(s.Maze.Rows, s.Maze.Cols)
	screen := core.NewScreen(max(w, hudWidth), h)
	tui.DrawSession(screen, s, tui.View{Rules: rules, BlinkOn: true})
	return screen.String()
}
