package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-maze/internal/platform/tui"
	"github.com/vovakirdan/candy-maze/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse journaled runs",
	Long: `List the runs recorded with --journal, newest first.

In a terminal this opens an interactive browser where runs can be
deleted. When output is piped, it prints a plain table instead.

Examples:
  candymaze runs
  candymaze runs --journal ./runs.db --limit 5 | less`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagJournal, "journal", "", "Journal database (default from config)")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Max runs to print when not in a terminal")
}

func runRuns(cmd *cobra.Command, _ []string) error {
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

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunJournalBrowser(store, width, height)
	}

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		return err
	}
	printRuns(runs)
	return nil
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs journaled yet.")
		return
	}

	fmt.Printf("%-36s  %-16s  %-12s  %6s  %5s  %8s\n", "ID", "Started", "Maze", "Events", "Round", "Hi-Score")
	for _, r := range runs {
		fmt.Printf("%-36s  %-16s  %-12s  %6d  %5d  %8d\n",
			r.ID,
			r.StartedAt.Format("2006-01-02 15:04"),
			r.Generator,
			r.Events,
			r.MaxRound,
			r.HiScore,
		)
	}
}
