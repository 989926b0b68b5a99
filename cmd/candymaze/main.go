// candymaze is a timed maze arcade game for the terminal.
//
// Usage:
//
//	candymaze play               - Play in this terminal
//	candymaze serve              - Start SSH server for remote play
//	candymaze list               - List available maze generators
//	candymaze maze               - Generate a maze and print it as YAML
//	candymaze runs               - Browse journaled runs
//	candymaze replay <run-id>    - Re-apply a journaled run and check it
//
// Global flags:
//
//	--config <path>    - Path to config YAML
//	--seed <value>     - Set RNG seed for reproducible mazes and prizes
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-maze/internal/config"

	// Import generators to register them
	_ "github.com/vovakirdan/candy-maze/internal/maze/backtracker"
	_ "github.com/vovakirdan/candy-maze/internal/maze/prim"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candymaze",
	Short: "Candy Maze - a timed maze chase in your terminal",
	Long: `Candy Maze drops you at the corner of a maze with a ticking clock.
Reach the goal before time runs out, grab the lollipop and the ice cream
for bonus points and extra seconds, and see how many rounds you last.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  list     - Show available maze generators
  maze     - Generate a maze file
  runs     - Browse journaled runs
  replay   - Check a journaled run

Examples:
  candymaze play
  candymaze play --generator prim --seed 42
  candymaze play --maze ./mazes/spiral.yaml
  candymaze serve --ssh :2222
  candymaze replay 1b4e28ba`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the configuration and applies the global flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-file, logs go to
// fallback; play passes io.Discard because the TUI owns the terminal.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
