package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-maze/internal/platform/tui"
	"github.com/vovakirdan/candy-maze/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Candy Maze SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game with its own maze and clock.
Sessions have no audio.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.candymaze/host_key

Examples:
  candymaze serve                           # Listen on :23234 with auto-generated key
  candymaze serve --ssh :2222               # Listen on port 2222
  candymaze serve --host-key ./my_host_key  # Use specific host key
  candymaze serve --journal ./runs.db       # Journal every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagJournal, "journal", "", "Record every session to this journal database")
	serveCmd.Flags().StringVar(&flagGenerator, "generator", "", "Maze generator ID (see 'candymaze list')")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagGenerator != "" {
		cfg.Generator = flagGenerator
	}

	logger, closeLog, err := newLogger(os.Stderr, "candymaze-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Rules = cfg.Rules()
	srvCfg.Generator = cfg.Generator
	srvCfg.Seed = cfg.Seed
	srvCfg.Logger = logger
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	if cfg.Server.Address != "" {
		srvCfg.Address = cfg.Server.Address
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	srvCfg.HostKeyPath = cfg.Server.HostKey
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}

	if path := journalPath(cfg, flagJournal); path != "" {
		store, storeErr := storage.Open(path)
		if storeErr != nil {
			return storeErr
		}
		defer store.Close()
		srvCfg.Store = store
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Candy Maze SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
