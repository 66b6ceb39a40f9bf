package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocky/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Blocky SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the goal menu, setup screen
and scoreboard. Scores are stored per-server (all users share the same
leaderboard, set with --db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.blocky/host_key

Examples:
  blocky serve                           # Listen on :23234 with auto-generated key
  blocky serve --ssh :2222               # Listen on port 2222
  blocky serve --host-key ./my_host_key  # Use specific host key
  blocky serve --db ./scores.db          # Use specific database
  blocky serve --idle-timeout 10m        # Drop idle players sooner

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect sessions idle for this long")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := checkGameFlags(); err != nil {
		logger.Fatal("invalid game flags", "error", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("blocky-ssh"))
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}

	logger.Info("listening", "address", server.Addr(), "db", flagDBPath, "idle", flagIdleTimeout)

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
