package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-marbles/internal/games/marbles"
	"github.com/vovakirdan/tui-marbles/internal/platform/tui"
	"github.com/vovakirdan/tui-marbles/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the marbles SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game with a setup menu. Scores are stored
per server (all users share the same leaderboard). The server plays no
sound and logs to stderr.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.marbles/host_key

Examples:
  marbles serve                           # Listen on :23234 with auto-generated key
  marbles serve --ssh :2222               # Listen on port 2222
  marbles serve --host-key ./my_host_key  # Use specific host key
  marbles serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := stderrLogger("marbles-ssh")
	if err != nil {
		return err
	}
	marbles.SetLogger(logger)
	marbles.SetConfigPath(flagConfig)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.GameID = marbles.GameID
	cfg.Title = "Marbles"
	cfg.NewGame = func(sel tui.MenuSelection) registry.Game {
		settings := marbles.DefaultSettings()
		settings.Difficulty = sel.Difficulty
		settings.StartLevel = sel.Level
		return marbles.NewWithSettings(settings)
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting marbles SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.Serve(ctx)
}
