package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Paint (H)it SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game. Settings are kept per session and
are not saved; the file explorer is disabled. All users share the
server's high score table.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.painthit/host_key

Examples:
  painthit serve                           # Listen on :23234 with auto-generated key
  painthit serve --ssh :2222               # Listen on port 2222
  painthit serve --host-key ./my_host_key  # Use specific host key
  painthit serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", config.DefaultHostKeyPath, "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	shared, closeBoard, err := buildContext(logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		fail("%v", err)
	}
	defer closeBoard()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Runtime.TickRate = flagFPS
	cfg.Runtime.Seed = flagSeed

	server, err := tui.NewSSHServer(cfg, shared)
	if err != nil {
		closeBoard()
		fail("cannot create server: %v", err)
	}

	fmt.Printf("Starting Paint (H)it SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeBoard()
		fail("server error: %v", err)
	}
}
