package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/audio"
	"github.com/vovakirdan/paint-hit/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Paint (H)it",
	Long: `Start the game on the chosen front end.

Controls:
  Mouse / arrows  - Aim (arrows aim in the terminal)
  Click / Space   - Fire
  1-4             - Paint colour (red, green, blue, yellow)
  P/Esc           - Pause
  R               - Restart (asks first during a run)
  Q               - Quit the run (asks first)
  Ctrl+C          - Exit

Examples:
  painthit play
  painthit play --frontend window
  painthit play --seed 42 --tuning ./my-tuning.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Front end to play on (see 'painthit frontends')")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown front end %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'painthit frontends' to see available front ends.")
		os.Exit(1)
	}

	// The terminal front end owns stdout and stderr while it runs.
	logOut := os.Stderr
	if flagFrontend == "tui" {
		f, err := openLogFile()
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	ctx, closeBoard, err := buildContext(logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		fail("%v", err)
	}
	defer closeBoard()

	player := audio.NewPlayer(flagMute)
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
	}
	defer player.Close()

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		fail("%v", err)
	}

	rt := runtimeConfig()
	logger.Info("starting", "frontend", frontend.ID(), "seed", rt.Seed)
	opts := registry.Options{
		Context: ctx,
		Runtime: rt,
		Sound:   player,
	}
	if err := frontend.Run(opts); err != nil {
		logger.Error("front end failed", "error", err)
		closeBoard()
		fail("%v", err)
	}
}
