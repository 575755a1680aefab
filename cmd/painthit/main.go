// painthit is a paint-shooting arcade game for the terminal and the desktop.
//
// Usage:
//
//	painthit play             - Play in the terminal (or --frontend window)
//	painthit serve            - Start SSH server for remote play
//	painthit scores           - Show the high score table
//	painthit frontends        - List available front ends
//	painthit import           - Import a legacy highscores.json / config.json
//	painthit export           - Export high scores as legacy JSON
//	painthit config           - Show or reset the settings record
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.painthit/scores.db)
//	--config <path>     - Set settings path (default: ~/.painthit/config.yaml)
//	--tuning <path>     - Load gameplay tuning from a YAML or TOML file
//	--assets <dir>      - Load core images from a directory
//	--log-level <level> - debug, info, warn or error
//	--mute              - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/config"

	// Import front ends to register them
	_ "github.com/vovakirdan/paint-hit/internal/platform/tui"
	_ "github.com/vovakirdan/paint-hit/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagTuningPath string
	flagAssetsDir  string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "painthit",
	Short: "Paint (H)it - shoot paint at scrolling targets",
	Long: `Paint (H)it is an arcade shooter: targets with swappable faces come
down the lanes and you splat them with paint. Bullseye hits chain into
combos; let a target slip past and you lose a life.

Available commands:
  play       - Play locally (terminal or desktop window)
  serve      - Start SSH server for remote play
  scores     - View high scores
  frontends  - List available front ends
  import     - Import legacy JSON files
  export     - Export high scores as legacy JSON
  config     - Show or reset settings

Examples:
  painthit play
  painthit play --frontend window
  painthit serve --ssh :2222
  painthit scores -i`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.DefaultSettingsPath, "Path to settings file")
	rootCmd.PersistentFlags().StringVar(&flagTuningPath, "tuning", "", "Path to gameplay tuning file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagAssetsDir, "assets", "", "Directory with core images overriding the bundled ones")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
