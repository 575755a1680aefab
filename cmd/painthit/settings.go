package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/config"
)

var flagReset bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or reset the settings file",
	Long: `Print the settings the game will start with, or reset them to defaults.

Examples:
  painthit config
  painthit config --reset`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagReset, "reset", false, "Overwrite the settings file with defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	store := config.NewStore(flagConfigPath)

	if flagReset {
		if err := store.Save(config.DefaultSettings()); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Settings reset: %s\n", store.Path())
		return
	}

	settings, err := store.Load()
	if err != nil {
		fmt.Printf("Warning: %v (showing defaults)\n\n", err)
	}

	fmt.Printf("Settings file: %s\n\n", store.Path())
	fmt.Printf("  %-20s %s\n", "Speed", settings.Speed)
	fmt.Printf("  %-20s %s\n", "Challenge duration", settings.ChallengeDuration)
	fmt.Printf("  %-20s %s\n", "Background", orNone(settings.BackgroundPath))
	fmt.Printf("  %-20s %s\n", "Faces", orNone(strings.Join(settings.Faces(), ", ")))
	fmt.Printf("  %-20s %s\n", "Last directory", settings.LastPath)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
