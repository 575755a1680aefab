package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/storage"
)

var (
	flagImportScores   string
	flagImportSettings string
	flagImportReplace  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import legacy highscores.json and config.json files",
	Long: `Import files written by earlier Paint (H)it releases.

Imported high scores are merged with the current table, or replace it with
--replace; only the best 10 are kept. Imported settings replace the current
settings file.

Examples:
  painthit import --scores ./highscores.json
  painthit import --scores ./highscores.json --replace
  painthit import --settings ./config.json
  painthit import --scores ./highscores.json --settings ./config.json`,
	Args: cobra.NoArgs,
	Run:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export high scores as legacy JSON",
	Long: `Write the high score table in the highscores.json format of earlier
releases. Writes to stdout when no file is given.

Examples:
  painthit export
  painthit export ./highscores.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportScores, "scores", "", "Legacy highscores.json to merge")
	importCmd.Flags().StringVar(&flagImportSettings, "settings", "", "Legacy config.json to import")
	importCmd.Flags().BoolVar(&flagImportReplace, "replace", false, "Replace the high score table instead of merging")
}

func runImport(_ *cobra.Command, _ []string) {
	if flagImportScores == "" && flagImportSettings == "" {
		fail("nothing to import: pass --scores and/or --settings")
	}

	if flagImportScores != "" {
		n, err := importScores(flagImportScores, flagDBPath, flagImportReplace)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("Imported %d high scores from %s\n", n, flagImportScores)
	}

	if flagImportSettings != "" {
		if err := importSettings(flagImportSettings, flagConfigPath); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Imported settings from %s\n", flagImportSettings)
	}
}

// importScores merges a legacy score file into the database, or replaces
// the table with it, and returns how many entries were read.
func importScores(path, dbPath string, replace bool) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("cannot read %s: %w", path, err)
	}
	imported, err := storage.ParseLegacyScores(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if replace {
		err = store.ReplaceAll(imported)
	} else {
		err = store.Merge(imported)
	}
	if err != nil {
		return 0, err
	}
	return len(imported), nil
}

// importSettings converts a legacy config.json into the settings file.
func importSettings(path, settingsPath string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	settings, err := config.ParseLegacy(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return config.NewStore(settingsPath).Save(settings)
}

func runExport(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open scores database: %v", err)
	}
	top, err := store.Top()
	store.Close()
	if err != nil {
		fail("%v", err)
	}

	data, err := storage.EncodeLegacyScores(top)
	if err != nil {
		fail("%v", err)
	}

	if len(args) == 0 {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		fail("cannot write %s: %v", args[0], err)
	}
	fmt.Printf("Exported %d high scores to %s\n", len(top), args[0])
}
