package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/game"
	"github.com/vovakirdan/paint-hit/internal/scores"
	"github.com/vovakirdan/paint-hit/internal/storage"
)

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "painthit",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens the log file the terminal front end writes to, since
// stderr would tear the alternate screen.
func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome(config.DefaultLogPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// runtimeConfig builds the runtime configuration from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// loadAssets returns the core images from --assets or the bundled set.
func loadAssets() (*assets.Catalog, error) {
	fsys := assets.Bundled()
	if flagAssetsDir != "" {
		dir, err := config.ExpandHome(flagAssetsDir)
		if err != nil {
			return nil, err
		}
		fsys = os.DirFS(dir)
	}
	return assets.LoadCatalog(fsys)
}

// openBoard opens the score database, falling back to an in-memory board
// so the game stays playable. The returned closer is never nil.
func openBoard(logger *log.Logger) (scores.Board, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be kept", "path", flagDBPath, "error", err)
		return scores.NewMemory(), func() {}
	}
	return store, func() { store.Close() }
}

// buildContext assembles everything a machine needs. Core asset failures
// are fatal; everything else degrades.
func buildContext(logger *log.Logger) (game.Context, func(), error) {
	catalog, err := loadAssets()
	if err != nil {
		return game.Context{}, nil, fmt.Errorf("cannot load core assets: %w", err)
	}

	tuning, err := config.LoadTuning(flagTuningPath)
	if err != nil {
		logger.Warn("using default tuning", "error", err)
	}

	board, closeBoard := openBoard(logger)
	return game.Context{
		Assets:      catalog,
		Settings:    config.NewStore(flagConfigPath),
		Board:       board,
		Tuning:      tuning,
		Logger:      logger,
		AllowBrowse: true,
	}, closeBoard, nil
}
