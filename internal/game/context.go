package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/config"
	"github.com/vovakirdan/paint-hit/internal/scores"
)

// Context is everything a machine needs from the outside world. It is built
// once by the caller and owned by the machine afterwards; nothing else
// writes to the settings it loads.
type Context struct {
	Assets   *assets.Catalog // Core images; the bundled catalog when nil
	Settings *config.Store   // Settings record; memory-only when nil
	Board    scores.Board    // High score board; in-memory when nil
	Tuning   config.Tuning   // Gameplay constants; normalized on use
	Logger   *log.Logger     // Discards output when nil

	// AllowBrowse enables the file explorer. Remote sessions turn it off
	// so players cannot walk the host's filesystem.
	AllowBrowse bool
}

// RunRecorder is implemented by boards that also keep per-run history.
type RunRecorder interface {
	RecordRun(mode string, score int) (int64, error)
}
