package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/paint-hit/internal/game"
	"github.com/vovakirdan/paint-hit/internal/registry"
)

// Default terminal size when it cannot be detected.
const (
	defaultCols = 100
	defaultRows = 40
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend plays in the current terminal.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string { return "tui" }

// Title returns a human-readable name.
func (Frontend) Title() string { return "Terminal (half-block graphics)" }

// Run plays until the player exits.
func (Frontend) Run(opts registry.Options) error {
	machine, err := game.New(opts.Context, opts.Runtime)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	cols, rows := TerminalSize()
	return Run(machine, cols, rows, opts.Sound, opts.Context.Logger)
}

// TerminalSize returns the size of stdout, or a default when stdout is
// not a terminal.
func TerminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return defaultCols, defaultRows
	}
	return cols, rows
}
