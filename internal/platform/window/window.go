// Package window is the desktop front end: an Ebitengine window showing
// the scene at its native 1000x800 resolution with real images and a
// mouse pointer.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/paint-hit/internal/game"
	"github.com/vovakirdan/paint-hit/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend opens a desktop window.
type Frontend struct{}

// ID returns the front-end identifier.
func (Frontend) ID() string { return "window" }

// Title returns a human-readable name.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and blocks until the player exits.
func (Frontend) Run(opts registry.Options) error {
	machine, err := game.New(opts.Context, opts.Runtime)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	rt := machine.Runtime()
	ebiten.SetWindowSize(int(rt.ViewW), int(rt.ViewH))
	ebiten.SetWindowTitle("Paint (H)it")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rt.TickRate)

	g := NewGame(machine, opts.Sound)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
