package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/game"
	"github.com/vovakirdan/paint-hit/internal/registry"
)

// Game adapts a machine to ebiten.Game.
type Game struct {
	machine *game.Machine
	sound   registry.Sound // May be nil
	images  map[*assets.Image]*ebiten.Image
	text    *textDrawer
}

// NewGame creates the ebiten game for machine.
func NewGame(machine *game.Machine, sound registry.Sound) *Game {
	return &Game{
		machine: machine,
		sound:   sound,
		images:  make(map[*assets.Image]*ebiten.Image),
		text:    newTextDrawer(),
	}
}

// Update advances the machine by one tick.
func (g *Game) Update() error {
	s := g.machine.Session()
	gameplay := g.machine.State().Active() && !s.Paused && s.Confirm == game.ConfirmNone

	res := g.machine.Step(readInput(gameplay))
	if g.sound != nil && len(res.Events) > 0 {
		g.sound.Play(res.Events)
	}
	if !g.machine.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw rasterizes the machine's scene.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, cmd := range g.machine.Render() {
		g.draw(screen, cmd)
	}
}

// Layout keeps the logical screen at the viewport size; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rt := g.machine.Runtime()
	return int(rt.ViewW), int(rt.ViewH)
}

// image returns the GPU copy of img, uploading it on first use.
func (g *Game) image(img *assets.Image) *ebiten.Image {
	if e, ok := g.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img.Img)
	g.images[img] = e
	return e
}
