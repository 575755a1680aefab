package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/paint-hit/internal/core"
)

// keyActions maps keys to the actions they trigger when pressed.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyEnter:       core.ActionConfirm,
	ebiten.KeyNumpadEnter: core.ActionConfirm,
	ebiten.KeyEscape:      core.ActionBack,
	ebiten.KeyArrowUp:     core.ActionUp,
	ebiten.KeyArrowDown:   core.ActionDown,
	ebiten.KeyP:           core.ActionPause,
	ebiten.KeyR:           core.ActionRestart,
	ebiten.KeyQ:           core.ActionQuit,
	ebiten.KeyY:           core.ActionYes,
	ebiten.KeyN:           core.ActionNo,
	ebiten.KeyM:           core.ActionMenu,
	ebiten.KeyDigit1:      core.ActionColor1,
	ebiten.KeyDigit2:      core.ActionColor2,
	ebiten.KeyDigit3:      core.ActionColor3,
	ebiten.KeyDigit4:      core.ActionColor4,
}

// Backspace auto-repeat, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// readInput collects this tick's input. gameplay reports whether a run is
// active, where Escape also pauses and Space fires at the pointer.
func readInput(gameplay bool) core.InputFrame {
	f := core.NewInputFrame()

	x, y := ebiten.CursorPosition()
	p := core.V(float64(x), float64(y))
	f.MovePointer(p)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Click(p)
	}
	_, f.Scroll = ebiten.Wheel()

	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			f.Set(action)
		}
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d == 1 || (d > repeatDelay && d%repeatInterval == 0) {
		f.Set(core.ActionBackspace)
	}
	if gameplay {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			f.Set(core.ActionPause)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			f.Click(p)
		}
	}

	f.Text = ebiten.AppendInputChars(f.Text)

	if ebiten.IsWindowBeingClosed() {
		f.Set(core.ActionExit)
	}
	return f
}
