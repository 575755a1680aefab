package game

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"github.com/vovakirdan/paint-hit/internal/browse"
	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/scene"
	"github.com/vovakirdan/paint-hit/internal/target"
)

// About screen text.
const (
	Version   = "0.8.2"
	Author    = "eth08"
	AuthorURL = "https://github.com/eth08"
)

var (
	colorDim     = color.RGBA{R: 20, G: 20, B: 20, A: 180}
	colorHUD     = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	colorShade   = color.RGBA{A: 150}
	colorFlash   = color.RGBA{R: 255, A: 128}
	colorShadow  = color.RGBA{A: 50}
	colorHeader  = color.RGBA{A: 180}
	colorAccent  = core.PaintGreen.RGBA()
	colorFailure = core.PaintRed.RGBA()
)

// drawBackground paints the custom background, the bundled one or a plain
// fill, in that order of preference.
func (m *Machine) drawBackground(l *scene.List) {
	bg := m.background
	if bg == nil {
		bg = m.ctx.Assets.Background
	}
	l.Fill(core.ColorBackground)
	l.Image(bg, core.NewRect(0, 0, m.rt.ViewW, m.rt.ViewH), 0)
}

// drawMenuBackdrop is the dimmed background behind every menu screen.
func (m *Machine) drawMenuBackdrop(l *scene.List) {
	m.drawBackground(l)
	l.Fill(colorDim)
}

func (m *Machine) drawButton(l *scene.List, b button, index int, highlight bool) {
	fill := core.ColorButton
	if m.hasPointer && b.rect.Contains(m.pointer) {
		fill = core.ColorHover
	}
	if highlight {
		fill = core.ColorHighlight
	}
	l.Rect(b.rect.Offset(core.V(5, 5)), colorShadow)
	l.Rect(b.rect, fill)
	if m.keyFocus && index == m.cursor {
		l.Outline(b.rect, 3, core.ColorText)
	}
	if b.label != "" {
		l.Text(b.label, b.rect, scene.TextMedium, scene.AlignCenter, core.ColorText)
	}
}

func (m *Machine) drawInputBox(l *scene.List, r core.Rect, text, placeholder string) {
	l.Rect(r, core.ColorButton)
	l.Outline(r, 2, core.ColorHighlight)
	inner := core.NewRect(r.X+10, r.Y, r.W-20, r.H)
	switch {
	case text != "":
		l.Text(text, inner, scene.TextMedium, scene.AlignLeft, core.ColorText)
	case placeholder != "":
		l.Text(placeholder, inner, scene.TextMedium, scene.AlignLeft, core.ColorGrey)
	}
}

func (m *Machine) renderMenu(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Paint (H)it", 150, scene.TextLarge, core.ColorTitle)
	for i, b := range menuButtons {
		m.drawButton(l, b, i, false)
	}
}

func (m *Machine) renderTimedSetup(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Timed Challenge Setup", 200, scene.TextLarge, core.ColorTitle)
	l.Centered("Enter Time (seconds)", 280, scene.TextMedium, core.ColorText)
	m.drawInputBox(l, centered(320, 300, 50), m.durationText, "")
	l.Centered("Press ENTER to start", 415, scene.TextNormal, colorAccent)
	m.drawButton(l, timedBackButton, -1, false)
}

func (m *Machine) renderSettings(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Settings", 140, scene.TextLarge, core.ColorTitle)
	l.Centered("Target Speed", 240, scene.TextMedium, colorAccent)
	for i, b := range settingsButtons {
		selected := false
		switch b.id {
		case "easy", "normal", "hard":
			selected = string(m.settings.Speed) == b.label
		}
		m.drawButton(l, b, i, selected)
	}
}

func (m *Machine) renderCustomFaces(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Custom Faces", 120, scene.TextLarge, core.ColorTitle)
	l.Centered("Click any slot to upload or change an image.", 195, scene.TextNormal, core.ColorText)
	for i, b := range facesButtons {
		if b.id == "back" {
			m.drawButton(l, b, i, false)
			continue
		}
		l.Rect(b.rect, core.ColorButton)
		width := 3.0
		if m.keyFocus && i == m.cursor {
			width = 6
		}
		l.Outline(b.rect, width, core.ColorHighlight)
		if face := m.faces[i]; face != nil {
			l.Image(face, core.RectCentered(b.rect.Center(), 150, 150), 0)
		} else {
			l.Image(m.ctx.Assets.Placeholder, core.RectCentered(b.rect.Center(), 100, 100), 0)
		}
	}
}

func (m *Machine) renderExplorer(l *scene.List) {
	m.drawBackground(l)
	l.Rect(core.NewRect(50, 30, m.rt.ViewW-100, 140), colorHeader)
	l.Centered("File Explorer", 60, scene.TextLarge, core.ColorTitle)
	l.TextFit("Current Path: "+m.explorer.Dir, core.NewRect(60, 80, m.rt.ViewW-120, 40),
		scene.TextNormal, scene.AlignCenter, core.ColorText)
	if p := m.settings.BackgroundPath; p != "" {
		l.TextFit("Background: "+p, core.NewRect(60, 115, m.rt.ViewW-120, 30),
			scene.TextSmall, scene.AlignCenter, colorAccent)
	}

	l.Rect(explorerList, core.ColorButton)
	for _, row := range m.explorer.Visible(explorerList.H) {
		// Rows cut by the list edges are not drawn
		if row.Top < 0 || row.Top+browse.RowHeight > explorerList.H {
			continue
		}
		r := core.NewRect(explorerList.X, explorerList.Y+row.Top, explorerList.W, browse.RowHeight)
		if (m.hasPointer && r.Contains(m.pointer)) || row.Index == m.explorerRow {
			l.Rect(r, core.ColorHover)
		}
		e := m.explorer.Entries[row.Index]
		c := core.ColorText
		if e.IsDir {
			c = core.ColorHighlight
		}
		l.TextFit(e.Name, core.NewRect(r.X+10, r.Y, r.W-20, r.H), scene.TextNormal, scene.AlignLeft, c)
	}
	m.drawButton(l, explorerBackButton, -1, false)
}

func (m *Machine) renderHighScores(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Top 10 High Scores", 80, scene.TextLarge, core.ColorTitle)
	if len(m.highScores) == 0 {
		l.Centered("No scores yet!", m.rt.ViewH/2, scene.TextMedium, core.ColorText)
	} else {
		const rowH = 50
		top := (m.rt.ViewH - float64(len(m.highScores)+1)*rowH) / 2
		rank := func(y float64) core.Rect { return core.NewRect(200, y, 100, rowH) }
		name := func(y float64) core.Rect { return core.NewRect(360, y, 320, rowH) }
		score := func(y float64) core.Rect { return core.NewRect(680, y, 120, rowH) }

		l.Text("Rank", rank(top), scene.TextMedium, scene.AlignRight, colorAccent)
		l.Text("Name", name(top), scene.TextMedium, scene.AlignLeft, colorAccent)
		l.Text("Score", score(top), scene.TextMedium, scene.AlignRight, colorAccent)
		for i, e := range m.highScores {
			y := top + float64(i+1)*rowH
			l.Text(strconv.Itoa(i+1)+".", rank(y), scene.TextMedium, scene.AlignRight, core.ColorHighlight)
			l.TextFit(e.Name, name(y), scene.TextMedium, scene.AlignLeft, core.ColorText)
			l.Text(strconv.Itoa(e.Score), score(y), scene.TextMedium, scene.AlignRight, core.ColorText)
		}
	}
	m.drawButton(l, scoresButtons[0], 0, false)
}

func (m *Machine) renderAbout(l *scene.List) {
	m.drawMenuBackdrop(l)
	l.Centered("Paint (H)it", 120, scene.TextLarge, core.ColorTitle)
	l.Centered("Author: "+Author, 200, scene.TextNormal, core.ColorHighlight)
	lines := []string{
		"Version: v" + Version,
		"",
		"A fun and simple target shooting game.",
		"Hit the bullseye for a combo streak!",
		"Customize faces and backgrounds to your liking.",
		"",
		AuthorURL,
	}
	y := 240.0
	for _, line := range lines {
		if line != "" {
			l.Centered(line, y, scene.TextNormal, colorAccent)
		}
		y += 40
	}
	m.drawButton(l, aboutButtons[0], 0, false)
}

func (m *Machine) renderGameOver(l *scene.List) {
	m.drawMenuBackdrop(l)
	s := m.session
	if s.QuitInitiated {
		l.Centered("Save Your Score?", 220, scene.TextLarge, core.ColorTitle)
	} else {
		l.Centered("GAME OVER", 220, scene.TextLarge, colorFailure)
	}

	if m.nameEntry {
		l.Centered("New High Score!", 320, scene.TextMedium, core.ColorTitle)
		m.drawInputBox(l, core.NewRect(300, 380, 400, 50), m.nameText, "Enter Name...")
		l.Centered("Press ENTER to save", 465, scene.TextNormal, core.ColorText)
		m.drawButton(l, button{"skip", "Skip", skipButton}, -1, false)
		return
	}

	l.Centered(fmt.Sprintf("Final Score: %d", s.Score), 370, scene.TextMedium, core.ColorText)
	if s.QuitInitiated {
		l.Centered("Your score wasn't a high score.", 415, scene.TextNormal, core.ColorText)
		l.Centered("Press 'M' to go to menu", 465, scene.TextNormal, colorAccent)
	} else {
		l.Centered("Press 'R' to Restart or 'M' for Menu", 465, scene.TextNormal, core.ColorText)
	}
}

func (m *Machine) renderGameplay(l *scene.List) {
	m.drawBackground(l)

	ordered := make([]*target.Target, len(m.targets))
	copy(ordered, m.targets)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Y < ordered[j].Y })
	for _, t := range ordered {
		m.drawTarget(l, t)
	}

	s := m.session
	l.Rect(core.NewRect(0, 5, 230, 46), colorHUD)
	l.Text(fmt.Sprintf("Score: %d", s.Score), core.NewRect(10, 10, 210, 36), scene.TextNormal, scene.AlignLeft, core.ColorText)

	if combo, timer := m.Combo(); combo > 1 {
		size := scene.TextMedium
		if timer*10 > m.combo.Window()*9 {
			size = scene.TextLarge
		}
		l.Rect(centered(55, 320, 50), colorHUD)
		l.Text(fmt.Sprintf("x%d Combo!", combo), centered(55, 320, 50), size, scene.AlignCenter, core.ColorTitle)
	}

	status := fmt.Sprintf("Lives: %d", s.Lives)
	if m.state == StateTimedChallenge {
		status = fmt.Sprintf("Time: %ds", s.Remaining(m.rt.TickRate))
	}
	l.Rect(core.NewRect(m.rt.ViewW-230, 5, 230, 46), colorHUD)
	l.Text(status, core.NewRect(m.rt.ViewW-220, 10, 200, 36), scene.TextNormal, scene.AlignRight, core.ColorText)

	for i, pc := range core.PaintColors {
		r := core.NewRect(10+float64(i)*50, 60, 40, 40)
		l.Rect(r.Inflate(10, 10), colorHUD)
		l.Rect(r, pc.RGBA())
		if pc == s.Color {
			l.Outline(r, 2, core.ColorText)
		}
	}

	if !s.GameOver {
		m.drawGun(l)
	}

	if s.Paused && !s.GameOver {
		l.Fill(colorShade)
		switch s.Confirm {
		case ConfirmRestart:
			l.Centered("Restart Game?", 320, scene.TextLarge, core.ColorTitle)
			l.Centered("Y / N", 420, scene.TextMedium, core.ColorText)
		case ConfirmQuit:
			l.Centered("Quit Game?", 320, scene.TextLarge, core.ColorTitle)
			l.Centered("Y (Save & Quit) / N (Continue)", 420, scene.TextMedium, core.ColorText)
		default:
			l.Centered("PAUSED", m.rt.ViewH/2-20, scene.TextLarge, core.ColorTitle)
		}
	}

	if s.Flash > 0 {
		l.Fill(colorFlash)
	}

	if !s.Paused && !s.GameOver && m.hasPointer {
		p := m.pointer
		l.Line(core.V(p.X-10, p.Y), core.V(p.X+10, p.Y), 2, core.ColorText)
		l.Line(core.V(p.X, p.Y-10), core.V(p.X, p.Y+10), 2, core.ColorText)
		l.Circle(p, 3, m.session.Color.RGBA())
	}
}

func (m *Machine) drawTarget(l *scene.List, t *target.Target) {
	g := t.Geometry
	if g.Bounds.Empty() {
		return
	}
	l.Image(m.ctx.Assets.Silhouette, g.Bounds, 0)
	l.Image(m.ctx.Assets.Bullseye, g.Bullseye, 0)
	if t.Face != nil {
		l.Image(t.Face, g.Face, 0)
	}
	for _, sp := range g.Splats {
		l.Image(m.ctx.Assets.Splats[sp.Color], core.RectCentered(sp.Center, sp.Size, sp.Size), sp.Rotation)
	}
}

// drawGun places the gun at the bottom edge under the pointer.
func (m *Machine) drawGun(l *scene.List) {
	gun := m.ctx.Assets.Gun
	w, h := gun.Size()
	x := m.rt.ViewW / 2
	if m.hasPointer {
		x = m.pointer.X
	}
	x = core.ClampF(x-w/2, 0, m.rt.ViewW-w)
	l.Image(gun, core.NewRect(x, m.rt.ViewH-h, w, h), 0)
}

// renderError draws the transient error banner over any screen.
func (m *Machine) renderError(l *scene.List) {
	if m.errMsg == "" {
		return
	}
	w := min(m.rt.ViewW-40, float64(len(m.errMsg))*20+60)
	r := core.RectCentered(core.V(m.rt.ViewW/2, 60), w, 64)
	l.Rect(r, core.ColorDanger)
	l.Outline(r, 3, core.ColorText)
	l.TextFit(m.errMsg, r.Inflate(-20, 0), scene.TextMedium, scene.AlignCenter, core.ColorText)
}
