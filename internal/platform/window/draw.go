package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/paint-hit/internal/scene"
)

// straight reinterprets a scene colour as non-premultiplied; scenes carry
// straight alpha in color.RGBA.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (g *Game) draw(screen *ebiten.Image, cmd scene.Cmd) {
	c := straight(cmd.Color)
	r := cmd.Rect

	switch cmd.Kind {
	case scene.KindFill:
		b := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)

	case scene.KindRect:
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)

	case scene.KindOutline:
		w := math.Max(cmd.Width, 1)
		vector.StrokeRect(screen,
			float32(r.X+w/2), float32(r.Y+w/2), float32(r.W-w), float32(r.H-w),
			float32(w), c, false)

	case scene.KindCircle:
		vector.DrawFilledCircle(screen, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), c, true)

	case scene.KindLine:
		vector.StrokeLine(screen,
			float32(cmd.From.X), float32(cmd.From.Y), float32(cmd.To.X), float32(cmd.To.Y),
			float32(math.Max(cmd.Width, 1)), c, true)

	case scene.KindImage:
		g.drawImage(screen, cmd)

	case scene.KindText:
		g.text.draw(screen, cmd)
	}
}

// drawImage stretches the bitmap into the rectangle and rotates it
// counter-clockwise around the rectangle's centre.
func (g *Game) drawImage(screen *ebiten.Image, cmd scene.Cmd) {
	img := cmd.Image
	if img == nil || img.Img == nil || img.Width == 0 || img.Height == 0 {
		return
	}
	r := cmd.Rect
	center := r.Center()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(img.Width), r.H/float64(img.Height))
	op.GeoM.Translate(-r.W/2, -r.H/2)
	if cmd.Rotation != 0 {
		op.GeoM.Rotate(-float64(cmd.Rotation) * math.Pi / 180)
	}
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.image(img), op)
}

// Glyph scale per text size; the base face is 7x13 pixels.
var textScales = map[scene.TextSize]float64{
	scene.TextSmall:  1.4,
	scene.TextNormal: 1.8,
	scene.TextMedium: 2.2,
	scene.TextLarge:  3.6,
}

const (
	glyphHeight = 13
	ellipsis    = "..."
)

// textDrawer renders scene text with the scaled basic font.
type textDrawer struct {
	face *text.GoXFace
}

func newTextDrawer() *textDrawer {
	return &textDrawer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (t *textDrawer) width(s string, scale float64) float64 {
	return text.Advance(s, t.face) * scale
}

// fit shortens s with an ellipsis until it is at most maxW wide.
func (t *textDrawer) fit(s string, scale, maxW float64) string {
	if t.width(s, scale) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if cand := string(runes) + ellipsis; t.width(cand, scale) <= maxW {
			return cand
		}
	}
	return ""
}

func (t *textDrawer) draw(screen *ebiten.Image, cmd scene.Cmd) {
	scale, ok := textScales[cmd.Size]
	if !ok {
		scale = textScales[scene.TextNormal]
	}
	r := cmd.Rect
	s := cmd.Text
	if cmd.Truncate {
		s = t.fit(s, scale, r.W)
	}

	w := t.width(s, scale)
	x := r.X
	switch cmd.Align {
	case scene.AlignCenter:
		x = r.X + (r.W-w)/2
	case scene.AlignRight:
		x = r.Right() - w
	}
	y := r.Center().Y - glyphHeight*scale/2

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(straight(cmd.Color))
	text.Draw(screen, s, t.face, op)
}
