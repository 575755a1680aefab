// Package scene describes a frame as a flat list of draw commands in
// viewport units. The game builds scenes; front ends only rasterize them.
package scene

import (
	"image/color"

	"github.com/vovakirdan/paint-hit/internal/assets"
	"github.com/vovakirdan/paint-hit/internal/core"
)

// Kind identifies a draw command.
type Kind int

const (
	KindFill    Kind = iota // Cover the whole viewport with Color
	KindRect                // Filled rectangle
	KindOutline             // Rectangle outline of Width
	KindCircle              // Filled circle
	KindLine                // Line segment of Width
	KindImage               // Bitmap stretched into Rect, rotated by Rotation degrees
	KindText                // Text anchored in Rect
)

// TextSize is a relative font size. Front ends pick concrete faces.
type TextSize int

const (
	TextSmall TextSize = iota
	TextNormal
	TextMedium
	TextLarge
)

// Align positions text horizontally inside its rectangle.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Cmd is a single draw command. Only the fields relevant to Kind are set.
type Cmd struct {
	Kind     Kind
	Rect     core.Rect
	Center   core.Vec
	Radius   float64
	From, To core.Vec
	Width    float64
	Color    color.RGBA
	Image    *assets.Image
	Rotation int
	Text     string
	Size     TextSize
	Align    Align
	Truncate bool // Shorten Text with an ellipsis to fit Rect.W
}

// List accumulates commands in painter's order.
type List struct {
	Cmds []Cmd
}

// Fill covers the viewport.
func (l *List) Fill(c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindFill, Color: c})
}

// Rect draws a filled rectangle.
func (l *List) Rect(r core.Rect, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindRect, Rect: r, Color: c})
}

// Outline draws a rectangle border.
func (l *List) Outline(r core.Rect, width float64, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindOutline, Rect: r, Width: width, Color: c})
}

// Circle draws a filled circle.
func (l *List) Circle(center core.Vec, radius float64, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindCircle, Center: center, Radius: radius, Color: c})
}

// Line draws a segment.
func (l *List) Line(from, to core.Vec, width float64, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindLine, From: from, To: to, Width: width, Color: c})
}

// Image draws img stretched into r. A nil image is skipped.
func (l *List) Image(img *assets.Image, r core.Rect, rotation int) {
	if img == nil || r.Empty() {
		return
	}
	l.Cmds = append(l.Cmds, Cmd{Kind: KindImage, Image: img, Rect: r, Rotation: rotation})
}

// Text draws a single line of text vertically centered in r.
func (l *List) Text(s string, r core.Rect, size TextSize, align Align, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindText, Text: s, Rect: r, Size: size, Align: align, Color: c})
}

// TextFit is Text with ellipsis truncation to the rectangle width.
func (l *List) TextFit(s string, r core.Rect, size TextSize, align Align, c color.RGBA) {
	l.Cmds = append(l.Cmds, Cmd{Kind: KindText, Text: s, Rect: r, Size: size, Align: align, Color: c, Truncate: true})
}

// Centered draws text centered on the horizontal line at y.
func (l *List) Centered(s string, y float64, size TextSize, c color.RGBA) {
	l.Text(s, core.NewRect(0, y-20, core.ViewportW, 40), size, AlignCenter, c)
}

// Texts returns the text of every text command, in order. Used by tests and
// by front ends that only need the words on screen.
func (l *List) Texts() []string {
	var out []string
	for _, c := range l.Cmds {
		if c.Kind == KindText {
			out = append(out, c.Text)
		}
	}
	return out
}
