package tui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/scene"
)

// colorBlack paints the letterbox around the viewport.
var colorBlack = color.RGBA{A: 255}

// cell is a character drawn over the pixel pair of one terminal cell.
type cell struct {
	r    rune
	fg   color.RGBA
	bold bool
	cont bool // Right half of a double-width rune
}

// Canvas rasterizes scenes into a terminal cell grid. Every cell holds two
// stacked pixels, displayed as '▀' with the top pixel as foreground and the
// bottom one as background; text is laid over whole cells. The viewport is
// scaled uniformly and letterboxed so circles stay round.
type Canvas struct {
	cols, rows   int
	viewW, viewH float64

	scale      float64 // Pixels per viewport unit
	offX, offY int     // Letterbox offset in pixels

	pixels []color.RGBA // cols x rows*2
	cells  []cell       // cols x rows
}

// NewCanvas creates a canvas of cols x rows cells for a viewW x viewH viewport.
func NewCanvas(cols, rows int, viewW, viewH float64) *Canvas {
	c := &Canvas{viewW: viewW, viewH: viewH}
	c.Resize(cols, rows)
	return c
}

// Cols returns the canvas width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the canvas height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// Resize changes the canvas dimensions. Content is discarded; the next Draw
// repaints everything.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c.cols, c.rows = cols, rows
	c.pixels = make([]color.RGBA, cols*rows*2)
	c.cells = make([]cell, cols*rows)

	pw, ph := float64(cols), float64(rows*2)
	c.scale = math.Min(pw/c.viewW, ph/c.viewH)
	c.offX = int((pw - c.viewW*c.scale) / 2)
	c.offY = int((ph - c.viewH*c.scale) / 2)
	c.Clear()
}

// Clear paints every pixel black and removes all text.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = colorBlack
	}
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Pixel returns the colour of pixel (x, y); black when out of bounds.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return colorBlack
	}
	return c.pixels[y*c.cols+x]
}

// Rune returns the text rune at cell (col, row), or 0 when the cell shows
// pixels only.
func (c *Canvas) Rune(col, row int) rune {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0
	}
	return c.cells[row*c.cols+col].r
}

// ToViewport converts a cell position to the viewport point at the cell's
// centre. ok is false outside the letterboxed viewport.
func (c *Canvas) ToViewport(col, row int) (p core.Vec, ok bool) {
	x := (float64(col) + 0.5 - float64(c.offX)) / c.scale
	y := (float64(row*2) + 1 - float64(c.offY)) / c.scale
	p = core.V(core.ClampF(x, 0, c.viewW-1), core.ClampF(y, 0, c.viewH-1))
	return p, x >= 0 && x < c.viewW && y >= 0 && y < c.viewH
}

// Draw clears the canvas and rasterizes cmds in order.
func (c *Canvas) Draw(cmds []scene.Cmd) {
	c.Clear()
	for _, cmd := range cmds {
		switch cmd.Kind {
		case scene.KindFill:
			c.fillRect(core.NewRect(0, 0, c.viewW, c.viewH), cmd.Color)
		case scene.KindRect:
			c.fillRect(cmd.Rect, cmd.Color)
		case scene.KindOutline:
			c.outline(cmd.Rect, cmd.Width, cmd.Color)
		case scene.KindCircle:
			c.circle(cmd.Center, cmd.Radius, cmd.Color)
		case scene.KindLine:
			c.line(cmd.From, cmd.To, cmd.Width, cmd.Color)
		case scene.KindImage:
			c.image(cmd)
		case scene.KindText:
			c.text(cmd)
		}
	}
}

// px converts a viewport coordinate to a pixel column.
func (c *Canvas) px(x float64) int {
	return int(math.Round(x*c.scale)) + c.offX
}

// py converts a viewport coordinate to a pixel row.
func (c *Canvas) py(y float64) int {
	return int(math.Round(y*c.scale)) + c.offY
}

// pixelCenter returns the viewport point at the centre of pixel (x, y).
func (c *Canvas) pixelCenter(x, y int) core.Vec {
	return core.V(
		(float64(x-c.offX)+0.5)/c.scale,
		(float64(y-c.offY)+0.5)/c.scale,
	)
}

// blend paints col over pixel (x, y) using col's alpha.
func (c *Canvas) blend(x, y int, col color.RGBA) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 || col.A == 0 {
		return
	}
	i := y*c.cols + x
	c.pixels[i] = mix(c.pixels[i], col)
}

// mix composes src over an opaque dst.
func mix(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	a := uint32(src.A)
	ch := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.RGBA{R: ch(dst.R, src.R), G: ch(dst.G, src.G), B: ch(dst.B, src.B), A: 255}
}

// span returns the pixel range [lo, hi) covered by a viewport interval,
// never empty for a positive length.
func span(lo, hi float64, conv func(float64) int) (int, int) {
	a, b := conv(lo), conv(hi)
	if b <= a && hi > lo {
		b = a + 1
	}
	return a, b
}

func (c *Canvas) fillRect(r core.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	x0, x1 := span(r.X, r.Right(), c.px)
	y0, y1 := span(r.Y, r.Bottom(), c.py)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.blend(x, y, col)
		}
	}

	// Text under the rectangle is hidden by opaque fills and tinted by
	// translucent ones.
	for row := max(0, (y0+1)/2); row < c.rows && row*2+1 < y1; row++ {
		for col2 := max(0, x0); col2 < c.cols && col2 < x1; col2++ {
			ce := &c.cells[row*c.cols+col2]
			if ce.r == 0 && !ce.cont {
				continue
			}
			if col.A == 255 {
				*ce = cell{}
			} else {
				ce.fg = mix(ce.fg, col)
			}
		}
	}
}

func (c *Canvas) outline(r core.Rect, width float64, col color.RGBA) {
	w := math.Max(width, 1/c.scale)
	c.fillRect(core.NewRect(r.X, r.Y, r.W, w), col)
	c.fillRect(core.NewRect(r.X, r.Bottom()-w, r.W, w), col)
	c.fillRect(core.NewRect(r.X, r.Y+w, w, r.H-2*w), col)
	c.fillRect(core.NewRect(r.Right()-w, r.Y+w, w, r.H-2*w), col)
}

func (c *Canvas) circle(center core.Vec, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	x0, x1 := c.px(center.X-radius), c.px(center.X+radius)
	y0, y1 := c.py(center.Y-radius), c.py(center.Y+radius)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if core.Dist(c.pixelCenter(x, y), center) <= radius {
				c.blend(x, y, col)
				drawn = true
			}
		}
	}
	if !drawn {
		c.blend(c.px(center.X), c.py(center.Y), col)
	}
}

func (c *Canvas) line(from, to core.Vec, width float64, col color.RGBA) {
	fx, fy := float64(c.px(from.X)), float64(c.py(from.Y))
	tx, ty := float64(c.px(to.X)), float64(c.py(to.Y))
	steps := int(math.Max(math.Abs(tx-fx), math.Abs(ty-fy)))
	thick := max(int(math.Round(width*c.scale)), 1)

	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Round(fx+(tx-fx)*t)) - (thick-1)/2
		y := int(math.Round(fy+(ty-fy)*t)) - (thick-1)/2
		for dy := 0; dy < thick; dy++ {
			for dx := 0; dx < thick; dx++ {
				c.blend(x+dx, y+dy, col)
			}
		}
	}
}

// image samples the bitmap once per covered pixel. Rotation is
// counter-clockwise in degrees around the rectangle's centre.
func (c *Canvas) image(cmd scene.Cmd) {
	img := cmd.Image
	if img == nil || img.Img == nil || img.Width == 0 || img.Height == 0 {
		return
	}
	r := cmd.Rect
	center := r.Center()
	theta := float64(cmd.Rotation) * math.Pi / 180
	sin, cos := math.Sincos(theta)

	hw := math.Abs(r.W/2*cos) + math.Abs(r.H/2*sin)
	hh := math.Abs(r.W/2*sin) + math.Abs(r.H/2*cos)
	x0, x1 := span(center.X-hw, center.X+hw, c.px)
	y0, y1 := span(center.Y-hh, center.Y+hh, c.py)

	bounds := img.Img.Bounds()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := c.pixelCenter(x, y).Sub(center)
			sx := d.X*cos - d.Y*sin
			sy := d.X*sin + d.Y*cos
			u := (sx/r.W + 0.5) * float64(img.Width)
			v := (sy/r.H + 0.5) * float64(img.Height)
			if u < 0 || v < 0 || u >= float64(img.Width) || v >= float64(img.Height) {
				continue
			}
			c.blend(x, y, sample(img.Img, bounds, int(u), int(v)))
		}
	}
}

// sample reads one source pixel as straight-alpha RGBA.
func sample(img image.Image, b image.Rectangle, u, v int) color.RGBA {
	n, _ := color.NRGBAModel.Convert(img.At(b.Min.X+u, b.Min.Y+v)).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// text lays a single line over the cell row at the rectangle's vertical
// centre, clipped or truncated to the rectangle and the canvas.
func (c *Canvas) text(cmd scene.Cmd) {
	r := cmd.Rect
	row := c.py(r.Center().Y) / 2
	if row < 0 || row >= c.rows || cmd.Text == "" {
		return
	}
	x0 := c.px(r.X)
	width := c.px(r.Right()) - x0
	if width <= 0 {
		width = c.cols - x0
	}

	s := cmd.Text
	if limit := min(width, c.cols); runewidth.StringWidth(s) > limit {
		if cmd.Truncate {
			s = runewidth.Truncate(s, limit, "…")
		} else if cmd.Align == scene.AlignCenter {
			s = runewidth.Truncate(s, c.cols, "")
		}
	}

	w := runewidth.StringWidth(s)
	col := x0
	switch cmd.Align {
	case scene.AlignCenter:
		col = x0 + (width-w)/2
	case scene.AlignRight:
		col = x0 + width - w
	}

	bold := cmd.Size >= scene.TextMedium
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		if col >= 0 && col+rw <= c.cols {
			i := row*c.cols + col
			c.cells[i] = cell{r: ch, fg: cmd.Color, bold: bold}
			if rw == 2 {
				c.cells[i+1] = cell{cont: true}
			}
		}
		col += rw
	}
}

// shades maps luminance to characters for plain-text snapshots.
const shades = " .:-=+*#%@"

// String renders the canvas without colour: text where there is text and
// a luminance ramp elsewhere. Used for screenshots.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows + c.rows)

	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for col := 0; col < c.cols; col++ {
			ce := c.cells[row*c.cols+col]
			switch {
			case ce.cont:
			case ce.r != 0:
				sb.WriteRune(ce.r)
			default:
				top, bottom := c.Pixel(col, row*2), c.Pixel(col, row*2+1)
				l := (luminance(top) + luminance(bottom)) / 2
				sb.WriteByte(shades[min(int(l*float64(len(shades))), len(shades)-1)])
			}
		}
	}
	return sb.String()
}

// luminance returns the perceived brightness of col in [0, 1].
func luminance(col color.RGBA) float64 {
	return (0.2126*float64(col.R) + 0.7152*float64(col.G) + 0.0722*float64(col.B)) / 255
}
