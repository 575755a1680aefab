package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = '▀'

// styleKey identifies the colours of one rendered cell.
type styleKey struct {
	fg, bg color.RGBA
	bold   bool
}

// Painter turns canvases into styled strings for one output. Styles are
// cached per colour pair because scenes reuse a small palette.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewPainter creates a painter for r; the default renderer when r is nil.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{renderer: r, styles: make(map[styleKey]lipgloss.Style)}
}

func (p *Painter) style(k styleKey) lipgloss.Style {
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(hex(k.fg))).
		Background(lipgloss.Color(hex(k.bg))).
		Bold(k.bold)
	p.styles[k] = s
	return s
}

// Render converts a canvas to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) Render(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.cols*c.rows*4 + c.rows)

	var run strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < c.cols {
			start := c.cellStyle(col, row)
			run.Reset()
			for col < c.cols {
				ce := c.cells[row*c.cols+col]
				if ce.cont {
					col++
					continue
				}
				if c.cellStyle(col, row) != start {
					break
				}
				if ce.r != 0 {
					run.WriteRune(ce.r)
				} else {
					run.WriteRune(halfBlock)
				}
				col++
			}
			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// cellStyle returns the colours cell (col, row) is drawn with.
func (c *Canvas) cellStyle(col, row int) styleKey {
	top, bottom := c.Pixel(col, row*2), c.Pixel(col, row*2+1)
	ce := c.cells[row*c.cols+col]
	if ce.r == 0 {
		return styleKey{fg: top, bg: bottom}
	}
	return styleKey{fg: ce.fg, bg: average(top, bottom), bold: ce.bold}
}

func average(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
		A: 255,
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
