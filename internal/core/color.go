package core

import "image/color"

// PaintColor is one of the four paint colors the player can fire.
type PaintColor int

const (
	PaintRed PaintColor = iota
	PaintGreen
	PaintBlue
	PaintYellow
)

// PaintColors lists every paint color in selection order (keys 1-4).
var PaintColors = []PaintColor{PaintRed, PaintGreen, PaintBlue, PaintYellow}

// String returns the color name used in asset file names.
func (c PaintColor) String() string {
	switch c {
	case PaintRed:
		return "red"
	case PaintGreen:
		return "green"
	case PaintBlue:
		return "blue"
	case PaintYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// RGBA returns the on-screen color for this paint.
func (c PaintColor) RGBA() color.RGBA {
	switch c {
	case PaintRed:
		return color.RGBA{R: 196, G: 32, B: 92, A: 255}
	case PaintGreen:
		return color.RGBA{R: 56, G: 228, B: 36, A: 255}
	case PaintBlue:
		return color.RGBA{R: 4, G: 164, B: 236, A: 255}
	case PaintYellow:
		return color.RGBA{R: 252, G: 220, B: 4, A: 255}
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}

// PaintForAction maps a color selection action to its paint.
func PaintForAction(a Action) (PaintColor, bool) {
	switch a {
	case ActionColor1:
		return PaintRed, true
	case ActionColor2:
		return PaintGreen, true
	case ActionColor3:
		return PaintBlue, true
	case ActionColor4:
		return PaintYellow, true
	}
	return 0, false
}

// UI palette shared by front ends.
var (
	ColorBackground = color.RGBA{R: 24, G: 26, B: 29, A: 255}
	ColorButton     = color.RGBA{R: 44, G: 47, B: 51, A: 255}
	ColorHover      = color.RGBA{R: 70, G: 75, B: 80, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorHighlight  = color.RGBA{R: 88, G: 101, B: 242, A: 255}
	ColorGrey       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	ColorTitle      = color.RGBA{R: 252, G: 220, B: 4, A: 255}
	ColorDanger     = color.RGBA{R: 200, G: 0, B: 0, A: 255}
)
