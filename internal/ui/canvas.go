package ui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Align is the horizontal anchor of a text run
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Canvas is a 2D drawing surface in court coordinates
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// DashedLine strokes a vertical dashed line at x from y1 to y2
	DashedLine(x, y1, y2, segment, gap float64, c color.Color)
	// Text draws s with its baseline at y
	Text(x, y, size float64, s string, align Align, c color.Color)
	Flush()
}

// ParseColor resolves a color name ("green", "#ff8800") to RGBA.
// Unknown names resolve to black.
func ParseColor(name string) color.RGBA {
	r, g, b := tcell.GetColor(name).RGB()
	if r < 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
