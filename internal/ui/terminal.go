package ui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

const (
	BallChar = '\u2B24' // ⬤
	DashChar = '|'
)

// TerminalCanvas draws a court of width x height units scaled onto terminal cells
type TerminalCanvas struct {
	screen        *Screen
	width, height float64
	cols, rows    int
	scaleX        float64
	scaleY        float64
}

func NewTerminalCanvas(screen *Screen, width, height float64) *TerminalCanvas {
	t := &TerminalCanvas{screen: screen, width: width, height: height}
	t.resize()
	return t
}

// resize picks up the current terminal size
func (t *TerminalCanvas) resize() {
	t.cols, t.rows = t.screen.Size()
	t.scaleX = float64(t.cols) / t.width
	t.scaleY = float64(t.rows) / t.height
}

// CourtPoint maps the center of a cell to court coordinates
func (t *TerminalCanvas) CourtPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / t.scaleX, (float64(row) + 0.5) / t.scaleY
}

func (t *TerminalCanvas) Clear() {
	t.resize()
	t.screen.Clear()
}

func (t *TerminalCanvas) Flush() {
	t.screen.Show()
}

func (t *TerminalCanvas) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	col0, col1 := span(x, x+w, t.scaleX)
	row0, row1 := span(y, y+h, t.scaleY)
	style := tcell.StyleDefault.Background(tcellColor(c))
	t.screen.FillRect(col0, row0, col1-col0, row1-row0, style, ' ')
}

// FillCircle paints every cell whose center is inside the circle. A circle too
// small to cover any cell center is drawn as a glyph in its center cell.
func (t *TerminalCanvas) FillCircle(cx, cy, r float64, c color.Color) {
	col0, col1 := span(cx-r, cx+r, t.scaleX)
	row0, row1 := span(cy-r, cy+r, t.scaleY)
	bg := tcell.StyleDefault.Background(tcellColor(c))

	painted := false
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			x, y := t.CourtPoint(col, row)
			if math.Hypot(x-cx, y-cy) <= r {
				t.screen.SetCell(col, row, bg, ' ')
				painted = true
			}
		}
	}
	if painted {
		return
	}

	col := int(math.Floor(cx * t.scaleX))
	row := int(math.Floor(cy * t.scaleY))
	style := t.screen.StyleAt(col, row).Foreground(tcellColor(c))
	t.screen.SetCell(col, row, style, BallChar)
}

func (t *TerminalCanvas) DashedLine(x, y1, y2, segment, gap float64, c color.Color) {
	col := int(math.Floor(x * t.scaleX))
	period := segment + gap
	fg := tcellColor(c)

	for row := 0; row < t.rows; row++ {
		_, y := t.CourtPoint(col, row)
		if y < y1 || y > y2 {
			continue
		}
		if period > 0 && math.Mod(y-y1, period) >= segment {
			continue
		}
		t.screen.SetCell(col, row, t.screen.StyleAt(col, row).Foreground(fg), DashChar)
	}
}

func (t *TerminalCanvas) Text(x, y, size float64, s string, align Align, c color.Color) {
	n := utf8.RuneCountInString(s)
	anchor := int(math.Round(x * t.scaleX))

	var col int
	switch align {
	case AlignCenter:
		col = anchor - n/2
	case AlignEnd:
		col = anchor - n
	default:
		col = int(math.Floor(x * t.scaleX))
	}
	// Text sits on its baseline; place the row at the middle of the glyphs.
	row := int(math.Floor((y - size/2) * t.scaleY))

	t.screen.DrawText(col, row, s, tcellColor(c))
}

// span returns the half-open cell range [from, to) covering [a, b) at the given scale.
// A non-empty range always covers at least one cell.
func span(a, b, scale float64) (int, int) {
	from := int(math.Floor(a * scale))
	to := int(math.Ceil(b * scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
