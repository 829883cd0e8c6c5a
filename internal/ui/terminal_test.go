package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSimCanvas maps a 1200x900 court onto 120x45 cells (10 x 20 units per cell)
func newSimCanvas(t *testing.T) (tcell.SimulationScreen, *TerminalCanvas) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(120, 45)
	t.Cleanup(sim.Fini)

	return sim, NewTerminalCanvas(NewScreen(sim), 1200, 900)
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func cellColors(sim tcell.SimulationScreen, x, y int) (tcell.Color, tcell.Color) {
	_, _, style, _ := sim.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return fg, bg
}

func TestTerminalCanvas_CourtPoint(t *testing.T) {
	_, canvas := newSimCanvas(t)

	x, y := canvas.CourtPoint(60, 22)
	assert.Equal(t, 605.0, x)
	assert.Equal(t, 450.0, y)

	x, y = canvas.CourtPoint(0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 10.0, y)
}

func TestTerminalCanvas_FillRect(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	blue := ParseColor("blue")

	canvas.FillRect(0, 0, 1200, 25, blue)

	want := tcellColor(blue)
	for _, row := range []int{0, 1} {
		_, bg := cellColors(sim, 50, row)
		assert.Equal(t, want, bg, "row %d is border", row)
	}
	_, bg := cellColors(sim, 50, 2)
	assert.NotEqual(t, want, bg, "row 2 is below the border")
}

func TestTerminalCanvas_FillRectTinyStillPaints(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	red := ParseColor("red")

	canvas.FillRect(101, 101, 1, 1, red)

	_, bg := cellColors(sim, 10, 5)
	assert.Equal(t, tcellColor(red), bg)
}

func TestTerminalCanvas_FillCircle(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	white := ParseColor("white")

	canvas.FillCircle(600, 450, 12, white)

	_, bg := cellColors(sim, 59, 22)
	assert.Equal(t, tcellColor(white), bg)
}

func TestTerminalCanvas_FillCircleTooSmallUsesGlyph(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	white := ParseColor("white")

	canvas.FillCircle(603, 452, 1, white)

	assert.Equal(t, BallChar, cellRune(sim, 60, 22))
	fg, _ := cellColors(sim, 60, 22)
	assert.Equal(t, tcellColor(white), fg)
}

func TestTerminalCanvas_DashedLine(t *testing.T) {
	sim, canvas := newSimCanvas(t)

	canvas.DashedLine(600, 59, 875, 68, 34, ParseColor("black"))

	assert.NotEqual(t, DashChar, cellRune(sim, 60, 1), "above the line start")
	assert.Equal(t, DashChar, cellRune(sim, 60, 3), "first segment")
	assert.NotEqual(t, DashChar, cellRune(sim, 60, 6), "first gap")
	assert.Equal(t, DashChar, cellRune(sim, 60, 8), "second segment")
	assert.NotEqual(t, DashChar, cellRune(sim, 60, 44), "below the line end")
}

func TestTerminalCanvas_Text(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	black := ParseColor("black")
	white := ParseColor("white")

	canvas.FillRect(500, 410, 200, 80, white)
	canvas.Text(600, 457, 14, "Start Match", AlignCenter, black)

	assert.Equal(t, 'S', cellRune(sim, 55, 22))
	assert.Equal(t, 'h', cellRune(sim, 65, 22))

	fg, bg := cellColors(sim, 55, 22)
	assert.Equal(t, tcellColor(black), fg)
	assert.Equal(t, tcellColor(white), bg, "text keeps the button background")
}

func TestTerminalCanvas_TextAlignment(t *testing.T) {
	sim, canvas := newSimCanvas(t)
	white := ParseColor("white")

	canvas.Text(0, 17.5, 10, " Score: 3", AlignStart, white)
	canvas.Text(1200, 17.5, 10, "Score: 4 ", AlignEnd, white)

	assert.Equal(t, 'S', cellRune(sim, 1, 0))
	assert.Equal(t, '3', cellRune(sim, 8, 0))
	assert.Equal(t, 'S', cellRune(sim, 111, 0))
	assert.Equal(t, '4', cellRune(sim, 118, 0))
}
