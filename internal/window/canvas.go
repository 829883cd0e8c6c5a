// Package window runs the game in a desktop window using ebiten.
package window

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/diegok/retropong/internal/ui"
)

// Canvas implements ui.Canvas on an ebiten image in court coordinates (1 unit = 1 pixel)
type Canvas struct {
	Target *ebiten.Image
	font   *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewCanvas() (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Canvas{font: src, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (w *Canvas) Clear() {
	w.Target.Clear()
}

// Flush is a no-op; ebiten presents the frame after Draw returns
func (w *Canvas) Flush() {}

func (w *Canvas) FillRect(x, y, width, height float64, c color.Color) {
	vector.DrawFilledRect(w.Target, float32(x), float32(y), float32(width), float32(height), c, false)
}

func (w *Canvas) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(w.Target, float32(cx), float32(cy), float32(r), c, true)
}

func (w *Canvas) DashedLine(x, y1, y2, segment, gap float64, c color.Color) {
	if segment <= 0 || gap < 0 {
		return
	}
	for y := y1; y < y2; y += segment + gap {
		end := math.Min(y+segment, y2)
		vector.StrokeLine(w.Target, float32(x), float32(y), float32(x), float32(end), 1, c, false)
	}
}

func (w *Canvas) Text(x, y, size float64, s string, align ui.Align, c color.Color) {
	face := w.face(size)

	op := &text.DrawOptions{}
	switch align {
	case ui.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case ui.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)

	text.Draw(w.Target, s, face, op)
}

func (w *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := w.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: w.font, Size: size}
	w.faces[size] = f
	return f
}
