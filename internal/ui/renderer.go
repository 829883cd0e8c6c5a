package ui

import (
	"fmt"
	"image/color"

	"github.com/diegok/retropong/internal/config"
	"github.com/diegok/retropong/internal/game"
)

type palette struct {
	background  color.RGBA
	border      color.RGBA
	centerLine  color.RGBA
	paddle      color.RGBA
	ball        color.RGBA
	button      color.RGBA
	buttonLabel color.RGBA
}

// Renderer draws a court onto a canvas
type Renderer struct {
	canvas   Canvas
	settings config.Settings
	colors   palette
}

// NewRenderer creates a renderer for the given canvas
func NewRenderer(canvas Canvas, s config.Settings) *Renderer {
	return &Renderer{
		canvas:   canvas,
		settings: s,
		colors: palette{
			background:  ParseColor(s.BackgroundColor),
			border:      ParseColor(s.TopBottomBorderColor),
			centerLine:  ParseColor(s.CenterLineColor),
			paddle:      ParseColor(s.PaddleColor),
			ball:        ParseColor(s.BallColor),
			button:      ParseColor(s.StartButtonColor),
			buttonLabel: ParseColor(s.StartButtonTextColor),
		},
	}
}

// Render clears the canvas and draws the whole court
func (r *Renderer) Render(c *game.Court) {
	s := r.settings
	cv := r.canvas

	cv.Clear()

	cv.FillRect(0, 0, s.GameWidth, s.GameHeight, r.colors.background)

	cv.FillRect(0, 0, s.GameWidth, s.TopBottomBorderHeight, r.colors.border)
	cv.FillRect(0, s.GameHeight-s.TopBottomBorderHeight, s.GameWidth, s.TopBottomBorderHeight, r.colors.border)

	cv.DashedLine(s.GameWidth/2,
		s.TopBottomBorderHeight+s.CenterLineGapLength,
		s.GameHeight-s.TopBottomBorderHeight,
		s.CenterLineSegmentLength, s.CenterLineGapLength,
		r.colors.centerLine)

	for _, p := range []*game.Paddle{c.Paddle1, c.Paddle2} {
		cv.FillRect(p.X, p.Y, p.Width, p.Height, r.colors.paddle)
	}

	cv.FillCircle(c.Ball.X, c.Ball.Y, c.Ball.Radius, r.colors.ball)

	r.renderScoreboard(c)

	if !c.Running() {
		b := c.StartButton
		cv.FillRect(b.X, b.Y, b.Width, b.Height, r.colors.button)
		cv.Text(s.GameWidth/2, s.GameHeight/2+s.StartButtonFontSize/2, s.StartButtonFontSize,
			StartButtonLabel(c), AlignCenter, r.colors.buttonLabel)
	}

	cv.Flush()
}

// renderScoreboard draws the three scoreboard texts inside the top border
func (r *Renderer) renderScoreboard(c *game.Court) {
	s := r.settings
	baseline := s.TopBottomBorderHeight/2 + s.ScoreBoardFontSize/2
	left, center, right := ScoreTexts(c)

	// Scoreboard text shares the ball's color
	r.canvas.Text(0, baseline, s.ScoreBoardFontSize, left, AlignStart, r.colors.ball)
	r.canvas.Text(s.GameWidth/2, baseline, s.ScoreBoardFontSize, center, AlignCenter, r.colors.ball)
	r.canvas.Text(s.GameWidth, baseline, s.ScoreBoardFontSize, right, AlignEnd, r.colors.ball)
}

// ScoreTexts returns the left, center and right scoreboard labels
func ScoreTexts(c *game.Court) (string, string, string) {
	left := fmt.Sprintf(" Score: %d", c.Score.Player1Score)
	right := fmt.Sprintf("Score: %d ", c.Score.Player2Score)

	var center string
	switch {
	case c.Running():
		center = fmt.Sprintf("Round %d", c.Score.Round)
	case c.Winner() == game.PlayerOne:
		center = "Player one wins!"
	case c.Winner() == game.PlayerTwo:
		center = "Player two wins!"
	default:
		center = fmt.Sprintf("Score %d to win!", c.Settings.ScoreToWinMatch)
	}

	return left, center, right
}

// StartButtonLabel returns the start button caption
func StartButtonLabel(c *game.Court) string {
	if c.Winner() == game.NoPlayer {
		return "Start Match"
	}
	return "Start Again"
}
