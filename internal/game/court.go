package game

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/diegok/retropong/internal/config"
)

// Court is the playfield: two paddles, a ball, their controllers and the score
type Court struct {
	Settings    config.Settings
	Bounds      Bounds
	Paddle1     *Paddle
	Paddle2     *Paddle
	Ball        *Ball
	Score       ScoreBoard
	StartButton Rect
	Pointer     *Pointer

	controllers [2]Controller
	running     bool
	matchID     string
	sounds      SoundPlayer
	rng         *rand.Rand
	log         *slog.Logger
}

// NewCourt builds an idle court. rng, sounds and logger may be nil.
func NewCourt(s config.Settings, rng *rand.Rand, sounds SoundPlayer, logger *slog.Logger) *Court {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sounds == nil || !s.PlaySoundEffects {
		sounds = silence{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	bounds := Bounds{
		Upper: s.TopBottomBorderHeight,
		Lower: s.GameHeight - s.TopBottomBorderHeight,
		Left:  0,
		Right: s.GameWidth,
	}

	c := &Court{
		Settings:    s,
		Bounds:      bounds,
		Paddle1:     NewPaddle(PlayerOne, s.PaddleLeftRightMargin, s.PaddleWidth, s.PaddleHeight, bounds),
		Paddle2:     NewPaddle(PlayerTwo, s.GameWidth-s.PaddleWidth-s.PaddleLeftRightMargin, s.PaddleWidth, s.PaddleHeight, bounds),
		Ball:        NewBall(s.GameWidth/2, s.GameHeight/2, s.BallRadius, s.BallSpeed),
		Score:       NewScoreBoard(s.ScoreToWinMatch),
		StartButton: CenteredRect(s.GameWidth/2, s.GameHeight/2, s.StartButtonWidth, s.StartButtonHeight),
		Pointer:     &Pointer{},
		sounds:      sounds,
		rng:         rng,
		log:         logger,
	}
	c.controllers[0] = c.newController(s.Player1Type, c.Paddle1)
	c.controllers[1] = c.newController(s.Player2Type, c.Paddle2)

	return c
}

func (c *Court) newController(kind string, p *Paddle) Controller {
	if kind == config.ControllerAI {
		return NewAIController(p, c.Ball, c.Settings.AIPaddleSpeed, c.Settings.GameWidth*c.Settings.AIDetectionRange)
	}
	return NewMouseController(p, c.Pointer)
}

// Running reports whether a match is in progress
func (c *Court) Running() bool {
	return c.running
}

// Winner returns the winner of the last match, or NoPlayer
func (c *Court) Winner() Player {
	return c.Score.Winner()
}

// MatchID identifies the current (or last) match
func (c *Court) MatchID() string {
	return c.matchID
}

// Click handles a pointer click at court coordinates. Returns true if it started a match.
func (c *Court) Click(x, y float64) bool {
	if c.running || !c.StartButton.Contains(x, y) {
		return false
	}
	c.Start()
	return true
}

// PointerMove records the pointer height; ignored while no match runs
func (c *Court) PointerMove(y float64) {
	if c.running {
		c.Pointer.Move(y)
	}
}

// Start begins a new match from 0-0
func (c *Court) Start() {
	if c.running {
		return
	}
	c.Score = NewScoreBoard(c.Settings.ScoreToWinMatch)
	c.matchID = uuid.NewString()
	c.Pointer.Forget()
	c.serve()
	c.running = true

	c.log.Info("match started",
		slog.String("match", c.matchID),
		slog.Int("to_win", c.Score.ToWin),
		slog.Int("ball_speed", int(math.Round(c.Ball.Speed()))),
	)
}

// Update runs one game tick of dt seconds
func (c *Court) Update(dt float64) {
	if !c.running {
		return
	}
	c.updateBall(dt)
	for _, ctl := range c.controllers {
		ctl.Update(dt)
	}
}

// updateBall resolves scoring and collisions for this tick, then integrates
func (c *Court) updateBall(dt float64) {
	b := c.Ball

	switch {
	// A ball past a side scores for the player defending the other side
	case b.X < c.Bounds.Left:
		c.playerScored(c.Paddle1.Player.Opponent())
	case b.X > c.Bounds.Right:
		c.playerScored(c.Paddle2.Player.Opponent())
	case b.Box().Overlaps(c.Paddle1.Box()):
		c.sounds.Play(SoundPaddleBounce)
		b.BounceHorizontal()
		b.X = c.Paddle1.Box().Right() + b.Radius
	case b.Box().Overlaps(c.Paddle2.Box()):
		c.sounds.Play(SoundPaddleBounce)
		b.BounceHorizontal()
		b.X = c.Paddle2.Box().Left() - b.Radius
	}

	switch {
	case b.Y < c.Bounds.Upper+b.Radius:
		c.sounds.Play(SoundWallBounce)
		b.BounceVertical()
		b.Y = c.Bounds.Upper + b.Radius
	case b.Y > c.Bounds.Lower-b.Radius:
		c.sounds.Play(SoundWallBounce)
		b.BounceVertical()
		b.Y = c.Bounds.Lower - b.Radius
	}

	b.Move(dt)
}

func (c *Court) playerScored(p Player) {
	c.sounds.Play(SoundScore)
	c.Score.Award(p)

	c.log.Info("point scored",
		slog.String("match", c.matchID),
		slog.String("player", p.String()),
		slog.Int("player1", c.Score.Player1Score),
		slog.Int("player2", c.Score.Player2Score),
		slog.Int("round", c.Score.Round),
	)

	if winner := c.Score.Winner(); winner != NoPlayer {
		c.running = false
		c.log.Info("match over", slog.String("match", c.matchID), slog.String("winner", winner.String()))
		return
	}
	c.serve()
}

// serve starts a new round: ball to the center with a random angle, AI paddles to the middle
func (c *Court) serve() {
	c.Score.Round++
	c.Ball.Launch(c.Settings.GameWidth/2, c.Settings.GameHeight/2, c.Settings.BallSpeed, ServeAngle(c.rng))

	for _, ctl := range c.controllers {
		if r, ok := ctl.(Recenterer); ok {
			r.Recenter()
		}
	}
}
