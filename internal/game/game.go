package game

import "time"

// MaxFrameTime caps the elapsed time of a single tick so a stalled loop
// (suspended terminal, dragged window) does not teleport the ball.
const MaxFrameTime = 250 * time.Millisecond

// Frame draws the court after each tick
type Frame interface {
	Render(c *Court)
}

// Game drives a Court from a fixed-interval timer
type Game struct {
	Court *Court
	prev  time.Time
}

func NewGame(court *Court) *Game {
	return &Game{Court: court}
}

// Step advances the court by the time elapsed since the previous step.
// The first step only records the clock. Returns the elapsed seconds used.
func (g *Game) Step(now time.Time) float64 {
	if g.prev.IsZero() {
		g.prev = now
		return 0
	}

	elapsed := now.Sub(g.prev)
	g.prev = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrameTime {
		elapsed = MaxFrameTime
	}

	dt := elapsed.Seconds()
	g.Court.Update(dt)
	return dt
}

// Tick steps the court and redraws it
func (g *Game) Tick(now time.Time, frame Frame) {
	g.Step(now)
	frame.Render(g.Court)
}

// TickInterval returns the timer period for the given frame rate
func TickInterval(fps int) time.Duration {
	return time.Second / time.Duration(fps)
}
