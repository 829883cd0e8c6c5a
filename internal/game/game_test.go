package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingFrame struct {
	renders int
}

func (f *countingFrame) Render(*Court) {
	f.renders++
}

func TestGame_Step(t *testing.T) {
	c, _ := newTestCourt(t, nil)
	c.Start()
	c.Ball.X, c.Ball.Y = 600, 450
	c.Ball.VX, c.Ball.VY = 600, 0
	g := NewGame(c)

	start := time.Unix(1000, 0)
	assert.Equal(t, 0.0, g.Step(start), "first step only sets the clock")
	assert.Equal(t, 600.0, c.Ball.X)

	dt := g.Step(start.Add(100 * time.Millisecond))
	assert.InDelta(t, 0.1, dt, 1e-9)
	assert.InDelta(t, 660, c.Ball.X, 1e-9)
}

func TestGame_StepCapsLongFrames(t *testing.T) {
	c, _ := newTestCourt(t, nil)
	g := NewGame(c)

	start := time.Unix(1000, 0)
	g.Step(start)

	assert.Equal(t, MaxFrameTime.Seconds(), g.Step(start.Add(10*time.Second)))
	assert.Equal(t, 0.0, g.Step(start), "clock going backwards")
}

func TestGame_TickRenders(t *testing.T) {
	c, _ := newTestCourt(t, nil)
	g := NewGame(c)
	frame := &countingFrame{}

	now := time.Unix(1000, 0)
	g.Tick(now, frame)
	g.Tick(now.Add(16*time.Millisecond), frame)

	assert.Equal(t, 2, frame.renders)
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, TickInterval(60))
	assert.Equal(t, 100*time.Millisecond, TickInterval(10))
}
