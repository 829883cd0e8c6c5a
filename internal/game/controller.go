package game

import "math"

// Controller moves a paddle once per tick
type Controller interface {
	Update(dt float64)
}

// Recenterer is implemented by controllers whose paddle returns to the middle on every serve
type Recenterer interface {
	Recenter()
}

// Pointer holds the last pointer position reported by the display
type Pointer struct {
	y   float64
	set bool
}

// Move records a new pointer y
func (p *Pointer) Move(y float64) {
	p.y = y
	p.set = true
}

// Forget drops the recorded position until the pointer moves again
func (p *Pointer) Forget() {
	p.set = false
}

// Y returns the last recorded position, if any
func (p *Pointer) Y() (float64, bool) {
	return p.y, p.set
}

// MouseController centers its paddle on the pointer
type MouseController struct {
	paddle  *Paddle
	pointer *Pointer
}

func NewMouseController(paddle *Paddle, pointer *Pointer) *MouseController {
	return &MouseController{paddle: paddle, pointer: pointer}
}

func (c *MouseController) Update(dt float64) {
	if y, ok := c.pointer.Y(); ok {
		c.paddle.CenterOn(y)
	}
}

// AIController chases the ball while it approaches within reach
type AIController struct {
	paddle *Paddle
	ball   *Ball
	speed  float64 // units per second
	reach  float64 // horizontal detection distance
}

func NewAIController(paddle *Paddle, ball *Ball, speed, reach float64) *AIController {
	return &AIController{paddle: paddle, ball: ball, speed: speed, reach: reach}
}

func (c *AIController) Update(dt float64) {
	p, b := c.paddle, c.ball

	dx := p.X - b.X
	if dx*b.VX <= 0 {
		return // ball moving away
	}
	if math.Abs(dx) >= c.reach {
		return
	}
	if b.Y >= p.TopY() && b.Y <= p.BottomY() {
		return // already covered
	}

	p.SetY(p.Y + sign(b.Y-p.CenterY())*c.speed*dt)
}

func (c *AIController) Recenter() {
	c.paddle.Recenter()
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
