package game

// Player identifies a side of the court
type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "one"
	case PlayerTwo:
		return "two"
	}
	return "none"
}

// Opponent returns the player on the other side
func (p Player) Opponent() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

type Paddle struct {
	Player        Player
	X, Y          float64 // top-left corner
	Width, Height float64
	MinY, MaxY    float64 // allowed range for Y
}

// NewPaddle creates a paddle at column x, vertically centered between the court bounds
func NewPaddle(player Player, x, width, height float64, bounds Bounds) *Paddle {
	p := &Paddle{
		Player: player,
		X:      x,
		Width:  width,
		Height: height,
		MinY:   bounds.Upper,
		MaxY:   bounds.Lower - height,
	}
	p.Recenter()
	return p
}

// SetY moves the paddle top to y, clamped to the borders
func (p *Paddle) SetY(y float64) {
	switch {
	case y < p.MinY:
		p.Y = p.MinY
	case y > p.MaxY:
		p.Y = p.MaxY
	default:
		p.Y = y
	}
}

// CenterOn moves the paddle so its center sits at y, clamped to the borders
func (p *Paddle) CenterOn(y float64) {
	p.SetY(y - p.Height/2)
}

// Recenter puts the paddle back in the middle of its range
func (p *Paddle) Recenter() {
	p.Y = (p.MinY + p.MaxY) / 2
}

// CenterY returns the vertical center of the paddle
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) TopY() float64 {
	return p.Y
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height
}

// Box returns the paddle's collision box
func (p *Paddle) Box() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
