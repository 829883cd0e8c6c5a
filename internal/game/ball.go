package game

import (
	"math"
	"math/rand"
)

type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

// NewBall creates a ball at (x, y) heading down-right at the given speed per axis
func NewBall(x, y, radius, speed float64) *Ball {
	return &Ball{X: x, Y: y, Radius: radius, VX: speed, VY: speed}
}

// Move advances the ball by its velocity over dt seconds
func (b *Ball) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// BounceHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// Box returns the square that encloses the ball
func (b *Ball) Box() Rect {
	return CenteredRect(b.X, b.Y, b.Radius*2, b.Radius*2)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Launch places the ball at (x, y) moving at speed along angle (radians)
func (b *Ball) Launch(x, y, speed, angle float64) {
	b.X = x
	b.Y = y
	b.VX = math.Cos(angle) * speed
	b.VY = math.Sin(angle) * speed
}

// ServeAngle picks a launch angle in one of two 120 degree fans:
// [2π/3, 4π/3] towards the left player or [5π/3, 7π/3) towards the right one.
func ServeAngle(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return (2.0/3 + 2.0/3*rng.Float64()) * math.Pi
	}
	return math.Mod(5.0/3+2.0/3*rng.Float64(), 2) * math.Pi
}
