package game

import (
	"math"
	"math/rand"
)

const (
	BallRadius    = 10.0
	BallBaseSpeed = 420.0 // Serve speed, units per second
	BallMaxSpeed  = 980.0
	ServeAngle    = 0.35 // Max launch angle either side of horizontal, radians
)

type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

func NewBall(x, y, radius float64) *Ball {
	return &Ball{X: x, Y: y, Radius: radius}
}

// Update advances the ball by dt seconds. No sub-stepping: fast balls can
// jump past thin objects, which the paddle check compensates for.
func (b *Ball) Update(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Serve places the ball at the given center and launches it at base speed.
// direction is -1 (left) or +1 (right); 0 picks one at random.
func (b *Ball) Serve(centerX, centerY float64, direction int, rng *rand.Rand) {
	b.X = centerX
	b.Y = centerY

	angle := (rng.Float64()*2 - 1) * ServeAngle
	if direction == 0 {
		direction = 1
		if rng.Intn(2) == 0 {
			direction = -1
		}
	}
	if direction < 0 {
		direction = -1
	} else {
		direction = 1
	}

	b.VX = float64(direction) * BallBaseSpeed * math.Cos(angle)
	b.VY = BallBaseSpeed * math.Sin(angle)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }
func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }
