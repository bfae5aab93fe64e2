package game

import (
	"math"

	"github.com/diegok/sacrifice/internal/protocol"
)

const (
	HitSpeedup      = 1.04 // Speed multiplier per paddle bounce
	SpinMax         = 420.0
	VerticalCarry   = 0.15 // Share of incoming vy kept on a bounce
	SpinBlend       = 0.85 // Share of position-driven spin added on a bounce
	BounceClearance = 0.1
)

// ContactKind describes what happened at a paddle plane
type ContactKind int

const (
	ContactNone ContactKind = iota
	// ContactBounce: an intact segment stopped the ball and was destroyed
	ContactBounce
	// ContactPassThrough: the ball crossed the plane where no segment stands
	ContactPassThrough
)

// Contact reports the outcome of the paddle check for one tick
type Contact struct {
	Kind    ContactKind
	Side    protocol.Side
	Segment int
}

// CollideWalls reflects the ball off the top and bottom of the field.
// Returns true if it bounced.
func CollideWalls(b *Ball, fieldHeight float64) bool {
	if b.Top() <= 0 && b.VY < 0 {
		b.Y = b.Radius
		b.VY = -b.VY
		return true
	}
	if b.Bottom() >= fieldHeight && b.VY > 0 {
		b.Y = fieldHeight - b.Radius
		b.VY = -b.VY
		return true
	}
	return false
}

// CollidePaddles checks the paddle the ball is heading toward. The test is
// swept: it fires when the ball's center crossed the collision plane during
// this tick, however far it travelled.
func CollidePaddles(b *Ball, left, right *Paddle, dt float64) Contact {
	prevX := b.X - b.VX*dt

	if b.VX < 0 {
		plane := left.Right() + b.Radius
		if prevX > plane && b.X <= plane {
			return bounceOffPaddle(b, left)
		}
	} else if b.VX > 0 {
		plane := right.Left() - b.Radius
		if prevX < plane && b.X >= plane {
			return bounceOffPaddle(b, right)
		}
	}
	return Contact{Kind: ContactNone, Segment: NoSegment}
}

// bounceOffPaddle resolves a plane crossing. The struck segment is taken at
// the post-update y.
func bounceOffPaddle(b *Ball, p *Paddle) Contact {
	idx := p.SegmentIndexAtY(b.Y)
	if !p.HasSegment(idx) {
		return Contact{Kind: ContactPassThrough, Side: p.Side, Segment: idx}
	}

	p.DestroySegment(idx)
	b.VX = -b.VX

	offsetNorm := clamp((b.Y-p.CenterY())/(p.Height/2), -1, 1)
	spin := offsetNorm * SpinMax
	b.VY = b.VY*VerticalCarry + spin*SpinBlend

	speed := math.Min(math.Hypot(b.VX, b.VY)*HitSpeedup, BallMaxSpeed)
	angle := math.Atan2(b.VY, b.VX)
	b.VX = speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)

	// Park the ball outside the face so the next tick can't re-trigger
	if p.Side == protocol.SideLeft {
		b.X = p.Right() + b.Radius + BounceClearance
	} else {
		b.X = p.Left() - b.Radius - BounceClearance
	}

	return Contact{Kind: ContactBounce, Side: p.Side, Segment: idx}
}
