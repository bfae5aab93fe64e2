package game

import (
	"math"

	"github.com/diegok/sacrifice/internal/protocol"
)

const (
	PaddleWidth    = 18.0
	PaddleHeight   = 200.0
	PaddleSpeed    = 520.0 // Units per second
	PaddleSegments = 14
	PaddleMargin   = 32.0 // Gap between a paddle and its side wall
)

// NoSegment is returned when a y coordinate misses the paddle
const NoSegment = -1

// Paddle is a vertical bar split into equal segments that can be knocked out.
// X, Y is the top-left corner.
type Paddle struct {
	Side        protocol.Side
	X           float64
	Y           float64
	Width       float64
	Height      float64
	FieldHeight float64
	present     []bool
}

func NewPaddle(side protocol.Side, x, y, width, height float64, segments int, fieldHeight float64) *Paddle {
	if segments < 1 {
		segments = 1
	}
	p := &Paddle{
		Side:        side,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		FieldHeight: fieldHeight,
		present:     make([]bool, segments),
	}
	p.ResetSegments()
	return p
}

// MoveBy shifts the paddle vertically, clamped to the field
func (p *Paddle) MoveBy(dy float64) {
	p.Y = clamp(p.Y+dy, 0, p.FieldHeight-p.Height)
}

// Move applies one tick of held-key movement
func (p *Paddle) Move(dir protocol.Direction, dt float64) {
	switch dir {
	case protocol.DirUp:
		p.MoveBy(-PaddleSpeed * dt)
	case protocol.DirDown:
		p.MoveBy(PaddleSpeed * dt)
	}
}

// SegmentCount returns N
func (p *Paddle) SegmentCount() int {
	return len(p.present)
}

func (p *Paddle) SegmentHeight() float64 {
	return p.Height / float64(len(p.present))
}

// SegmentIndexAtY returns the segment covering y, or NoSegment if y is
// outside [Y, Y+Height).
func (p *Paddle) SegmentIndexAtY(y float64) int {
	rel := y - p.Y
	if rel < 0 || rel >= p.Height {
		return NoSegment
	}
	idx := int(math.Floor(rel / p.SegmentHeight()))
	// Rounding can push rel/segH to exactly N at the bottom edge
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.present)-1 {
		idx = len(p.present) - 1
	}
	return idx
}

func (p *Paddle) HasSegment(idx int) bool {
	if idx < 0 || idx >= len(p.present) {
		return false
	}
	return p.present[idx]
}

// DestroySegment knocks out a segment until the next ResetSegments
func (p *Paddle) DestroySegment(idx int) {
	if idx < 0 || idx >= len(p.present) {
		return
	}
	p.present[idx] = false
}

func (p *Paddle) ResetSegments() {
	for i := range p.present {
		p.present[i] = true
	}
}

// IntactSegments counts segments still standing
func (p *Paddle) IntactSegments() int {
	n := 0
	for _, ok := range p.present {
		if ok {
			n++
		}
	}
	return n
}

// Segments returns a copy of the presence flags, top to bottom
func (p *Paddle) Segments() []bool {
	out := make([]bool, len(p.present))
	copy(out, p.present)
	return out
}

func (p *Paddle) Left() float64 {
	return p.X
}

func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

func (p *Paddle) TopY() float64 {
	return p.Y
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// State converts to the renderer snapshot
func (p *Paddle) State() protocol.PaddleState {
	return protocol.PaddleState{
		Side:     p.Side,
		X:        p.X,
		Y:        p.Y,
		Width:    p.Width,
		Height:   p.Height,
		Segments: len(p.present),
		Present:  p.Segments(),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
