package game

import (
	"math/rand"

	"github.com/diegok/sacrifice/internal/protocol"
)

// Simulation drives a MatchState one tick at a time. It is not safe for
// concurrent use; a single loop owns it.
type Simulation struct {
	Match *MatchState
	Tick  int
}

func NewSimulation(rng *rand.Rand) *Simulation {
	return &Simulation{Match: NewMatchState(rng)}
}

// Step runs one tick of dt seconds. One-shot inputs are applied first; the
// physics only run while the match is playing.
func (s *Simulation) Step(in protocol.Input, dt float64) protocol.TickResult {
	res := protocol.TickResult{Segment: NoSegment}
	m := s.Match

	if in.Quit {
		res.Quit = true
		return res
	}

	if in.TogglePause {
		m.TogglePause()
		res.Events |= protocol.EventPauseToggled
	}
	if in.HardReset {
		m.HardReset()
		res.Events |= protocol.EventMatchStarted
	}
	if in.NewMatch && m.StartNewMatch() {
		res.Events |= protocol.EventMatchStarted
	}

	if m.Status() != protocol.StatusPlaying {
		return res
	}

	s.Tick++

	m.Left.Move(in.LeftDirection(), dt)
	m.Right.Move(in.RightDirection(), dt)

	m.Ball.Update(dt)

	if CollideWalls(m.Ball, m.Height) {
		res.Events |= protocol.EventWallBounce
	}

	contact := CollidePaddles(m.Ball, m.Left, m.Right, dt)
	switch contact.Kind {
	case ContactBounce:
		res.Events |= protocol.EventPaddleHit
	case ContactPassThrough:
		res.Events |= protocol.EventPassThrough
	}
	if contact.Kind != ContactNone {
		res.Paddle = contact.Side
		res.Segment = contact.Segment
	}

	if scorer := m.CheckScore(); scorer != protocol.SideNone {
		res.Events |= protocol.EventPoint
		res.Scorer = scorer
		if m.Winner != protocol.SideNone {
			res.Events |= protocol.EventMatchWon
		}
	}

	return res
}

// Snapshot returns a read-only copy of the state for renderers
func (s *Simulation) Snapshot() protocol.GameState {
	m := s.Match
	return protocol.GameState{
		Tick: s.Tick,
		Ball: protocol.BallState{
			X:      m.Ball.X,
			Y:      m.Ball.Y,
			Radius: m.Ball.Radius,
			VX:     m.Ball.VX,
			VY:     m.Ball.VY,
		},
		Left:        m.Left.State(),
		Right:       m.Right.State(),
		ScoreLeft:   m.ScoreLeft,
		ScoreRight:  m.ScoreRight,
		Paused:      m.Paused,
		Winner:      m.Winner,
		Status:      m.Status(),
		FieldWidth:  m.Width,
		FieldHeight: m.Height,
		WinScore:    WinScore,
	}
}
