package game

import (
	"math/rand"

	"github.com/diegok/sacrifice/internal/protocol"
)

// Constants for match state management
const (
	FieldWidth  = 1100.0
	FieldHeight = 650.0
	WinScore    = 11
	WinLead     = 2
)

// MatchState owns both paddles, the ball, the score and the win/pause flags
type MatchState struct {
	Width      float64
	Height     float64
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	ScoreLeft  int
	ScoreRight int
	Winner     protocol.Side
	Paused     bool
	rng        *rand.Rand
}

// NewMatchState creates a match on the standard field and serves the first
// ball in a random direction.
func NewMatchState(rng *rand.Rand) *MatchState {
	m := &MatchState{
		Width:  FieldWidth,
		Height: FieldHeight,
		rng:    rng,
	}
	m.Reset(true, 0)
	return m
}

// Reset re-creates the paddles at mid-court and serves a fresh ball.
// full also zeroes the score. serveDir follows Ball.Serve.
func (m *MatchState) Reset(full bool, serveDir int) {
	paddleY := m.Height/2 - PaddleHeight/2
	m.Left = NewPaddle(protocol.SideLeft, PaddleMargin, paddleY,
		PaddleWidth, PaddleHeight, PaddleSegments, m.Height)
	m.Right = NewPaddle(protocol.SideRight, m.Width-PaddleMargin-PaddleWidth, paddleY,
		PaddleWidth, PaddleHeight, PaddleSegments, m.Height)

	if full {
		m.ScoreLeft = 0
		m.ScoreRight = 0
	}

	m.Ball = NewBall(m.Width/2, m.Height/2, BallRadius)
	m.serve(serveDir)
	m.Paused = false
	m.Winner = protocol.SideNone
}

func (m *MatchState) serve(direction int) {
	m.Ball.Serve(m.Width/2, m.Height/2, direction, m.rng)
}

// CheckScore awards a point once the ball has fully left the field.
// Returns the scoring side, or SideNone.
func (m *MatchState) CheckScore() protocol.Side {
	var scorer protocol.Side
	var serveDir int

	switch {
	case m.Ball.Right() < 0:
		m.ScoreRight++
		scorer = protocol.SideRight
		serveDir = 1
	case m.Ball.Left() > m.Width:
		m.ScoreLeft++
		scorer = protocol.SideLeft
		serveDir = -1
	default:
		return protocol.SideNone
	}

	m.checkWin(scorer)
	m.Left.ResetSegments()
	m.Right.ResetSegments()
	m.serve(serveDir)
	return scorer
}

// checkWin sets the winner if the scorer has reached WinScore with a big
// enough lead. A decided match stays decided.
func (m *MatchState) checkWin(scorer protocol.Side) {
	if m.Winner != protocol.SideNone {
		return
	}
	score, other := m.ScoreLeft, m.ScoreRight
	if scorer == protocol.SideRight {
		score, other = m.ScoreRight, m.ScoreLeft
	}
	if HasWon(score, other) {
		m.Winner = scorer
	}
}

// HasWon reports whether score beats other under the win-by-two rule
func HasWon(score, other int) bool {
	return score >= WinScore && score-other >= WinLead
}

// Status derives the match-level state
func (m *MatchState) Status() protocol.MatchStatus {
	if m.Winner != protocol.SideNone {
		return protocol.StatusFinished
	}
	if m.Paused {
		return protocol.StatusPaused
	}
	return protocol.StatusPlaying
}

// IsGameOver returns true once a winner is set
func (m *MatchState) IsGameOver() bool {
	return m.Winner != protocol.SideNone
}

// TogglePause flips the pause flag
func (m *MatchState) TogglePause() {
	m.Paused = !m.Paused
}

// StartNewMatch begins a fresh match. Only valid once the current one is
// finished; returns false otherwise.
func (m *MatchState) StartNewMatch() bool {
	if m.Status() != protocol.StatusFinished {
		return false
	}
	m.Reset(true, 0)
	return true
}

// HardReset unconditionally starts over with zeroed scores
func (m *MatchState) HardReset() {
	m.Reset(true, 0)
}
