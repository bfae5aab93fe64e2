package app

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/diegok/sacrifice/internal/config"
	"github.com/diegok/sacrifice/internal/game"
	"github.com/diegok/sacrifice/internal/protocol"
)

// Session owns a simulation and turns its tick events into sound and log
// records. Frontends feed it input snapshots and wall-clock frame times.
type Session struct {
	sim     *game.Simulation
	log     *slog.Logger
	sound   func(protocol.Events)
	maxDT   time.Duration
	matchID string
}

// NewSession starts a simulation seeded from cfg.Seed, or the clock when 0.
// sound may be nil.
func NewSession(cfg *config.Config, logger *slog.Logger, sound func(protocol.Events)) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if sound == nil {
		sound = func(protocol.Events) {}
	}

	s := &Session{
		sim:   game.NewSimulation(rand.New(rand.NewSource(seed))),
		log:   logger,
		sound: sound,
		maxDT: cfg.MaxFrameTime,
	}
	s.startMatch()
	return s
}

func newMatchID() string {
	return uuid.New().String()[:8]
}

func (s *Session) startMatch() {
	s.matchID = newMatchID()
	s.log.Info("match started", "match", s.matchID)
}

// MatchID identifies the current match in log records
func (s *Session) MatchID() string {
	return s.matchID
}

// Advance runs one tick covering elapsed wall time, capped at the configured
// maximum so a stalled frame cannot fling the ball across the field.
func (s *Session) Advance(in protocol.Input, elapsed time.Duration) protocol.TickResult {
	dt := min(max(elapsed, 0), s.maxDT)

	res := s.sim.Step(in, dt.Seconds())
	if res.Quit {
		s.log.Info("quit", "match", s.matchID, "tick", s.sim.Tick)
		return res
	}

	s.report(res)
	s.sound(res.Events)
	return res
}

// Snapshot returns the state to render
func (s *Session) Snapshot() protocol.GameState {
	return s.sim.Snapshot()
}

func (s *Session) report(res protocol.TickResult) {
	if res.Events == 0 {
		return
	}
	m := s.sim.Match

	if res.Events.Has(protocol.EventMatchStarted) {
		s.startMatch()
	}
	if res.Events.Has(protocol.EventPauseToggled) {
		s.log.Info("pause toggled", "match", s.matchID, "status", m.Status().String())
	}
	if res.Events.Has(protocol.EventPaddleHit) {
		s.log.Debug("segment destroyed", "match", s.matchID,
			"side", res.Paddle.String(), "segment", res.Segment)
	}
	if res.Events.Has(protocol.EventPassThrough) {
		s.log.Debug("pass through", "match", s.matchID,
			"side", res.Paddle.String(), "segment", res.Segment)
	}
	if res.Events.Has(protocol.EventPoint) {
		s.log.Info("point", "match", s.matchID, "side", res.Scorer.String(),
			"left", m.ScoreLeft, "right", m.ScoreRight)
	}
	if res.Events.Has(protocol.EventMatchWon) {
		s.log.Info("match won", "match", s.matchID, "side", m.Winner.String(),
			"left", m.ScoreLeft, "right", m.ScoreRight)
	}
}
