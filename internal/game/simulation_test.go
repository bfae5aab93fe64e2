package game

import (
	"math/rand"
	"testing"

	"github.com/diegok/sacrifice/internal/protocol"
)

func newTestSimulation() *Simulation {
	return NewSimulation(rand.New(rand.NewSource(3)))
}

// parkBall stops the ball mid-court so a tick exercises only what the test sets up
func parkBall(s *Simulation) {
	s.Match.Ball.X = FieldWidth / 2
	s.Match.Ball.Y = FieldHeight / 2
	s.Match.Ball.VX = 0
	s.Match.Ball.VY = 0
}

func TestSimulation_Quit(t *testing.T) {
	s := newTestSimulation()
	before := s.Snapshot()

	res := s.Step(protocol.Input{Quit: true, LeftUp: true}, 0.016)

	if !res.Quit {
		t.Error("expected Quit to be reported")
	}
	if s.Tick != 0 {
		t.Errorf("expected no tick to run, got Tick=%d", s.Tick)
	}
	if s.Match.Ball.X != before.Ball.X || s.Match.Left.Y != before.Left.Y {
		t.Error("expected state untouched on quit")
	}
}

func TestSimulation_Tick(t *testing.T) {
	s := newTestSimulation()
	x := s.Match.Ball.X

	res := s.Step(protocol.Input{}, 0.016)

	if res.Quit {
		t.Error("unexpected quit")
	}
	if res.Segment != NoSegment {
		t.Errorf("expected no contact, got segment %d", res.Segment)
	}
	if s.Tick != 1 {
		t.Errorf("expected Tick=1, got %d", s.Tick)
	}
	if s.Match.Ball.X == x {
		t.Error("expected ball to move")
	}
}

func TestSimulation_PaddleInput(t *testing.T) {
	tests := []struct {
		name       string
		in         protocol.Input
		leftDelta  float64
		rightDelta float64
	}{
		{"left up", protocol.Input{LeftUp: true}, -52, 0},
		{"left down", protocol.Input{LeftDown: true}, 52, 0},
		{"right up", protocol.Input{RightUp: true}, 0, -52},
		{"right down", protocol.Input{RightDown: true}, 0, 52},
		{"both keys cancel", protocol.Input{LeftUp: true, LeftDown: true}, 0, 0},
		{"both paddles", protocol.Input{LeftUp: true, RightDown: true}, -52, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSimulation()
			parkBall(s)
			leftY, rightY := s.Match.Left.Y, s.Match.Right.Y

			s.Step(tt.in, 0.1)

			if d := s.Match.Left.Y - leftY; d < tt.leftDelta-1e-9 || d > tt.leftDelta+1e-9 {
				t.Errorf("expected left paddle to move %f, moved %f", tt.leftDelta, d)
			}
			if d := s.Match.Right.Y - rightY; d < tt.rightDelta-1e-9 || d > tt.rightDelta+1e-9 {
				t.Errorf("expected right paddle to move %f, moved %f", tt.rightDelta, d)
			}
		})
	}
}

func TestSimulation_PaddleStaysOnField(t *testing.T) {
	s := newTestSimulation()
	parkBall(s)

	for i := 0; i < 100; i++ {
		s.Step(protocol.Input{LeftUp: true, RightDown: true}, 0.05)
	}

	if s.Match.Left.Y != 0 {
		t.Errorf("expected left paddle pinned at top, got Y=%f", s.Match.Left.Y)
	}
	if s.Match.Right.Y != FieldHeight-PaddleHeight {
		t.Errorf("expected right paddle pinned at bottom, got Y=%f", s.Match.Right.Y)
	}
}

func TestSimulation_Paused(t *testing.T) {
	s := newTestSimulation()

	res := s.Step(protocol.Input{TogglePause: true}, 0.016)
	if !res.Events.Has(protocol.EventPauseToggled) {
		t.Error("expected EventPauseToggled")
	}
	if s.Snapshot().Status != protocol.StatusPaused {
		t.Fatalf("expected StatusPaused, got %v", s.Snapshot().Status)
	}

	x, leftY := s.Match.Ball.X, s.Match.Left.Y
	for i := 0; i < 10; i++ {
		s.Step(protocol.Input{LeftUp: true}, 0.016)
	}
	if s.Match.Ball.X != x || s.Match.Left.Y != leftY {
		t.Error("expected everything frozen while paused")
	}
	if s.Tick != 0 {
		t.Errorf("expected Tick to stay at 0 while paused, got %d", s.Tick)
	}

	s.Step(protocol.Input{TogglePause: true}, 0.016)
	if s.Match.Ball.X == x {
		t.Error("expected ball to move again after unpausing")
	}
}

func TestSimulation_WallBounceEvent(t *testing.T) {
	s := newTestSimulation()
	s.Match.Ball.X = 500
	s.Match.Ball.Y = 12
	s.Match.Ball.VX = 100
	s.Match.Ball.VY = -300

	res := s.Step(protocol.Input{}, 0.016)

	if !res.Events.Has(protocol.EventWallBounce) {
		t.Error("expected EventWallBounce")
	}
	if s.Match.Ball.VY != 300 {
		t.Errorf("expected VY=300, got %f", s.Match.Ball.VY)
	}
}

func TestSimulation_PaddleHitEvent(t *testing.T) {
	s := newTestSimulation()
	s.Match.Ball.X = 65
	s.Match.Ball.Y = s.Match.Left.CenterY()
	s.Match.Ball.VX = -900
	s.Match.Ball.VY = 0

	res := s.Step(protocol.Input{}, 0.01)

	if !res.Events.Has(protocol.EventPaddleHit) {
		t.Fatal("expected EventPaddleHit")
	}
	if s.Match.Ball.VX <= 0 {
		t.Errorf("expected ball heading right, got VX=%f", s.Match.Ball.VX)
	}
	if res.Paddle != protocol.SideLeft || res.Segment == NoSegment {
		t.Errorf("expected contact on a left segment, got %v/%d", res.Paddle, res.Segment)
	}

	snap := s.Snapshot()
	missing := 0
	for _, ok := range snap.Left.Present {
		if !ok {
			missing++
		}
	}
	if missing != 1 {
		t.Errorf("expected one missing segment in snapshot, got %d", missing)
	}
}

func TestSimulation_PassThroughEvent(t *testing.T) {
	s := newTestSimulation()
	s.Match.Left.DestroySegment(s.Match.Left.SegmentIndexAtY(s.Match.Left.CenterY()))
	s.Match.Ball.X = 65
	s.Match.Ball.Y = s.Match.Left.CenterY()
	s.Match.Ball.VX = -900
	s.Match.Ball.VY = 0

	res := s.Step(protocol.Input{}, 0.01)

	if !res.Events.Has(protocol.EventPassThrough) {
		t.Fatal("expected EventPassThrough")
	}
	if res.Events.Has(protocol.EventPaddleHit) {
		t.Error("did not expect EventPaddleHit")
	}
	if s.Match.Ball.VX != -900 {
		t.Errorf("expected VX unchanged, got %f", s.Match.Ball.VX)
	}
	if res.Segment != s.Match.Left.SegmentIndexAtY(s.Match.Left.CenterY()) {
		t.Errorf("expected the destroyed segment reported, got %d", res.Segment)
	}
}

func TestSimulation_PointEvent(t *testing.T) {
	s := newTestSimulation()
	s.Match.Left.DestroySegment(5)
	s.Match.Ball.X = -5
	s.Match.Ball.Y = 100
	s.Match.Ball.VX = -600
	s.Match.Ball.VY = 0

	res := s.Step(protocol.Input{}, 0.01)

	if !res.Events.Has(protocol.EventPoint) {
		t.Fatal("expected EventPoint")
	}
	if res.Scorer != protocol.SideRight {
		t.Errorf("expected SideRight scorer, got %v", res.Scorer)
	}
	snap := s.Snapshot()
	if snap.ScoreRight != 1 {
		t.Errorf("expected ScoreRight=1, got %d", snap.ScoreRight)
	}
	if !snap.Left.Present[5] {
		t.Error("expected segments restored after a point")
	}
	if snap.Ball.VX <= 0 {
		t.Errorf("expected serve toward the right, got VX=%f", snap.Ball.VX)
	}
}

func TestSimulation_MatchWonAndNewMatch(t *testing.T) {
	s := newTestSimulation()
	s.Match.ScoreLeft = 10
	s.Match.Ball.X = FieldWidth + 5
	s.Match.Ball.Y = 100
	s.Match.Ball.VX = 600
	s.Match.Ball.VY = 0

	res := s.Step(protocol.Input{}, 0.01)

	if !res.Events.Has(protocol.EventPoint | protocol.EventMatchWon) {
		t.Fatalf("expected EventPoint and EventMatchWon, got %b", res.Events)
	}
	snap := s.Snapshot()
	if snap.Status != protocol.StatusFinished || snap.Winner != protocol.SideLeft {
		t.Fatalf("expected left to have won, got %v/%v", snap.Status, snap.Winner)
	}

	tick := s.Tick
	x := s.Match.Ball.X
	s.Step(protocol.Input{RightUp: true}, 0.016)
	if s.Tick != tick || s.Match.Ball.X != x {
		t.Error("expected simulation frozen once finished")
	}

	res = s.Step(protocol.Input{NewMatch: true}, 0.016)
	if !res.Events.Has(protocol.EventMatchStarted) {
		t.Error("expected EventMatchStarted")
	}
	snap = s.Snapshot()
	if snap.Status != protocol.StatusPlaying {
		t.Errorf("expected StatusPlaying, got %v", snap.Status)
	}
	if snap.ScoreLeft != 0 || snap.ScoreRight != 0 {
		t.Errorf("expected 0-0, got %d-%d", snap.ScoreLeft, snap.ScoreRight)
	}
}

func TestSimulation_NewMatchIgnoredWhilePlaying(t *testing.T) {
	s := newTestSimulation()
	s.Match.ScoreLeft = 3

	res := s.Step(protocol.Input{NewMatch: true}, 0.016)

	if res.Events.Has(protocol.EventMatchStarted) {
		t.Error("did not expect EventMatchStarted while playing")
	}
	if s.Match.ScoreLeft != 3 {
		t.Errorf("expected score kept, got %d", s.Match.ScoreLeft)
	}
}

func TestSimulation_HardReset(t *testing.T) {
	s := newTestSimulation()
	s.Match.ScoreLeft = 3
	s.Match.ScoreRight = 6
	s.Match.TogglePause()

	res := s.Step(protocol.Input{HardReset: true}, 0.016)

	if !res.Events.Has(protocol.EventMatchStarted) {
		t.Error("expected EventMatchStarted")
	}
	snap := s.Snapshot()
	if snap.Status != protocol.StatusPlaying {
		t.Errorf("expected StatusPlaying, got %v", snap.Status)
	}
	if snap.ScoreLeft != 0 || snap.ScoreRight != 0 {
		t.Errorf("expected 0-0, got %d-%d", snap.ScoreLeft, snap.ScoreRight)
	}
}

func TestSimulation_Snapshot(t *testing.T) {
	s := newTestSimulation()
	s.Match.ScoreLeft = 4
	s.Match.ScoreRight = 2
	s.Match.Right.DestroySegment(13)

	snap := s.Snapshot()

	if snap.ScoreLeft != 4 || snap.ScoreRight != 2 {
		t.Errorf("expected 4-2, got %d-%d", snap.ScoreLeft, snap.ScoreRight)
	}
	if snap.FieldWidth != FieldWidth || snap.FieldHeight != FieldHeight {
		t.Errorf("expected field %fx%f, got %fx%f", FieldWidth, FieldHeight, snap.FieldWidth, snap.FieldHeight)
	}
	if snap.WinScore != WinScore {
		t.Errorf("expected WinScore=%d, got %d", WinScore, snap.WinScore)
	}
	if snap.Ball.Radius != BallRadius {
		t.Errorf("expected ball radius %f, got %f", BallRadius, snap.Ball.Radius)
	}
	if snap.Left.Side != protocol.SideLeft || snap.Right.Side != protocol.SideRight {
		t.Error("expected paddle sides set")
	}
	if snap.Right.Segments != PaddleSegments || snap.Right.Present[13] {
		t.Error("expected right paddle segment 13 missing in snapshot")
	}

	snap.Right.Present[0] = false
	if !s.Match.Right.HasSegment(0) {
		t.Error("snapshot must be a copy")
	}
}
