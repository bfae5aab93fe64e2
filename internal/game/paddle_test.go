package game

import (
	"math"
	"testing"

	"github.com/diegok/sacrifice/internal/protocol"
)

func newTestPaddle() *Paddle {
	// 200 high, 14 segments, top at 225 on a 650 field
	return NewPaddle(protocol.SideLeft, 32, 225, PaddleWidth, PaddleHeight, PaddleSegments, FieldHeight)
}

func TestNewPaddle(t *testing.T) {
	paddle := NewPaddle(protocol.SideRight, 1050, 225, 18, 200, 14, 650)

	if paddle.Side != protocol.SideRight {
		t.Errorf("expected Side=SideRight, got %v", paddle.Side)
	}
	if paddle.SegmentCount() != 14 {
		t.Errorf("expected 14 segments, got %d", paddle.SegmentCount())
	}
	if paddle.IntactSegments() != 14 {
		t.Errorf("expected all segments intact, got %d", paddle.IntactSegments())
	}
	if paddle.Left() != 1050 || paddle.Right() != 1068 {
		t.Errorf("expected faces at 1050/1068, got %f/%f", paddle.Left(), paddle.Right())
	}
	if paddle.CenterY() != 325 {
		t.Errorf("expected CenterY=325, got %f", paddle.CenterY())
	}
}

func TestPaddle_MoveBy_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		dy    float64
		wantY float64
	}{
		{"small up", -25, 200},
		{"small down", 25, 250},
		{"past top", -1000, 0},
		{"past bottom", 1000, FieldHeight - PaddleHeight},
		{"exactly to top", -225, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := newTestPaddle()
			paddle.MoveBy(tt.dy)
			if paddle.Y != tt.wantY {
				t.Errorf("MoveBy(%f): expected Y=%f, got %f", tt.dy, tt.wantY, paddle.Y)
			}
		})
	}
}

func TestPaddle_Move(t *testing.T) {
	paddle := newTestPaddle()

	paddle.Move(protocol.DirUp, 0.1)
	expectedY := 225 - PaddleSpeed*0.1
	if paddle.Y != expectedY {
		t.Errorf("expected Y=%f after moving up, got %f", expectedY, paddle.Y)
	}

	paddle.Move(protocol.DirDown, 0.1)
	if math.Abs(paddle.Y-225) > 1e-9 {
		t.Errorf("expected Y=225 after moving back down, got %f", paddle.Y)
	}

	before := paddle.Y
	paddle.Move(protocol.DirNone, 0.1)
	if paddle.Y != before {
		t.Errorf("expected Y to remain unchanged with DirNone, got %f", paddle.Y)
	}
}

func TestPaddle_SegmentIndexAtY_Outside(t *testing.T) {
	paddle := newTestPaddle() // spans [225, 425)

	for _, y := range []float64{-50, 0, 224.999, 425, 425.001, 650, 10000} {
		if got := paddle.SegmentIndexAtY(y); got != NoSegment {
			t.Errorf("SegmentIndexAtY(%f) = %d, want NoSegment", y, got)
		}
	}
}

func TestPaddle_SegmentIndexAtY_Inside(t *testing.T) {
	paddle := newTestPaddle()

	tests := []struct {
		y    float64
		want int
	}{
		{225, 0},
		{230, 0},
		{240, 1},  // 15 / 14.29 = 1.05
		{320, 6},  // 95 / 14.29 = 6.65
		{410, 12}, // 185 / 14.29 = 12.95
		{424.9, 13},
	}

	for _, tt := range tests {
		if got := paddle.SegmentIndexAtY(tt.y); got != tt.want {
			t.Errorf("SegmentIndexAtY(%f) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestPaddle_SegmentIndexAtY_Monotonic(t *testing.T) {
	paddle := newTestPaddle()

	prev := 0
	for y := paddle.TopY(); y < paddle.BottomY(); y += 0.37 {
		idx := paddle.SegmentIndexAtY(y)
		if idx < 0 || idx >= paddle.SegmentCount() {
			t.Fatalf("SegmentIndexAtY(%f) = %d, out of range", y, idx)
		}
		if idx < prev {
			t.Fatalf("index decreased at y=%f: %d after %d", y, idx, prev)
		}
		prev = idx
	}
	if prev != paddle.SegmentCount()-1 {
		t.Errorf("expected sweep to reach last segment, stopped at %d", prev)
	}
}

func TestPaddle_DestroyAndReset(t *testing.T) {
	paddle := newTestPaddle()

	paddle.DestroySegment(3)
	paddle.DestroySegment(13)

	if paddle.HasSegment(3) || paddle.HasSegment(13) {
		t.Error("expected destroyed segments to be gone")
	}
	if !paddle.HasSegment(4) {
		t.Error("expected neighbouring segment to be intact")
	}
	if paddle.IntactSegments() != 12 {
		t.Errorf("expected 12 intact segments, got %d", paddle.IntactSegments())
	}

	// Destroying twice is harmless
	paddle.DestroySegment(3)
	if paddle.IntactSegments() != 12 {
		t.Errorf("expected 12 intact segments after repeat destroy, got %d", paddle.IntactSegments())
	}

	paddle.ResetSegments()
	for i := 0; i < paddle.SegmentCount(); i++ {
		if !paddle.HasSegment(i) {
			t.Errorf("expected segment %d restored after reset", i)
		}
	}
}

func TestPaddle_NoSegmentIsNoop(t *testing.T) {
	paddle := newTestPaddle()

	if paddle.HasSegment(NoSegment) {
		t.Error("HasSegment(NoSegment) should be false")
	}
	if paddle.HasSegment(paddle.SegmentCount()) {
		t.Error("HasSegment past the end should be false")
	}

	paddle.DestroySegment(NoSegment)
	paddle.DestroySegment(99)
	if paddle.IntactSegments() != paddle.SegmentCount() {
		t.Errorf("expected no segment destroyed, got %d intact", paddle.IntactSegments())
	}
}

func TestPaddle_StateCopiesSegments(t *testing.T) {
	paddle := newTestPaddle()
	paddle.DestroySegment(0)

	state := paddle.State()
	if state.Segments != 14 || len(state.Present) != 14 {
		t.Fatalf("expected 14 segments in state, got %d/%d", state.Segments, len(state.Present))
	}
	if state.Present[0] {
		t.Error("expected segment 0 missing in state")
	}

	state.Present[1] = false
	if !paddle.HasSegment(1) {
		t.Error("mutating the snapshot must not touch the paddle")
	}
}
