package protocol

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Axis folds a pair of held keys into a direction.
// Holding both cancels out, the same as summing opposite velocities.
func Axis(up, down bool) Direction {
	switch {
	case up && !down:
		return DirUp
	case down && !up:
		return DirDown
	}
	return DirNone
}

// Side identifies a player. SideNone doubles as "no winner yet".
type Side int

const (
	SideNone  Side = 0
	SideLeft  Side = 1
	SideRight Side = 2
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Opponent returns the other player
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// MatchStatus is the match-level state
type MatchStatus int

const (
	StatusPlaying MatchStatus = iota
	StatusPaused
	StatusFinished
)

func (s MatchStatus) String() string {
	switch s {
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	}
	return "playing"
}

// Input is the per-tick snapshot produced by a frontend.
// Held flags describe the keys at sampling time; the rest are one-shot
// events that happened since the previous snapshot.
type Input struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool

	TogglePause bool
	HardReset   bool
	NewMatch    bool
	Quit        bool
}

// LeftDirection returns the left paddle's requested direction
func (in Input) LeftDirection() Direction {
	return Axis(in.LeftUp, in.LeftDown)
}

// RightDirection returns the right paddle's requested direction
func (in Input) RightDirection() Direction {
	return Axis(in.RightUp, in.RightDown)
}

// Action is something a key can be bound to
type Action int

const (
	ActionLeftUp Action = iota
	ActionLeftDown
	ActionRightUp
	ActionRightDown
	ActionPause
	ActionReset
	ActionNewMatch
	ActionQuit
)

// Actions lists every bindable action in display order
var Actions = []Action{
	ActionLeftUp, ActionLeftDown, ActionRightUp, ActionRightDown,
	ActionPause, ActionReset, ActionNewMatch, ActionQuit,
}

var actionNames = map[Action]string{
	ActionLeftUp:    "left_up",
	ActionLeftDown:  "left_down",
	ActionRightUp:   "right_up",
	ActionRightDown: "right_down",
	ActionPause:     "pause",
	ActionReset:     "reset",
	ActionNewMatch:  "new_match",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Held reports whether the action is paddle movement, sampled as a held key
func (a Action) Held() bool {
	return a >= ActionLeftUp && a <= ActionRightDown
}

// Apply sets the flag for a
func (in *Input) Apply(a Action) {
	switch a {
	case ActionLeftUp:
		in.LeftUp = true
	case ActionLeftDown:
		in.LeftDown = true
	case ActionRightUp:
		in.RightUp = true
	case ActionRightDown:
		in.RightDown = true
	case ActionPause:
		in.TogglePause = true
	case ActionReset:
		in.HardReset = true
	case ActionNewMatch:
		in.NewMatch = true
	case ActionQuit:
		in.Quit = true
	}
}

// BallState represents the ball's position and velocity
type BallState struct {
	X      float64
	Y      float64
	Radius float64
	VX     float64
	VY     float64
}

// PaddleState represents a paddle's state. X, Y is the top-left corner.
type PaddleState struct {
	Side     Side
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Segments int
	Present  []bool
}

// GameState is the read-only snapshot handed to renderers
type GameState struct {
	Tick        int
	Ball        BallState
	Left        PaddleState
	Right       PaddleState
	ScoreLeft   int
	ScoreRight  int
	Paused      bool
	Winner      Side
	Status      MatchStatus
	FieldWidth  float64
	FieldHeight float64
	WinScore    int
}

// Events is a bitmask of things that happened during one tick
type Events uint16

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventPassThrough
	EventPoint
	EventMatchWon
	EventMatchStarted
	EventPauseToggled
)

// Has reports whether all bits of e are set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// TickResult is returned by the simulation after each tick
type TickResult struct {
	Quit   bool
	Events Events
	// Scorer is set when EventPoint is present
	Scorer Side
	// Paddle and Segment describe the paddle contact behind EventPaddleHit
	// or EventPassThrough. Segment is -1 when the ball missed the paddle.
	Paddle  Side
	Segment int
}
