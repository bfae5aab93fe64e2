package ui

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/sacrifice/internal/protocol"
)

// HoldWindow is how long a movement key counts as held after its last press
// or auto-repeat. Terminals never report key releases.
const HoldWindow = 150 * time.Millisecond

// KeyName converts a key event to its binding name, or "" if it has none
func KeyName(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyRune:
		r = unicode.ToLower(r)
		if r == ' ' {
			return "space"
		}
		if r >= 'a' && r <= 'z' {
			return string(r)
		}
	}
	return ""
}

// IsInterruptKey returns true for Ctrl+C, which always quits
func IsInterruptKey(key tcell.Key) bool {
	return key == tcell.KeyCtrlC
}

// InputCollector turns a stream of key presses into per-tick input snapshots.
// Movement keys stay held for HoldWindow after each press; pause, reset,
// new match and quit are latched until the next Snapshot.
type InputCollector struct {
	bindings map[string]protocol.Action
	hold     time.Duration
	lastSeen [4]time.Time // indexed by the held actions
	pending  protocol.Input
}

func NewInputCollector(bindings map[string]protocol.Action) *InputCollector {
	return &InputCollector{
		bindings: bindings,
		hold:     HoldWindow,
	}
}

// Press records a key event at now. Returns false for unbound keys.
func (c *InputCollector) Press(key tcell.Key, r rune, now time.Time) bool {
	if IsInterruptKey(key) {
		c.pending.Quit = true
		return true
	}

	action, ok := c.bindings[KeyName(key, r)]
	if !ok {
		return false
	}

	if !action.Held() {
		c.pending.Apply(action)
		return true
	}

	// Switching direction releases the opposite key at once
	c.lastSeen[opposite(action)] = time.Time{}
	c.lastSeen[action] = now
	return true
}

// PressEvent is Press for a tcell key event
func (c *InputCollector) PressEvent(ev *tcell.EventKey) bool {
	return c.Press(ev.Key(), ev.Rune(), ev.When())
}

// Snapshot returns the input for a tick at now and clears the one-shots
func (c *InputCollector) Snapshot(now time.Time) protocol.Input {
	in := c.pending
	c.pending = protocol.Input{}

	for i, seen := range c.lastSeen {
		if !seen.IsZero() && now.Sub(seen) < c.hold {
			in.Apply(protocol.Action(i))
		}
	}
	return in
}

func opposite(a protocol.Action) protocol.Action {
	switch a {
	case protocol.ActionLeftUp:
		return protocol.ActionLeftDown
	case protocol.ActionLeftDown:
		return protocol.ActionLeftUp
	case protocol.ActionRightUp:
		return protocol.ActionRightDown
	}
	return protocol.ActionRightUp
}
