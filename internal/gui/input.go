package gui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/diegok/sacrifice/internal/protocol"
)

var keyCodes = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"esc":       ebiten.KeyEscape,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
}

type binding struct {
	key    ebiten.Key
	action protocol.Action
}

// resolveBindings maps key names to ebiten keys
func resolveBindings(names map[string]protocol.Action) ([]binding, error) {
	out := make([]binding, 0, len(names))
	for name, action := range names {
		key, ok := keyCodes[name]
		if !ok {
			return nil, fmt.Errorf("no window key for %q", name)
		}
		out = append(out, binding{key: key, action: action})
	}
	return out, nil
}

// collect samples the keyboard. Windows report real key state, so movement
// reads held keys and the rest fire once per press.
func collect(bindings []binding, pressed, justPressed func(ebiten.Key) bool) protocol.Input {
	var in protocol.Input
	for _, b := range bindings {
		if b.action.Held() {
			if pressed(b.key) {
				in.Apply(b.action)
			}
			continue
		}
		if justPressed(b.key) {
			in.Apply(b.action)
		}
	}
	return in
}
