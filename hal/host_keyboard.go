//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

var hostKeyBindings = []struct {
	keys []ebiten.Key
	code uint8
}{
	{[]ebiten.Key{ebiten.KeyDigit0, ebiten.KeyNumpad0}, 0},
	{[]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}, 1},
	{[]ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}, 2},
	{[]ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}, 3},
	{[]ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}, 4},
	{[]ebiten.Key{ebiten.KeyDigit5, ebiten.KeyNumpad5}, 5},
	{[]ebiten.Key{ebiten.KeyDigit6, ebiten.KeyNumpad6}, 6},
	{[]ebiten.Key{ebiten.KeyDigit7, ebiten.KeyNumpad7}, 7},
	{[]ebiten.Key{ebiten.KeyDigit8, ebiten.KeyNumpad8}, 8},
	{[]ebiten.Key{ebiten.KeyDigit9, ebiten.KeyNumpad9}, 9},
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyO, ebiten.KeyEnter}, KeyOpen},
	{[]ebiten.Key{ebiten.KeyB, ebiten.KeyL}, KeyLock},
	{[]ebiten.Key{ebiten.KeyC}, KeyC},
	{[]ebiten.Key{ebiten.KeyD}, KeyD},
	{[]ebiten.Key{ebiten.KeyNumpadMultiply}, KeyStar},
	{[]ebiten.Key{ebiten.KeyMinus}, KeyHash},
}

// hostKeyboard holds one keypad contact closed while its PC key is down.
type hostKeyboard struct {
	m    *hostMatrix
	held uint8
}

func newHostKeyboard(m *hostMatrix) *hostKeyboard {
	return &hostKeyboard{m: m, held: KeyBlank}
}

func (k *hostKeyboard) poll() {
	code := KeyBlank
	for _, b := range hostKeyBindings {
		for _, key := range b.keys {
			if ebiten.IsKeyPressed(key) {
				code = b.code
				break
			}
		}
		if code != KeyBlank {
			break
		}
	}
	if code == k.held {
		return
	}
	k.held = code
	if code == KeyBlank {
		k.m.Release()
		return
	}
	row, mask, ok := Locate(code)
	if !ok {
		return
	}
	k.m.Press(row, mask)
}
