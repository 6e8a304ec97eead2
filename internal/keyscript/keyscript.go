// Package keyscript plays typed key sequences into a simulated keypad.
//
// A script is a string of key names:
//
//	0-9      digit keys
//	O or A   open
//	L or B   lock
//	C D * #  the remaining keys
//	.        one key slot of silence
//
// Spaces and commas are ignored, so "1234 O" and "1,2,3,4,O" are the same
// script.
package keyscript

import (
	"fmt"
	"strings"

	"lockbox/firmware/keypad"
	"lockbox/hal"
)

// Step is one slot of a script: a key to press, or a pause.
type Step struct {
	Code  uint8
	Pause bool
}

func (s Step) String() string {
	if s.Pause {
		return "."
	}
	switch s.Code {
	case hal.KeyOpen:
		return "O"
	case hal.KeyLock:
		return "L"
	case hal.KeyC:
		return "C"
	case hal.KeyD:
		return "D"
	case hal.KeyStar:
		return "*"
	case hal.KeyHash:
		return "#"
	}
	return fmt.Sprint(s.Code)
}

// Parse turns a script into steps.
func Parse(script string) ([]Step, error) {
	var steps []Step
	for i, r := range script {
		var st Step
		switch {
		case r >= '0' && r <= '9':
			st.Code = uint8(r - '0')
		case r == ' ' || r == ',' || r == '\t':
			continue
		case r == '.':
			st.Pause = true
		default:
			code, ok := named[r]
			if !ok {
				return nil, fmt.Errorf("keyscript: unknown key %q at offset %d", r, i)
			}
			st.Code = code
		}
		steps = append(steps, st)
	}
	return steps, nil
}

var named = map[rune]uint8{
	'O': hal.KeyOpen, 'o': hal.KeyOpen, 'A': hal.KeyOpen, 'a': hal.KeyOpen,
	'L': hal.KeyLock, 'l': hal.KeyLock, 'B': hal.KeyLock, 'b': hal.KeyLock,
	'C': hal.KeyC, 'c': hal.KeyC,
	'D': hal.KeyD, 'd': hal.KeyD,
	'*': hal.KeyStar,
	'#': hal.KeyHash,
}

// Format renders steps back into script form.
func Format(steps []Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(s.String())
	}
	return b.String()
}

// Timing is the length of one key slot in ticks: the key is held for Hold
// ticks and then left open for Gap ticks.
type Timing struct {
	Hold int
	Gap  int
}

// DefaultTiming returns a slot long enough for a scanner with the given
// debounce threshold to accept a press and its release, including bounce
// chattering reads on each edge.
func DefaultTiming(pulses, bounce int) Timing {
	n := 2*pulses + 4*bounce + 4*hal.Rows
	return Timing{Hold: n, Gap: n}
}

// Slot returns the ticks taken by one step.
func (t Timing) Slot() int { return t.Hold + t.Gap }

// Player presses the keys of a script, one tick at a time.
type Player struct {
	kb    hal.KeyInjector
	steps []Step
	t     Timing
	i     int
	n     int
	down  bool
}

// NewPlayer returns a player driving kb. A zero Timing selects the default
// for an unconfigured scanner.
func NewPlayer(kb hal.KeyInjector, steps []Step, t Timing) *Player {
	if t.Hold <= 0 || t.Gap <= 0 {
		t = DefaultTiming(keypad.DefaultPulses, 0)
	}
	return &Player{kb: kb, steps: steps, t: t}
}

// Tick advances the script by one tick. It must run before the scanner
// samples the keypad.
func (p *Player) Tick() {
	if p.i >= len(p.steps) {
		return
	}
	st := p.steps[p.i]
	p.n++
	switch {
	case p.n == 1 && !st.Pause:
		if row, mask, ok := hal.Locate(st.Code); ok {
			p.kb.Press(row, mask)
			p.down = true
		}
	case p.n == p.t.Hold+1 && p.down:
		p.kb.Release()
		p.down = false
	}
	if p.n >= p.t.Slot() {
		p.i++
		p.n = 0
	}
}

// Done reports whether every step has been played.
func (p *Player) Done() bool { return p.i >= len(p.steps) }

// Remaining returns the ticks left until the script finishes.
func (p *Player) Remaining() int {
	if p.Done() {
		return 0
	}
	return (len(p.steps)-p.i)*p.t.Slot() - p.n
}
