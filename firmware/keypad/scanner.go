// Package keypad multiplexes the display and the keypad rows and debounces
// key presses into events.
package keypad

import (
	"fmt"

	"lockbox/firmware/display"
	"lockbox/hal"
)

// DefaultPulses is the number of consecutive stable samples a press or
// release must exceed before it is accepted.
const DefaultPulses = 100

// Phase is the debounce state.
type Phase uint8

const (
	Idle Phase = iota
	Press
	Process
	Release
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Press:
		return "press"
	case Process:
		return "process"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Scanner refreshes one display digit per tick, samples the keypad row that
// shares its select line, and debounces presses.
type Scanner struct {
	disp  hal.Display
	pad   hal.Keypad
	delay hal.Delayer
	buf   *display.Buffer
	n     int

	phase  Phase
	x      uint8 // column mask of the tentative press
	y      int   // row of the tentative press
	pulses int
	k      int // row refreshed by the next tick
}

// New returns a scanner rendering buf. pulses <= 0 selects DefaultPulses.
// delay may be nil.
func New(disp hal.Display, pad hal.Keypad, delay hal.Delayer, buf *display.Buffer, pulses int) *Scanner {
	if pulses <= 0 {
		pulses = DefaultPulses
	}
	return &Scanner{
		disp:  disp,
		pad:   pad,
		delay: delay,
		buf:   buf,
		n:     pulses,
	}
}

// Tick runs one scan cycle. While frozen the display keeps refreshing but
// the keypad is neither sampled nor debounced.
func (s *Scanner) Tick(frozen bool) Event {
	s.disp.Blank()
	s.disp.SelectRow(s.k)
	s.disp.WriteSegments(display.Pattern(s.buf.At(s.k)))
	if s.delay != nil {
		s.delay.Delay()
	}

	if !frozen {
		// The latch follows scan order: whichever row last read nonzero wins.
		if m := s.pad.ReadColumns(s.k); m != 0 {
			s.x = m
			s.y = s.k
		}
	}
	s.k = (s.k + 1) % hal.Rows

	if frozen {
		return None
	}

	switch s.phase {
	case Idle:
		if s.x != 0 {
			s.phase = Press
			s.pulses = 0
		}

	case Press:
		if s.pad.ReadColumns(s.y) == s.x {
			s.pulses++
		} else {
			s.pulses = 0
			s.phase = Idle
		}
		if s.pulses > s.n {
			s.pulses = 0
			s.phase = Process
		}

	case Process:
		s.phase = Release
		switch {
		case s.y == 0 && s.x == 1:
			return Open
		case s.y == 1 && s.x == 1:
			return Lock
		}
		code := hal.KeyAt(s.y, s.x)
		s.buf.Append(code)
		return Digit(code)

	case Release:
		if s.pad.ReadColumns(s.y) == 0 {
			s.pulses++
		} else {
			s.pulses = 0
		}
		if s.pulses > s.n {
			s.pulses = 0
			s.phase = Idle
		}
	}
	return None
}

// Phase returns the debounce state.
func (s *Scanner) Phase() Phase { return s.phase }

// Pulses returns the debounce counter.
func (s *Scanner) Pulses() int { return s.pulses }

// Latched returns the tentative press coordinate.
func (s *Scanner) Latched() (row int, mask uint8) { return s.y, s.x }
