package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Solenoid drives the lock bolt. Energize retracts the bolt.
type Solenoid interface {
	Energize()
	Deenergize()
}

var ErrNotImplemented = errors.New("not implemented")

// Rows is the number of multiplexed rows shared by the keypad and the display.
const Rows = 4

// Display is a multiplexed seven-segment display. Only the selected digit is lit.
//
// Segment patterns are active-low: a cleared bit lights the segment.
type Display interface {
	Blank()
	SelectRow(k int)
	WriteSegments(pattern uint8)
}

// Keypad is a matrix keypad scanned one row at a time.
type Keypad interface {
	// ReadColumns selects row and returns its 4-bit column mask.
	ReadColumns(row int) uint8
}

// Delayer holds the currently lit digit long enough to suppress flicker.
type Delayer interface {
	Delay()
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	Solenoid() Solenoid
	Display() Display
	Keypad() Keypad
	Delayer() Delayer
}

// KeyInjector closes keypad contacts from software. Simulated keypads
// implement it so scripts and windows can press keys.
type KeyInjector interface {
	Press(row int, mask uint8)
	Release()
}

// Status is an optional text display for the lock state, separate from the
// seven-segment digits.
type Status interface {
	ShowStatus(line1, line2 string)
}

// StatusProvider is implemented by HALs that carry a Status display.
type StatusProvider interface {
	Status() Status
}
