package keypad

import "fmt"

// EventKind discriminates the values a scanner tick can produce.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventOpen
	EventLock
	EventDigit
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventOpen:
		return "open"
	case EventLock:
		return "lock"
	case EventDigit:
		return "digit"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one accepted key. Code is set for EventDigit only and has already
// been appended to the display buffer when the event is returned.
type Event struct {
	Kind EventKind
	Code uint8
}

var (
	None = Event{Kind: EventNone}
	Open = Event{Kind: EventOpen}
	Lock = Event{Kind: EventLock}
)

// Digit returns the event for an appended glyph code.
func Digit(code uint8) Event { return Event{Kind: EventDigit, Code: code} }

func (e Event) String() string {
	if e.Kind == EventDigit {
		return fmt.Sprintf("digit(%d)", e.Code)
	}
	return e.Kind.String()
}
