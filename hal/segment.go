package hal

// Segment is one bar of a seven-segment digit, numbered by its bit in a
// segment pattern.
type Segment uint8

const (
	SegA Segment = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	SegDP
)

// SegmentLit reports whether seg is lit in an active-low pattern.
func SegmentLit(pattern uint8, seg Segment) bool {
	return pattern&(1<<seg) == 0
}
