// Package display holds the four-digit buffer shared by the keypad scanner,
// which renders it and appends digits, and the lock controller, which writes
// banners into it.
package display

// Size is the number of digits on the display.
const Size = 4

// Glyph codes 0-9 are the decimal digits.
const (
	GlyphA          uint8 = 10
	Glyphb          uint8 = 11
	GlyphC          uint8 = 12
	Glyphd          uint8 = 13
	GlyphL          uint8 = 14
	GlyphUnderscore uint8 = 15
	GlyphBlank      uint8 = 16
)

// Banners written by the lock controller.
var (
	BannerLocked  = [Size]uint8{GlyphUnderscore, GlyphL, 0, GlyphC}               // _LOC
	BannerLockout = [Size]uint8{GlyphUnderscore, GlyphL, Glyphd, GlyphUnderscore} // _Ld_
	BannerZero    = [Size]uint8{0, 0, 0, 0}
)

// Buffer is a fixed ring of Size glyph codes with one write index.
//
// Append writes at the index and advances it modulo Size, so a fifth digit
// overwrites the oldest one. Nothing reports the wrap.
type Buffer struct {
	slots [Size]uint8
	next  int
}

// New returns a buffer showing init with the write index at slot 0.
func New(init [Size]uint8) *Buffer {
	b := &Buffer{}
	b.Set(init)
	return b
}

// At returns the glyph in slot k, or GlyphBlank when k is out of range.
func (b *Buffer) At(k int) uint8 {
	if k < 0 || k >= Size {
		return GlyphBlank
	}
	return b.slots[k]
}

// Append stores code at the write index and advances it.
func (b *Buffer) Append(code uint8) {
	b.slots[b.next] = clampGlyph(code)
	b.next = (b.next + 1) % Size
}

// Set overwrites every slot. The write index is left alone.
func (b *Buffer) Set(v [Size]uint8) {
	for i, c := range v {
		b.slots[i] = clampGlyph(c)
	}
}

// Slots returns the slots in display order.
func (b *Buffer) Slots() [Size]uint8 { return b.slots }

// Recent returns the slots in entry order, oldest first. With the write
// index at 0 this is the display order.
func (b *Buffer) Recent() [Size]uint8 {
	var out [Size]uint8
	for i := range out {
		out[i] = b.slots[(b.next+i)%Size]
	}
	return out
}

// Index returns the slot the next Append writes.
func (b *Buffer) Index() int { return b.next }

// ResetIndex moves the write index back to slot 0.
func (b *Buffer) ResetIndex() { b.next = 0 }

func clampGlyph(c uint8) uint8 {
	if c > GlyphBlank {
		return GlyphBlank
	}
	return c
}
