package display

// patterns is the active-low segment table (bit 0 = a ... bit 6 = g,
// bit 7 = dp; a cleared bit lights the segment).
var patterns = [GlyphBlank + 1]uint8{
	0b11000000, // 0
	0b11111001, // 1
	0b10100100, // 2
	0b10110000, // 3
	0b10011001, // 4
	0b10010010, // 5
	0b10000010, // 6
	0b11111000, // 7
	0b10000000, // 8
	0b10010000, // 9
	0b10001000, // A
	0b10000011, // b
	0b11000110, // C
	0b10100001, // d
	0b11000111, // L
	0b11110111, // _
	0b11111111, // blank
}

// Pattern returns the segment pattern for a glyph code. Unknown codes are
// blank.
func Pattern(code uint8) uint8 {
	if int(code) >= len(patterns) {
		return patterns[GlyphBlank]
	}
	return patterns[code]
}
