package hal

// Key codes produced by the keypad. Digits are their own value; the remaining
// codes double as seven-segment glyph codes.
const (
	KeyOpen  uint8 = 10 // A
	KeyLock  uint8 = 11 // b
	KeyC     uint8 = 12
	KeyD     uint8 = 13
	KeyStar  uint8 = 14 // shown as L
	KeyHash  uint8 = 15 // shown as _
	KeyBlank uint8 = 16
)

// keyLayout maps (row, column mask) to a key code. Only single-bit masks
// (1, 2, 4, 8) name a key; every other mask decodes to KeyBlank.
var keyLayout = [Rows][9]uint8{
	{KeyBlank, KeyOpen, 3, KeyBlank, 2, KeyBlank, KeyBlank, KeyBlank, 1},
	{KeyBlank, KeyLock, 6, KeyBlank, 5, KeyBlank, KeyBlank, KeyBlank, 4},
	{KeyBlank, KeyC, 9, KeyBlank, 8, KeyBlank, KeyBlank, KeyBlank, 7},
	{KeyBlank, KeyD, KeyHash, KeyBlank, 0, KeyBlank, KeyBlank, KeyBlank, KeyStar},
}

// KeyAt decodes a column mask read on row.
func KeyAt(row int, mask uint8) uint8 {
	if row < 0 || row >= Rows || int(mask) >= len(keyLayout[0]) {
		return KeyBlank
	}
	return keyLayout[row][mask]
}

// Locate returns the matrix position of a key code.
func Locate(code uint8) (row int, mask uint8, ok bool) {
	if code == KeyBlank {
		return 0, 0, false
	}
	for r := 0; r < Rows; r++ {
		for _, m := range [...]uint8{1, 2, 4, 8} {
			if keyLayout[r][m] == code {
				return r, m, true
			}
		}
	}
	return 0, 0, false
}
