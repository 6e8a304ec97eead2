package lockctl

import (
	"fmt"

	"lockbox/firmware/display"
)

// Passcode is the code that releases the lock, in entry order. It lives in
// memory only and reverts to the default on every restart.
type Passcode [display.Size]uint8

// DefaultPasscode is the code the firmware boots with.
var DefaultPasscode = Passcode{1, 2, 3, 4}

// ParsePasscode parses exactly four decimal digits.
func ParsePasscode(s string) (Passcode, error) {
	var p Passcode
	if len(s) != len(p) {
		return p, fmt.Errorf("passcode: want %d digits, got %q", len(p), s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Passcode{}, fmt.Errorf("passcode: %q is not a digit", c)
		}
		p[i] = c - '0'
	}
	return p, nil
}

const glyphChars = "0123456789AbCdL_ "

func (p Passcode) String() string {
	b := make([]byte, 0, len(p))
	for _, d := range p {
		// Captured non-digit glyphs are kept verbatim.
		if int(d) < len(glyphChars) {
			b = append(b, glyphChars[d])
		} else {
			b = append(b, '?')
		}
	}
	return string(b)
}
