//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

// statusLCD shows the lock state on a 16x2 HD44780 behind an I2C backpack.
type statusLCD struct {
	lcd hd44780i2c.Device
	buf []byte
}

// newStatusLCD returns nil when no LCD is wired; the firmware runs without it.
func newStatusLCD(log Logger) Status {
	err := machine.I2C1.Configure(machine.I2CConfig{
		SDA: machine.GP26,
		SCL: machine.GP27,
	})
	if err != nil {
		log.WriteLineString("status lcd: configure I2C: " + err.Error())
		return nil
	}

	// Common backpack addresses.
	for _, addr := range []uint8{0x27, 0x3F} {
		if err := machine.I2C1.Tx(uint16(addr), nil, []byte{0}); err != nil {
			continue
		}
		dev := hd44780i2c.New(machine.I2C1, addr)
		dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		dev.ClearDisplay()
		// Preallocated so status updates never allocate.
		return &statusLCD{lcd: dev, buf: make([]byte, 0, 40)}
	}
	log.WriteLineString("status lcd: not found on addresses: 0x27, 0x3f")
	return nil
}

func (s *statusLCD) ShowStatus(line1, line2 string) {
	s.buf = s.buf[:0]
	s.buf = appendPadded(s.buf, line1, 16)
	s.buf = append(s.buf, '\n')
	s.buf = appendPadded(s.buf, line2, 16)
	s.lcd.SetCursor(0, 0)
	s.lcd.Print(s.buf)
}

func appendPadded(dst []byte, s string, width int) []byte {
	if len(s) > width {
		s = s[:width]
	}
	dst = append(dst, s...)
	for i := len(s); i < width; i++ {
		dst = append(dst, ' ')
	}
	return dst
}
