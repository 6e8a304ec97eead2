package hal

import "image/color"

// pixel565 is one framebuffer pixel, stored little-endian as RGB565.
type pixel565 uint16

func toPixel565(c color.RGBA) pixel565 {
	r := uint16(c.R>>3) & 0x1F
	g := uint16(c.G>>2) & 0x3F
	b := uint16(c.B>>3) & 0x1F
	return pixel565(r<<11 | g<<5 | b)
}

func pixelAt(buf []byte, i int) pixel565 {
	return pixel565(uint16(buf[i]) | uint16(buf[i+1])<<8)
}

func (p pixel565) put(buf []byte, i int) {
	buf[i] = byte(p)
	buf[i+1] = byte(p >> 8)
}

// RGBA widens p back to 8 bits per channel. Full-scale channels stay 0xFF.
func (p pixel565) RGBA() color.RGBA {
	r := uint16(p>>11) & 0x1F
	g := uint16(p>>5) & 0x3F
	b := uint16(p) & 0x1F
	return color.RGBA{
		R: uint8(r * 255 / 31),
		G: uint8(g * 255 / 63),
		B: uint8(b * 255 / 31),
		A: 0xFF,
	}
}
