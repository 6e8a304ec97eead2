//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) fill(x0, y0, x1, y1 int, pixel pixel565) {
	f.mu.Lock()
	defer f.mu.Unlock()

	x0 = clampInt(x0, 0, f.width)
	x1 = clampInt(x1, 0, f.width)
	y0 = clampInt(y0, 0, f.height)
	y1 = clampInt(y1, 0, f.height)
	for y := y0; y < y1; y++ {
		row := y * f.stride
		for x := x0; x < x1; x++ {
			pixel.put(f.buf, row+x*2)
		}
	}
}

// scroll moves the rows [y0+n, y1) up to y0 and clears the exposed rows.
func (f *hostFramebuffer) scroll(y0, y1, n int, pixel pixel565) {
	f.mu.Lock()
	if n > 0 && n < y1-y0 {
		copy(f.buf[y0*f.stride:(y1-n)*f.stride], f.buf[(y0+n)*f.stride:y1*f.stride])
	}
	f.mu.Unlock()
	if n > y1-y0 {
		n = y1 - y0
	}
	f.fill(0, y1-n, f.width, y1, pixel)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// fbDisplay exposes a horizontal band of the framebuffer as a TinyGo
// display so tinyfont and tinyterm can draw into it.
type fbDisplay struct {
	fb     *hostFramebuffer
	y0, h  int
	bg     color.RGBA
	scroll int16
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb *hostFramebuffer, y0, h int, bg color.RGBA) *fbDisplay {
	return &fbDisplay{fb: fb, y0: y0, h: h, bg: bg}
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.h)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || int(x) >= d.fb.width || y < 0 || int(y) >= d.h {
		return
	}
	px := int(x)
	py := d.y0 + int(y)
	d.fb.fill(px, py, px+1, py+1, toPixel565(c))
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := int(x)
	y0 := clampInt(int(y), 0, d.h)
	y1 := clampInt(int(y)+int(height), 0, d.h)
	d.fb.fill(x0, d.y0+y0, x0+int(width), d.y0+y1, toPixel565(c))
	return nil
}

func (d *fbDisplay) ScrollUp(lines int16, bg color.RGBA) error {
	d.fb.scroll(d.y0, d.y0+d.h, int(lines), toPixel565(bg))
	return nil
}

func (d *fbDisplay) SetScroll(line int16) { d.scroll = line }

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
