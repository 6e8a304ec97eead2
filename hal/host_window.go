//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"lockbox/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// WindowConfig controls the desktop simulator.
type WindowConfig struct {
	TPS   int
	Scale int
	Board HostConfig
}

const (
	panelW = 320
	panelH = 240

	digitX0   = 24
	digitY0   = 28
	digitW    = 40
	digitH    = 72
	digitGap  = 24
	segThick  = 7
	logTop    = 150
	logHeight = panelH - logTop
)

var (
	colorBG    = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	colorSegOn = color.RGBA{R: 0xff, G: 0x30, B: 0x20, A: 0xff}
	colorSegOf = color.RGBA{R: 0x30, G: 0x10, B: 0x10, A: 0xff}
	colorLabel = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	colorLEDOn = color.RGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	colorLogBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

// RunWindow starts a desktop window that shows the display, LED and
// solenoid, and turns PC keys into keypad presses. It blocks until the
// window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	cfg.Board.Quiet = true

	h := newHost(cfg.Board)
	g := &hostGame{
		h:  h,
		fb: newHostFramebuffer(panelW, panelH),
		kb: newHostKeyboard(h.matrix),
	}
	g.panel = newFBDisplay(g.fb, 0, logTop, colorBG)
	g.logView = newFBDisplay(g.fb, logTop, logHeight, colorLogBG)
	g.term = tinyterm.NewTerminal(g.logView)
	g.term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	h.logger.setTap(g.queueLine)
	g.step = newApp(h)

	ebiten.SetWindowTitle("Lockbox (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(panelW*cfg.Scale, panelH*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	fb   *hostFramebuffer
	kb   *hostKeyboard
	step func() error

	panel   *fbDisplay
	logView *fbDisplay
	term    *tinyterm.Terminal

	mu      sync.Mutex
	pending []string

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) queueLine(line string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, strings.TrimRight(line, "\n"))
}

func (g *hostGame) Update() error {
	g.kb.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	g.drawPanel()
	g.drawLog()

	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, panelW, panelH))
		g.scratch = make([]byte, len(g.fb.buf))
		g.fbImg = ebiten.NewImage(panelW, panelH)
	}
	g.fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := pixelAt(src, i).RGBA()
		j := (i / 2) * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return panelW, panelH
}

func (g *hostGame) drawPanel() {
	_ = g.panel.FillRectangle(0, 0, panelW, logTop, colorBG)

	digits := g.h.matrix.snapshot()
	for k, pattern := range digits {
		drawDigit(g.panel, digitX0+k*(digitW+digitGap), digitY0, pattern)
	}

	tinyfont.WriteLine(g.panel, &proggy.TinySZ8pt7b, 8, 14, "LOCKBOX  0-9 digits  A open  B lock", colorLabel)

	led := colorSegOf
	if g.h.led.on() {
		led = colorLEDOn
	}
	_ = g.panel.FillRectangle(24, 118, 12, 12, led)
	tinyfont.WriteLine(g.panel, &proggy.TinySZ8pt7b, 42, 128, "LED", colorLabel)

	bolt := "BOLT: LOCKED"
	if g.h.solenoid.energized() {
		bolt = "BOLT: RETRACTED"
	}
	tinyfont.WriteLine(g.panel, &proggy.TinySZ8pt7b, 120, 128, bolt, colorLabel)

	status := g.h.status.snapshot()
	tinyfont.WriteLine(g.panel, &proggy.TinySZ8pt7b, 8, 142, status[0]+"  "+status[1], colorLabel)
}

func (g *hostGame) drawLog() {
	g.mu.Lock()
	lines := g.pending
	g.pending = nil
	g.mu.Unlock()

	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		fmt.Fprintf(g.term, "\n%s", line)
	}
	g.term.Display()
}

// drawDigit paints one seven-segment digit with its top-left corner at (x, y).
func drawDigit(d *fbDisplay, x, y int, pattern uint8) {
	t := segThick
	w := digitW
	h := digitH
	bars := [...]struct {
		seg            Segment
		x0, y0, x1, y1 int
	}{
		{SegA, x + t, y, x + w - t, y + t},
		{SegB, x + w - t, y + t, x + w, y + h/2},
		{SegC, x + w - t, y + h/2, x + w, y + h - t},
		{SegD, x + t, y + h - t, x + w - t, y + h},
		{SegE, x, y + h/2, x + t, y + h - t},
		{SegF, x, y + t, x + t, y + h/2},
		{SegG, x + t, y + h/2 - t/2, x + w - t, y + h/2 + t/2},
		{SegDP, x + w + 4, y + h - t, x + w + 4 + t, y + h},
	}
	for _, b := range bars {
		c := colorSegOf
		if SegmentLit(pattern, b.seg) {
			c = colorSegOn
		}
		_ = d.FillRectangle(int16(b.x0), int16(b.y0), int16(b.x1-b.x0), int16(b.y1-b.y0), c)
	}
}
