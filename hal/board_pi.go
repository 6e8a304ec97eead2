//go:build linux && arm && rpi && !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Raspberry Pi wiring, BCM numbering.
var (
	piSegmentPins = []int{2, 3, 4, 17, 27, 22, 10, 9} // a..g, dp
	piRowPins     = []int{5, 6, 13, 19}
	piColumnPins  = []int{26, 16, 20, 21}
)

const (
	piSolenoidPin = 12
	piLEDPin      = 18
	piFlicker     = 250 * time.Microsecond
)

type periphPin struct {
	name string
	pin  gpio.PinIO
}

func (p *periphPin) Name() string { return p.name }

func (p *periphPin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull) error {
	switch mode {
	case GPIOModeOutput:
		return p.pin.Out(gpio.Low)
	case GPIOModeInput:
		pp := gpio.Float
		switch pull {
		case GPIOPullUp:
			pp = gpio.PullUp
		case GPIOPullDown:
			pp = gpio.PullDown
		}
		return p.pin.In(pp, gpio.NoEdge)
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
}

func (p *periphPin) Read() (bool, error) { return p.pin.Read() == gpio.High, nil }

func (p *periphPin) Write(level bool) error { return p.pin.Out(gpio.Level(level)) }

func piPin(bcm int) (*periphPin, error) {
	name := fmt.Sprintf("GPIO%d", bcm)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("gpio: %s not found", name)
	}
	return &periphPin{name: name, pin: p}, nil
}

func piPort(bcm []int) (*pinPort, error) {
	pins := make([]GPIOPin, len(bcm))
	for i, n := range bcm {
		p, err := piPin(n)
		if err != nil {
			return nil, err
		}
		pins[i] = p
	}
	return newPinPort(pins...), nil
}

type piHAL struct {
	logger   *hostLogger
	led      *pinLED
	solenoid *pinSolenoid
	matrix   *portMatrix
	delay    hostDelay
}

// NewBoard returns the Raspberry Pi HAL.
func NewBoard() (HAL, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}

	segs, err := piPort(piSegmentPins)
	if err != nil {
		return nil, err
	}
	rows, err := piPort(piRowPins)
	if err != nil {
		return nil, err
	}
	cols, err := piPort(piColumnPins)
	if err != nil {
		return nil, err
	}
	matrix, err := newPortMatrix(segs, rows, cols)
	if err != nil {
		return nil, err
	}

	solPin, err := piPin(piSolenoidPin)
	if err != nil {
		return nil, err
	}
	sol, err := newPinSolenoid(solPin, true)
	if err != nil {
		return nil, fmt.Errorf("solenoid: %w", err)
	}
	ledPin, err := piPin(piLEDPin)
	if err != nil {
		return nil, err
	}
	led, err := newPinLED(ledPin)
	if err != nil {
		return nil, fmt.Errorf("led: %w", err)
	}

	return &piHAL{
		logger:   &hostLogger{w: os.Stdout},
		led:      led,
		solenoid: sol,
		matrix:   matrix,
		delay:    hostDelay{d: piFlicker},
	}, nil
}

func (h *piHAL) Logger() Logger     { return h.logger }
func (h *piHAL) LED() LED           { return h.led }
func (h *piHAL) Solenoid() Solenoid { return h.solenoid }
func (h *piHAL) Display() Display   { return h.matrix }
func (h *piHAL) Keypad() Keypad     { return h.matrix }
func (h *piHAL) Delayer() Delayer   { return h.delay }

// RunBoard drives the firmware on the board until ctx is done or step fails.
func RunBoard(ctx context.Context, newApp func(HAL) func() error) error {
	h, err := NewBoard()
	if err != nil {
		return err
	}
	step := newApp(h)
	for {
		select {
		case <-ctx.Done():
			h.Solenoid().Deenergize()
			return ctx.Err()
		default:
		}
		if err := step(); err != nil {
			return err
		}
	}
}
