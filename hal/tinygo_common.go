//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

// machinePin adapts a TinyGo pin to GPIOPin.
type machinePin struct {
	name string
	pin  machine.Pin
}

func newMachinePin(name string, pin machine.Pin) *machinePin {
	return &machinePin{name: name, pin: pin}
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch mode {
	case GPIOModeOutput:
		m = machine.PinOutput
	case GPIOModeInput:
		switch pull {
		case GPIOPullNone:
			m = machine.PinInput
		case GPIOPullUp:
			m = machine.PinInputPullup
		case GPIOPullDown:
			m = machine.PinInputPulldown
		default:
			return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

func machinePort(prefix string, pins ...machine.Pin) *pinPort {
	out := make([]GPIOPin, len(pins))
	for i, pin := range pins {
		out[i] = newMachinePin(fmt.Sprintf("%s%d", prefix, i), pin)
	}
	return newPinPort(out...)
}

type sleepDelay struct {
	d time.Duration
}

func (s sleepDelay) Delay() { time.Sleep(s.d) }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
