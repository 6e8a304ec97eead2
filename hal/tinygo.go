//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger   *uartLogger
	led      *pinLED
	solenoid *pinSolenoid
	matrix   *portMatrix
	delay    sleepDelay
	status   Status
}

// flickerDelay holds each digit lit; four rows at this delay refresh the
// display at roughly 1kHz.
const flickerDelay = 250 * time.Microsecond

// New returns the Pico board HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Segments a..dp on GP2..GP9, digit/row select GP10..GP13 (active-low),
// keypad columns GP14..GP17 (pulled down), solenoid driver GP18 (active-low),
// optional HD44780 status LCD on I2C1 (SDA GP26 / SCL GP27).
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	led, err := newPinLED(newMachinePin("LED", machine.LED))
	if err != nil {
		printErrForever(logger, "led: "+err.Error())
	}
	sol, err := newPinSolenoid(newMachinePin("SOLENOID", machine.GP18), true)
	if err != nil {
		printErrForever(logger, "solenoid: "+err.Error())
	}
	matrix, err := newPortMatrix(
		machinePort("SEG", machine.GP2, machine.GP3, machine.GP4, machine.GP5,
			machine.GP6, machine.GP7, machine.GP8, machine.GP9),
		machinePort("ROW", machine.GP10, machine.GP11, machine.GP12, machine.GP13),
		machinePort("COL", machine.GP14, machine.GP15, machine.GP16, machine.GP17),
	)
	if err != nil {
		printErrForever(logger, err.Error())
	}

	return &tinyGoHAL{
		logger:   logger,
		led:      led,
		solenoid: sol,
		matrix:   matrix,
		delay:    sleepDelay{d: flickerDelay},
		status:   newStatusLCD(logger),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) LED() LED           { return h.led }
func (h *tinyGoHAL) Solenoid() Solenoid { return h.solenoid }
func (h *tinyGoHAL) Display() Display   { return h.matrix }
func (h *tinyGoHAL) Keypad() Keypad     { return h.matrix }
func (h *tinyGoHAL) Delayer() Delayer   { return h.delay }
func (h *tinyGoHAL) Status() Status     { return h.status }

// printErrForever prints msg to the UART at 1Hz. It blocks forever.
func printErrForever(l Logger, msg string) {
	for {
		l.WriteLineString(msg)
		time.Sleep(time.Second)
	}
}
