//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// HostConfig tunes the simulated board.
type HostConfig struct {
	// FlickerDelay is slept once per render cycle. Zero lets the runner
	// alone pace the loop.
	FlickerDelay time.Duration
	// Bounce is the number of chattering column reads after every contact
	// change.
	Bounce int
	// Out receives log lines. Defaults to stdout.
	Out io.Writer
	// Quiet suppresses the per-pin trace lines.
	Quiet bool
}

type hostHAL struct {
	logger   *hostLogger
	led      *hostLED
	solenoid *hostSolenoid
	matrix   *hostMatrix
	delay    hostDelay
	status   *hostStatus
}

// New returns a host HAL implementation.
func New() HAL {
	return newHost(HostConfig{})
}

// NewWithConfig returns a host HAL implementation using cfg.
func NewWithConfig(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := &hostLogger{w: out}
	trace := logger
	if cfg.Quiet {
		trace = nil
	}

	ledPin := newVirtualPin("LED", GPIOCapOutput)
	_ = ledPin.Configure(GPIOModeOutput, GPIOPullNone)
	solPin := newVirtualPin("SOLENOID", GPIOCapOutput)
	_ = solPin.Configure(GPIOModeOutput, GPIOPullNone)
	// The driver stage is active-low: the pin idles high.
	_ = solPin.Write(true)

	return &hostHAL{
		logger:   logger,
		led:      &hostLED{pin: ledPin, logger: trace},
		solenoid: &hostSolenoid{pin: solPin, logger: trace},
		matrix:   newHostMatrix(cfg.Bounce),
		delay:    hostDelay{d: cfg.FlickerDelay},
		status:   &hostStatus{},
	}
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LED() LED           { return h.led }
func (h *hostHAL) Solenoid() Solenoid { return h.solenoid }
func (h *hostHAL) Display() Display   { return h.matrix }
func (h *hostHAL) Keypad() Keypad     { return h.matrix }
func (h *hostHAL) Delayer() Delayer   { return h.delay }
func (h *hostHAL) Status() Status     { return h.status }

func (h *hostHAL) Press(row int, mask uint8) { h.matrix.Press(row, mask) }
func (h *hostHAL) Release()                  { h.matrix.Release() }

type hostLogger struct {
	mu  sync.Mutex
	w   io.Writer
	tap func(line string)
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
	if l.tap != nil {
		l.tap(s)
	}
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func (l *hostLogger) setTap(fn func(line string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tap = fn
}

type hostLED struct {
	pin    *virtualPin
	logger *hostLogger
}

func (l *hostLED) High() {
	_ = l.pin.Write(true)
	if l.logger != nil {
		l.logger.WriteLineString("led: HIGH")
	}
}

func (l *hostLED) Low() {
	_ = l.pin.Write(false)
	if l.logger != nil {
		l.logger.WriteLineString("led: LOW")
	}
}

func (l *hostLED) on() bool {
	level, _ := l.pin.Read()
	return level
}

type hostSolenoid struct {
	pin    *virtualPin
	logger *hostLogger
}

func (s *hostSolenoid) Energize() {
	_ = s.pin.Write(false)
	if s.logger != nil {
		s.logger.WriteLineString("solenoid: ENERGIZED")
	}
}

func (s *hostSolenoid) Deenergize() {
	_ = s.pin.Write(true)
	if s.logger != nil {
		s.logger.WriteLineString("solenoid: RELEASED")
	}
}

func (s *hostSolenoid) energized() bool {
	level, _ := s.pin.Read()
	return !level
}

type hostDelay struct {
	d time.Duration
}

func (d hostDelay) Delay() {
	if d.d > 0 {
		time.Sleep(d.d)
	}
}

type hostStatus struct {
	mu    sync.Mutex
	lines [2]string
}

func (s *hostStatus) ShowStatus(line1, line2 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = [2]string{line1, line2}
}

func (s *hostStatus) snapshot() [2]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}
