package app

import (
	"fmt"
	"log/slog"

	"lockbox/firmware/display"
	"lockbox/firmware/keypad"
	"lockbox/firmware/lockctl"
	"lockbox/hal"
	"lockbox/internal/buildinfo"
	"lockbox/internal/logging"
)

// Config wires the firmware to a HAL.
type Config struct {
	// DebouncePulses is the scanner threshold; zero selects the default.
	DebouncePulses int
	Lock           lockctl.Config
	// TicksPerStep is how many ticks one call of the step function runs.
	TicksPerStep int
	// BeforeTick runs ahead of every tick, before the scanner samples.
	BeforeTick func(tick uint64)
	// Logger defaults to an info-level logger on the HAL's line sink.
	Logger    *slog.Logger
	Observers []Observer
}

// Observer sees accepted keys and controller transitions with the tick they
// happened on.
type Observer interface {
	Key(tick uint64, ev keypad.Event)
	Transition(tick uint64, t lockctl.Transition)
}

// System is the firmware: one display buffer shared by the scanner and the
// controller, advanced by Tick in strict alternation.
type System struct {
	buf    *display.Buffer
	scan   *keypad.Scanner
	ctrl   *lockctl.Controller
	tick   uint64
	log    *slog.Logger
	obs    []Observer
	status hal.Status
	before func(uint64)
}

// NewSystem builds the firmware on h. The display starts on the locked
// banner and the controller in the Lock state.
func NewSystem(h hal.HAL, cfg Config) *System {
	log := cfg.Logger
	if log == nil {
		log = logging.New(h.Logger(), slog.LevelInfo)
	}

	buf := display.New(display.BannerLocked)
	s := &System{
		buf:    buf,
		scan:   keypad.New(h.Display(), h.Keypad(), h.Delayer(), buf, cfg.DebouncePulses),
		ctrl:   lockctl.New(h.LED(), h.Solenoid(), buf, cfg.Lock),
		log:    log,
		obs:    cfg.Observers,
		before: cfg.BeforeTick,
	}
	if sp, ok := h.(hal.StatusProvider); ok {
		s.status = sp.Status()
	}
	s.ctrl.SetObserver(lockctl.ObserverFunc(s.transition))

	log.Info("lockbox boot", "build", buildinfo.Short(), "state", s.ctrl.Phase())
	s.showStatus()
	return s
}

// Tick runs one scheduler iteration: a scanner tick, then a controller tick
// consuming the scanner's event.
func (s *System) Tick() {
	s.tick++
	if s.before != nil {
		s.before(s.tick)
	}

	ev := s.scan.Tick(s.ctrl.Frozen())
	if ev.Kind != keypad.EventNone {
		s.log.Debug("key", "tick", s.tick, "event", ev, "buffer", fmtSlots(s.buf.Slots()))
		for _, o := range s.obs {
			o.Key(s.tick, ev)
		}
	}

	failures := s.ctrl.Failures()
	s.ctrl.Tick(ev)
	if n := s.ctrl.Failures(); n > failures {
		s.log.Warn("wrong passcode", "tick", s.tick, "failures", n)
		s.showStatus()
	}
}

// Step runs n ticks.
func (s *System) Step(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

func (s *System) transition(t lockctl.Transition) {
	attrs := []any{"tick", s.tick, "from", t.From, "to", t.To}
	switch t.To {
	case lockctl.PhaseDown:
		attrs = append(attrs, "failures", t.Failures)
		s.log.Warn("lockout", attrs...)
	case lockctl.PhaseLock:
		if t.From == lockctl.PhasePrelock {
			attrs = append(attrs, "passcode", "changed")
		}
		s.log.Info("transition", attrs...)
	default:
		s.log.Info("transition", attrs...)
	}
	for _, o := range s.obs {
		o.Transition(s.tick, t)
	}
	s.showStatus()
}

func (s *System) showStatus() {
	if s.status == nil {
		return
	}
	line2 := ""
	switch s.ctrl.Phase() {
	case lockctl.PhaseLock:
		line2 = fmt.Sprintf("tries %d", s.ctrl.Failures())
	case lockctl.PhaseDown:
		line2 = "keypad frozen"
	case lockctl.PhasePrelock:
		line2 = "type to cancel"
	}
	s.status.ShowStatus("state "+s.ctrl.Phase().String(), line2)
}

// Ticks returns the number of ticks run so far.
func (s *System) Ticks() uint64 { return s.tick }

// Controller returns the lock controller.
func (s *System) Controller() *lockctl.Controller { return s.ctrl }

// Scanner returns the keypad scanner.
func (s *System) Scanner() *keypad.Scanner { return s.scan }

// Buffer returns the shared display buffer.
func (s *System) Buffer() *display.Buffer { return s.buf }

func fmtSlots(v [display.Size]uint8) string {
	return lockctl.Passcode(v).String()
}

// New initializes the firmware with default config and returns its step
// function, which runs one tick per call.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the firmware and returns its step function.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	n := cfg.TicksPerStep
	if n <= 0 {
		n = 1
	}
	s := NewSystem(h, cfg)
	return func() error {
		s.Step(n)
		return nil
	}
}

// Run starts the firmware and loops forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	s := NewSystem(h, Config{})
	for {
		s.Tick()
	}
}
