// Package lockctl is the lock lifecycle: passcode check, timed release,
// lockout after repeated failures, and re-provisioning of the passcode.
package lockctl

import (
	"fmt"

	"lockbox/firmware/display"
	"lockbox/firmware/keypad"
	"lockbox/hal"
)

// Defaults assume a loop of about 2400 ticks per second, so FiveSec is five
// seconds of wall time.
const (
	DefaultFiveSec       = 12000
	DefaultBlinkEvery    = 1000
	DefaultMaxFailures   = 5
	DefaultLockoutFactor = 3
)

// Config sets the tick counts of the controller. Zero fields take defaults.
type Config struct {
	// FiveSec is the release time of the solenoid and the Prelock grace
	// period, in ticks.
	FiveSec int
	// BlinkEvery is the Prelock LED toggle period in ticks.
	BlinkEvery int
	// MaxFailures wrong codes in a row start a lockout.
	MaxFailures int
	// LockoutFactor times FiveSec is the lockout duration.
	LockoutFactor int
	// Passcode is the boot passcode. Nil selects DefaultPasscode.
	Passcode *Passcode
}

func (c Config) withDefaults() Config {
	if c.FiveSec <= 0 {
		c.FiveSec = DefaultFiveSec
	}
	if c.BlinkEvery <= 0 {
		c.BlinkEvery = DefaultBlinkEvery
	}
	if c.MaxFailures <= 0 {
		c.MaxFailures = DefaultMaxFailures
	}
	if c.LockoutFactor <= 0 {
		c.LockoutFactor = DefaultLockoutFactor
	}
	return c
}

// Phase names the controller state.
type Phase uint8

const (
	PhaseLock Phase = iota
	PhaseSolenoid
	PhaseDown
	PhaseNormal
	PhasePrelock
)

func (p Phase) String() string {
	switch p {
	case PhaseLock:
		return "lock"
	case PhaseSolenoid:
		return "solenoid"
	case PhaseDown:
		return "down"
	case PhaseNormal:
		return "normal"
	case PhasePrelock:
		return "prelock"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Transition describes one state change.
type Transition struct {
	From, To Phase
	// Failures is the wrong-code count of the state being left.
	Failures int
}

// Observer is notified after every transition, once entry actions ran.
type Observer interface {
	Transition(t Transition)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(t Transition)

func (f ObserverFunc) Transition(t Transition) { f(t) }

// Controller consumes keypad events and drives the solenoid and the LED.
type Controller struct {
	cfg      Config
	led      indicator
	sol      hal.Solenoid
	buf      *display.Buffer
	passcode Passcode
	frozen   bool
	state    state
	obs      Observer
}

// New returns a controller in the Lock state. Lock's entry actions (LED on,
// locked banner) run immediately.
func New(led hal.LED, sol hal.Solenoid, buf *display.Buffer, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		cfg:      cfg,
		led:      indicator{led: led},
		sol:      sol,
		buf:      buf,
		passcode: DefaultPasscode,
	}
	if cfg.Passcode != nil {
		c.passcode = *cfg.Passcode
	}
	c.enter(&lockState{})
	return c
}

// SetObserver installs o, replacing any previous observer.
func (c *Controller) SetObserver(o Observer) { c.obs = o }

// Tick advances the state machine by one tick. ev is consumed whether or not
// the current state acts on it.
func (c *Controller) Tick(ev keypad.Event) {
	next := c.state.tick(c, ev)
	if next == nil {
		return
	}
	t := Transition{From: c.state.phase(), To: next.phase()}
	if ls, ok := c.state.(*lockState); ok {
		t.Failures = ls.failures
	}
	c.enter(next)
	if c.obs != nil {
		c.obs.Transition(t)
	}
}

func (c *Controller) enter(s state) {
	c.state = s
	s.enter(c)
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.state.phase() }

// Frozen reports whether the keypad must not be sampled.
func (c *Controller) Frozen() bool { return c.frozen }

// Passcode returns the committed passcode.
func (c *Controller) Passcode() Passcode { return c.passcode }

// Failures returns the consecutive wrong-code count; it is only nonzero in
// the Lock state.
func (c *Controller) Failures() int {
	if ls, ok := c.state.(*lockState); ok {
		return ls.failures
	}
	return 0
}

// Wait returns the tick counter of timed states.
func (c *Controller) Wait() int {
	switch s := c.state.(type) {
	case *solenoidState:
		return s.wait
	case *downState:
		return s.wait
	case *prelockState:
		return s.wait
	}
	return 0
}

// Pending returns the passcode awaiting commit in the Prelock state.
func (c *Controller) Pending() (Passcode, bool) {
	if ps, ok := c.state.(*prelockState); ok {
		return ps.pending, true
	}
	return Passcode{}, false
}

// indicator remembers the LED level so it can toggle.
type indicator struct {
	led hal.LED
	on  bool
}

func (i *indicator) On() {
	i.on = true
	i.led.High()
}

func (i *indicator) Off() {
	i.on = false
	i.led.Low()
}

func (i *indicator) Toggle() {
	if i.on {
		i.Off()
	} else {
		i.On()
	}
}
