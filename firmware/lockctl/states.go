package lockctl

import (
	"lockbox/firmware/display"
	"lockbox/firmware/keypad"
)

// state is one controller phase with only the counters it needs. tick
// returns the next state, or nil to stay.
type state interface {
	phase() Phase
	enter(c *Controller)
	tick(c *Controller, ev keypad.Event) state
}

// lockState waits for a code followed by the open key.
type lockState struct {
	failures int
}

func (*lockState) phase() Phase { return PhaseLock }

func (*lockState) enter(c *Controller) {
	c.led.On()
	c.buf.Set(display.BannerLocked)
}

func (s *lockState) tick(c *Controller, ev keypad.Event) state {
	if ev.Kind != keypad.EventOpen {
		return nil
	}
	entered := Passcode(c.buf.Recent())
	c.buf.ResetIndex()
	if entered == c.passcode {
		c.led.Off()
		return &solenoidState{}
	}
	s.failures++
	if s.failures >= c.cfg.MaxFailures {
		c.led.Off()
		return &downState{}
	}
	return nil
}

// solenoidState holds the bolt retracted for FiveSec ticks.
type solenoidState struct {
	wait int
}

func (*solenoidState) phase() Phase { return PhaseSolenoid }

func (*solenoidState) enter(c *Controller) {
	c.sol.Energize()
}

func (s *solenoidState) tick(c *Controller, _ keypad.Event) state {
	s.wait++
	if s.wait > c.cfg.FiveSec {
		c.sol.Deenergize()
		return &normalState{fresh: true}
	}
	return nil
}

// downState is the lockout: keypad frozen, banner shown, timed exit.
type downState struct {
	wait int
}

func (*downState) phase() Phase { return PhaseDown }

func (*downState) enter(c *Controller) {
	c.buf.Set(display.BannerLockout)
	c.frozen = true
}

func (s *downState) tick(c *Controller, _ keypad.Event) state {
	s.wait++
	if s.wait > c.cfg.LockoutFactor*c.cfg.FiveSec {
		c.frozen = false
		return &lockState{}
	}
	return nil
}

// normalState is the unlocked box. The open key releases the bolt again
// without a code; the lock key proposes the displayed digits as the new code.
type normalState struct {
	// fresh is set when arriving from the solenoid release, the first entry
	// after unlocking.
	fresh bool
}

func (*normalState) phase() Phase { return PhaseNormal }

func (s *normalState) enter(c *Controller) {
	if s.fresh {
		c.buf.Set(display.BannerZero)
		c.buf.ResetIndex()
	}
}

func (*normalState) tick(c *Controller, ev keypad.Event) state {
	switch ev.Kind {
	case keypad.EventOpen:
		return &solenoidState{}
	case keypad.EventLock:
		// The display is captured as shown, typed or not.
		pending := Passcode(c.buf.Slots())
		c.buf.ResetIndex()
		return &prelockState{pending: pending}
	}
	return nil
}

// prelockState blinks the LED for FiveSec ticks before locking with the
// pending code. Typing a digit aborts.
type prelockState struct {
	wait    int
	pending Passcode
}

func (*prelockState) phase() Phase { return PhasePrelock }

func (*prelockState) enter(*Controller) {}

func (s *prelockState) tick(c *Controller, _ keypad.Event) state {
	if c.buf.Index() != 0 {
		c.buf.ResetIndex()
		c.led.Off()
		return &normalState{}
	}
	s.wait++
	if s.wait%c.cfg.BlinkEvery == 0 {
		c.led.Toggle()
	}
	if s.wait >= c.cfg.FiveSec {
		c.passcode = s.pending
		return &lockState{}
	}
	return nil
}
