// Package config holds the tunables of a lockbox run.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lockbox/firmware/keypad"
	"lockbox/firmware/lockctl"
	"lockbox/internal/logging"
)

// Config is the full set of run parameters. Durations inside the firmware
// are tick counts; only FlickerDelay and Hz relate ticks to wall time.
type Config struct {
	DebouncePulses int
	FiveSec        int
	BlinkEvery     int
	MaxFailures    int
	LockoutFactor  int
	// Passcode is the four-digit boot code.
	Passcode string

	FlickerDelay time.Duration
	// TicksPerStep ticks run on every step of the host runner, which steps
	// Hz times per second.
	TicksPerStep int
	Hz           int
	// Ticks stops a headless run after this many ticks. Zero runs forever.
	Ticks uint64
	// Keys is a key script played into the simulated keypad.
	Keys string
	// Bounce is the number of chattering reads after each simulated contact
	// change.
	Bounce int
	// RecordPath names the trace database. Empty disables recording.
	RecordPath string
	LogLevel   string
}

// Default returns the stock firmware timing, paced at 60 steps of 40 ticks
// per second.
func Default() Config {
	return Config{
		DebouncePulses: keypad.DefaultPulses,
		FiveSec:        lockctl.DefaultFiveSec,
		BlinkEvery:     lockctl.DefaultBlinkEvery,
		MaxFailures:    lockctl.DefaultMaxFailures,
		LockoutFactor:  lockctl.DefaultLockoutFactor,
		Passcode:       lockctl.DefaultPasscode.String(),
		TicksPerStep:   40,
		Hz:             60,
		LogLevel:       "info",
	}
}

var errNotPositive = errors.New("must be positive")

// Validate reports the first invalid field.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"debounce pulses", c.DebouncePulses},
		{"five-second ticks", c.FiveSec},
		{"blink period", c.BlinkEvery},
		{"max failures", c.MaxFailures},
		{"lockout factor", c.LockoutFactor},
		{"ticks per step", c.TicksPerStep},
		{"hz", c.Hz},
	} {
		if f.v <= 0 {
			return fmt.Errorf("config: %s %d: %w", f.name, f.v, errNotPositive)
		}
	}
	if c.Bounce < 0 {
		return fmt.Errorf("config: bounce %d: must not be negative", c.Bounce)
	}
	if c.FlickerDelay < 0 {
		return fmt.Errorf("config: flicker delay %v: must not be negative", c.FlickerDelay)
	}
	if _, err := lockctl.ParsePasscode(c.Passcode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	return nil
}

// Lock returns the controller configuration. c must be valid.
func (c Config) Lock() lockctl.Config {
	pc, err := lockctl.ParsePasscode(c.Passcode)
	lc := lockctl.Config{
		FiveSec:       c.FiveSec,
		BlinkEvery:    c.BlinkEvery,
		MaxFailures:   c.MaxFailures,
		LockoutFactor: c.LockoutFactor,
	}
	if err == nil {
		lc.Passcode = &pc
	}
	return lc
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	return logging.ParseLevel(c.LogLevel)
}
