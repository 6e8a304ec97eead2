//go:build !tinygo

package cli

import (
	"github.com/spf13/pflag"

	"lockbox/internal/config"
)

// runFlags are the settings every firmware command accepts. Only flags set
// on the command line override the loaded configuration.
type runFlags struct {
	v config.Config
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	d := config.Default()
	fs.IntVar(&f.v.Hz, "hz", d.Hz, "Steps per second.")
	fs.IntVar(&f.v.TicksPerStep, "ticks-per-step", d.TicksPerStep, "Firmware ticks run on every step.")
	fs.IntVar(&f.v.DebouncePulses, "debounce", d.DebouncePulses, "Stable samples needed to accept a press or release.")
	fs.IntVar(&f.v.FiveSec, "five-sec", d.FiveSec, "Ticks the solenoid stays open; also the lock grace period.")
	fs.IntVar(&f.v.BlinkEvery, "blink", d.BlinkEvery, "Ticks between LED toggles while locking.")
	fs.IntVar(&f.v.MaxFailures, "max-failures", d.MaxFailures, "Wrong codes in a row that start a lockout.")
	fs.IntVar(&f.v.LockoutFactor, "lockout-factor", d.LockoutFactor, "Lockout length in multiples of --five-sec.")
	fs.StringVar(&f.v.Passcode, "passcode", d.Passcode, "Four-digit boot passcode.")
	fs.DurationVar(&f.v.FlickerDelay, "flicker", d.FlickerDelay, "Time each digit stays lit per tick.")
	fs.StringVar(&f.v.Keys, "keys", d.Keys, `Key script to type, e.g. "1234O".`)
	fs.IntVar(&f.v.Bounce, "bounce", d.Bounce, "Chattering reads after each simulated contact change.")
	fs.StringVar(&f.v.RecordPath, "record", d.RecordPath, `Record a SQLite trace to this file ("auto" picks a name).`)
	fs.StringVar(&f.v.LogLevel, "log-level", d.LogLevel, "debug, info, warn or error.")
}

// apply copies the changed flags onto c.
func (f *runFlags) apply(fs *pflag.FlagSet, c *config.Config) {
	set := map[string]func(){
		"hz":             func() { c.Hz = f.v.Hz },
		"ticks-per-step": func() { c.TicksPerStep = f.v.TicksPerStep },
		"debounce":       func() { c.DebouncePulses = f.v.DebouncePulses },
		"five-sec":       func() { c.FiveSec = f.v.FiveSec },
		"blink":          func() { c.BlinkEvery = f.v.BlinkEvery },
		"max-failures":   func() { c.MaxFailures = f.v.MaxFailures },
		"lockout-factor": func() { c.LockoutFactor = f.v.LockoutFactor },
		"passcode":       func() { c.Passcode = f.v.Passcode },
		"flicker":        func() { c.FlickerDelay = f.v.FlickerDelay },
		"keys":           func() { c.Keys = f.v.Keys },
		"bounce":         func() { c.Bounce = f.v.Bounce },
		"record":         func() { c.RecordPath = f.v.RecordPath },
		"log-level":      func() { c.LogLevel = f.v.LogLevel },
	}
	fs.Visit(func(fl *pflag.Flag) {
		if fn, ok := set[fl.Name]; ok {
			fn()
		}
	})
}

// load reads the environment and applies the flags.
func (f *runFlags) load(fs *pflag.FlagSet) (config.Config, error) {
	c, err := config.Load(envFile)
	if err != nil {
		return c, err
	}
	f.apply(fs, &c)
	return c, c.Validate()
}
