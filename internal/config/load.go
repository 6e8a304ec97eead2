//go:build !tinygo

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDebouncePulses = "LOCKBOX_DEBOUNCE_PULSES"
	EnvFiveSec        = "LOCKBOX_FIVE_SEC"
	EnvBlinkEvery     = "LOCKBOX_BLINK_EVERY"
	EnvMaxFailures    = "LOCKBOX_MAX_FAILURES"
	EnvLockoutFactor  = "LOCKBOX_LOCKOUT_FACTOR"
	EnvPasscode       = "LOCKBOX_PASSCODE"
	EnvFlickerDelay   = "LOCKBOX_FLICKER_DELAY"
	EnvTicksPerStep   = "LOCKBOX_TICKS_PER_STEP"
	EnvHz             = "LOCKBOX_HZ"
	EnvTicks          = "LOCKBOX_TICKS"
	EnvKeys           = "LOCKBOX_KEYS"
	EnvBounce         = "LOCKBOX_BOUNCE"
	EnvRecord         = "LOCKBOX_RECORD"
	EnvLogLevel       = "LOCKBOX_LOG_LEVEL"
)

// Load starts from Default and applies LOCKBOX_* variables. envFile, when
// non-empty, is read first with godotenv; a missing file is not an error.
// Variables already set in the process environment win over the file. The
// result is not validated, so later overrides can still fix it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies the variables found by lookup on top of Default. Malformed
// numbers and durations are errors.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{EnvDebouncePulses, &c.DebouncePulses},
		{EnvFiveSec, &c.FiveSec},
		{EnvBlinkEvery, &c.BlinkEvery},
		{EnvMaxFailures, &c.MaxFailures},
		{EnvLockoutFactor, &c.LockoutFactor},
		{EnvTicksPerStep, &c.TicksPerStep},
		{EnvHz, &c.Hz},
		{EnvBounce, &c.Bounce},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvTicks); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvTicks, err)
		}
		c.Ticks = n
	}
	if v, ok := lookup(EnvFlickerDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvFlickerDelay, err)
		}
		c.FlickerDelay = d
	}
	if v, ok := lookup(EnvPasscode); ok && v != "" {
		c.Passcode = v
	}
	if v, ok := lookup(EnvKeys); ok {
		c.Keys = v
	}
	if v, ok := lookup(EnvRecord); ok {
		c.RecordPath = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return c, nil
}
