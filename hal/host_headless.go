//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Steps uint64
	Board HostConfig
}

// RunHeadless runs the firmware without opening a window. It calls step Hz
// times per second until ctx is done, step fails, or Steps steps have run.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.Board)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			n++
			if cfg.Steps > 0 && n >= cfg.Steps {
				return nil
			}
		}
	}
}
