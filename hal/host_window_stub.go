//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop simulator.
type WindowConfig struct {
	TPS   int
	Scale int
	Board HostConfig
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
