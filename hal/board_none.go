//go:build !tinygo && !(linux && arm && rpi)

package hal

import (
	"context"
	"fmt"
)

// NewBoard returns the HAL of a physical board. This build has none; build
// with -tags rpi for linux/arm to drive a Raspberry Pi.
func NewBoard() (HAL, error) {
	return nil, fmt.Errorf("board: %w", ErrNotImplemented)
}

func RunBoard(_ context.Context, _ func(HAL) func() error) error {
	_, err := NewBoard()
	return err
}
