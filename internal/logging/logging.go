// Package logging builds structured loggers on top of a HAL line sink.
package logging

import (
	"bytes"
	"io"
	"log/slog"

	"lockbox/hal"
)

// New returns a text slog.Logger writing one record per line to l.
func New(l hal.Logger, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(Writer(l), &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel maps debug, info, warn and error to their slog levels. Anything
// else is info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

type lineWriter struct {
	l hal.Logger
}

// Writer adapts l to io.Writer. Each Write is split into lines.
func Writer(l hal.Logger) io.Writer {
	return &lineWriter{l: l}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			w.l.WriteLineBytes(p)
			break
		}
		w.l.WriteLineBytes(p[:i])
		p = p[i+1:]
	}
	return n, nil
}
