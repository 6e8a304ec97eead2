//go:build !tinygo

// Package cli provides the host command line of the lockbox simulator.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"lockbox/app"
	"lockbox/hal"
	"lockbox/internal/buildinfo"
	"lockbox/internal/config"
	"lockbox/internal/keyscript"
	"lockbox/internal/logging"
	"lockbox/internal/record"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lockbox",
	Short: "Keypad and solenoid lockbox firmware, running on the host.",
	Long: `lockbox runs the lockbox firmware against a simulated board, ` +
		`headless or in a window, or against a Raspberry Pi wired to the ` +
		`keypad, display and solenoid. Settings come from LOCKBOX_* ` +
		`environment variables, an optional .env file, and flags.`,
	SilenceUsage: true,
}

var envFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env",
		"Load LOCKBOX_* settings from this file if it exists.")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build stamp.",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Long())
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Exit handlers, such as the trace flush, run before the
// process ends.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// session is what one firmware run needs besides the HAL.
type session struct {
	cfg config.Config
	rec *record.Recorder
	out io.Writer
}

func newSession(cfg config.Config, out io.Writer) (*session, error) {
	s := &session{cfg: cfg, out: out}
	if _, err := keyscript.Parse(cfg.Keys); err != nil {
		return nil, err
	}
	if cfg.RecordPath != "" {
		path := cfg.RecordPath
		if path == "auto" {
			path = ""
		}
		s.rec = record.New(path)
		if err := s.rec.Init(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newApp returns the firmware constructor handed to the HAL runners.
func (s *session) newApp(h hal.HAL) func() error {
	log := logging.New(h.Logger(), s.cfg.Level())
	ac := app.Config{
		DebouncePulses: s.cfg.DebouncePulses,
		Lock:           s.cfg.Lock(),
		TicksPerStep:   s.cfg.TicksPerStep,
		Logger:         log,
	}
	if s.rec != nil {
		ac.Observers = append(ac.Observers, s.rec)
		log.Info("recording trace", "path", s.rec.Path(), "session", s.rec.Session())
	}

	steps, _ := keyscript.Parse(s.cfg.Keys)
	if len(steps) > 0 {
		if kb, ok := h.(hal.KeyInjector); ok {
			p := keyscript.NewPlayer(kb, steps,
				keyscript.DefaultTiming(s.cfg.DebouncePulses, s.cfg.Bounce))
			ac.BeforeTick = func(uint64) { p.Tick() }
			log.Info("playing keys", "script", keyscript.Format(steps), "ticks", p.Remaining())
		} else {
			log.Warn("board has no simulated keypad; ignoring key script")
		}
	}
	return app.NewWithConfig(h, ac)
}

func (s *session) close() {
	if s.rec == nil {
		return
	}
	if err := s.rec.Close(); err != nil {
		slog.Error("trace", "err", err)
	}
}

func (s *session) hostConfig() hal.HostConfig {
	return hal.HostConfig{
		FlickerDelay: s.cfg.FlickerDelay,
		Bounce:       s.cfg.Bounce,
		Out:          s.out,
	}
}
