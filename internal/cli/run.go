//go:build !tinygo

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"lockbox/hal"
)

var (
	runOpts  runFlags
	runTicks uint64
	runBoard string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the firmware without a window.",
	Long: `run drives the firmware from a ticker. On the simulated board ` +
		`(--board host) the log shows LED and solenoid changes and --keys ` +
		`types a key script. --board pi drives real hardware.`,
	Example: `  lockbox run --keys "1234O" --ticks 20000
  lockbox run --keys "1234O..9876L" --five-sec 200 --bounce 6 --record auto`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := runOpts.load(cmd.Flags())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("ticks") {
			cfg.Ticks = runTicks
		}

		s, err := newSession(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer s.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		switch runBoard {
		case "host":
			err = hal.RunHeadless(ctx, s.newApp, hal.HeadlessConfig{
				Hz:    cfg.Hz,
				Steps: stepsFor(cfg.Ticks, cfg.TicksPerStep),
				Board: s.hostConfig(),
			})
		case "pi":
			err = hal.RunBoard(ctx, s.newApp)
		default:
			return fmt.Errorf("unknown board %q (want host or pi)", runBoard)
		}
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// stepsFor rounds ticks up to whole steps. Zero means no limit.
func stepsFor(ticks uint64, perStep int) uint64 {
	if ticks == 0 {
		return 0
	}
	n := uint64(perStep)
	return (ticks + n - 1) / n
}

func init() {
	rootCmd.AddCommand(runCmd)
	runOpts.register(runCmd.Flags())
	runCmd.Flags().Uint64Var(&runTicks, "ticks", 0, "Stop after this many ticks (0 runs until interrupted).")
	runCmd.Flags().StringVar(&runBoard, "board", "host", "host or pi.")
}
