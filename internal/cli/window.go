//go:build !tinygo

package cli

import (
	"github.com/spf13/cobra"

	"lockbox/hal"
)

var (
	windowOpts  runFlags
	windowScale int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run the firmware in a desktop simulator window.",
	Long: `window shows the four digits, the LED and the bolt, with a log ` +
		`pane below. Digits type digits; A, O or Enter is the open key; ` +
		`B or L is the lock key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := windowOpts.load(cmd.Flags())
		if err != nil {
			return err
		}
		s, err := newSession(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer s.close()

		return hal.RunWindow(s.newApp, hal.WindowConfig{
			TPS:   cfg.Hz,
			Scale: windowScale,
			Board: s.hostConfig(),
		})
	},
}

func init() {
	rootCmd.AddCommand(windowCmd)
	windowOpts.register(windowCmd.Flags())
	windowCmd.Flags().IntVar(&windowScale, "scale", 2, "Window scale factor.")
}
