package main

import (
	"github.com/spf13/cobra"

	"questcal/internal/watch"
)

func newWatchCmd(g *globals) *cobra.Command {
	var input, output, schedule string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "re-export a schedule file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *g.cfg
			if input != "" {
				cfg.Watch.Input = input
			}
			if output != "" {
				cfg.Watch.Output = output
			}
			if schedule != "" {
				cfg.Watch.Cron = schedule
			}
			ctx, cancel := signalContext()
			defer cancel()
			return watch.Run(ctx, &cfg)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "Schedule text file to watch")
	cmd.Flags().StringVar(&output, "output", "", "Calendar file to write")
	cmd.Flags().StringVar(&schedule, "cron", "", `Check schedule, e.g. "*/5 * * * *"`)
	return cmd
}
