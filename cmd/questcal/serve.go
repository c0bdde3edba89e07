package main

import (
	"github.com/spf13/cobra"

	"questcal/internal/web"
)

func newServeCmd(g *globals) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the export API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *g.cfg
			if listen != "" {
				cfg.Listen = listen
			}
			ctx, cancel := signalContext()
			defer cancel()
			return web.StartServer(ctx, &cfg)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "HTTP listen address (overrides config if set)")
	return cmd
}
