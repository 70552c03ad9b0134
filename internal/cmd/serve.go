package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/guttosm/pickship/internal/app"
	"github.com/spf13/cobra"
)

// CreateServeCommand returns the command that exposes the packer over HTTP.
func (f CommandFactory) CreateServeCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the pick-ship HTTP API",
		Long:  `Run the pick-ship HTTP API. POST /api/manifests packs an order; /healthz, /readyz and /metrics are served alongside.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := f.resolveConfig(cmd, flgs)

			engine, cleanup := f.NewApp(cfg)
			defer cleanup()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.NewServer(engine, cfg.Server.Port).RunContext(ctx)
		},
	}
	c.Flags().StringVar(&flgs.Port, flagMap.Port.Name, flagMap.Port.Value, flagMap.Port.Usage)
	return c
}
