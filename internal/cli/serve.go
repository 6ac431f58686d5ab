package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/server"
	"github.com/example/nusuk/internal/wire"
)

// ServeCmd creates the serve command.
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dataset over HTTP",
		Long: `Start the HTTP API. Exposes the funnel metrics, provider
metrics, dataset info and person lookups under /api/v1, plus a
Prometheus endpoint at /metrics. Stops on SIGINT or SIGTERM.`,
		Example: `  nusuk serve
  nusuk serve --addr :9090 --dataset ./hajj.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := applyDataset()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(
				wire.MetricsService(),
				wire.PersonService(),
				wire.Logger(),
				server.NewMetrics(),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Path to the dataset file")

	return cmd
}
