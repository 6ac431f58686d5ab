package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/wire"
)

// ProvidersCmd returns the providers command.
func ProvidersCmd() *cobra.Command {
	var asOf, phase string

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Show per-provider delivery metrics",
		Long: `Compute delivery metrics per service provider as of a date, sorted by
assigned population. Government staff are excluded.

Examples:
  nusuk providers
  nusuk providers --phase arrival-deadline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := applyDataset(); err != nil {
				return err
			}
			date, err := resolveAsOf(asOf, phase)
			if err != nil {
				return err
			}
			return wire.MetricsAdapter().Providers(cmd.Context(), date)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&phase, "phase", "", "Named season phase")
	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}
