package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/wire"
)

// MetricsCmd returns the metrics command.
func MetricsCmd() *cobra.Command {
	var asOf, phase string
	var personTypes, nationalities, providers, channels []string
	var byType bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show the card funnel as of a date",
		Long: `Compute funnel, health, and arrival metrics over the snapshot as of a
given date. Filters narrow the subset; dimensions combine with AND,
values within a dimension with OR.

Examples:
  nusuk metrics                                  # end of season
  nusuk metrics --as-of 2025-05-20
  nusuk metrics --phase arafah
  nusuk metrics --type pilgrim_external --nationality Egypt,Pakistan
  nusuk metrics --by-type`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := applyDataset(); err != nil {
				return err
			}
			date, err := resolveAsOf(asOf, phase)
			if err != nil {
				return err
			}
			filters := parseFilters(personTypes, nationalities, providers, channels)
			return wire.MetricsAdapter().Funnel(cmd.Context(), date, filters, byType)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluation date, YYYY-MM-DD")
	cmd.Flags().StringVar(&phase, "phase", "", "Named season phase (pre-season, peak-arrival, arafah, ...)")
	cmd.Flags().StringArrayVar(&personTypes, "type", nil, "Filter by person type (repeatable, comma-separated)")
	cmd.Flags().StringArrayVar(&nationalities, "nationality", nil, "Filter by nationality")
	cmd.Flags().StringArrayVar(&providers, "provider", nil, "Filter by service provider")
	cmd.Flags().StringArrayVar(&channels, "channel", nil, "Filter by registration channel (B2B, B2C)")
	cmd.Flags().BoolVar(&byType, "by-type", false, "Also show a per-person-type breakdown")
	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}
