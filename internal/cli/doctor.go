package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/wire"
)

// DoctorCmd returns the doctor command for dataset validation.
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the snapshot's structural integrity",
		Long: `Run integrity checks over the generated dataset: identifier
exclusivity, funnel containment, date ordering, health consistency,
affiliation rules, and family link structure.

Examples:
  nusuk doctor            # Full report
  nusuk doctor --quiet    # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := applyDataset(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if quiet {
				out = io.Discard
			}
			return wire.MetricsAdapterWithOutput(out).Doctor(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")
	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}

// InfoCmd returns the info command.
func InfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the provenance of the current snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := applyDataset(); err != nil {
				return err
			}
			return wire.MetricsAdapter().Info(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}
