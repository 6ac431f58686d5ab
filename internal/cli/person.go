package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/wire"
)

// PersonCmd returns the person command.
func PersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Inspect individual records",
	}

	cmd.AddCommand(personShowCmd())

	return cmd
}

func personShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [person-id]",
		Short: "Show one person with their full lifecycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid person ID %q", args[0])
			}
			if _, err := applyDataset(); err != nil {
				return err
			}
			return wire.PersonAdapter().Show(cmd.Context(), personID)
		},
	}

	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}
