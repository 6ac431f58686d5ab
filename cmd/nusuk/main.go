package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/cli"
	"github.com/example/nusuk/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "nusuk",
		Short:   "Nusuk - Hajj pilgrim card lifecycle simulator",
		Version: version.String(),
		Long: `Nusuk generates a synthetic Hajj season dataset (pilgrims, staff,
visas, card delivery stages, health events) and reports funnel metrics
over it. The same seed always produces the same dataset.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.MetricsCmd())
	rootCmd.AddCommand(cli.ProvidersCmd())
	rootCmd.AddCommand(cli.PersonCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.InfoCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
