package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/wire"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cobra.Command {
	var seed int64
	var counts []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic season dataset",
		Long: `Generate the full synthetic dataset and store it as the current
snapshot, replacing any previous one. The same seed always produces the
same records.

Examples:
  nusuk generate                                 # default population, seed from config
  nusuk generate --seed 7
  nusuk generate --count pilgrim_external=1000 --count government=50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := applyDataset()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Seed()
			}

			countOverrides, err := parseCounts(counts, cfg.Counts)
			if err != nil {
				return err
			}

			return wire.GeneratorAdapter().Generate(cmd.Context(), seed, countOverrides)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default from config)")
	cmd.Flags().StringArrayVar(&counts, "count", nil, "Population override, type=count (repeatable)")
	cmd.Flags().StringVar(&datasetFlag, "dataset", "", "Snapshot file path")

	return cmd
}

// parseCounts merges --count flags over the config-level overrides.
// Returns nil when neither is present so the service uses its defaults.
func parseCounts(flags []string, fromConfig map[string]int) (map[string]int, error) {
	if len(flags) == 0 {
		if len(fromConfig) == 0 {
			return nil, nil
		}
		return fromConfig, nil
	}

	counts := make(map[string]int)
	for personType, count := range fromConfig {
		counts[personType] = count
	}
	for _, flag := range flags {
		personType, value, ok := strings.Cut(flag, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --count %q, want type=count", flag)
		}
		if !models.IsValidPersonType(personType) {
			return nil, fmt.Errorf("unknown person type %q in --count", personType)
		}
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", flag, err)
		}
		counts[personType] = count
	}
	return counts, nil
}
