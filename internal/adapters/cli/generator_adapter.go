package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
)

// GeneratorAdapter is a thin adapter that translates CLI operations to
// GeneratorService calls.
type GeneratorAdapter struct {
	service primary.GeneratorService
	out     io.Writer
}

// NewGeneratorAdapter creates a new GeneratorAdapter with the given
// service.
func NewGeneratorAdapter(service primary.GeneratorService, out io.Writer) *GeneratorAdapter {
	return &GeneratorAdapter{service: service, out: out}
}

// Generate runs a generation pass and reports the result.
func (a *GeneratorAdapter) Generate(ctx context.Context, seed int64, counts map[string]int) error {
	resp, err := a.service.Generate(ctx, primary.GenerateRequest{Seed: seed, Counts: counts})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Generated %d records (seed %d) in %s\n", resp.TotalRecords, resp.Seed, resp.Elapsed.Round(1e6))
	for _, personType := range models.PersonTypes {
		if count, ok := resp.CountsByType[personType]; ok {
			fmt.Fprintf(a.out, "  %-18s %d\n", personType, count)
		}
	}
	fmt.Fprintf(a.out, "Run ID: %s\n", resp.RunID)
	return nil
}
