// Package primary defines the primary ports (driving interfaces) for the
// application. CLI commands and HTTP handlers call these; services in
// internal/app implement them.
package primary

import (
	"context"
	"time"
)

// GeneratorService defines the primary port for dataset generation.
type GeneratorService interface {
	// Generate builds a full synthetic dataset and persists it as the
	// current snapshot, replacing any previous one.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	Seed   int64
	Counts map[string]int // person type -> count; nil selects the defaults
}

// GenerateResponse summarizes a completed generation run.
type GenerateResponse struct {
	RunID        string
	Seed         int64
	TotalRecords int
	CountsByType map[string]int
	Elapsed      time.Duration
}
