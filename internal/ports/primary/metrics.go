package primary

import (
	"context"
	"time"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/core/verify"
)

// MetricsService defines the primary port for read-only dataset
// aggregation. All operations evaluate against the loaded snapshot and
// never mutate it.
type MetricsService interface {
	// GetMetrics computes funnel, health, and time-series metrics as of a
	// date over the filtered subset.
	GetMetrics(ctx context.Context, req MetricsRequest) (*MetricsResponse, error)

	// GetProviderMetrics computes per-provider delivery metrics as of a
	// date. Government staff are excluded.
	GetProviderMetrics(ctx context.Context, asOf time.Time) ([]funnel.ProviderStats, error)

	// VerifyDataset runs structural integrity checks over the snapshot.
	VerifyDataset(ctx context.Context) ([]verify.Check, error)

	// DatasetInfo returns the provenance of the loaded snapshot.
	DatasetInfo(ctx context.Context) (*DatasetInfo, error)
}

// MetricsRequest contains parameters for a metrics evaluation.
type MetricsRequest struct {
	AsOf    time.Time
	Filters funnel.Filters
	ByType  bool // also compute a per-person-type breakdown
}

// MetricsResponse contains the evaluation result.
type MetricsResponse struct {
	AsOf    time.Time
	Result  *funnel.Result
	ByType  map[string]*funnel.Result // nil unless requested
	Elapsed time.Duration
}

// DatasetInfo describes the snapshot a metrics service is serving.
type DatasetInfo struct {
	RunID        string
	Seed         int64
	GeneratedAt  time.Time
	TotalRecords int
	CountsByType map[string]int
}
