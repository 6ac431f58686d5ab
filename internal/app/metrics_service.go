package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/core/verify"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
	"github.com/example/nusuk/internal/ports/secondary"
	"github.com/example/nusuk/internal/season"
)

// MetricsServiceImpl implements the MetricsService interface. The
// snapshot is loaded once on first use and held in memory; results are
// memoized per (as-of, filters) pair. The snapshot itself is never
// mutated after load, so cached results stay valid for the process
// lifetime.
type MetricsServiceImpl struct {
	personRepo secondary.PersonRepository
	metaRepo   secondary.DatasetMetaRepository

	loadOnce sync.Once
	loadErr  error
	persons  []*models.Person

	mu      sync.RWMutex
	results map[string]*funnel.Result
}

// NewMetricsService creates a new MetricsService with injected
// dependencies.
func NewMetricsService(
	personRepo secondary.PersonRepository,
	metaRepo secondary.DatasetMetaRepository,
) *MetricsServiceImpl {
	return &MetricsServiceImpl{
		personRepo: personRepo,
		metaRepo:   metaRepo,
		results:    make(map[string]*funnel.Result),
	}
}

// snapshot loads the dataset on first use.
func (s *MetricsServiceImpl) snapshot(ctx context.Context) ([]*models.Person, error) {
	s.loadOnce.Do(func() {
		persons, err := s.personRepo.LoadAll(ctx)
		if err != nil {
			s.loadErr = err
			return
		}
		if len(persons) == 0 {
			s.loadErr = ErrNoDataset
			return
		}
		s.persons = persons
	})
	return s.persons, s.loadErr
}

// GetMetrics computes funnel, health, and time-series metrics as of a
// date over the filtered subset.
func (s *MetricsServiceImpl) GetMetrics(ctx context.Context, req primary.MetricsRequest) (*primary.MetricsResponse, error) {
	persons, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	asOf := season.Day(req.AsOf)
	key := asOf.Format("2006-01-02") + "|" + req.Filters.Key()

	s.mu.RLock()
	result, hit := s.results[key]
	s.mu.RUnlock()
	if !hit {
		result = funnel.Compute(persons, asOf, req.Filters)
		s.mu.Lock()
		s.results[key] = result
		s.mu.Unlock()
	}

	resp := &primary.MetricsResponse{
		AsOf:    asOf,
		Result:  result,
		Elapsed: time.Since(started),
	}
	if req.ByType {
		resp.ByType = funnel.ComputeByType(persons, asOf)
	}
	return resp, nil
}

// GetProviderMetrics computes per-provider delivery metrics as of a
// date.
func (s *MetricsServiceImpl) GetProviderMetrics(ctx context.Context, asOf time.Time) ([]funnel.ProviderStats, error) {
	persons, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return funnel.ComputeProviders(persons, season.Day(asOf)), nil
}

// VerifyDataset runs structural integrity checks over the snapshot.
func (s *MetricsServiceImpl) VerifyDataset(ctx context.Context) ([]verify.Check, error) {
	persons, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return verify.Run(persons), nil
}

// DatasetInfo returns the provenance of the loaded snapshot.
func (s *MetricsServiceImpl) DatasetInfo(ctx context.Context) (*primary.DatasetInfo, error) {
	meta, err := s.metaRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, ErrNoDataset
	}
	return &primary.DatasetInfo{
		RunID:        meta.RunID,
		Seed:         meta.Seed,
		GeneratedAt:  meta.GeneratedAt,
		TotalRecords: meta.TotalRecords,
		CountsByType: meta.CountsByType,
	}, nil
}
