package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/nusuk/internal/core/affiliation"
	"github.com/example/nusuk/internal/core/health"
	"github.com/example/nusuk/internal/core/identity"
	"github.com/example/nusuk/internal/core/lifecycle"
	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/core/travel"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
	"github.com/example/nusuk/internal/ports/secondary"
)

// DefaultCounts is the standard season population per person type.
var DefaultCounts = map[string]int{
	models.TypePilgrimExternal: 150000,
	models.TypePilgrimInternal: 20000,
	models.TypeServiceWorker:   22000,
	models.TypeGovernment:      5000,
	models.TypeHealthcare:      3000,
}

// insertBatchSize bounds the number of rows per insert transaction.
const insertBatchSize = 5000

// GeneratorServiceImpl implements the GeneratorService interface.
type GeneratorServiceImpl struct {
	personRepo secondary.PersonRepository
	metaRepo   secondary.DatasetMetaRepository
	logger     *zap.Logger
}

// NewGeneratorService creates a new GeneratorService with injected
// dependencies.
func NewGeneratorService(
	personRepo secondary.PersonRepository,
	metaRepo secondary.DatasetMetaRepository,
	logger *zap.Logger,
) *GeneratorServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratorServiceImpl{
		personRepo: personRepo,
		metaRepo:   metaRepo,
		logger:     logger,
	}
}

// Generate builds a full synthetic dataset and persists it as the
// current snapshot, replacing any previous one. The same seed and counts
// always produce the same records.
func (s *GeneratorServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	counts := req.Counts
	if counts == nil {
		counts = DefaultCounts
	}
	for personType, count := range counts {
		if !models.IsValidPersonType(personType) {
			return nil, fmt.Errorf("unknown person type %q", personType)
		}
		if count < 0 {
			return nil, fmt.Errorf("negative count %d for %s", count, personType)
		}
	}

	started := time.Now()
	persons, err := buildPopulation(req.Seed, counts)
	if err != nil {
		return nil, err
	}
	s.logger.Info("population generated",
		zap.Int64("seed", req.Seed),
		zap.Int("records", len(persons)),
		zap.Duration("elapsed", time.Since(started)))

	if err := s.personRepo.Reset(ctx); err != nil {
		return nil, err
	}
	for start := 0; start < len(persons); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(persons) {
			end = len(persons)
		}
		if err := s.personRepo.BulkInsert(ctx, persons[start:end]); err != nil {
			return nil, err
		}
	}

	countsByType := make(map[string]int, len(counts))
	for personType, count := range counts {
		countsByType[personType] = count
	}
	meta := &secondary.DatasetMetaRecord{
		RunID:        uuid.NewString(),
		Seed:         req.Seed,
		GeneratedAt:  time.Now().UTC(),
		TotalRecords: len(persons),
		CountsByType: countsByType,
	}
	if err := s.metaRepo.Put(ctx, meta); err != nil {
		return nil, err
	}

	s.logger.Info("snapshot written",
		zap.String("run_id", meta.RunID),
		zap.Int("records", meta.TotalRecords),
		zap.Duration("elapsed", time.Since(started)))

	return &primary.GenerateResponse{
		RunID:        meta.RunID,
		Seed:         req.Seed,
		TotalRecords: len(persons),
		CountsByType: countsByType,
		Elapsed:      time.Since(started),
	}, nil
}

// buildPopulation runs the full generation pipeline in memory. It is
// deterministic: every random draw comes from one source seeded once,
// and every pass visits persons in a fixed order.
func buildPopulation(seed int64, counts map[string]int) ([]*models.Person, error) {
	r := randutil.New(seed)

	sampler, err := identity.NewSampler()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, personType := range models.PersonTypes {
		total += counts[personType]
	}

	persons := make([]*models.Person, 0, total)
	personID := 1
	for _, personType := range models.PersonTypes {
		for i := 0; i < counts[personType]; i++ {
			p, err := sampler.Sample(r, personID, personType)
			if err != nil {
				return nil, err
			}
			persons = append(persons, p)
			personID++
		}
	}

	affiliation.Assign(r, persons)
	affiliation.LinkFamilies(r, persons)

	for _, p := range persons {
		travel.Assign(r, p)
		if err := lifecycle.Run(r, p); err != nil {
			return nil, err
		}
		health.Sample(r, p)
	}

	return persons, nil
}
