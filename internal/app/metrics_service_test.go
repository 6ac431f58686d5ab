package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/core/verify"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
	"github.com/example/nusuk/internal/ports/secondary"
	"github.com/example/nusuk/internal/season"
)

// seedSnapshot generates a small dataset into the mock repo and returns
// a metrics service over it.
func seedSnapshot(t *testing.T) (*MetricsServiceImpl, *mockPersonRepository) {
	t.Helper()
	repo := newMockPersonRepository()
	meta := &mockMetaRepository{}
	gen := NewGeneratorService(repo, meta, nil)
	if _, err := gen.Generate(context.Background(), primary.GenerateRequest{Seed: 42, Counts: smallCounts}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return NewMetricsService(repo, meta), repo
}

func TestGetMetricsPreSeasonIsZero(t *testing.T) {
	svc, _ := seedSnapshot(t)

	// Staff visas open mid-March, so "before the season" means before
	// any visa window at all.
	resp, err := svc.GetMetrics(context.Background(), primary.MetricsRequest{AsOf: season.Start.AddDate(0, -1, 0)})
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	if resp.Result.TotalVisas != 0 || resp.Result.TotalArrivals != 0 || resp.Result.CardsActivated != 0 {
		t.Errorf("expected zero funnel before the season, got %+v", resp.Result)
	}
	if resp.Result.TotalRecords == 0 {
		t.Error("total records should count the whole subset regardless of date")
	}
}

func TestGetMetricsSeasonEndSaturation(t *testing.T) {
	svc, repo := seedSnapshot(t)

	resp, err := svc.GetMetrics(context.Background(), primary.MetricsRequest{AsOf: season.End})
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	// Every record gets a visa, so by season end the count saturates.
	if resp.Result.TotalVisas != len(repo.persons) {
		t.Errorf("visas = %d, want %d", resp.Result.TotalVisas, len(repo.persons))
	}
	if resp.Result.CardsPrinted <= 0 || resp.Result.CardsPrinted > resp.Result.TotalVisas {
		t.Errorf("printed = %d outside (0, visas]", resp.Result.CardsPrinted)
	}
	if resp.Result.CardsReceived > resp.Result.CardsAtProvider {
		t.Errorf("received %d > at provider %d", resp.Result.CardsReceived, resp.Result.CardsAtProvider)
	}
}

func TestGetMetricsFiltered(t *testing.T) {
	svc, _ := seedSnapshot(t)
	ctx := context.Background()

	all, err := svc.GetMetrics(ctx, primary.MetricsRequest{AsOf: season.End})
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	internal, err := svc.GetMetrics(ctx, primary.MetricsRequest{
		AsOf:    season.End,
		Filters: funnel.Filters{PersonTypes: []string{models.TypePilgrimInternal}},
	})
	if err != nil {
		t.Fatalf("filtered GetMetrics failed: %v", err)
	}
	if internal.Result.TotalRecords != smallCounts[models.TypePilgrimInternal] {
		t.Errorf("filtered records = %d, want %d", internal.Result.TotalRecords, smallCounts[models.TypePilgrimInternal])
	}
	if internal.Result.TotalRecords >= all.Result.TotalRecords {
		t.Error("filter did not narrow the subset")
	}
}

func TestGetMetricsByType(t *testing.T) {
	svc, _ := seedSnapshot(t)

	resp, err := svc.GetMetrics(context.Background(), primary.MetricsRequest{AsOf: season.End, ByType: true})
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	if len(resp.ByType) != len(models.PersonTypes) {
		t.Fatalf("breakdown has %d entries, want %d", len(resp.ByType), len(models.PersonTypes))
	}
	sum := 0
	for _, r := range resp.ByType {
		sum += r.TotalRecords
	}
	if sum != resp.Result.TotalRecords {
		t.Errorf("breakdown totals %d, want %d", sum, resp.Result.TotalRecords)
	}
}

func TestGetMetricsCaches(t *testing.T) {
	svc, _ := seedSnapshot(t)
	ctx := context.Background()
	req := primary.MetricsRequest{AsOf: season.ArafahDay}

	first, err := svc.GetMetrics(ctx, req)
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	second, err := svc.GetMetrics(ctx, req)
	if err != nil {
		t.Fatalf("GetMetrics failed: %v", err)
	}
	if first.Result != second.Result {
		t.Error("identical requests should return the cached result")
	}
}

func TestMetricsServiceNoDataset(t *testing.T) {
	svc := NewMetricsService(newMockPersonRepository(), &mockMetaRepository{})

	_, err := svc.GetMetrics(context.Background(), primary.MetricsRequest{AsOf: season.End})
	if !errors.Is(err, ErrNoDataset) {
		t.Errorf("error = %v, want ErrNoDataset", err)
	}
	_, err = svc.DatasetInfo(context.Background())
	if !errors.Is(err, ErrNoDataset) {
		t.Errorf("DatasetInfo error = %v, want ErrNoDataset", err)
	}
}

func TestGetProviderMetrics(t *testing.T) {
	svc, _ := seedSnapshot(t)

	stats, err := svc.GetProviderMetrics(context.Background(), season.End)
	if err != nil {
		t.Fatalf("GetProviderMetrics failed: %v", err)
	}
	if len(stats) == 0 {
		t.Fatal("no provider stats returned")
	}
	for _, s := range stats {
		if s.Provider == models.ProviderGovernment {
			t.Error("Government must be excluded from provider metrics")
		}
		if s.CardsReceived > s.CardsAtProvider {
			t.Errorf("%s: received %d > at provider %d", s.Provider, s.CardsReceived, s.CardsAtProvider)
		}
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].PilgrimsAssigned > stats[i-1].PilgrimsAssigned {
			t.Error("providers not sorted by assigned population descending")
			break
		}
	}
}

func TestVerifyDataset(t *testing.T) {
	svc, _ := seedSnapshot(t)

	checks, err := svc.VerifyDataset(context.Background())
	if err != nil {
		t.Fatalf("VerifyDataset failed: %v", err)
	}
	if !verify.Healthy(checks) {
		for _, c := range checks {
			if !c.OK() {
				t.Errorf("%s: %d violations, samples %v", c.Name, c.Violations, c.Samples)
			}
		}
	}
}

func TestDatasetInfo(t *testing.T) {
	repo := newMockPersonRepository()
	meta := &mockMetaRepository{meta: &secondary.DatasetMetaRecord{
		RunID:        "run-1",
		Seed:         7,
		GeneratedAt:  time.Now().UTC(),
		TotalRecords: 5,
		CountsByType: map[string]int{models.TypeGovernment: 5},
	}}
	svc := NewMetricsService(repo, meta)

	info, err := svc.DatasetInfo(context.Background())
	if err != nil {
		t.Fatalf("DatasetInfo failed: %v", err)
	}
	if info.RunID != "run-1" || info.Seed != 7 || info.TotalRecords != 5 {
		t.Errorf("info = %+v", info)
	}
}
