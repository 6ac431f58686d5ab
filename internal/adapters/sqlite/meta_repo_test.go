package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/nusuk/internal/adapters/sqlite"
	"github.com/example/nusuk/internal/ports/secondary"
)

func TestDatasetMetaRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDatasetMetaRepository(db)
	ctx := context.Background()

	meta := &secondary.DatasetMetaRecord{
		RunID:        "9f2c6d1e-0000-4000-8000-000000000000",
		Seed:         42,
		GeneratedAt:  time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC),
		TotalRecords: 200000,
		CountsByType: map[string]int{
			"pilgrim_external": 150000,
			"pilgrim_internal": 20000,
		},
	}
	if err := repo.Put(ctx, meta); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil after Put")
	}
	if got.RunID != meta.RunID || got.Seed != 42 || got.TotalRecords != 200000 {
		t.Errorf("meta did not round-trip: %+v", got)
	}
	if !got.GeneratedAt.Equal(meta.GeneratedAt) {
		t.Errorf("generated_at = %v, want %v", got.GeneratedAt, meta.GeneratedAt)
	}
	if got.CountsByType["pilgrim_external"] != 150000 {
		t.Errorf("counts did not round-trip: %v", got.CountsByType)
	}
}

func TestDatasetMetaRepository_GetEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDatasetMetaRepository(db)

	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil meta on fresh database, got %+v", got)
	}
}

func TestDatasetMetaRepository_PutReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewDatasetMetaRepository(db)
	ctx := context.Background()

	first := &secondary.DatasetMetaRecord{
		RunID: "run-1", Seed: 1, GeneratedAt: time.Now().UTC(),
		TotalRecords: 10, CountsByType: map[string]int{"pilgrim_external": 10},
	}
	second := &secondary.DatasetMetaRecord{
		RunID: "run-2", Seed: 2, GeneratedAt: time.Now().UTC(),
		TotalRecords: 20, CountsByType: map[string]int{"pilgrim_external": 20},
	}
	if err := repo.Put(ctx, first); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := repo.Put(ctx, second); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.RunID != "run-2" || got.Seed != 2 {
		t.Errorf("replacement did not win: %+v", got)
	}
}
