package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/nusuk/internal/ports/secondary"
)

// DatasetMetaRepository implements secondary.DatasetMetaRepository with
// SQLite. The table holds at most one row.
type DatasetMetaRepository struct {
	db *sql.DB
}

// NewDatasetMetaRepository creates a new SQLite dataset meta repository.
func NewDatasetMetaRepository(db *sql.DB) *DatasetMetaRepository {
	return &DatasetMetaRepository{db: db}
}

// Put records the provenance of a generation run, replacing any previous
// entry.
func (r *DatasetMetaRepository) Put(ctx context.Context, meta *secondary.DatasetMetaRecord) error {
	counts, err := json.Marshal(meta.CountsByType)
	if err != nil {
		return fmt.Errorf("failed to encode counts: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO dataset_meta (id, run_id, seed, generated_at, total_records, counts_by_type) VALUES (1, ?, ?, ?, ?, ?)",
		meta.RunID, meta.Seed, meta.GeneratedAt.UTC().Format(time.RFC3339), meta.TotalRecords, string(counts),
	)
	if err != nil {
		return fmt.Errorf("failed to store dataset meta: %w", err)
	}
	return nil
}

// Get retrieves the provenance of the current snapshot. Returns
// (nil, nil) when no run has been recorded.
func (r *DatasetMetaRepository) Get(ctx context.Context) (*secondary.DatasetMetaRecord, error) {
	var (
		meta        secondary.DatasetMetaRecord
		generatedAt string
		counts      string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT run_id, seed, generated_at, total_records, counts_by_type FROM dataset_meta WHERE id = 1").
		Scan(&meta.RunID, &meta.Seed, &generatedAt, &meta.TotalRecords, &counts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset meta: %w", err)
	}

	meta.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(counts), &meta.CountsByType); err != nil {
		return nil, fmt.Errorf("failed to decode counts: %w", err)
	}
	return &meta, nil
}
