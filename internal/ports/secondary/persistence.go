// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives persistence.
package secondary

import (
	"context"
	"time"

	"github.com/example/nusuk/internal/models"
)

// PersonRepository defines the secondary port for snapshot persistence.
// The snapshot is written once per generation run and read-only after
// that, so there are no row-level update operations.
type PersonRepository interface {
	// Reset clears any previous snapshot before a new run is written.
	Reset(ctx context.Context) error

	// BulkInsert persists a batch of persons inside one transaction.
	BulkInsert(ctx context.Context, persons []*models.Person) error

	// LoadAll reads the entire snapshot, ordered by person ID.
	LoadAll(ctx context.Context) ([]*models.Person, error)

	// GetByID retrieves one person. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, personID int) (*models.Person, error)

	// Count returns the number of persisted records.
	Count(ctx context.Context) (int, error)
}

// DatasetMetaRepository defines the secondary port for run provenance.
type DatasetMetaRepository interface {
	// Put records the provenance of a generation run, replacing any
	// previous entry.
	Put(ctx context.Context, meta *DatasetMetaRecord) error

	// Get retrieves the provenance of the current snapshot. Returns
	// (nil, nil) when no run has been recorded.
	Get(ctx context.Context) (*DatasetMetaRecord, error)
}

// DatasetMetaRecord describes one generation run as stored in
// persistence.
type DatasetMetaRecord struct {
	RunID        string
	Seed         int64
	GeneratedAt  time.Time
	TotalRecords int
	CountsByType map[string]int
}
