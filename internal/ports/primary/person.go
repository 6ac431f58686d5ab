package primary

import (
	"context"

	"github.com/example/nusuk/internal/models"
)

// PersonService defines the primary port for single-record lookups.
type PersonService interface {
	// GetPerson retrieves one person by ID. The error wraps a not-found
	// sentinel when no such record exists in the snapshot.
	GetPerson(ctx context.Context, personID int) (*models.Person, error)
}
