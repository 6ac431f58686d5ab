package app

import (
	"context"
	"fmt"

	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/secondary"
)

// PersonServiceImpl implements the PersonService interface.
type PersonServiceImpl struct {
	personRepo secondary.PersonRepository
}

// NewPersonService creates a new PersonService with injected
// dependencies.
func NewPersonService(personRepo secondary.PersonRepository) *PersonServiceImpl {
	return &PersonServiceImpl{personRepo: personRepo}
}

// GetPerson retrieves one person by ID.
func (s *PersonServiceImpl) GetPerson(ctx context.Context, personID int) (*models.Person, error) {
	p, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("person %d: %w", personID, ErrNotFound)
	}
	return p, nil
}
