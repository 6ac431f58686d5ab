package app

import (
	"context"
	"sort"

	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/secondary"
)

// mockPersonRepository implements secondary.PersonRepository in memory.
type mockPersonRepository struct {
	persons   map[int]*models.Person
	resets    int
	inserts   int
	insertErr error
	loadErr   error
}

func newMockPersonRepository() *mockPersonRepository {
	return &mockPersonRepository{persons: make(map[int]*models.Person)}
}

func (m *mockPersonRepository) Reset(ctx context.Context) error {
	m.resets++
	m.persons = make(map[int]*models.Person)
	return nil
}

func (m *mockPersonRepository) BulkInsert(ctx context.Context, persons []*models.Person) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserts++
	for _, p := range persons {
		m.persons[p.PersonID] = p
	}
	return nil
}

func (m *mockPersonRepository) LoadAll(ctx context.Context) ([]*models.Person, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]*models.Person, 0, len(m.persons))
	for _, p := range m.persons {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PersonID < out[j].PersonID })
	return out, nil
}

func (m *mockPersonRepository) GetByID(ctx context.Context, personID int) (*models.Person, error) {
	return m.persons[personID], nil
}

func (m *mockPersonRepository) Count(ctx context.Context) (int, error) {
	return len(m.persons), nil
}

// mockMetaRepository implements secondary.DatasetMetaRepository in
// memory.
type mockMetaRepository struct {
	meta *secondary.DatasetMetaRecord
}

func (m *mockMetaRepository) Put(ctx context.Context, meta *secondary.DatasetMetaRecord) error {
	m.meta = meta
	return nil
}

func (m *mockMetaRepository) Get(ctx context.Context) (*secondary.DatasetMetaRecord, error) {
	return m.meta, nil
}
