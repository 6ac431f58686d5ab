package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/nusuk/internal/models"
)

func TestGetPerson(t *testing.T) {
	repo := newMockPersonRepository()
	repo.persons[7] = &models.Person{PersonID: 7, PersonType: models.TypePilgrimExternal, FirstName: "Ahmed"}
	svc := NewPersonService(repo)

	p, err := svc.GetPerson(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetPerson failed: %v", err)
	}
	if p.FirstName != "Ahmed" {
		t.Errorf("first name = %q", p.FirstName)
	}
}

func TestGetPersonNotFound(t *testing.T) {
	svc := NewPersonService(newMockPersonRepository())

	_, err := svc.GetPerson(context.Background(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
