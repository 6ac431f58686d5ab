package app

import (
	"context"
	"testing"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
	"github.com/example/nusuk/internal/season"
)

var smallCounts = map[string]int{
	models.TypePilgrimExternal: 1000,
	models.TypePilgrimInternal: 200,
	models.TypeServiceWorker:   100,
	models.TypeGovernment:      30,
	models.TypeHealthcare:      20,
}

func TestGenerate(t *testing.T) {
	repo := newMockPersonRepository()
	meta := &mockMetaRepository{}
	svc := NewGeneratorService(repo, meta, nil)

	resp, err := svc.Generate(context.Background(), primary.GenerateRequest{Seed: 42, Counts: smallCounts})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if resp.TotalRecords != 1350 {
		t.Errorf("total records = %d, want 1350", resp.TotalRecords)
	}
	if len(repo.persons) != 1350 {
		t.Errorf("persisted %d records, want 1350", len(repo.persons))
	}
	if repo.resets != 1 {
		t.Errorf("resets = %d, want 1", repo.resets)
	}
	if resp.RunID == "" {
		t.Error("response missing run ID")
	}
	if meta.meta == nil {
		t.Fatal("no dataset meta recorded")
	}
	if meta.meta.Seed != 42 || meta.meta.TotalRecords != 1350 {
		t.Errorf("meta = %+v", meta.meta)
	}

	// IDs are dense from 1 and types appear in generation order.
	if repo.persons[1] == nil || repo.persons[1350] == nil {
		t.Fatal("person IDs are not dense from 1")
	}
	if repo.persons[1].PersonType != models.TypePilgrimExternal {
		t.Errorf("first record type = %s", repo.persons[1].PersonType)
	}
	if repo.persons[1350].PersonType != models.TypeHealthcare {
		t.Errorf("last record type = %s", repo.persons[1350].PersonType)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	run := func() map[int]*models.Person {
		repo := newMockPersonRepository()
		svc := NewGeneratorService(repo, &mockMetaRepository{}, nil)
		_, err := svc.Generate(context.Background(), primary.GenerateRequest{Seed: 42, Counts: smallCounts})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return repo.persons
	}

	first := run()
	second := run()

	for id, a := range first {
		b := second[id]
		if b == nil {
			t.Fatalf("person %d missing from second run", id)
		}
		if a.FirstName != b.FirstName || a.Nationality != b.Nationality ||
			a.ServiceProvider != b.ServiceProvider || a.TravelMode != b.TravelMode ||
			a.HealthStatus != b.HealthStatus {
			t.Fatalf("person %d differs between runs: %+v vs %+v", id, a, b)
		}
		aArrived, bArrived := a.Arrived(), b.Arrived()
		if aArrived != bArrived {
			t.Fatalf("person %d arrival differs between runs", id)
		}
		if aArrived && !a.ArrivalDate.Equal(*b.ArrivalDate) {
			t.Fatalf("person %d arrival date differs between runs", id)
		}
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	run := func(seed int64) map[int]*models.Person {
		repo := newMockPersonRepository()
		svc := NewGeneratorService(repo, &mockMetaRepository{}, nil)
		_, err := svc.Generate(context.Background(), primary.GenerateRequest{Seed: seed, Counts: smallCounts})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		return repo.persons
	}

	first := run(1)
	second := run(2)

	same := 0
	for id, a := range first {
		if b := second[id]; b != nil && a.FirstName == b.FirstName && a.LastName == b.LastName {
			same++
		}
	}
	if same == len(first) {
		t.Error("different seeds produced identical names throughout")
	}
}

func TestGenerateDefaultsAndValidation(t *testing.T) {
	svc := NewGeneratorService(newMockPersonRepository(), &mockMetaRepository{}, nil)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, primary.GenerateRequest{Seed: 1, Counts: map[string]int{"tourist": 5}}); err == nil {
		t.Error("expected error for unknown person type")
	}
	if _, err := svc.Generate(ctx, primary.GenerateRequest{Seed: 1, Counts: map[string]int{models.TypeGovernment: -1}}); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestGenerateExternalPilgrimFunnel(t *testing.T) {
	repo := newMockPersonRepository()
	svc := NewGeneratorService(repo, &mockMetaRepository{}, nil)

	_, err := svc.Generate(context.Background(), primary.GenerateRequest{
		Seed:   42,
		Counts: map[string]int{models.TypePilgrimExternal: 1000},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	persons, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(persons) != 1000 {
		t.Fatalf("generated %d records, want 1000", len(persons))
	}

	result := funnel.Compute(persons, season.End, funnel.Filters{})
	if result.ArrivalPct > 100 {
		t.Errorf("arrival pct = %.2f, want <= 100", result.ArrivalPct)
	}
	if result.TotalArrivals > result.TotalRecords {
		t.Errorf("arrivals %d exceed records %d", result.TotalArrivals, result.TotalRecords)
	}
	for _, p := range persons {
		if p.CardReceivedDate != nil && p.CardAtProviderDate == nil {
			t.Fatalf("person %d received a card that never reached its provider", p.PersonID)
		}
	}
}

func TestGeneratePopulationShape(t *testing.T) {
	repo := newMockPersonRepository()
	svc := NewGeneratorService(repo, &mockMetaRepository{}, nil)
	if _, err := svc.Generate(context.Background(), primary.GenerateRequest{Seed: 42, Counts: smallCounts}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	arrivedExternal, external := 0, 0
	for _, p := range repo.persons {
		if p.VisaIssueDate == nil {
			t.Fatalf("person %d has no visa", p.PersonID)
		}
		if p.PersonType == models.TypePilgrimExternal {
			external++
			if p.Arrived() {
				arrivedExternal++
			}
		}
		if models.IsStaffType(p.PersonType) && p.PersonType != models.TypeServiceWorker {
			if p.ServiceProvider != models.ProviderGovernment {
				t.Fatalf("staff person %d assigned to %q", p.PersonID, p.ServiceProvider)
			}
		}
	}

	// ~93% of external pilgrims arrive.
	if arrivedExternal < external*88/100 || arrivedExternal > external*98/100 {
		t.Errorf("external arrivals = %d of %d, outside expected band", arrivedExternal, external)
	}
}
