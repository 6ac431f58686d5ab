package verify

import (
	"testing"
	"time"

	"github.com/example/nusuk/internal/models"
)

func date(month, day int) *time.Time {
	t := time.Date(2025, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int { return &v }

func validPilgrim(id int) *models.Person {
	return &models.Person{
		PersonID:           id,
		PersonType:         models.TypePilgrimExternal,
		Nationality:        "Egypt",
		PassportNumber:     "A12345678",
		ServiceProvider:    "Al-Safwa Hajj Services",
		GroupID:            1,
		VisaIssueDate:      date(4, 10),
		GroupFormationDate: date(4, 20),
		ArrivalDate:        date(5, 10),
		CardPrintedDate:    date(4, 25),
		CardAtCenterDate:   date(4, 28),
		CardAtProviderDate: date(5, 2),
		CardReceivedDate:   date(5, 12),
		HealthStatus:       models.HealthNone,
	}
}

func checkByName(t *testing.T, checks []Check, name string) Check {
	t.Helper()
	for _, c := range checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q", name)
	return Check{}
}

func TestRunCleanDataset(t *testing.T) {
	a := validPilgrim(1)
	b := validPilgrim(2)
	a.SpouseID = intPtr(2)
	b.SpouseID = intPtr(1)
	c := validPilgrim(3)
	c.FatherID = intPtr(1)

	checks := Run([]*models.Person{a, b, c})
	if !Healthy(checks) {
		for _, ch := range checks {
			if !ch.OK() {
				t.Errorf("%s: %d violations, samples %v", ch.Name, ch.Violations, ch.Samples)
			}
		}
	}
}

func TestIdentifierViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Person)
	}{
		{"both identifiers", func(p *models.Person) { p.IDNumber = "1234567890" }},
		{"neither identifier", func(p *models.Person) { p.PassportNumber = "" }},
		{"saudi with passport only", func(p *models.Person) { p.Nationality = "Saudi Arabia" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPilgrim(1)
			tt.mutate(p)
			c := checkByName(t, Run([]*models.Person{p}), "identifiers")
			if c.OK() {
				t.Error("expected a violation")
			}
		})
	}
}

func TestFunnelHole(t *testing.T) {
	p := validPilgrim(1)
	p.CardAtCenterDate = nil // printed and at-provider remain set

	c := checkByName(t, Run([]*models.Person{p}), "funnel containment")
	if c.Violations != 1 {
		t.Errorf("violations = %d, want 1", c.Violations)
	}
}

func TestDateOrderViolations(t *testing.T) {
	t.Run("group before visa", func(t *testing.T) {
		p := validPilgrim(1)
		p.GroupFormationDate = date(4, 5)
		c := checkByName(t, Run([]*models.Person{p}), "date order")
		if c.OK() {
			t.Error("expected a violation")
		}
	})
	t.Run("received before arrival", func(t *testing.T) {
		p := validPilgrim(1)
		p.CardReceivedDate = date(5, 5)
		c := checkByName(t, Run([]*models.Person{p}), "date order")
		if c.OK() {
			t.Error("expected a violation")
		}
	})
}

func TestHealthViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Person)
	}{
		{"status without date", func(p *models.Person) { p.HealthStatus = models.HealthMinor }},
		{"death without incident", func(p *models.Person) {
			p.DeathStatus = true
			p.DeathDate = date(6, 6)
		}},
		{"death before incident", func(p *models.Person) {
			p.HealthStatus = models.HealthCritical
			p.HealthDate = date(6, 5)
			p.HealthNotes = "Cardiac event during Tawaf"
			p.DeathStatus = true
			p.DeathDate = date(6, 1)
		}},
		{"death flag without date", func(p *models.Person) { p.DeathStatus = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPilgrim(1)
			tt.mutate(p)
			c := checkByName(t, Run([]*models.Person{p}), "health consistency")
			if c.OK() {
				t.Error("expected a violation")
			}
		})
	}
}

func TestAffiliationViolations(t *testing.T) {
	gov := validPilgrim(1)
	gov.PersonType = models.TypeGovernment
	gov.GroupID = models.GroupNone
	// still carries a commercial provider: violation
	c := checkByName(t, Run([]*models.Person{gov}), "affiliations")
	if c.OK() {
		t.Error("expected a violation for staff with commercial provider")
	}

	worker := validPilgrim(2)
	worker.PersonType = models.TypeServiceWorker
	// still carries a group id: violation
	c = checkByName(t, Run([]*models.Person{worker}), "affiliations")
	if c.OK() {
		t.Error("expected a violation for grouped service worker")
	}
}

func TestSpouseViolations(t *testing.T) {
	a := validPilgrim(1)
	a.SpouseID = intPtr(2)
	b := validPilgrim(2)
	// b does not link back
	c := checkByName(t, Run([]*models.Person{a, b}), "spouse symmetry")
	if c.Violations != 1 {
		t.Errorf("violations = %d, want 1", c.Violations)
	}

	solo := validPilgrim(3)
	solo.SpouseID = intPtr(3)
	c = checkByName(t, Run([]*models.Person{solo}), "spouse symmetry")
	if c.OK() {
		t.Error("expected a violation for self-marriage")
	}
}

func TestFatherViolations(t *testing.T) {
	child := validPilgrim(1)
	child.FatherID = intPtr(2) // points forward
	father := validPilgrim(2)

	c := checkByName(t, Run([]*models.Person{child, father}), "father links")
	if c.OK() {
		t.Error("expected a violation for forward-pointing father link")
	}

	orphan := validPilgrim(3)
	orphan.FatherID = intPtr(99)
	c = checkByName(t, Run([]*models.Person{orphan}), "father links")
	if c.OK() {
		t.Error("expected a violation for dangling father link")
	}
}

func TestSampleCap(t *testing.T) {
	persons := make([]*models.Person, 0, 10)
	for i := 1; i <= 10; i++ {
		p := validPilgrim(i)
		p.PassportNumber = ""
		persons = append(persons, p)
	}
	c := checkByName(t, Run(persons), "identifiers")
	if c.Violations != 10 {
		t.Errorf("violations = %d, want 10", c.Violations)
	}
	if len(c.Samples) != maxSamples {
		t.Errorf("samples = %d, want %d", len(c.Samples), maxSamples)
	}
}
