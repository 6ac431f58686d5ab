package identity

import (
	"strings"
	"testing"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

func TestNewSamplerValidates(t *testing.T) {
	if _, err := NewSampler(); err != nil {
		t.Fatalf("NewSampler() failed on built-in tables: %v", err)
	}
}

func TestSampleUnknownTypeFails(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(1)

	if _, err := s.Sample(r, 1, "astronaut"); err == nil {
		t.Fatal("expected error for unknown person type")
	}
}

func TestSampleIdentifierExclusivity(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(42)

	for i := 0; i < 2000; i++ {
		p, err := s.Sample(r, i+1, models.TypePilgrimExternal)
		if err != nil {
			t.Fatalf("Sample() error: %v", err)
		}

		hasID := p.IDNumber != ""
		hasPassport := p.PassportNumber != ""
		if hasID == hasPassport {
			t.Fatalf("person %d: exactly one of id/passport must be set (id=%q passport=%q)",
				p.PersonID, p.IDNumber, p.PassportNumber)
		}

		if p.Nationality == HomeCountry {
			if !hasID || !strings.HasPrefix(p.IDNumber, "1") || len(p.IDNumber) != 10 {
				t.Fatalf("saudi national got bad id %q", p.IDNumber)
			}
		} else {
			if !hasPassport || len(p.PassportNumber) != 9 {
				t.Fatalf("foreign national got bad passport %q", p.PassportNumber)
			}
			if p.PassportNumber[0] < 'A' || p.PassportNumber[0] > 'Z' {
				t.Fatalf("passport %q does not start with an uppercase letter", p.PassportNumber)
			}
		}
	}
}

func TestSampleAgeBounds(t *testing.T) {
	tests := []struct {
		personType string
		min, max   int
	}{
		{models.TypePilgrimExternal, 18, 90},
		{models.TypePilgrimInternal, 18, 90},
		{models.TypeServiceWorker, 20, 55},
		{models.TypeHealthcare, 24, 60},
		{models.TypeGovernment, 25, 62},
	}

	s, _ := NewSampler()
	r := randutil.New(7)

	for _, tt := range tests {
		t.Run(tt.personType, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				p, err := s.Sample(r, i+1, tt.personType)
				if err != nil {
					t.Fatalf("Sample() error: %v", err)
				}
				if p.Age < tt.min || p.Age > tt.max {
					t.Fatalf("age %d outside [%d, %d]", p.Age, tt.min, tt.max)
				}
			}
		})
	}
}

func TestSampleNationalityByType(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(9)

	for i := 0; i < 500; i++ {
		p, _ := s.Sample(r, i+1, models.TypePilgrimInternal)
		if p.Nationality != HomeCountry {
			t.Fatalf("internal pilgrim has nationality %q", p.Nationality)
		}
	}

	saudi := 0
	for i := 0; i < 2000; i++ {
		p, _ := s.Sample(r, i+1, models.TypeServiceWorker)
		if p.Nationality == HomeCountry {
			saudi++
		}
	}
	// 70/30 home/foreign split, wide tolerance
	if saudi < 1200 || saudi > 1600 {
		t.Errorf("staff saudi share %d/2000, expected near 1400", saudi)
	}
}

func TestSampleChannelByType(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(21)

	for i := 0; i < 300; i++ {
		p, _ := s.Sample(r, i+1, models.TypeGovernment)
		if p.Channel != models.ChannelB2B {
			t.Fatalf("staff must always be B2B, got %q", p.Channel)
		}
	}

	b2b := 0
	for i := 0; i < 2000; i++ {
		p, _ := s.Sample(r, i+1, models.TypePilgrimExternal)
		if p.Channel == models.ChannelB2B {
			b2b++
		}
	}
	if b2b < 1600 || b2b > 1800 {
		t.Errorf("external B2B share %d/2000, expected near 1700", b2b)
	}
}

func TestSampleDocumentNumbers(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(33)

	p, err := s.Sample(r, 1, models.TypePilgrimExternal)
	if err != nil {
		t.Fatalf("Sample() error: %v", err)
	}
	if !strings.HasPrefix(p.VisaNumber, "HJ25") || len(p.VisaNumber) != 12 {
		t.Errorf("bad visa number %q", p.VisaNumber)
	}
	if !strings.HasPrefix(p.NusukNumber, "NSK-25-") || len(p.NusukNumber) != 14 {
		t.Errorf("bad nusuk number %q", p.NusukNumber)
	}
}

func TestRegionMappingTotal(t *testing.T) {
	// Every nationality the sampler can emit must resolve to a pool,
	// including ones absent from the explicit mapping.
	nationalities := append([]string{}, externalNationalityOrder...)
	nationalities = append(nationalities, staffForeignNationalities...)
	nationalities = append(nationalities, HomeCountry, "Atlantis")

	for _, nat := range nationalities {
		region := regionFor(nat)
		pool, ok := namePools[region]
		if !ok {
			t.Fatalf("nationality %q resolved to missing region %q", nat, region)
		}
		if len(pool.MaleFirst) == 0 || len(pool.FemaleFirst) == 0 || len(pool.Last) == 0 {
			t.Fatalf("region %q for %q has empty pools", region, nat)
		}
	}

	if regionFor("Atlantis") != regionFallback {
		t.Errorf("unmapped nationality should fall back to %q", regionFallback)
	}
}

func TestSampleNameMatchesSexPool(t *testing.T) {
	s, _ := NewSampler()
	r := randutil.New(5)

	malePool := map[string]bool{}
	femalePool := map[string]bool{}
	for _, n := range namePools[regionSaudi].MaleFirst {
		malePool[n] = true
	}
	for _, n := range namePools[regionSaudi].FemaleFirst {
		femalePool[n] = true
	}

	for i := 0; i < 1000; i++ {
		p, _ := s.Sample(r, i+1, models.TypePilgrimInternal)
		if p.Sex == models.SexMale && !malePool[p.FirstName] {
			t.Fatalf("male saudi pilgrim got name %q outside male pool", p.FirstName)
		}
		if p.Sex == models.SexFemale && !femalePool[p.FirstName] {
			t.Fatalf("female saudi pilgrim got name %q outside female pool", p.FirstName)
		}
	}
}
