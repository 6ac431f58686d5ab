// Package health samples health incidents and derived deaths. Incident
// risk is conditioned on person type and age bracket; deaths only ever
// arise from severe or critical incidents.
package health

import (
	"math/rand"
	"time"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/season"
)

// Age-bracket risk tiers. External pilgrims carry the highest risk,
// escalating at 55 and 65; staff risk is flat.
const (
	externalBaseRisk = 0.025
	externalRisk55   = 0.04
	externalRisk65   = 0.07
	internalBaseRisk = 0.01
	internalRisk55   = 0.015
	internalRisk65   = 0.03
	staffRisk        = 0.005
)

// Death probabilities by incident severity.
const (
	deathProbCritical = 0.30
	deathProbSevere   = 0.05
)

var severities = randutil.MustWeighted(
	[]string{models.HealthMinor, models.HealthModerate, models.HealthSevere, models.HealthCritical},
	[]float64{0.50, 0.30, 0.15, 0.05},
)

// incidentCauses is the cause-of-incident vocabulary.
var incidentCauses = []string{
	"Heat exhaustion", "Dehydration", "Respiratory infection",
	"Cardiac event", "Fracture - fall", "Gastrointestinal illness",
	"Hypertension crisis", "Diabetes complication", "Allergic reaction",
	"Heatstroke", "Pneumonia", "Urinary tract infection",
	"Chronic disease exacerbation", "Skin infection", "Eye infection",
}

// riskFor returns the incident probability for a person.
func riskFor(p *models.Person) float64 {
	switch p.PersonType {
	case models.TypePilgrimExternal:
		switch {
		case p.Age >= 65:
			return externalRisk65
		case p.Age >= 55:
			return externalRisk55
		default:
			return externalBaseRisk
		}
	case models.TypePilgrimInternal:
		switch {
		case p.Age >= 65:
			return internalRisk65
		case p.Age >= 55:
			return internalRisk55
		default:
			return internalBaseRisk
		}
	default:
		return staffRisk
	}
}

// Sample sets the health and death fields of one person.
func Sample(r *rand.Rand, p *models.Person) {
	p.HealthStatus = models.HealthNone

	if r.Float64() >= riskFor(p) {
		return
	}

	p.HealthStatus = severities.Sample(r)
	incidentDate := sampleIncidentDate(r)
	p.HealthDate = &incidentDate
	p.HealthNotes = randutil.Choice(r, incidentCauses)

	var deathProb float64
	switch p.HealthStatus {
	case models.HealthCritical:
		deathProb = deathProbCritical
	case models.HealthSevere:
		deathProb = deathProbSevere
	default:
		return
	}

	if r.Float64() < deathProb {
		p.DeathStatus = true
		var death time.Time
		if p.HealthDate != nil {
			death = randutil.AddDays(*p.HealthDate, randutil.IntBetween(r, 0, 3))
		} else {
			// No incident date to anchor on: fall back to the ritual period.
			death = randutil.AddDays(season.ArafahDay, randutil.IntBetween(r, 0, 5))
		}
		p.DeathDate = &death
	}
}

// sampleIncidentDate draws from a three-window mixture: 60% during the
// main ritual days, the rest split between the arrival period and the
// broader season.
func sampleIncidentDate(r *rand.Rand) time.Time {
	if r.Float64() < 0.6 {
		return randutil.AddDays(season.ArafahDay.AddDate(0, 0, -1), randutil.IntBetween(r, 0, 5))
	}
	if r.Float64() < 0.5 {
		return randutil.AddDays(time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), randutil.IntBetween(r, 0, 20))
	}
	return randutil.AddDays(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), randutil.IntBetween(r, 0, 70))
}
