// Package verify runs structural integrity checks over a generated
// dataset. Each check scans the full population and reports the records
// that violate it, so a corrupt or hand-edited snapshot is caught before
// it feeds any metrics.
package verify

import (
	"fmt"

	"github.com/example/nusuk/internal/models"
)

// maxSamples caps how many violating records a check reports in detail.
const maxSamples = 5

// Check is the outcome of one integrity rule over the whole dataset.
type Check struct {
	Name       string
	Violations int
	Samples    []string
}

// OK reports whether the check passed.
func (c Check) OK() bool { return c.Violations == 0 }

func (c *Check) flag(p *models.Person, format string, args ...any) {
	c.Violations++
	if len(c.Samples) < maxSamples {
		msg := fmt.Sprintf(format, args...)
		c.Samples = append(c.Samples, fmt.Sprintf("person %d: %s", p.PersonID, msg))
	}
}

// Run executes every integrity check and returns the results in a fixed
// order.
func Run(persons []*models.Person) []Check {
	byID := make(map[int]*models.Person, len(persons))
	for _, p := range persons {
		byID[p.PersonID] = p
	}

	return []Check{
		checkIdentifiers(persons),
		checkFunnelContainment(persons),
		checkDateOrder(persons),
		checkHealth(persons),
		checkAffiliations(persons),
		checkSpouses(persons, byID),
		checkFathers(persons, byID),
	}
}

// Healthy reports whether every check passed.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if !c.OK() {
			return false
		}
	}
	return true
}

// checkIdentifiers enforces exactly one of national ID or passport per
// person, keyed off nationality.
func checkIdentifiers(persons []*models.Person) Check {
	c := Check{Name: "identifiers"}
	for _, p := range persons {
		hasID := p.IDNumber != ""
		hasPassport := p.PassportNumber != ""
		switch {
		case hasID == hasPassport:
			c.flag(p, "id_number=%q passport=%q, want exactly one", p.IDNumber, p.PassportNumber)
		case p.Nationality == "Saudi Arabia" && !hasID:
			c.flag(p, "Saudi national without id_number")
		case p.Nationality != "Saudi Arabia" && !hasPassport:
			c.flag(p, "%s national without passport", p.Nationality)
		}
	}
	return c
}

// checkFunnelContainment enforces that no card stage is reached without
// the one before it: a date at stage N with a nil date at stage N-1 is a
// hole in the funnel.
func checkFunnelContainment(persons []*models.Person) Check {
	c := Check{Name: "funnel containment"}
	for _, p := range persons {
		stages := p.StageDates()
		seenNil := false
		for i, d := range stages {
			if d == nil {
				seenNil = true
			} else if seenNil {
				c.flag(p, "stage %d set but an earlier stage is missing", i)
				break
			}
		}
		if stages[0] != nil && p.VisaIssueDate == nil {
			c.flag(p, "card printed without a visa")
		}
	}
	return c
}

// checkDateOrder enforces chronological ordering along the lifecycle.
func checkDateOrder(persons []*models.Person) Check {
	c := Check{Name: "date order"}
	for _, p := range persons {
		if p.GroupFormationDate != nil && p.VisaIssueDate != nil &&
			p.GroupFormationDate.Before(*p.VisaIssueDate) {
			c.flag(p, "group formed %s before visa %s",
				p.GroupFormationDate.Format("2006-01-02"), p.VisaIssueDate.Format("2006-01-02"))
		}
		stages := p.StageDates()
		var prev int // index of last non-nil stage
		for i := 1; i < len(stages); i++ {
			if stages[i] == nil {
				continue
			}
			if stages[prev] != nil && stages[i].Before(*stages[prev]) {
				c.flag(p, "stage %d predates stage %d", i, prev)
				break
			}
			prev = i
		}
		if p.CardReceivedDate != nil && p.ArrivalDate != nil &&
			p.CardReceivedDate.Before(*p.ArrivalDate) {
			c.flag(p, "card received before arrival")
		}
	}
	return c
}

// checkHealth enforces that health and death fields are internally
// consistent: an incident carries a status, a date, and notes; a death
// carries a severity, a date, and follows the incident.
func checkHealth(persons []*models.Person) Check {
	c := Check{Name: "health consistency"}
	for _, p := range persons {
		if p.HadHealthIncident() != (p.HealthDate != nil) {
			c.flag(p, "health_status=%q but health_date set=%v", p.HealthStatus, p.HealthDate != nil)
			continue
		}
		if p.HadHealthIncident() && p.HealthNotes == "" {
			c.flag(p, "health incident without notes")
		}
		if p.DeathStatus != (p.DeathDate != nil) {
			c.flag(p, "death_status=%v but death_date set=%v", p.DeathStatus, p.DeathDate != nil)
			continue
		}
		if p.DeathStatus {
			if p.HealthStatus != models.HealthSevere && p.HealthStatus != models.HealthCritical {
				c.flag(p, "death without a severe or critical incident (status=%q)", p.HealthStatus)
			}
			if p.HealthDate != nil && p.DeathDate.Before(*p.HealthDate) {
				c.flag(p, "death predates the health incident")
			}
		}
	}
	return c
}

// checkAffiliations enforces the provider and group rules per person
// type.
func checkAffiliations(persons []*models.Person) Check {
	c := Check{Name: "affiliations"}
	for _, p := range persons {
		switch {
		case models.IsPilgrimType(p.PersonType):
			if p.ServiceProvider == "" || p.ServiceProvider == models.ProviderGovernment {
				c.flag(p, "pilgrim with provider %q", p.ServiceProvider)
			}
		case p.PersonType == models.TypeServiceWorker:
			if p.GroupID != models.GroupNone {
				c.flag(p, "service worker in group %d", p.GroupID)
			}
		case models.IsStaffType(p.PersonType):
			if p.ServiceProvider != models.ProviderGovernment {
				c.flag(p, "staff with provider %q", p.ServiceProvider)
			}
			if p.GroupID != models.GroupNone {
				c.flag(p, "staff in group %d", p.GroupID)
			}
		default:
			c.flag(p, "unknown person type %q", p.PersonType)
		}
	}
	return c
}

// checkSpouses enforces that spouse links are symmetric and never
// self-referential.
func checkSpouses(persons []*models.Person, byID map[int]*models.Person) Check {
	c := Check{Name: "spouse symmetry"}
	for _, p := range persons {
		if p.SpouseID == nil {
			continue
		}
		if *p.SpouseID == p.PersonID {
			c.flag(p, "married to self")
			continue
		}
		spouse, ok := byID[*p.SpouseID]
		if !ok {
			c.flag(p, "spouse %d does not exist", *p.SpouseID)
			continue
		}
		if spouse.SpouseID == nil || *spouse.SpouseID != p.PersonID {
			c.flag(p, "spouse %d does not link back", *p.SpouseID)
		}
	}
	return c
}

// checkFathers enforces that father links resolve and that the graph is
// acyclic. Links always point at a lower person ID, so following them
// must strictly descend.
func checkFathers(persons []*models.Person, byID map[int]*models.Person) Check {
	c := Check{Name: "father links"}
	for _, p := range persons {
		if p.FatherID == nil {
			continue
		}
		father, ok := byID[*p.FatherID]
		if !ok {
			c.flag(p, "father %d does not exist", *p.FatherID)
			continue
		}
		if father.PersonID >= p.PersonID {
			c.flag(p, "father %d is not an earlier record", father.PersonID)
		}
	}
	return c
}
