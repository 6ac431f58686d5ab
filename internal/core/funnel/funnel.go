// Package funnel answers "how far had the card pipeline progressed as of
// date D" over an immutable dataset snapshot. Every computation is a pure
// function of the snapshot, the as-of date, and the filter set, so results
// are safe to cache and to compute concurrently.
package funnel

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/example/nusuk/internal/models"
)

// Filters restrict the snapshot subset a computation runs over. A nil or
// empty slice means "no restriction" for that dimension; dimensions
// combine with AND, values within a dimension with OR.
type Filters struct {
	PersonTypes   []string
	Nationalities []string
	Providers     []string
	Channels      []string
}

// Match reports whether a person passes every filter dimension.
func (f Filters) Match(p *models.Person) bool {
	return matchDimension(f.PersonTypes, p.PersonType) &&
		matchDimension(f.Nationalities, p.Nationality) &&
		matchDimension(f.Providers, p.ServiceProvider) &&
		matchDimension(f.Channels, p.Channel)
}

func matchDimension(values []string, v string) bool {
	if len(values) == 0 {
		return true
	}
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Key returns a canonical cache key for the filter set: identical filters
// produce identical keys regardless of value order.
func (f Filters) Key() string {
	parts := make([]string, 0, 4)
	for _, dim := range [][]string{f.PersonTypes, f.Nationalities, f.Providers, f.Channels} {
		sorted := append([]string(nil), dim...)
		sort.Strings(sorted)
		parts = append(parts, strings.Join(sorted, ","))
	}
	return strings.Join(parts, "|")
}

// DailyCount is one bucket of a per-day time series.
type DailyCount struct {
	Date  time.Time
	Count int
}

// Result holds the funnel, health, and time-series metrics for one
// (as-of, filters) evaluation.
type Result struct {
	TotalRecords int

	TotalVisas    int
	GroupsFormed  int
	TotalArrivals int
	ArrivalPct    float64

	CardsPrinted      int
	CardsAtCenter     int
	CardsAtProvider   int
	CardsReceived     int
	CardsActivated    int
	ProofPictures     int
	CardsNotDelivered int

	FormationPct float64
	PrintedPct   float64
	CenterPct    float64
	ProviderPct  float64
	ReceivedPct  float64
	ActivatedPct float64

	HealthIncidents int
	Deaths          int

	DailyArrivals []DailyCount
	DailyHealth   []DailyCount
}

// ProviderStats is the per-provider delivery view.
type ProviderStats struct {
	Provider         string
	PilgrimsAssigned int
	CardsAtProvider  int
	CardsReceived    int
	CardsActivated   int
	DeliveryRate     float64 // received / at_provider, percent
	AvgDeliveryDays  float64 // mean received_date - provider_date
	HealthIncidents  int
}

// onOrBefore reports whether a nullable stage date counts as completed as
// of the given date.
func onOrBefore(d *time.Time, asOf time.Time) bool {
	return d != nil && !d.After(asOf)
}

// Compute evaluates the full metric set over the filtered snapshot subset.
// An empty subset yields an all-zero result with empty series, never an
// error.
func Compute(persons []*models.Person, asOf time.Time, filters Filters) *Result {
	res := &Result{
		DailyArrivals: []DailyCount{},
		DailyHealth:   []DailyCount{},
	}

	arrivalsByDay := map[time.Time]int{}
	healthByDay := map[time.Time]int{}

	for _, p := range persons {
		if !filters.Match(p) {
			continue
		}
		res.TotalRecords++

		if onOrBefore(p.VisaIssueDate, asOf) {
			res.TotalVisas++
		}
		if onOrBefore(p.GroupFormationDate, asOf) {
			res.GroupsFormed++
		}
		if onOrBefore(p.ArrivalDate, asOf) {
			res.TotalArrivals++
			arrivalsByDay[*p.ArrivalDate]++
		}
		if onOrBefore(p.CardPrintedDate, asOf) {
			res.CardsPrinted++
		}
		if onOrBefore(p.CardAtCenterDate, asOf) {
			res.CardsAtCenter++
		}
		if onOrBefore(p.CardAtProviderDate, asOf) {
			res.CardsAtProvider++
		}
		if onOrBefore(p.CardReceivedDate, asOf) {
			res.CardsReceived++
		}
		if onOrBefore(p.CardActivationDate, asOf) {
			res.CardsActivated++
		}
		if onOrBefore(p.ProofPictureDate, asOf) {
			res.ProofPictures++
		}
		if p.HadHealthIncident() && onOrBefore(p.HealthDate, asOf) {
			res.HealthIncidents++
			healthByDay[*p.HealthDate]++
		}
		if p.DeathStatus && onOrBefore(p.DeathDate, asOf) {
			res.Deaths++
		}
	}

	if res.TotalRecords == 0 {
		return res
	}

	res.CardsNotDelivered = res.CardsAtProvider - res.CardsReceived

	// Each percentage is taken over the stage immediately above it in the
	// funnel, with a min-1 denominator instead of dividing by zero.
	res.ArrivalPct = pct(res.TotalArrivals, res.TotalVisas)
	res.FormationPct = pct(res.GroupsFormed, res.TotalVisas)
	res.PrintedPct = pct(res.CardsPrinted, res.TotalVisas)
	res.CenterPct = pct(res.CardsAtCenter, res.CardsPrinted)
	res.ProviderPct = pct(res.CardsAtProvider, res.CardsAtCenter)
	res.ReceivedPct = pct(res.CardsReceived, res.CardsAtProvider)
	res.ActivatedPct = pct(res.CardsActivated, res.CardsReceived)

	res.DailyArrivals = toSeries(arrivalsByDay)
	res.DailyHealth = toSeries(healthByDay)

	return res
}

// ComputeByType evaluates the metrics once per person type.
func ComputeByType(persons []*models.Person, asOf time.Time) map[string]*Result {
	results := make(map[string]*Result, len(models.PersonTypes))
	for _, personType := range models.PersonTypes {
		results[personType] = Compute(persons, asOf, Filters{PersonTypes: []string{personType}})
	}
	return results
}

// ComputeProviders evaluates delivery metrics per service provider,
// excluding the Government pseudo-provider, sorted by assigned population
// descending (name ascending on ties, for stable output).
func ComputeProviders(persons []*models.Person, asOf time.Time) []ProviderStats {
	byProvider := map[string][]*models.Person{}
	for _, p := range persons {
		if p.ServiceProvider == "" || p.ServiceProvider == models.ProviderGovernment {
			continue
		}
		byProvider[p.ServiceProvider] = append(byProvider[p.ServiceProvider], p)
	}

	stats := make([]ProviderStats, 0, len(byProvider))
	for provider, assigned := range byProvider {
		s := ProviderStats{Provider: provider, PilgrimsAssigned: len(assigned)}

		deliveryDays := 0
		deliveries := 0
		for _, p := range assigned {
			if onOrBefore(p.CardAtProviderDate, asOf) {
				s.CardsAtProvider++
			}
			if onOrBefore(p.CardReceivedDate, asOf) {
				s.CardsReceived++
			}
			if onOrBefore(p.CardActivationDate, asOf) {
				s.CardsActivated++
			}
			if p.HadHealthIncident() && onOrBefore(p.HealthDate, asOf) {
				s.HealthIncidents++
			}
			if p.CardReceivedDate != nil && p.CardAtProviderDate != nil {
				deliveryDays += int(p.CardReceivedDate.Sub(*p.CardAtProviderDate).Hours() / 24)
				deliveries++
			}
		}

		s.DeliveryRate = round1(float64(s.CardsReceived) / float64(maxInt(s.CardsAtProvider, 1)) * 100)
		if deliveries > 0 {
			s.AvgDeliveryDays = round1(float64(deliveryDays) / float64(deliveries))
		}
		stats = append(stats, s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].PilgrimsAssigned != stats[j].PilgrimsAssigned {
			return stats[i].PilgrimsAssigned > stats[j].PilgrimsAssigned
		}
		return stats[i].Provider < stats[j].Provider
	})
	return stats
}

func toSeries(byDay map[time.Time]int) []DailyCount {
	series := make([]DailyCount, 0, len(byDay))
	for day, count := range byDay {
		series = append(series, DailyCount{Date: day, Count: count})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

func pct(numerator, denominator int) float64 {
	return round2(float64(numerator) / float64(maxInt(denominator, 1)) * 100)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
