// Package identity samples person records: type, nationality, name, age,
// sex, identifier numbers, and registration channel.
package identity

import (
	"fmt"
	"math/rand"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

// HomeCountry is the nationality of internal pilgrims and most staff.
const HomeCountry = "Saudi Arabia"

// externalNationalities weights the origin countries of external pilgrims.
// Weights are normalized by the sampler, so they only need to be relative.
var externalNationalities = map[string]float64{
	"Indonesia": 0.16, "Pakistan": 0.13, "India": 0.13, "Bangladesh": 0.09,
	"Nigeria": 0.07, "Iran": 0.06, "Algeria": 0.03, "Turkey": 0.03,
	"Egypt": 0.03, "Sudan": 0.02, "Malaysia": 0.02,
	"Morocco": 0.015, "Iraq": 0.015, "Yemen": 0.015, "Jordan": 0.015,
	"Syria": 0.01, "Tunisia": 0.01, "Libya": 0.01, "Somalia": 0.01,
	"Afghanistan": 0.01, "Uzbekistan": 0.008, "Senegal": 0.008,
	"Tanzania": 0.007, "Niger": 0.007, "Mali": 0.006, "Ethiopia": 0.006,
	"Philippines": 0.005, "China": 0.005, "United Kingdom": 0.005,
	"France": 0.005, "USA": 0.005, "Germany": 0.004, "Russia": 0.004,
	"Bosnia": 0.003, "Thailand": 0.003, "Cameroon": 0.003, "Ghana": 0.003,
	"Guinea": 0.003, "Ivory Coast": 0.003, "Kenya": 0.002,
	"Sri Lanka": 0.002, "Myanmar": 0.002, "Tajikistan": 0.002,
}

// externalNationalityOrder fixes the iteration order of the weight map so
// sampling is reproducible across runs.
var externalNationalityOrder = []string{
	"Indonesia", "Pakistan", "India", "Bangladesh",
	"Nigeria", "Iran", "Algeria", "Turkey",
	"Egypt", "Sudan", "Malaysia",
	"Morocco", "Iraq", "Yemen", "Jordan",
	"Syria", "Tunisia", "Libya", "Somalia",
	"Afghanistan", "Uzbekistan", "Senegal",
	"Tanzania", "Niger", "Mali", "Ethiopia",
	"Philippines", "China", "United Kingdom",
	"France", "USA", "Germany", "Russia",
	"Bosnia", "Thailand", "Cameroon", "Ghana",
	"Guinea", "Ivory Coast", "Kenya",
	"Sri Lanka", "Myanmar", "Tajikistan",
}

// staffForeignNationalities are the non-Saudi origins of the 30% foreign
// staff share.
var staffForeignNationalities = []string{
	"Egypt", "Pakistan", "India", "Bangladesh",
	"Philippines", "Indonesia", "Sudan", "Yemen",
}

const (
	maleProbability  = 0.52
	staffSaudiShare  = 0.70
	externalB2BShare = 0.85
	internalB2BShare = 0.40
)

// ageParams is a bounded normal distribution for one person type.
type ageParams struct {
	Mean, Stddev float64
	Min, Max     int
}

var agesByType = map[string]ageParams{
	models.TypePilgrimExternal: {Mean: 50, Stddev: 12, Min: 18, Max: 90},
	models.TypePilgrimInternal: {Mean: 50, Stddev: 12, Min: 18, Max: 90},
	models.TypeServiceWorker:   {Mean: 30, Stddev: 7, Min: 20, Max: 55},
	models.TypeHealthcare:      {Mean: 35, Stddev: 8, Min: 24, Max: 60},
	models.TypeGovernment:      {Mean: 40, Stddev: 8, Min: 25, Max: 62},
}

// Sampler produces person records with internally consistent demographics.
type Sampler struct {
	externalNat *randutil.Weighted
}

// NewSampler validates the configured distributions and builds the sampler.
// A malformed weight table or a name pool gap is a configuration error and
// fails here, before any record is generated.
func NewSampler() (*Sampler, error) {
	weights := make([]float64, len(externalNationalityOrder))
	for i, nat := range externalNationalityOrder {
		w, ok := externalNationalities[nat]
		if !ok {
			return nil, fmt.Errorf("nationality %q listed in order but missing a weight", nat)
		}
		weights[i] = w
	}
	if len(externalNationalities) != len(externalNationalityOrder) {
		return nil, fmt.Errorf("nationality weight table has %d entries, order list has %d",
			len(externalNationalities), len(externalNationalityOrder))
	}

	extNat, err := randutil.NewWeighted(externalNationalityOrder, weights)
	if err != nil {
		return nil, fmt.Errorf("external nationality weights: %w", err)
	}

	// Every region referenced by the nationality map must have full pools.
	for nat, region := range nationalityRegion {
		pool, ok := namePools[region]
		if !ok {
			return nil, fmt.Errorf("nationality %q maps to unknown region %q", nat, region)
		}
		if len(pool.MaleFirst) == 0 || len(pool.FemaleFirst) == 0 || len(pool.Last) == 0 {
			return nil, fmt.Errorf("region %q has an empty name pool", region)
		}
	}

	return &Sampler{externalNat: extNat}, nil
}

// Sample generates one person record of the given type.
// Returns an error for unrecognized person types (configuration error).
func (s *Sampler) Sample(r *rand.Rand, personID int, personType string) (*models.Person, error) {
	ages, ok := agesByType[personType]
	if !ok {
		return nil, fmt.Errorf("unknown person type %q", personType)
	}

	p := &models.Person{
		PersonID:   personID,
		PersonType: personType,
	}

	switch personType {
	case models.TypePilgrimExternal:
		p.Nationality = s.externalNat.Sample(r)
	case models.TypePilgrimInternal:
		p.Nationality = HomeCountry
	default:
		if r.Float64() < staffSaudiShare {
			p.Nationality = HomeCountry
		} else {
			p.Nationality = randutil.Choice(r, staffForeignNationalities)
		}
	}

	if r.Float64() < maleProbability {
		p.Sex = models.SexMale
	} else {
		p.Sex = models.SexFemale
	}

	p.FirstName, p.LastName = sampleName(r, p.Nationality, p.Sex)
	p.Age = randutil.ClippedNormalInt(r, ages.Mean, ages.Stddev, ages.Min, ages.Max)

	// Exactly one identifier is set, keyed by nationality: Saudi nationals
	// carry a national ID starting with 1, everyone else a passport.
	if p.Nationality == HomeCountry {
		p.IDNumber = "1" + randutil.Digits(r, 9)
	} else {
		p.PassportNumber = randutil.UpperLetter(r) + randutil.Digits(r, 8)
	}

	switch personType {
	case models.TypePilgrimExternal:
		p.Channel = channelFromRoll(r, externalB2BShare)
	case models.TypePilgrimInternal:
		p.Channel = channelFromRoll(r, internalB2BShare)
	default:
		p.Channel = models.ChannelB2B
	}

	p.VisaNumber = "HJ25" + randutil.Digits(r, 8)
	p.NusukNumber = "NSK-25-" + randutil.Digits(r, 7)

	return p, nil
}

func channelFromRoll(r *rand.Rand, b2bShare float64) string {
	if r.Float64() < b2bShare {
		return models.ChannelB2B
	}
	return models.ChannelB2C
}

// sampleName draws a culturally matched first/last name for the nationality.
func sampleName(r *rand.Rand, nationality, sex string) (first, last string) {
	pool := namePools[regionFor(nationality)]
	if sex == models.SexMale {
		first = randutil.Choice(r, pool.MaleFirst)
	} else {
		first = randutil.Choice(r, pool.FemaleFirst)
	}
	last = randutil.Choice(r, pool.Last)
	return first, last
}
