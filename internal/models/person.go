// Package models contains domain types for the card program dataset.
// SQL persistence lives in internal/adapters/sqlite/*.go
package models

import "time"

// Person type constants
const (
	TypePilgrimExternal = "pilgrim_external"
	TypePilgrimInternal = "pilgrim_internal"
	TypeServiceWorker   = "service_worker"
	TypeGovernment      = "government"
	TypeHealthcare      = "healthcare"
)

// PersonTypes lists all valid person types in generation order.
var PersonTypes = []string{
	TypePilgrimExternal,
	TypePilgrimInternal,
	TypeServiceWorker,
	TypeGovernment,
	TypeHealthcare,
}

// IsPilgrimType reports whether the type participates in groups and family links.
func IsPilgrimType(personType string) bool {
	return personType == TypePilgrimExternal || personType == TypePilgrimInternal
}

// IsStaffType reports whether the type is season staff rather than a pilgrim.
func IsStaffType(personType string) bool {
	return personType == TypeServiceWorker || personType == TypeGovernment || personType == TypeHealthcare
}

// IsValidPersonType reports whether the type is one of the known variants.
func IsValidPersonType(personType string) bool {
	for _, t := range PersonTypes {
		if t == personType {
			return true
		}
	}
	return false
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
)

// Registration channel constants
const (
	ChannelB2B = "B2B"
	ChannelB2C = "B2C"
)

// Travel mode constants
const (
	TravelAir  = "air"
	TravelLand = "land"
	TravelSea  = "sea"
)

// Health severity constants. "none" means no incident was recorded.
const (
	HealthNone     = "none"
	HealthMinor    = "minor"
	HealthModerate = "moderate"
	HealthSevere   = "severe"
	HealthCritical = "critical"
)

// GroupNone is the group_id sentinel for people outside pilgrim groups.
const GroupNone = 0

// ProviderGovernment is the pseudo-provider for government and healthcare
// staff. It is excluded from per-provider metrics.
const ProviderGovernment = "Government"

// Person is one row of the dataset snapshot. All fields are populated in a
// single generation pass and never mutated afterwards. A nil date pointer
// means the corresponding stage was never reached.
type Person struct {
	// Identity
	PersonID       int
	PersonType     string
	FirstName      string
	LastName       string
	Nationality    string
	Age            int
	Sex            string
	IDNumber       string // set for Saudi nationals, empty otherwise
	PassportNumber string // set for foreign nationals, empty otherwise
	Channel        string // B2B or B2C
	VisaNumber     string
	NusukNumber    string

	// Affiliation
	ServiceProvider string
	GroupID         int
	SpouseID        *int
	FatherID        *int

	// Travel
	TravelMode        string
	FlightNumber      string // present iff TravelMode == air
	DepartureCountry  string
	ArrivalPort       string
	AccommodationZone string

	// Lifecycle dates. The snapshot file also carries a boolean column per
	// reachable stage; it always equals (stage date != nil) and is written
	// at insert time.
	VisaIssueDate      *time.Time
	GroupFormationDate *time.Time
	TravelDate         *time.Time
	ArrivalDate        *time.Time
	CardPrintedDate    *time.Time
	CardAtCenterDate   *time.Time
	CardAtProviderDate *time.Time
	CardReceivedDate   *time.Time
	CardActivationDate *time.Time
	ProofPictureDate   *time.Time

	// Health
	HealthStatus string
	HealthDate   *time.Time
	HealthNotes  string
	DeathStatus  bool
	DeathDate    *time.Time
}

// Arrived reports whether the person physically arrived.
func (p *Person) Arrived() bool { return p.ArrivalDate != nil }

// HadHealthIncident reports whether a health incident was recorded.
func (p *Person) HadHealthIncident() bool {
	return p.HealthStatus != "" && p.HealthStatus != HealthNone
}

// StageDates returns the card pipeline dates in funnel order
// (printed, center, provider, received, activation, proof).
func (p *Person) StageDates() []*time.Time {
	return []*time.Time{
		p.CardPrintedDate,
		p.CardAtCenterDate,
		p.CardAtProviderDate,
		p.CardReceivedDate,
		p.CardActivationDate,
		p.ProofPictureDate,
	}
}
