package server

import (
	"time"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/models"
)

// metricsResponse is the JSON envelope for GET /api/v1/metrics.
type metricsResponse struct {
	AsOf   string               `json:"as_of"`
	Funnel funnelDTO            `json:"funnel"`
	ByType map[string]funnelDTO `json:"by_type,omitempty"`
}

type funnelDTO struct {
	TotalRecords int `json:"total_records"`

	TotalVisas    int     `json:"total_visas"`
	GroupsFormed  int     `json:"groups_formed"`
	TotalArrivals int     `json:"total_arrivals"`
	ArrivalPct    float64 `json:"arrival_pct"`

	CardsPrinted      int `json:"cards_printed"`
	CardsAtCenter     int `json:"cards_at_center"`
	CardsAtProvider   int `json:"cards_at_provider"`
	CardsReceived     int `json:"cards_received"`
	CardsActivated    int `json:"cards_activated"`
	ProofPictures     int `json:"proof_pictures"`
	CardsNotDelivered int `json:"cards_not_delivered"`

	FormationPct float64 `json:"formation_pct"`
	PrintedPct   float64 `json:"printed_pct"`
	CenterPct    float64 `json:"center_pct"`
	ProviderPct  float64 `json:"provider_pct"`
	ReceivedPct  float64 `json:"received_pct"`
	ActivatedPct float64 `json:"activated_pct"`

	HealthIncidents int `json:"health_incidents"`
	Deaths          int `json:"deaths"`

	DailyArrivals []dailyCountDTO `json:"daily_arrivals"`
	DailyHealth   []dailyCountDTO `json:"daily_health"`
}

type dailyCountDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func toFunnelDTO(r *funnel.Result) funnelDTO {
	return funnelDTO{
		TotalRecords:      r.TotalRecords,
		TotalVisas:        r.TotalVisas,
		GroupsFormed:      r.GroupsFormed,
		TotalArrivals:     r.TotalArrivals,
		ArrivalPct:        r.ArrivalPct,
		CardsPrinted:      r.CardsPrinted,
		CardsAtCenter:     r.CardsAtCenter,
		CardsAtProvider:   r.CardsAtProvider,
		CardsReceived:     r.CardsReceived,
		CardsActivated:    r.CardsActivated,
		ProofPictures:     r.ProofPictures,
		CardsNotDelivered: r.CardsNotDelivered,
		FormationPct:      r.FormationPct,
		PrintedPct:        r.PrintedPct,
		CenterPct:         r.CenterPct,
		ProviderPct:       r.ProviderPct,
		ReceivedPct:       r.ReceivedPct,
		ActivatedPct:      r.ActivatedPct,
		HealthIncidents:   r.HealthIncidents,
		Deaths:            r.Deaths,
		DailyArrivals:     toDailyDTO(r.DailyArrivals),
		DailyHealth:       toDailyDTO(r.DailyHealth),
	}
}

func toDailyDTO(series []funnel.DailyCount) []dailyCountDTO {
	out := make([]dailyCountDTO, len(series))
	for i, d := range series {
		out[i] = dailyCountDTO{Date: d.Date.Format("2006-01-02"), Count: d.Count}
	}
	return out
}

type providerDTO struct {
	Provider         string  `json:"provider"`
	PilgrimsAssigned int     `json:"pilgrims_assigned"`
	CardsAtProvider  int     `json:"cards_at_provider"`
	CardsReceived    int     `json:"cards_received"`
	CardsActivated   int     `json:"cards_activated"`
	DeliveryRate     float64 `json:"delivery_rate"`
	AvgDeliveryDays  float64 `json:"avg_delivery_days"`
	HealthIncidents  int     `json:"health_incidents"`
}

// personDTO is the JSON shape for GET /api/v1/persons/{id}. Stage
// booleans are derived from the dates at the boundary.
type personDTO struct {
	PersonID       int    `json:"person_id"`
	PersonType     string `json:"person_type"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Nationality    string `json:"nationality"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
	IDNumber       string `json:"id_number,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
	Channel        string `json:"channel"`
	VisaNumber     string `json:"visa_number"`
	NusukNumber    string `json:"nusuk_number"`

	ServiceProvider string `json:"service_provider"`
	GroupID         int    `json:"group_id,omitempty"`
	SpouseID        *int   `json:"spouse_id,omitempty"`
	FatherID        *int   `json:"father_id,omitempty"`

	TravelMode        string `json:"travel_mode"`
	FlightNumber      string `json:"flight_number,omitempty"`
	DepartureCountry  string `json:"departure_country"`
	ArrivalPort       string `json:"arrival_port"`
	AccommodationZone string `json:"accommodation_zone"`

	Dates map[string]string `json:"dates"`

	HealthStatus string `json:"health_status"`
	HealthDate   string `json:"health_date,omitempty"`
	HealthNotes  string `json:"health_notes,omitempty"`
	DeathStatus  bool   `json:"death_status"`
	DeathDate    string `json:"death_date,omitempty"`
}

func dtoDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func toPersonDTO(p *models.Person) personDTO {
	dates := map[string]string{}
	set := func(key string, t *time.Time) {
		if t != nil {
			dates[key] = t.Format("2006-01-02")
		}
	}
	set("visa_issued", p.VisaIssueDate)
	set("group_formed", p.GroupFormationDate)
	set("travel", p.TravelDate)
	set("arrival", p.ArrivalDate)
	set("card_printed", p.CardPrintedDate)
	set("card_at_center", p.CardAtCenterDate)
	set("card_at_provider", p.CardAtProviderDate)
	set("card_received", p.CardReceivedDate)
	set("card_activated", p.CardActivationDate)
	set("proof_picture", p.ProofPictureDate)

	return personDTO{
		PersonID:          p.PersonID,
		PersonType:        p.PersonType,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Nationality:       p.Nationality,
		Age:               p.Age,
		Sex:               p.Sex,
		IDNumber:          p.IDNumber,
		PassportNumber:    p.PassportNumber,
		Channel:           p.Channel,
		VisaNumber:        p.VisaNumber,
		NusukNumber:       p.NusukNumber,
		ServiceProvider:   p.ServiceProvider,
		GroupID:           p.GroupID,
		SpouseID:          p.SpouseID,
		FatherID:          p.FatherID,
		TravelMode:        p.TravelMode,
		FlightNumber:      p.FlightNumber,
		DepartureCountry:  p.DepartureCountry,
		ArrivalPort:       p.ArrivalPort,
		AccommodationZone: p.AccommodationZone,
		Dates:             dates,
		HealthStatus:      p.HealthStatus,
		HealthDate:        dtoDay(p.HealthDate),
		HealthNotes:       p.HealthNotes,
		DeathStatus:       p.DeathStatus,
		DeathDate:         dtoDay(p.DeathDate),
	}
}
