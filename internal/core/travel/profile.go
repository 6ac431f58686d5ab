// Package travel assigns travel mode, flight, ports, and accommodation.
package travel

import (
	"fmt"
	"math/rand"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

// Arrival ports. Land travelers always route through the land port; sea
// travelers split between the two sea ports.
const (
	PortJeddahAir  = "Jeddah - KAIA"
	PortMadinahAir = "Madinah - Prince Mohammad"
	PortLand       = "Makkah - Land Port"
	PortYanbuSea   = "Yanbu - Sea Port"
	PortJeddahSea  = "Jeddah - Sea Port"
)

var (
	globalModes = randutil.MustWeighted(
		[]string{models.TravelAir, models.TravelLand, models.TravelSea},
		[]float64{0.95, 0.045, 0.005},
	)
	// Internal pilgrims travel domestically, mostly overland.
	internalModes = randutil.MustWeighted(
		[]string{models.TravelAir, models.TravelLand, models.TravelSea},
		[]float64{0.30, 0.69, 0.01},
	)
	arrivalPorts = randutil.MustWeighted(
		[]string{PortJeddahAir, PortMadinahAir, PortLand, PortYanbuSea, PortJeddahSea},
		[]float64{0.60, 0.25, 0.10, 0.03, 0.02},
	)
	seaPorts = randutil.MustWeighted(
		[]string{PortYanbuSea, PortJeddahSea},
		[]float64{0.6, 0.4},
	)
)

// airlines carrying Hajj traffic (IATA codes).
var airlines = []string{"SV", "EK", "QR", "TK", "EY", "GF", "MS", "PK", "GA", "WY"}

// AccommodationZones in and around Makkah.
var AccommodationZones = []string{
	"Al Aziziyah", "Al Misfalah", "Al Shisha", "Jarwal", "Al Utaibiyyah",
	"Al Hindawiyyah", "Al Zahra", "Kudai", "Al Rusayfah", "Al Naseem",
	"Mina Camp A", "Mina Camp B", "Mina Camp C", "Arafat Zone 1",
	"Arafat Zone 2", "Muzdalifah Zone",
}

// Assign fills the travel profile of one person: mode, flight number for
// air travelers, departure country, arrival port, and accommodation zone.
func Assign(r *rand.Rand, p *models.Person) {
	if p.PersonType == models.TypePilgrimInternal {
		p.TravelMode = internalModes.Sample(r)
	} else {
		p.TravelMode = globalModes.Sample(r)
	}

	if p.TravelMode == models.TravelAir {
		p.FlightNumber = fmt.Sprintf("%s%d", randutil.Choice(r, airlines), randutil.IntBetween(r, 100, 999))
	}

	p.DepartureCountry = p.Nationality

	switch p.TravelMode {
	case models.TravelLand:
		p.ArrivalPort = PortLand
	case models.TravelSea:
		p.ArrivalPort = seaPorts.Sample(r)
	default:
		p.ArrivalPort = arrivalPorts.Sample(r)
	}

	p.AccommodationZone = randutil.Choice(r, AccommodationZones)
}
