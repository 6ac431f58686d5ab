package travel

import (
	"strconv"
	"testing"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

func TestAssignFlightOnlyForAir(t *testing.T) {
	r := randutil.New(42)

	for i := 0; i < 3000; i++ {
		p := &models.Person{PersonID: i + 1, PersonType: models.TypePilgrimExternal, Nationality: "Indonesia"}
		Assign(r, p)

		if p.TravelMode == models.TravelAir {
			if len(p.FlightNumber) != 5 {
				t.Fatalf("air traveler flight %q", p.FlightNumber)
			}
			if n, err := strconv.Atoi(p.FlightNumber[2:]); err != nil || n < 100 || n > 999 {
				t.Fatalf("flight number %q lacks a 3-digit suffix", p.FlightNumber)
			}
		} else if p.FlightNumber != "" {
			t.Fatalf("%s traveler has flight %q", p.TravelMode, p.FlightNumber)
		}
	}
}

func TestAssignPortRouting(t *testing.T) {
	r := randutil.New(7)
	seaSeen := map[string]int{}

	for i := 0; i < 5000; i++ {
		p := &models.Person{PersonID: i + 1, PersonType: models.TypePilgrimExternal, Nationality: "Pakistan"}
		Assign(r, p)

		switch p.TravelMode {
		case models.TravelLand:
			if p.ArrivalPort != PortLand {
				t.Fatalf("land traveler arrived at %q", p.ArrivalPort)
			}
		case models.TravelSea:
			if p.ArrivalPort != PortYanbuSea && p.ArrivalPort != PortJeddahSea {
				t.Fatalf("sea traveler arrived at %q", p.ArrivalPort)
			}
			seaSeen[p.ArrivalPort]++
		}

		if p.ArrivalPort == "" || p.AccommodationZone == "" {
			t.Fatal("port and zone must always be set")
		}
		if p.DepartureCountry != p.Nationality {
			t.Fatalf("departure country %q != nationality %q", p.DepartureCountry, p.Nationality)
		}
	}
	_ = seaSeen // sea share is 0.5%, both ports appearing is not guaranteed at this sample size
}

func TestAssignInternalModeSplit(t *testing.T) {
	r := randutil.New(11)
	land := 0
	n := 5000

	for i := 0; i < n; i++ {
		p := &models.Person{PersonID: i + 1, PersonType: models.TypePilgrimInternal, Nationality: "Saudi Arabia"}
		Assign(r, p)
		if p.TravelMode == models.TravelLand {
			land++
		}
	}

	// Internal pilgrims travel 69% by land.
	if land < 3200 || land > 3700 {
		t.Errorf("internal land share %d/%d, expected near 3450", land, n)
	}
}
