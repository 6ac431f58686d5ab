package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
)

// PersonAdapter is a thin adapter that translates CLI operations to
// PersonService calls.
type PersonAdapter struct {
	service primary.PersonService
	out     io.Writer
}

// NewPersonAdapter creates a new PersonAdapter with the given service.
func NewPersonAdapter(service primary.PersonService, out io.Writer) *PersonAdapter {
	return &PersonAdapter{service: service, out: out}
}

func day(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// Show displays one person record with its full lifecycle.
func (a *PersonAdapter) Show(ctx context.Context, personID int) error {
	p, err := a.service.GetPerson(ctx, personID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nPerson %d (%s)\n", p.PersonID, p.PersonType)
	fmt.Fprintf(a.out, "Name:        %s %s\n", p.FirstName, p.LastName)
	fmt.Fprintf(a.out, "Nationality: %s (%s, age %d)\n", p.Nationality, p.Sex, p.Age)
	if p.IDNumber != "" {
		fmt.Fprintf(a.out, "ID number:   %s\n", p.IDNumber)
	}
	if p.PassportNumber != "" {
		fmt.Fprintf(a.out, "Passport:    %s\n", p.PassportNumber)
	}
	fmt.Fprintf(a.out, "Channel:     %s\n", p.Channel)
	fmt.Fprintf(a.out, "Visa:        %s\n", p.VisaNumber)
	fmt.Fprintf(a.out, "Nusuk:       %s\n", p.NusukNumber)

	fmt.Fprintf(a.out, "\nProvider:    %s\n", p.ServiceProvider)
	if p.GroupID != models.GroupNone {
		fmt.Fprintf(a.out, "Group:       %d\n", p.GroupID)
	}
	if p.SpouseID != nil {
		fmt.Fprintf(a.out, "Spouse:      %d\n", *p.SpouseID)
	}
	if p.FatherID != nil {
		fmt.Fprintf(a.out, "Father:      %d\n", *p.FatherID)
	}

	fmt.Fprintf(a.out, "\nTravel:      %s from %s via %s\n", p.TravelMode, p.DepartureCountry, p.ArrivalPort)
	if p.FlightNumber != "" {
		fmt.Fprintf(a.out, "Flight:      %s\n", p.FlightNumber)
	}
	fmt.Fprintf(a.out, "Zone:        %s\n", p.AccommodationZone)

	fmt.Fprintln(a.out, "\nLifecycle:")
	fmt.Fprintf(a.out, "  visa issued      %s\n", day(p.VisaIssueDate))
	fmt.Fprintf(a.out, "  group formed     %s\n", day(p.GroupFormationDate))
	fmt.Fprintf(a.out, "  travel           %s\n", day(p.TravelDate))
	fmt.Fprintf(a.out, "  arrival          %s\n", day(p.ArrivalDate))
	fmt.Fprintf(a.out, "  card printed     %s\n", day(p.CardPrintedDate))
	fmt.Fprintf(a.out, "  at center        %s\n", day(p.CardAtCenterDate))
	fmt.Fprintf(a.out, "  at provider      %s\n", day(p.CardAtProviderDate))
	fmt.Fprintf(a.out, "  received         %s\n", day(p.CardReceivedDate))
	fmt.Fprintf(a.out, "  activated        %s\n", day(p.CardActivationDate))
	fmt.Fprintf(a.out, "  proof picture    %s\n", day(p.ProofPictureDate))

	if p.HadHealthIncident() {
		fmt.Fprintf(a.out, "\nHealth:      %s on %s\n", p.HealthStatus, day(p.HealthDate))
		if p.HealthNotes != "" {
			fmt.Fprintf(a.out, "Notes:       %s\n", p.HealthNotes)
		}
		if p.DeathStatus {
			fmt.Fprintf(a.out, "Deceased:    %s\n", day(p.DeathDate))
		}
	}
	fmt.Fprintln(a.out)
	return nil
}
