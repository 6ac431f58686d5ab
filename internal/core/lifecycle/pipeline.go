// Package lifecycle generates the per-person chain of dependent calendar
// dates: visa, group formation, travel and arrival, then the five
// card-handling stages. Each stage's occurrence is a Bernoulli draw
// conditioned on the person type and on having reached the prior stage;
// each date cascades from the prior stage's date, which makes the
// monotonicity of the chain hold by construction.
package lifecycle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/nusuk/internal/core/randutil"
	"github.com/example/nusuk/internal/models"
)

// window is a date range sampled with a distribution curve.
type window struct {
	Start time.Time
	End   time.Time
	Curve randutil.Curve
}

// arrivalParams shape the arrival wave of one person type: a beta-skewed
// offset into a fixed-length window, an arrival probability, and the
// maximum travel-to-arrival lag in days.
type arrivalParams struct {
	Prob         float64
	WindowStart  time.Time
	WindowDays   int
	BetaA        float64
	BetaB        float64
	TravelLagMax int
}

// Params hold every stage probability and window for one person type.
type Params struct {
	Visa    window
	Arrival arrivalParams

	// Card funnel advancement probabilities, each conditional on the
	// prior stage having been reached.
	Printed   float64
	Center    float64
	Provider  float64
	Received  float64
	Activated float64
	Proof     float64
}

// Group formation applies to pilgrim types only.
var (
	groupFormationProb   = 0.96
	groupFormationWindow = window{
		Start: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC),
		Curve: randutil.CurveEarlyHeavy,
	}
	printWindow = window{
		Start: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC),
		Curve: randutil.CurveEarlyHeavy,
	}
)

// Card stage date offsets (uniform days from the base date).
const (
	centerOffsetMin, centerOffsetMax         = 1, 5
	providerOffsetMin, providerOffsetMax     = 2, 7
	receivedOffsetMin, receivedOffsetMax     = 1, 5
	activationOffsetMin, activationOffsetMax = 0, 7
	proofOffsetMin, proofOffsetMax           = 0, 3
	groupClampMin, groupClampMax             = 1, 10
)

// paramsByType is the per-type parameter table. Unknown types are a
// configuration error surfaced by ParamsFor.
var paramsByType = map[string]Params{
	models.TypePilgrimExternal: {
		Visa: window{
			Start: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
			Curve: randutil.CurveEarlyHeavy,
		},
		Arrival: arrivalParams{
			Prob:         0.93,
			WindowStart:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			WindowDays:   31,
			BetaA:        3,
			BetaB:        2.5,
			TravelLagMax: 2,
		},
		Printed: 0.72, Center: 0.94, Provider: 0.93,
		Received: 0.88, Activated: 0.59, Proof: 0.85,
	},
	models.TypePilgrimInternal: {
		Visa: window{
			Start: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC),
			Curve: randutil.CurveEarlyHeavy,
		},
		Arrival: arrivalParams{
			Prob:         0.97,
			WindowStart:  time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
			WindowDays:   19,
			BetaA:        4,
			BetaB:        2,
			TravelLagMax: 1,
		},
		Printed: 0.55, Center: 0.90, Provider: 0.90,
		Received: 0.85, Activated: 0.50, Proof: 0.80,
	},
	models.TypeServiceWorker: {
		Visa:    staffVisaWindow,
		Arrival: staffArrival,
		Printed: 0.65, Center: 0.90, Provider: 0.88,
		Received: 0.80, Activated: 0.55, Proof: 0.75,
	},
	models.TypeGovernment: {
		Visa:    staffVisaWindow,
		Arrival: staffArrival,
		Printed: 0.80, Center: 0.95, Provider: 0.95,
		Received: 0.95, Activated: 0.90, Proof: 0.90,
	},
	models.TypeHealthcare: {
		Visa:    staffVisaWindow,
		Arrival: staffArrival,
		Printed: 0.80, Center: 0.95, Provider: 0.95,
		Received: 0.95, Activated: 0.90, Proof: 0.90,
	},
}

// Staff share one permit window and arrive ahead of the pilgrim wave.
var (
	staffVisaWindow = window{
		Start: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		Curve: randutil.CurveEarlyHeavy,
	}
	staffArrival = arrivalParams{
		Prob:         1.0,
		WindowStart:  time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		WindowDays:   30,
		BetaA:        2,
		BetaB:        3,
		TravelLagMax: 2,
	}
)

// ParamsFor returns the stage parameters for a person type.
func ParamsFor(personType string) (Params, error) {
	params, ok := paramsByType[personType]
	if !ok {
		return Params{}, fmt.Errorf("no lifecycle parameters for person type %q", personType)
	}
	return params, nil
}

// Run threads one person through the full pipeline, setting every stage
// date the person reaches. The fold carries the last successful date
// forward, so a failed stage leaves all downstream stages unset.
func Run(r *rand.Rand, p *models.Person) error {
	params, err := ParamsFor(p.PersonType)
	if err != nil {
		return err
	}

	// Visa / permit: unconditional for every type.
	visa := randutil.DateInWindow(r, params.Visa.Start, params.Visa.End, params.Visa.Curve)
	p.VisaIssueDate = &visa

	// Group formation: pilgrims only, clamped to never precede the visa.
	if models.IsPilgrimType(p.PersonType) && r.Float64() < groupFormationProb {
		formed := randutil.DateInWindow(r, groupFormationWindow.Start, groupFormationWindow.End, groupFormationWindow.Curve)
		if formed.Before(visa) {
			formed = randutil.AddDays(visa, randutil.IntBetween(r, groupClampMin, groupClampMax))
		}
		p.GroupFormationDate = &formed
	}

	// Travel and arrival.
	if r.Float64() < params.Arrival.Prob {
		offset := int(randutil.Beta(r, params.Arrival.BetaA, params.Arrival.BetaB) * float64(params.Arrival.WindowDays))
		arrival := randutil.AddDays(params.Arrival.WindowStart, offset)
		travel := randutil.AddDays(arrival, -randutil.IntBetween(r, 0, params.Arrival.TravelLagMax))
		p.ArrivalDate = &arrival
		p.TravelDate = &travel
	}

	runCardStages(r, p, params)
	return nil
}

// runCardStages advances the person through the card funnel. The print
// date is drawn from its own window (same pipeline epoch as the visa);
// every later stage cascades from the stage before it.
func runCardStages(r *rand.Rand, p *models.Person, params Params) {
	if r.Float64() >= params.Printed {
		return
	}
	printed := randutil.DateInWindow(r, printWindow.Start, printWindow.End, printWindow.Curve)
	p.CardPrintedDate = &printed

	if r.Float64() >= params.Center {
		return
	}
	if p.CardPrintedDate == nil {
		return // defensive skip, prior date missing
	}
	center := randutil.AddDays(*p.CardPrintedDate, randutil.IntBetween(r, centerOffsetMin, centerOffsetMax))
	p.CardAtCenterDate = &center

	if r.Float64() >= params.Provider {
		return
	}
	if p.CardAtCenterDate == nil {
		return
	}
	provider := randutil.AddDays(*p.CardAtCenterDate, randutil.IntBetween(r, providerOffsetMin, providerOffsetMax))
	p.CardAtProviderDate = &provider

	if r.Float64() >= params.Received {
		return
	}
	if p.CardAtProviderDate == nil {
		return
	}
	// A card is received once the provider has it AND the pilgrim has
	// arrived: the base is the later of the two dates. When arrival is
	// missing the provider date stands alone.
	base := *p.CardAtProviderDate
	if p.ArrivalDate != nil && p.ArrivalDate.After(base) {
		base = *p.ArrivalDate
	}
	received := randutil.AddDays(base, randutil.IntBetween(r, receivedOffsetMin, receivedOffsetMax))
	p.CardReceivedDate = &received

	if r.Float64() >= params.Activated {
		return
	}
	if p.CardReceivedDate == nil {
		return
	}
	activated := randutil.AddDays(*p.CardReceivedDate, randutil.IntBetween(r, activationOffsetMin, activationOffsetMax))
	p.CardActivationDate = &activated

	if r.Float64() >= params.Proof {
		return
	}
	if p.CardActivationDate == nil {
		return
	}
	proof := randutil.AddDays(*p.CardActivationDate, randutil.IntBetween(r, proofOffsetMin, proofOffsetMax))
	p.ProofPictureDate = &proof
}
