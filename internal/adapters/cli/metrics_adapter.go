// Package cli provides thin CLI adapters that translate between CLI
// concerns and application services. Adapters handle output formatting
// but delegate all computation to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/models"
	"github.com/example/nusuk/internal/ports/primary"
)

// MetricsAdapter is a thin adapter that translates CLI operations to
// MetricsService calls.
type MetricsAdapter struct {
	service primary.MetricsService
	out     io.Writer
}

// NewMetricsAdapter creates a new MetricsAdapter with the given service.
func NewMetricsAdapter(service primary.MetricsService, out io.Writer) *MetricsAdapter {
	return &MetricsAdapter{service: service, out: out}
}

// pctColor picks a color for a funnel conversion percentage.
func pctColor(pct float64) *color.Color {
	switch {
	case pct >= 85:
		return color.New(color.FgHiGreen)
	case pct >= 60:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// Funnel renders the metric set as of a date.
func (a *MetricsAdapter) Funnel(ctx context.Context, asOf time.Time, filters funnel.Filters, byType bool) error {
	resp, err := a.service.GetMetrics(ctx, primary.MetricsRequest{AsOf: asOf, Filters: filters, ByType: byType})
	if err != nil {
		return fmt.Errorf("failed to compute metrics: %w", err)
	}

	fmt.Fprintf(a.out, "\nCard funnel as of %s\n", resp.AsOf.Format("2006-01-02"))
	fmt.Fprintln(a.out, "────────────────────────────────────────────")
	a.renderResult(resp.Result)

	if byType {
		for _, personType := range models.PersonTypes {
			r := resp.ByType[personType]
			if r == nil || r.TotalRecords == 0 {
				continue
			}
			fmt.Fprintf(a.out, "\n%s (%d records)\n", personType, r.TotalRecords)
			fmt.Fprintln(a.out, "────────────────────────────────────────────")
			a.renderResult(r)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

func (a *MetricsAdapter) renderResult(r *funnel.Result) {
	row := func(label string, count int, pct float64, withPct bool) {
		if withPct {
			fmt.Fprintf(a.out, "%-22s %9d  %s\n", label, count, pctColor(pct).Sprintf("%6.2f%%", pct))
		} else {
			fmt.Fprintf(a.out, "%-22s %9d\n", label, count)
		}
	}

	row("Records", r.TotalRecords, 0, false)
	row("Visas issued", r.TotalVisas, 0, false)
	row("Groups formed", r.GroupsFormed, r.FormationPct, true)
	row("Arrived", r.TotalArrivals, r.ArrivalPct, true)
	row("Cards printed", r.CardsPrinted, r.PrintedPct, true)
	row("At center", r.CardsAtCenter, r.CenterPct, true)
	row("At provider", r.CardsAtProvider, r.ProviderPct, true)
	row("Received", r.CardsReceived, r.ReceivedPct, true)
	row("Activated", r.CardsActivated, r.ActivatedPct, true)
	row("Proof pictures", r.ProofPictures, 0, false)
	if r.CardsNotDelivered > 0 {
		fmt.Fprintf(a.out, "%-22s %9s\n", "Not delivered", color.New(color.FgYellow).Sprintf("%d", r.CardsNotDelivered))
	}
	fmt.Fprintf(a.out, "%-22s %9d\n", "Health incidents", r.HealthIncidents)
	if r.Deaths > 0 {
		fmt.Fprintf(a.out, "%-22s %9s\n", "Deaths", color.New(color.FgRed).Sprintf("%d", r.Deaths))
	}
}

// Providers renders the per-provider delivery table as of a date.
func (a *MetricsAdapter) Providers(ctx context.Context, asOf time.Time) error {
	stats, err := a.service.GetProviderMetrics(ctx, asOf)
	if err != nil {
		return fmt.Errorf("failed to compute provider metrics: %w", err)
	}

	if len(stats) == 0 {
		fmt.Fprintln(a.out, "No providers found")
		return nil
	}

	fmt.Fprintf(a.out, "\nProvider delivery as of %s\n\n", asOf.Format("2006-01-02"))
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROVIDER\tASSIGNED\tAT PROVIDER\tRECEIVED\tACTIVATED\tDELIVERY\tAVG DAYS\tINCIDENTS")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.1f%%\t%.1f\t%d\n",
			s.Provider, s.PilgrimsAssigned, s.CardsAtProvider, s.CardsReceived,
			s.CardsActivated, s.DeliveryRate, s.AvgDeliveryDays, s.HealthIncidents)
	}
	w.Flush()
	fmt.Fprintln(a.out)
	return nil
}

// Doctor renders the dataset integrity checks. Returns an error when any
// check fails so the command can exit non-zero.
func (a *MetricsAdapter) Doctor(ctx context.Context) error {
	checks, err := a.service.VerifyDataset(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify dataset: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Check                 Status")
	fmt.Fprintln(a.out, "─────────────────────────────")
	failed := false
	for _, c := range checks {
		status := color.New(color.FgHiGreen).Sprint("✓")
		if !c.OK() {
			status = color.New(color.FgRed).Sprintf("✗ %d violations", c.Violations)
			failed = true
		}
		fmt.Fprintf(a.out, "%-21s %s\n", c.Name, status)
	}
	fmt.Fprintln(a.out)

	if failed {
		for _, c := range checks {
			for _, sample := range c.Samples {
				fmt.Fprintf(a.out, "  %s: %s\n", c.Name, sample)
			}
		}
		return fmt.Errorf("dataset integrity checks failed")
	}
	fmt.Fprintln(a.out, "All checks passed.")
	return nil
}

// Info renders the provenance of the current snapshot.
func (a *MetricsAdapter) Info(ctx context.Context) error {
	info, err := a.service.DatasetInfo(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nRun:       %s\n", info.RunID)
	fmt.Fprintf(a.out, "Seed:      %d\n", info.Seed)
	fmt.Fprintf(a.out, "Generated: %s\n", info.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(a.out, "Records:   %d\n", info.TotalRecords)
	for _, personType := range models.PersonTypes {
		if count, ok := info.CountsByType[personType]; ok {
			fmt.Fprintf(a.out, "  %-18s %d\n", personType, count)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}
