// Package cli contains the cobra command definitions. Commands parse
// flags, resolve dates and filters, and delegate to the adapters in
// internal/adapters/cli.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/nusuk/internal/config"
	"github.com/example/nusuk/internal/core/funnel"
	"github.com/example/nusuk/internal/db"
	"github.com/example/nusuk/internal/season"
)

// datasetFlag is the shared --dataset override, applied before the first
// database use.
var datasetFlag string

// applyDataset resolves the snapshot location from the flag or config.
func applyDataset() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if datasetFlag != "" {
		db.SetPath(datasetFlag)
	} else if cfg.DatasetPath != "" {
		db.SetPath(cfg.DatasetPath)
	}
	return cfg, nil
}

// resolveAsOf turns the --as-of and --phase flags into an evaluation
// date. --phase wins when both are given; no flag means end of season.
func resolveAsOf(asOf, phase string) (time.Time, error) {
	if phase != "" {
		t, ok := season.PhaseDate(phase)
		if !ok {
			names := make([]string, len(season.Phases))
			for i, p := range season.Phases {
				names[i] = p.Name
			}
			return time.Time{}, fmt.Errorf("unknown phase %q (one of: %s)", phase, strings.Join(names, ", "))
		}
		return t, nil
	}
	if asOf != "" {
		t, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --as-of date %q, want YYYY-MM-DD", asOf)
		}
		return t, nil
	}
	return season.End, nil
}

// parseFilters builds the filter set from repeated comma-separated flag
// values.
func parseFilters(personTypes, nationalities, providers, channels []string) funnel.Filters {
	return funnel.Filters{
		PersonTypes:   splitAll(personTypes),
		Nationalities: splitAll(nationalities),
		Providers:     splitAll(providers),
		Channels:      splitAll(channels),
	}
}

func splitAll(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
