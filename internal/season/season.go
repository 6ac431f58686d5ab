// Package season holds the Hajj 2025 timeline the simulation runs against.
package season

import "time"

// Key dates of the season. All generated dates fall inside
// [Start, End]; ritual-period sampling uses ArafahDay..HajjEnd.
var (
	Start       = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	End         = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	ArrivalPeak = time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC)
	ArafahDay   = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	HajjEnd     = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
)

// Phase is a named point of the season usable as an as-of shorthand.
type Phase struct {
	Name string
	Date time.Time
}

// Phases lists the season phase presets in chronological order.
var Phases = []Phase{
	{Name: "pre-season", Date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
	{Name: "early-arrivals", Date: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)},
	{Name: "peak-arrival", Date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)},
	{Name: "arrival-deadline", Date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)},
	{Name: "arafah", Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
	{Name: "post-hajj", Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	{Name: "season-end", Date: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
}

// PhaseDate resolves a phase name to its date.
func PhaseDate(name string) (time.Time, bool) {
	for _, p := range Phases {
		if p.Name == name {
			return p.Date, true
		}
	}
	return time.Time{}, false
}

// Day truncates a timestamp to midnight UTC. Snapshot dates are calendar
// dates, so comparisons happen at day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
