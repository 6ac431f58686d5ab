package cli

import (
	"testing"
	"time"

	"github.com/example/nusuk/internal/season"
)

func TestResolveAsOf(t *testing.T) {
	tests := []struct {
		name    string
		asOf    string
		phase   string
		want    time.Time
		wantErr bool
	}{
		{name: "default is season end", want: season.End},
		{name: "explicit date", asOf: "2025-05-10", want: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "phase", phase: "arafah", want: season.ArafahDay},
		{name: "phase wins over date", asOf: "2025-05-10", phase: "arafah", want: season.ArafahDay},
		{name: "bad date", asOf: "10/05/2025", wantErr: true},
		{name: "unknown phase", phase: "ramadan", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAsOf(tt.asOf, tt.phase)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveAsOf() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("resolveAsOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitAll(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: nil},
		{name: "single", input: []string{"Egypt"}, want: []string{"Egypt"}},
		{name: "comma separated", input: []string{"Egypt,Indonesia"}, want: []string{"Egypt", "Indonesia"}},
		{name: "repeated and mixed", input: []string{"Egypt, Indonesia", "Pakistan"}, want: []string{"Egypt", "Indonesia", "Pakistan"}},
		{name: "blank entries dropped", input: []string{" , ,Egypt,"}, want: []string{"Egypt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAll(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitAll() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitAll()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFilters(t *testing.T) {
	f := parseFilters([]string{"pilgrim_external"}, []string{"Egypt,Indonesia"}, nil, []string{"online"})
	if len(f.PersonTypes) != 1 || f.PersonTypes[0] != "pilgrim_external" {
		t.Errorf("PersonTypes = %v", f.PersonTypes)
	}
	if len(f.Nationalities) != 2 {
		t.Errorf("Nationalities = %v", f.Nationalities)
	}
	if f.Providers != nil {
		t.Errorf("Providers = %v, want nil", f.Providers)
	}
	if len(f.Channels) != 1 || f.Channels[0] != "online" {
		t.Errorf("Channels = %v", f.Channels)
	}
}
