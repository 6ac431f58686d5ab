package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.Seed() != DefaultSeed {
		t.Errorf("seed = %d, want %d", cfg.Seed(), DefaultSeed)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.Addr())
	}
	if cfg.DatasetPath != "" {
		t.Errorf("dataset path = %q, want empty", cfg.DatasetPath)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nusuk", "config.json")
	original := &Config{
		Version:     "1",
		DatasetPath: "/tmp/cards.db",
		DefaultSeed: 7,
		ListenAddr:  ":9090",
		Counts:      map[string]int{"pilgrim_external": 1000},
	}
	if err := saveTo(path, original); err != nil {
		t.Fatalf("saveTo failed: %v", err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.DatasetPath != "/tmp/cards.db" || cfg.Seed() != 7 || cfg.Addr() != ":9090" {
		t.Errorf("config did not round-trip: %+v", cfg)
	}
	if cfg.Counts["pilgrim_external"] != 1000 {
		t.Errorf("counts did not round-trip: %v", cfg.Counts)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := saveTo(path, &Config{}); err != nil {
		t.Fatalf("saveTo failed: %v", err)
	}
	// Corrupt it.
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := loadFrom(path); err == nil {
		t.Error("expected parse error for corrupt config")
	}
}
