package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ryokan_check/models"
	"ryokan_check/properties"
)

func validConfig() *Config {
	return &Config{
		CheckInDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Nights:      2,
		Guests:      2,
		Interval:    30 * time.Minute,
		Properties:  []models.Property{models.Miyamaso},
		RoomFilter:  make(map[models.Property][]models.RoomInfo),
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing date", func(c *Config) { c.CheckInDate = time.Time{} }, "date"},
		{"zero nights", func(c *Config) { c.Nights = 0 }, "nights"},
		{"zero guests", func(c *Config) { c.Guests = 0 }, "guests"},
		{"interval too short", func(c *Config) { c.Interval = 10 * time.Minute }, "interval"},
		{"no properties", func(c *Config) { c.Properties = nil }, "property"},
		{"unknown property", func(c *Config) {
			c.Properties = []models.Property{models.Property("grand-hyatt")}
		}, "grand-hyatt"},
	}
	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error mentioning %q, got %q", tc.name, tc.want, err)
		}
	}
}

func TestCheckOutDate(t *testing.T) {
	cfg := validConfig()
	want := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	if got := cfg.CheckOutDate(); !got.Equal(want) {
		t.Fatalf("expected check-out %s, got %s", want.Format("2006-01-02"), got.Format("2006-01-02"))
	}
}

func TestRoomsToCheck(t *testing.T) {
	cfg := validConfig()

	rooms := cfg.RoomsToCheck(models.Miyamaso)
	if len(rooms) != 3 {
		t.Fatalf("no filter must mean the full catalog, got %d rooms", len(rooms))
	}

	cfg.RoomFilter[models.Miyamaso] = []models.RoomInfo{properties.Hinakura}
	rooms = cfg.RoomsToCheck(models.Miyamaso)
	if len(rooms) != 1 || rooms[0].RoomID() != "25112" {
		t.Fatalf("expected the filtered room only, got %v", rooms)
	}
}

func TestGuestWarnings(t *testing.T) {
	cfg := validConfig()
	cfg.Guests = 5
	cfg.RoomFilter[models.Miyamaso] = []models.RoomInfo{properties.Hinakura}

	warnings := cfg.GuestWarnings()
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "4") || !strings.Contains(warnings[0], "5") {
		t.Fatalf("warning should name capacity and request, got %q", warnings[0])
	}

	cfg.Guests = 2
	if warnings := cfg.GuestWarnings(); len(warnings) != 0 {
		t.Fatalf("expected no warnings for 2 guests, got %v", warnings)
	}
}

func TestStateFileFor(t *testing.T) {
	cfg := validConfig()
	cfg.StateDir = "/tmp/ryokan"

	got := cfg.StateFileFor(models.Miyamaso)
	if got != filepath.Join("/tmp/ryokan", "miyamaso-state.json") {
		t.Fatalf("unexpected state path %s", got)
	}

	other := cfg.StateFileFor(models.Miyakowasure)
	if got == other {
		t.Fatalf("properties must not share a state file")
	}
}

func TestLoadFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watch.yaml")
	content := `date: "2026-03-15"
properties: miyamaso
rooms: rian
nights: 2
guests: 3
interval_minutes: 45
ntfy_topic: my-secret-topic
headless: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}

	fd, err := LoadFileDefaults(path)
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if fd.Date != "2026-03-15" || fd.Properties != "miyamaso" || fd.Rooms != "rian" {
		t.Fatalf("unexpected defaults %+v", fd)
	}
	if fd.Nights != 2 || fd.Guests != 3 || fd.IntervalMinutes != 45 {
		t.Fatalf("unexpected numeric defaults %+v", fd)
	}
	if fd.NtfyTopic != "my-secret-topic" {
		t.Fatalf("unexpected topic %q", fd.NtfyTopic)
	}
	if fd.Headless == nil || *fd.Headless {
		t.Fatalf("expected headless explicitly false")
	}

	if _, err := LoadFileDefaults(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing defaults file")
	}
}
