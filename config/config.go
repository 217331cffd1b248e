package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ryokan_check/models"
	"ryokan_check/properties"
)

// MinInterval is the floor for the check interval. Polling a small family
// ryokan any harder than this is just rude.
const MinInterval = 15 * time.Minute

type Config struct {
	CheckInDate time.Time
	Nights      int
	Guests      int

	Properties []models.Property
	RoomFilter map[models.Property][]models.RoomInfo

	Interval time.Duration
	Cron     string

	NtfyTopic  string
	NtfyServer string
	SMTP       SMTPConfig

	StateDir string
	DBPath   string
	Headless bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// Configured reports whether enough SMTP settings are present to send.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.From != "" && s.To != ""
}

// New returns a Config seeded from the environment (.env honored).
// Flags and the optional defaults file layer on top of this.
func New() *Config {
	_ = godotenv.Load()

	home, _ := os.UserHomeDir()

	return &Config{
		Nights:     1,
		Guests:     2,
		Interval:   30 * time.Minute,
		Cron:       os.Getenv("CHECK_CRON"),
		NtfyTopic:  os.Getenv("NTFY_TOPIC"),
		NtfyServer: getEnv("NTFY_SERVER", "https://ntfy.sh"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
			To:       os.Getenv("SMTP_TO"),
		},
		StateDir:   getEnv("STATE_DIR", filepath.Join(home, ".ryokan-check")),
		DBPath:     getEnv("DB_PATH", filepath.Join(home, ".ryokan-check", "history.db")),
		Headless:   true,
		RoomFilter: make(map[models.Property][]models.RoomInfo),
	}
}

// Validate rejects bad configuration before any network activity.
func (c *Config) Validate() error {
	if c.CheckInDate.IsZero() {
		return fmt.Errorf("check-in date is required")
	}
	if c.Nights < 1 {
		return fmt.Errorf("nights must be at least 1")
	}
	if c.Guests < 1 {
		return fmt.Errorf("guests must be at least 1")
	}
	if c.Interval < MinInterval {
		return fmt.Errorf("check interval must be at least %s (be respectful to the ryokan)", MinInterval)
	}
	if len(c.Properties) == 0 {
		return fmt.Errorf("at least one property is required")
	}
	for _, p := range c.Properties {
		if _, ok := properties.Get(p); !ok {
			return fmt.Errorf("property %s has no registered configuration", p)
		}
	}
	return nil
}

// CheckOutDate is check-in plus the number of nights.
func (c *Config) CheckOutDate() time.Time {
	return c.CheckInDate.AddDate(0, 0, c.Nights)
}

// RoomsToCheck returns the filtered room set for a property, or the full
// catalog when no filter applies.
func (c *Config) RoomsToCheck(p models.Property) []models.RoomInfo {
	if rooms := c.RoomFilter[p]; len(rooms) > 0 {
		return rooms
	}
	pc, ok := properties.Get(p)
	if !ok {
		return nil
	}
	return pc.Rooms()
}

// StateFileFor returns the notification state file path for a property.
func (c *Config) StateFileFor(p models.Property) string {
	pc, ok := properties.Get(p)
	if !ok {
		return filepath.Join(c.StateDir, string(p)+"-state.json")
	}
	return filepath.Join(c.StateDir, pc.StateFilename)
}

// GuestWarnings lists rooms whose capacity the requested guest count
// exceeds. Warnings, not errors: the stay may still be bookable for fewer.
func (c *Config) GuestWarnings() []string {
	var warnings []string
	for _, p := range c.Properties {
		for _, room := range c.RoomsToCheck(p) {
			if c.Guests > room.MaxGuests() {
				warnings = append(warnings, fmt.Sprintf(
					"%s only allows %d guests, but you requested %d",
					room.DisplayName(), room.MaxGuests(), c.Guests))
			}
		}
	}
	return warnings
}

// FileDefaults is the optional watch.yaml shape. Anything left zero keeps
// the value already in the Config.
type FileDefaults struct {
	Date            string `yaml:"date"`
	Properties      string `yaml:"properties"`
	Rooms           string `yaml:"rooms"`
	Nights          int    `yaml:"nights"`
	Guests          int    `yaml:"guests"`
	IntervalMinutes int    `yaml:"interval_minutes"`
	NtfyTopic       string `yaml:"ntfy_topic"`
	StateDir        string `yaml:"state_dir"`
	DBPath          string `yaml:"db_path"`
	Headless        *bool  `yaml:"headless"`
}

// LoadFileDefaults reads a watch.yaml defaults file.
func LoadFileDefaults(path string) (*FileDefaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fd FileDefaults
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fd, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
