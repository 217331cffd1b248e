// Package state tracks which room+date combinations have already been
// notified, so the poll loop does not spam on every cycle.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"ryokan_check/models"
)

// DefaultCooldown is the minimum gap between repeat notifications for the
// same property+room+date key.
const DefaultCooldown = 24 * time.Hour

type fileFormat struct {
	Notified map[string]string `json:"notified"`
}

// Store is a per-property notification ledger persisted as a JSON file.
// Keys map to RFC 3339 timestamps of the last notification. It is touched
// only from the single poll-loop goroutine and needs no locking.
type Store struct {
	path     string
	cooldown time.Duration
	notified map[string]string

	now func() time.Time
}

func NewStore(path string, cooldown time.Duration) *Store {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Store{
		path:     path,
		cooldown: cooldown,
		notified: make(map[string]string),
		now:      time.Now,
	}
}

// Load reads the state file. A missing or corrupt file means an empty
// store; load never fails.
func (s *Store) Load() {
	s.notified = make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil || ff.Notified == nil {
		return
	}

	s.notified = ff.Notified
	s.sweep()
}

// Save rewrites the state file, creating the directory on demand. Expired
// entries are dropped first so the file stays bounded.
func (s *Store) Save() error {
	s.sweep()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fileFormat{Notified: s.notified}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// ShouldNotify reports whether this room+date combination is outside its
// cooldown window.
func (s *Store) ShouldNotify(a models.RoomAvailability) bool {
	raw, ok := s.notified[a.Key()]
	if !ok {
		return true
	}
	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Unparseable timestamp, treat as expired.
		return true
	}
	return s.now().Sub(last) > s.cooldown
}

// MarkNotified records a notification and persists immediately. A crash
// between cycles must neither double-notify nor lose the mark.
func (s *Store) MarkNotified(a models.RoomAvailability) error {
	s.notified[a.Key()] = s.now().Format(time.RFC3339)
	return s.Save()
}

func (s *Store) sweep() {
	cutoff := s.now().Add(-s.cooldown)
	for key, raw := range s.notified {
		last, err := time.Parse(time.RFC3339, raw)
		if err != nil || !last.After(cutoff) {
			delete(s.notified, key)
		}
	}
}
