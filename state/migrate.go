package state

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MigrateLegacy rewrites the old single-property state file
// (~/.miyakowasure-state.json, keys without a property prefix) into the
// per-property layout under stateDir. It never overwrites an existing
// new-format file and swallows every error: losing dedup state only risks
// one extra notification.
func MigrateLegacy(stateDir, homeDir string) {
	oldPath := filepath.Join(homeDir, ".miyakowasure-state.json")
	newPath := filepath.Join(stateDir, "miyakowasure-state.json")

	if _, err := os.Stat(newPath); err == nil {
		return
	}
	data, err := os.ReadFile(oldPath)
	if err != nil {
		return
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		return
	}

	migrated := make(map[string]string, len(ff.Notified))
	for key, ts := range ff.Notified {
		// Old keys were room_id:check_in:check_out.
		migrated["miyakowasure:"+key] = ts
	}

	out, err := json.MarshalIndent(fileFormat{Notified: migrated}, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return
	}
	_ = os.WriteFile(newPath, out, 0644)
}
