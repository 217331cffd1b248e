// Package storage keeps a local history of check cycles so past results
// can be inspected after the fact.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"ryokan_check/models"
)

type HistoryStore struct {
	db *sql.DB
}

func NewHistoryStore(dbPath string) (*HistoryStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &HistoryStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *HistoryStore) Close() error {
	return s.db.Close()
}

func (s *HistoryStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS check_runs (
		id TEXT PRIMARY KEY,
		property TEXT NOT NULL,
		checked_at DATETIME NOT NULL,
		rooms_checked INTEGER NOT NULL,
		rooms_available INTEGER NOT NULL,
		error TEXT
	);

	CREATE TABLE IF NOT EXISTS room_snapshots (
		id INTEGER PRIMARY KEY,
		run_id TEXT NOT NULL,
		room_id TEXT NOT NULL,
		room_name TEXT NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT NOT NULL,
		available BOOLEAN NOT NULL,
		price INTEGER,
		spots_left INTEGER,
		FOREIGN KEY (run_id) REFERENCES check_runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_check_runs_checked_at ON check_runs(checked_at);
	CREATE INDEX IF NOT EXISTS idx_room_snapshots_run ON room_snapshots(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordCheck persists one property's check result, including every
// per-room snapshot.
func (s *HistoryStore) RecordCheck(result *models.CheckResult) error {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	available := len(result.AvailableRooms())
	if _, err := tx.Exec(
		`INSERT INTO check_runs (id, property, checked_at, rooms_checked, rooms_available, error)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, string(result.Property), result.CheckTime,
		len(result.RoomsChecked), available, result.Err,
	); err != nil {
		return err
	}

	for _, room := range result.RoomsChecked {
		if _, err := tx.Exec(
			`INSERT INTO room_snapshots (run_id, room_id, room_name, check_in, check_out, available, price, spots_left)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, room.Room.RoomID(), room.Room.DisplayName(),
			room.CheckIn.Format("2006-01-02"), room.CheckOut.Format("2006-01-02"),
			room.Available, room.PricePerPerson, room.SpotsLeft,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type RunSummary struct {
	ID             string
	Property       string
	CheckedAt      time.Time
	RoomsChecked   int
	RoomsAvailable int
	Err            string
}

// RecentRuns returns the newest check runs, most recent first.
func (s *HistoryStore) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, property, checked_at, rooms_checked, rooms_available, error
		 FROM check_runs ORDER BY checked_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var errStr sql.NullString
		if err := rows.Scan(&r.ID, &r.Property, &r.CheckedAt, &r.RoomsChecked, &r.RoomsAvailable, &errStr); err != nil {
			return nil, err
		}
		r.Err = errStr.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type Snapshot struct {
	RoomID    string
	RoomName  string
	CheckIn   string
	CheckOut  string
	Available bool
	Price     int
	SpotsLeft int
}

// RunSnapshots returns the per-room snapshots for one run.
func (s *HistoryStore) RunSnapshots(runID string) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT room_id, room_name, check_in, check_out, available, price, spots_left
		 FROM room_snapshots WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var sn Snapshot
		if err := rows.Scan(&sn.RoomID, &sn.RoomName, &sn.CheckIn, &sn.CheckOut, &sn.Available, &sn.Price, &sn.SpotsLeft); err != nil {
			return nil, err
		}
		snaps = append(snaps, sn)
	}
	return snaps, rows.Err()
}
