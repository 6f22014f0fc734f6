package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createGuestsQuery := `
	CREATE TABLE IF NOT EXISTS guests (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT,
		notes TEXT,
		airport_code TEXT,
		flight_number TEXT,
		airline TEXT,
		arrival_date TEXT,
		arrival_time TEXT,
		departure_date TEXT,
		departure_time TEXT
	);
	`

	createManifestsQuery := `
	CREATE TABLE IF NOT EXISTS transportation_manifests (
		id TEXT PRIMARY KEY,
		manifest_type TEXT NOT NULL,
		date TEXT NOT NULL,
		time_window_start TEXT NOT NULL,
		time_window_end TEXT NOT NULL,
		vehicle_type TEXT,
		driver_name TEXT,
		driver_phone TEXT,
		guest_ids TEXT NOT NULL DEFAULT '[]',
		notes TEXT,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	createArrivalIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_guests_arrival_date
	ON guests(arrival_date);
	`

	createDepartureIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_guests_departure_date
	ON guests(departure_date);
	`

	createManifestDateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_manifests_date
	ON transportation_manifests(date, time_window_start);
	`

	statements := []string{
		createGuestsQuery,
		createManifestsQuery,
		createArrivalIndexQuery,
		createDepartureIndexQuery,
		createManifestDateIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type GuestSeed struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	Notes         string `json:"notes"`
	AirportCode   string `json:"airport_code"`
	FlightNumber  string `json:"flight_number"`
	Airline       string `json:"airline"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
}

// Populate the database with guest data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed guests: read %q: %w", jsonPath, err)
	}

	var data []GuestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed guests: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed guests: empty id at index %d", i+1)
		}
		if strings.TrimSpace(item.FirstName) == "" && strings.TrimSpace(item.LastName) == "" {
			return fmt.Errorf("seed guests: guest %q has no name", item.ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed guests: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO guests (
		id,
		first_name,
		last_name,
		phone,
		notes,
		airport_code,
		flight_number,
		airline,
		arrival_date,
		arrival_time,
		departure_date,
		departure_time
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed guests: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range data {
		_, err := stmt.Exec(
			g.ID,
			g.FirstName,
			g.LastName,
			nullIfEmpty(g.Phone),
			nullIfEmpty(g.Notes),
			nullIfEmpty(g.AirportCode),
			nullIfEmpty(g.FlightNumber),
			nullIfEmpty(g.Airline),
			nullIfEmpty(g.ArrivalDate),
			nullIfEmpty(g.ArrivalTime),
			nullIfEmpty(g.DepartureDate),
			nullIfEmpty(g.DepartureTime),
		)
		if err != nil {
			return fmt.Errorf("seed guests: insert id=%q: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed guests: commit tx: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
