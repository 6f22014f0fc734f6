package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the Postgres database schema. Mirrors the SQLite schema with
// native types where they fit; manifest window bounds stay TEXT because an
// end past midnight ("25:00:00") is not a valid TIME value.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS guests (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone TEXT,
			notes TEXT,
			airport_code TEXT,
			flight_number TEXT,
			airline TEXT,
			arrival_date DATE,
			arrival_time TIME,
			departure_date DATE,
			departure_time TIME
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS transportation_manifests (
			id TEXT PRIMARY KEY,
			manifest_type TEXT NOT NULL,
			date DATE NOT NULL,
			time_window_start TEXT NOT NULL,
			time_window_end TEXT NOT NULL,
			vehicle_type TEXT,
			driver_name TEXT,
			driver_phone TEXT,
			guest_ids JSONB NOT NULL DEFAULT '[]',
			notes TEXT,
			version INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		`,
		`CREATE INDEX IF NOT EXISTS idx_guests_arrival_date ON guests(arrival_date);`,
		`CREATE INDEX IF NOT EXISTS idx_guests_departure_date ON guests(departure_date);`,
		`CREATE INDEX IF NOT EXISTS idx_manifests_date ON transportation_manifests(date, time_window_start);`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate a Postgres database with guest data from a JSON file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed guests (postgres): read %q: %w", jsonPath, err)
	}

	var data []GuestSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed guests (postgres): parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed guests (postgres): begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO guests (
		id, first_name, last_name, phone, notes,
		airport_code, flight_number, airline,
		arrival_date, arrival_time, departure_date, departure_time
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		phone = EXCLUDED.phone,
		notes = EXCLUDED.notes,
		airport_code = EXCLUDED.airport_code,
		flight_number = EXCLUDED.flight_number,
		airline = EXCLUDED.airline,
		arrival_date = EXCLUDED.arrival_date,
		arrival_time = EXCLUDED.arrival_time,
		departure_date = EXCLUDED.departure_date,
		departure_time = EXCLUDED.departure_time;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed guests (postgres): prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range data {
		if g.ID == "" {
			return fmt.Errorf("seed guests (postgres): guest with empty id")
		}
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
			return fmt.Errorf("seed guests (postgres): insert id=%q: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed guests (postgres): commit tx: %w", err)
	}

	return nil
}
