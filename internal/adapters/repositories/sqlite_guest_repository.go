package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"shuttle-logistics-service/internal/domain"
)

// SQLite-backed implementation of the guest ports.
type SqliteGuestRepository struct{ DB *sql.DB }

func NewSqliteGuestRepository(db *sql.DB) *SqliteGuestRepository {
	return &SqliteGuestRepository{DB: db}
}

// Guests moving on the given date and direction, excluding records with no
// airport code (no transportation need).
func (s *SqliteGuestRepository) ListGuestTimeRecords(
	ctx context.Context,
	date time.Time,
	direction domain.ManifestType,
) ([]domain.GuestTimeRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite guest repository: DB is nil")
	}

	dateCol, timeCol := "arrival_date", "arrival_time"
	if direction == domain.ManifestDeparture {
		dateCol, timeCol = "departure_date", "departure_time"
	}

	// Column names come from the fixed pair above, never from input.
	query := fmt.Sprintf(`
	SELECT
		id,
		%s,
		airport_code
	FROM guests
	WHERE %s = ?
		AND airport_code IS NOT NULL
		AND airport_code != ''
	ORDER BY id;
	`, timeCol, dateCol)

	rows, err := s.DB.QueryContext(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list guest time records: query guests table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.GuestTimeRecord, 0, 32)
	for rows.Next() {
		var id, airport string
		var clock sql.NullString
		if err := rows.Scan(&id, &clock, &airport); err != nil {
			return nil, fmt.Errorf("list guest time records: scan row: %w", err)
		}

		rec := domain.GuestTimeRecord{GuestID: id, Date: date, AirportCode: airport}
		if clock.Valid && clock.String != "" {
			hour, err := parseClockHour(clock.String)
			if err != nil {
				return nil, fmt.Errorf("list guest time records: guest %q: %w", id, err)
			}
			rec.Hour = &hour
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list guest time records: row iteration: %w", err)
	}

	return records, nil
}

// Fetch contact details for the given guest ids. Unknown ids are omitted.
func (s *SqliteGuestRepository) GetGuestsByIDs(ctx context.Context, ids []string) ([]domain.GuestDetail, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite guest repository: DB is nil")
	}

	if len(ids) == 0 {
		return []domain.GuestDetail{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	ph := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return []domain.GuestDetail{}, nil
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	query := fmt.Sprintf(`
	SELECT
		id,
		first_name,
		last_name,
		flight_number,
		phone,
		notes
	FROM guests
	WHERE id IN (%s);
	`, strings.Join(ph, ","))

	args := make([]any, 0, len(uniq))
	for _, id := range uniq {
		args = append(args, id)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get guests by ids: query guests table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.GuestDetail, 0, len(uniq))
	for rows.Next() {
		var id, first, last string
		var flight, phone, notes sql.NullString
		if err := rows.Scan(&id, &first, &last, &flight, &phone, &notes); err != nil {
			return nil, fmt.Errorf("get guests by ids: scan row: %w", err)
		}
		out = append(out, domain.GuestDetail{
			GuestID:      id,
			Name:         strings.TrimSpace(first + " " + last),
			FlightNumber: flight.String,
			Phone:        phone.String,
			Notes:        notes.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get guests by ids: row iteration: %w", err)
	}

	return out, nil
}

// Record flight details against a guest. Timestamps are split into the
// record's date ("2006-01-02") and time ("15:04:05") columns.
func (s *SqliteGuestRepository) UpdateFlightInfo(ctx context.Context, info domain.FlightInfo) error {
	if s.DB == nil {
		return errors.New("sqlite guest repository: DB is nil")
	}

	var arrivalDate, arrivalTime, departureDate, departureTime any
	if info.ArrivalTime != nil {
		arrivalDate = info.ArrivalTime.Format("2006-01-02")
		arrivalTime = info.ArrivalTime.Format("15:04:05")
	}
	if info.DepartureTime != nil {
		departureDate = info.DepartureTime.Format("2006-01-02")
		departureTime = info.DepartureTime.Format("15:04:05")
	}

	query := `
	UPDATE guests SET
		airport_code = ?,
		flight_number = ?,
		airline = ?,
		arrival_date = COALESCE(?, arrival_date),
		arrival_time = COALESCE(?, arrival_time),
		departure_date = COALESCE(?, departure_date),
		departure_time = COALESCE(?, departure_time)
	WHERE id = ?;
	`
	res, err := s.DB.ExecContext(ctx, query,
		info.AirportCode,
		nullIfEmpty(info.FlightNumber),
		nullIfEmpty(info.Airline),
		arrivalDate,
		arrivalTime,
		departureDate,
		departureTime,
		info.GuestID,
	)
	if err != nil {
		return fmt.Errorf("update flight info: exec update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update flight info: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update flight info: unknown guest %q", info.GuestID)
	}

	return nil
}

// Guests with a recorded flight number at the given airport.
func (s *SqliteGuestRepository) ListFlightsByAirport(ctx context.Context, airportCode string) ([]domain.FlightInfo, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite guest repository: DB is nil")
	}

	query := `
	SELECT
		id,
		airport_code,
		flight_number,
		airline,
		arrival_date,
		arrival_time,
		departure_date,
		departure_time
	FROM guests
	WHERE airport_code = ?
		AND flight_number IS NOT NULL
		AND flight_number != ''
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query, airportCode)
	if err != nil {
		return nil, fmt.Errorf("list flights by airport: query guests table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.FlightInfo, 0, 16)
	for rows.Next() {
		var id, airport, flight string
		var airline, arrDate, arrClock, depDate, depClock sql.NullString
		if err := rows.Scan(&id, &airport, &flight, &airline, &arrDate, &arrClock, &depDate, &depClock); err != nil {
			return nil, fmt.Errorf("list flights by airport: scan row: %w", err)
		}

		arrival, err := combineDateClock(arrDate, arrClock)
		if err != nil {
			return nil, fmt.Errorf("list flights by airport: guest %q: %w", id, err)
		}
		departure, err := combineDateClock(depDate, depClock)
		if err != nil {
			return nil, fmt.Errorf("list flights by airport: guest %q: %w", id, err)
		}

		out = append(out, domain.FlightInfo{
			GuestID:       id,
			AirportCode:   airport,
			FlightNumber:  flight,
			Airline:       airline.String,
			ArrivalTime:   arrival,
			DepartureTime: departure,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list flights by airport: row iteration: %w", err)
	}

	return out, nil
}

// combineDateClock rebuilds a timestamp from the guest record's split date
// and time columns. A null or empty date yields nil; an empty time yields
// midnight.
func combineDateClock(date, clock sql.NullString) (*time.Time, error) {
	if !date.Valid || strings.TrimSpace(date.String) == "" {
		return nil, nil
	}

	layout, value := "2006-01-02", date.String
	if clock.Valid && clock.String != "" {
		layout, value = "2006-01-02 15:04:05", date.String+" "+clock.String
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return &t, nil
}

// parseClockHour extracts the hour from a "HH:MM:SS" (or "HH:MM") string.
func parseClockHour(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("parse clock %q: hour out of range", clock)
	}
	return hour, nil
}
