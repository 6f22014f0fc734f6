package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
)

// SQLite-backed implementation of the ManifestStore port.
//
// Guest membership is stored as a JSON array and versioned: UpdateGuests only
// lands when the caller's expected version still matches the row, so
// concurrent merges surface as domain.ErrVersionConflict instead of silently
// overwriting each other.
type SqliteManifestStore struct{ DB *sql.DB }

func NewSqliteManifestStore(db *sql.DB) *SqliteManifestStore {
	return &SqliteManifestStore{DB: db}
}

func (s *SqliteManifestStore) Create(ctx context.Context, m *domain.TransportationManifest) (string, error) {
	if s.DB == nil {
		return "", errors.New("sqlite manifest store: DB is nil")
	}

	guestIDs, err := json.Marshal(m.GuestIDs)
	if err != nil {
		return "", fmt.Errorf("create manifest: marshal guest ids: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	stamp := now.Format(time.RFC3339)

	query := `
	INSERT INTO transportation_manifests (
		id,
		manifest_type,
		date,
		time_window_start,
		time_window_end,
		vehicle_type,
		driver_name,
		driver_phone,
		guest_ids,
		notes,
		version,
		created_at,
		updated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		id,
		string(m.ManifestType),
		m.Date.Format("2006-01-02"),
		domain.FormatWindowHour(m.WindowStart),
		domain.FormatWindowHour(m.WindowEnd),
		nullIfEmpty(m.VehicleType),
		nullIfEmpty(m.DriverName),
		nullIfEmpty(m.DriverPhone),
		string(guestIDs),
		nullIfEmpty(m.Notes),
		stamp,
		stamp,
	)
	if err != nil {
		return "", fmt.Errorf("create manifest: insert row: %w", err)
	}

	m.Version = 1
	m.CreatedAt = now
	m.UpdatedAt = now
	return id, nil
}

func (s *SqliteManifestStore) Get(ctx context.Context, id string) (*domain.TransportationManifest, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite manifest store: DB is nil")
	}

	query := `
	SELECT
		id,
		manifest_type,
		date,
		time_window_start,
		time_window_end,
		vehicle_type,
		driver_name,
		driver_phone,
		guest_ids,
		notes,
		version,
		created_at,
		updated_at
	FROM transportation_manifests
	WHERE id = ?;
	`
	m, err := scanManifest(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrManifestNotFound
		}
		return nil, fmt.Errorf("get manifest %q: %w", id, err)
	}

	return m, nil
}

func (s *SqliteManifestStore) UpdateGuests(ctx context.Context, id string, guestIDs []string, expectedVersion int) error {
	if s.DB == nil {
		return errors.New("sqlite manifest store: DB is nil")
	}

	encoded, err := json.Marshal(guestIDs)
	if err != nil {
		return fmt.Errorf("update manifest guests: marshal guest ids: %w", err)
	}

	query := `
	UPDATE transportation_manifests SET
		guest_ids = ?,
		version = version + 1,
		updated_at = ?
	WHERE id = ?
		AND version = ?;
	`
	res, err := s.DB.ExecContext(ctx, query,
		string(encoded),
		time.Now().UTC().Format(time.RFC3339),
		id,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update manifest guests: exec update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update manifest guests: rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows touched: either the id is unknown or the version moved.
	var present int
	err = s.DB.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM transportation_manifests WHERE id = ?;`, id,
	).Scan(&present)
	if err != nil {
		return fmt.Errorf("update manifest guests: check existence: %w", err)
	}
	if present == 0 {
		return domain.ErrManifestNotFound
	}
	return domain.ErrVersionConflict
}

func (s *SqliteManifestStore) UpdateDetails(ctx context.Context, id string, patch ports.ManifestPatch) error {
	if s.DB == nil {
		return errors.New("sqlite manifest store: DB is nil")
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if patch.VehicleType != nil {
		sets = append(sets, "vehicle_type = ?")
		args = append(args, nullIfEmpty(*patch.VehicleType))
	}
	if patch.DriverName != nil {
		sets = append(sets, "driver_name = ?")
		args = append(args, nullIfEmpty(*patch.DriverName))
	}
	if patch.DriverPhone != nil {
		sets = append(sets, "driver_phone = ?")
		args = append(args, nullIfEmpty(*patch.DriverPhone))
	}
	if patch.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, nullIfEmpty(*patch.Notes))
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "version = version + 1", "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339), id)

	// Column list is assembled from the fixed set above; values stay bound.
	query := fmt.Sprintf(
		`UPDATE transportation_manifests SET %s WHERE id = ?;`,
		strings.Join(sets, ", "),
	)
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update manifest details: exec update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update manifest details: rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrManifestNotFound
	}

	return nil
}

func (s *SqliteManifestStore) ListByDate(ctx context.Context, date time.Time) ([]*domain.TransportationManifest, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite manifest store: DB is nil")
	}

	query := `
	SELECT
		id,
		manifest_type,
		date,
		time_window_start,
		time_window_end,
		vehicle_type,
		driver_name,
		driver_phone,
		guest_ids,
		notes,
		version,
		created_at,
		updated_at
	FROM transportation_manifests
	WHERE date = ?
	ORDER BY time_window_start, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list manifests by date: query: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.TransportationManifest, 0, 8)
	for rows.Next() {
		m, err := scanManifest(rows)
		if err != nil {
			return nil, fmt.Errorf("list manifests by date: %w", err)
		}
		out = append(out, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list manifests by date: row iteration: %w", err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanManifest(row rowScanner) (*domain.TransportationManifest, error) {
	var (
		m                    domain.TransportationManifest
		manifestType         string
		date, start, end     string
		vehicle, driver      sql.NullString
		phone, notes         sql.NullString
		createdAt, updatedAt string
		guestIDs             string
	)

	err := row.Scan(
		&m.ID,
		&manifestType,
		&date,
		&start,
		&end,
		&vehicle,
		&driver,
		&phone,
		&guestIDs,
		&notes,
		&m.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.ManifestType = domain.ManifestType(manifestType)
	m.VehicleType = vehicle.String
	m.DriverName = driver.String
	m.DriverPhone = phone.String
	m.Notes = notes.String

	if m.Date, err = time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("scan manifest: parse date %q: %w", date, err)
	}
	if m.WindowStart, err = parseClockHour(start); err != nil {
		return nil, fmt.Errorf("scan manifest: window start: %w", err)
	}
	if m.WindowEnd, err = parseWindowEnd(end); err != nil {
		return nil, fmt.Errorf("scan manifest: window end: %w", err)
	}
	if err = json.Unmarshal([]byte(guestIDs), &m.GuestIDs); err != nil {
		return nil, fmt.Errorf("scan manifest: parse guest ids: %w", err)
	}
	if m.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("scan manifest: parse created_at %q: %w", createdAt, err)
	}
	if m.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("scan manifest: parse updated_at %q: %w", updatedAt, err)
	}

	return &m, nil
}

// A window end can pass midnight when the width does not divide 24 (a guest
// at 22:00 in a 5 hour window lands in 20-25, stored as "25:00:00"), so the
// bound is parsed as a plain hour count rather than a clock hour.
func parseWindowEnd(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse window bound %q: %w", clock, err)
	}
	if hour < 0 || hour >= 48 {
		return 0, fmt.Errorf("parse window bound %q: hour out of range", clock)
	}
	return hour, nil
}
