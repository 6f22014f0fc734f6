package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/platform/db"
)

func newTestGuestRepository(t *testing.T) (*SqliteGuestRepository, *sql.DB) {
	t.Helper()

	sqlDB, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := InitSchema(sqlDB); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteGuestRepository(sqlDB), sqlDB
}

func seedGuest(t *testing.T, sqlDB *sql.DB, g GuestSeed) {
	t.Helper()

	_, err := sqlDB.Exec(`
	INSERT INTO guests (
		id, first_name, last_name, phone, notes,
		airport_code, flight_number, airline,
		arrival_date, arrival_time, departure_date, departure_time
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		g.ID, g.FirstName, g.LastName,
		nullIfEmpty(g.Phone), nullIfEmpty(g.Notes),
		nullIfEmpty(g.AirportCode), nullIfEmpty(g.FlightNumber), nullIfEmpty(g.Airline),
		nullIfEmpty(g.ArrivalDate), nullIfEmpty(g.ArrivalTime),
		nullIfEmpty(g.DepartureDate), nullIfEmpty(g.DepartureTime),
	)
	if err != nil {
		t.Fatalf("seed guest %q: %v", g.ID, err)
	}
}

func TestSqliteListFlightsByAirportCarriesDates(t *testing.T) {
	repo, sqlDB := newTestGuestRepository(t)
	seedGuest(t, sqlDB, GuestSeed{
		ID: "g-1", FirstName: "Maya", LastName: "Castillo",
		AirportCode: domain.AirportSJO, FlightNumber: "AA1423", Airline: "American",
		ArrivalDate: "2026-06-12", ArrivalTime: "09:40:00",
		DepartureDate: "2026-06-15", DepartureTime: "13:10:00",
	})
	// No flight number; must not appear.
	seedGuest(t, sqlDB, GuestSeed{
		ID: "g-2", FirstName: "Henrik", LastName: "Sorensen",
		AirportCode: domain.AirportSJO, ArrivalDate: "2026-06-12",
	})

	flights, err := repo.ListFlightsByAirport(context.Background(), domain.AirportSJO)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flights) != 1 || flights[0].GuestID != "g-1" {
		t.Fatalf("flights = %+v, want only g-1", flights)
	}

	f := flights[0]
	wantArrival := time.Date(2026, 6, 12, 9, 40, 0, 0, time.UTC)
	if f.ArrivalTime == nil || !f.ArrivalTime.Equal(wantArrival) {
		t.Fatalf("arrival = %v, want %v", f.ArrivalTime, wantArrival)
	}
	wantDeparture := time.Date(2026, 6, 15, 13, 10, 0, 0, time.UTC)
	if f.DepartureTime == nil || !f.DepartureTime.Equal(wantDeparture) {
		t.Fatalf("departure = %v, want %v", f.DepartureTime, wantDeparture)
	}
}

func TestSqliteUpdateFlightInfoRoundTrip(t *testing.T) {
	repo, sqlDB := newTestGuestRepository(t)
	seedGuest(t, sqlDB, GuestSeed{ID: "g-1", FirstName: "Sofia", LastName: "Marchetti"})

	arrive := time.Date(2026, 6, 12, 10, 55, 0, 0, time.UTC)
	err := repo.UpdateFlightInfo(context.Background(), domain.FlightInfo{
		GuestID:      "g-1",
		AirportCode:  domain.AirportLIR,
		FlightNumber: "DL201",
		Airline:      "Delta",
		ArrivalTime:  &arrive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flights, err := repo.ListFlightsByAirport(context.Background(), domain.AirportLIR)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(flights) != 1 || flights[0].FlightNumber != "DL201" {
		t.Fatalf("flights = %+v, want the updated record", flights)
	}
	if flights[0].ArrivalTime == nil || !flights[0].ArrivalTime.Equal(arrive) {
		t.Fatalf("arrival = %v, want %v", flights[0].ArrivalTime, arrive)
	}

	records, err := repo.ListGuestTimeRecords(context.Background(), arrive, domain.ManifestArrival)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Hour == nil || *records[0].Hour != 10 {
		t.Fatalf("time records = %+v, want hour 10", records)
	}
}
