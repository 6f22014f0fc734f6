package ports

import (
	"context"
	"time"

	"shuttle-logistics-service/internal/domain"
)

// Port: a boundary for reading and annotating guest records.
// The engine never owns guest storage; it consumes time records and writes
// back flight details only.
type GuestRepository interface {
	// Guests moving on the given date and direction, filtered server-side
	// to records with a non-empty airport code.
	ListGuestTimeRecords(ctx context.Context, date time.Time, direction domain.ManifestType) ([]domain.GuestTimeRecord, error)

	// Record flight details against a guest.
	UpdateFlightInfo(ctx context.Context, info domain.FlightInfo) error

	// Guests holding a flight number at the given airport.
	ListFlightsByAirport(ctx context.Context, airportCode string) ([]domain.FlightInfo, error)
}

// Port: guest contact details joined onto driver sheets.
// Ids with no backing record are simply absent from the result.
type GuestDetailReader interface {
	GetGuestsByIDs(ctx context.Context, ids []string) ([]domain.GuestDetail, error)
}
