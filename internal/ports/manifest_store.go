package ports

import (
	"context"
	"time"

	"shuttle-logistics-service/internal/domain"
)

// Optional fields settable on an existing manifest. Nil means leave as-is.
type ManifestPatch struct {
	VehicleType *string
	DriverName  *string
	DriverPhone *string
	Notes       *string
}

// Port: a boundary for persisting transportation manifests.
//
// Get returns domain.ErrManifestNotFound when no row exists for the id,
// keeping "no such manifest" distinguishable from a store failure.
type ManifestStore interface {
	// Persist a new manifest and return its assigned id. The stored
	// version and timestamps are written back onto m, so callers echo
	// exactly what the row holds.
	Create(ctx context.Context, m *domain.TransportationManifest) (string, error)

	Get(ctx context.Context, id string) (*domain.TransportationManifest, error)

	// Replace the manifest's guest membership if and only if the stored
	// version still equals expectedVersion. Returns
	// domain.ErrVersionConflict when the row has moved on.
	UpdateGuests(ctx context.Context, id string, guestIDs []string, expectedVersion int) error

	// Apply driver/vehicle fields to a manifest.
	UpdateDetails(ctx context.Context, id string, patch ManifestPatch) error

	// All manifests for a calendar date, ordered by window start.
	ListByDate(ctx context.Context, date time.Time) ([]*domain.TransportationManifest, error)
}
