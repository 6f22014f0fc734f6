package services

import (
	"context"
	"fmt"
	"time"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/metrics"
	"shuttle-logistics-service/internal/ports"
)

// DefaultWindowHours is the grouping width used when a request leaves it unset.
const DefaultWindowHours = 2

type BuildManifestsRequest struct {
	Date        time.Time
	Direction   domain.ManifestType
	WindowHours int
}

// BuildManifests turns a day's guest roster into one persisted manifest per
// populated time window.
//
// Guests without an explicit time ride in the direction's default window
// (noon for arrivals, 14:00 for departures). An empty roster yields an empty
// slice, not an error.
//
// Each window's manifest is an independent unit of work: a create failure
// returns the manifests persisted so far together with the error for the
// window that failed, and nothing already created is rolled back.
func BuildManifests(
	ctx context.Context,
	req BuildManifestsRequest,
	guests ports.GuestRepository,
	store ports.ManifestStore,
) ([]*domain.TransportationManifest, error) {
	if !req.Direction.Valid() {
		return nil, domain.Validationf("build manifests: unknown direction %q", req.Direction)
	}

	windowHours := req.WindowHours
	if windowHours == 0 {
		windowHours = DefaultWindowHours
	}
	if windowHours < 1 {
		return nil, domain.Validationf("build manifests: window width must be a positive number of hours, got %d", windowHours)
	}

	records, err := guests.ListGuestTimeRecords(ctx, req.Date, req.Direction)
	if err != nil {
		return nil, fmt.Errorf("build manifests: list guest time records: %w", err)
	}
	if len(records) == 0 {
		return []*domain.TransportationManifest{}, nil
	}

	entries := make([]WindowEntry, 0, len(records))
	for _, rec := range records {
		hour := req.Direction.DefaultHour()
		if rec.Hour != nil {
			hour = *rec.Hour
		}
		entries = append(entries, WindowEntry{ID: rec.GuestID, Hour: hour})
	}

	windows, err := PartitionByWindow(entries, windowHours)
	if err != nil {
		return nil, fmt.Errorf("build manifests: %w", err)
	}

	manifests := make([]*domain.TransportationManifest, 0, len(windows))
	for _, w := range windows {
		m := &domain.TransportationManifest{
			ManifestType: req.Direction,
			Date:         req.Date,
			WindowStart:  w.Start,
			WindowEnd:    w.End,
			GuestIDs:     w.GuestIDs,
		}

		id, err := store.Create(ctx, m)
		if err != nil {
			return manifests, fmt.Errorf(
				"build manifests: create manifest for window %s-%s: %w",
				domain.FormatWindowHour(w.Start), domain.FormatWindowHour(w.End), err,
			)
		}

		m.ID = id
		manifests = append(manifests, m)
		metrics.ManifestsBuilt.WithLabelValues(string(req.Direction)).Inc()
	}

	return manifests, nil
}
