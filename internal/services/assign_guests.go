package services

import (
	"context"
	"errors"
	"fmt"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/metrics"
	"shuttle-logistics-service/internal/ports"
)

// Bounded retries for the compare-and-swap loop below.
const assignMaxAttempts = 5

// AssignGuests unions guestIDs into the manifest's membership.
//
// The merge is a read-modify-write against the external store, so two
// concurrent assigns to the same manifest could otherwise drop each other's
// additions. The store's versioned UpdateGuests acts as a compare-and-swap;
// on a version conflict the membership is re-read and the union recomputed,
// up to assignMaxAttempts times.
//
// Calling twice with the same ids leaves the membership unchanged: ids
// already present are skipped, and a union that adds nothing writes nothing.
func AssignGuests(
	ctx context.Context,
	manifestID string,
	guestIDs []string,
	store ports.ManifestStore,
) error {
	if manifestID == "" {
		return domain.Validationf("assign guests: manifest id must not be empty")
	}

	for attempt := 1; ; attempt++ {
		m, err := store.Get(ctx, manifestID)
		if err != nil {
			return fmt.Errorf("assign guests: read manifest %q: %w", manifestID, err)
		}

		merged, added := unionGuestIDs(m.GuestIDs, guestIDs)
		if added == 0 {
			return nil
		}

		err = store.UpdateGuests(ctx, manifestID, merged, m.Version)
		if err == nil {
			metrics.GuestsAssigned.Add(float64(added))
			return nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return fmt.Errorf("assign guests: update manifest %q: %w", manifestID, err)
		}

		metrics.AssignConflicts.Inc()
		if attempt == assignMaxAttempts {
			return fmt.Errorf("assign guests: manifest %q contended after %d attempts: %w",
				manifestID, attempt, err)
		}
	}
}

// unionGuestIDs appends the incoming ids not already present, preserving
// existing order and first-seen order of the additions. Returns the merged
// list and how many ids were new.
func unionGuestIDs(current, incoming []string) ([]string, int) {
	seen := make(map[string]struct{}, len(current)+len(incoming))
	merged := make([]string, 0, len(current)+len(incoming))
	for _, id := range current {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
	}

	added := 0
	for _, id := range incoming {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, id)
		added++
	}

	return merged, added
}
