package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"shuttle-logistics-service/internal/adapters/repositories"
	"shuttle-logistics-service/internal/domain"
)

func createManifest(t *testing.T, store *repositories.MemoryManifestStore, guestIDs ...string) string {
	t.Helper()

	id, err := store.Create(context.Background(), &domain.TransportationManifest{
		ManifestType: domain.ManifestArrival,
		Date:         testDate(t),
		WindowStart:  10,
		WindowEnd:    12,
		GuestIDs:     guestIDs,
	})
	if err != nil {
		t.Fatalf("create manifest: %v", err)
	}
	return id
}

func manifestGuests(t *testing.T, store *repositories.MemoryManifestStore, id string) []string {
	t.Helper()

	m, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get manifest: %v", err)
	}
	return m.GuestIDs
}

func TestAssignGuestsUnionsWithExistingMembership(t *testing.T) {
	store := repositories.NewMemoryManifestStore()
	id := createManifest(t, store, "g-1", "g-2")

	if err := AssignGuests(context.Background(), id, []string{"g-2", "g-3", "g-3", "g-4"}, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := manifestGuests(t, store, id)
	want := []string{"g-1", "g-2", "g-3", "g-4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("guests = %v, want %v", got, want)
	}
}

func TestAssignGuestsIdempotent(t *testing.T) {
	store := repositories.NewMemoryManifestStore()
	id := createManifest(t, store, "g-1")

	ids := []string{"g-2", "g-3"}
	if err := AssignGuests(context.Background(), id, ids, store); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	first := manifestGuests(t, store, id)

	if err := AssignGuests(context.Background(), id, ids, store); err != nil {
		t.Fatalf("second assign: %v", err)
	}
	second := manifestGuests(t, store, id)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeat assign changed membership: %v vs %v", first, second)
	}
}

func TestAssignGuestsUnknownManifest(t *testing.T) {
	store := repositories.NewMemoryManifestStore()

	err := AssignGuests(context.Background(), "missing", []string{"g-1"}, store)
	if !errors.Is(err, domain.ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}

func TestAssignGuestsEmptyManifestID(t *testing.T) {
	store := repositories.NewMemoryManifestStore()

	if err := AssignGuests(context.Background(), "", []string{"g-1"}, store); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// contendedManifestStore simulates a concurrent writer by mutating the
// manifest between the caller's read and write for the first n attempts.
type contendedManifestStore struct {
	*repositories.MemoryManifestStore
	conflicts int
	injected  int
}

func (s *contendedManifestStore) UpdateGuests(ctx context.Context, id string, guestIDs []string, expectedVersion int) error {
	if s.injected < s.conflicts {
		s.injected++
		// Another writer lands first, so the caller's expected version is stale.
		m, err := s.MemoryManifestStore.Get(ctx, id)
		if err != nil {
			return err
		}
		rival := fmt.Sprintf("rival-%d", s.injected)
		if err := s.MemoryManifestStore.UpdateGuests(ctx, id, append(m.GuestIDs, rival), m.Version); err != nil {
			return err
		}
		return domain.ErrVersionConflict
	}
	return s.MemoryManifestStore.UpdateGuests(ctx, id, guestIDs, expectedVersion)
}

func TestAssignGuestsRetriesOnVersionConflict(t *testing.T) {
	inner := repositories.NewMemoryManifestStore()
	id := createManifest(t, inner, "g-1")
	store := &contendedManifestStore{MemoryManifestStore: inner, conflicts: 2}

	if err := AssignGuests(context.Background(), id, []string{"g-2"}, store); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}

	got := manifestGuests(t, inner, id)
	// Both rivals' additions survive alongside ours.
	want := []string{"g-1", "rival-1", "rival-2", "g-2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("guests = %v, want %v", got, want)
	}
}

func TestAssignGuestsGivesUpAfterBoundedAttempts(t *testing.T) {
	inner := repositories.NewMemoryManifestStore()
	id := createManifest(t, inner, "g-1")
	store := &contendedManifestStore{MemoryManifestStore: inner, conflicts: assignMaxAttempts + 3}

	err := AssignGuests(context.Background(), id, []string{"g-2"}, store)
	if !errors.Is(err, domain.ErrVersionConflict) {
		t.Fatalf("expected version conflict after exhausting retries, got %v", err)
	}
}

func TestAssignGuestsNoNewIDsWritesNothing(t *testing.T) {
	inner := repositories.NewMemoryManifestStore()
	id := createManifest(t, inner, "g-1", "g-2")

	before, err := inner.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get manifest: %v", err)
	}

	if err := AssignGuests(context.Background(), id, []string{"g-1", ""}, inner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := inner.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get manifest: %v", err)
	}
	if after.Version != before.Version {
		t.Fatalf("no-op assign bumped version from %d to %d", before.Version, after.Version)
	}
}
