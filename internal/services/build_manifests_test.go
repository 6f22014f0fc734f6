package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"shuttle-logistics-service/internal/adapters/repositories"
	"shuttle-logistics-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func testDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
}

func testRoster() []*repositories.MemoryGuest {
	return []*repositories.MemoryGuest{
		{ID: "g-1", Name: "Maya Castillo", AirportCode: "SJO", ArrivalDate: "2026-06-12", ArrivalHour: intPtr(9), DepartureDate: "2026-06-15", DepartureHour: intPtr(13)},
		{ID: "g-2", Name: "Daniel Okafor", AirportCode: "SJO", ArrivalDate: "2026-06-12", ArrivalHour: intPtr(10), DepartureDate: "2026-06-15", DepartureHour: intPtr(14)},
		{ID: "g-3", Name: "Sofia Marchetti", AirportCode: "LIR", ArrivalDate: "2026-06-12", DepartureDate: "2026-06-15"},
		{ID: "g-4", Name: "Henrik Sorensen", AirportCode: "SJO", ArrivalDate: "2026-06-12", ArrivalHour: intPtr(18), DepartureDate: "2026-06-15", DepartureHour: intPtr(8)},
		// No airport code: rides with friends, never manifested.
		{ID: "g-5", Name: "Priya Raman", ArrivalDate: "2026-06-12", ArrivalHour: intPtr(9)},
	}
}

func TestBuildManifestsGroupsArrivalsByWindow(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository(testRoster())
	store := repositories.NewMemoryManifestStore()

	req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival}
	manifests, err := BuildManifests(context.Background(), req, guests, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// g-1 at 9 and g-2 at 10 split across 8-10 and 10-12; g-3 defaults to
	// noon; g-4 lands in 18-20.
	if len(manifests) != 4 {
		t.Fatalf("expected 4 manifests, got %d", len(manifests))
	}

	type window struct{ start, end int }
	got := map[window][]string{}
	for _, m := range manifests {
		if m.ID == "" {
			t.Fatalf("manifest for window %d-%d was not persisted", m.WindowStart, m.WindowEnd)
		}
		if m.ManifestType != domain.ManifestArrival {
			t.Fatalf("manifest type = %q, want arrival", m.ManifestType)
		}
		// What the builder hands back must mirror the stored row, not a
		// half-initialized input.
		if m.Version != 1 {
			t.Fatalf("manifest version = %d, want the stored row's 1", m.Version)
		}
		if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
			t.Fatalf("manifest timestamps not populated: %+v", m)
		}
		got[window{m.WindowStart, m.WindowEnd}] = m.GuestIDs
	}

	want := map[window][]string{
		{8, 10}:  {"g-1"},
		{10, 12}: {"g-2"},
		{12, 14}: {"g-3"},
		{18, 20}: {"g-4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("windows = %+v, want %+v", got, want)
	}
}

func TestBuildManifestsDepartureDefaultHour(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository([]*repositories.MemoryGuest{
		{ID: "g-1", AirportCode: "SJO", DepartureDate: "2026-06-12"},
	})
	store := repositories.NewMemoryManifestStore()

	req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestDeparture}
	manifests, err := BuildManifests(context.Background(), req, guests, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(manifests) != 1 {
		t.Fatalf("expected 1 manifest, got %d", len(manifests))
	}
	if manifests[0].WindowStart != 14 || manifests[0].WindowEnd != 16 {
		t.Fatalf("default departure window = %d-%d, want 14-16",
			manifests[0].WindowStart, manifests[0].WindowEnd)
	}
}

func TestBuildManifestsWindowAlignment(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository(testRoster())

	for _, width := range []int{1, 2, 3, 4} {
		store := repositories.NewMemoryManifestStore()
		req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival, WindowHours: width}
		manifests, err := BuildManifests(context.Background(), req, guests, store)
		if err != nil {
			t.Fatalf("width=%d: unexpected error: %v", width, err)
		}

		for _, m := range manifests {
			if m.WindowStart%width != 0 {
				t.Fatalf("width=%d: window start %d not aligned", width, m.WindowStart)
			}
			if m.WindowEnd-m.WindowStart != width {
				t.Fatalf("width=%d: window %d-%d has wrong span", width, m.WindowStart, m.WindowEnd)
			}
		}
	}
}

func TestBuildManifestsWidthNotDividingDay(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository([]*repositories.MemoryGuest{
		{ID: "g-1", AirportCode: "SJO", ArrivalDate: "2026-06-12", ArrivalHour: intPtr(22)},
	})
	store := repositories.NewMemoryManifestStore()

	req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival, WindowHours: 5}
	manifests, err := BuildManifests(context.Background(), req, guests, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 22:00 with a 5 hour width lands in 20-25, a window past midnight.
	if len(manifests) != 1 {
		t.Fatalf("expected 1 manifest, got %d", len(manifests))
	}
	if manifests[0].WindowStart != 20 || manifests[0].WindowEnd != 25 {
		t.Fatalf("window = %d-%d, want 20-25", manifests[0].WindowStart, manifests[0].WindowEnd)
	}
}

func TestBuildManifestsEmptyRoster(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository(nil)
	store := repositories.NewMemoryManifestStore()

	req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival}
	manifests, err := BuildManifests(context.Background(), req, guests, store)
	if err != nil {
		t.Fatalf("expected empty roster to succeed, got %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("expected no manifests, got %d", len(manifests))
	}
}

func TestBuildManifestsRejectsBadInput(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository(nil)
	store := repositories.NewMemoryManifestStore()

	req := BuildManifestsRequest{Date: testDate(t), Direction: "sideways"}
	if _, err := BuildManifests(context.Background(), req, guests, store); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad direction, got %v", err)
	}

	req = BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival, WindowHours: -2}
	if _, err := BuildManifests(context.Background(), req, guests, store); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative width, got %v", err)
	}
}

// flakyManifestStore fails the n-th create to exercise partial success.
type flakyManifestStore struct {
	*repositories.MemoryManifestStore
	failOn  int
	creates int
}

var errStoreDown = errors.New("store unavailable")

func (s *flakyManifestStore) Create(ctx context.Context, m *domain.TransportationManifest) (string, error) {
	s.creates++
	if s.creates == s.failOn {
		return "", errStoreDown
	}
	return s.MemoryManifestStore.Create(ctx, m)
}

func TestBuildManifestsPartialSuccessOnCreateFailure(t *testing.T) {
	guests := repositories.NewMemoryGuestRepository(testRoster())
	store := &flakyManifestStore{MemoryManifestStore: repositories.NewMemoryManifestStore(), failOn: 3}

	req := BuildManifestsRequest{Date: testDate(t), Direction: domain.ManifestArrival}
	manifests, err := BuildManifests(context.Background(), req, guests, store)
	if err == nil {
		t.Fatal("expected an error from the failing window")
	}
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected the store error to be wrapped, got %v", err)
	}

	// Windows before the failure stay created and are reported back.
	if len(manifests) != 2 {
		t.Fatalf("expected 2 manifests created before the failure, got %d", len(manifests))
	}
	for _, m := range manifests {
		stored, err := store.Get(context.Background(), m.ID)
		if err != nil {
			t.Fatalf("manifest %q should remain persisted: %v", m.ID, err)
		}
		if !reflect.DeepEqual(stored.GuestIDs, m.GuestIDs) {
			t.Fatalf("stored guests = %v, want %v", stored.GuestIDs, m.GuestIDs)
		}
	}
}
