package services

import (
	"testing"

	"shuttle-logistics-service/internal/domain"
)

func manifestWithGuests(n int) *domain.TransportationManifest {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i%26))
	}
	return &domain.TransportationManifest{GuestIDs: ids}
}

func TestTotalShuttleCostEmptyList(t *testing.T) {
	total, err := TotalShuttleCost(domain.DefaultVehicleCatalog(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %v, want 0", total)
	}
}

func TestTotalShuttleCostSumsAcrossManifests(t *testing.T) {
	manifests := []*domain.TransportationManifest{
		manifestWithGuests(3),  // sedan: $50
		manifestWithGuests(75), // bus+minibus+van+sedan: $550
		manifestWithGuests(0),  // nothing dispatched
	}

	total, err := TotalShuttleCost(domain.DefaultVehicleCatalog(), manifests)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 600 {
		t.Fatalf("total = %v, want 600", total)
	}
}

func TestTotalShuttleCostNonNegativeAndAdditive(t *testing.T) {
	catalog := domain.DefaultVehicleCatalog()

	for guests := 0; guests <= 120; guests++ {
		m := manifestWithGuests(guests)

		single, err := TotalShuttleCost(catalog, []*domain.TransportationManifest{m})
		if err != nil {
			t.Fatalf("guests=%d: unexpected error: %v", guests, err)
		}
		if single < 0 {
			t.Fatalf("guests=%d: negative total %v", guests, single)
		}
		if guests > 0 && single == 0 {
			t.Fatalf("guests=%d: occupied manifest cannot cost nothing", guests)
		}

		double, err := TotalShuttleCost(catalog, []*domain.TransportationManifest{m, m})
		if err != nil {
			t.Fatalf("guests=%d: unexpected error: %v", guests, err)
		}
		if double != 2*single {
			t.Fatalf("guests=%d: two identical manifests cost %v, want %v", guests, double, 2*single)
		}
	}
}
