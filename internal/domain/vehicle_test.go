package domain

import (
	"strings"
	"testing"
)

func TestNewVehicleCatalogAcceptsAscendingClasses(t *testing.T) {
	catalog, err := NewVehicleCatalog([]VehicleClass{
		{Type: "compact", Capacity: 3, CostPerTrip: 40},
		{Type: "sprinter", Capacity: 12, CostPerTrip: 110},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("len = %d, want 2", catalog.Len())
	}
	if catalog.Smallest().Type != "compact" {
		t.Fatalf("smallest = %q, want compact", catalog.Smallest().Type)
	}
}

func TestNewVehicleCatalogValidation(t *testing.T) {
	cases := []struct {
		name    string
		classes []VehicleClass
		wantMsg string
	}{
		{
			name:    "empty",
			classes: nil,
			wantMsg: "at least one class",
		},
		{
			name: "empty type",
			classes: []VehicleClass{
				{Type: "", Capacity: 4, CostPerTrip: 50},
			},
			wantMsg: "empty type",
		},
		{
			name: "duplicate type",
			classes: []VehicleClass{
				{Type: "van", Capacity: 4, CostPerTrip: 50},
				{Type: "van", Capacity: 8, CostPerTrip: 80},
			},
			wantMsg: "duplicate type",
		},
		{
			name: "zero capacity",
			classes: []VehicleClass{
				{Type: "ghost", Capacity: 0, CostPerTrip: 10},
			},
			wantMsg: "capacity must be positive",
		},
		{
			name: "capacities out of order",
			classes: []VehicleClass{
				{Type: "van", Capacity: 8, CostPerTrip: 80},
				{Type: "sedan", Capacity: 4, CostPerTrip: 50},
			},
			wantMsg: "strictly ascending",
		},
		{
			name: "tied capacities",
			classes: []VehicleClass{
				{Type: "van", Capacity: 8, CostPerTrip: 80},
				{Type: "minivan", Capacity: 8, CostPerTrip: 85},
			},
			wantMsg: "strictly ascending",
		},
		{
			name: "negative cost",
			classes: []VehicleClass{
				{Type: "sedan", Capacity: 4, CostPerTrip: -1},
			},
			wantMsg: "cost must be non-negative",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewVehicleCatalog(tc.classes)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestDefaultVehicleCatalog(t *testing.T) {
	catalog := DefaultVehicleCatalog()

	classes := catalog.Classes()
	if len(classes) != 4 {
		t.Fatalf("expected 4 classes, got %d", len(classes))
	}
	if classes[0].Type != "sedan" || classes[3].Type != "bus" {
		t.Fatalf("unexpected ordering: %+v", classes)
	}
	if classes[3].Capacity != 50 || classes[3].CostPerTrip != 300 {
		t.Fatalf("bus class = %+v", classes[3])
	}
}

func TestClassesReturnsACopy(t *testing.T) {
	catalog := DefaultVehicleCatalog()

	classes := catalog.Classes()
	classes[0].Capacity = 999

	if catalog.Smallest().Capacity != 4 {
		t.Fatalf("catalog mutated through Classes(): %+v", catalog.Smallest())
	}
}
