package domain

import "fmt"

// A single vehicle class in the shuttle catalog.
type VehicleClass struct {
	Type        string
	Capacity    int
	CostPerTrip float64
}

// Immutable, validated table of vehicle classes ordered by ascending capacity.
//
// The greedy allocator's cost optimality rests on the catalog having strictly
// improving cost-per-seat as capacity grows; the catalog is injected rather
// than hard-coded so that assumption stays visible at the call sites.
type VehicleCatalog struct {
	classes []VehicleClass
}

// NewVehicleCatalog validates and freezes a catalog.
// Classes must be non-empty, carry unique type names, positive capacities in
// strictly ascending order, and non-negative per-trip costs.
func NewVehicleCatalog(classes []VehicleClass) (VehicleCatalog, error) {
	if len(classes) == 0 {
		return VehicleCatalog{}, fmt.Errorf("vehicle catalog: must contain at least one class")
	}

	seen := make(map[string]struct{}, len(classes))
	prevCapacity := 0
	for i, c := range classes {
		if c.Type == "" {
			return VehicleCatalog{}, fmt.Errorf("vehicle catalog: class #%d has empty type", i+1)
		}
		if _, ok := seen[c.Type]; ok {
			return VehicleCatalog{}, fmt.Errorf("vehicle catalog: duplicate type %q", c.Type)
		}
		seen[c.Type] = struct{}{}

		if c.Capacity <= 0 {
			return VehicleCatalog{}, fmt.Errorf("vehicle catalog: %q capacity must be positive, got %d", c.Type, c.Capacity)
		}
		if c.Capacity <= prevCapacity {
			return VehicleCatalog{}, fmt.Errorf("vehicle catalog: capacities must be strictly ascending (%q)", c.Type)
		}
		prevCapacity = c.Capacity

		if c.CostPerTrip < 0 {
			return VehicleCatalog{}, fmt.Errorf("vehicle catalog: %q cost must be non-negative, got %v", c.Type, c.CostPerTrip)
		}
	}

	frozen := make([]VehicleClass, len(classes))
	copy(frozen, classes)
	return VehicleCatalog{classes: frozen}, nil
}

// DefaultVehicleCatalog is the built-in shuttle fleet table.
func DefaultVehicleCatalog() VehicleCatalog {
	c, err := NewVehicleCatalog([]VehicleClass{
		{Type: "sedan", Capacity: 4, CostPerTrip: 50},
		{Type: "van", Capacity: 8, CostPerTrip: 80},
		{Type: "minibus", Capacity: 15, CostPerTrip: 120},
		{Type: "bus", Capacity: 50, CostPerTrip: 300},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Classes returns the catalog entries in ascending capacity order.
func (c VehicleCatalog) Classes() []VehicleClass {
	out := make([]VehicleClass, len(c.classes))
	copy(out, c.classes)
	return out
}

// Smallest returns the lowest-capacity class.
func (c VehicleCatalog) Smallest() VehicleClass {
	return c.classes[0]
}

func (c VehicleCatalog) Len() int { return len(c.classes) }

// One vehicle class actually used to cover a guest count.
// Computed fresh on every allocation; never persisted.
type VehicleRequirement struct {
	VehicleType    string
	Capacity       int
	QuantityNeeded int
	EstimatedCost  float64
}
