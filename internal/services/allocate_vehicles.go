package services

import (
	"shuttle-logistics-service/internal/domain"
)

// AllocateVehicles computes the vehicle mix covering guestCount seats using a
// greedy largest-first pass over the catalog.
//
// For the built-in catalog, cost-per-seat strictly improves with capacity, so
// the greedy choice is also the cheapest cover. Any leftover guests after the
// descending pass ride in one extra smallest-class vehicle, which bounds the
// wasted seats to strictly less than that class's capacity.
//
// The function is pure: same catalog and count always yield the same mix.
func AllocateVehicles(catalog domain.VehicleCatalog, guestCount int) ([]domain.VehicleRequirement, error) {
	if guestCount < 0 {
		return nil, domain.Validationf("allocate vehicles: guest count must be non-negative, got %d", guestCount)
	}

	requirements := []domain.VehicleRequirement{}
	if guestCount == 0 {
		return requirements, nil
	}

	classes := catalog.Classes()
	remaining := guestCount

	// Largest class first.
	for i := len(classes) - 1; i >= 0; i-- {
		class := classes[i]
		quantity := remaining / class.Capacity
		if quantity == 0 {
			continue
		}

		requirements = append(requirements, domain.VehicleRequirement{
			VehicleType:    class.Type,
			Capacity:       class.Capacity,
			QuantityNeeded: quantity,
			EstimatedCost:  float64(quantity) * class.CostPerTrip,
		})
		remaining -= quantity * class.Capacity
	}

	// Whatever is left fits in a single smallest vehicle.
	if remaining > 0 {
		smallest := catalog.Smallest()
		requirements = append(requirements, domain.VehicleRequirement{
			VehicleType:    smallest.Type,
			Capacity:       smallest.Capacity,
			QuantityNeeded: 1,
			EstimatedCost:  smallest.CostPerTrip,
		})
	}

	return requirements, nil
}
