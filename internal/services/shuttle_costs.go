package services

import (
	"fmt"

	"shuttle-logistics-service/internal/domain"
)

// TotalShuttleCost sums the estimated vehicle costs across manifests, sizing
// each manifest's fleet from its guest count. An empty list costs zero.
func TotalShuttleCost(catalog domain.VehicleCatalog, manifests []*domain.TransportationManifest) (float64, error) {
	total := 0.0
	for _, m := range manifests {
		requirements, err := AllocateVehicles(catalog, len(m.GuestIDs))
		if err != nil {
			return 0, fmt.Errorf("shuttle costs: manifest %q: %w", m.ID, err)
		}
		for _, r := range requirements {
			total += r.EstimatedCost
		}
	}
	return total, nil
}
