package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shuttle-logistics-service/internal/domain"
)

type vehicleClassYAML struct {
	Type        string  `yaml:"type"`
	Capacity    int     `yaml:"capacity"`
	CostPerTrip float64 `yaml:"cost_per_trip"`
}

type catalogYAML struct {
	Vehicles []vehicleClassYAML `yaml:"vehicles"`
}

// LoadCatalog reads a vehicle catalog from a YAML file and validates it.
// An empty path selects the built-in catalog.
//
// Expected shape:
//
//	vehicles:
//	  - type: sedan
//	    capacity: 4
//	    cost_per_trip: 50
func LoadCatalog(path string) (domain.VehicleCatalog, error) {
	if path == "" {
		return domain.DefaultVehicleCatalog(), nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return domain.VehicleCatalog{}, fmt.Errorf("load catalog: read %q: %w", path, err)
	}

	var parsed catalogYAML
	if err := yaml.Unmarshal(bytes, &parsed); err != nil {
		return domain.VehicleCatalog{}, fmt.Errorf("load catalog: parse %q: %w", path, err)
	}

	classes := make([]domain.VehicleClass, 0, len(parsed.Vehicles))
	for _, v := range parsed.Vehicles {
		classes = append(classes, domain.VehicleClass{
			Type:        v.Type,
			Capacity:    v.Capacity,
			CostPerTrip: v.CostPerTrip,
		})
	}

	catalog, err := domain.NewVehicleCatalog(classes)
	if err != nil {
		return domain.VehicleCatalog{}, fmt.Errorf("load catalog: %q: %w", path, err)
	}

	return catalog, nil
}
