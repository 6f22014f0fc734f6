package dto

type VehicleRequirementResponse struct {
	VehicleType    string  `json:"vehicle_type"`
	Capacity       int     `json:"capacity"`
	QuantityNeeded int     `json:"quantity_needed"`
	EstimatedCost  float64 `json:"estimated_cost"`
}

type ListVehicleRequirementsResponse struct {
	GuestCount   int                          `json:"guest_count"`
	Requirements []VehicleRequirementResponse `json:"requirements"`
}
