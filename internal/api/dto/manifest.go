package dto

import "time"

type BuildManifestsRequest struct {
	Date        string `json:"date"`
	Direction   string `json:"direction"`
	WindowHours int    `json:"window_hours"`
}

type AssignGuestsRequest struct {
	ManifestID string   `json:"manifest_id"`
	GuestIDs   []string `json:"guest_ids"`
}

type UpdateManifestRequest struct {
	ManifestID  string  `json:"manifest_id"`
	VehicleType *string `json:"vehicle_type"`
	DriverName  *string `json:"driver_name"`
	DriverPhone *string `json:"driver_phone"`
	Notes       *string `json:"notes"`
}

type ManifestResponse struct {
	ID              string    `json:"id"`
	ManifestType    string    `json:"manifest_type"`
	Date            string    `json:"date"`
	TimeWindowStart string    `json:"time_window_start"`
	TimeWindowEnd   string    `json:"time_window_end"`
	VehicleType     string    `json:"vehicle_type,omitempty"`
	DriverName      string    `json:"driver_name,omitempty"`
	DriverPhone     string    `json:"driver_phone,omitempty"`
	GuestIDs        []string  `json:"guest_ids"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListManifestsResponse struct {
	Manifests []ManifestResponse `json:"manifests"`
}

type DayCostResponse struct {
	Date      string  `json:"date"`
	TotalCost float64 `json:"total_cost"`
}
