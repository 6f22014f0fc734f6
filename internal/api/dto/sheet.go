package dto

type SheetGuestResponse struct {
	Name            string `json:"name"`
	FlightNumber    string `json:"flight_number,omitempty"`
	Phone           string `json:"phone,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type DriverSheetResponse struct {
	ManifestID       string               `json:"manifest_id"`
	Date             string               `json:"date"`
	TimeWindow       string               `json:"time_window"`
	VehicleType      string               `json:"vehicle_type,omitempty"`
	DriverName       string               `json:"driver_name,omitempty"`
	DriverPhone      string               `json:"driver_phone,omitempty"`
	Guests           []SheetGuestResponse `json:"guests"`
	TotalGuests      int                  `json:"total_guests"`
	PickupLocation   string               `json:"pickup_location"`
	DropoffLocations []string             `json:"dropoff_locations"`
}
