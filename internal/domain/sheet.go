package domain

import "time"

// One guest line on a driver sheet.
type SheetGuest struct {
	Name            string
	FlightNumber    string
	Phone           string
	SpecialRequests string
}

// Dispatch document summarizing one manifest for a driver.
//
// TotalGuests reports the manifest's own membership count; Guests lists only
// the members whose detail record resolved, so a missing record surfaces as a
// count/list mismatch instead of disappearing.
type DriverSheet struct {
	ManifestID       string
	Date             time.Time
	TimeWindow       string
	VehicleType      string
	DriverName       string
	DriverPhone      string
	Guests           []SheetGuest
	TotalGuests      int
	PickupLocation   string
	DropoffLocations []string
}
