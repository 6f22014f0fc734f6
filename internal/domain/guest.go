package domain

import "time"

// Airport codes recognized by the guest records.
const (
	AirportSJO   = "SJO"
	AirportLIR   = "LIR"
	AirportOther = "Other"
)

func ValidAirportCode(code string) bool {
	return code == AirportSJO || code == AirportLIR || code == AirportOther
}

// One guest's airport movement for a single direction on a single date.
// Hour is nil when the guest record carries no explicit time; the manifest
// builder substitutes the direction default.
type GuestTimeRecord struct {
	GuestID     string
	Date        time.Time
	Hour        *int
	AirportCode string
}

// Guest contact fields joined onto driver sheets.
type GuestDetail struct {
	GuestID      string
	Name         string
	FlightNumber string
	Phone        string
	Notes        string
}

// Flight details recorded against a guest.
// ArrivalTime/DepartureTime are full timestamps; the repository splits them
// into the guest record's date and time columns.
type FlightInfo struct {
	GuestID       string
	AirportCode   string
	FlightNumber  string
	Airline       string
	ArrivalTime   *time.Time
	DepartureTime *time.Time
}
