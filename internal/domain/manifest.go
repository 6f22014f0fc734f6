package domain

import (
	"fmt"
	"time"
)

// Direction of a transportation manifest relative to the venue.
type ManifestType string

const (
	ManifestArrival   ManifestType = "arrival"
	ManifestDeparture ManifestType = "departure"
)

func (t ManifestType) Valid() bool {
	return t == ManifestArrival || t == ManifestDeparture
}

// DefaultHour is the hour-of-day substituted for guests whose record carries
// no explicit time: noon for arrivals, 14:00 for departures.
func (t ManifestType) DefaultHour() int {
	if t == ManifestDeparture {
		return 14
	}
	return 12
}

// Represents a persisted grouping of guests sharing a direction, date and
// time window, optionally assigned a vehicle and driver.
//
// WindowStart and WindowEnd are hours of day. The invariant maintained by the
// builder is WindowEnd-WindowStart == windowHours and WindowStart aligned to
// a multiple of windowHours. GuestIDs holds no duplicates.
type TransportationManifest struct {
	ID           string
	ManifestType ManifestType
	Date         time.Time
	WindowStart  int
	WindowEnd    int
	VehicleType  string
	DriverName   string
	DriverPhone  string
	GuestIDs     []string
	Notes        string
	// Version increments on every store write and drives the
	// compare-and-swap guest updates.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FormatWindowHour renders an hour-of-day bound as "HH:00:00".
func FormatWindowHour(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour)
}

// TimeWindowLabel is the driver-facing "HH:00:00 - HH:00:00" window string.
func (m *TransportationManifest) TimeWindowLabel() string {
	return FormatWindowHour(m.WindowStart) + " - " + FormatWindowHour(m.WindowEnd)
}

// PickupLocation for the manifest's direction.
func (m *TransportationManifest) PickupLocation() string {
	if m.ManifestType == ManifestDeparture {
		return "Hotel"
	}
	return "Airport"
}

// DropoffLocations for the manifest's direction.
func (m *TransportationManifest) DropoffLocations() []string {
	if m.ManifestType == ManifestDeparture {
		return []string{"Airport"}
	}
	return []string{"Hotel"}
}
