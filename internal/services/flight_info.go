package services

import (
	"context"
	"fmt"
	"strings"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
)

// UpdateFlightInfo validates and records flight details against a guest.
// Flight number and airline are trimmed before the write.
func UpdateFlightInfo(ctx context.Context, info domain.FlightInfo, guests ports.GuestRepository) error {
	if strings.TrimSpace(info.GuestID) == "" {
		return domain.Validationf("update flight info: guest id must not be empty")
	}
	if !domain.ValidAirportCode(info.AirportCode) {
		return domain.Validationf("update flight info: unknown airport code %q", info.AirportCode)
	}

	info.FlightNumber = strings.TrimSpace(info.FlightNumber)
	info.Airline = strings.TrimSpace(info.Airline)

	if err := guests.UpdateFlightInfo(ctx, info); err != nil {
		return fmt.Errorf("update flight info: guest %q: %w", info.GuestID, err)
	}
	return nil
}

// FlightsByAirport lists guests with a recorded flight number at an airport.
func FlightsByAirport(ctx context.Context, airportCode string, guests ports.GuestRepository) ([]domain.FlightInfo, error) {
	if !domain.ValidAirportCode(airportCode) {
		return nil, domain.Validationf("flights by airport: unknown airport code %q", airportCode)
	}

	flights, err := guests.ListFlightsByAirport(ctx, airportCode)
	if err != nil {
		return nil, fmt.Errorf("flights by airport: %q: %w", airportCode, err)
	}
	return flights, nil
}
