package services

import (
	"context"
	"fmt"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
)

// GenerateDriverSheet joins a manifest with its guests' contact details into
// a dispatch-ready sheet.
//
// An unknown manifest id surfaces as domain.ErrManifestNotFound (wrapped). A
// guest id whose detail record is missing is excluded from the Guests list
// without failing the sheet; TotalGuests still reports the manifest's own
// membership count.
func GenerateDriverSheet(
	ctx context.Context,
	manifestID string,
	store ports.ManifestStore,
	details ports.GuestDetailReader,
) (*domain.DriverSheet, error) {
	if manifestID == "" {
		return nil, domain.Validationf("generate driver sheet: manifest id must not be empty")
	}

	m, err := store.Get(ctx, manifestID)
	if err != nil {
		return nil, fmt.Errorf("generate driver sheet: read manifest %q: %w", manifestID, err)
	}

	byID := map[string]domain.GuestDetail{}
	if len(m.GuestIDs) > 0 {
		guests, err := details.GetGuestsByIDs(ctx, m.GuestIDs)
		if err != nil {
			return nil, fmt.Errorf("generate driver sheet: read guest details: %w", err)
		}
		for _, g := range guests {
			byID[g.GuestID] = g
		}
	}

	// Manifest order, not lookup order, drives the sheet.
	sheetGuests := make([]domain.SheetGuest, 0, len(m.GuestIDs))
	for _, id := range m.GuestIDs {
		g, ok := byID[id]
		if !ok {
			continue
		}
		sheetGuests = append(sheetGuests, domain.SheetGuest{
			Name:            g.Name,
			FlightNumber:    g.FlightNumber,
			Phone:           g.Phone,
			SpecialRequests: g.Notes,
		})
	}

	return &domain.DriverSheet{
		ManifestID:       m.ID,
		Date:             m.Date,
		TimeWindow:       m.TimeWindowLabel(),
		VehicleType:      m.VehicleType,
		DriverName:       m.DriverName,
		DriverPhone:      m.DriverPhone,
		Guests:           sheetGuests,
		TotalGuests:      len(m.GuestIDs),
		PickupLocation:   m.PickupLocation(),
		DropoffLocations: m.DropoffLocations(),
	}, nil
}
