package handlers

import (
	"net/http"

	"shuttle-logistics-service/internal/api/dto"
	"shuttle-logistics-service/internal/ports"
	"shuttle-logistics-service/internal/services"
)

// SheetHandler produces driver-facing dispatch sheets.
type SheetHandler struct {
	Store   ports.ManifestStore
	Details ports.GuestDetailReader
}

func (h *SheetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	manifestID := r.URL.Query().Get("manifest_id")
	if manifestID == "" {
		writeError(w, r, http.StatusBadRequest, "manifest_id query parameter is required")
		return
	}

	sheet, err := services.GenerateDriverSheet(r.Context(), manifestID, h.Store, h.Details)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.DriverSheetResponse{
		ManifestID:       sheet.ManifestID,
		Date:             sheet.Date.Format("2006-01-02"),
		TimeWindow:       sheet.TimeWindow,
		VehicleType:      sheet.VehicleType,
		DriverName:       sheet.DriverName,
		DriverPhone:      sheet.DriverPhone,
		Guests:           make([]dto.SheetGuestResponse, 0, len(sheet.Guests)),
		TotalGuests:      sheet.TotalGuests,
		PickupLocation:   sheet.PickupLocation,
		DropoffLocations: sheet.DropoffLocations,
	}
	for _, g := range sheet.Guests {
		res.Guests = append(res.Guests, dto.SheetGuestResponse{
			Name:            g.Name,
			FlightNumber:    g.FlightNumber,
			Phone:           g.Phone,
			SpecialRequests: g.SpecialRequests,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
