package handlers

import (
	"net/http"
	"strings"

	"shuttle-logistics-service/internal/api/dto"
	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/platform/obs"
	"shuttle-logistics-service/internal/ports"
	"shuttle-logistics-service/internal/services"
)

// ManifestHandler exposes manifest building, listing, guest assignment and
// driver/vehicle updates.
type ManifestHandler struct {
	Guests ports.GuestRepository
	Store  ports.ManifestStore
}

// Build groups a day's roster into time windows and persists one manifest
// per populated window. A create failure mid-run still reports the windows
// already persisted, so the caller can see partial progress.
func (h *ManifestHandler) Build(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.BuildManifestsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	svcReq := services.BuildManifestsRequest{
		Date:        date,
		Direction:   domain.ManifestType(strings.ToLower(strings.TrimSpace(req.Direction))),
		WindowHours: req.WindowHours,
	}

	done := obs.Time(r.Context(), "build_manifests")
	manifests, err := services.BuildManifests(r.Context(), svcReq, h.Guests, h.Store)
	done(&err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListManifestsResponse(manifests))
}

// List returns all manifests for a calendar date.
func (h *ManifestHandler) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date query parameter must be YYYY-MM-DD")
		return
	}

	manifests, err := h.Store.ListByDate(r.Context(), date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toListManifestsResponse(manifests))
}

// Assign merges guest ids into a manifest's membership.
func (h *ManifestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.AssignGuestsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	done := obs.Time(r.Context(), "assign_guests")
	err := services.AssignGuests(r.Context(), req.ManifestID, req.GuestIDs, h.Store)
	done(&err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "assigned"})
}

// Update sets driver/vehicle fields on a manifest.
func (h *ManifestHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.UpdateManifestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.ManifestID) == "" {
		writeError(w, r, http.StatusBadRequest, "manifest_id is required")
		return
	}

	patch := ports.ManifestPatch{
		VehicleType: trimmed(req.VehicleType),
		DriverName:  trimmed(req.DriverName),
		DriverPhone: trimmed(req.DriverPhone),
		Notes:       trimmed(req.Notes),
	}

	if err := h.Store.UpdateDetails(r.Context(), req.ManifestID, patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

func toManifestResponse(m *domain.TransportationManifest) dto.ManifestResponse {
	return dto.ManifestResponse{
		ID:              m.ID,
		ManifestType:    string(m.ManifestType),
		Date:            m.Date.Format("2006-01-02"),
		TimeWindowStart: domain.FormatWindowHour(m.WindowStart),
		TimeWindowEnd:   domain.FormatWindowHour(m.WindowEnd),
		VehicleType:     m.VehicleType,
		DriverName:      m.DriverName,
		DriverPhone:     m.DriverPhone,
		GuestIDs:        m.GuestIDs,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toListManifestsResponse(manifests []*domain.TransportationManifest) dto.ListManifestsResponse {
	res := dto.ListManifestsResponse{Manifests: make([]dto.ManifestResponse, 0, len(manifests))}
	for _, m := range manifests {
		res.Manifests = append(res.Manifests, toManifestResponse(m))
	}
	return res
}
