package handlers

import (
	"net/http"

	"shuttle-logistics-service/internal/api/dto"
	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
	"shuttle-logistics-service/internal/services"
)

// CostHandler reports aggregate shuttle cost estimates.
type CostHandler struct {
	Store   ports.ManifestStore
	Catalog domain.VehicleCatalog
}

// DayTotal sums estimated vehicle costs across all manifests of a date.
func (h *CostHandler) DayTotal(w http.ResponseWriter, r *http.Request) {
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

	total, err := services.TotalShuttleCost(h.Catalog, manifests)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DayCostResponse{
		Date:      date.Format("2006-01-02"),
		TotalCost: total,
	})
}
