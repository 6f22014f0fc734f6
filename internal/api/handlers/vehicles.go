package handlers

import (
	"net/http"
	"strconv"

	"shuttle-logistics-service/internal/api/dto"
	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/services"
)

// VehicleHandler previews vehicle requirements for a guest count.
type VehicleHandler struct {
	Catalog domain.VehicleCatalog
}

func (h *VehicleHandler) Requirements(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	guests, err := strconv.Atoi(r.URL.Query().Get("guests"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "guests query parameter must be an integer")
		return
	}

	requirements, err := services.AllocateVehicles(h.Catalog, guests)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListVehicleRequirementsResponse{
		GuestCount:   guests,
		Requirements: make([]dto.VehicleRequirementResponse, 0, len(requirements)),
	}
	for _, req := range requirements {
		res.Requirements = append(res.Requirements, dto.VehicleRequirementResponse{
			VehicleType:    req.VehicleType,
			Capacity:       req.Capacity,
			QuantityNeeded: req.QuantityNeeded,
			EstimatedCost:  req.EstimatedCost,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
