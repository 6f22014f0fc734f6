package handlers

import (
	"net/http"
	"time"

	"shuttle-logistics-service/internal/api/dto"
	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
	"shuttle-logistics-service/internal/services"
)

// FlightHandler records and queries guest flight details.
type FlightHandler struct {
	Guests ports.GuestRepository
}

func (h *FlightHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.FlightInfoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	info := domain.FlightInfo{
		GuestID:       req.GuestID,
		AirportCode:   req.AirportCode,
		FlightNumber:  req.FlightNumber,
		Airline:       req.Airline,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
	}

	if err := services.UpdateFlightInfo(r.Context(), info, h.Guests); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *FlightHandler) ListByAirport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	flights, err := services.FlightsByAirport(r.Context(), r.URL.Query().Get("airport"), h.Guests)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListFlightsResponse{Flights: make([]dto.FlightResponse, 0, len(flights))}
	for _, f := range flights {
		res.Flights = append(res.Flights, dto.FlightResponse{
			GuestID:       f.GuestID,
			AirportCode:   f.AirportCode,
			FlightNumber:  f.FlightNumber,
			Airline:       f.Airline,
			ArrivalDate:   dateOrEmpty(f.ArrivalTime),
			DepartureDate: dateOrEmpty(f.DepartureTime),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
