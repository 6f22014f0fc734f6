package api

import (
	"net/http"

	"shuttle-logistics-service/internal/api/handlers"
	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/metrics"
	"shuttle-logistics-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	guests ports.GuestRepository,
	details ports.GuestDetailReader,
	store ports.ManifestStore,
	catalog domain.VehicleCatalog,
) http.Handler {
	mux := http.NewServeMux()

	manifestHandler := &handlers.ManifestHandler{Guests: guests, Store: store}
	sheetHandler := &handlers.SheetHandler{Store: store, Details: details}
	vehicleHandler := &handlers.VehicleHandler{Catalog: catalog}
	costHandler := &handlers.CostHandler{Store: store, Catalog: catalog}
	flightHandler := &handlers.FlightHandler{Guests: guests}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/manifests", manifestHandler.List)
	mux.HandleFunc("/manifests/build", manifestHandler.Build)
	mux.HandleFunc("/manifests/assign", manifestHandler.Assign)
	mux.HandleFunc("/manifests/update", manifestHandler.Update)
	mux.HandleFunc("/sheets", sheetHandler.Generate)
	mux.HandleFunc("/vehicles/requirements", vehicleHandler.Requirements)
	mux.HandleFunc("/costs", costHandler.DayTotal)
	mux.HandleFunc("/guests/flight", flightHandler.Update)
	mux.HandleFunc("/guests/flights", flightHandler.ListByAirport)

	return loggingMiddleware(mux)
}
