package dto

import "time"

type FlightInfoRequest struct {
	GuestID       string     `json:"guest_id"`
	AirportCode   string     `json:"airport_code"`
	FlightNumber  string     `json:"flight_number"`
	Airline       string     `json:"airline"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	DepartureTime *time.Time `json:"departure_time"`
}

type FlightResponse struct {
	GuestID       string `json:"guest_id"`
	AirportCode   string `json:"airport_code"`
	FlightNumber  string `json:"flight_number,omitempty"`
	Airline       string `json:"airline,omitempty"`
	ArrivalDate   string `json:"arrival_date,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
}

type ListFlightsResponse struct {
	Flights []FlightResponse `json:"flights"`
}
