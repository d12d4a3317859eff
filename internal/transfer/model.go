// Package transfer provides the airport-transfer fleet model and the
// transfer booking wire shapes.
package transfer

import "time"

// Vehicle is a transfer option fetched read-only from the backend.
type Vehicle struct {
	ID          string   `json:"_id"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Capacity    int      `json:"capacity"`
	Available   bool     `json:"available"`
}

// BookingRequest is the wire shape for POST /api/transfers/bookings.
// VehicleType must match the type label of a fetched Vehicle.
type BookingRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FlightNumber    string `json:"flight_number"`
	ArrivalDate     string `json:"arrival_date"` // YYYY-MM-DD
	ArrivalTime     string `json:"arrival_time"` // HH:MM
	Passengers      int    `json:"passengers"`
	VehicleType     string `json:"vehicle_type"`
	Destination     string `json:"destination"`
	SpecialRequests string `json:"special_requests"`
}

// BookingStatus tracks a transfer booking through follow-up.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the backend's confirmation of an accepted transfer booking.
type Booking struct {
	ID              string        `json:"_id"`
	CustomerName    string        `json:"customer_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	FlightNumber    string        `json:"flight_number"`
	ArrivalDate     string        `json:"arrival_date"`
	ArrivalTime     string        `json:"arrival_time"`
	Passengers      int           `json:"passengers"`
	VehicleType     string        `json:"vehicle_type"`
	Destination     string        `json:"destination"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at,omitzero"`
}
