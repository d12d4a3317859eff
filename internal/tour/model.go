// Package tour provides the tour catalog model and catalog view-state.
package tour

import (
	"encoding/json"
	"strings"
	"time"
)

// Category groups tours by the kind of experience they offer.
type Category string

const (
	CategoryWater    Category = "water"
	CategoryCultural Category = "cultural"
	CategoryNature   Category = "nature"
	CategorySafari   Category = "safari"
)

// Known reports whether c is one of the categories the catalog ships with.
// The backend may introduce new categories; unknown values still flow
// through filtering and display unchanged.
func (c Category) Known() bool {
	switch c {
	case CategoryWater, CategoryCultural, CategoryNature, CategorySafari:
		return true
	}
	return false
}

// Label returns the display form of the category ("water" -> "Water").
func (c Category) Label() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Tour is a bookable excursion product, fetched read-only from the backend.
type Tour struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       *float64  `json:"price,omitempty"`
	Duration    string    `json:"duration"`
	Category    Category  `json:"category"`
	Features    []string  `json:"features,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
	UpdatedAt   time.Time `json:"updated_at,omitzero"`
}

// UnmarshalJSON accepts the identifier under either "_id" or "id".
// The backend serializes the Mongo alias "_id", but some responses carry
// a plain "id" instead.
func (t *Tour) UnmarshalJSON(data []byte) error {
	type tourAlias Tour
	aux := struct {
		*tourAlias
		AltID string `json:"id"`
	}{tourAlias: (*tourAlias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = aux.AltID
	}
	return nil
}

// BookingRequest is the wire shape for POST /api/tours/bookings.
type BookingRequest struct {
	TourID          string `json:"tour_id"`
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	BookingDate     string `json:"booking_date"` // YYYY-MM-DD
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

// BookingStatus tracks where a booking is in the follow-up workflow.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the backend's confirmation of an accepted booking request.
type Booking struct {
	ID              string        `json:"_id"`
	TourID          string        `json:"tour_id"`
	CustomerName    string        `json:"customer_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	BookingDate     string        `json:"booking_date"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at,omitzero"`
}
